package badge

import (
	"html"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/osse101/SaleBadge_Go/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	stripTags = bluemonday.StrictPolicy()
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// NormalizeStyleID parses a style id. Anything that is not an integer in
// [1,10] becomes the default style.
func NormalizeStyleID(raw string) int {
	return parseInRange(raw, tagStyleRange, domain.DefaultStyleID)
}

// NormalizeFontSize parses a font size in pixels. Anything that is not an
// integer in [8,24] becomes the default size.
func NormalizeFontSize(raw string) int {
	return parseInRange(raw, tagFontSizeRange, domain.DefaultFontSizePx)
}

// NormalizeFontWeight passes the weight through unchanged apart from
// trimming. Only a blank value is replaced. The weight is checked against
// the offered set when the badge is rendered, not here.
func NormalizeFontWeight(raw string) string {
	weight := strings.TrimSpace(raw)
	if weight == "" {
		return domain.DefaultFontWeight
	}
	return weight
}

// NormalizeItalic follows checkbox semantics.
func NormalizeItalic(present bool) bool {
	return present
}

// NormalizeLabel trims the label, strips markup and control characters and
// collapses internal whitespace. The result is plain text: it is escaped
// when rendered, never when stored. Entity-encoded markup is decoded and
// stripped too, so normalizing a normalized label changes nothing.
func NormalizeLabel(raw string) string {
	text := strings.ToValidUTF8(raw, "")
	for i := 0; i < maxLabelPasses; i++ {
		next := labelPass(text)
		if next == text {
			break
		}
		text = next
	}
	return text
}

func labelPass(text string) string {
	if text == "" {
		return ""
	}

	text = html.UnescapeString(stripTags.Sanitize(text))
	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)

	return strings.Join(strings.Fields(text), " ")
}

// Normalize converts a raw submission into a valid configuration.
func Normalize(raw domain.RawBadgeConfig) domain.BadgeConfig {
	return domain.BadgeConfig{
		Label:      NormalizeLabel(raw.Label),
		StyleID:    NormalizeStyleID(raw.StyleID),
		FontSizePx: NormalizeFontSize(raw.FontSize),
		FontWeight: NormalizeFontWeight(raw.FontWeight),
		Italic:     NormalizeItalic(raw.ItalicPresent),
	}
}

// Clamp applies the same range rules to an already typed configuration, so
// values that never went through a form are safe to render or persist.
func Clamp(cfg domain.BadgeConfig) domain.BadgeConfig {
	if !inRange(cfg.StyleID, tagStyleRange) {
		cfg.StyleID = domain.DefaultStyleID
	}
	if !inRange(cfg.FontSizePx, tagFontSizeRange) {
		cfg.FontSizePx = domain.DefaultFontSizePx
	}
	cfg.FontWeight = NormalizeFontWeight(cfg.FontWeight)
	return cfg
}

// IsKnownFontWeight reports whether weight is one of the offered weights.
func IsKnownFontWeight(weight string) bool {
	return getValidator().Var(weight, tagFontWeight) == nil
}

func parseInRange(raw, tag string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return fallback
	}
	if !inRange(n, tag) {
		return fallback
	}
	return n
}

func inRange(n int, tag string) bool {
	return getValidator().Var(n, tag) == nil
}
