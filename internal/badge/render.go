package badge

import (
	"bytes"
	"html/template"
	"log/slog"
	"strconv"
	"strings"

	"github.com/osse101/SaleBadge_Go/internal/domain"
)

// Font properties are emitted inline and marked important so they win over
// the per-style class rules and over theme rules targeting .onsale.
var badgeTemplate = template.Must(template.New("badge").Parse(
	`<span class="{{.Class}}" style="font-size:{{.FontSize}}px !important;font-weight:{{.FontWeight}} !important;font-style:{{.FontStyle}} !important">{{.Label}}</span>`,
))

type badgeView struct {
	Class      string
	FontSize   int
	FontWeight string
	FontStyle  string
	Label      string
}

// Renderer turns a badge configuration into markup.
type Renderer struct {
	fallbackLabel string
}

// NewRenderer creates a renderer that shows fallbackLabel whenever the
// configured label is blank. An empty fallback means domain.DefaultLabel.
func NewRenderer(fallbackLabel string) *Renderer {
	if strings.TrimSpace(fallbackLabel) == "" {
		fallbackLabel = domain.DefaultLabel
	}
	return &Renderer{fallbackLabel: fallbackLabel}
}

var defaultRenderer = NewRenderer(domain.DefaultLabel)

// RenderBadge renders cfg with the default fallback label.
func RenderBadge(cfg domain.BadgeConfig) string {
	return defaultRenderer.Render(cfg)
}

// Render produces the badge fragment. Out-of-range values are clamped and
// unknown font weights fall back to the default weight.
func (r *Renderer) Render(cfg domain.BadgeConfig) string {
	cfg = Clamp(cfg)

	label := strings.TrimSpace(cfg.Label)
	if label == "" {
		label = r.fallbackLabel
	}

	weight := cfg.FontWeight
	if !IsKnownFontWeight(weight) {
		weight = domain.DefaultFontWeight
	}

	fontStyle := FontStyleNormal
	if cfg.Italic {
		fontStyle = FontStyleItalic
	}

	var buf bytes.Buffer
	err := badgeTemplate.Execute(&buf, badgeView{
		Class:      StyleClass(cfg.StyleID),
		FontSize:   cfg.FontSizePx,
		FontWeight: weight,
		FontStyle:  fontStyle,
		Label:      label,
	})
	if err != nil {
		slog.Error(LogMsgRenderFailed, "error", err, "style_id", cfg.StyleID)
		return ""
	}
	return buf.String()
}

// PreviewItem is one entry of the settings page style picker.
type PreviewItem struct {
	StyleID int
	Name    string
	HTML    template.HTML
}

// RenderPreview renders the same label and typography once per style so
// the settings page can switch styles without a round trip.
func (r *Renderer) RenderPreview(cfg domain.BadgeConfig) []PreviewItem {
	items := make([]PreviewItem, 0, len(styles))
	for _, s := range styles {
		variant := cfg
		variant.StyleID = s.ID
		items = append(items, PreviewItem{
			StyleID: s.ID,
			Name:    s.Name,
			// Render escapes every interpolated value.
			HTML: template.HTML(r.Render(variant)),
		})
	}
	return items
}

// StyleClass returns the class list for a style id.
func StyleClass(styleID int) string {
	return ClassStorefront + " " + ClassBase + " " + ClassStylePrefix + strconv.Itoa(styleID)
}
