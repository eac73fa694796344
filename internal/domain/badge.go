package domain

// BadgeConfig is the validated configuration of the sale badge.
type BadgeConfig struct {
	Label      string `json:"label"`
	StyleID    int    `json:"style_id"`
	FontSizePx int    `json:"font_size_px"`
	FontWeight string `json:"font_weight"`
	Italic     bool   `json:"italic"`
}

// DefaultBadgeConfig returns the configuration written on first activation.
func DefaultBadgeConfig() BadgeConfig {
	return BadgeConfig{
		Label:      DefaultLabel,
		StyleID:    DefaultStyleID,
		FontSizePx: DefaultFontSizePx,
		FontWeight: DefaultFontWeight,
		Italic:     DefaultItalic,
	}
}

// RawBadgeConfig carries untrusted values as they arrive from a form or the store.
// ItalicPresent mirrors checkbox semantics: the field was submitted at all.
type RawBadgeConfig struct {
	Label         string
	StyleID       string
	FontSize      string
	FontWeight    string
	ItalicPresent bool
}

// Product identifies the product a badge is rendered for. The badge renderer
// ignores it; it exists so other producers on the same extension point can use it.
type Product struct {
	ID     string `json:"id"`
	PostID string `json:"post_id,omitempty"`
}
