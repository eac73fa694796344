package domain

// Option keys in the configuration store. The prefix matches the keys the
// storefront plugin has always written so existing installs keep their values.
const (
	OptionKeyLabel      = "woosale_customizer_ajk_label"
	OptionKeyStyle      = "woosale_customizer_ajk_style"
	OptionKeyFontSize   = "woosale_customizer_ajk_font_size"
	OptionKeyFontWeight = "woosale_customizer_ajk_font_weight"
	OptionKeyItalic     = "woosale_customizer_ajk_italic"
)

// OptionKeys lists every key the badge configuration occupies, in save order.
var OptionKeys = []string{
	OptionKeyLabel,
	OptionKeyStyle,
	OptionKeyFontSize,
	OptionKeyFontWeight,
	OptionKeyItalic,
}

// Default badge configuration values
const (
	DefaultLabel      = "PROMOCJA"
	DefaultStyleID    = 1
	DefaultFontSizePx = 11
	DefaultFontWeight = "700"
	DefaultItalic     = false
)

// Accepted ranges
const (
	MinStyleID    = 1
	MaxStyleID    = 10
	MinFontSizePx = 8
	MaxFontSizePx = 24
)

// FontWeights are the weights offered by the settings form.
var FontWeights = []string{"400", "500", "600", "700", "800"}

// Stored boolean representations
const (
	StoredTrue  = "1"
	StoredFalse = "0"
)

// Extension points
const (
	// HookSaleFlash produces the sale badge markup for a product card.
	HookSaleFlash = "sale_flash"
)

// DefaultSaleFlashHTML is what the storefront renders when nothing replaces it.
const DefaultSaleFlashHTML = `<span class="onsale">Sale!</span>`

// Admin form field names and nonce action
const (
	FormFieldLabel      = "woosale_customizer_ajk_label"
	FormFieldStyle      = "woosale_customizer_ajk_style"
	FormFieldFontSize   = "woosale_customizer_ajk_font_size"
	FormFieldFontWeight = "woosale_customizer_ajk_font_weight"
	FormFieldItalic     = "woosale_customizer_ajk_italic"
	FormFieldSubmit     = "woosale_customizer_ajk_submit"
	FormFieldNonce      = "woosale_customizer_ajk_nonce"
	NonceActionSave     = "woosale_customizer_ajk_save"
)
