package i18n

// Message keys shared by every catalog
const (
	MsgDefaultLabel      = "default_label"
	MsgPageTitle         = "page_title"
	MsgPageIntro         = "page_intro"
	MsgFieldLabel        = "field_label"
	MsgFieldLabelHelp    = "field_label_help"
	MsgFieldStyle        = "field_style"
	MsgFieldFontSize     = "field_font_size"
	MsgFieldFontWeight   = "field_font_weight"
	MsgFieldItalic       = "field_italic"
	MsgButtonSave        = "button_save"
	MsgPreviewHeading    = "preview_heading"
	MsgStyleOption       = "style_option"
	MsgNoticeSaved       = "notice_saved"
	MsgErrorInvalidNonce = "error_invalid_nonce"
	MsgErrorSaveFailed   = "error_save_failed"
	MsgErrorLoadFailed   = "error_load_failed"

	// MsgWeightPrefix is joined with a font weight, e.g. "weight_700"
	MsgWeightPrefix = "weight_"
)

const (
	// DefaultLanguage is used when nothing in Accept-Language matches
	DefaultLanguage = "pl"

	localesDir = "locales"
	localeExt  = ".yaml"
)

// Error messages
const (
	ErrMsgReadLocales     = "failed to read locales"
	ErrMsgParseLocale     = "failed to parse locale"
	ErrMsgInvalidLanguage = "invalid language tag"
	ErrMsgSetMessage      = "failed to add message"
	ErrMsgNoLocales       = "no locales found"
)
