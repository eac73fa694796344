package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidForm           = "Invalid form submission"
	ErrMsgInvalidProductID      = "Invalid product ID"

	// Settings error messages
	ErrMsgGetSettingsFailed  = "Failed to load badge settings"
	ErrMsgSaveSettingsFailed = "Failed to save badge settings"
	ErrMsgRenderPageFailed   = "Failed to render settings page"
)

// Log messages
const (
	LogMsgSettingsPageRendered = "Settings page rendered"
	LogMsgSettingsFormSaved    = "Settings saved from form"
	LogMsgSettingsAPISaved     = "Settings saved via API"
	LogMsgSubmitMarkerMissing  = "Settings form posted without submit marker, redisplaying"
	LogMsgNonceRejected        = "Settings form nonce rejected"
	LogMsgTemplateFailed       = "Failed to execute template"
	LogMsgReadinessFailed      = "Readiness check failed"
)

// Content types and caching
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeCSS  = "text/css; charset=utf-8"

	StylesheetCacheControl = "public, max-age=86400"
	FragmentCacheControl   = "no-cache"

	HeaderAcceptLanguage = "Accept-Language"
	HeaderContentLang    = "Content-Language"
)
