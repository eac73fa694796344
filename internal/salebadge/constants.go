package salebadge

// ProducerName identifies the badge filter on the sale_flash extension point
const ProducerName = "sale-badge"

// Log messages
const (
	LogMsgHookRegistered   = "Sale badge bound to extension point"
	LogMsgConfigLoadFailed = "Failed to load badge settings, rendering defaults"
	LogMsgBadgeRendered    = "Sale badge rendered"
	LogMsgSaveFailed       = "Failed to save badge settings"
)

// Error messages
const (
	ErrMsgLoadSettings = "failed to load badge settings"
	ErrMsgSaveSettings = "failed to save badge settings"
)
