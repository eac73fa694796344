package settings

import "time"

// Cache configuration defaults
const (
	DefaultCacheSize = 64
	DefaultCacheTTL  = 30 * time.Second
)

// Log messages
const (
	LogMsgSettingsSaved    = "Badge settings saved"
	LogMsgOptionSeeded     = "Option seeded on activation"
	LogMsgActivationDone   = "Badge settings activated"
	LogMsgCacheInvalidated = "Option cache invalidated"
)

// Error messages
const (
	ErrMsgFailedToReadOption  = "failed to read option"
	ErrMsgFailedToWriteOption = "failed to write option"
	ErrMsgFailedToSeedOption  = "failed to seed option"
)
