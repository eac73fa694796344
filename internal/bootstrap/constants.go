package bootstrap

// =============================================================================
// Logger Configuration
// =============================================================================

// Environments that get source locations in log lines
var sourceLoggingEnvironments = []string{"dev", "development"}

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting sale badge service"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Option Store
// =============================================================================

const (
	LogMsgConnectingDatabase = "Connecting to PostgreSQL option store"
	LogMsgMigrationsApplied  = "Database migrations applied"
	LogMsgUsingMemoryStore   = "Using in-memory option store; settings are lost on restart"
	LogMsgCacheEnabled       = "Option cache enabled"

	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrate         = "failed to migrate database"
	ErrMsgFailedRegisterMetrics = "failed to register cache metrics"
)

// =============================================================================
// Activation
// =============================================================================

const (
	LogMsgActivatingDefaults = "Writing badge defaults for absent options..."
	LogMsgDefaultsWritten    = "Badge defaults written"
	LogMsgDefaultsPresent    = "Badge options already present, activation skipped"

	ErrMsgFailedRegisterSeedSchema = "failed to register seed schema"
	ErrMsgFailedLoadSeed           = "failed to load badge seed"
	ErrMsgFailedActivate           = "failed to activate badge defaults"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
