package postgres

const upsertOptionQuery = `
	INSERT INTO options (option_name, option_value, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (option_name)
	DO UPDATE SET option_value = EXCLUDED.option_value, updated_at = NOW()
`

const selectOptionsQuery = `
	SELECT option_name, option_value
	FROM options
	WHERE option_name = ANY($1)
`

// Error Messages - Option Reads
const (
	ErrMsgFailedToGetOptions = "failed to get options"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
