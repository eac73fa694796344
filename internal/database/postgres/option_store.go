package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SaleBadge_Go/internal/logger"
)

// OptionStore implements settings.Store on the options table
type OptionStore struct {
	db *pgxpool.Pool
}

// NewOptionStore creates a new OptionStore
func NewOptionStore(db *pgxpool.Pool) *OptionStore {
	return &OptionStore{db: db}
}

// Get returns the stored value for key, or def when the row does not exist
func (s *OptionStore) Get(ctx context.Context, key, def string) (string, error) {
	query := `SELECT option_value FROM options WHERE option_name = $1`

	var value string
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get option %s: %w", key, err)
	}
	return value, nil
}

// GetMany reads every key of defaults with one statement, so the values
// come from a single snapshot of the table
func (s *OptionStore) GetMany(ctx context.Context, defaults map[string]string) (map[string]string, error) {
	keys := make([]string, 0, len(defaults))
	values := make(map[string]string, len(defaults))
	for key, def := range defaults {
		keys = append(keys, key)
		values[key] = def
	}

	rows, err := s.db.Query(ctx, selectOptionsQuery, keys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOptions, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOptions, err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetOptions, err)
	}
	return values, nil
}

// Set inserts or replaces the value for key
func (s *OptionStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.Exec(ctx, upsertOptionQuery, key, value); err != nil {
		return fmt.Errorf("failed to set option %s: %w", key, err)
	}
	return nil
}

// Add inserts key only if it does not exist yet
func (s *OptionStore) Add(ctx context.Context, key, value string) (bool, error) {
	query := `
		INSERT INTO options (option_name, option_value)
		VALUES ($1, $2)
		ON CONFLICT (option_name) DO NOTHING
	`

	tag, err := s.db.Exec(ctx, query, key, value)
	if err != nil {
		return false, fmt.Errorf("failed to add option %s: %w", key, err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetMany writes every value in one transaction so a reader never sees a
// half-saved configuration
func (s *OptionStore) SetMany(ctx context.Context, values map[string]string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := tx.Exec(ctx, upsertOptionQuery, key, values[key]); err != nil {
			return fmt.Errorf("failed to set option %s: %w", key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgFailedToRollback, "error", err)
	}
}
