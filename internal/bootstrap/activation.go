package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SaleBadge_Go/internal/repository"
	"github.com/osse101/SaleBadge_Go/internal/settings"
	"github.com/osse101/SaleBadge_Go/internal/validation"
)

// ActivateBadgeDefaults loads the seed file, validates it against its
// schema and writes every badge option that is not stored yet. Existing
// values are never overwritten.
func ActivateBadgeDefaults(ctx context.Context, repo repository.BadgeSettings, seedPath string) error {
	slog.Info(LogMsgActivatingDefaults, "seed_file", seedPath)

	schemas := validation.NewSchemaValidator()
	if err := settings.RegisterSeedSchema(schemas); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterSeedSchema, err)
	}

	seed, err := settings.LoadSeed(seedPath, schemas)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadSeed, err)
	}

	written, err := repo.Activate(ctx, seed)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedActivate, err)
	}

	if written > 0 {
		slog.Info(LogMsgDefaultsWritten, "written", written, "style_id", seed.StyleID)
	} else {
		slog.Info(LogMsgDefaultsPresent)
	}
	return nil
}
