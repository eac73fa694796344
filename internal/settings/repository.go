package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/SaleBadge_Go/internal/badge"
	"github.com/osse101/SaleBadge_Go/internal/domain"
	"github.com/osse101/SaleBadge_Go/internal/logger"
)

// Repository reads and writes the badge configuration as five option keys.
type Repository struct {
	store Store
}

// NewRepository creates a Repository over store.
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// Load reads every key with its explicit default and normalizes the result.
// The stored label is returned as stored (trimmed); an empty label is only
// replaced when the badge is rendered. Stores implementing BatchGetter are
// read in one call, so a concurrent Save is seen entirely or not at all.
func (r *Repository) Load(ctx context.Context) (domain.BadgeConfig, error) {
	values, err := readMany(ctx, r.store, encode(domain.DefaultBadgeConfig()))
	if err != nil {
		return domain.BadgeConfig{}, fmt.Errorf("%s: %w: %w", ErrMsgFailedToReadOption, domain.ErrStoreFailure, err)
	}

	cfg := badge.Normalize(domain.RawBadgeConfig{
		StyleID:       values[domain.OptionKeyStyle],
		FontSize:      values[domain.OptionKeyFontSize],
		FontWeight:    values[domain.OptionKeyFontWeight],
		ItalicPresent: values[domain.OptionKeyItalic] == domain.StoredTrue,
	})
	cfg.Label = strings.TrimSpace(values[domain.OptionKeyLabel])
	return cfg, nil
}

// Save writes all five values, in one batch when the store supports it.
// Partial updates are not supported.
func (r *Repository) Save(ctx context.Context, cfg domain.BadgeConfig) error {
	cfg = badge.Clamp(cfg)
	values := encode(cfg)

	if batch, ok := r.store.(BatchSetter); ok {
		if err := batch.SetMany(ctx, values); err != nil {
			return fmt.Errorf("%s: %w: %w", ErrMsgFailedToWriteOption, domain.ErrStoreFailure, err)
		}
	} else {
		for _, key := range domain.OptionKeys {
			if err := r.store.Set(ctx, key, values[key]); err != nil {
				return fmt.Errorf("%s %s: %w: %w", ErrMsgFailedToWriteOption, key, domain.ErrStoreFailure, err)
			}
		}
	}

	logger.FromContext(ctx).Info(LogMsgSettingsSaved,
		"style_id", cfg.StyleID,
		"font_size_px", cfg.FontSizePx,
		"font_weight", cfg.FontWeight,
		"italic", cfg.Italic)
	return nil
}

// Activate writes seed values for keys that have never been set and returns
// how many keys it wrote. Existing values are left alone.
func (r *Repository) Activate(ctx context.Context, seed domain.BadgeConfig) (int, error) {
	values := encode(badge.Clamp(seed))
	log := logger.FromContext(ctx)

	added := 0
	for _, key := range domain.OptionKeys {
		ok, err := r.store.Add(ctx, key, values[key])
		if err != nil {
			return added, fmt.Errorf("%s %s: %w: %w", ErrMsgFailedToSeedOption, key, domain.ErrStoreFailure, err)
		}
		if ok {
			added++
			log.Debug(LogMsgOptionSeeded, "key", key)
		}
	}

	log.Info(LogMsgActivationDone, "seeded_keys", added)
	return added, nil
}

func encode(cfg domain.BadgeConfig) map[string]string {
	italic := domain.StoredFalse
	if cfg.Italic {
		italic = domain.StoredTrue
	}
	return map[string]string{
		domain.OptionKeyLabel:      cfg.Label,
		domain.OptionKeyStyle:      strconv.Itoa(cfg.StyleID),
		domain.OptionKeyFontSize:   strconv.Itoa(cfg.FontSizePx),
		domain.OptionKeyFontWeight: cfg.FontWeight,
		domain.OptionKeyItalic:     italic,
	}
}
