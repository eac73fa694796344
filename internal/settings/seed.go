package settings

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/osse101/SaleBadge_Go/internal/badge"
	"github.com/osse101/SaleBadge_Go/internal/domain"
	"github.com/osse101/SaleBadge_Go/internal/validation"
)

// SeedSchemaName is the name the seed schema is registered under.
const SeedSchemaName = "badge_seed.schema.json"

//go:embed schemas/badge_seed.schema.json
var seedSchema []byte

// seedFile mirrors the JSON seed document. Pointers tell absent fields from zero values.
type seedFile struct {
	Label      *string `json:"label"`
	StyleID    *int    `json:"style_id"`
	FontSizePx *int    `json:"font_size_px"`
	FontWeight *string `json:"font_weight"`
	Italic     *bool   `json:"italic"`
}

// RegisterSeedSchema makes the seed schema available to v.
func RegisterSeedSchema(v validation.SchemaValidator) error {
	return v.RegisterSchema(SeedSchemaName, seedSchema)
}

// LoadSeed reads the activation defaults from path. A missing file yields
// the factory defaults; fields absent from the file keep their factory value.
// The validator must have the seed schema registered.
func LoadSeed(path string, v validation.SchemaValidator) (domain.BadgeConfig, error) {
	cfg := domain.DefaultBadgeConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	if err := v.ValidateBytes(data, SeedSchemaName); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", domain.ErrInvalidSeed, path, err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", domain.ErrInvalidSeed, path, err)
	}

	if seed.Label != nil {
		cfg.Label = badge.NormalizeLabel(*seed.Label)
	}
	if seed.StyleID != nil {
		cfg.StyleID = *seed.StyleID
	}
	if seed.FontSizePx != nil {
		cfg.FontSizePx = *seed.FontSizePx
	}
	if seed.FontWeight != nil {
		cfg.FontWeight = *seed.FontWeight
	}
	if seed.Italic != nil {
		cfg.Italic = *seed.Italic
	}

	return badge.Clamp(cfg), nil
}
