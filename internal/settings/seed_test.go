package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SaleBadge_Go/internal/domain"
	"github.com/osse101/SaleBadge_Go/internal/validation"
)

func newSeedValidator(t *testing.T) validation.SchemaValidator {
	t.Helper()
	v := validation.NewSchemaValidator()
	require.NoError(t, RegisterSeedSchema(v))
	return v
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSeed(t *testing.T) {
	v := newSeedValidator(t)

	t.Run("missing file uses factory defaults", func(t *testing.T) {
		cfg, err := LoadSeed(filepath.Join(t.TempDir(), "none.json"), v)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultBadgeConfig(), cfg)
	})

	t.Run("empty path uses factory defaults", func(t *testing.T) {
		cfg, err := LoadSeed("", v)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultBadgeConfig(), cfg)
	})

	t.Run("partial file overrides given fields", func(t *testing.T) {
		cfg, err := LoadSeed(writeSeed(t, `{"label": " <i>OKAZJA</i> ", "style_id": 5, "italic": true}`), v)
		require.NoError(t, err)
		assert.Equal(t, domain.BadgeConfig{
			Label:      "OKAZJA",
			StyleID:    5,
			FontSizePx: domain.DefaultFontSizePx,
			FontWeight: domain.DefaultFontWeight,
			Italic:     true,
		}, cfg)
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := LoadSeed(writeSeed(t, `{"style_id": 12}`), v)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidSeed))
		assert.Contains(t, err.Error(), "/style_id")
	})

	t.Run("unknown weight rejected", func(t *testing.T) {
		_, err := LoadSeed(writeSeed(t, `{"font_weight": "900"}`), v)
		assert.ErrorIs(t, err, domain.ErrInvalidSeed)
	})
}

func TestLoadSeed_RepositoryFile(t *testing.T) {
	cfg, err := LoadSeed("../../configs/badge_seed.json", newSeedValidator(t))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBadgeConfig(), cfg)
}
