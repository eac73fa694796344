package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SaleBadge_Go/internal/domain"
)

func TestRepository_LoadDefaults(t *testing.T) {
	repo := NewRepository(NewMemoryStore())

	cfg, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBadgeConfig(), cfg)
}

func TestRepository_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewRepository(store)

	want := domain.BadgeConfig{Label: "WYPRZEDAŻ", StyleID: 3, FontSizePx: 14, FontWeight: "600", Italic: true}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Stored representation
	v, _ := store.Get(ctx, domain.OptionKeyStyle, "")
	assert.Equal(t, "3", v)
	v, _ = store.Get(ctx, domain.OptionKeyItalic, "")
	assert.Equal(t, "1", v)
}

func TestRepository_SaveClampsOutOfRange(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewRepository(store)

	require.NoError(t, repo.Save(ctx, domain.BadgeConfig{Label: "", StyleID: 99, FontSizePx: 2, FontWeight: ""}))

	style, _ := store.Get(ctx, domain.OptionKeyStyle, "")
	size, _ := store.Get(ctx, domain.OptionKeyFontSize, "")
	weight, _ := store.Get(ctx, domain.OptionKeyFontWeight, "")
	label, _ := store.Get(ctx, domain.OptionKeyLabel, "unset")
	assert.Equal(t, "1", style)
	assert.Equal(t, "11", size)
	assert.Equal(t, "700", weight)
	assert.Equal(t, "", label, "an empty label is stored as empty")

	cfg, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Label)
}

func TestRepository_LoadNormalizesCorruptValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Set(ctx, domain.OptionKeyStyle, "banana")
	_ = store.Set(ctx, domain.OptionKeyFontSize, "300")
	_ = store.Set(ctx, domain.OptionKeyItalic, "yes")
	_ = store.Set(ctx, domain.OptionKeyLabel, "  HOT  ")

	cfg, err := NewRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.StyleID)
	assert.Equal(t, 11, cfg.FontSizePx)
	assert.False(t, cfg.Italic)
	assert.Equal(t, "HOT", cfg.Label)
}

func TestRepository_ActivateKeepsExistingValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Set(ctx, domain.OptionKeyLabel, "OKAZJA")

	repo := NewRepository(store)
	added, err := repo.Activate(ctx, domain.DefaultBadgeConfig())
	require.NoError(t, err)
	assert.Equal(t, 4, added)

	cfg, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OKAZJA", cfg.Label)

	added, err = repo.Activate(ctx, domain.DefaultBadgeConfig())
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestRepository_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	t.Run("load", func(t *testing.T) {
		store := &MockStore{}
		store.On("Get", mock.Anything, mock.Anything, mock.Anything).Return("", boom).Once()

		_, err := NewRepository(store).Load(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStoreFailure)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), ErrMsgFailedToReadOption)
		store.AssertExpectations(t)
	})

	t.Run("save stops at first failure", func(t *testing.T) {
		store := &MockStore{}
		store.On("Set", mock.Anything, domain.OptionKeyLabel, "X").Return(nil)
		store.On("Set", mock.Anything, domain.OptionKeyStyle, "2").Return(boom)

		err := NewRepository(store).Save(ctx, domain.BadgeConfig{Label: "X", StyleID: 2, FontSizePx: 11, FontWeight: "700"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStoreFailure)
		store.AssertNotCalled(t, "Set", mock.Anything, domain.OptionKeyFontSize, mock.Anything)
	})

	t.Run("activate", func(t *testing.T) {
		store := &MockStore{}
		store.On("Add", mock.Anything, domain.OptionKeyLabel, domain.DefaultLabel).Return(false, boom)

		added, err := NewRepository(store).Activate(ctx, domain.DefaultBadgeConfig())
		require.Error(t, err)
		assert.Zero(t, added)
		assert.Contains(t, err.Error(), ErrMsgFailedToSeedOption)
	})
}

// batchOnlyStore fails single-key reads so tests can tell Load used GetMany.
type batchOnlyStore struct {
	*MemoryStore
	batchReads int
}

func (s *batchOnlyStore) Get(context.Context, string, string) (string, error) {
	return "", errors.New("single-key read")
}

func (s *batchOnlyStore) GetMany(ctx context.Context, defaults map[string]string) (map[string]string, error) {
	s.batchReads++
	return s.MemoryStore.GetMany(ctx, defaults)
}

func TestRepository_LoadReadsAllKeysInOneBatch(t *testing.T) {
	ctx := context.Background()
	store := &batchOnlyStore{MemoryStore: NewMemoryStore()}
	repo := NewRepository(store)

	want := domain.BadgeConfig{Label: "OKAZJA", StyleID: 5, FontSizePx: 16, FontWeight: "800", Italic: true}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, store.batchReads)
}
