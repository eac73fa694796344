package salebadge

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SaleBadge_Go/internal/badge"
	"github.com/osse101/SaleBadge_Go/internal/domain"
	"github.com/osse101/SaleBadge_Go/internal/hooks"
	"github.com/osse101/SaleBadge_Go/internal/metrics"
	"github.com/osse101/SaleBadge_Go/internal/settings"
	"github.com/osse101/SaleBadge_Go/mocks"
)

var errStoreDown = errors.New("connection refused")

func TestRenderSaleFlash_UsesStoredConfig(t *testing.T) {
	repo := mocks.NewMockRepositoryBadgeSettings(t)
	repo.On("Load", mock.Anything).Return(domain.BadgeConfig{
		Label: "OKAZJA", StyleID: 3, FontSizePx: 14, FontWeight: "600", Italic: true,
	}, nil).Once()

	svc := NewService(repo, nil)
	out := svc.RenderSaleFlash(context.Background(), domain.Product{ID: "7"})

	assert.Equal(t,
		`<span class="onsale wsc-badge style-3" style="font-size:14px !important;font-weight:600 !important;font-style:italic !important">OKAZJA</span>`,
		out)
}

func TestRenderSaleFlash_StoreFailureRendersDefaults(t *testing.T) {
	repo := mocks.NewMockRepositoryBadgeSettings(t)
	repo.On("Load", mock.Anything).Return(domain.BadgeConfig{}, errStoreDown).Once()

	before := testutil.ToFloat64(metrics.ConfigLoadFailures)
	out := NewService(repo, nil).RenderSaleFlash(context.Background(), domain.Product{})

	assert.Equal(t, badge.RenderBadge(domain.DefaultBadgeConfig()), out)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ConfigLoadFailures))
}

func TestRenderSaleFlash_EmptyLabelUsesRendererFallback(t *testing.T) {
	repo := mocks.NewMockRepositoryBadgeSettings(t)
	cfg := domain.DefaultBadgeConfig()
	cfg.Label = "   "
	repo.On("Load", mock.Anything).Return(cfg, nil)

	out := NewService(repo, badge.NewRenderer("SALE")).RenderSaleFlash(context.Background(), domain.Product{})
	assert.Contains(t, out, ">SALE</span>")
}

func TestRegister_ReplacesOtherProducers(t *testing.T) {
	repo := mocks.NewMockRepositoryBadgeSettings(t)
	repo.On("Load", mock.Anything).Return(domain.DefaultBadgeConfig(), nil)

	registry := hooks.NewMemoryRegistry()
	registry.Register(domain.HookSaleFlash, "theme", func(_ context.Context, html string, _ domain.Product) string {
		return "<div>" + html + "</div>"
	})

	Register(context.Background(), registry, NewService(repo, nil))

	assert.Equal(t, []string{ProducerName}, registry.Producers(domain.HookSaleFlash))
	out := registry.Apply(context.Background(), domain.HookSaleFlash, domain.DefaultSaleFlashHTML, domain.Product{ID: "1"})
	assert.Equal(t, badge.RenderBadge(domain.DefaultBadgeConfig()), out)
	assert.NotContains(t, out, "Sale!")
}

func TestSaveSettings_NormalizesBeforeSaving(t *testing.T) {
	repo := mocks.NewMockRepositoryBadgeSettings(t)
	want := domain.BadgeConfig{Label: "Hot deal", StyleID: 1, FontSizePx: 11, FontWeight: "700", Italic: false}
	repo.On("Save", mock.Anything, want).Return(nil).Once()

	before := testutil.ToFloat64(metrics.SettingsSaved.WithLabelValues(metrics.SourceForm))
	got, err := NewService(repo, nil).SaveSettings(context.Background(), domain.RawBadgeConfig{
		Label:    "  <b>Hot</b>   deal ",
		StyleID:  "11",
		FontSize: "abc",
	}, metrics.SourceForm)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SettingsSaved.WithLabelValues(metrics.SourceForm)))
}

func TestSaveSettings_StoreFailure(t *testing.T) {
	repo := mocks.NewMockRepositoryBadgeSettings(t)
	repo.On("Save", mock.Anything, mock.Anything).Return(errStoreDown)

	_, err := NewService(repo, nil).SaveSettings(context.Background(), domain.RawBadgeConfig{}, metrics.SourceAPI)
	assert.ErrorIs(t, err, errStoreDown)
	assert.ErrorContains(t, err, ErrMsgSaveSettings)
}

func TestGetSettings(t *testing.T) {
	repo := mocks.NewMockRepositoryBadgeSettings(t)
	repo.On("Load", mock.Anything).Return(domain.BadgeConfig{}, errStoreDown).Once()

	_, err := NewService(repo, nil).GetSettings(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}

// Full path through the real repository and in-memory store.
func TestSaveThenRender_EndToEnd(t *testing.T) {
	ctx := context.Background()
	repo := settings.NewRepository(settings.NewMemoryStore())
	_, err := repo.Activate(ctx, domain.DefaultBadgeConfig())
	require.NoError(t, err)

	svc := NewService(repo, nil)
	registry := hooks.NewMemoryRegistry()
	Register(ctx, registry, svc)

	_, err = svc.SaveSettings(ctx, domain.RawBadgeConfig{
		Label: "Tom & Jerry", StyleID: "5", FontSize: "18", FontWeight: "800", ItalicPresent: true,
	}, metrics.SourceForm)
	require.NoError(t, err)

	out := registry.Apply(ctx, domain.HookSaleFlash, domain.DefaultSaleFlashHTML, domain.Product{ID: "1"})
	assert.Equal(t,
		`<span class="onsale wsc-badge style-5" style="font-size:18px !important;font-weight:800 !important;font-style:italic !important">Tom &amp; Jerry</span>`,
		out)

	assert.Equal(t, badge.RenderStylesheet(), svc.Stylesheet())
	assert.Len(t, svc.Preview(domain.DefaultBadgeConfig()), 10)
}
