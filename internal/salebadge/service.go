package salebadge

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/SaleBadge_Go/internal/badge"
	"github.com/osse101/SaleBadge_Go/internal/domain"
	"github.com/osse101/SaleBadge_Go/internal/hooks"
	"github.com/osse101/SaleBadge_Go/internal/logger"
	"github.com/osse101/SaleBadge_Go/internal/metrics"
	"github.com/osse101/SaleBadge_Go/internal/repository"
)

// Service defines the sale badge operations used by the HTTP layer
type Service interface {
	// RenderSaleFlash renders the badge for a product card. It never fails:
	// a settings read error renders the defaults.
	RenderSaleFlash(ctx context.Context, product domain.Product) string
	GetSettings(ctx context.Context) (domain.BadgeConfig, error)
	// SaveSettings normalizes and stores raw, returning what was stored.
	SaveSettings(ctx context.Context, raw domain.RawBadgeConfig, source string) (domain.BadgeConfig, error)
	Preview(cfg domain.BadgeConfig) []badge.PreviewItem
	Stylesheet() string
}

type service struct {
	repo     repository.BadgeSettings
	renderer *badge.Renderer
}

// NewService creates a new sale badge service
func NewService(repo repository.BadgeSettings, renderer *badge.Renderer) Service {
	if renderer == nil {
		renderer = badge.NewRenderer("")
	}
	return &service{
		repo:     repo,
		renderer: renderer,
	}
}

// Register makes the service the only producer of the sale_flash
// extension point, replacing whatever the theme or other components
// attached to it.
func Register(ctx context.Context, registry hooks.Registry, svc Service) {
	registry.ClearThenRegister(domain.HookSaleFlash, ProducerName,
		func(ctx context.Context, _ string, product domain.Product) string {
			return svc.RenderSaleFlash(ctx, product)
		})
	logger.FromContext(ctx).Info(LogMsgHookRegistered,
		"point", domain.HookSaleFlash,
		"producers", registry.Producers(domain.HookSaleFlash))
}

// RenderSaleFlash reads the configuration once and renders it.
func (s *service) RenderSaleFlash(ctx context.Context, product domain.Product) string {
	start := time.Now()
	log := logger.FromContext(ctx)

	cfg, err := s.repo.Load(ctx)
	if err != nil {
		log.Warn(LogMsgConfigLoadFailed, "error", err, "product_id", product.ID)
		metrics.ConfigLoadFailures.Inc()
		cfg = domain.DefaultBadgeConfig()
	}

	out := s.renderer.Render(cfg)

	styleID := badge.Clamp(cfg).StyleID
	metrics.BadgesRendered.WithLabelValues(strconv.Itoa(styleID)).Inc()
	metrics.BadgeRenderDuration.Observe(time.Since(start).Seconds())
	log.Debug(LogMsgBadgeRendered, "product_id", product.ID, "style_id", styleID, "style", badge.StyleName(styleID))
	return out
}

// GetSettings returns the stored configuration
func (s *service) GetSettings(ctx context.Context) (domain.BadgeConfig, error) {
	cfg, err := s.repo.Load(ctx)
	if err != nil {
		return domain.BadgeConfig{}, fmt.Errorf("%s: %w", ErrMsgLoadSettings, err)
	}
	return cfg, nil
}

// SaveSettings writes all five values of a submission
func (s *service) SaveSettings(ctx context.Context, raw domain.RawBadgeConfig, source string) (domain.BadgeConfig, error) {
	cfg := badge.Normalize(raw)
	if err := s.repo.Save(ctx, cfg); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "error", err, "source", source)
		return domain.BadgeConfig{}, fmt.Errorf("%s: %w", ErrMsgSaveSettings, err)
	}
	metrics.SettingsSaved.WithLabelValues(source).Inc()
	return cfg, nil
}

// Preview renders cfg once per style
func (s *service) Preview(cfg domain.BadgeConfig) []badge.PreviewItem {
	return s.renderer.RenderPreview(cfg)
}

// Stylesheet returns the rules for every style
func (s *service) Stylesheet() string {
	return badge.RenderStylesheet()
}
