package repository

import (
	"context"

	"github.com/osse101/SaleBadge_Go/internal/domain"
)

// BadgeSettings defines the interface for badge configuration persistence
type BadgeSettings interface {
	Load(ctx context.Context) (domain.BadgeConfig, error)
	Save(ctx context.Context, cfg domain.BadgeConfig) error
	Activate(ctx context.Context, seed domain.BadgeConfig) (int, error)
}
