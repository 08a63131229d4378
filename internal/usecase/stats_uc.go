package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"telegram-cocktail-bot/internal/domain/ports/repository"
	"telegram-cocktail-bot/internal/infra/logging"
)

var _ StatsUseCase = (*statsUC)(nil)

// Stats is the admin-facing usage summary.
type Stats struct {
	TotalUsers int
	Events     int
	ByCommand  map[string]int
}

// StatsUseCase aggregates analytics counters for the admin surfaces
// (the /stats bot command and the admin HTTP API).
type StatsUseCase interface {
	GetCounts(ctx context.Context, window time.Duration) (*Stats, error)
}

type statsUC struct {
	analytics repository.AnalyticsRepository
	log       *zerolog.Logger
}

func NewStatsUseCase(analytics repository.AnalyticsRepository, logger *zerolog.Logger) *statsUC {
	return &statsUC{analytics: analytics, log: logger}
}

func (u *statsUC) GetCounts(ctx context.Context, window time.Duration) (*Stats, error) {
	defer logging.TraceDuration(u.log, "StatsUC.GetCounts")()

	since := time.Now().Add(-window)

	users, err := u.analytics.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	events, err := u.analytics.CountEventsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	byKind, err := u.analytics.CountEventsByKindSince(ctx, since)
	if err != nil {
		return nil, err
	}

	return &Stats{TotalUsers: users, Events: events, ByCommand: byKind}, nil
}
