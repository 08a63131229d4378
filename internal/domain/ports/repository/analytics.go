package repository

import (
	"context"
	"time"

	"telegram-cocktail-bot/internal/domain/model"
)

// AnalyticsRepository persists usage events. LogEvent upserts the user row and
// appends the event atomically; a failed write must never fail the command
// that produced it, so callers log and drop the error.
type AnalyticsRepository interface {
	LogEvent(ctx context.Context, ev *model.Event) error
	CountUsers(ctx context.Context) (int, error)
	CountEventsSince(ctx context.Context, since time.Time) (int, error)
	CountEventsByKindSince(ctx context.Context, since time.Time) (map[string]int, error)
}
