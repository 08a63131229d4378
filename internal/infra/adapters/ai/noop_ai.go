package ai

import (
	"context"

	"telegram-cocktail-bot/internal/domain"
	"telegram-cocktail-bot/internal/domain/ports/adapter"
)

var _ adapter.ToastAdapter = (*NoopAdapter)(nil)

// NoopAdapter stands in when no AI key is configured; every call reports the
// feature as unconfigured so the bot can answer with a friendly message.
type NoopAdapter struct{}

func NewNoopAdapter() *NoopAdapter { return &NoopAdapter{} }

func (n *NoopAdapter) GenerateToast(ctx context.Context, reason string) (string, error) {
	return "", domain.ErrNotConfigured
}
