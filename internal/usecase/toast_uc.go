package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"telegram-cocktail-bot/internal/domain"
	"telegram-cocktail-bot/internal/domain/ports/adapter"
	"telegram-cocktail-bot/internal/infra/logging"
	"telegram-cocktail-bot/internal/infra/metrics"
)

var _ ToastUseCase = (*toastUC)(nil)

// ToastUseCase generates a short toast for an occasion.
type ToastUseCase interface {
	Generate(ctx context.Context, reason string) (string, error)
}

type toastUC struct {
	ai  adapter.ToastAdapter
	log *zerolog.Logger
}

func NewToastUseCase(ai adapter.ToastAdapter, logger *zerolog.Logger) *toastUC {
	return &toastUC{ai: ai, log: logger}
}

func (u *toastUC) Generate(ctx context.Context, reason string) (string, error) {
	defer logging.TraceDuration(u.log, "ToastUC.Generate")()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", domain.ErrInvalidArgument
	}

	start := time.Now()
	toast, err := u.ai.GenerateToast(ctx, reason)
	latency := int(time.Since(start).Milliseconds())
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			metrics.ObserveToast("unconfigured", latency)
		} else {
			metrics.ObserveToast("error", latency)
			u.log.Error().Err(err).Msg("toast generation failed")
		}
		return "", err
	}
	metrics.ObserveToast("ok", latency)
	return toast, nil
}
