package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-cocktail-bot/internal/application"
	"telegram-cocktail-bot/internal/domain"
	"telegram-cocktail-bot/internal/domain/model"
	"telegram-cocktail-bot/internal/infra/logging"
	"telegram-cocktail-bot/internal/infra/metrics"
)

// handleQuery routes inline button presses. Payloads are either the literal
// re-roll token or a bare drink id.
func (r *RealTelegramBotAdapter) handleQuery(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	if query == nil || query.From == nil {
		return errors.New("invalid callback query")
	}

	// Stop the telegram spinner when we return.
	defer func() { _, _ = r.bot.Request(tgbotapi.NewCallback(query.ID, "")) }()

	var chatID int64
	if query.Message != nil && query.Message.Chat != nil {
		chatID = query.Message.Chat.ID
	} else {
		chatID = query.From.ID
	}
	if chatID == 0 {
		return nil
	}

	ctx = logging.WithTgID(ctx, query.From.ID)
	data := strings.TrimSpace(query.Data)
	r.facade.LogEvent(ctx, query.From.ID, query.From.UserName, model.EventCallback, data)

	switch {
	case data == application.CallbackRandom:
		metrics.IncTelegramCallback("random")
		return r.randomCBRoute(ctx, chatID)
	case isDrinkID(data):
		metrics.IncTelegramCallback("lookup")
		return r.lookupCBRoute(ctx, chatID, data)
	default:
		metrics.IncTelegramCallback("unknown")
		r.log.Warn().Str("data", data).Msg("unknown callback data")
		return nil
	}
}

func (r *RealTelegramBotAdapter) randomCBRoute(ctx context.Context, chatID int64) error {
	reply, err := r.facade.Random(ctx)
	if err != nil {
		logging.With(ctx, r.log).Error().Err(err).Msg("random cocktail failed")
		return r.out.SendMessage(ctx, chatID, r.translator.T("error_generic"))
	}
	return r.render(ctx, chatID, reply)
}

func (r *RealTelegramBotAdapter) lookupCBRoute(ctx context.Context, chatID int64, id string) error {
	reply, err := r.facade.Lookup(ctx, id)
	switch {
	case err == nil:
		return r.render(ctx, chatID, reply)
	case errors.Is(err, domain.ErrNotFound):
		return r.out.SendMessage(ctx, chatID, r.translator.T("no_results_search", id))
	default:
		logging.With(ctx, r.log).Error().Err(err).Str("drink_id", id).Msg("cocktail lookup failed")
		return r.out.SendMessage(ctx, chatID, r.translator.T("error_generic"))
	}
}

// isDrinkID reports whether data looks like a TheCocktailDB numeric drink id.
func isDrinkID(data string) bool {
	if data == "" {
		return false
	}
	for _, c := range data {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
