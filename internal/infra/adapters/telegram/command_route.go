package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-cocktail-bot/internal/domain"
	"telegram-cocktail-bot/internal/domain/model"
	"telegram-cocktail-bot/internal/infra/logging"
)

type commandHandler func(ctx context.Context, message *tgbotapi.Message) error

// commandRoutes defines all available bot commands and their handlers.
func (r *RealTelegramBotAdapter) commandRoutes() map[string]commandHandler {
	return map[string]commandHandler{
		"start":       r.handleStartCommand,
		"help":        r.handleHelpCommand,
		"random":      r.handleRandomCommand,
		"search":      r.handleSearchCommand,
		"ingredient":  r.handleIngredientCommand,
		"toast_toxic": r.handleToastCommand,

		"stats": r.adminOnly(r.handleStatsCommand),
	}
}

// adminOnly rejects commands from non-admin users.
func (r *RealTelegramBotAdapter) adminOnly(next commandHandler) commandHandler {
	return func(ctx context.Context, message *tgbotapi.Message) error {
		if _, isAdmin := r.adminIDsMap[message.From.ID]; !isAdmin {
			return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("error_unauthorized"))
		}
		return next(ctx, message)
	}
}

func (r *RealTelegramBotAdapter) handleStartCommand(ctx context.Context, message *tgbotapi.Message) error {
	r.facade.LogEvent(ctx, message.From.ID, message.From.UserName, model.EventStart, "")

	_, isAdmin := r.adminIDsMap[message.From.ID]
	if err := r.SetMenuCommands(ctx, message.Chat.ID, isAdmin); err != nil {
		r.log.Warn().Err(err).Int64("tg_id", message.From.ID).Msg("failed to set menu commands")
	}

	return r.render(ctx, message.Chat.ID, r.facade.Start())
}

func (r *RealTelegramBotAdapter) handleHelpCommand(ctx context.Context, message *tgbotapi.Message) error {
	r.facade.LogEvent(ctx, message.From.ID, message.From.UserName, model.EventHelp, "")
	return r.render(ctx, message.Chat.ID, r.facade.Help())
}

func (r *RealTelegramBotAdapter) handleRandomCommand(ctx context.Context, message *tgbotapi.Message) error {
	r.facade.LogEvent(ctx, message.From.ID, message.From.UserName, model.EventRandom, "")

	reply, err := r.facade.Random(ctx)
	if err != nil {
		logging.With(ctx, r.log).Error().Err(err).Msg("random cocktail failed")
		return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("error_generic"))
	}
	return r.render(ctx, message.Chat.ID, reply)
}

func (r *RealTelegramBotAdapter) handleSearchCommand(ctx context.Context, message *tgbotapi.Message) error {
	query := message.CommandArguments()
	r.facade.LogEvent(ctx, message.From.ID, message.From.UserName, model.EventSearch, query)

	reply, err := r.facade.Search(ctx, query)
	switch {
	case err == nil:
		return r.render(ctx, message.Chat.ID, reply)
	case errors.Is(err, domain.ErrInvalidArgument):
		return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("usage_search"))
	case errors.Is(err, domain.ErrNotFound):
		return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("no_results_search", query))
	default:
		logging.With(ctx, r.log).Error().Err(err).Str("query", query).Msg("cocktail search failed")
		return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("error_generic"))
	}
}

func (r *RealTelegramBotAdapter) handleIngredientCommand(ctx context.Context, message *tgbotapi.Message) error {
	ingredient := message.CommandArguments()
	r.facade.LogEvent(ctx, message.From.ID, message.From.UserName, model.EventIngredient, ingredient)

	reply, err := r.facade.Ingredient(ctx, ingredient)
	switch {
	case err == nil:
		return r.render(ctx, message.Chat.ID, reply)
	case errors.Is(err, domain.ErrInvalidArgument):
		return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("usage_ingredient"))
	case errors.Is(err, domain.ErrNotFound):
		return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("no_results_ingredient", ingredient))
	default:
		logging.With(ctx, r.log).Error().Err(err).Str("ingredient", ingredient).Msg("ingredient filter failed")
		return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("error_generic"))
	}
}

func (r *RealTelegramBotAdapter) handleToastCommand(ctx context.Context, message *tgbotapi.Message) error {
	reason := message.CommandArguments()
	r.facade.LogEvent(ctx, message.From.ID, message.From.UserName, model.EventToast, reason)

	reply, err := r.facade.Toast(ctx, reason)
	switch {
	case err == nil:
		return r.render(ctx, message.Chat.ID, reply)
	case errors.Is(err, domain.ErrInvalidArgument):
		return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("usage_toast"))
	case errors.Is(err, domain.ErrNotConfigured):
		return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("toast_unavailable"))
	default:
		logging.With(ctx, r.log).Error().Err(err).Msg("toast generation failed")
		return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("toast_failed"))
	}
}

func (r *RealTelegramBotAdapter) handleStatsCommand(ctx context.Context, message *tgbotapi.Message) error {
	r.facade.LogEvent(ctx, message.From.ID, message.From.UserName, model.EventStats, "")

	reply, err := r.facade.Stats(ctx)
	if err != nil {
		logging.With(ctx, r.log).Error().Err(err).Msg("stats aggregation failed")
		return r.out.SendMessage(ctx, message.Chat.ID, r.translator.T("error_generic"))
	}
	return r.render(ctx, message.Chat.ID, reply)
}
