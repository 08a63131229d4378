package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"telegram-cocktail-bot/internal/application"
	"telegram-cocktail-bot/internal/config"
	"telegram-cocktail-bot/internal/domain/model"
	"telegram-cocktail-bot/internal/domain/ports/adapter"
	"telegram-cocktail-bot/internal/infra/i18n"
	"telegram-cocktail-bot/internal/infra/logging"
	"telegram-cocktail-bot/internal/infra/metrics"
)

var _ adapter.TelegramBotAdapter = (*RealTelegramBotAdapter)(nil)

// RealTelegramBotAdapter polls Telegram updates with tgbotapi and delegates
// every command and button press to the BotFacade.
type RealTelegramBotAdapter struct {
	bot        *tgbotapi.BotAPI
	cfg        *config.BotConfig
	facade     application.BotFacade
	translator *i18n.Translator
	log        *zerolog.Logger

	// out is the send surface the routes reply through. It is the adapter
	// itself by default; dev runs swap in the noop transport.
	out adapter.TelegramBotAdapter

	adminIDsMap   map[int64]struct{}
	updateWorkers int
	cancelPolling context.CancelFunc
}

func NewRealTelegramBotAdapter(
	cfg *config.BotConfig,
	facade application.BotFacade,
	translator *i18n.Translator,
	logger *zerolog.Logger,
) (*RealTelegramBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	if facade == nil {
		return nil, errors.New("bot facade is nil")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 5
	}

	adminMap := map[int64]struct{}{}
	for _, id := range cfg.AdminIDs {
		adminMap[id] = struct{}{}
	}

	r := &RealTelegramBotAdapter{
		bot:           bot,
		cfg:           cfg,
		facade:        facade,
		translator:    translator,
		log:           logger,
		adminIDsMap:   adminMap,
		updateWorkers: workers,
	}
	r.out = r
	return r, nil
}

// SetOutbound replaces the send surface, e.g. with the noop transport for
// dry runs. Updates are still polled and handled normally.
func (r *RealTelegramBotAdapter) SetOutbound(out adapter.TelegramBotAdapter) {
	if out != nil {
		r.out = out
	}
}

// StartPolling reads the long-poll update stream and fans updates out to a
// fixed worker pool. It blocks until ctx is cancelled.
func (r *RealTelegramBotAdapter) StartPolling(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := r.bot.GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	r.cancelPolling = cancel

	var wg sync.WaitGroup
	updateChan := make(chan tgbotapi.Update, 100)

	for i := 0; i < r.updateWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case up := <-updateChan:
					if err := r.handleUpdate(ctx, up); err != nil {
						r.log.Error().Err(err).Int("worker", id).Msg("update handling failed")
					}
				}
			}
		}(i)
	}

	for {
		select {
		case <-ctx.Done():
			close(updateChan)
			wg.Wait()
			return ctx.Err()
		case up := <-updates:
			updateChan <- up
		}
	}
}

func (r *RealTelegramBotAdapter) StopPolling() {
	if r.cancelPolling != nil {
		r.cancelPolling()
	}
}

func (r *RealTelegramBotAdapter) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.CallbackQuery != nil {
		return r.handleQuery(ctx, update.CallbackQuery)
	}

	msg := update.Message
	if msg == nil || msg.From == nil {
		return nil
	}
	ctx = logging.WithTgID(ctx, msg.From.ID)

	if !msg.IsCommand() {
		// Plain text is not part of any flow; nudge toward /help.
		return r.out.SendMessage(ctx, msg.Chat.ID, r.translator.T("unknown_command"))
	}

	command := msg.Command()
	metrics.IncTelegramCommand("/" + command)
	ctx = logging.WithCommand(ctx, "/"+command)

	if handler, ok := r.commandRoutes()[command]; ok {
		return handler(ctx, msg)
	}

	r.facade.LogEvent(ctx, msg.From.ID, msg.From.UserName, model.EventUnknown, "/"+command)
	return r.out.SendMessage(ctx, msg.Chat.ID, r.translator.T("unknown_command"))
}

// SendMessage implements the outbound port for plain text.
func (r *RealTelegramBotAdapter) SendMessage(ctx context.Context, chatID int64, text string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := r.bot.Send(msg); err != nil {
		metrics.IncTelegramSendFailure()
		return err
	}
	return nil
}

// SendButtons sends text with an inline keyboard.
func (r *RealTelegramBotAdapter) SendButtons(ctx context.Context, chatID int64, text string, rows [][]adapter.InlineButton) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if markup, ok := buildKeyboard(rows); ok {
		msg.ReplyMarkup = markup
	}
	if _, err := r.bot.Send(msg); err != nil {
		metrics.IncTelegramSendFailure()
		return err
	}
	return nil
}

// SendPhoto sends a photo by URL with a caption and an optional keyboard.
func (r *RealTelegramBotAdapter) SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, rows [][]adapter.InlineButton) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photoURL))
	msg.Caption = caption
	if markup, ok := buildKeyboard(rows); ok {
		msg.ReplyMarkup = markup
	}
	if _, err := r.bot.Send(msg); err != nil {
		metrics.IncTelegramSendFailure()
		return err
	}
	return nil
}

// render delivers a facade Reply, choosing photo or text transport.
func (r *RealTelegramBotAdapter) render(ctx context.Context, chatID int64, reply *application.Reply) error {
	if reply.ImageURL != "" {
		return r.out.SendPhoto(ctx, chatID, reply.ImageURL, reply.Text, reply.Buttons)
	}
	if len(reply.Buttons) > 0 {
		return r.out.SendButtons(ctx, chatID, reply.Text, reply.Buttons)
	}
	return r.out.SendMessage(ctx, chatID, reply.Text)
}

// SetMenuCommands registers the per-chat command menu; admins additionally
// see /stats.
func (r *RealTelegramBotAdapter) SetMenuCommands(ctx context.Context, chatID int64, isAdmin bool) error {
	commands := []tgbotapi.BotCommand{
		{Command: "random", Description: "Random cocktail"},
		{Command: "search", Description: "Search cocktails by name"},
		{Command: "ingredient", Description: "Find cocktails by ingredient"},
		{Command: "toast_toxic", Description: "Generate a toxic toast"},
		{Command: "help", Description: "Show help"},
	}
	if isAdmin {
		commands = append(commands, tgbotapi.BotCommand{Command: "stats", Description: "Usage statistics"})
	}

	scope := tgbotapi.NewBotCommandScopeChat(chatID)
	cfg := tgbotapi.NewSetMyCommandsWithScope(scope, commands...)
	_, err := r.bot.Request(cfg)
	return err
}

func buildKeyboard(rows [][]adapter.InlineButton) (tgbotapi.InlineKeyboardMarkup, bool) {
	kbRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		kbRow := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			label := strings.TrimSpace(btn.Text)
			if label == "" {
				label = "•"
			}
			var kb tgbotapi.InlineKeyboardButton
			switch {
			case btn.URL != "":
				kb = tgbotapi.NewInlineKeyboardButtonURL(label, btn.URL)
			case btn.Data != "":
				kb = tgbotapi.NewInlineKeyboardButtonData(label, btn.Data)
			default:
				kb = tgbotapi.NewInlineKeyboardButtonData(label, label)
			}
			kbRow = append(kbRow, kb)
		}
		kbRows = append(kbRows, kbRow)
	}
	if len(kbRows) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}
	return tgbotapi.NewInlineKeyboardMarkup(kbRows...), true
}
