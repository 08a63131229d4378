package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"telegram-cocktail-bot/internal/domain/model"
	"telegram-cocktail-bot/internal/domain/ports/adapter"
	"telegram-cocktail-bot/internal/domain/ports/repository"
	"telegram-cocktail-bot/internal/infra/i18n"
	"telegram-cocktail-bot/internal/usecase"
)

// searchExtraButtons caps how many additional search matches become buttons
// under the first, fully rendered match.
const searchExtraButtons = 5

// statsWindow is the period the /stats summary covers.
const statsWindow = 7 * 24 * time.Hour

// BotFacade is the single entry point the Telegram adapter talks to. Each
// handler returns a ready-to-send Reply; errors bubble up untranslated so the
// transport layer can map them to user-facing messages.
type BotFacade interface {
	Start() *Reply
	Help() *Reply
	Random(ctx context.Context) (*Reply, error)
	Search(ctx context.Context, query string) (*Reply, error)
	Ingredient(ctx context.Context, ingredient string) (*Reply, error)
	Lookup(ctx context.Context, id string) (*Reply, error)
	Toast(ctx context.Context, reason string) (*Reply, error)
	Stats(ctx context.Context) (*Reply, error)
	LogEvent(ctx context.Context, tgID int64, username string, kind model.EventKind, payload string)
}

var _ BotFacade = (*botFacade)(nil)

type botFacade struct {
	cocktails usecase.CocktailUseCase
	toasts    usecase.ToastUseCase
	stats     usecase.StatsUseCase
	analytics repository.AnalyticsRepository
	format    *Formatter
	tr        *i18n.Translator
	log       *zerolog.Logger
}

func NewBotFacade(
	cocktails usecase.CocktailUseCase,
	toasts usecase.ToastUseCase,
	stats usecase.StatsUseCase,
	analytics repository.AnalyticsRepository,
	tr *i18n.Translator,
	logger *zerolog.Logger,
) BotFacade {
	return &botFacade{
		cocktails: cocktails,
		toasts:    toasts,
		stats:     stats,
		analytics: analytics,
		format:    NewFormatter(tr),
		tr:        tr,
		log:       logger,
	}
}

func (f *botFacade) Start() *Reply {
	return &Reply{
		Text:    f.tr.T("welcome_message"),
		Buttons: [][]adapter.InlineButton{f.format.RandomButtonRow()},
	}
}

func (f *botFacade) Help() *Reply {
	return &Reply{Text: f.tr.T("help_message")}
}

func (f *botFacade) Random(ctx context.Context) (*Reply, error) {
	c, err := f.cocktails.Random(ctx)
	if err != nil {
		return nil, err
	}
	return f.format.Cocktail(c), nil
}

// Search renders the best match in full and lists up to searchExtraButtons
// further matches as buttons below it.
func (f *botFacade) Search(ctx context.Context, query string) (*Reply, error) {
	matches, err := f.cocktails.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}
	extra := f.format.MatchButtonRows(matches[1:], searchExtraButtons)
	return f.format.Cocktail(matches[0], extra...), nil
}

func (f *botFacade) Ingredient(ctx context.Context, ingredient string) (*Reply, error) {
	refs, err := f.cocktails.FilterByIngredient(ctx, ingredient)
	if err != nil {
		return nil, err
	}
	return f.format.RefList(strings.TrimSpace(ingredient), refs), nil
}

func (f *botFacade) Lookup(ctx context.Context, id string) (*Reply, error) {
	c, err := f.cocktails.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return f.format.Cocktail(c), nil
}

func (f *botFacade) Toast(ctx context.Context, reason string) (*Reply, error) {
	text, err := f.toasts.Generate(ctx, reason)
	if err != nil {
		return nil, err
	}
	return &Reply{Text: f.tr.T("toast_header", strings.TrimSpace(reason), text)}, nil
}

func (f *botFacade) Stats(ctx context.Context) (*Reply, error) {
	s, err := f.stats.GetCounts(ctx, statsWindow)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(f.tr.T("stats_header"))
	b.WriteString("\n" + f.tr.T("stats_users", s.TotalUsers))
	b.WriteString("\n" + f.tr.T("stats_events", s.Events))
	if len(s.ByCommand) > 0 {
		b.WriteString("\n\n" + f.tr.T("stats_by_command"))
		kinds := make([]string, 0, len(s.ByCommand))
		for k := range s.ByCommand {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			b.WriteString(fmt.Sprintf("\n• %s: %d", k, s.ByCommand[k]))
		}
	}
	return &Reply{Text: b.String()}, nil
}

// LogEvent records an analytics event and never fails the caller: storage
// trouble is logged and swallowed.
func (f *botFacade) LogEvent(ctx context.Context, tgID int64, username string, kind model.EventKind, payload string) {
	if f.analytics == nil {
		return
	}
	ev, err := model.NewEvent(tgID, username, kind, payload)
	if err != nil {
		f.log.Warn().Err(err).Str("kind", string(kind)).Msg("skipping malformed analytics event")
		return
	}
	if err := f.analytics.LogEvent(ctx, ev); err != nil {
		f.log.Warn().Err(err).Str("kind", string(kind)).Msg("failed to record analytics event")
	}
}
