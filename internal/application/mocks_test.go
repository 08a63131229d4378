package application

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"telegram-cocktail-bot/internal/domain/model"
	"telegram-cocktail-bot/internal/infra/i18n"
	"telegram-cocktail-bot/internal/usecase"
)

func testTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(i18n.LocalesFS, "en")
	if err != nil {
		t.Fatalf("load translator: %v", err)
	}
	return tr
}

func testFacade(t *testing.T, cocktails usecase.CocktailUseCase, toasts usecase.ToastUseCase, stats usecase.StatsUseCase) BotFacade {
	t.Helper()
	logger := zerolog.Nop()
	return NewBotFacade(cocktails, toasts, stats, nil, testTranslator(t), &logger)
}

// failingAnalyticsRepo errors on every write; reads are never exercised here.
type failingAnalyticsRepo struct {
	writeErr error
	calls    int
}

func (f *failingAnalyticsRepo) LogEvent(ctx context.Context, ev *model.Event) error {
	f.calls++
	return f.writeErr
}

func (f *failingAnalyticsRepo) CountUsers(ctx context.Context) (int, error) { return 0, nil }

func (f *failingAnalyticsRepo) CountEventsSince(ctx context.Context, since time.Time) (int, error) {
	return 0, nil
}

func (f *failingAnalyticsRepo) CountEventsByKindSince(ctx context.Context, since time.Time) (map[string]int, error) {
	return map[string]int{}, nil
}

type fakeCocktailUC struct {
	randomFn func(ctx context.Context) (*model.Cocktail, error)
	searchFn func(ctx context.Context, name string) ([]*model.Cocktail, error)
	filterFn func(ctx context.Context, ingredient string) ([]*model.CocktailRef, error)
	lookupFn func(ctx context.Context, id string) (*model.Cocktail, error)

	lookupCalls []string
}

func (f *fakeCocktailUC) Random(ctx context.Context) (*model.Cocktail, error) {
	return f.randomFn(ctx)
}

func (f *fakeCocktailUC) SearchByName(ctx context.Context, name string) ([]*model.Cocktail, error) {
	return f.searchFn(ctx, name)
}

func (f *fakeCocktailUC) FilterByIngredient(ctx context.Context, ingredient string) ([]*model.CocktailRef, error) {
	return f.filterFn(ctx, ingredient)
}

func (f *fakeCocktailUC) Lookup(ctx context.Context, id string) (*model.Cocktail, error) {
	f.lookupCalls = append(f.lookupCalls, id)
	return f.lookupFn(ctx, id)
}

type fakeToastUC struct {
	generateFn func(ctx context.Context, reason string) (string, error)
}

func (f *fakeToastUC) Generate(ctx context.Context, reason string) (string, error) {
	return f.generateFn(ctx, reason)
}

type fakeStatsUC struct {
	countsFn func(ctx context.Context, window time.Duration) (*usecase.Stats, error)
}

func (f *fakeStatsUC) GetCounts(ctx context.Context, window time.Duration) (*usecase.Stats, error) {
	return f.countsFn(ctx, window)
}

func margarita() *model.Cocktail {
	return &model.Cocktail{
		ID:           "11007",
		Name:         "Margarita",
		Category:     "Ordinary Drink",
		Alcoholic:    "Alcoholic",
		Glass:        "Cocktail glass",
		Instructions: "Shake and strain.",
		ImageURL:     "https://example.test/margarita.jpg",
		Ingredients: []model.Ingredient{
			{Name: "Tequila", Measure: "1.5 oz"},
			{Name: "Lime juice", Measure: "1 oz"},
			{Name: "Salt"},
		},
	}
}
