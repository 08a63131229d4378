package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"telegram-cocktail-bot/internal/domain"
	"telegram-cocktail-bot/internal/domain/model"
	"telegram-cocktail-bot/internal/domain/ports/adapter"
	"telegram-cocktail-bot/internal/domain/ports/repository"
	"telegram-cocktail-bot/internal/infra/logging"
	"telegram-cocktail-bot/internal/infra/metrics"
)

// Compile-time check
var _ CocktailUseCase = (*cocktailUC)(nil)

// CocktailUseCase exposes the recipe lookups the bot commands need.
// Search, filter and lookup are cached; random never is.
type CocktailUseCase interface {
	Random(ctx context.Context) (*model.Cocktail, error)
	SearchByName(ctx context.Context, name string) ([]*model.Cocktail, error)
	FilterByIngredient(ctx context.Context, ingredient string) ([]*model.CocktailRef, error)
	Lookup(ctx context.Context, id string) (*model.Cocktail, error)
}

type cocktailUC struct {
	api   adapter.CocktailAPIAdapter
	cache repository.RecipeCache // optional; nil disables caching
	log   *zerolog.Logger
}

func NewCocktailUseCase(api adapter.CocktailAPIAdapter, cache repository.RecipeCache, logger *zerolog.Logger) *cocktailUC {
	return &cocktailUC{api: api, cache: cache, log: logger}
}

func (u *cocktailUC) Random(ctx context.Context) (*model.Cocktail, error) {
	defer logging.TraceDuration(u.log, "CocktailUC.Random")()
	return u.api.Random(ctx)
}

func (u *cocktailUC) SearchByName(ctx context.Context, name string) ([]*model.Cocktail, error) {
	defer logging.TraceDuration(u.log, "CocktailUC.SearchByName")()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidArgument
	}

	key := "search:" + strings.ToLower(name)
	if u.cache != nil {
		if cached, err := u.cache.GetCocktails(ctx, key); err == nil {
			metrics.IncCacheRequest("search", "hit")
			return cached, nil
		} else if !errors.Is(err, domain.ErrNotFound) {
			u.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		metrics.IncCacheRequest("search", "miss")
	}

	res, err := u.api.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		if err := u.cache.SetCocktails(ctx, key, res); err != nil {
			u.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return res, nil
}

func (u *cocktailUC) FilterByIngredient(ctx context.Context, ingredient string) ([]*model.CocktailRef, error) {
	defer logging.TraceDuration(u.log, "CocktailUC.FilterByIngredient")()

	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return nil, domain.ErrInvalidArgument
	}

	key := "filter:" + strings.ToLower(ingredient)
	if u.cache != nil {
		if cached, err := u.cache.GetRefs(ctx, key); err == nil {
			metrics.IncCacheRequest("filter", "hit")
			return cached, nil
		} else if !errors.Is(err, domain.ErrNotFound) {
			u.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		metrics.IncCacheRequest("filter", "miss")
	}

	res, err := u.api.FilterByIngredient(ctx, ingredient)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		if err := u.cache.SetRefs(ctx, key, res); err != nil {
			u.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return res, nil
}

func (u *cocktailUC) Lookup(ctx context.Context, id string) (*model.Cocktail, error) {
	defer logging.TraceDuration(u.log, "CocktailUC.Lookup")()

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidArgument
	}

	key := "drink:" + id
	if u.cache != nil {
		if cached, err := u.cache.GetCocktail(ctx, key); err == nil {
			metrics.IncCacheRequest("lookup", "hit")
			return cached, nil
		} else if !errors.Is(err, domain.ErrNotFound) {
			u.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		metrics.IncCacheRequest("lookup", "miss")
	}

	c, err := u.api.LookupByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		if err := u.cache.SetCocktail(ctx, key, c); err != nil {
			u.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return c, nil
}
