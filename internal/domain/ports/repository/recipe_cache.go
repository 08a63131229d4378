package repository

import (
	"context"

	"telegram-cocktail-bot/internal/domain/model"
)

// RecipeCache is a read-through cache for upstream lookups. A miss (or any
// cache failure) returns domain.ErrNotFound and the caller falls through to
// the API; cache outages degrade to misses, never to command errors.
type RecipeCache interface {
	GetCocktail(ctx context.Context, key string) (*model.Cocktail, error)
	SetCocktail(ctx context.Context, key string, c *model.Cocktail) error
	GetCocktails(ctx context.Context, key string) ([]*model.Cocktail, error)
	SetCocktails(ctx context.Context, key string, cs []*model.Cocktail) error
	GetRefs(ctx context.Context, key string) ([]*model.CocktailRef, error)
	SetRefs(ctx context.Context, key string, refs []*model.CocktailRef) error
}
