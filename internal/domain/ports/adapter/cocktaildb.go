package adapter

import (
	"context"

	"telegram-cocktail-bot/internal/domain/model"
)

// CocktailAPIAdapter is the port for the upstream recipe database. Every call
// maps to exactly one HTTP GET; implementations do not retry. An empty
// upstream result is domain.ErrNotFound, anything else is a transport error.
type CocktailAPIAdapter interface {
	// Random returns one random cocktail.
	Random(ctx context.Context) (*model.Cocktail, error)
	// SearchByName returns full records matching name, in upstream order.
	SearchByName(ctx context.Context, name string) ([]*model.Cocktail, error)
	// FilterByIngredient returns lightweight refs for drinks containing the
	// ingredient; each ref must be resolved via LookupByID for full detail.
	FilterByIngredient(ctx context.Context, ingredient string) ([]*model.CocktailRef, error)
	// LookupByID resolves a drink id to its full record.
	LookupByID(ctx context.Context, id string) (*model.Cocktail, error)
}
