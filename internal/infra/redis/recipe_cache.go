package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"telegram-cocktail-bot/internal/domain"
	"telegram-cocktail-bot/internal/domain/model"
	"telegram-cocktail-bot/internal/domain/ports/repository"
)

var _ repository.RecipeCache = (*RecipeCache)(nil)

// RecipeCache stores upstream responses as JSON blobs with a shared TTL.
// A missing or expired key surfaces as domain.ErrNotFound.
type RecipeCache struct {
	client RedisClient
	ttl    time.Duration
}

func NewRecipeCache(client RedisClient, ttl time.Duration) *RecipeCache {
	return &RecipeCache{client: client, ttl: ttl}
}

func (c *RecipeCache) GetCocktail(ctx context.Context, key string) (*model.Cocktail, error) {
	var out model.Cocktail
	if err := c.get(ctx, key, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RecipeCache) SetCocktail(ctx context.Context, key string, v *model.Cocktail) error {
	return c.set(ctx, key, v)
}

func (c *RecipeCache) GetCocktails(ctx context.Context, key string) ([]*model.Cocktail, error) {
	var out []*model.Cocktail
	if err := c.get(ctx, key, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RecipeCache) SetCocktails(ctx context.Context, key string, v []*model.Cocktail) error {
	return c.set(ctx, key, v)
}

func (c *RecipeCache) GetRefs(ctx context.Context, key string) ([]*model.CocktailRef, error) {
	var out []*model.CocktailRef
	if err := c.get(ctx, key, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RecipeCache) SetRefs(ctx context.Context, key string, v []*model.CocktailRef) error {
	return c.set(ctx, key, v)
}

func (c *RecipeCache) get(ctx context.Context, key string, dst any) error {
	data, err := c.client.Get(ctx, "recipe:"+key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ErrNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(data), dst)
}

func (c *RecipeCache) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "recipe:"+key, data, c.ttl)
}
