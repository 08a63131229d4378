package cocktaildb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"telegram-cocktail-bot/internal/config"
	"telegram-cocktail-bot/internal/domain"
	"telegram-cocktail-bot/internal/domain/model"
	"telegram-cocktail-bot/internal/domain/ports/adapter"
	"telegram-cocktail-bot/internal/infra/metrics"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.CocktailAPIAdapter = (*Client)(nil)

// Client talks to TheCocktailDB JSON API. Every operation is a single GET
// with no retries: an empty "drinks" payload is domain.ErrNotFound, anything
// non-2xx or a network failure wraps domain.ErrUnavailable.
type Client struct {
	base   string // e.g., https://www.thecocktaildb.com/api/json/v1/1
	client *http.Client
	log    *zerolog.Logger
}

func NewClient(cfg *config.CocktailDBConfig, logger *zerolog.Logger) *Client {
	cl := logger.With().Str("component", "cocktaildb").Logger()
	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{Timeout: cfg.Timeout},
		log:    &cl,
	}
}

func (c *Client) Random(ctx context.Context) (*model.Cocktail, error) {
	drinks, err := c.fetch(ctx, "random", "/random.php", nil)
	if err != nil {
		return nil, err
	}
	return parseCocktail(drinks[0]), nil
}

func (c *Client) SearchByName(ctx context.Context, name string) ([]*model.Cocktail, error) {
	drinks, err := c.fetch(ctx, "search", "/search.php", url.Values{"s": {name}})
	if err != nil {
		return nil, err
	}
	out := make([]*model.Cocktail, 0, len(drinks))
	for _, d := range drinks {
		out = append(out, parseCocktail(d))
	}
	return out, nil
}

func (c *Client) FilterByIngredient(ctx context.Context, ingredient string) ([]*model.CocktailRef, error) {
	drinks, err := c.fetch(ctx, "filter", "/filter.php", url.Values{"i": {ingredient}})
	if err != nil {
		return nil, err
	}
	out := make([]*model.CocktailRef, 0, len(drinks))
	for _, d := range drinks {
		out = append(out, &model.CocktailRef{
			ID:       str(d, "idDrink"),
			Name:     str(d, "strDrink"),
			ThumbURL: str(d, "strDrinkThumb"),
		})
	}
	return out, nil
}

func (c *Client) LookupByID(ctx context.Context, id string) (*model.Cocktail, error) {
	drinks, err := c.fetch(ctx, "lookup", "/lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	return parseCocktail(drinks[0]), nil
}

// fetch performs one GET and unwraps the {"drinks": [...] | null} envelope.
// It never returns an empty slice: an empty or null list is ErrNotFound.
func (c *Client) fetch(ctx context.Context, op, path string, params url.Values) ([]map[string]any, error) {
	u := c.base + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("cocktaildb %s: build request: %w", op, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ObserveAPICall(op, "error", int(time.Since(start).Milliseconds()))
		c.log.Error().Err(err).Str("operation", op).Msg("request failed")
		return nil, fmt.Errorf("cocktaildb %s: %v: %w", op, err, domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ObserveAPICall(op, "error", int(time.Since(start).Milliseconds()))
		c.log.Error().Int("status", resp.StatusCode).Str("operation", op).Msg("unexpected status")
		return nil, fmt.Errorf("cocktaildb %s: http %d: %w", op, resp.StatusCode, domain.ErrUnavailable)
	}

	var payload struct {
		Drinks []map[string]any `json:"drinks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ObserveAPICall(op, "error", int(time.Since(start).Milliseconds()))
		return nil, fmt.Errorf("cocktaildb %s: decode: %v: %w", op, err, domain.ErrUnavailable)
	}

	if len(payload.Drinks) == 0 {
		metrics.ObserveAPICall(op, "not_found", int(time.Since(start).Milliseconds()))
		return nil, domain.ErrNotFound
	}

	metrics.ObserveAPICall(op, "ok", int(time.Since(start).Milliseconds()))
	return payload.Drinks, nil
}

// parseCocktail folds a raw drink object into a model.Cocktail, collecting
// the strIngredient1..strIngredient15 / strMeasure1..15 column pairs.
func parseCocktail(d map[string]any) *model.Cocktail {
	c := &model.Cocktail{
		ID:           str(d, "idDrink"),
		Name:         str(d, "strDrink"),
		Category:     str(d, "strCategory"),
		Alcoholic:    str(d, "strAlcoholic"),
		Glass:        str(d, "strGlass"),
		Instructions: str(d, "strInstructions"),
		ImageURL:     str(d, "strDrinkThumb"),
	}
	for i := 1; i <= 15; i++ {
		name := strings.TrimSpace(str(d, fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		measure := strings.TrimSpace(str(d, fmt.Sprintf("strMeasure%d", i)))
		c.Ingredients = append(c.Ingredients, model.Ingredient{Name: name, Measure: measure})
	}
	return c
}

// str reads a string field, treating JSON null and absent keys as empty.
func str(d map[string]any, key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}
