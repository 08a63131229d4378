package model

import "strings"

// Ingredient is one (name, measure) pair from a recipe. Measure may be empty;
// TheCocktailDB leaves it blank for "to taste" style entries.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Cocktail is the full recipe record as returned by the lookup/search/random
// endpoints. Instances are immutable once parsed and are discarded after the
// reply is sent.
type Cocktail struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Alcoholic    string       `json:"alcoholic"`
	Glass        string       `json:"glass"`
	Instructions string       `json:"instructions"`
	ImageURL     string       `json:"image_url"`
	Ingredients  []Ingredient `json:"ingredients"`
}

// Emoji picks the drink emoji by alcohol content.
func (c *Cocktail) Emoji() string {
	switch strings.ToLower(c.Alcoholic) {
	case "alcoholic":
		return "🍸"
	case "non alcoholic":
		return "🥤"
	default:
		return "🍹"
	}
}

// CocktailRef is the lightweight record the filter-by-ingredient endpoint
// returns: the upstream API does not include full detail for filter queries,
// so a ref must be resolved with a follow-up lookup by ID.
type CocktailRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ThumbURL string `json:"thumb_url"`
}
