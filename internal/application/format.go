package application

import (
	"strings"

	"telegram-cocktail-bot/internal/domain/model"
	"telegram-cocktail-bot/internal/domain/ports/adapter"
	"telegram-cocktail-bot/internal/infra/i18n"
)

// CallbackRandom is the callback payload of the "another random" button.
// Every other callback payload is a bare drink id.
const CallbackRandom = "random"

// Reply is the transport-agnostic message payload the dispatcher hands to the
// Telegram adapter: caption text, optional image, optional inline keyboard.
type Reply struct {
	Text     string
	ImageURL string
	Buttons  [][]adapter.InlineButton
}

// Formatter renders recipe records into Reply payloads. It is pure: the same
// input always produces an identical payload.
type Formatter struct {
	tr *i18n.Translator
}

func NewFormatter(tr *i18n.Translator) *Formatter {
	return &Formatter{tr: tr}
}

// Cocktail renders one full recipe. extraRows are placed above the standard
// "another random" row, preserving their given order.
func (f *Formatter) Cocktail(c *model.Cocktail, extraRows ...[]adapter.InlineButton) *Reply {
	var b strings.Builder

	b.WriteString(c.Emoji() + " " + c.Name + "\n")

	if c.Category != "" {
		b.WriteString("\n" + f.tr.T("caption_category", c.Category))
	}
	if c.Alcoholic != "" {
		b.WriteString("\n" + f.tr.T("caption_type", c.Alcoholic))
	}
	if c.Glass != "" {
		b.WriteString("\n" + f.tr.T("caption_glass", c.Glass))
	}

	if len(c.Ingredients) > 0 {
		b.WriteString("\n\n" + f.tr.T("caption_ingredients"))
		for _, ing := range c.Ingredients {
			if ing.Measure != "" {
				b.WriteString("\n• " + ing.Name + " — " + ing.Measure)
			} else {
				b.WriteString("\n• " + ing.Name)
			}
		}
	}

	if c.Instructions != "" {
		b.WriteString("\n\n" + f.tr.T("caption_instructions") + "\n" + c.Instructions)
	}

	rows := make([][]adapter.InlineButton, 0, len(extraRows)+1)
	rows = append(rows, extraRows...)
	rows = append(rows, f.RandomButtonRow())

	return &Reply{Text: b.String(), ImageURL: c.ImageURL, Buttons: rows}
}

// RefList renders filter-by-ingredient results as a button list; each button
// carries the drink id as its callback payload, in upstream order.
func (f *Formatter) RefList(ingredient string, refs []*model.CocktailRef) *Reply {
	rows := make([][]adapter.InlineButton, 0, len(refs)+1)
	for _, ref := range refs {
		rows = append(rows, []adapter.InlineButton{{Text: ref.Name, Data: ref.ID}})
	}
	rows = append(rows, f.RandomButtonRow())
	return &Reply{Text: f.tr.T("ingredient_header", ingredient), Buttons: rows}
}

// MatchButtonRows builds one button row per extra search match, capped at limit.
func (f *Formatter) MatchButtonRows(matches []*model.Cocktail, limit int) [][]adapter.InlineButton {
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	rows := make([][]adapter.InlineButton, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []adapter.InlineButton{{Text: m.Name, Data: m.ID}})
	}
	return rows
}

// RandomButtonRow is the standard re-roll row attached to recipe replies.
func (f *Formatter) RandomButtonRow() []adapter.InlineButton {
	return []adapter.InlineButton{{Text: f.tr.T("button_another_random"), Data: CallbackRandom}}
}
