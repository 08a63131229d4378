package telegram

import (
	"testing"

	"telegram-cocktail-bot/internal/domain/ports/adapter"
)

func TestIsDrinkID(t *testing.T) {
	cases := map[string]bool{
		"11007":  true,
		"1":      true,
		"random": false,
		"":       false,
		"12a":    false,
		"-1":     false,
	}
	for data, want := range cases {
		if got := isDrinkID(data); got != want {
			t.Errorf("isDrinkID(%q) = %v, want %v", data, got, want)
		}
	}
}

func TestBuildKeyboardSkipsEmptyRows(t *testing.T) {
	markup, ok := buildKeyboard([][]adapter.InlineButton{
		{},
		{{Text: "Margarita", Data: "11007"}},
	})
	if !ok {
		t.Fatal("expected a keyboard")
	}
	if len(markup.InlineKeyboard) != 1 {
		t.Fatalf("got %d rows, want 1", len(markup.InlineKeyboard))
	}
	btn := markup.InlineKeyboard[0][0]
	if btn.Text != "Margarita" || btn.CallbackData == nil || *btn.CallbackData != "11007" {
		t.Errorf("unexpected button %+v", btn)
	}
}

func TestBuildKeyboardEmptyInput(t *testing.T) {
	if _, ok := buildKeyboard(nil); ok {
		t.Error("expected no keyboard for nil rows")
	}
}
