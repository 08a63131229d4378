package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"telegram-cocktail-bot/internal/domain"
)

func TestToastEmptyReasonMakesNoCall(t *testing.T) {
	logger := zerolog.Nop()
	ai := &fakeToaster{toast: "cheers"}
	uc := NewToastUseCase(ai, &logger)

	if _, err := uc.Generate(context.Background(), "  "); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if ai.calls != 0 {
		t.Fatalf("expected zero adapter calls, got %d", ai.calls)
	}
}

func TestToastPassesThroughAdapterResult(t *testing.T) {
	logger := zerolog.Nop()
	ai := &fakeToaster{toast: "To friday: may it last longer than our motivation."}
	uc := NewToastUseCase(ai, &logger)

	got, err := uc.Generate(context.Background(), "friday")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != ai.toast {
		t.Errorf("unexpected toast: %q", got)
	}
}

func TestToastUnconfiguredSurfaces(t *testing.T) {
	logger := zerolog.Nop()
	ai := &fakeToaster{err: domain.ErrNotConfigured}
	uc := NewToastUseCase(ai, &logger)

	if _, err := uc.Generate(context.Background(), "work"); !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
