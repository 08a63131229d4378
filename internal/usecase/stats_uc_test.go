package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"telegram-cocktail-bot/internal/domain/model"
)

func TestStatsCountsUsersAndEvents(t *testing.T) {
	logger := zerolog.Nop()
	repo := &memAnalyticsRepo{}

	mustLog := func(tgID int64, kind model.EventKind) {
		t.Helper()
		ev, err := model.NewEvent(tgID, "user", kind, "")
		if err != nil {
			t.Fatalf("NewEvent: %v", err)
		}
		if err := repo.LogEvent(context.Background(), ev); err != nil {
			t.Fatalf("LogEvent: %v", err)
		}
	}

	mustLog(1, model.EventRandom)
	mustLog(1, model.EventRandom)
	mustLog(2, model.EventSearch)

	uc := NewStatsUseCase(repo, &logger)
	stats, err := uc.GetCounts(context.Background(), 7*24*time.Hour)
	if err != nil {
		t.Fatalf("GetCounts: %v", err)
	}

	if stats.TotalUsers != 2 {
		t.Errorf("expected 2 users, got %d", stats.TotalUsers)
	}
	if stats.Events != 3 {
		t.Errorf("expected 3 events, got %d", stats.Events)
	}
	if stats.ByCommand[string(model.EventRandom)] != 2 {
		t.Errorf("expected 2 random events, got %d", stats.ByCommand[string(model.EventRandom)])
	}
	if stats.ByCommand[string(model.EventSearch)] != 1 {
		t.Errorf("expected 1 search event, got %d", stats.ByCommand[string(model.EventSearch)])
	}
}
