package model

import (
	"time"

	"github.com/google/uuid"

	"telegram-cocktail-bot/internal/domain"
)

// EventKind enumerates the analytics event types the bot records.
type EventKind string

const (
	EventStart      EventKind = "command_start"
	EventHelp       EventKind = "command_help"
	EventRandom     EventKind = "command_random"
	EventSearch     EventKind = "command_search"
	EventIngredient EventKind = "command_ingredient"
	EventToast      EventKind = "command_toast"
	EventStats      EventKind = "command_stats"
	EventCallback   EventKind = "button_callback"
	EventUnknown    EventKind = "unknown_command"
	EventError      EventKind = "error"
)

// Event is a single analytics record: who did what, when. Payload holds the
// free-form argument (search query, ingredient, callback data) and may be empty.
type Event struct {
	ID         string
	TelegramID int64
	Username   string
	Kind       EventKind
	Payload    string
	At         time.Time
}

// NewEvent builds a validated Event with a fresh ID and timestamp.
func NewEvent(tgID int64, username string, kind EventKind, payload string) (*Event, error) {
	if tgID == 0 || kind == "" {
		return nil, domain.ErrInvalidArgument
	}
	return &Event{
		ID:         uuid.NewString(),
		TelegramID: tgID,
		Username:   username,
		Kind:       kind,
		Payload:    payload,
		At:         time.Now().UTC(),
	}, nil
}
