package adapter

import "context"

// InlineButton is one navigation button. Data is the callback payload sent
// back when pressed; URL buttons open a link instead.
type InlineButton struct {
	Text string
	Data string
	URL  string
}

// TelegramBotAdapter is the outbound message surface the application layer
// needs from the transport.
type TelegramBotAdapter interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendButtons(ctx context.Context, chatID int64, text string, rows [][]InlineButton) error
	SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, rows [][]InlineButton) error
}
