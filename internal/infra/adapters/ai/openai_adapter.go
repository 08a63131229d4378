package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"telegram-cocktail-bot/internal/domain/ports/adapter"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.ToastAdapter = (*OpenAIAdapter)(nil)

// toastSystemPrompt constrains the model to short, sardonic toasts with no
// disclaimers. Kept deliberately strict so replies stay usable as captions.
const toastSystemPrompt = `You are a biting, cynical toast writer.
Your style is sarcasm, mild toxicity and existential humor.

Hard rules:
- sarcasm, cynicism and passive aggression are fine
- never insult people or groups of people
- no hate, threats or calls to harm
- no references to addiction or heavy drinking
- do not explain the joke
- do not mention that you are an AI
- no moralizing, no disclaimers

Tone: "life is strange, nothing goes to plan, and yet here we are".

Format:
- strictly 2-3 sentences
- at most one emoji, at the end
- no headings, lists or commentary, only the toast itself`

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIAdapter generates toasts via the Chat Completions API.
type OpenAIAdapter struct {
	apiKey string
	base   string // e.g., https://api.openai.com/v1
	model  string
	client *http.Client
}

func NewOpenAIAdapter(apiKey, model string) (*OpenAIAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key empty")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIAdapter{
		apiKey: apiKey,
		base:   "https://api.openai.com/v1",
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (o *OpenAIAdapter) GenerateToast(ctx context.Context, reason string) (string, error) {
	reqBody := struct {
		Model       string    `json:"model"`
		Messages    []message `json:"messages"`
		MaxTokens   int       `json:"max_tokens"`
		Temperature float64   `json:"temperature"`
	}{
		Model: o.model,
		Messages: []message{
			{Role: "system", Content: toastSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Write a short toxic toast (2-3 sentences) for the occasion: «%s»", reason)},
		},
		MaxTokens:   200,
		Temperature: 0.9,
	}

	b, _ := json.Marshal(reqBody)
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, o.base+"/chat/completions", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai http %d", resp.StatusCode)
	}

	var payload struct {
		Choices []struct {
			Message message `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	for _, c := range payload.Choices {
		if s := strings.TrimSpace(c.Message.Content); s != "" {
			return s, nil
		}
	}
	return "", errors.New("no choice content")
}
