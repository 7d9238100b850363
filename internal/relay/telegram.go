package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// TelegramRelay posts the finished calendar text to a fixed chat-relay
// endpoint. Delivery failure never invalidates the computed calendar; the
// caller decides what to do with the error.
type TelegramRelay struct {
	url        string
	chatID     string
	httpClient *http.Client
}

func NewTelegramRelay(url, chatID string) *TelegramRelay {
	return &TelegramRelay{
		url:        url,
		chatID:     chatID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *TelegramRelay) Deliver(ctx context.Context, text string) error {
	body, err := json.Marshal(relayMessage{
		Message:   text,
		ParseMode: "Markdown",
		ChatID:    r.chatID,
	})
	if err != nil {
		return fmt.Errorf("relay encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay deliver: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay deliver: unexpected status %d", resp.StatusCode)
	}
	return nil
}

type relayMessage struct {
	Message   string `json:"message"`
	ParseMode string `json:"parse_mode"`
	ChatID    string `json:"chat_id"`
}
