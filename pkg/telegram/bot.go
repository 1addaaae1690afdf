package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// echoed back by Telegram in the SecretTokenHeader of every update.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	payload := SetWebhookRequest{URL: webhookURL, SecretToken: secret}

	var apiResp APIResponse
	if err := b.call(ctx, "setWebhook", payload, &apiResp); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	payload := SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	}

	var apiResp APIResponse
	if err := b.call(ctx, "sendMessage", payload, &apiResp); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram sendMessage failed: %s", apiResp.Description)
	}
	return nil
}

func (b *Bot) call(ctx context.Context, method string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	// Telegram reports most failures as 4xx with a JSON description.
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	return nil
}
