// Package telegram is a minimal Bot API client covering the one call this
// tool needs: sendMessage with an inline keyboard button.
package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vlessops/vlessctl/internal/models"
)

const defaultBaseURL = "https://api.telegram.org"

// Client handles communication with the Telegram Bot API.
type Client struct {
	// BaseURL is overridable for tests.
	BaseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given bot token.
func NewClient(token string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type inlineKeyboardButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type replyMarkup struct {
	InlineKeyboard [][]inlineKeyboardButton `json:"inline_keyboard"`
}

type sendMessageRequest struct {
	ChatID                string       `json:"chat_id"`
	Text                  string       `json:"text"`
	ParseMode             string       `json:"parse_mode"`
	DisableWebPagePreview bool         `json:"disable_web_page_preview"`
	ReplyMarkup           *replyMarkup `json:"reply_markup,omitempty"`
}

// SendMessage posts a Markdown message to one chat with a single inline
// button. Delivery means exactly HTTP 200; any other status or transport
// failure is an error carrying the status and a body snippet for diagnostics.
// There is no retry.
func (c *Client) SendMessage(chatID, text string, button models.ButtonLink) error {
	payload := sendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             "MARKDOWN",
		DisableWebPagePreview: true,
	}
	if button.URL != "" {
		payload.ReplyMarkup = &replyMarkup{
			InlineKeyboard: [][]inlineKeyboardButton{
				{{Text: button.DisplayName, URL: button.URL}},
			},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.BaseURL, c.token)
	resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", chatID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// read up to 1KB of body for error message
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("send to %s failed: %s, %s", chatID, resp.Status, string(errBody))
	}
	return nil
}
