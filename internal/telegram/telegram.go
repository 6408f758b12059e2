package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.telegram.org"
	DefaultTimeout = 20 * time.Second

	// Environment variables holding the credentials, used in error messages
	EnvBotToken  = "TELEGRAM_BOT_TOKEN"
	EnvChannelID = "TELEGRAM_CHANNEL_ID"
)

// Credentials identify the bot and the channel it posts to
type Credentials struct {
	BotToken  string
	ChannelID string
}

// Validate trims both values and reports the first one that is blank
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.BotToken) == "" {
		return &ConfigError{Field: EnvBotToken}
	}
	if strings.TrimSpace(c.ChannelID) == "" {
		return &ConfigError{Field: EnvChannelID}
	}
	return nil
}

// Client represents a Telegram Bot API client bound to one channel
type Client struct {
	creds      Credentials
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at a different API host
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout bounds each request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a new Telegram client.
// Credentials are checked on every send, not here.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds:      creds,
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.httpClient
	hc.Timeout = c.timeout
	c.httpClient = &hc

	return c
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
	ParseMode             string `json:"parse_mode"`
}

// SendMessage posts an HTML message to the channel in a single attempt
func (c *Client) SendMessage(ctx context.Context, text string) error {
	if err := c.creds.Validate(); err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("message text is required")
	}

	token := strings.TrimSpace(c.creds.BotToken)
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, token)

	payload := sendMessageRequest{
		ChatID:                strings.TrimSpace(c.creds.ChannelID),
		Text:                  text,
		DisableWebPagePreview: false,
		ParseMode:             "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("creating request: %w", redactToken(err, token))
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: redactToken(err, token)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return nil
}

// redactToken strips the bot token from URLs embedded in net/http errors
func redactToken(err error, token string) error {
	var urlErr *url.Error
	if token != "" && errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, token, "<redacted>")
	}
	return err
}
