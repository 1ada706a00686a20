package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	apiBaseURL = "https://api.telegram.org/bot"
	apiTimeout = 30 * time.Second
)

// Params is the keyword payload of one Bot API call
type Params map[string]interface{}

// APIResponse is the envelope every Bot API method returns
type APIResponse struct {
	OK          bool                `json:"ok"`
	Result      json.RawMessage     `json:"result,omitempty"`
	Description string              `json:"description,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

type ResponseParameters struct {
	RetryAfter int `json:"retry_after,omitempty"`
}

// Error carries the upstream description or HTTP status of a failed call
type Error struct {
	Code        int
	Description string
}

func (e *Error) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("telegram: %s (code %d)", e.Description, e.Code)
	}
	return fmt.Sprintf("telegram: request failed with status %d", e.Code)
}

func (e *Error) IsRateLimit() bool {
	return e.Code == http.StatusTooManyRequests
}

// Client is a thin Bot API client: one method name plus a keyword payload
// per call, no retries. Callers decide what a failure means.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logrus.Logger
}

func NewClient(token string, log *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: apiTimeout},
		baseURL:    apiBaseURL + token,
		log:        log,
	}
}

// Call performs one outbound request. A non-2xx status or an ok=false body
// yields a *Error; the raw result is returned otherwise.
func (c *Client) Call(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal params: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, &Error{Code: resp.StatusCode}
	}

	if !apiResp.OK {
		code := apiResp.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		return nil, &Error{Code: code, Description: apiResp.Description}
	}

	c.log.Debugf("telegram %s ok", method)
	return apiResp.Result, nil
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, replyMarkup interface{}) error {
	params := Params{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if replyMarkup != nil {
		params["reply_markup"] = replyMarkup
	}
	_, err := c.Call(ctx, "sendMessage", params)
	return err
}

func (c *Client) SendPhoto(ctx context.Context, chatID int64, photo, caption string) error {
	_, err := c.Call(ctx, "sendPhoto", Params{
		"chat_id":    chatID,
		"photo":      photo,
		"caption":    caption,
		"parse_mode": "HTML",
	})
	return err
}

func (c *Client) EditMessageText(ctx context.Context, chatID int64, messageID int, text string, replyMarkup interface{}) error {
	params := Params{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if replyMarkup != nil {
		params["reply_markup"] = replyMarkup
	}
	_, err := c.Call(ctx, "editMessageText", params)
	return err
}

func (c *Client) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	_, err := c.Call(ctx, "deleteMessage", Params{
		"chat_id":    chatID,
		"message_id": messageID,
	})
	return err
}

func (c *Client) GetChatMemberCount(ctx context.Context, chatID int64) (int, error) {
	result, err := c.Call(ctx, "getChatMemberCount", Params{"chat_id": chatID})
	if err != nil {
		return 0, err
	}

	var count int
	if err := json.Unmarshal(result, &count); err != nil {
		return 0, fmt.Errorf("failed to decode member count: %w", err)
	}
	return count, nil
}
