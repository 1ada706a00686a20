package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	c := NewClient("test-token", log)
	c.baseURL = srv.URL
	return c
}

func TestCallReturnsResult(t *testing.T) {
	var gotPath string
	var gotParams map[string]interface{}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotParams)
		json.NewEncoder(w).Encode(APIResponse{OK: true, Result: json.RawMessage(`{"message_id":42}`)})
	})

	result, err := c.Call(context.Background(), "sendMessage", Params{"chat_id": int64(7), "text": "hi"})
	if err != nil {
		t.Fatalf("Call() error: %v", err)
	}
	if gotPath != "/sendMessage" {
		t.Errorf("request path = %q, want /sendMessage", gotPath)
	}
	if gotParams["text"] != "hi" {
		t.Errorf("params text = %v, want hi", gotParams["text"])
	}

	var msg struct {
		MessageID int `json:"message_id"`
	}
	if err := json.Unmarshal(result, &msg); err != nil || msg.MessageID != 42 {
		t.Errorf("result = %s, want message_id 42", result)
	}
}

func TestCallNotOK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(APIResponse{OK: false, ErrorCode: 400, Description: "Bad Request: chat not found"})
	})

	_, err := c.Call(context.Background(), "sendMessage", Params{"chat_id": int64(1)})

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Call() error = %v, want *Error", err)
	}
	if apiErr.Code != 400 || apiErr.Description != "Bad Request: chat not found" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
	if apiErr.IsRateLimit() {
		t.Error("400 should not count as rate limit")
	}
}

func TestCallRateLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(APIResponse{
			OK:          false,
			ErrorCode:   429,
			Description: "Too Many Requests: retry after 5",
			Parameters:  &ResponseParameters{RetryAfter: 5},
		})
	})

	_, err := c.Call(context.Background(), "sendMessage", Params{"chat_id": int64(1)})

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Call() error = %v, want *Error", err)
	}
	if !apiErr.IsRateLimit() {
		t.Errorf("429 should be a rate limit error, got %+v", apiErr)
	}
}

func TestCallNonJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.Call(context.Background(), "sendMessage", nil)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Call() error = %v, want *Error", err)
	}
	if apiErr.Code != http.StatusBadGateway {
		t.Errorf("error code = %d, want 502", apiErr.Code)
	}
}

func TestGetChatMemberCount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/getChatMemberCount" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(APIResponse{OK: true, Result: json.RawMessage(`512`)})
	})

	count, err := c.GetChatMemberCount(context.Background(), -100123)
	if err != nil {
		t.Fatalf("GetChatMemberCount() error: %v", err)
	}
	if count != 512 {
		t.Errorf("count = %d, want 512", count)
	}
}
