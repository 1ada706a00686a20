package telegram

import (
	"context"
	"encoding/json"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Roster reads the member list of the promoted channel. The Bot API itself
// exposes no member listing for channels, so the endpoint is served by a
// client-API sidecar speaking the same envelope; only the method differs.
type Roster struct {
	client *Client
	chatID int64
}

func NewRoster(client *Client, chatID int64) *Roster {
	return &Roster{client: client, chatID: chatID}
}

// ListMembers returns the current member identities of the channel.
func (r *Roster) ListMembers(ctx context.Context) ([]tgbotapi.User, error) {
	result, err := r.client.Call(ctx, "getChatMembers", Params{"chat_id": r.chatID})
	if err != nil {
		return nil, err
	}

	var members []tgbotapi.User
	if err := json.Unmarshal(result, &members); err != nil {
		return nil, fmt.Errorf("failed to decode member list: %w", err)
	}
	return members, nil
}
