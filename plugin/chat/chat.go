// Package chat defines the chat history capability used as a generation
// context source. Fetch failures are typed so callers can degrade to a
// warning instead of failing the whole generation.
package chat

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Typed fetch errors. Callers match these with errors.Is.
var (
	// ErrChannelNotJoined means the bot is not a member of the channel.
	ErrChannelNotJoined = errors.New("chat: channel not joined")
	// ErrRateLimited means the provider throttled the request.
	ErrRateLimited = errors.New("chat: rate limited")
)

// Message is one chat message, sender resolved to a display name.
type Message struct {
	UserName  string
	Text      string
	Timestamp time.Time
}

// Client fetches chat history for a channel.
type Client interface {
	// FetchMessages returns the messages posted in the channel since oldest,
	// in chronological order.
	FetchMessages(ctx context.Context, channelID string, oldest time.Time) ([]Message, error)
}
