package chat

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

const historyPageSize = 200

// SlackClient fetches channel history through the Slack Web API. User names
// are resolved once per user and cached for the lifetime of the client.
type SlackClient struct {
	api     *slack.Client
	limiter *rate.Limiter
	names   map[string]string
}

func NewSlackClient(token string) *SlackClient {
	return &SlackClient{
		api: slack.New(token),
		// Slack Web API tier 3 allows ~50 requests per minute.
		limiter: rate.NewLimiter(rate.Every(1200*time.Millisecond), 5),
		names:   make(map[string]string),
	}
}

func (c *SlackClient) FetchMessages(ctx context.Context, channelID string, oldest time.Time) ([]Message, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Oldest:    fmt.Sprintf("%d.000000", oldest.Unix()),
		Limit:     historyPageSize,
	})
	if err != nil {
		return nil, mapSlackError(err)
	}

	messages := []Message{}
	for _, msg := range resp.Messages {
		// Joins, topic changes and other subtyped system messages are noise.
		if msg.SubType != "" || msg.User == "" || msg.Text == "" {
			continue
		}
		userName, err := c.resolveUserName(ctx, msg.User)
		if err != nil {
			userName = msg.User
		}
		messages = append(messages, Message{
			UserName:  userName,
			Text:      msg.Text,
			Timestamp: parseSlackTimestamp(msg.Timestamp),
		})
	}

	// Slack returns newest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (c *SlackClient) resolveUserName(ctx context.Context, userID string) (string, error) {
	if name, ok := c.names[userID]; ok {
		return name, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return "", mapSlackError(err)
	}
	name := user.Profile.DisplayName
	if name == "" {
		name = user.RealName
	}
	if name == "" {
		name = user.Name
	}
	c.names[userID] = name
	return name, nil
}

func mapSlackError(err error) error {
	var rateLimited *slack.RateLimitedError
	if errors.As(err, &rateLimited) {
		return errors.Wrap(ErrRateLimited, err.Error())
	}
	if strings.Contains(err.Error(), "not_in_channel") {
		return errors.Wrap(ErrChannelNotJoined, err.Error())
	}
	if strings.Contains(err.Error(), "ratelimited") || strings.Contains(err.Error(), "rate_limited") {
		return errors.Wrap(ErrRateLimited, err.Error())
	}
	return err
}

func parseSlackTimestamp(ts string) time.Time {
	seconds := ts
	if idx := strings.Index(ts, "."); idx >= 0 {
		seconds = ts[:idx]
	}
	unix, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(unix, 0).UTC()
}
