package chat

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
)

func TestMapSlackError(t *testing.T) {
	require.ErrorIs(t, mapSlackError(errors.New("not_in_channel")), ErrChannelNotJoined)
	require.ErrorIs(t, mapSlackError(errors.New("ratelimited")), ErrRateLimited)
	require.ErrorIs(t, mapSlackError(&slack.RateLimitedError{RetryAfter: time.Second}), ErrRateLimited)

	other := errors.New("channel_not_found")
	require.NotErrorIs(t, mapSlackError(other), ErrChannelNotJoined)
	require.NotErrorIs(t, mapSlackError(other), ErrRateLimited)
}

func TestParseSlackTimestamp(t *testing.T) {
	require.Equal(t, time.Unix(1741600800, 0).UTC(), parseSlackTimestamp("1741600800.000123"))
	require.True(t, parseSlackTimestamp("garbage").IsZero())
}
