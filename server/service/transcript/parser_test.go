package transcript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleTranscript = `Alice (10:02)
Let's start with last week's tasks.

Bob (10:02)
Sure, the tuning work is done.
I also updated the dashboard.

Alice (10:05)

Carol (10:06)
One open question about the rollout.
`

func TestParse(t *testing.T) {
	entries := Parse(sampleTranscript)
	require.Len(t, entries, 3)

	require.Equal(t, "Alice", entries[0].Speaker)
	require.Equal(t, "10:02", entries[0].Timestamp)
	require.Equal(t, "Let's start with last week's tasks.", entries[0].Text)

	// Multi-line utterances are joined.
	require.Equal(t, "Bob", entries[1].Speaker)
	require.Equal(t, "Sure, the tuning work is done.\nI also updated the dashboard.", entries[1].Text)

	// Alice's empty 10:05 block is dropped.
	require.Equal(t, "Carol", entries[2].Speaker)
	require.Equal(t, "10:06", entries[2].Timestamp)
}

func TestParseEmptyInput(t *testing.T) {
	require.Empty(t, Parse(""))
	require.Empty(t, Parse("   \n  \n"))
}

func TestParseNonMatchingInput(t *testing.T) {
	require.Empty(t, Parse("just some prose\nwith no speaker markers"))
}

func TestParseTwoDigitHour(t *testing.T) {
	entries := Parse("Dana (09:59)\nmorning note\n")
	require.Len(t, entries, 1)
	require.Equal(t, "09:59", entries[0].Timestamp)
}

func TestExtractSpeakers(t *testing.T) {
	entries := Parse(sampleTranscript)
	speakers := ExtractSpeakers(entries)
	require.ElementsMatch(t, []string{"Alice", "Bob", "Carol"}, speakers)
}
