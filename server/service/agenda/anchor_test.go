package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agendapilot/agendapilot/store"
)

func TestFirstAnchor(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	transcriptDate := now.Add(-24 * time.Hour)
	knowledgeDate := now.Add(-96 * time.Hour)

	transcripts := []AnnotatedTranscript{
		{Transcript: &store.MeetingTranscript{MeetingDateTs: transcriptDate.Unix()}},
	}
	knowledge := &store.Knowledge{MeetingDateTs: knowledgeDate.Unix()}

	t.Run("transcript date wins", func(t *testing.T) {
		anchor, ok := firstAnchor(
			transcriptAnchor(transcripts),
			knowledgeAnchor(knowledge),
			windowAnchor(now, 7),
		)
		require.True(t, ok)
		require.Equal(t, transcriptDate, anchor)
	})

	t.Run("knowledge date is the second choice", func(t *testing.T) {
		anchor, ok := firstAnchor(
			transcriptAnchor(nil),
			knowledgeAnchor(knowledge),
			windowAnchor(now, 7),
		)
		require.True(t, ok)
		require.Equal(t, knowledgeDate, anchor)
	})

	t.Run("window is the fallback", func(t *testing.T) {
		anchor, ok := firstAnchor(
			transcriptAnchor(nil),
			knowledgeAnchor(nil),
			windowAnchor(now, 7),
		)
		require.True(t, ok)
		require.Equal(t, now.AddDate(0, 0, -7), anchor)
	})
}
