package agenda

import (
	"time"

	"github.com/agendapilot/agendapilot/store"
)

// anchorProvider is one candidate source for the chat-history fetch start.
type anchorProvider func() (time.Time, bool)

// firstAnchor returns the first present value from the ordered providers.
// The priority order is the contract: latest transcript date beats the
// knowledge date beats the default lookback window.
func firstAnchor(providers ...anchorProvider) (time.Time, bool) {
	for _, provider := range providers {
		if anchor, ok := provider(); ok {
			return anchor, true
		}
	}
	return time.Time{}, false
}

// transcriptAnchor yields the meeting date of the most recent collected
// transcript. Assumes the list is sorted by meeting date descending.
func transcriptAnchor(transcripts []AnnotatedTranscript) anchorProvider {
	return func() (time.Time, bool) {
		if len(transcripts) == 0 {
			return time.Time{}, false
		}
		return transcripts[0].Transcript.MeetingDate(), true
	}
}

// knowledgeAnchor yields the meeting date of the latest knowledge record.
func knowledgeAnchor(knowledge *store.Knowledge) anchorProvider {
	return func() (time.Time, bool) {
		if knowledge == nil {
			return time.Time{}, false
		}
		return knowledge.MeetingDate(), true
	}
}

// windowAnchor yields now minus the agent's chat lookback window.
func windowAnchor(now time.Time, chatWindowDays int32) anchorProvider {
	return func() (time.Time, bool) {
		return now.AddDate(0, 0, -int(chatWindowDays)), true
	}
}
