package store

import (
	"time"
)

// AutoLinkThreshold is the match confidence at or above which a transcript
// is considered auto-linked to its meeting. Below it the link needs manual
// confirmation. Downstream behavior assumes this exact value.
const AutoLinkThreshold = 0.7

// TranscriptEntry is one utterance in a structured transcript.
type TranscriptEntry struct {
	Speaker   string `json:"speaker"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// MeetingTranscript is the object representing one parsed meeting transcript,
// linked to exactly one recurring meeting.
type MeetingTranscript struct {
	ID        int32
	UID       string
	CreatorID int32
	CreatedTs int64

	MeetingID     int32
	MeetingDateTs int64
	// ExternalDocID is the source document id, unique per creator and used
	// for dedup during sync.
	ExternalDocID string
	RawText       string
	Entries       []TranscriptEntry
	// MatchConfidence is the [0,1] score from the matching algorithm.
	// Manual re-linking forces it to 1.0.
	MatchConfidence float64
}

// MeetingDate returns the meeting date as time.Time.
func (t *MeetingTranscript) MeetingDate() time.Time {
	return time.Unix(t.MeetingDateTs, 0).UTC()
}

// AutoLinked reports whether the transcript was linked automatically.
func (t *MeetingTranscript) AutoLinked() bool {
	return t.MatchConfidence >= AutoLinkThreshold
}

// NeedsConfirmation reports whether the link needs manual confirmation.
func (t *MeetingTranscript) NeedsConfirmation() bool {
	return t.MatchConfidence < AutoLinkThreshold
}

// Speakers returns the de-duplicated speaker labels of the structured entries.
func (t *MeetingTranscript) Speakers() []string {
	seen := make(map[string]bool)
	var speakers []string
	for _, entry := range t.Entries {
		if !seen[entry.Speaker] {
			seen[entry.Speaker] = true
			speakers = append(speakers, entry.Speaker)
		}
	}
	return speakers
}

// FindMeetingTranscript is the find condition for meeting transcripts.
// Results are ordered by meeting date descending.
type FindMeetingTranscript struct {
	ID            *int32
	UID           *string
	CreatorID     *int32
	MeetingID     *int32
	ExternalDocID *string
	// NeedsConfirmation filters on the auto-link threshold when set.
	NeedsConfirmation *bool

	Limit *int
}

// UpdateMeetingTranscript is the update request for a meeting transcript.
// Only re-linking mutates transcripts.
type UpdateMeetingTranscript struct {
	ID              int32
	MeetingID       *int32
	MatchConfidence *float64
}

// DeleteMeetingTranscript is the delete request for a meeting transcript.
type DeleteMeetingTranscript struct {
	ID int32
}
