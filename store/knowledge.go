package store

import "time"

// Knowledge is a persisted meeting-notes record linked to an agent. The
// normalized text is the original text with glossary terms replaced by
// their canonical names.
type Knowledge struct {
	ID        int32
	UID       string
	AgentID   int32
	CreatorID int32
	CreatedTs int64

	OriginalText   string
	NormalizedText string
	MeetingDateTs  int64
}

// MeetingDate returns the meeting date as time.Time.
func (k *Knowledge) MeetingDate() time.Time {
	return time.Unix(k.MeetingDateTs, 0).UTC()
}

// IsNormalized reports whether normalization changed the text.
func (k *Knowledge) IsNormalized() bool {
	return k.OriginalText != k.NormalizedText
}

// FindKnowledge is the find condition for knowledge records.
// Results are ordered by meeting date descending.
type FindKnowledge struct {
	ID        *int32
	UID       *string
	AgentID   *int32
	CreatorID *int32

	Limit *int
}

// DeleteKnowledge is the delete request for a knowledge record.
type DeleteKnowledge struct {
	ID int32
}
