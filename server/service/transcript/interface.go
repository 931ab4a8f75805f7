package transcript

import (
	"context"

	"github.com/agendapilot/agendapilot/store"
)

// Store defines the persistence operations the transcript service needs.
type Store interface {
	ListRecurringMeetings(ctx context.Context, find *store.FindRecurringMeeting) ([]*store.RecurringMeeting, error)
	GetRecurringMeeting(ctx context.Context, find *store.FindRecurringMeeting) (*store.RecurringMeeting, error)
	CreateMeetingTranscript(ctx context.Context, create *store.MeetingTranscript) (*store.MeetingTranscript, error)
	ListMeetingTranscripts(ctx context.Context, find *store.FindMeetingTranscript) ([]*store.MeetingTranscript, error)
	GetMeetingTranscript(ctx context.Context, find *store.FindMeetingTranscript) (*store.MeetingTranscript, error)
	UpdateMeetingTranscript(ctx context.Context, update *store.UpdateMeetingTranscript) error
}
