package meeting

import (
	"context"

	"github.com/agendapilot/agendapilot/store"
)

// Store defines the persistence operations the meeting service needs.
// Narrow by design so tests can supply a hand-written mock.
type Store interface {
	CreateRecurringMeeting(ctx context.Context, create *store.RecurringMeeting) (*store.RecurringMeeting, error)
	ListRecurringMeetings(ctx context.Context, find *store.FindRecurringMeeting) ([]*store.RecurringMeeting, error)
	GetRecurringMeeting(ctx context.Context, find *store.FindRecurringMeeting) (*store.RecurringMeeting, error)
	UpdateRecurringMeeting(ctx context.Context, update *store.UpdateRecurringMeeting) error
	GetAgent(ctx context.Context, find *store.FindAgent) (*store.Agent, error)
}
