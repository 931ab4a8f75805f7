package agenda

import (
	"context"

	"github.com/agendapilot/agendapilot/store"
)

// Store defines the persistence operations the agenda service needs.
type Store interface {
	GetAgent(ctx context.Context, find *store.FindAgent) (*store.Agent, error)
	GetLatestKnowledge(ctx context.Context, agentID int32) (*store.Knowledge, error)
	ListRecurringMeetings(ctx context.Context, find *store.FindRecurringMeeting) ([]*store.RecurringMeeting, error)
	ListMeetingTranscripts(ctx context.Context, find *store.FindMeetingTranscript) ([]*store.MeetingTranscript, error)
	ListGlossaryEntries(ctx context.Context, find *store.FindGlossaryEntry) ([]*store.GlossaryEntry, error)
	CreateAgenda(ctx context.Context, create *store.Agenda) (*store.Agenda, error)
	ListAgendas(ctx context.Context, find *store.FindAgenda) ([]*store.Agenda, error)
}
