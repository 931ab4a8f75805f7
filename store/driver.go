package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	IsInitialized(ctx context.Context) (bool, error)

	// RecurringMeeting model related methods.
	CreateRecurringMeeting(ctx context.Context, create *RecurringMeeting) (*RecurringMeeting, error)
	ListRecurringMeetings(ctx context.Context, find *FindRecurringMeeting) ([]*RecurringMeeting, error)
	UpdateRecurringMeeting(ctx context.Context, update *UpdateRecurringMeeting) error
	DeleteRecurringMeeting(ctx context.Context, delete *DeleteRecurringMeeting) error

	// MeetingTranscript model related methods.
	CreateMeetingTranscript(ctx context.Context, create *MeetingTranscript) (*MeetingTranscript, error)
	ListMeetingTranscripts(ctx context.Context, find *FindMeetingTranscript) ([]*MeetingTranscript, error)
	UpdateMeetingTranscript(ctx context.Context, update *UpdateMeetingTranscript) error
	DeleteMeetingTranscript(ctx context.Context, delete *DeleteMeetingTranscript) error

	// Agent model related methods.
	CreateAgent(ctx context.Context, create *Agent) (*Agent, error)
	ListAgents(ctx context.Context, find *FindAgent) ([]*Agent, error)
	UpdateAgent(ctx context.Context, update *UpdateAgent) error
	DeleteAgent(ctx context.Context, delete *DeleteAgent) error

	// Knowledge model related methods.
	CreateKnowledge(ctx context.Context, create *Knowledge) (*Knowledge, error)
	ListKnowledge(ctx context.Context, find *FindKnowledge) ([]*Knowledge, error)
	DeleteKnowledge(ctx context.Context, delete *DeleteKnowledge) error

	// GlossaryEntry model related methods.
	CreateGlossaryEntry(ctx context.Context, create *GlossaryEntry) (*GlossaryEntry, error)
	ListGlossaryEntries(ctx context.Context, find *FindGlossaryEntry) ([]*GlossaryEntry, error)
	DeleteGlossaryEntry(ctx context.Context, delete *DeleteGlossaryEntry) error

	// Agenda model related methods.
	CreateAgenda(ctx context.Context, create *Agenda) (*Agenda, error)
	ListAgendas(ctx context.Context, find *FindAgenda) ([]*Agenda, error)
	DeleteAgenda(ctx context.Context, delete *DeleteAgenda) error
}
