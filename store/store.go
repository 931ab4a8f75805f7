package store

import (
	"context"

	"github.com/agendapilot/agendapilot/internal/profile"
)

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		driver:  driver,
		profile: profile,
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	return s.driver.Close()
}

// RecurringMeeting model related methods.

func (s *Store) CreateRecurringMeeting(ctx context.Context, create *RecurringMeeting) (*RecurringMeeting, error) {
	return s.driver.CreateRecurringMeeting(ctx, create)
}

func (s *Store) ListRecurringMeetings(ctx context.Context, find *FindRecurringMeeting) ([]*RecurringMeeting, error) {
	return s.driver.ListRecurringMeetings(ctx, find)
}

// GetRecurringMeeting gets a single recurring meeting matching the find condition.
func (s *Store) GetRecurringMeeting(ctx context.Context, find *FindRecurringMeeting) (*RecurringMeeting, error) {
	list, err := s.driver.ListRecurringMeetings(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) UpdateRecurringMeeting(ctx context.Context, update *UpdateRecurringMeeting) error {
	return s.driver.UpdateRecurringMeeting(ctx, update)
}

func (s *Store) DeleteRecurringMeeting(ctx context.Context, delete *DeleteRecurringMeeting) error {
	return s.driver.DeleteRecurringMeeting(ctx, delete)
}

// MeetingTranscript model related methods.

func (s *Store) CreateMeetingTranscript(ctx context.Context, create *MeetingTranscript) (*MeetingTranscript, error) {
	return s.driver.CreateMeetingTranscript(ctx, create)
}

func (s *Store) ListMeetingTranscripts(ctx context.Context, find *FindMeetingTranscript) ([]*MeetingTranscript, error) {
	return s.driver.ListMeetingTranscripts(ctx, find)
}

// GetMeetingTranscript gets a single transcript matching the find condition.
func (s *Store) GetMeetingTranscript(ctx context.Context, find *FindMeetingTranscript) (*MeetingTranscript, error) {
	list, err := s.driver.ListMeetingTranscripts(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) UpdateMeetingTranscript(ctx context.Context, update *UpdateMeetingTranscript) error {
	return s.driver.UpdateMeetingTranscript(ctx, update)
}

func (s *Store) DeleteMeetingTranscript(ctx context.Context, delete *DeleteMeetingTranscript) error {
	return s.driver.DeleteMeetingTranscript(ctx, delete)
}

// Agent model related methods.

func (s *Store) CreateAgent(ctx context.Context, create *Agent) (*Agent, error) {
	return s.driver.CreateAgent(ctx, create)
}

func (s *Store) ListAgents(ctx context.Context, find *FindAgent) ([]*Agent, error) {
	return s.driver.ListAgents(ctx, find)
}

// GetAgent gets a single agent matching the find condition.
func (s *Store) GetAgent(ctx context.Context, find *FindAgent) (*Agent, error) {
	list, err := s.driver.ListAgents(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) UpdateAgent(ctx context.Context, update *UpdateAgent) error {
	return s.driver.UpdateAgent(ctx, update)
}

func (s *Store) DeleteAgent(ctx context.Context, delete *DeleteAgent) error {
	return s.driver.DeleteAgent(ctx, delete)
}

// Knowledge model related methods.

func (s *Store) CreateKnowledge(ctx context.Context, create *Knowledge) (*Knowledge, error) {
	return s.driver.CreateKnowledge(ctx, create)
}

func (s *Store) ListKnowledge(ctx context.Context, find *FindKnowledge) ([]*Knowledge, error) {
	return s.driver.ListKnowledge(ctx, find)
}

// GetLatestKnowledge returns the most recent knowledge record for an agent,
// or nil when the agent has none.
func (s *Store) GetLatestKnowledge(ctx context.Context, agentID int32) (*Knowledge, error) {
	limit := 1
	list, err := s.driver.ListKnowledge(ctx, &FindKnowledge{AgentID: &agentID, Limit: &limit})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (s *Store) DeleteKnowledge(ctx context.Context, delete *DeleteKnowledge) error {
	return s.driver.DeleteKnowledge(ctx, delete)
}

// GlossaryEntry model related methods.

func (s *Store) CreateGlossaryEntry(ctx context.Context, create *GlossaryEntry) (*GlossaryEntry, error) {
	return s.driver.CreateGlossaryEntry(ctx, create)
}

func (s *Store) ListGlossaryEntries(ctx context.Context, find *FindGlossaryEntry) ([]*GlossaryEntry, error) {
	return s.driver.ListGlossaryEntries(ctx, find)
}

func (s *Store) DeleteGlossaryEntry(ctx context.Context, delete *DeleteGlossaryEntry) error {
	return s.driver.DeleteGlossaryEntry(ctx, delete)
}

// Agenda model related methods.

func (s *Store) CreateAgenda(ctx context.Context, create *Agenda) (*Agenda, error) {
	return s.driver.CreateAgenda(ctx, create)
}

func (s *Store) ListAgendas(ctx context.Context, find *FindAgenda) ([]*Agenda, error) {
	return s.driver.ListAgendas(ctx, find)
}

func (s *Store) DeleteAgenda(ctx context.Context, delete *DeleteAgenda) error {
	return s.driver.DeleteAgenda(ctx, delete)
}
