package meeting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agendapilot/agendapilot/plugin/calendar"
	apperrors "github.com/agendapilot/agendapilot/server/internal/errors"
	"github.com/agendapilot/agendapilot/store"
)

// mockStore is a hand-written in-memory Store for service tests.
type mockStore struct {
	meetings []*store.RecurringMeeting
	agents   []*store.Agent
	nextID   int32
}

func newMockStore() *mockStore {
	return &mockStore{nextID: 1}
}

func (m *mockStore) CreateRecurringMeeting(_ context.Context, create *store.RecurringMeeting) (*store.RecurringMeeting, error) {
	create.ID = m.nextID
	m.nextID++
	m.meetings = append(m.meetings, create)
	return create, nil
}

func (m *mockStore) ListRecurringMeetings(_ context.Context, find *store.FindRecurringMeeting) ([]*store.RecurringMeeting, error) {
	list := []*store.RecurringMeeting{}
	for _, meeting := range m.meetings {
		if find.ID != nil && meeting.ID != *find.ID {
			continue
		}
		if find.CreatorID != nil && meeting.CreatorID != *find.CreatorID {
			continue
		}
		if find.ExternalEventID != nil && meeting.ExternalEventID != *find.ExternalEventID {
			continue
		}
		if find.AgentID != nil && (meeting.AgentID == nil || *meeting.AgentID != *find.AgentID) {
			continue
		}
		list = append(list, meeting)
	}
	return list, nil
}

func (m *mockStore) GetRecurringMeeting(ctx context.Context, find *store.FindRecurringMeeting) (*store.RecurringMeeting, error) {
	list, err := m.ListRecurringMeetings(ctx, find)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (m *mockStore) UpdateRecurringMeeting(_ context.Context, update *store.UpdateRecurringMeeting) error {
	for _, meeting := range m.meetings {
		if meeting.ID != update.ID {
			continue
		}
		if update.Title != nil {
			meeting.Title = *update.Title
		}
		if update.Frequency != nil {
			meeting.Frequency = *update.Frequency
		}
		if update.Attendees != nil {
			meeting.Attendees = *update.Attendees
		}
		if update.NextOccurrenceTs != nil {
			meeting.NextOccurrenceTs = *update.NextOccurrenceTs
		}
		if update.UnlinkAgent {
			meeting.AgentID = nil
		} else if update.AgentID != nil {
			meeting.AgentID = update.AgentID
		}
		return nil
	}
	return nil
}

func (m *mockStore) GetAgent(_ context.Context, find *store.FindAgent) (*store.Agent, error) {
	for _, agent := range m.agents {
		if find.ID != nil && agent.ID != *find.ID {
			continue
		}
		if find.CreatorID != nil && agent.CreatorID != *find.CreatorID {
			continue
		}
		return agent, nil
	}
	return nil, nil
}

func TestSyncFromCalendar(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("creates meetings for valid events only", func(t *testing.T) {
		mock := newMockStore()
		service := NewService(mock)

		daily := validEvent(now)
		daily.ID = "evt-daily"
		daily.Recurrence = []string{"RRULE:FREQ=DAILY"}

		synced, err := service.SyncFromCalendar(ctx, 1, []calendar.Event{validEvent(now), daily})
		require.NoError(t, err)
		require.Len(t, synced, 1)
		require.Equal(t, "Weekly Product Sync", synced[0].Title)
		require.Equal(t, store.FrequencyWeekly, synced[0].Frequency)
		require.NotEmpty(t, synced[0].UID)
	})

	t.Run("derives biweekly frequency", func(t *testing.T) {
		mock := newMockStore()
		service := NewService(mock)

		event := validEvent(now)
		event.Recurrence = []string{"RRULE:FREQ=WEEKLY;INTERVAL=2"}

		synced, err := service.SyncFromCalendar(ctx, 1, []calendar.Event{event})
		require.NoError(t, err)
		require.Len(t, synced, 1)
		require.Equal(t, store.FrequencyBiweekly, synced[0].Frequency)
	})

	t.Run("upsert preserves agent link", func(t *testing.T) {
		mock := newMockStore()
		service := NewService(mock)

		synced, err := service.SyncFromCalendar(ctx, 1, []calendar.Event{validEvent(now)})
		require.NoError(t, err)
		require.Len(t, synced, 1)

		agentID := int32(9)
		require.NoError(t, mock.UpdateRecurringMeeting(ctx, &store.UpdateRecurringMeeting{
			ID:      synced[0].ID,
			AgentID: &agentID,
		}))

		renamed := validEvent(now)
		renamed.Title = "Weekly Product Sync v2"
		resynced, err := service.SyncFromCalendar(ctx, 1, []calendar.Event{renamed})
		require.NoError(t, err)
		require.Len(t, resynced, 1)
		require.Equal(t, synced[0].ID, resynced[0].ID)
		require.Equal(t, "Weekly Product Sync v2", resynced[0].Title)
		require.NotNil(t, mock.meetings[0].AgentID)
		require.Equal(t, agentID, *mock.meetings[0].AgentID)
	})

	t.Run("next occurrence is at or after now", func(t *testing.T) {
		mock := newMockStore()
		service := NewService(mock)

		synced, err := service.SyncFromCalendar(ctx, 1, []calendar.Event{validEvent(now)})
		require.NoError(t, err)
		require.Len(t, synced, 1)
		require.False(t, synced[0].NextOccurrence().Before(now.Truncate(time.Second)))
	})
}

func TestLinkAgent(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	setup := func(t *testing.T) (*Service, *mockStore, *store.RecurringMeeting) {
		mock := newMockStore()
		service := NewService(mock)
		synced, err := service.SyncFromCalendar(ctx, 1, []calendar.Event{validEvent(now)})
		require.NoError(t, err)
		require.Len(t, synced, 1)
		mock.agents = append(mock.agents, &store.Agent{ID: 7, CreatorID: 1, Name: "Product"})
		return service, mock, synced[0]
	}

	t.Run("links owned meeting and agent", func(t *testing.T) {
		service, mock, meeting := setup(t)
		require.NoError(t, service.LinkAgent(ctx, meeting.ID, 7, 1))
		require.NotNil(t, mock.meetings[0].AgentID)
		require.Equal(t, int32(7), *mock.meetings[0].AgentID)
	})

	t.Run("not found for foreign meeting", func(t *testing.T) {
		service, _, meeting := setup(t)
		err := service.LinkAgent(ctx, meeting.ID, 7, 2)
		require.Error(t, err)
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
	})

	t.Run("not found for missing agent", func(t *testing.T) {
		service, _, meeting := setup(t)
		err := service.LinkAgent(ctx, meeting.ID, 99, 1)
		require.Error(t, err)
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
	})

	t.Run("unlink clears the link", func(t *testing.T) {
		service, mock, meeting := setup(t)
		require.NoError(t, service.LinkAgent(ctx, meeting.ID, 7, 1))
		require.NoError(t, service.UnlinkAgent(ctx, meeting.ID, 1))
		require.Nil(t, mock.meetings[0].AgentID)
	})
}
