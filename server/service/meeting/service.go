// Package meeting detects recurring meetings in raw calendar events and
// keeps their persisted records in sync.
package meeting

import (
	"context"
	"log/slog"
	"time"

	"github.com/lithammer/shortuuid/v4"

	"github.com/agendapilot/agendapilot/plugin/calendar"
	apperrors "github.com/agendapilot/agendapilot/server/internal/errors"
	"github.com/agendapilot/agendapilot/server/scheduler/rrule"
	"github.com/agendapilot/agendapilot/store"
)

// Service implements recurring-meeting detection and management.
type Service struct {
	store  Store
	filter *Filter
}

func NewService(store Store) *Service {
	return &Service{
		store:  store,
		filter: NewFilter(),
	}
}

// SyncFromCalendar filters the given raw events and upserts the surviving
// candidates as recurring meetings for the user. Upserting by external
// event id refreshes title, rule, cadence, attendees and next occurrence
// while preserving an existing agent link.
func (s *Service) SyncFromCalendar(ctx context.Context, userID int32, events []calendar.Event) ([]*store.RecurringMeeting, error) {
	now := time.Now().UTC()

	synced := []*store.RecurringMeeting{}
	for _, event := range events {
		if !s.filter.Valid(event, now) {
			continue
		}

		ruleLine := rrule.FindRule(event.Recurrence)
		frequency := store.MeetingFrequency(rrule.ClassifyCadence(event.Recurrence))
		nextTs := nextOccurrenceTs(ruleLine, event.StartTime, now)
		attendees := toStoreAttendees(event.Attendees)

		existing, err := s.store.GetRecurringMeeting(ctx, &store.FindRecurringMeeting{
			CreatorID:       &userID,
			ExternalEventID: &event.ID,
		})
		if err != nil {
			return nil, apperrors.Internal("failed to find recurring meeting", err)
		}

		if existing != nil {
			update := &store.UpdateRecurringMeeting{
				ID:               existing.ID,
				Title:            &event.Title,
				RecurrenceRule:   &ruleLine,
				Frequency:        &frequency,
				Attendees:        &attendees,
				NextOccurrenceTs: &nextTs,
			}
			if err := s.store.UpdateRecurringMeeting(ctx, update); err != nil {
				return nil, apperrors.Internal("failed to update recurring meeting", err)
			}
			existing.Title = event.Title
			existing.RecurrenceRule = ruleLine
			existing.Frequency = frequency
			existing.Attendees = attendees
			existing.NextOccurrenceTs = nextTs
			synced = append(synced, existing)
			continue
		}

		created, err := s.store.CreateRecurringMeeting(ctx, &store.RecurringMeeting{
			UID:              shortuuid.New(),
			CreatorID:        userID,
			ExternalEventID:  event.ID,
			Title:            event.Title,
			RecurrenceRule:   ruleLine,
			Frequency:        frequency,
			Attendees:        attendees,
			NextOccurrenceTs: nextTs,
		})
		if err != nil {
			return nil, apperrors.Internal("failed to create recurring meeting", err)
		}
		synced = append(synced, created)
	}

	slog.Info("calendar sync completed",
		slog.Int("user_id", int(userID)),
		slog.Int("events", len(events)),
		slog.Int("meetings", len(synced)))
	return synced, nil
}

// List returns the user's recurring meetings.
func (s *Service) List(ctx context.Context, userID int32) ([]*store.RecurringMeeting, error) {
	return s.store.ListRecurringMeetings(ctx, &store.FindRecurringMeeting{CreatorID: &userID})
}

// Get returns one recurring meeting owned by the user.
func (s *Service) Get(ctx context.Context, meetingID, userID int32) (*store.RecurringMeeting, error) {
	meeting, err := s.store.GetRecurringMeeting(ctx, &store.FindRecurringMeeting{
		ID:        &meetingID,
		CreatorID: &userID,
	})
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, apperrors.NotFoundf("meeting %d not found", meetingID)
	}
	return meeting, nil
}

// LinkAgent links a recurring meeting to an agent. Both must exist and be
// owned by the user.
func (s *Service) LinkAgent(ctx context.Context, meetingID, agentID, userID int32) error {
	meeting, err := s.Get(ctx, meetingID, userID)
	if err != nil {
		return err
	}

	agent, err := s.store.GetAgent(ctx, &store.FindAgent{ID: &agentID, CreatorID: &userID})
	if err != nil {
		return err
	}
	if agent == nil {
		return apperrors.NotFoundf("agent %d not found", agentID)
	}

	return s.store.UpdateRecurringMeeting(ctx, &store.UpdateRecurringMeeting{
		ID:      meeting.ID,
		AgentID: &agent.ID,
	})
}

// UnlinkAgent clears the agent link of a recurring meeting.
func (s *Service) UnlinkAgent(ctx context.Context, meetingID, userID int32) error {
	meeting, err := s.Get(ctx, meetingID, userID)
	if err != nil {
		return err
	}
	return s.store.UpdateRecurringMeeting(ctx, &store.UpdateRecurringMeeting{
		ID:          meeting.ID,
		UnlinkAgent: true,
	})
}

func nextOccurrenceTs(ruleLine string, start, now time.Time) int64 {
	rule, err := rrule.Parse(ruleLine)
	if err != nil {
		return start.Unix()
	}
	next := rule.NextOccurrence(start, now)
	if next.IsZero() {
		return start.Unix()
	}
	return next.Unix()
}

func toStoreAttendees(attendees []calendar.Attendee) []store.Attendee {
	list := make([]store.Attendee, 0, len(attendees))
	for _, a := range attendees {
		list = append(list, store.Attendee{Email: a.Email, Name: a.Name})
	}
	return list
}
