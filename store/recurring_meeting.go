package store

import (
	"time"
)

// MeetingFrequency is the cadence of a recurring meeting derived from its
// recurrence rule.
type MeetingFrequency string

const (
	FrequencyWeekly   MeetingFrequency = "weekly"
	FrequencyBiweekly MeetingFrequency = "biweekly"
	FrequencyMonthly  MeetingFrequency = "monthly"
)

// Attendee is one meeting attendee. Attendees are copied onto the meeting
// record; they carry no ownership semantics.
type Attendee struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// RecurringMeeting is the object representing a recurring calendar meeting.
type RecurringMeeting struct {
	ID        int32
	UID       string
	CreatorID int32
	CreatedTs int64
	UpdatedTs int64

	// ExternalEventID is the calendar provider's event id, unique per creator.
	ExternalEventID string
	Title           string
	RecurrenceRule  string
	Frequency       MeetingFrequency
	Attendees       []Attendee
	// NextOccurrenceTs is the next planned occurrence of the meeting.
	NextOccurrenceTs int64
	// AgentID links the meeting to at most one agent. Many meetings may
	// link to the same agent.
	AgentID *int32
}

// NextOccurrence returns the next occurrence timestamp as time.Time.
func (m *RecurringMeeting) NextOccurrence() time.Time {
	return time.Unix(m.NextOccurrenceTs, 0).UTC()
}

// AttendeeEmails returns the attendee email addresses in order.
func (m *RecurringMeeting) AttendeeEmails() []string {
	emails := make([]string, 0, len(m.Attendees))
	for _, a := range m.Attendees {
		emails = append(emails, a.Email)
	}
	return emails
}

// FindRecurringMeeting is the find condition for recurring meetings.
type FindRecurringMeeting struct {
	ID              *int32
	UID             *string
	CreatorID       *int32
	ExternalEventID *string
	AgentID         *int32
}

// UpdateRecurringMeeting is the update request for a recurring meeting.
type UpdateRecurringMeeting struct {
	ID               int32
	UpdatedTs        *int64
	Title            *string
	RecurrenceRule   *string
	Frequency        *MeetingFrequency
	Attendees        *[]Attendee
	NextOccurrenceTs *int64
	AgentID          *int32
	// UnlinkAgent clears the agent link when true. Mutually exclusive with AgentID.
	UnlinkAgent bool
}

// DeleteRecurringMeeting is the delete request for a recurring meeting.
type DeleteRecurringMeeting struct {
	ID int32
}
