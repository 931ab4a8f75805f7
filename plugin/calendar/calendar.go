// Package calendar defines the calendar source capability: raw events with
// recurrence rules and attendees, before any classification.
package calendar

import (
	"time"
)

// Attendee is one invited participant of a calendar event.
type Attendee struct {
	Email string
	Name  string
}

// Event is a raw calendar event as delivered by a source. Recurrence holds
// the raw rule lines, RRULE lines keep their "RRULE:" prefix.
type Event struct {
	ID         string
	Title      string
	StartTime  time.Time
	Recurrence []string
	Attendees  []Attendee
}
