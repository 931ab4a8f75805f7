package meeting

import (
	"time"

	"github.com/agendapilot/agendapilot/plugin/calendar"
	"github.com/agendapilot/agendapilot/server/scheduler/rrule"
)

// Filter defaults.
const (
	DefaultMinAttendees = 2
	DefaultRecentMonths = 3
)

// Filter classifies raw calendar events into recurring-meeting candidates.
// State-free; thresholds are fixed at construction so tests can use
// non-default windows.
type Filter struct {
	minAttendees int
	recentMonths int
}

func NewFilter() *Filter {
	return &Filter{
		minAttendees: DefaultMinAttendees,
		recentMonths: DefaultRecentMonths,
	}
}

func NewFilterWith(minAttendees, recentMonths int) *Filter {
	return &Filter{
		minAttendees: minAttendees,
		recentMonths: recentMonths,
	}
}

// Valid reports whether the event is a recurring-meeting candidate: it must
// carry an RRULE line with WEEKLY or MONTHLY frequency, have enough
// attendees, and have occurred recently. DAILY rules are rejected outright,
// daily stand-ups are out of scope.
func (f *Filter) Valid(event calendar.Event, now time.Time) bool {
	line := rrule.FindRule(event.Recurrence)
	if line == "" {
		return false
	}
	rule, err := rrule.Parse(line)
	if err != nil {
		return false
	}
	if rule.Frequency != rrule.Weekly && rule.Frequency != rrule.Monthly {
		return false
	}

	if len(event.Attendees) < f.minAttendees {
		return false
	}

	cutoff := now.AddDate(0, -f.recentMonths, 0)
	return !event.StartTime.Before(cutoff)
}
