// Package rrule provides RRULE (Recurrence Rule) parsing for calendar events.
// It supports the subset of iCalendar RFC 5545 needed to classify meeting
// cadence and advance occurrence timestamps; full expansion is out of scope.
package rrule

import (
	"fmt"
	"strings"
	"time"
)

// Frequency represents the recurrence frequency.
type Frequency string

const (
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

// Cadence is the coarse meeting cadence derived from a rule, as persisted
// on recurring meetings.
type Cadence string

const (
	CadenceWeekly   Cadence = "weekly"
	CadenceBiweekly Cadence = "biweekly"
	CadenceMonthly  Cadence = "monthly"
)

// Rule represents a parsed recurrence rule.
type Rule struct {
	Frequency Frequency // FREQ
	Interval  int       // INTERVAL (default 1)
	Count     int       // COUNT (number of occurrences)
	Until     time.Time // UNTIL (end date)
	ByDay     []string  // BYDAY
}

// Parse parses an RRULE string into a Rule struct.
// The "RRULE:" prefix is accepted and stripped.
// Example: "RRULE:FREQ=WEEKLY;INTERVAL=2;BYDAY=MO"
func Parse(rrule string) (*Rule, error) {
	rule := &Rule{
		Interval: 1, // Default interval
	}

	rrule = strings.TrimPrefix(strings.TrimSpace(rrule), "RRULE:")
	if rrule == "" {
		return nil, fmt.Errorf("empty RRULE")
	}

	parts := strings.Split(rrule, ";")
	for _, part := range parts {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])

		switch key {
		case "FREQ":
			rule.Frequency = Frequency(value)
		case "INTERVAL":
			fmt.Sscanf(value, "%d", &rule.Interval)
		case "COUNT":
			fmt.Sscanf(value, "%d", &rule.Count)
		case "UNTIL":
			// RFC 5545 date-time format: YYYYMMDDTHHmmssZ
			if t, err := time.Parse("20060102T150405Z", value); err == nil {
				rule.Until = t
			}
		case "BYDAY":
			rule.ByDay = splitList(value)
		}
	}

	if rule.Frequency == "" {
		return nil, fmt.Errorf("missing required FREQ in RRULE")
	}
	if rule.Interval < 1 {
		rule.Interval = 1
	}

	return rule, nil
}

// FindRule returns the first line carrying an "RRULE:" prefix, or "" if the
// event has none. Calendar providers ship recurrence as a list of lines
// that may also contain EXDATE/RDATE entries.
func FindRule(recurrence []string) string {
	for _, line := range recurrence {
		if strings.HasPrefix(line, "RRULE:") {
			return line
		}
	}
	return ""
}

// ClassifyCadence derives the persisted meeting cadence from recurrence
// lines. MONTHLY maps to monthly, WEEKLY with INTERVAL=2 to biweekly, any
// other WEEKLY to weekly. Unparseable rules default to weekly.
func ClassifyCadence(recurrence []string) Cadence {
	line := FindRule(recurrence)
	if line == "" {
		return CadenceWeekly
	}
	rule, err := Parse(line)
	if err != nil {
		return CadenceWeekly
	}
	switch rule.Frequency {
	case Monthly:
		return CadenceMonthly
	case Weekly:
		if rule.Interval == 2 {
			return CadenceBiweekly
		}
		return CadenceWeekly
	default:
		return CadenceWeekly
	}
}

// NextOccurrence returns the first occurrence of the rule at or after the
// given reference time, stepping from start. A zero time is returned when
// the rule is exhausted (COUNT/UNTIL) before reaching the reference.
func (r *Rule) NextOccurrence(start, after time.Time) time.Time {
	current := start
	count := 0
	for {
		if r.Count > 0 && count >= r.Count {
			return time.Time{}
		}
		if !r.Until.IsZero() && current.After(r.Until) {
			return time.Time{}
		}
		if !current.Before(after) {
			return current
		}
		next := r.step(current)
		if next.Equal(current) {
			return time.Time{}
		}
		current = next
		count++
	}
}

func (r *Rule) step(current time.Time) time.Time {
	interval := r.Interval
	if interval < 1 {
		interval = 1
	}
	switch r.Frequency {
	case Daily:
		return current.AddDate(0, 0, interval)
	case Weekly:
		return current.AddDate(0, 0, interval*7)
	case Monthly:
		return current.AddDate(0, interval, 0)
	case Yearly:
		return current.AddDate(interval, 0, 0)
	default:
		return current
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			list = append(list, v)
		}
	}
	return list
}
