package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	rule, err := Parse("RRULE:FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE")
	require.NoError(t, err)
	assert.Equal(t, Weekly, rule.Frequency)
	assert.Equal(t, 2, rule.Interval)
	assert.Equal(t, []string{"MO", "WE"}, rule.ByDay)
}

func TestParseDefaults(t *testing.T) {
	rule, err := Parse("FREQ=MONTHLY")
	require.NoError(t, err)
	assert.Equal(t, Monthly, rule.Frequency)
	assert.Equal(t, 1, rule.Interval)
}

func TestParseMissingFreq(t *testing.T) {
	_, err := Parse("INTERVAL=2")
	assert.Error(t, err)

	_, err = Parse("")
	assert.Error(t, err)
}

func TestParseUntil(t *testing.T) {
	rule, err := Parse("FREQ=WEEKLY;UNTIL=20250101T000000Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), rule.Until)
}

func TestClassifyCadence(t *testing.T) {
	tests := []struct {
		name       string
		recurrence []string
		want       Cadence
	}{
		{"monthly", []string{"RRULE:FREQ=MONTHLY"}, CadenceMonthly},
		{"weekly", []string{"RRULE:FREQ=WEEKLY"}, CadenceWeekly},
		{"biweekly", []string{"RRULE:FREQ=WEEKLY;INTERVAL=2"}, CadenceBiweekly},
		{"triweekly is plain weekly", []string{"RRULE:FREQ=WEEKLY;INTERVAL=3"}, CadenceWeekly},
		{"unparseable defaults to weekly", []string{"RRULE:INTERVAL=2"}, CadenceWeekly},
		{"no rule line defaults to weekly", []string{"EXDATE:20240101"}, CadenceWeekly},
		{"empty", nil, CadenceWeekly},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCadence(tt.recurrence))
		})
	}
}

func TestFindRule(t *testing.T) {
	assert.Equal(t, "RRULE:FREQ=WEEKLY", FindRule([]string{"EXDATE:x", "RRULE:FREQ=WEEKLY"}))
	assert.Equal(t, "", FindRule([]string{"EXDATE:x"}))
}

func TestNextOccurrence(t *testing.T) {
	start := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC) // a Monday
	rule := &Rule{Frequency: Weekly, Interval: 1}

	next := rule.NextOccurrence(start, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 17, 10, 0, 0, 0, time.UTC), next)

	// Reference before start returns start itself.
	next = rule.NextOccurrence(start, start.AddDate(0, 0, -30))
	assert.Equal(t, start, next)
}

func TestNextOccurrenceExhausted(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	rule := &Rule{Frequency: Weekly, Interval: 1, Count: 3}

	next := rule.NextOccurrence(start, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, next.IsZero())

	until := &Rule{Frequency: Monthly, Interval: 1, Until: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	next = until.NextOccurrence(start, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, next.IsZero())
}
