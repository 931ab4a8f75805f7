package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//test//EN
BEGIN:VEVENT
UID:evt-weekly-1
SUMMARY:Weekly Product Sync
DTSTART:20250303T100000Z
RRULE:FREQ=WEEKLY;BYDAY=MO
ATTENDEE;CN=Alice:mailto:alice@example.com
ATTENDEE;CN=Bob:mailto:bob@example.com
END:VEVENT
BEGIN:VEVENT
UID:evt-single-1
SUMMARY:One-off Review
DTSTART:20250304T140000Z
ATTENDEE:mailto:carol@example.com
END:VEVENT
END:VCALENDAR
`

func TestParseICS(t *testing.T) {
	events, err := ParseICS(strings.NewReader(sampleICS))
	require.NoError(t, err)
	require.Len(t, events, 2)

	weekly := events[0]
	require.Equal(t, "evt-weekly-1", weekly.ID)
	require.Equal(t, "Weekly Product Sync", weekly.Title)
	require.Equal(t, time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), weekly.StartTime)
	require.Equal(t, []string{"RRULE:FREQ=WEEKLY;BYDAY=MO"}, weekly.Recurrence)
	require.Len(t, weekly.Attendees, 2)
	require.Equal(t, "alice@example.com", weekly.Attendees[0].Email)
	require.Equal(t, "Alice", weekly.Attendees[0].Name)

	single := events[1]
	require.Equal(t, "evt-single-1", single.ID)
	require.Empty(t, single.Recurrence)
	require.Len(t, single.Attendees, 1)
}

func TestParseICSInvalidPayload(t *testing.T) {
	_, err := ParseICS(strings.NewReader("not a calendar"))
	require.Error(t, err)
}
