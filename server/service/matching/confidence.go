package matching

import (
	"time"

	"github.com/agendapilot/agendapilot/store"
)

// Component weights of the match confidence score.
const (
	NameWeight     = 0.4
	TimeWeight     = 0.3
	AttendeeWeight = 0.3
)

// MatchConfidence scores how likely a transcript belongs to a meeting.
// Title similarity carries the most weight; time proximity and the overlap
// between attendee email local parts and transcript speakers split the rest.
func MatchConfidence(meeting *store.RecurringMeeting, title string, date time.Time, speakers []string) float64 {
	nameScore := StringSimilarity(meeting.Title, title)
	timeScore := TimeProximity(meeting.NextOccurrence(), date)

	locals := make([]string, 0, len(meeting.Attendees))
	for _, attendee := range meeting.Attendees {
		locals = append(locals, LocalPart(attendee.Email))
	}
	attendeeScore := SetOverlap(locals, speakers)

	return NameWeight*nameScore + TimeWeight*timeScore + AttendeeWeight*attendeeScore
}
