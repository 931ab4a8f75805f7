package calendar

import (
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/pkg/errors"
)

// ParseICS decodes an iCalendar payload into raw events. Components other
// than VEVENT are skipped; a VEVENT without UID or SUMMARY is skipped too.
func ParseICS(r io.Reader) ([]Event, error) {
	decoder := ical.NewDecoder(r)

	events := []Event{}
	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode calendar")
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			event, ok := parseEvent(comp)
			if ok {
				events = append(events, event)
			}
		}
	}
	return events, nil
}

func parseEvent(comp *ical.Component) (Event, bool) {
	event := Event{}

	if prop := comp.Props.Get(ical.PropUID); prop != nil {
		event.ID = prop.Value
	}
	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		event.Title = prop.Value
	}
	if event.ID == "" || event.Title == "" {
		return Event{}, false
	}

	if prop := comp.Props.Get(ical.PropDateTimeStart); prop != nil {
		if t, err := prop.DateTime(time.UTC); err == nil {
			event.StartTime = t.UTC()
		}
	}

	if prop := comp.Props.Get(ical.PropRecurrenceRule); prop != nil {
		event.Recurrence = append(event.Recurrence, "RRULE:"+prop.Value)
	}

	for _, prop := range comp.Props.Values(ical.PropAttendee) {
		attendee := Attendee{
			Email: strings.TrimPrefix(strings.ToLower(prop.Value), "mailto:"),
		}
		if cn := prop.Params.Get(ical.ParamCommonName); cn != "" {
			attendee.Name = cn
		}
		if attendee.Email != "" {
			event.Attendees = append(event.Attendees, attendee)
		}
	}

	return event, true
}
