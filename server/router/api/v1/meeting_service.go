package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agendapilot/agendapilot/plugin/calendar"
	"github.com/agendapilot/agendapilot/store"
)

type attendeeResponse struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type meetingResponse struct {
	ID               int32              `json:"id"`
	UID              string             `json:"uid"`
	ExternalEventID  string             `json:"externalEventId"`
	Title            string             `json:"title"`
	RecurrenceRule   string             `json:"recurrenceRule"`
	Frequency        string             `json:"frequency"`
	Attendees        []attendeeResponse `json:"attendees"`
	NextOccurrenceTs int64              `json:"nextOccurrenceTs"`
	AgentID          *int32             `json:"agentId,omitempty"`
	CreatedTs        int64              `json:"createdTs"`
	UpdatedTs        int64              `json:"updatedTs"`
}

func convertMeeting(m *store.RecurringMeeting) meetingResponse {
	attendees := make([]attendeeResponse, 0, len(m.Attendees))
	for _, a := range m.Attendees {
		attendees = append(attendees, attendeeResponse{Email: a.Email, Name: a.Name})
	}
	return meetingResponse{
		ID:               m.ID,
		UID:              m.UID,
		ExternalEventID:  m.ExternalEventID,
		Title:            m.Title,
		RecurrenceRule:   m.RecurrenceRule,
		Frequency:        string(m.Frequency),
		Attendees:        attendees,
		NextOccurrenceTs: m.NextOccurrenceTs,
		AgentID:          m.AgentID,
		CreatedTs:        m.CreatedTs,
		UpdatedTs:        m.UpdatedTs,
	}
}

func convertMeetings(list []*store.RecurringMeeting) []meetingResponse {
	meetings := make([]meetingResponse, 0, len(list))
	for _, m := range list {
		meetings = append(meetings, convertMeeting(m))
	}
	return meetings
}

type calendarSyncResponse struct {
	EventCount int               `json:"eventCount"`
	Meetings   []meetingResponse `json:"meetings"`
}

// SyncCalendar accepts an iCalendar payload in the request body, filters it
// for recurring candidates and upserts the user's recurring meetings.
func (s *APIV1Service) SyncCalendar(c echo.Context) error {
	events, err := calendar.ParseICS(c.Request().Body)
	if err != nil {
		slog.Warn("rejected calendar payload", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "INVALID_ARGUMENT",
			Message: "request body is not a valid iCalendar payload",
		})
	}

	meetings, err := s.MeetingService.SyncFromCalendar(c.Request().Context(), s.userID(c), events)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, calendarSyncResponse{
		EventCount: len(events),
		Meetings:   convertMeetings(meetings),
	})
}

// ListMeetings returns the user's recurring meetings, next occurrence first.
func (s *APIV1Service) ListMeetings(c echo.Context) error {
	meetings, err := s.MeetingService.List(c.Request().Context(), s.userID(c))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, convertMeetings(meetings))
}

// GetMeeting returns one recurring meeting owned by the user.
func (s *APIV1Service) GetMeeting(c echo.Context) error {
	meetingID, err := pathID(c)
	if err != nil {
		return replyError(c, err)
	}
	meeting, err := s.MeetingService.Get(c.Request().Context(), meetingID, s.userID(c))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, convertMeeting(meeting))
}

type linkAgentRequest struct {
	AgentID int32 `json:"agentId"`
}

// LinkMeetingAgent links a recurring meeting to an agent.
func (s *APIV1Service) LinkMeetingAgent(c echo.Context) error {
	meetingID, err := pathID(c)
	if err != nil {
		return replyError(c, err)
	}
	request := &linkAgentRequest{}
	if err := c.Bind(request); err != nil || request.AgentID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "INVALID_ARGUMENT",
			Message: "agentId is required",
		})
	}

	userID := s.userID(c)
	if err := s.MeetingService.LinkAgent(c.Request().Context(), meetingID, request.AgentID, userID); err != nil {
		return replyError(c, err)
	}
	meeting, err := s.MeetingService.Get(c.Request().Context(), meetingID, userID)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, convertMeeting(meeting))
}

// UnlinkMeetingAgent clears the agent link of a recurring meeting.
func (s *APIV1Service) UnlinkMeetingAgent(c echo.Context) error {
	meetingID, err := pathID(c)
	if err != nil {
		return replyError(c, err)
	}

	userID := s.userID(c)
	if err := s.MeetingService.UnlinkAgent(c.Request().Context(), meetingID, userID); err != nil {
		return replyError(c, err)
	}
	meeting, err := s.MeetingService.Get(c.Request().Context(), meetingID, userID)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, convertMeeting(meeting))
}
