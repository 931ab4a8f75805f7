package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agendapilot/agendapilot/store"
)

type transcriptEntryResponse struct {
	Speaker   string `json:"speaker"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

type transcriptResponse struct {
	ID                int32                     `json:"id"`
	UID               string                    `json:"uid"`
	MeetingID         int32                     `json:"meetingId"`
	MeetingDateTs     int64                     `json:"meetingDateTs"`
	ExternalDocID     string                    `json:"externalDocId"`
	Entries           []transcriptEntryResponse `json:"entries"`
	MatchConfidence   float64                   `json:"matchConfidence"`
	AutoLinked        bool                      `json:"autoLinked"`
	NeedsConfirmation bool                      `json:"needsConfirmation"`
	CreatedTs         int64                     `json:"createdTs"`
}

func convertTranscript(t *store.MeetingTranscript) transcriptResponse {
	entries := make([]transcriptEntryResponse, 0, len(t.Entries))
	for _, entry := range t.Entries {
		entries = append(entries, transcriptEntryResponse{
			Speaker:   entry.Speaker,
			Timestamp: entry.Timestamp,
			Text:      entry.Text,
		})
	}
	return transcriptResponse{
		ID:                t.ID,
		UID:               t.UID,
		MeetingID:         t.MeetingID,
		MeetingDateTs:     t.MeetingDateTs,
		ExternalDocID:     t.ExternalDocID,
		Entries:           entries,
		MatchConfidence:   t.MatchConfidence,
		AutoLinked:        t.AutoLinked(),
		NeedsConfirmation: t.NeedsConfirmation(),
		CreatedTs:         t.CreatedTs,
	}
}

func convertTranscripts(list []*store.MeetingTranscript) []transcriptResponse {
	transcripts := make([]transcriptResponse, 0, len(list))
	for _, t := range list {
		transcripts = append(transcripts, convertTranscript(t))
	}
	return transcripts
}

type transcriptSyncResponse struct {
	SyncedCount  int                  `json:"syncedCount"`
	SkippedCount int                  `json:"skippedCount"`
	ErrorCount   int                  `json:"errorCount"`
	Transcripts  []transcriptResponse `json:"transcripts"`
}

// SyncTranscripts runs one transcript sync pass against the document source.
func (s *APIV1Service) SyncTranscripts(c echo.Context) error {
	result, err := s.TranscriptService.Sync(c.Request().Context(), s.userID(c))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, transcriptSyncResponse{
		SyncedCount:  result.SyncedCount,
		SkippedCount: result.SkippedCount,
		ErrorCount:   result.ErrorCount,
		Transcripts:  convertTranscripts(result.Transcripts),
	})
}

// ListTranscripts returns the user's transcripts, newest meeting date first.
func (s *APIV1Service) ListTranscripts(c echo.Context) error {
	transcripts, err := s.TranscriptService.List(c.Request().Context(), s.userID(c))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, convertTranscripts(transcripts))
}

// ListPendingTranscripts returns the transcripts whose meeting link still
// needs manual confirmation.
func (s *APIV1Service) ListPendingTranscripts(c echo.Context) error {
	transcripts, err := s.TranscriptService.ListPending(c.Request().Context(), s.userID(c))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, convertTranscripts(transcripts))
}

type linkTranscriptRequest struct {
	MeetingID int32 `json:"meetingId"`
}

// LinkTranscript re-links a transcript to the given meeting with full
// confidence.
func (s *APIV1Service) LinkTranscript(c echo.Context) error {
	transcriptID, err := pathID(c)
	if err != nil {
		return replyError(c, err)
	}
	request := &linkTranscriptRequest{}
	if err := c.Bind(request); err != nil || request.MeetingID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "INVALID_ARGUMENT",
			Message: "meetingId is required",
		})
	}

	transcript, err := s.TranscriptService.Link(c.Request().Context(), transcriptID, request.MeetingID, s.userID(c))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, convertTranscript(transcript))
}
