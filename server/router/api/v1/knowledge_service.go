package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agendapilot/agendapilot/store"
)

type knowledgeResponse struct {
	ID             int32  `json:"id"`
	UID            string `json:"uid"`
	AgentID        int32  `json:"agentId"`
	OriginalText   string `json:"originalText"`
	NormalizedText string `json:"normalizedText"`
	MeetingDateTs  int64  `json:"meetingDateTs"`
	CreatedTs      int64  `json:"createdTs"`
}

func convertKnowledge(k *store.Knowledge) knowledgeResponse {
	return knowledgeResponse{
		ID:             k.ID,
		UID:            k.UID,
		AgentID:        k.AgentID,
		OriginalText:   k.OriginalText,
		NormalizedText: k.NormalizedText,
		MeetingDateTs:  k.MeetingDateTs,
		CreatedTs:      k.CreatedTs,
	}
}

type uploadKnowledgeRequest struct {
	Text string `json:"text"`
}

type uploadKnowledgeResponse struct {
	Knowledge        knowledgeResponse `json:"knowledge"`
	ReplacementCount int               `json:"replacementCount"`
	Warning          string            `json:"warning,omitempty"`
}

// UploadKnowledge stores meeting notes for the agent, normalized against
// the user's glossary.
func (s *APIV1Service) UploadKnowledge(c echo.Context) error {
	agentID, err := pathID(c)
	if err != nil {
		return replyError(c, err)
	}
	request := &uploadKnowledgeRequest{}
	if err := c.Bind(request); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "INVALID_ARGUMENT",
			Message: "malformed request body",
		})
	}

	result, err := s.KnowledgeService.Upload(c.Request().Context(), s.userID(c), agentID, request.Text)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusCreated, uploadKnowledgeResponse{
		Knowledge:        convertKnowledge(result.Knowledge),
		ReplacementCount: result.ReplacementCount,
		Warning:          result.Warning,
	})
}

// ListKnowledge returns the agent's knowledge records, newest first.
func (s *APIV1Service) ListKnowledge(c echo.Context) error {
	agentID, err := pathID(c)
	if err != nil {
		return replyError(c, err)
	}
	list, err := s.KnowledgeService.List(c.Request().Context(), s.userID(c), agentID)
	if err != nil {
		return replyError(c, err)
	}
	records := make([]knowledgeResponse, 0, len(list))
	for _, k := range list {
		records = append(records, convertKnowledge(k))
	}
	return c.JSON(http.StatusOK, records)
}

// DeleteKnowledge removes one knowledge record owned by the user.
func (s *APIV1Service) DeleteKnowledge(c echo.Context) error {
	knowledgeID, err := pathID(c)
	if err != nil {
		return replyError(c, err)
	}
	if err := s.KnowledgeService.Delete(c.Request().Context(), knowledgeID, s.userID(c)); err != nil {
		return replyError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
