package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/agendapilot/agendapilot/store"
)

type agendaResponse struct {
	ID                int32  `json:"id"`
	UID               string `json:"uid"`
	AgentID           int32  `json:"agentId"`
	Content           string `json:"content"`
	SourceKnowledgeID *int32 `json:"sourceKnowledgeId,omitempty"`
	GeneratedTs       int64  `json:"generatedTs"`
	CreatedTs         int64  `json:"createdTs"`
}

func convertAgenda(a *store.Agenda) agendaResponse {
	return agendaResponse{
		ID:                a.ID,
		UID:               a.UID,
		AgentID:           a.AgentID,
		Content:           a.Content,
		SourceKnowledgeID: a.SourceKnowledgeID,
		GeneratedTs:       a.GeneratedTs,
		CreatedTs:         a.CreatedTs,
	}
}

type generateAgendaRequest struct {
	AgentID int32 `json:"agentId"`
}

type generateAgendaResponse struct {
	Agenda agendaResponse `json:"agenda"`

	HasKnowledge       bool   `json:"hasKnowledge"`
	HasTranscripts     bool   `json:"hasTranscripts"`
	TranscriptCount    int    `json:"transcriptCount"`
	HasChatMessages    bool   `json:"hasChatMessages"`
	ChatMessageCount   int    `json:"chatMessageCount"`
	GlossaryEntryCount int    `json:"glossaryEntryCount"`
	ChatWarning        string `json:"chatWarning,omitempty"`
}

// GenerateAgenda aggregates the agent's context and generates a new agenda.
func (s *APIV1Service) GenerateAgenda(c echo.Context) error {
	request := &generateAgendaRequest{}
	if err := c.Bind(request); err != nil || request.AgentID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "INVALID_ARGUMENT",
			Message: "agentId is required",
		})
	}

	result, err := s.AgendaService.Generate(c.Request().Context(), s.userID(c), request.AgentID)
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, generateAgendaResponse{
		Agenda:             convertAgenda(result.Agenda),
		HasKnowledge:       result.HasKnowledge,
		HasTranscripts:     result.HasTranscripts,
		TranscriptCount:    result.TranscriptCount,
		HasChatMessages:    result.HasChatMessages,
		ChatMessageCount:   result.ChatMessageCount,
		GlossaryEntryCount: result.GlossaryEntryCount,
		ChatWarning:        result.ChatWarning,
	})
}

// ListAgendas returns the generated agendas for an agent, newest first.
func (s *APIV1Service) ListAgendas(c echo.Context) error {
	agentID, err := strconv.ParseInt(c.QueryParam("agentId"), 10, 32)
	if err != nil || agentID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "INVALID_ARGUMENT",
			Message: "agentId query parameter is required",
		})
	}

	agendas, err := s.AgendaService.List(c.Request().Context(), s.userID(c), int32(agentID))
	if err != nil {
		return replyError(c, err)
	}
	list := make([]agendaResponse, 0, len(agendas))
	for _, a := range agendas {
		list = append(list, convertAgenda(a))
	}
	return c.JSON(http.StatusOK, list)
}
