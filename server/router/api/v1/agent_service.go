package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agendapilot/agendapilot/server/service/agent"
	"github.com/agendapilot/agendapilot/store"
)

type agentResponse struct {
	ID              int32  `json:"id"`
	UID             string `json:"uid"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	ChatChannelID   string `json:"chatChannelId,omitempty"`
	TranscriptCount int32  `json:"transcriptCount"`
	ChatWindowDays  int32  `json:"chatWindowDays"`
	CreatedTs       int64  `json:"createdTs"`
	UpdatedTs       int64  `json:"updatedTs"`
}

func convertAgent(a *store.Agent) agentResponse {
	return agentResponse{
		ID:              a.ID,
		UID:             a.UID,
		Name:            a.Name,
		Description:     a.Description,
		ChatChannelID:   a.ChatChannelID,
		TranscriptCount: a.TranscriptCount,
		ChatWindowDays:  a.ChatWindowDays,
		CreatedTs:       a.CreatedTs,
		UpdatedTs:       a.UpdatedTs,
	}
}

type createAgentRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	ChatChannelID   string `json:"chatChannelId"`
	TranscriptCount *int32 `json:"transcriptCount"`
	ChatWindowDays  *int32 `json:"chatWindowDays"`
}

// CreateAgent creates an agent for the user. Unset reference-window
// settings take the defaults.
func (s *APIV1Service) CreateAgent(c echo.Context) error {
	request := &createAgentRequest{}
	if err := c.Bind(request); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "INVALID_ARGUMENT",
			Message: "malformed request body",
		})
	}

	created, err := s.AgentService.Create(c.Request().Context(), s.userID(c), &agent.CreateRequest{
		Name:            request.Name,
		Description:     request.Description,
		ChatChannelID:   request.ChatChannelID,
		TranscriptCount: request.TranscriptCount,
		ChatWindowDays:  request.ChatWindowDays,
	})
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusCreated, convertAgent(created))
}

// ListAgents returns the user's agents.
func (s *APIV1Service) ListAgents(c echo.Context) error {
	agents, err := s.AgentService.List(c.Request().Context(), s.userID(c))
	if err != nil {
		return replyError(c, err)
	}
	list := make([]agentResponse, 0, len(agents))
	for _, a := range agents {
		list = append(list, convertAgent(a))
	}
	return c.JSON(http.StatusOK, list)
}

// GetAgent returns one agent owned by the user.
func (s *APIV1Service) GetAgent(c echo.Context) error {
	agentID, err := pathID(c)
	if err != nil {
		return replyError(c, err)
	}
	found, err := s.AgentService.Get(c.Request().Context(), agentID, s.userID(c))
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, convertAgent(found))
}

type updateAgentRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	ChatChannelID   *string `json:"chatChannelId"`
	TranscriptCount *int32  `json:"transcriptCount"`
	ChatWindowDays  *int32  `json:"chatWindowDays"`
}

// UpdateAgent applies a partial update to an agent, validating the merged
// reference-window settings.
func (s *APIV1Service) UpdateAgent(c echo.Context) error {
	agentID, err := pathID(c)
	if err != nil {
		return replyError(c, err)
	}
	request := &updateAgentRequest{}
	if err := c.Bind(request); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "INVALID_ARGUMENT",
			Message: "malformed request body",
		})
	}

	updated, err := s.AgentService.Update(c.Request().Context(), agentID, s.userID(c), &agent.UpdateRequest{
		Name:            request.Name,
		Description:     request.Description,
		ChatChannelID:   request.ChatChannelID,
		TranscriptCount: request.TranscriptCount,
		ChatWindowDays:  request.ChatWindowDays,
	})
	if err != nil {
		return replyError(c, err)
	}
	return c.JSON(http.StatusOK, convertAgent(updated))
}

// DeleteAgent removes an agent owned by the user.
func (s *APIV1Service) DeleteAgent(c echo.Context) error {
	agentID, err := pathID(c)
	if err != nil {
		return replyError(c, err)
	}
	if err := s.AgentService.Delete(c.Request().Context(), agentID, s.userID(c)); err != nil {
		return replyError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
