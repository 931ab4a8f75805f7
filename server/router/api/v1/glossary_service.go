package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/agendapilot/agendapilot/server/internal/errors"
	"github.com/agendapilot/agendapilot/store"
)

type glossaryEntryResponse struct {
	ID            int32  `json:"id"`
	Term          string `json:"term"`
	CanonicalName string `json:"canonicalName"`
	Description   string `json:"description,omitempty"`
	CreatedTs     int64  `json:"createdTs"`
}

func convertGlossaryEntry(entry *store.GlossaryEntry) glossaryEntryResponse {
	return glossaryEntryResponse{
		ID:            entry.ID,
		Term:          entry.Term,
		CanonicalName: entry.CanonicalName,
		Description:   entry.Description,
		CreatedTs:     entry.CreatedTs,
	}
}

type createGlossaryEntryRequest struct {
	Term          string `json:"term"`
	CanonicalName string `json:"canonicalName"`
	Description   string `json:"description"`
}

// CreateGlossaryEntry adds a term to the user's glossary.
func (s *APIV1Service) CreateGlossaryEntry(c echo.Context) error {
	request := &createGlossaryEntryRequest{}
	if err := c.Bind(request); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "INVALID_ARGUMENT",
			Message: "malformed request body",
		})
	}
	request.Term = strings.TrimSpace(request.Term)
	request.CanonicalName = strings.TrimSpace(request.CanonicalName)
	if request.Term == "" || request.CanonicalName == "" {
		return replyError(c, apperrors.InvalidArgument("term and canonicalName must not be empty"))
	}

	created, err := s.Store.CreateGlossaryEntry(c.Request().Context(), &store.GlossaryEntry{
		CreatorID:     s.userID(c),
		Term:          request.Term,
		CanonicalName: request.CanonicalName,
		Description:   request.Description,
	})
	if err != nil {
		return replyError(c, apperrors.Internal("failed to create glossary entry", err))
	}
	return c.JSON(http.StatusCreated, convertGlossaryEntry(created))
}

// ListGlossaryEntries returns the user's glossary, sorted by term.
func (s *APIV1Service) ListGlossaryEntries(c echo.Context) error {
	userID := s.userID(c)
	entries, err := s.Store.ListGlossaryEntries(c.Request().Context(), &store.FindGlossaryEntry{CreatorID: &userID})
	if err != nil {
		return replyError(c, apperrors.Internal("failed to list glossary entries", err))
	}
	list := make([]glossaryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		list = append(list, convertGlossaryEntry(entry))
	}
	return c.JSON(http.StatusOK, list)
}

// DeleteGlossaryEntry removes one glossary entry owned by the user.
func (s *APIV1Service) DeleteGlossaryEntry(c echo.Context) error {
	entryID, err := pathID(c)
	if err != nil {
		return replyError(c, err)
	}

	userID := s.userID(c)
	entries, err := s.Store.ListGlossaryEntries(c.Request().Context(), &store.FindGlossaryEntry{
		ID:        &entryID,
		CreatorID: &userID,
	})
	if err != nil {
		return replyError(c, apperrors.Internal("failed to find glossary entry", err))
	}
	if len(entries) == 0 {
		return replyError(c, apperrors.NotFoundf("glossary entry %d not found", entryID))
	}

	if err := s.Store.DeleteGlossaryEntry(c.Request().Context(), &store.DeleteGlossaryEntry{ID: entryID}); err != nil {
		return replyError(c, apperrors.Internal("failed to delete glossary entry", err))
	}
	return c.NoContent(http.StatusNoContent)
}
