// Package knowledge stores meeting notes per agent, normalizing uploaded
// text against the owner's glossary.
package knowledge

import (
	"context"
	"log/slog"
	"time"

	"github.com/lithammer/shortuuid/v4"

	apperrors "github.com/agendapilot/agendapilot/server/internal/errors"
	"github.com/agendapilot/agendapilot/store"
)

// UploadResult is the outcome of one knowledge upload.
type UploadResult struct {
	Knowledge        *store.Knowledge
	ReplacementCount int
	// Warning carries a human-readable note when glossary normalization was
	// skipped. Normalization failures never fail the upload.
	Warning string
}

// Service implements knowledge uploads and queries.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Upload normalizes the text against the user's glossary and persists it as
// the agent's newest knowledge record, dated now.
func (s *Service) Upload(ctx context.Context, userID, agentID int32, text string) (*UploadResult, error) {
	if text == "" {
		return nil, apperrors.InvalidArgument("knowledge text must not be empty")
	}

	agent, err := s.store.GetAgent(ctx, &store.FindAgent{ID: &agentID, CreatorID: &userID})
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, apperrors.NotFoundf("agent %d not found", agentID)
	}

	result := &UploadResult{}
	normalized := text
	entries, err := s.store.ListGlossaryEntries(ctx, &store.FindGlossaryEntry{CreatorID: &userID})
	if err != nil {
		slog.Warn("glossary lookup failed, storing text as-is",
			slog.Int("agent_id", int(agentID)))
		result.Warning = "glossary normalization skipped: could not load glossary"
	} else {
		normalized, result.ReplacementCount = Normalize(text, entries)
	}

	created, err := s.store.CreateKnowledge(ctx, &store.Knowledge{
		UID:            shortuuid.New(),
		AgentID:        agent.ID,
		CreatorID:      userID,
		OriginalText:   text,
		NormalizedText: normalized,
		MeetingDateTs:  time.Now().Unix(),
	})
	if err != nil {
		return nil, apperrors.Internal("failed to create knowledge", err)
	}
	result.Knowledge = created
	return result, nil
}

// List returns the agent's knowledge records, newest meeting date first.
func (s *Service) List(ctx context.Context, userID, agentID int32) ([]*store.Knowledge, error) {
	return s.store.ListKnowledge(ctx, &store.FindKnowledge{
		AgentID:   &agentID,
		CreatorID: &userID,
	})
}

// Delete removes one knowledge record owned by the user.
func (s *Service) Delete(ctx context.Context, knowledgeID, userID int32) error {
	list, err := s.store.ListKnowledge(ctx, &store.FindKnowledge{ID: &knowledgeID, CreatorID: &userID})
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return apperrors.NotFoundf("knowledge %d not found", knowledgeID)
	}
	return s.store.DeleteKnowledge(ctx, &store.DeleteKnowledge{ID: knowledgeID})
}
