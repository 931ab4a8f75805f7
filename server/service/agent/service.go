// Package agent manages agent profiles and their reference-window settings.
package agent

import (
	"context"

	"github.com/lithammer/shortuuid/v4"

	apperrors "github.com/agendapilot/agendapilot/server/internal/errors"
	"github.com/agendapilot/agendapilot/store"
)

// Store defines the persistence operations the agent service needs.
type Store interface {
	CreateAgent(ctx context.Context, create *store.Agent) (*store.Agent, error)
	ListAgents(ctx context.Context, find *store.FindAgent) ([]*store.Agent, error)
	GetAgent(ctx context.Context, find *store.FindAgent) (*store.Agent, error)
	UpdateAgent(ctx context.Context, update *store.UpdateAgent) error
	DeleteAgent(ctx context.Context, delete *store.DeleteAgent) error
}

// Service implements agent management.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateRequest carries the fields of a new agent. Unset reference-window
// settings fall back to the defaults.
type CreateRequest struct {
	Name            string
	Description     string
	ChatChannelID   string
	TranscriptCount *int32
	ChatWindowDays  *int32
}

func (s *Service) Create(ctx context.Context, userID int32, req *CreateRequest) (*store.Agent, error) {
	if req.Name == "" {
		return nil, apperrors.InvalidArgument("agent name must not be empty")
	}

	transcriptCount := int32(store.DefaultTranscriptCount)
	if req.TranscriptCount != nil {
		transcriptCount = *req.TranscriptCount
	}
	chatWindowDays := int32(store.DefaultChatWindowDays)
	if req.ChatWindowDays != nil {
		chatWindowDays = *req.ChatWindowDays
	}
	if err := validateSettings(transcriptCount, chatWindowDays); err != nil {
		return nil, err
	}

	return s.store.CreateAgent(ctx, &store.Agent{
		UID:             shortuuid.New(),
		CreatorID:       userID,
		Name:            req.Name,
		Description:     req.Description,
		ChatChannelID:   req.ChatChannelID,
		TranscriptCount: transcriptCount,
		ChatWindowDays:  chatWindowDays,
	})
}

func (s *Service) List(ctx context.Context, userID int32) ([]*store.Agent, error) {
	return s.store.ListAgents(ctx, &store.FindAgent{CreatorID: &userID})
}

func (s *Service) Get(ctx context.Context, agentID, userID int32) (*store.Agent, error) {
	agent, err := s.store.GetAgent(ctx, &store.FindAgent{ID: &agentID, CreatorID: &userID})
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, apperrors.NotFoundf("agent %d not found", agentID)
	}
	return agent, nil
}

// UpdateRequest carries a partial agent update. Nil fields are untouched.
type UpdateRequest struct {
	Name            *string
	Description     *string
	ChatChannelID   *string
	TranscriptCount *int32
	ChatWindowDays  *int32
}

func (s *Service) Update(ctx context.Context, agentID, userID int32, req *UpdateRequest) (*store.Agent, error) {
	agent, err := s.Get(ctx, agentID, userID)
	if err != nil {
		return nil, err
	}

	transcriptCount := agent.TranscriptCount
	if req.TranscriptCount != nil {
		transcriptCount = *req.TranscriptCount
	}
	chatWindowDays := agent.ChatWindowDays
	if req.ChatWindowDays != nil {
		chatWindowDays = *req.ChatWindowDays
	}
	if err := validateSettings(transcriptCount, chatWindowDays); err != nil {
		return nil, err
	}
	if req.Name != nil && *req.Name == "" {
		return nil, apperrors.InvalidArgument("agent name must not be empty")
	}

	if err := s.store.UpdateAgent(ctx, &store.UpdateAgent{
		ID:              agent.ID,
		Name:            req.Name,
		Description:     req.Description,
		ChatChannelID:   req.ChatChannelID,
		TranscriptCount: req.TranscriptCount,
		ChatWindowDays:  req.ChatWindowDays,
	}); err != nil {
		return nil, apperrors.Internal("failed to update agent", err)
	}
	return s.Get(ctx, agentID, userID)
}

func (s *Service) Delete(ctx context.Context, agentID, userID int32) error {
	agent, err := s.Get(ctx, agentID, userID)
	if err != nil {
		return err
	}
	return s.store.DeleteAgent(ctx, &store.DeleteAgent{ID: agent.ID})
}

func validateSettings(transcriptCount, chatWindowDays int32) error {
	if transcriptCount < store.MinTranscriptCount || transcriptCount > store.MaxTranscriptCount {
		return apperrors.InvalidArgument("transcript_count must be between 0 and 10")
	}
	if chatWindowDays < store.MinChatWindowDays || chatWindowDays > store.MaxChatWindowDays {
		return apperrors.InvalidArgument("chat_window_days must be between 1 and 30")
	}
	return nil
}
