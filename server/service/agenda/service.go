// Package agenda aggregates cross-source context for an agent and turns it
// into a generated meeting agenda. Source failures degrade, generation
// timeouts do not.
package agenda

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/agendapilot/agendapilot/plugin/ai"
	"github.com/agendapilot/agendapilot/plugin/ai/timeout"
	"github.com/agendapilot/agendapilot/plugin/chat"
	apperrors "github.com/agendapilot/agendapilot/server/internal/errors"
	"github.com/agendapilot/agendapilot/server/internal/observability"
	"github.com/agendapilot/agendapilot/store"
)

// transcriptFetchConcurrency bounds the per-meeting transcript fan-out.
const transcriptFetchConcurrency = 4

// GenerateResult is the structured outcome of one agenda generation. It is
// returned even when optional sources failed; only NotFound and timeout are
// hard failures.
type GenerateResult struct {
	Agenda *store.Agenda

	HasKnowledge       bool
	HasTranscripts     bool
	TranscriptCount    int
	HasChatMessages    bool
	ChatMessageCount   int
	GlossaryEntryCount int
	// ChatWarning is set when chat history could not be fetched.
	ChatWarning string
}

// Service implements agenda generation.
type Service struct {
	store     Store
	chat      chat.Client
	generator ai.Generator
}

// NewService creates the agenda service. chatClient may be nil when no chat
// integration is configured.
func NewService(store Store, chatClient chat.Client, generator ai.Generator) *Service {
	return &Service{
		store:     store,
		chat:      chatClient,
		generator: generator,
	}
}

// Generate builds the context bundle for the agent and produces a new
// agenda artifact.
func (s *Service) Generate(ctx context.Context, userID, agentID int32) (*GenerateResult, error) {
	rc := observability.NewRequestContext(slog.Default(), "agenda_generate", userID)
	now := time.Now().UTC()

	agent, err := s.store.GetAgent(ctx, &store.FindAgent{ID: &agentID, CreatorID: &userID})
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, apperrors.NotFoundf("agent %d not found", agentID)
	}

	knowledge, err := s.store.GetLatestKnowledge(ctx, agent.ID)
	if err != nil {
		rc.Warn("failed to load latest knowledge, continuing without it")
		knowledge = nil
	}

	meetings, err := s.store.ListRecurringMeetings(ctx, &store.FindRecurringMeeting{AgentID: &agent.ID})
	if err != nil {
		return nil, apperrors.Internal("failed to list linked meetings", err)
	}

	transcripts := s.collectTranscripts(ctx, rc, meetings, agent.TranscriptCount)

	glossary, err := s.store.ListGlossaryEntries(ctx, &store.FindGlossaryEntry{CreatorID: &userID})
	if err != nil {
		rc.Warn("failed to load glossary, continuing without it")
		glossary = nil
	}

	messages, chatWarning := s.fetchChatHistory(ctx, rc, agent, knowledge, transcripts, now)

	prompt := buildPrompt(agent, knowledge, transcripts, messages, glossary)

	genCtx, cancel := context.WithTimeout(ctx, timeout.GenerationTimeout)
	defer cancel()
	content, err := s.generator.Generate(genCtx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || genCtx.Err() == context.DeadlineExceeded {
			rc.Error("agenda generation timed out", err)
			return nil, apperrors.GenerationTimeout(err)
		}
		rc.Error("agenda generation failed", err)
		return nil, apperrors.Wrap(err, apperrors.ErrCodeLLMUnavailable, "agenda generation failed")
	}

	create := &store.Agenda{
		UID:         shortuuid.New(),
		AgentID:     agent.ID,
		CreatorID:   userID,
		Content:     content,
		GeneratedTs: now.Unix(),
	}
	if knowledge != nil {
		create.SourceKnowledgeID = &knowledge.ID
	}
	persisted, err := s.store.CreateAgenda(ctx, create)
	if err != nil {
		return nil, apperrors.Internal("failed to persist agenda", err)
	}

	rc.Info("agenda generated", slog.Int64(observability.LogFieldDuration, rc.DurationMs()))
	return &GenerateResult{
		Agenda:             persisted,
		HasKnowledge:       knowledge != nil,
		HasTranscripts:     len(transcripts) > 0,
		TranscriptCount:    len(transcripts),
		HasChatMessages:    len(messages) > 0,
		ChatMessageCount:   len(messages),
		GlossaryEntryCount: len(glossary),
		ChatWarning:        chatWarning,
	}, nil
}

// collectTranscripts fetches up to limit most-recent transcripts per linked
// meeting, annotated with the meeting title. One meeting's failure is
// skipped, never fatal to its siblings. The merged list is sorted by
// meeting date descending.
func (s *Service) collectTranscripts(ctx context.Context, rc *observability.RequestContext, meetings []*store.RecurringMeeting, limit int32) []AnnotatedTranscript {
	if limit <= 0 || len(meetings) == 0 {
		return nil
	}

	var mu sync.Mutex
	collected := []AnnotatedTranscript{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(transcriptFetchConcurrency)
	for _, meeting := range meetings {
		g.Go(func() error {
			fetchLimit := int(limit)
			list, err := s.store.ListMeetingTranscripts(gctx, &store.FindMeetingTranscript{
				MeetingID: &meeting.ID,
				Limit:     &fetchLimit,
			})
			if err != nil {
				rc.Warn("failed to fetch transcripts for meeting, skipping")
				return nil
			}
			mu.Lock()
			for _, transcript := range list {
				collected = append(collected, AnnotatedTranscript{
					MeetingTitle: meeting.Title,
					Transcript:   transcript,
				})
			}
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; failures are isolated above.
	_ = g.Wait()

	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].Transcript.MeetingDateTs > collected[j].Transcript.MeetingDateTs
	})
	return collected
}

// fetchChatHistory fetches channel messages from the anchored start time.
// All chat failures degrade to a warning and an empty message list.
func (s *Service) fetchChatHistory(ctx context.Context, rc *observability.RequestContext, agent *store.Agent, knowledge *store.Knowledge, transcripts []AnnotatedTranscript, now time.Time) ([]chat.Message, string) {
	if s.chat == nil || agent.ChatChannelID == "" {
		return nil, ""
	}

	oldest, ok := firstAnchor(
		transcriptAnchor(transcripts),
		knowledgeAnchor(knowledge),
		windowAnchor(now, agent.ChatWindowDays),
	)
	if !ok {
		return nil, ""
	}

	messages, err := s.chat.FetchMessages(ctx, agent.ChatChannelID, oldest)
	if err != nil {
		rc.Warn("chat history fetch failed")
		switch {
		case errors.Is(err, chat.ErrChannelNotJoined):
			return nil, "chat history unavailable: the integration has not joined the channel"
		case errors.Is(err, chat.ErrRateLimited):
			return nil, "chat history unavailable: the chat provider rate limited the request"
		default:
			return nil, "chat history unavailable: " + err.Error()
		}
	}
	return messages, ""
}

// List returns the agent's generated agendas, newest first.
func (s *Service) List(ctx context.Context, userID, agentID int32) ([]*store.Agenda, error) {
	return s.store.ListAgendas(ctx, &store.FindAgenda{
		AgentID:   &agentID,
		CreatorID: &userID,
	})
}
