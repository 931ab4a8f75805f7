// Package transcript reconciles an external document source against known
// recurring meetings, structuring raw transcripts and linking each one to
// its best-matching meeting.
package transcript

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lithammer/shortuuid/v4"

	"github.com/agendapilot/agendapilot/plugin/docsource"
	apperrors "github.com/agendapilot/agendapilot/server/internal/errors"
	"github.com/agendapilot/agendapilot/server/service/matching"
	"github.com/agendapilot/agendapilot/store"
)

// syncPageSize bounds one sync run.
const syncPageSize = 50

// SyncResult summarizes one sync run. Per-document failures are tallied,
// never raised; the loop is partial-failure tolerant.
type SyncResult struct {
	SyncedCount  int
	SkippedCount int
	ErrorCount   int
	Transcripts  []*store.MeetingTranscript
}

// Service implements the transcript sync pipeline and manual re-link.
type Service struct {
	store  Store
	source docsource.Source
}

func NewService(store Store, source docsource.Source) *Service {
	return &Service{
		store:  store,
		source: source,
	}
}

// Sync lists candidate documents and creates transcripts for the new ones.
// Meetings are loaded once per run. Each document is deduped by external
// doc id, fetched, parsed, and linked to the meeting with the strictly
// highest confidence; equal top scores keep the first-seen meeting. A
// transcript is never created without a meeting to link to.
func (s *Service) Sync(ctx context.Context, userID int32) (*SyncResult, error) {
	documents, err := s.source.List(ctx, syncPageSize)
	if err != nil {
		return nil, apperrors.TransientSource("failed to list documents", err)
	}

	meetings, err := s.store.ListRecurringMeetings(ctx, &store.FindRecurringMeeting{CreatorID: &userID})
	if err != nil {
		return nil, apperrors.Internal("failed to list recurring meetings", err)
	}

	result := &SyncResult{Transcripts: []*store.MeetingTranscript{}}
	for _, doc := range documents {
		docID := doc.ExternalID
		existing, err := s.store.GetMeetingTranscript(ctx, &store.FindMeetingTranscript{
			CreatorID:     &userID,
			ExternalDocID: &docID,
		})
		if err != nil {
			return nil, apperrors.Internal("failed to check for existing transcript", err)
		}
		if existing != nil {
			result.SkippedCount++
			continue
		}

		rawText, err := s.source.FetchText(ctx, doc.ExternalID)
		if err != nil || strings.TrimSpace(rawText) == "" {
			slog.Warn("failed to fetch document text",
				slog.String("document", doc.ExternalID))
			result.ErrorCount++
			continue
		}

		entries := Parse(rawText)
		speakers := ExtractSpeakers(entries)

		best := bestMatch(meetings, doc, speakers)
		if best.meeting == nil {
			result.ErrorCount++
			continue
		}

		created, err := s.store.CreateMeetingTranscript(ctx, &store.MeetingTranscript{
			UID:             shortuuid.New(),
			CreatorID:       userID,
			MeetingID:       best.meeting.ID,
			MeetingDateTs:   doc.CreatedAt.Unix(),
			ExternalDocID:   doc.ExternalID,
			RawText:         rawText,
			Entries:         entries,
			MatchConfidence: best.confidence,
		})
		if err != nil {
			return nil, apperrors.Internal("failed to create transcript", err)
		}
		result.Transcripts = append(result.Transcripts, created)
		result.SyncedCount++
	}

	slog.Info("transcript sync completed",
		slog.Int("user_id", int(userID)),
		slog.Int("synced", result.SyncedCount),
		slog.Int("skipped", result.SkippedCount),
		slog.Int("errors", result.ErrorCount))
	return result, nil
}

type candidate struct {
	meeting    *store.RecurringMeeting
	confidence float64
}

// bestMatch picks the meeting with the strictly highest confidence. The
// strict comparison against an initial score of zero makes ties resolve
// to the first-seen meeting and leaves a document that scores 0.0 against
// every meeting unmatched.
func bestMatch(meetings []*store.RecurringMeeting, doc docsource.Document, speakers []string) candidate {
	best := candidate{}
	for _, meeting := range meetings {
		confidence := matching.MatchConfidence(meeting, doc.Name, doc.CreatedAt, speakers)
		if confidence > best.confidence {
			best = candidate{meeting: meeting, confidence: confidence}
		}
	}
	return best
}

// Link re-links a transcript to a target meeting and forces the match
// confidence to 1.0. Both entities must exist and belong to the user.
func (s *Service) Link(ctx context.Context, transcriptID, meetingID, userID int32) (*store.MeetingTranscript, error) {
	transcript, err := s.store.GetMeetingTranscript(ctx, &store.FindMeetingTranscript{
		ID:        &transcriptID,
		CreatorID: &userID,
	})
	if err != nil {
		return nil, err
	}
	if transcript == nil {
		return nil, apperrors.NotFoundf("transcript %d not found", transcriptID)
	}

	meeting, err := s.store.GetRecurringMeeting(ctx, &store.FindRecurringMeeting{
		ID:        &meetingID,
		CreatorID: &userID,
	})
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, apperrors.NotFoundf("meeting %d not found", meetingID)
	}

	confidence := 1.0
	if err := s.store.UpdateMeetingTranscript(ctx, &store.UpdateMeetingTranscript{
		ID:              transcript.ID,
		MeetingID:       &meeting.ID,
		MatchConfidence: &confidence,
	}); err != nil {
		return nil, apperrors.Internal("failed to update transcript", err)
	}

	transcript.MeetingID = meeting.ID
	transcript.MatchConfidence = confidence
	return transcript, nil
}

// ListPending returns the user's transcripts whose link still needs manual
// confirmation.
func (s *Service) ListPending(ctx context.Context, userID int32) ([]*store.MeetingTranscript, error) {
	pending := true
	return s.store.ListMeetingTranscripts(ctx, &store.FindMeetingTranscript{
		CreatorID:         &userID,
		NeedsConfirmation: &pending,
	})
}

// List returns all of the user's transcripts, newest meeting date first.
func (s *Service) List(ctx context.Context, userID int32) ([]*store.MeetingTranscript, error) {
	return s.store.ListMeetingTranscripts(ctx, &store.FindMeetingTranscript{CreatorID: &userID})
}
