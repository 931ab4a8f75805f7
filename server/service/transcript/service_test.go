package transcript

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/agendapilot/agendapilot/plugin/docsource"
	apperrors "github.com/agendapilot/agendapilot/server/internal/errors"
	"github.com/agendapilot/agendapilot/store"
)

type mockStore struct {
	meetings    []*store.RecurringMeeting
	transcripts []*store.MeetingTranscript
	nextID      int32
}

func newMockStore() *mockStore {
	return &mockStore{nextID: 1}
}

func (m *mockStore) ListRecurringMeetings(_ context.Context, find *store.FindRecurringMeeting) ([]*store.RecurringMeeting, error) {
	list := []*store.RecurringMeeting{}
	for _, meeting := range m.meetings {
		if find.ID != nil && meeting.ID != *find.ID {
			continue
		}
		if find.CreatorID != nil && meeting.CreatorID != *find.CreatorID {
			continue
		}
		list = append(list, meeting)
	}
	return list, nil
}

func (m *mockStore) GetRecurringMeeting(ctx context.Context, find *store.FindRecurringMeeting) (*store.RecurringMeeting, error) {
	list, err := m.ListRecurringMeetings(ctx, find)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (m *mockStore) CreateMeetingTranscript(_ context.Context, create *store.MeetingTranscript) (*store.MeetingTranscript, error) {
	create.ID = m.nextID
	m.nextID++
	m.transcripts = append(m.transcripts, create)
	return create, nil
}

func (m *mockStore) ListMeetingTranscripts(_ context.Context, find *store.FindMeetingTranscript) ([]*store.MeetingTranscript, error) {
	list := []*store.MeetingTranscript{}
	for _, transcript := range m.transcripts {
		if find.ID != nil && transcript.ID != *find.ID {
			continue
		}
		if find.CreatorID != nil && transcript.CreatorID != *find.CreatorID {
			continue
		}
		if find.ExternalDocID != nil && transcript.ExternalDocID != *find.ExternalDocID {
			continue
		}
		if find.NeedsConfirmation != nil && transcript.NeedsConfirmation() != *find.NeedsConfirmation {
			continue
		}
		list = append(list, transcript)
	}
	return list, nil
}

func (m *mockStore) GetMeetingTranscript(ctx context.Context, find *store.FindMeetingTranscript) (*store.MeetingTranscript, error) {
	list, err := m.ListMeetingTranscripts(ctx, find)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (m *mockStore) UpdateMeetingTranscript(_ context.Context, update *store.UpdateMeetingTranscript) error {
	for _, transcript := range m.transcripts {
		if transcript.ID != update.ID {
			continue
		}
		if update.MeetingID != nil {
			transcript.MeetingID = *update.MeetingID
		}
		if update.MatchConfidence != nil {
			transcript.MatchConfidence = *update.MatchConfidence
		}
		return nil
	}
	return nil
}

type mockSource struct {
	documents []docsource.Document
	texts     map[string]string
	fetchErr  error
}

func (s *mockSource) List(_ context.Context, limit int) ([]docsource.Document, error) {
	if limit > 0 && len(s.documents) > limit {
		return s.documents[:limit], nil
	}
	return s.documents, nil
}

func (s *mockSource) FetchText(_ context.Context, externalID string) (string, error) {
	if s.fetchErr != nil {
		return "", s.fetchErr
	}
	return s.texts[externalID], nil
}

func testMeeting(id int32, title string, when time.Time) *store.RecurringMeeting {
	return &store.RecurringMeeting{
		ID:        id,
		CreatorID: 1,
		Title:     title,
		Attendees: []store.Attendee{
			{Email: "alice@example.com"},
			{Email: "bob@example.com"},
		},
		NextOccurrenceTs: when.Unix(),
	}
}

func TestSync(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	rawText := "alice (10:00)\nstatus update\n\nbob (10:01)\nack\n"

	t.Run("dedup skips known documents", func(t *testing.T) {
		mock := newMockStore()
		mock.meetings = append(mock.meetings, testMeeting(1, "Weekly Sync", now))
		mock.transcripts = append(mock.transcripts, &store.MeetingTranscript{
			ID: 99, CreatorID: 1, MeetingID: 1, ExternalDocID: "known.txt",
		})
		source := &mockSource{
			documents: []docsource.Document{
				{ExternalID: "new.txt", Name: "Weekly Sync", CreatedAt: now},
				{ExternalID: "known.txt", Name: "Weekly Sync", CreatedAt: now},
			},
			texts: map[string]string{"new.txt": rawText},
		}

		result, err := NewService(mock, source).Sync(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, 1, result.SyncedCount)
		require.Equal(t, 1, result.SkippedCount)
		require.Equal(t, 0, result.ErrorCount)
		require.Len(t, result.Transcripts, 1)
		require.Equal(t, "new.txt", result.Transcripts[0].ExternalDocID)
	})

	t.Run("no meetings means error count, never an unlinked transcript", func(t *testing.T) {
		mock := newMockStore()
		source := &mockSource{
			documents: []docsource.Document{{ExternalID: "doc.txt", Name: "Anything", CreatedAt: now}},
			texts:     map[string]string{"doc.txt": rawText},
		}

		result, err := NewService(mock, source).Sync(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, 0, result.SyncedCount)
		require.Equal(t, 1, result.ErrorCount)
		require.Empty(t, mock.transcripts)
	})

	t.Run("fetch failure is tolerated per document", func(t *testing.T) {
		mock := newMockStore()
		mock.meetings = append(mock.meetings, testMeeting(1, "Weekly Sync", now))
		source := &mockSource{
			documents: []docsource.Document{{ExternalID: "doc.txt", Name: "Weekly Sync", CreatedAt: now}},
			fetchErr:  errors.New("remote unavailable"),
		}

		result, err := NewService(mock, source).Sync(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, 1, result.ErrorCount)
		require.Equal(t, 0, result.SyncedCount)
	})

	t.Run("empty text counts as an error", func(t *testing.T) {
		mock := newMockStore()
		mock.meetings = append(mock.meetings, testMeeting(1, "Weekly Sync", now))
		source := &mockSource{
			documents: []docsource.Document{{ExternalID: "doc.txt", Name: "Weekly Sync", CreatedAt: now}},
			texts:     map[string]string{"doc.txt": "   \n"},
		}

		result, err := NewService(mock, source).Sync(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, 1, result.ErrorCount)
	})

	t.Run("picks the strictly best meeting", func(t *testing.T) {
		mock := newMockStore()
		mock.meetings = append(mock.meetings,
			testMeeting(1, "Unrelated Review", now.Add(-100*time.Hour)),
			testMeeting(2, "Weekly Sync", now),
		)
		source := &mockSource{
			documents: []docsource.Document{{ExternalID: "doc.txt", Name: "Weekly Sync", CreatedAt: now}},
			texts:     map[string]string{"doc.txt": rawText},
		}

		result, err := NewService(mock, source).Sync(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, 1, result.SyncedCount)
		require.Equal(t, int32(2), result.Transcripts[0].MeetingID)
	})

	t.Run("all-zero scores leave the document unmatched", func(t *testing.T) {
		mock := newMockStore()
		mock.meetings = append(mock.meetings, testMeeting(1, "Weekly Sync", now.Add(-100*time.Hour)))
		source := &mockSource{
			documents: []docsource.Document{{ExternalID: "doc.txt", Name: "zzzz", CreatedAt: now}},
			texts:     map[string]string{"doc.txt": "carol (10:00)\nhello\n"},
		}

		result, err := NewService(mock, source).Sync(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, 0, result.SyncedCount)
		require.Equal(t, 1, result.ErrorCount)
		require.Empty(t, mock.transcripts)
	})

	t.Run("equal top scores keep the first-seen meeting", func(t *testing.T) {
		mock := newMockStore()
		mock.meetings = append(mock.meetings,
			testMeeting(1, "Weekly Sync", now),
			testMeeting(2, "Weekly Sync", now),
		)
		source := &mockSource{
			documents: []docsource.Document{{ExternalID: "doc.txt", Name: "Weekly Sync", CreatedAt: now}},
			texts:     map[string]string{"doc.txt": rawText},
		}

		result, err := NewService(mock, source).Sync(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, 1, result.SyncedCount)
		require.Equal(t, int32(1), result.Transcripts[0].MeetingID)
	})

	t.Run("high confidence transcripts auto-link", func(t *testing.T) {
		mock := newMockStore()
		mock.meetings = append(mock.meetings, testMeeting(1, "Weekly Sync", now))
		source := &mockSource{
			documents: []docsource.Document{{ExternalID: "doc.txt", Name: "Weekly Sync", CreatedAt: now}},
			texts:     map[string]string{"doc.txt": rawText},
		}

		result, err := NewService(mock, source).Sync(ctx, 1)
		require.NoError(t, err)
		require.Len(t, result.Transcripts, 1)
		require.True(t, result.Transcripts[0].AutoLinked())
	})
}

func TestLink(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	setup := func() (*Service, *mockStore) {
		mock := newMockStore()
		mock.meetings = append(mock.meetings,
			testMeeting(1, "Weekly Sync", now),
			testMeeting(2, "Monthly Review", now),
		)
		mock.transcripts = append(mock.transcripts, &store.MeetingTranscript{
			ID: 10, CreatorID: 1, MeetingID: 1, ExternalDocID: "doc.txt", MatchConfidence: 0.42,
		})
		return NewService(mock, &mockSource{}), mock
	}

	t.Run("re-link forces confidence to 1.0", func(t *testing.T) {
		service, mock := setup()
		transcript, err := service.Link(ctx, 10, 2, 1)
		require.NoError(t, err)
		require.Equal(t, int32(2), transcript.MeetingID)
		require.Equal(t, 1.0, transcript.MatchConfidence)
		require.Equal(t, 1.0, mock.transcripts[0].MatchConfidence)
	})

	t.Run("missing transcript is not found", func(t *testing.T) {
		service, _ := setup()
		_, err := service.Link(ctx, 999, 2, 1)
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
	})

	t.Run("foreign meeting is not found", func(t *testing.T) {
		service, _ := setup()
		_, err := service.Link(ctx, 10, 2, 7)
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
	})
}

func TestListPending(t *testing.T) {
	ctx := context.Background()
	mock := newMockStore()
	mock.transcripts = append(mock.transcripts,
		&store.MeetingTranscript{ID: 1, CreatorID: 1, MatchConfidence: 0.95},
		&store.MeetingTranscript{ID: 2, CreatorID: 1, MatchConfidence: 0.4},
		&store.MeetingTranscript{ID: 3, CreatorID: 2, MatchConfidence: 0.1},
	)

	pending, err := NewService(mock, &mockSource{}).ListPending(ctx, 1)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, int32(2), pending[0].ID)
}
