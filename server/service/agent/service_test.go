package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/agendapilot/agendapilot/server/internal/errors"
	"github.com/agendapilot/agendapilot/store"
)

type mockStore struct {
	agents []*store.Agent
	nextID int32
}

func newMockStore() *mockStore {
	return &mockStore{nextID: 1}
}

func (m *mockStore) CreateAgent(_ context.Context, create *store.Agent) (*store.Agent, error) {
	create.ID = m.nextID
	m.nextID++
	m.agents = append(m.agents, create)
	return create, nil
}

func (m *mockStore) ListAgents(_ context.Context, find *store.FindAgent) ([]*store.Agent, error) {
	list := []*store.Agent{}
	for _, agent := range m.agents {
		if find.ID != nil && agent.ID != *find.ID {
			continue
		}
		if find.CreatorID != nil && agent.CreatorID != *find.CreatorID {
			continue
		}
		list = append(list, agent)
	}
	return list, nil
}

func (m *mockStore) GetAgent(ctx context.Context, find *store.FindAgent) (*store.Agent, error) {
	list, err := m.ListAgents(ctx, find)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (m *mockStore) UpdateAgent(_ context.Context, update *store.UpdateAgent) error {
	for _, agent := range m.agents {
		if agent.ID != update.ID {
			continue
		}
		if update.Name != nil {
			agent.Name = *update.Name
		}
		if update.Description != nil {
			agent.Description = *update.Description
		}
		if update.ChatChannelID != nil {
			agent.ChatChannelID = *update.ChatChannelID
		}
		if update.TranscriptCount != nil {
			agent.TranscriptCount = *update.TranscriptCount
		}
		if update.ChatWindowDays != nil {
			agent.ChatWindowDays = *update.ChatWindowDays
		}
		return nil
	}
	return nil
}

func (m *mockStore) DeleteAgent(_ context.Context, delete *store.DeleteAgent) error {
	for i, agent := range m.agents {
		if agent.ID == delete.ID {
			m.agents = append(m.agents[:i], m.agents[i+1:]...)
			return nil
		}
	}
	return nil
}

func int32Ptr(v int32) *int32 { return &v }

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults applied", func(t *testing.T) {
		service := NewService(newMockStore())
		agent, err := service.Create(ctx, 1, &CreateRequest{Name: "Product"})
		require.NoError(t, err)
		require.Equal(t, int32(store.DefaultTranscriptCount), agent.TranscriptCount)
		require.Equal(t, int32(store.DefaultChatWindowDays), agent.ChatWindowDays)
		require.NotEmpty(t, agent.UID)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		service := NewService(newMockStore())
		_, err := service.Create(ctx, 1, &CreateRequest{})
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument))
	})

	t.Run("out-of-range settings rejected", func(t *testing.T) {
		service := NewService(newMockStore())
		_, err := service.Create(ctx, 1, &CreateRequest{Name: "P", TranscriptCount: int32Ptr(11)})
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument))

		_, err = service.Create(ctx, 1, &CreateRequest{Name: "P", ChatWindowDays: int32Ptr(0)})
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument))

		_, err = service.Create(ctx, 1, &CreateRequest{Name: "P", ChatWindowDays: int32Ptr(31)})
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument))
	})

	t.Run("boundary settings accepted", func(t *testing.T) {
		service := NewService(newMockStore())
		agent, err := service.Create(ctx, 1, &CreateRequest{
			Name:            "P",
			TranscriptCount: int32Ptr(0),
			ChatWindowDays:  int32Ptr(30),
		})
		require.NoError(t, err)
		require.Equal(t, int32(0), agent.TranscriptCount)
		require.Equal(t, int32(30), agent.ChatWindowDays)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	setup := func() (*Service, *store.Agent) {
		service := NewService(newMockStore())
		agent, err := service.Create(ctx, 1, &CreateRequest{Name: "Product"})
		require.NoError(t, err)
		return service, agent
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		service, agent := setup()
		updated, err := service.Update(ctx, agent.ID, 1, &UpdateRequest{TranscriptCount: int32Ptr(5)})
		require.NoError(t, err)
		require.Equal(t, int32(5), updated.TranscriptCount)
		require.Equal(t, "Product", updated.Name)
		require.Equal(t, int32(store.DefaultChatWindowDays), updated.ChatWindowDays)
	})

	t.Run("invalid settings rejected", func(t *testing.T) {
		service, agent := setup()
		_, err := service.Update(ctx, agent.ID, 1, &UpdateRequest{TranscriptCount: int32Ptr(-1)})
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidArgument))
	})

	t.Run("foreign agent is not found", func(t *testing.T) {
		service, agent := setup()
		_, err := service.Update(ctx, agent.ID, 2, &UpdateRequest{})
		require.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	mock := newMockStore()
	service := NewService(mock)
	agent, err := service.Create(ctx, 1, &CreateRequest{Name: "Product"})
	require.NoError(t, err)

	require.True(t, apperrors.IsCode(service.Delete(ctx, agent.ID, 2), apperrors.ErrCodeNotFound))
	require.NoError(t, service.Delete(ctx, agent.ID, 1))
	require.Empty(t, mock.agents)
}
