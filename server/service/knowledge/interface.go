package knowledge

import (
	"context"

	"github.com/agendapilot/agendapilot/store"
)

// Store defines the persistence operations the knowledge service needs.
type Store interface {
	GetAgent(ctx context.Context, find *store.FindAgent) (*store.Agent, error)
	CreateKnowledge(ctx context.Context, create *store.Knowledge) (*store.Knowledge, error)
	ListKnowledge(ctx context.Context, find *store.FindKnowledge) ([]*store.Knowledge, error)
	DeleteKnowledge(ctx context.Context, delete *store.DeleteKnowledge) error
	ListGlossaryEntries(ctx context.Context, find *store.FindGlossaryEntry) ([]*store.GlossaryEntry, error)
}
