package store

import "time"

// Agenda is a generated agenda artifact for an agent.
type Agenda struct {
	ID        int32
	UID       string
	AgentID   int32
	CreatorID int32
	CreatedTs int64

	// Content is the generated agenda markdown.
	Content string
	// SourceKnowledgeID references the knowledge record the agenda was
	// generated from, when one contributed.
	SourceKnowledgeID *int32
	GeneratedTs       int64
}

// GeneratedAt returns the generation timestamp as time.Time.
func (a *Agenda) GeneratedAt() time.Time {
	return time.Unix(a.GeneratedTs, 0).UTC()
}

// FindAgenda is the find condition for agendas.
// Results are ordered by generated timestamp descending.
type FindAgenda struct {
	ID        *int32
	UID       *string
	AgentID   *int32
	CreatorID *int32

	Limit *int
}

// DeleteAgenda is the delete request for an agenda.
type DeleteAgenda struct {
	ID int32
}
