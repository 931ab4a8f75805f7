package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/agendapilot/agendapilot/store"
)

func (d *DB) CreateAgenda(ctx context.Context, create *store.Agenda) (*store.Agenda, error) {
	fields := []string{"uid", "agent_id", "creator_id", "content", "generated_ts"}
	args := []any{create.UID, create.AgentID, create.CreatorID, create.Content, create.GeneratedTs}

	if create.SourceKnowledgeID != nil {
		fields = append(fields, "source_knowledge_id")
		args = append(args, *create.SourceKnowledgeID)
	}

	stmt := `INSERT INTO agenda (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create agenda: %w", err)
	}

	return create, nil
}

func (d *DB) ListAgendas(ctx context.Context, find *store.FindAgenda) ([]*store.Agenda, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.AgentID; v != nil {
		where, args = append(where, "agent_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.CreatorID; v != nil {
		where, args = append(where, "creator_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT
			id, uid, agent_id, creator_id, created_ts,
			content, source_knowledge_id, generated_ts
		FROM agenda
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY generated_ts DESC`
	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query agendas: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Agenda, 0)
	for rows.Next() {
		var agenda store.Agenda
		var sourceKnowledgeID sql.NullInt32

		if err := rows.Scan(
			&agenda.ID,
			&agenda.UID,
			&agenda.AgentID,
			&agenda.CreatorID,
			&agenda.CreatedTs,
			&agenda.Content,
			&sourceKnowledgeID,
			&agenda.GeneratedTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan agenda: %w", err)
		}

		if sourceKnowledgeID.Valid {
			agenda.SourceKnowledgeID = &sourceKnowledgeID.Int32
		}
		list = append(list, &agenda)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) DeleteAgenda(ctx context.Context, delete *store.DeleteAgenda) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM agenda WHERE id = $1", delete.ID); err != nil {
		return fmt.Errorf("failed to delete agenda: %w", err)
	}
	return nil
}
