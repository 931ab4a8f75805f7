package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/agendapilot/agendapilot/store"
)

func (d *DB) CreateKnowledge(ctx context.Context, create *store.Knowledge) (*store.Knowledge, error) {
	fields := []string{"uid", "agent_id", "creator_id", "original_text", "normalized_text", "meeting_date_ts"}
	args := []any{create.UID, create.AgentID, create.CreatorID, create.OriginalText, create.NormalizedText, create.MeetingDateTs}

	stmt := `INSERT INTO knowledge (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create knowledge: %w", err)
	}

	return create, nil
}

func (d *DB) ListKnowledge(ctx context.Context, find *store.FindKnowledge) ([]*store.Knowledge, error) {
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
			original_text, normalized_text, meeting_date_ts
		FROM knowledge
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY meeting_date_ts DESC`
	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query knowledge: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Knowledge, 0)
	for rows.Next() {
		var knowledge store.Knowledge
		if err := rows.Scan(
			&knowledge.ID,
			&knowledge.UID,
			&knowledge.AgentID,
			&knowledge.CreatorID,
			&knowledge.CreatedTs,
			&knowledge.OriginalText,
			&knowledge.NormalizedText,
			&knowledge.MeetingDateTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan knowledge: %w", err)
		}
		list = append(list, &knowledge)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) DeleteKnowledge(ctx context.Context, delete *store.DeleteKnowledge) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM knowledge WHERE id = ?", delete.ID); err != nil {
		return fmt.Errorf("failed to delete knowledge: %w", err)
	}
	return nil
}
