package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agendapilot/agendapilot/store"
)

func (d *DB) CreateAgent(ctx context.Context, create *store.Agent) (*store.Agent, error) {
	fields := []string{"uid", "creator_id", "name", "description", "chat_channel_id", "transcript_count", "chat_window_days"}
	args := []any{create.UID, create.CreatorID, create.Name, create.Description, create.ChatChannelID, create.TranscriptCount, create.ChatWindowDays}

	stmt := `INSERT INTO agent (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return create, nil
}

func (d *DB) ListAgents(ctx context.Context, find *store.FindAgent) ([]*store.Agent, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.CreatorID; v != nil {
		where, args = append(where, "creator_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT
			id, uid, creator_id, created_ts, updated_ts,
			name, description, chat_channel_id, transcript_count, chat_window_days
		FROM agent
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY created_ts DESC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Agent, 0)
	for rows.Next() {
		var agent store.Agent
		if err := rows.Scan(
			&agent.ID,
			&agent.UID,
			&agent.CreatorID,
			&agent.CreatedTs,
			&agent.UpdatedTs,
			&agent.Name,
			&agent.Description,
			&agent.ChatChannelID,
			&agent.TranscriptCount,
			&agent.ChatWindowDays,
		); err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		list = append(list, &agent)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) UpdateAgent(ctx context.Context, update *store.UpdateAgent) error {
	set, args := []string{}, []any{}

	if v := update.Name; v != nil {
		set, args = append(set, "name = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Description; v != nil {
		set, args = append(set, "description = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.ChatChannelID; v != nil {
		set, args = append(set, "chat_channel_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.TranscriptCount; v != nil {
		set, args = append(set, "transcript_count = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.ChatWindowDays; v != nil {
		set, args = append(set, "chat_window_days = "+placeholder(len(args)+1)), append(args, *v)
	}

	updatedTs := time.Now().Unix()
	if v := update.UpdatedTs; v != nil {
		updatedTs = *v
	}
	set, args = append(set, "updated_ts = "+placeholder(len(args)+1)), append(args, updatedTs)

	args = append(args, update.ID)
	stmt := `UPDATE agent SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args))
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to update agent: %w", err)
	}
	return nil
}

func (d *DB) DeleteAgent(ctx context.Context, delete *store.DeleteAgent) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM agent WHERE id = ?", delete.ID); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}
