package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/agendapilot/agendapilot/store"
)

func (d *DB) CreateGlossaryEntry(ctx context.Context, create *store.GlossaryEntry) (*store.GlossaryEntry, error) {
	fields := []string{"creator_id", "term", "canonical_name", "description"}
	args := []any{create.CreatorID, create.Term, create.CanonicalName, create.Description}

	stmt := `INSERT INTO glossary_entry (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create glossary entry: %w", err)
	}

	return create, nil
}

func (d *DB) ListGlossaryEntries(ctx context.Context, find *store.FindGlossaryEntry) ([]*store.GlossaryEntry, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.CreatorID; v != nil {
		where, args = append(where, "creator_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, creator_id, created_ts, term, canonical_name, description
		FROM glossary_entry
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY term ASC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query glossary entries: %w", err)
	}
	defer rows.Close()

	list := make([]*store.GlossaryEntry, 0)
	for rows.Next() {
		var entry store.GlossaryEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.CreatorID,
			&entry.CreatedTs,
			&entry.Term,
			&entry.CanonicalName,
			&entry.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan glossary entry: %w", err)
		}
		list = append(list, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) DeleteGlossaryEntry(ctx context.Context, delete *store.DeleteGlossaryEntry) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM glossary_entry WHERE id = ?", delete.ID); err != nil {
		return fmt.Errorf("failed to delete glossary entry: %w", err)
	}
	return nil
}
