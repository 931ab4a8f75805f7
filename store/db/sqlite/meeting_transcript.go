package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agendapilot/agendapilot/store"
)

func (d *DB) CreateMeetingTranscript(ctx context.Context, create *store.MeetingTranscript) (*store.MeetingTranscript, error) {
	entries, err := json.Marshal(create.Entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entries: %w", err)
	}

	fields := []string{"uid", "creator_id", "meeting_id", "meeting_date_ts", "external_doc_id", "raw_text", "entries", "match_confidence"}
	args := []any{create.UID, create.CreatorID, create.MeetingID, create.MeetingDateTs, create.ExternalDocID, create.RawText, string(entries), create.MatchConfidence}

	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO meeting_transcript (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create meeting transcript: %w", err)
	}

	return create, nil
}

func (d *DB) ListMeetingTranscripts(ctx context.Context, find *store.FindMeetingTranscript) ([]*store.MeetingTranscript, error) {
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
	if v := find.MeetingID; v != nil {
		where, args = append(where, "meeting_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.ExternalDocID; v != nil {
		where, args = append(where, "external_doc_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.NeedsConfirmation; v != nil {
		op := ">="
		if *v {
			op = "<"
		}
		where, args = append(where, "match_confidence "+op+" "+placeholder(len(args)+1)), append(args, store.AutoLinkThreshold)
	}

	query := `
		SELECT
			id, uid, creator_id, created_ts,
			meeting_id, meeting_date_ts, external_doc_id,
			raw_text, entries, match_confidence
		FROM meeting_transcript
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY meeting_date_ts DESC`
	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query meeting transcripts: %w", err)
	}
	defer rows.Close()

	list := make([]*store.MeetingTranscript, 0)
	for rows.Next() {
		var transcript store.MeetingTranscript
		var entries string

		if err := rows.Scan(
			&transcript.ID,
			&transcript.UID,
			&transcript.CreatorID,
			&transcript.CreatedTs,
			&transcript.MeetingID,
			&transcript.MeetingDateTs,
			&transcript.ExternalDocID,
			&transcript.RawText,
			&entries,
			&transcript.MatchConfidence,
		); err != nil {
			return nil, fmt.Errorf("failed to scan meeting transcript: %w", err)
		}

		if entries != "" {
			if err := json.Unmarshal([]byte(entries), &transcript.Entries); err != nil {
				return nil, fmt.Errorf("failed to unmarshal entries: %w", err)
			}
		}
		list = append(list, &transcript)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) UpdateMeetingTranscript(ctx context.Context, update *store.UpdateMeetingTranscript) error {
	set, args := []string{}, []any{}

	if v := update.MeetingID; v != nil {
		set, args = append(set, "meeting_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.MatchConfidence; v != nil {
		set, args = append(set, "match_confidence = "+placeholder(len(args)+1)), append(args, *v)
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, update.ID)
	stmt := `UPDATE meeting_transcript SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args))
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to update meeting transcript: %w", err)
	}
	return nil
}

func (d *DB) DeleteMeetingTranscript(ctx context.Context, delete *store.DeleteMeetingTranscript) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM meeting_transcript WHERE id = ?", delete.ID); err != nil {
		return fmt.Errorf("failed to delete meeting transcript: %w", err)
	}
	return nil
}
