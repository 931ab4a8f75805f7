package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/agendapilot/agendapilot/store"
)

func (d *DB) CreateRecurringMeeting(ctx context.Context, create *store.RecurringMeeting) (*store.RecurringMeeting, error) {
	attendees, err := json.Marshal(create.Attendees)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attendees: %w", err)
	}

	fields := []string{"uid", "creator_id", "external_event_id", "title", "recurrence_rule", "frequency", "attendees", "next_occurrence_ts"}
	args := []any{create.UID, create.CreatorID, create.ExternalEventID, create.Title, create.RecurrenceRule, create.Frequency, string(attendees), create.NextOccurrenceTs}

	if create.AgentID != nil {
		fields = append(fields, "agent_id")
		args = append(args, *create.AgentID)
	}
	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO recurring_meeting (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create recurring meeting: %w", err)
	}

	return create, nil
}

func (d *DB) ListRecurringMeetings(ctx context.Context, find *store.FindRecurringMeeting) ([]*store.RecurringMeeting, error) {
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
	if v := find.ExternalEventID; v != nil {
		where, args = append(where, "external_event_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.AgentID; v != nil {
		where, args = append(where, "agent_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT
			id, uid, creator_id, created_ts, updated_ts,
			external_event_id, title, recurrence_rule, frequency,
			attendees, next_occurrence_ts, agent_id
		FROM recurring_meeting
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY next_occurrence_ts ASC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring meetings: %w", err)
	}
	defer rows.Close()

	list := make([]*store.RecurringMeeting, 0)
	for rows.Next() {
		var meeting store.RecurringMeeting
		var attendees string
		var agentID sql.NullInt32

		if err := rows.Scan(
			&meeting.ID,
			&meeting.UID,
			&meeting.CreatorID,
			&meeting.CreatedTs,
			&meeting.UpdatedTs,
			&meeting.ExternalEventID,
			&meeting.Title,
			&meeting.RecurrenceRule,
			&meeting.Frequency,
			&attendees,
			&meeting.NextOccurrenceTs,
			&agentID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recurring meeting: %w", err)
		}

		if attendees != "" {
			if err := json.Unmarshal([]byte(attendees), &meeting.Attendees); err != nil {
				return nil, fmt.Errorf("failed to unmarshal attendees: %w", err)
			}
		}
		if agentID.Valid {
			meeting.AgentID = &agentID.Int32
		}
		list = append(list, &meeting)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) UpdateRecurringMeeting(ctx context.Context, update *store.UpdateRecurringMeeting) error {
	set, args := []string{}, []any{}

	if v := update.Title; v != nil {
		set, args = append(set, "title = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.RecurrenceRule; v != nil {
		set, args = append(set, "recurrence_rule = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Frequency; v != nil {
		set, args = append(set, "frequency = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := update.Attendees; v != nil {
		attendees, err := json.Marshal(*v)
		if err != nil {
			return fmt.Errorf("failed to marshal attendees: %w", err)
		}
		set, args = append(set, "attendees = "+placeholder(len(args)+1)), append(args, string(attendees))
	}
	if v := update.NextOccurrenceTs; v != nil {
		set, args = append(set, "next_occurrence_ts = "+placeholder(len(args)+1)), append(args, *v)
	}
	if update.UnlinkAgent {
		set = append(set, "agent_id = NULL")
	} else if v := update.AgentID; v != nil {
		set, args = append(set, "agent_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	updatedTs := time.Now().Unix()
	if v := update.UpdatedTs; v != nil {
		updatedTs = *v
	}
	set, args = append(set, "updated_ts = "+placeholder(len(args)+1)), append(args, updatedTs)

	args = append(args, update.ID)
	stmt := `UPDATE recurring_meeting SET ` + strings.Join(set, ", ") + ` WHERE id = ` + placeholder(len(args))
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to update recurring meeting: %w", err)
	}
	return nil
}

func (d *DB) DeleteRecurringMeeting(ctx context.Context, delete *store.DeleteRecurringMeeting) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM recurring_meeting WHERE id = ?", delete.ID); err != nil {
		return fmt.Errorf("failed to delete recurring meeting: %w", err)
	}
	return nil
}
