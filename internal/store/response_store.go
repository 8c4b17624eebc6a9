package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Paul0Junior/checklist-eng/internal/model"
)

// AppendResponse inserts one answered-task row into the response log.
// The log is append-only: there is no update or delete, and the same
// question may be recorded many times across submissions. Validation
// happens upstream in the checklist package; this layer trusts its
// caller.
func (s *SQLiteStore) AppendResponse(ctx context.Context, r model.ChecklistResponse) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO checklist_responses (theme_id, question_id, datetime, username, observation, completed)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ThemeID, r.QuestionID,
		r.RecordedAt.Format(model.TimestampLayout),
		r.Username, r.Observation, r.Completed,
	)
	if err != nil {
		return fmt.Errorf("appending response for question %v: %w", r.QuestionID, err)
	}
	return nil
}

// ResponsesForUser returns every response recorded for username in
// insertion order.
func (s *SQLiteStore) ResponsesForUser(ctx context.Context, username string) ([]model.ChecklistResponse, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, theme_id, question_id, datetime, username, observation, completed
		FROM checklist_responses WHERE username = ? ORDER BY id`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("querying responses for %s: %w", username, err)
	}
	defer rows.Close()

	var responses []model.ChecklistResponse
	for rows.Next() {
		r, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		responses = append(responses, r)
	}

	return responses, rows.Err()
}

// CountResponses returns the total number of logged responses.
func (s *SQLiteStore) CountResponses(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM checklist_responses"); err != nil {
		return 0, fmt.Errorf("counting responses: %w", err)
	}
	return count, nil
}

// scanResponse scans a response row from a sqlx.Rows result set.
func scanResponse(rows *sqlx.Rows) (model.ChecklistResponse, error) {
	var (
		r        model.ChecklistResponse
		recorded string
	)

	err := rows.Scan(
		&r.ID, &r.ThemeID, &r.QuestionID,
		&recorded, &r.Username, &r.Observation, &r.Completed,
	)
	if err != nil {
		return model.ChecklistResponse{}, fmt.Errorf("scanning response row: %w", err)
	}

	r.RecordedAt, err = time.Parse(model.TimestampLayout, recorded)
	if err != nil {
		return model.ChecklistResponse{}, fmt.Errorf("parsing response timestamp %q: %w", recorded, err)
	}

	return r, nil
}
