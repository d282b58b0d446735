package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/AbhradeepMukherjee/CalenderApp/internal/daterange"
	"github.com/AbhradeepMukherjee/CalenderApp/internal/model"
)

const eventColumns = `id, user_id, title, description, start_date, end_date,
	start_time, end_time, is_all_day, recurrence, created_at, updated_at`

func (s *Store) CreateEvent(ctx context.Context, e *model.Event) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO events (id, user_id, title, description, start_date, end_date,
		                     start_time, end_time, is_all_day, recurrence)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING created_at, updated_at`,
		e.ID, e.UserID, e.Title, e.Description, e.StartDate, e.EndDate,
		e.StartTime, e.EndTime, e.IsAllDay, e.Recurrence,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (s *Store) EventByID(ctx context.Context, id, userID string) (*model.Event, error) {
	e := &model.Event{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.StartDate, &e.EndDate,
		&e.StartTime, &e.EndTime, &e.IsAllDay, &e.Recurrence, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Store) ListEvents(ctx context.Context, userID string) ([]model.Event, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE user_id = $1 ORDER BY start_date`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// EventsInRange returns the owner's events whose [start_date, end_date]
// intersects r: either date falls inside the interval (inclusive), or the
// event strictly spans it.
func (s *Store) EventsInRange(ctx context.Context, userID string, r daterange.Range) ([]model.Event, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM events
		 WHERE user_id = $1
		   AND (
		        (start_date >= $2 AND start_date <= $3)
		     OR (end_date   >= $2 AND end_date   <= $3)
		     OR (start_date <  $2 AND end_date   >  $3)
		   )
		 ORDER BY start_date`,
		userID, r.Start, r.End,
	)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// UpdateEvent replaces every field of the row matched by (id, user_id).
// Zero rows matched means the event does not exist or belongs to someone
// else; callers cannot tell which.
func (s *Store) UpdateEvent(ctx context.Context, e *model.Event) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE events
		 SET title=$1, description=$2, start_date=$3, end_date=$4,
		     start_time=$5, end_time=$6, is_all_day=$7, recurrence=$8, updated_at=NOW()
		 WHERE id=$9 AND user_id=$10`,
		e.Title, e.Description, e.StartDate, e.EndDate,
		e.StartTime, e.EndTime, e.IsAllDay, e.Recurrence, e.ID, e.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (s *Store) DeleteEvent(ctx context.Context, id, userID string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM events WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

func scanEvents(rows pgx.Rows) ([]model.Event, error) {
	defer rows.Close()

	out := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Title, &e.Description, &e.StartDate, &e.EndDate,
			&e.StartTime, &e.EndTime, &e.IsAllDay, &e.Recurrence, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
