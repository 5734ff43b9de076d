package sqlgen

import (
	"context"
	"time"

	"event-ticket/model"

	"github.com/jackc/pgx/v5/pgconn"
)

const eventColumns = `event_id, event_title, event_description, event_date, event_image, event_category, event_city, event_address, event_status`

const insertEvent = `INSERT INTO events (event_title, event_description, event_date, event_image, event_category, event_city, event_address, event_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + eventColumns

type InsertEventParams struct {
	Title       string
	Description string
	Date        time.Time
	Image       string
	Category    string
	City        string
	Address     string
	Status      string
}

func (q *Queries) InsertEvent(ctx context.Context, arg InsertEventParams) (model.Event, error) {
	row := q.db.QueryRow(ctx, insertEvent,
		arg.Title,
		arg.Description,
		arg.Date,
		arg.Image,
		arg.Category,
		arg.City,
		arg.Address,
		arg.Status,
	)
	return scanEvent(row)
}

const findEventById = `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1`

func (q *Queries) FindEventById(ctx context.Context, id int32) (model.Event, error) {
	row := q.db.QueryRow(ctx, findEventById, id)
	return scanEvent(row)
}

const listUpcomingEvents = `SELECT ` + eventColumns + ` FROM events
WHERE event_date > $1
ORDER BY event_date ASC
LIMIT $2 OFFSET $3`

type ListUpcomingEventsParams struct {
	After  time.Time
	Limit  int32
	Offset int32
}

func (q *Queries) ListUpcomingEvents(ctx context.Context, arg ListUpcomingEventsParams) ([]model.Event, error) {
	rows, err := q.db.Query(ctx, listUpcomingEvents, arg.After, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

const countUpcomingEvents = `SELECT count(*) FROM events WHERE event_date > $1`

func (q *Queries) CountUpcomingEvents(ctx context.Context, after time.Time) (int64, error) {
	row := q.db.QueryRow(ctx, countUpcomingEvents, after)
	var total int64
	err := row.Scan(&total)
	return total, err
}

const updateEvent = `UPDATE events SET
	event_title = COALESCE($2, event_title),
	event_description = COALESCE($3, event_description),
	event_date = COALESCE($4, event_date),
	event_image = COALESCE($5, event_image),
	event_category = COALESCE($6, event_category),
	event_city = COALESCE($7, event_city),
	event_address = COALESCE($8, event_address),
	event_status = COALESCE($9, event_status)
WHERE event_id = $1
RETURNING ` + eventColumns

type UpdateEventParams struct {
	ID          int32
	Title       *string
	Description *string
	Date        *time.Time
	Image       *string
	Category    *string
	City        *string
	Address     *string
	Status      *string
}

func (q *Queries) UpdateEvent(ctx context.Context, arg UpdateEventParams) (model.Event, error) {
	row := q.db.QueryRow(ctx, updateEvent,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.Date,
		arg.Image,
		arg.Category,
		arg.City,
		arg.Address,
		arg.Status,
	)
	return scanEvent(row)
}

const deleteEvent = `DELETE FROM events WHERE event_id = $1`

func (q *Queries) DeleteEvent(ctx context.Context, id int32) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteEvent, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Date,
		&e.Image,
		&e.Category,
		&e.City,
		&e.Address,
		&e.Status,
	)
	return e, err
}
