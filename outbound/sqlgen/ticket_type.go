package sqlgen

import (
	"context"

	"event-ticket/model"

	"github.com/jackc/pgx/v5/pgconn"
)

const ticketTypeColumns = `ticket_type_id, ticket_type_event_id, ticket_type_name, ticket_type_price, ticket_type_quantity, ticket_type_real_quantity, ticket_type_total_quantity, ticket_type_description`

const insertTicketType = `INSERT INTO ticket_types (ticket_type_event_id, ticket_type_name, ticket_type_price, ticket_type_quantity, ticket_type_real_quantity, ticket_type_total_quantity, ticket_type_description)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + ticketTypeColumns

type InsertTicketTypeParams struct {
	EventID       int32
	Name          string
	Price         int64
	Quantity      int32
	RealQuantity  int32
	TotalQuantity int32
	Description   string
}

func (q *Queries) InsertTicketType(ctx context.Context, arg InsertTicketTypeParams) (model.TicketType, error) {
	row := q.db.QueryRow(ctx, insertTicketType,
		arg.EventID,
		arg.Name,
		arg.Price,
		arg.Quantity,
		arg.RealQuantity,
		arg.TotalQuantity,
		arg.Description,
	)
	return scanTicketType(row)
}

const findTicketTypeById = `SELECT ` + ticketTypeColumns + ` FROM ticket_types WHERE ticket_type_id = $1`

func (q *Queries) FindTicketTypeById(ctx context.Context, id int32) (model.TicketType, error) {
	row := q.db.QueryRow(ctx, findTicketTypeById, id)
	return scanTicketType(row)
}

const listTicketTypesByEventId = `SELECT ` + ticketTypeColumns + ` FROM ticket_types
WHERE ticket_type_event_id = $1
ORDER BY ticket_type_id ASC`

func (q *Queries) ListTicketTypesByEventId(ctx context.Context, eventId int32) ([]model.TicketType, error) {
	rows, err := q.db.Query(ctx, listTicketTypesByEventId, eventId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]model.TicketType, 0)
	for rows.Next() {
		tt, err := scanTicketType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, tt)
	}
	return types, rows.Err()
}

const updateTicketType = `UPDATE ticket_types SET
	ticket_type_name = COALESCE($2, ticket_type_name),
	ticket_type_price = COALESCE($3, ticket_type_price),
	ticket_type_quantity = COALESCE($4, ticket_type_quantity),
	ticket_type_real_quantity = COALESCE($5, ticket_type_real_quantity),
	ticket_type_total_quantity = COALESCE($6, ticket_type_total_quantity),
	ticket_type_description = COALESCE($7, ticket_type_description)
WHERE ticket_type_id = $1
RETURNING ` + ticketTypeColumns

type UpdateTicketTypeParams struct {
	ID            int32
	Name          *string
	Price         *int64
	Quantity      *int32
	RealQuantity  *int32
	TotalQuantity *int32
	Description   *string
}

func (q *Queries) UpdateTicketType(ctx context.Context, arg UpdateTicketTypeParams) (model.TicketType, error) {
	row := q.db.QueryRow(ctx, updateTicketType,
		arg.ID,
		arg.Name,
		arg.Price,
		arg.Quantity,
		arg.RealQuantity,
		arg.TotalQuantity,
		arg.Description,
	)
	return scanTicketType(row)
}

const deleteTicketType = `DELETE FROM ticket_types WHERE ticket_type_id = $1`

func (q *Queries) DeleteTicketType(ctx context.Context, id int32) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteTicketType, id)
}

func scanTicketType(row rowScanner) (model.TicketType, error) {
	var t model.TicketType
	err := row.Scan(
		&t.ID,
		&t.EventID,
		&t.Name,
		&t.Price,
		&t.Quantity,
		&t.RealQuantity,
		&t.TotalQuantity,
		&t.Description,
	)
	return t, err
}
