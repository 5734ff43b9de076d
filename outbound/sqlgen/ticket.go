package sqlgen

import (
	"context"

	"event-ticket/model"
)

const ticketColumns = `ticket_id, ticket_key, ticket_event_id, ticket_order_id, ticket_ticket_type_id, ticket_email, ticket_phone, ticket_price, ticket_status, ticket_created_on`

const insertTicket = `INSERT INTO tickets (ticket_key, ticket_event_id, ticket_order_id, ticket_ticket_type_id, ticket_email, ticket_phone, ticket_price, ticket_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ticket_id`

type InsertTicketParams struct {
	Key          string
	EventID      int32
	OrderID      int32
	TicketTypeID int32
	Email        string
	Phone        string
	Price        int64
	Status       string
}

func (q *Queries) InsertTicket(ctx context.Context, arg InsertTicketParams) (int32, error) {
	row := q.db.QueryRow(ctx, insertTicket,
		arg.Key,
		arg.EventID,
		arg.OrderID,
		arg.TicketTypeID,
		arg.Email,
		arg.Phone,
		arg.Price,
		arg.Status,
	)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const listTicketsByOrderId = `SELECT ` + ticketColumns + ` FROM tickets WHERE ticket_order_id = $1 ORDER BY ticket_id ASC`

func (q *Queries) ListTicketsByOrderId(ctx context.Context, orderId int32) ([]model.Ticket, error) {
	rows, err := q.db.Query(ctx, listTicketsByOrderId, orderId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]model.Ticket, 0)
	for rows.Next() {
		var t model.Ticket
		err = rows.Scan(
			&t.ID,
			&t.Key,
			&t.EventID,
			&t.OrderID,
			&t.TicketTypeID,
			&t.Email,
			&t.Phone,
			&t.Price,
			&t.Status,
			&t.CreatedOn,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

const listTicketDetailsByOrderId = `SELECT t.ticket_id, t.ticket_key, t.ticket_event_id, t.ticket_order_id, t.ticket_ticket_type_id, t.ticket_email, t.ticket_phone, t.ticket_price, t.ticket_status, t.ticket_created_on, tt.ticket_type_name
FROM tickets t
JOIN ticket_types tt ON tt.ticket_type_id = t.ticket_ticket_type_id
WHERE t.ticket_order_id = $1
ORDER BY t.ticket_id ASC`

func (q *Queries) ListTicketDetailsByOrderId(ctx context.Context, orderId int32) ([]model.TicketDetail, error) {
	rows, err := q.db.Query(ctx, listTicketDetailsByOrderId, orderId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]model.TicketDetail, 0)
	for rows.Next() {
		var d model.TicketDetail
		err = rows.Scan(
			&d.ID,
			&d.Key,
			&d.EventID,
			&d.OrderID,
			&d.TicketTypeID,
			&d.Email,
			&d.Phone,
			&d.Price,
			&d.Status,
			&d.CreatedOn,
			&d.TypeName,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
