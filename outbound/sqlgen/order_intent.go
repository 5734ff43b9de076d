package sqlgen

import (
	"context"
	"time"

	"event-ticket/model"

	"github.com/jackc/pgx/v5/pgconn"
)

const orderIntentColumns = `order_intent_id, order_intent_event_id, order_intent_price, order_intent_type, user_email, user_phone, expiration_date, created_at`

const insertOrderIntent = `INSERT INTO orders_intents (order_intent_event_id, order_intent_price, order_intent_type, user_email, user_phone, expiration_date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + orderIntentColumns

type InsertOrderIntentParams struct {
	EventID        int32
	Price          int64
	Type           string
	UserEmail      string
	UserPhone      string
	ExpirationDate time.Time
}

func (q *Queries) InsertOrderIntent(ctx context.Context, arg InsertOrderIntentParams) (model.OrderIntent, error) {
	row := q.db.QueryRow(ctx, insertOrderIntent,
		arg.EventID,
		arg.Price,
		arg.Type,
		arg.UserEmail,
		arg.UserPhone,
		arg.ExpirationDate,
	)
	return scanOrderIntent(row)
}

const findOrderIntentById = `SELECT ` + orderIntentColumns + ` FROM orders_intents WHERE order_intent_id = $1`

func (q *Queries) FindOrderIntentById(ctx context.Context, id int32) (model.OrderIntent, error) {
	row := q.db.QueryRow(ctx, findOrderIntentById, id)
	return scanOrderIntent(row)
}

const listOrderIntents = `SELECT ` + orderIntentColumns + ` FROM orders_intents ORDER BY order_intent_id ASC`

func (q *Queries) ListOrderIntents(ctx context.Context) ([]model.OrderIntent, error) {
	rows, err := q.db.Query(ctx, listOrderIntents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	intents := make([]model.OrderIntent, 0)
	for rows.Next() {
		intent, err := scanOrderIntent(rows)
		if err != nil {
			return nil, err
		}
		intents = append(intents, intent)
	}
	return intents, rows.Err()
}

const updateOrderIntent = `UPDATE orders_intents SET
	order_intent_price = COALESCE($2, order_intent_price),
	order_intent_type = COALESCE($3, order_intent_type),
	user_email = COALESCE($4, user_email),
	user_phone = COALESCE($5, user_phone),
	expiration_date = COALESCE($6, expiration_date)
WHERE order_intent_id = $1
RETURNING ` + orderIntentColumns

type UpdateOrderIntentParams struct {
	ID             int32
	Price          *int64
	Type           *string
	UserEmail      *string
	UserPhone      *string
	ExpirationDate *time.Time
}

func (q *Queries) UpdateOrderIntent(ctx context.Context, arg UpdateOrderIntentParams) (model.OrderIntent, error) {
	row := q.db.QueryRow(ctx, updateOrderIntent,
		arg.ID,
		arg.Price,
		arg.Type,
		arg.UserEmail,
		arg.UserPhone,
		arg.ExpirationDate,
	)
	return scanOrderIntent(row)
}

const deleteOrderIntent = `DELETE FROM orders_intents WHERE order_intent_id = $1`

func (q *Queries) DeleteOrderIntent(ctx context.Context, id int32) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteOrderIntent, id)
}

const deleteExpiredOrderIntents = `DELETE FROM orders_intents WHERE expiration_date < $1`

func (q *Queries) DeleteExpiredOrderIntents(ctx context.Context, before time.Time) (int64, error) {
	cmd, err := q.db.Exec(ctx, deleteExpiredOrderIntents, before)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanOrderIntent(row rowScanner) (model.OrderIntent, error) {
	var oi model.OrderIntent
	err := row.Scan(
		&oi.ID,
		&oi.EventID,
		&oi.Price,
		&oi.Type,
		&oi.UserEmail,
		&oi.UserPhone,
		&oi.ExpirationDate,
		&oi.CreatedAt,
	)
	return oi, err
}
