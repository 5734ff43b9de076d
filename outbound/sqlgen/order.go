package sqlgen

import (
	"context"

	"event-ticket/model"

	"github.com/jackc/pgx/v5/pgconn"
)

const orderColumns = `order_id, order_number, order_event_id, order_price, order_type, order_payment, order_info, api_key, order_created_on`

const insertOrder = `INSERT INTO orders (order_number, order_event_id, order_price, order_type, order_payment, order_info, api_key)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING order_id`

type InsertOrderParams struct {
	Number  string
	EventID int32
	Price   int64
	Type    string
	Payment string
	Info    string
	ApiKey  string
}

func (q *Queries) InsertOrder(ctx context.Context, arg InsertOrderParams) (int32, error) {
	row := q.db.QueryRow(ctx, insertOrder,
		arg.Number,
		arg.EventID,
		arg.Price,
		arg.Type,
		arg.Payment,
		arg.Info,
		arg.ApiKey,
	)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const findOrderById = `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

func (q *Queries) FindOrderById(ctx context.Context, id int32) (model.Order, error) {
	row := q.db.QueryRow(ctx, findOrderById, id)
	return scanOrder(row)
}

const findOrderByNumber = `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`

func (q *Queries) FindOrderByNumber(ctx context.Context, number string) (model.Order, error) {
	row := q.db.QueryRow(ctx, findOrderByNumber, number)
	return scanOrder(row)
}

const listOrders = `SELECT ` + orderColumns + ` FROM orders ORDER BY order_id ASC`

func (q *Queries) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := q.db.Query(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

const listOrdersByApiKey = `SELECT ` + orderColumns + ` FROM orders
WHERE api_key = $1
ORDER BY order_created_on DESC
LIMIT $2 OFFSET $3`

type ListOrdersByApiKeyParams struct {
	ApiKey string
	Limit  int32
	Offset int32
}

func (q *Queries) ListOrdersByApiKey(ctx context.Context, arg ListOrdersByApiKeyParams) ([]model.Order, error) {
	rows, err := q.db.Query(ctx, listOrdersByApiKey, arg.ApiKey, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

const countOrdersByApiKey = `SELECT count(*) FROM orders WHERE api_key = $1`

func (q *Queries) CountOrdersByApiKey(ctx context.Context, apiKey string) (int64, error) {
	row := q.db.QueryRow(ctx, countOrdersByApiKey, apiKey)
	var total int64
	err := row.Scan(&total)
	return total, err
}

const updateOrder = `UPDATE orders SET
	order_price = COALESCE($2, order_price),
	order_type = COALESCE($3, order_type),
	order_payment = COALESCE($4, order_payment),
	order_info = COALESCE($5, order_info)
WHERE order_id = $1
RETURNING ` + orderColumns

type UpdateOrderParams struct {
	ID      int32
	Price   *int64
	Type    *string
	Payment *string
	Info    *string
}

func (q *Queries) UpdateOrder(ctx context.Context, arg UpdateOrderParams) (model.Order, error) {
	row := q.db.QueryRow(ctx, updateOrder,
		arg.ID,
		arg.Price,
		arg.Type,
		arg.Payment,
		arg.Info,
	)
	return scanOrder(row)
}

const deleteOrder = `DELETE FROM orders WHERE order_id = $1`

func (q *Queries) DeleteOrder(ctx context.Context, id int32) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteOrder, id)
}

func scanOrder(row rowScanner) (model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID,
		&o.Number,
		&o.EventID,
		&o.Price,
		&o.Type,
		&o.Payment,
		&o.Info,
		&o.ApiKey,
		&o.CreatedOn,
	)
	return o, err
}
