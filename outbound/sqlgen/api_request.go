package sqlgen

import (
	"context"
)

const insertApiRequest = `INSERT INTO api_requests (first_name, last_name, company, email, city, address, api_key)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING api_request_id`

type InsertApiRequestParams struct {
	FirstName string
	LastName  string
	Company   string
	Email     string
	City      string
	Address   string
	ApiKey    string
}

func (q *Queries) InsertApiRequest(ctx context.Context, arg InsertApiRequestParams) (int32, error) {
	row := q.db.QueryRow(ctx, insertApiRequest,
		arg.FirstName,
		arg.LastName,
		arg.Company,
		arg.Email,
		arg.City,
		arg.Address,
		arg.ApiKey,
	)
	var id int32
	err := row.Scan(&id)
	return id, err
}

const apiKeyExists = `SELECT EXISTS (SELECT 1 FROM api_requests WHERE api_key = $1) AS "exists"`

func (q *Queries) ApiKeyExists(ctx context.Context, apiKey string) (bool, error) {
	row := q.db.QueryRow(ctx, apiKeyExists, apiKey)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const apiRequestEmailExists = `SELECT EXISTS (SELECT 1 FROM api_requests WHERE email = $1) AS "exists"`

func (q *Queries) ApiRequestEmailExists(ctx context.Context, email string) (bool, error) {
	row := q.db.QueryRow(ctx, apiRequestEmailExists, email)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
