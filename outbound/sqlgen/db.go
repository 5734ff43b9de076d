package sqlgen

import (
	"event-ticket/common/contract"

	"github.com/jackc/pgx/v5"
)

// Queries bundles every query of the application behind a single value
// bound to either a pool or a transaction.
type Queries struct {
	db contract.DbConn
}

func New(db contract.DbConn) *Queries {
	return &Queries{db: db}
}

// WithTx returns a copy of Queries running on the given transaction.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}
