package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the query surface repositories need. It is satisfied both by the
// tx-aware querier and by a raw pgx pool in integration tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Pages are fixed at 20 rows across every listing endpoint.
const PerPage = 20

// PageOffset clamps the page number and converts it to a row offset.
func PageOffset(page int64) uint64 {
	if page < 1 {
		page = 1
	}
	return uint64((page - 1) * PerPage)
}
