package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier repository'lerin ihtiyaç duyduğu ortak sorgu yüzeyi. Hem
// *pgxpool.Pool hem pgx.Tx bu arayüzü sağlar: aynı repository kodu pool
// üzerinde de transaction içinde de çalışır.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
