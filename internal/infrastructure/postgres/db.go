package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB é o subconjunto de pgx usado pelos repositórios. Tanto *pgxpool.Pool
// quanto pgx.Tx o satisfazem, o que permite reutilizar os mesmos
// repositórios dentro e fora de transações.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
