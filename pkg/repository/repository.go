// Package repository wraps database/sql with typed row scanning and
// transaction scoping.
package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier reads rows. *sql.DB, *sql.Tx and *sql.Conn satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Executor runs statements. *sql.DB, *sql.Tx and *sql.Conn satisfy it.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Scanner interface {
	Scan(dest ...any) error
}

// ScanFunc decodes the current row.
type ScanFunc[T any] func(Scanner) (T, error)

// WithTx commits when fn returns nil and rolls back otherwise. The
// deferred rollback is a no-op after a successful commit.
func WithTx[T any](ctx context.Context, db *sql.DB, fn func(*sql.Tx) (T, error)) (result T, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if result, err = fn(tx); err != nil {
		var zero T
		return zero, err
	}
	if err = tx.Commit(); err != nil {
		var zero T
		return zero, fmt.Errorf("commit tx: %w", err)
	}
	return result, nil
}

// QueryMany scans every row. No rows yields an empty, non-nil slice.
func QueryMany[T any](ctx context.Context, q Querier, query string, args []any, scan ScanFunc[T]) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(out), err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ExecExpectOne reports sql.ErrNoRows when the statement touched nothing.
func ExecExpectOne(ctx context.Context, e Executor, query string, args ...any) error {
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RowsAffected returns the affected count, or zero when the driver cannot
// report it.
func RowsAffected(res sql.Result) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}
