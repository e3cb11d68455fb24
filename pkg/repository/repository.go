// Package repository provides generic database access helpers shared by the
// domain repositories: single and multi-row queries with typed scan
// functions, transactional execution, and translation of driver errors into
// domain sentinel errors.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Scanner abstracts sql.Row and sql.Rows for typed scan functions.
type Scanner interface {
	Scan(dest ...any) error
}

// Queryer abstracts *sql.DB and *sql.Tx for query execution.
type Queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ErrNoRowsAffected indicates an exec that was expected to modify exactly
// one row modified none.
var ErrNoRowsAffected = errors.New("no rows affected")

// QueryOne executes a query expected to return a single row and scans it
// with the provided scan function.
func QueryOne[T any](ctx context.Context, q Queryer, query string, args []any, scan func(Scanner) (T, error)) (T, error) {
	return scan(q.QueryRowContext(ctx, query, args...))
}

// QueryMany executes a query and scans every returned row with the provided
// scan function.
func QueryMany[T any](ctx context.Context, q Queryer, query string, args []any, scan func(Scanner) (T, error)) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		result, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// ExecExpectOne executes a statement and returns ErrNoRowsAffected unless
// exactly one row was modified.
func ExecExpectOne(ctx context.Context, q Queryer, query string, args ...any) error {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}
	if affected > 1 {
		return fmt.Errorf("expected 1 row affected, got %d", affected)
	}

	return nil
}

// WithTx runs fn within a transaction, committing on success and rolling
// back on error.
func WithTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("begin transaction: %w", err)
	}

	result, err := fn(tx)
	if err != nil {
		tx.Rollback()
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit transaction: %w", err)
	}

	return result, nil
}

// MapError translates driver-level errors into the provided domain sentinels.
// sql.ErrNoRows and missing-row execs map to notFound; unique violations map
// to duplicate. Other errors pass through unchanged.
func MapError(err, notFound, duplicate error) error {
	if err == nil {
		return nil
	}

	if notFound != nil && (errors.Is(err, sql.ErrNoRows) || errors.Is(err, ErrNoRowsAffected)) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if duplicate != nil && errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return duplicate
	}

	return err
}
