// Package db is the persistence adapter: it runs exactly one parameterized
// statement per call and hands back rows or a Result.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Result describes the outcome of a mutating statement.
type Result struct {
	// InsertedID is the identifier assigned by the store. Set by Insert only.
	InsertedID int64
	// AffectedRows is the number of rows the statement changed.
	AffectedRows int64
}

// psql builds statements with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Builder returns the statement builder used by the stores.
func Builder() sq.StatementBuilderType {
	return psql
}

// DB executes statements against a *sql.DB.
type DB struct {
	conn   *sql.DB
	logger *slog.Logger
}

// New wraps an existing *sql.DB.
func New(conn *sql.DB, logger *slog.Logger) *DB {
	return &DB{
		conn:   conn,
		logger: logger.With("component", "db"),
	}
}

// NewFromPool exposes a pgx pool through database/sql using the pgx stdlib driver.
func NewFromPool(pool *pgxpool.Pool, logger *slog.Logger) *DB {
	return New(stdlib.OpenDBFromPool(pool), logger)
}

// Query runs a select and calls scan once per returned row, in order.
func (d *DB) Query(ctx context.Context, q sq.Sqlizer, scan func(*sql.Rows) error) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return d.fail(ctx, "query", query, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return d.fail(ctx, "iterate rows", query, err)
	}
	return nil
}

// Insert runs an insert and returns the identifier the store assigned to the new row.
func (d *DB) Insert(ctx context.Context, q sq.InsertBuilder) (Result, error) {
	query, args, err := q.Suffix("RETURNING id").ToSql()
	if err != nil {
		return Result{}, fmt.Errorf("failed to build insert: %w", err)
	}

	var id int64
	if err := d.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return Result{}, d.fail(ctx, "insert", query, err)
	}
	return Result{InsertedID: id, AffectedRows: 1}, nil
}

// Exec runs an update or delete and reports how many rows it affected.
func (d *DB) Exec(ctx context.Context, q sq.Sqlizer) (Result, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return Result{}, fmt.Errorf("failed to build statement: %w", err)
	}

	res, err := d.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, d.fail(ctx, "exec", query, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return Result{AffectedRows: affected}, nil
}

// fail logs a statement failure and wraps it.
// Connection-class errors are logged separately from statements the server rejected.
func (d *DB) fail(ctx context.Context, op, query string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgerrcode.IsConnectionException(pgErr.Code):
		d.logger.ErrorContext(ctx, "Database connection failure", "op", op, "code", pgErr.Code, "error", err)
	case errors.As(err, &pgErr):
		d.logger.WarnContext(ctx, "Statement rejected by database", "op", op, "code", pgErr.Code, "query", query, "error", err)
	default:
		d.logger.ErrorContext(ctx, "Database call failed", "op", op, "query", query, "error", err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
