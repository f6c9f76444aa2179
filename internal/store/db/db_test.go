package db

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")
	t.Cleanup(func() { _ = conn.Close() })
	return New(conn, slog.New(slog.NewTextHandler(io.Discard, nil))), mock
}

func TestDB_Query(t *testing.T) {
	d, mock := newTestDB(t)

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(1, "Ann", "ann@example.com").
		AddRow(2, "Bob", "bob@example.com")
	mock.ExpectQuery("SELECT id, name, email FROM users ORDER BY id").WillReturnRows(rows)

	var users []User
	err := d.Query(context.Background(),
		Builder().Select("id", "name", "email").From("users").OrderBy("id"),
		func(r *sql.Rows) error {
			var u User
			if err := r.Scan(&u.ID, &u.Name, &u.Email); err != nil {
				return err
			}
			users = append(users, u)
			return nil
		})

	require.NoError(t, err)
	assert.Equal(t, []User{{1, "Ann", "ann@example.com"}, {2, "Bob", "bob@example.com"}}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_Query_Error(t *testing.T) {
	d, mock := newTestDB(t)
	mock.ExpectQuery("SELECT id FROM users").WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	err := d.Query(context.Background(), Builder().Select("id").From("users"), func(*sql.Rows) error {
		t.Fatal("scan must not be called")
		return nil
	})

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgerrcode.ConnectionFailure, pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_Query_ScanError(t *testing.T) {
	d, mock := newTestDB(t)
	mock.ExpectQuery("SELECT id FROM users").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	scanErr := errors.New("scan failed")
	err := d.Query(context.Background(), Builder().Select("id").From("users"), func(*sql.Rows) error {
		return scanErr
	})

	require.ErrorIs(t, err, scanErr)
}

func TestDB_Insert(t *testing.T) {
	d, mock := newTestDB(t)
	mock.ExpectQuery(`INSERT INTO users \(name,email\) VALUES \(\$1,\$2\) RETURNING id`).
		WithArgs("Ann", "ann@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	res, err := d.Insert(context.Background(),
		Builder().Insert("users").Columns("name", "email").Values("Ann", "ann@example.com"))

	require.NoError(t, err)
	assert.Equal(t, Result{InsertedID: 7, AffectedRows: 1}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_Insert_Error(t *testing.T) {
	d, mock := newTestDB(t)
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation})

	_, err := d.Insert(context.Background(),
		Builder().Insert("users").Columns("name", "email").Values("Ann", nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert")
}

func TestDB_Exec(t *testing.T) {
	d, mock := newTestDB(t)
	mock.ExpectExec(`UPDATE users SET name = \$1, email = \$2 WHERE id = \$3`).
		WithArgs("Ann", "ann@example.com", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := d.Exec(context.Background(),
		Builder().Update("users").Set("name", "Ann").Set("email", "ann@example.com").Where("id = ?", int64(3)))

	require.NoError(t, err)
	assert.Equal(t, Result{AffectedRows: 1}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_Exec_Error(t *testing.T) {
	d, mock := newTestDB(t)
	mock.ExpectExec("DELETE FROM products").WillReturnError(sql.ErrConnDone)

	_, err := d.Exec(context.Background(), Builder().Delete("products"))

	require.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}
