package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	perrors "github.com/abgdnv/crudapi/internal/errors"
	"github.com/abgdnv/crudapi/internal/store/db"
)

const usersTable = "users"

// PgUserStore implements UserStore on top of the PostgreSQL adapter.
type PgUserStore struct {
	db Executor
}

// NewPgUserStore creates a new instance of UserStore.
func NewPgUserStore(exec Executor) *PgUserStore {
	return &PgUserStore{db: exec}
}

// FindAll retrieves all users ordered by ID.
func (p *PgUserStore) FindAll(ctx context.Context) ([]db.User, error) {
	users := make([]db.User, 0)
	q := db.Builder().Select("id", "name", "email").From(usersTable).OrderBy("id")
	err := p.db.Query(ctx, q, func(rows *sql.Rows) error {
		var u db.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return err
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find all users: %w", err)
	}
	return users, nil
}

// Create adds a new user and returns it with the assigned ID.
func (p *PgUserStore) Create(ctx context.Context, name, email string) (*db.User, error) {
	q := db.Builder().Insert(usersTable).Columns("name", "email").Values(name, email)
	res, err := p.db.Insert(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &db.User{ID: res.InsertedID, Name: name, Email: email}, nil
}

// Update modifies an existing user's details.
// Returns ErrUserNotFound if no row matched the ID.
func (p *PgUserStore) Update(ctx context.Context, id int64, name, email string) error {
	q := db.Builder().Update(usersTable).
		Set("name", name).
		Set("email", email).
		Where(sq.Eq{"id": id})
	res, err := p.db.Exec(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.AffectedRows == 0 {
		return perrors.ErrUserNotFound
	}
	return nil
}

// DeleteByID removes a user by its unique identifier.
// Returns ErrUserNotFound if no row matched the ID.
func (p *PgUserStore) DeleteByID(ctx context.Context, id int64) error {
	res, err := p.db.Exec(ctx, db.Builder().Delete(usersTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("failed to delete user by ID: %w", err)
	}
	if res.AffectedRows == 0 {
		return perrors.ErrUserNotFound
	}
	return nil
}
