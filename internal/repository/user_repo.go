package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"matchboard/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, password, created_at, updated_at) VALUES (?, ?, ?, ?)`

	selectUserByIDSQL = `
		SELECT id, username, password, created_at, updated_at
		FROM users WHERE id = ?
	`

	selectUserByUsernameSQL = `
		SELECT id, username, password, created_at, updated_at
		FROM users WHERE username = ?
	`
)

// Create inserts a new user and returns its ID.
func (r *UserSQLite) Create(ctx context.Context, username, password string) (int, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, password, now, now)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByIDSQL, id), fmt.Sprintf("id=%d", id))
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username), fmt.Sprintf("username=%q", username))
}

func (r *UserSQLite) scanOne(row *sql.Row, desc string) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %s: %w", desc, err)
	}
	return &u, nil
}
