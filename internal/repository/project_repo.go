package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"matchboard/internal/models"
)

type ProjectSQLite struct {
	db *sql.DB
}

func NewProjectSQLite(db *sql.DB) *ProjectSQLite {
	return &ProjectSQLite{db: db}
}

var _ Projects = (*ProjectSQLite)(nil)

// Every read joins the owner's username so the API never needs a second query
// for display names.
const (
	selectProjectsSQL = `
		SELECT p.id, p.title, p.description, p.status, p.user_id, u.username, p.created_at, p.updated_at
		FROM projects p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC
	`

	selectProjectsByOwnerSQL = `
		SELECT p.id, p.title, p.description, p.status, p.user_id, u.username, p.created_at, p.updated_at
		FROM projects p
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = ?
		ORDER BY p.created_at DESC
	`

	selectProjectByIDSQL = `
		SELECT p.id, p.title, p.description, p.status, p.user_id, u.username, p.created_at, p.updated_at
		FROM projects p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = ?
	`

	insertProjectSQL = `
		INSERT INTO projects (title, description, user_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	updateProjectSQL = `
		UPDATE projects SET title = ?, description = ?, status = ?, updated_at = ? WHERE id = ?
	`

	deleteProjectSQL = `DELETE FROM projects WHERE id = ?`
)

func (r *ProjectSQLite) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectProjectsSQL)
	if err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return scanProjects(rows)
}

func (r *ProjectSQLite) ListByOwner(ctx context.Context, userID int) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectProjectsByOwnerSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select projects for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()
	return scanProjects(rows)
}

// GetByID fetches one project with its creator's name. Returns (nil, nil) if absent.
func (r *ProjectSQLite) GetByID(ctx context.Context, id int) (*models.Project, error) {
	var p models.Project
	err := r.db.QueryRowContext(ctx, selectProjectByIDSQL, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Status, &p.UserID, &p.CreatorName, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select project %d: %w", id, err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

func (r *ProjectSQLite) Create(ctx context.Context, title, description, status string, ownerID int) (int, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertProjectSQL, title, description, ownerID, status, now, now)
	if err != nil {
		return 0, fmt.Errorf("insert project %q: %w", title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for project %q: %w", title, err)
	}
	return int(lastID), nil
}

func (r *ProjectSQLite) Update(ctx context.Context, id int, title, description, status string) error {
	if _, err := r.db.ExecContext(ctx, updateProjectSQL, title, description, status, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("update project %d: %w", id, err)
	}
	return nil
}

func (r *ProjectSQLite) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteProjectSQL, id); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return nil
}

func scanProjects(rows *sql.Rows) ([]models.Project, error) {
	var out []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Status, &p.UserID, &p.CreatorName, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project row: %w", err)
		}
		p.CreatedAt = p.CreatedAt.UTC()
		p.UpdatedAt = p.UpdatedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project rows: %w", err)
	}
	return out, nil
}
