package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"matchboard/internal/models"
)

type HelpSQLite struct {
	db *sql.DB
}

func NewHelpSQLite(db *sql.DB) *HelpSQLite {
	return &HelpSQLite{db: db}
}

var _ Helps = (*HelpSQLite)(nil)

const (
	// ON CONFLICT DO NOTHING leans on UNIQUE(project_id, user_id); a second
	// application for the same pair affects zero rows.
	insertHelpSQL = `
		INSERT INTO helps (project_id, user_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (project_id, user_id) DO NOTHING
	`

	selectHelpByPairSQL = `
		SELECT id, project_id, user_id, status, created_at, updated_at
		FROM helps WHERE project_id = ? AND user_id = ?
	`

	selectHelpsByProjectSQL = `
		SELECT h.id, h.status, h.created_at, h.updated_at, u.id, u.username
		FROM helps h
		JOIN users u ON h.user_id = u.id
		WHERE h.project_id = ?
	`

	// Scoping the update by project_id rejects help ids that belong to a
	// different project.
	updateHelpStatusSQL = `
		UPDATE helps SET status = ?, updated_at = ? WHERE id = ? AND project_id = ?
	`

	selectHelpsByUserSQL = `
		SELECT h.id, h.status, p.id, p.title, p.description, p.status, u.id, u.username
		FROM helps h
		JOIN projects p ON h.project_id = p.id
		JOIN users u ON p.user_id = u.id
		WHERE h.user_id = ?
	`

	selectMatchesByUserSQL = selectHelpsByUserSQL + ` AND h.status = 'matched'`
)

// Create inserts a pending help row for (projectID, userID). The second return
// value reports whether a row was actually inserted; false means the pair
// already applied.
func (r *HelpSQLite) Create(ctx context.Context, projectID, userID int) (int, bool, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, insertHelpSQL, projectID, userID, models.HelpStatusPending, now, now)
	if err != nil {
		return 0, false, fmt.Errorf("insert help (project %d, user %d): %w", projectID, userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("rows affected for help (project %d, user %d): %w", projectID, userID, err)
	}
	if affected == 0 {
		return 0, false, nil
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("get last insert id for help (project %d, user %d): %w", projectID, userID, err)
	}
	return int(lastID), true, nil
}

// GetByProjectAndUser fetches the help row for a (project, applicant) pair.
// Returns (nil, nil) if absent.
func (r *HelpSQLite) GetByProjectAndUser(ctx context.Context, projectID, userID int) (*models.Help, error) {
	var h models.Help
	err := r.db.QueryRowContext(ctx, selectHelpByPairSQL, projectID, userID).Scan(
		&h.ID, &h.ProjectID, &h.UserID, &h.Status, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select help (project %d, user %d): %w", projectID, userID, err)
	}
	h.CreatedAt = h.CreatedAt.UTC()
	h.UpdatedAt = h.UpdatedAt.UTC()
	return &h, nil
}

// ListByProject returns all applications for a project joined with applicant names.
func (r *HelpSQLite) ListByProject(ctx context.Context, projectID int) ([]models.HelpApplicant, error) {
	rows, err := r.db.QueryContext(ctx, selectHelpsByProjectSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("select helps for project %d: %w", projectID, err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.HelpApplicant
	for rows.Next() {
		var a models.HelpApplicant
		if err := rows.Scan(&a.HelpID, &a.Status, &a.CreatedAt, &a.UpdatedAt, &a.UserID, &a.Username); err != nil {
			return nil, fmt.Errorf("scan help row: %w", err)
		}
		a.CreatedAt = a.CreatedAt.UTC()
		a.UpdatedAt = a.UpdatedAt.UTC()
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate help rows: %w", err)
	}
	return out, nil
}

// UpdateStatus sets the status of one help row belonging to projectID and
// returns the updated row. Returns (nil, nil) when no row matched.
func (r *HelpSQLite) UpdateStatus(ctx context.Context, projectID, helpID int, status string) (*models.Help, error) {
	res, err := r.db.ExecContext(ctx, updateHelpStatusSQL, status, time.Now().UTC(), helpID, projectID)
	if err != nil {
		return nil, fmt.Errorf("update help %d status: %w", helpID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected for help %d: %w", helpID, err)
	}
	if affected == 0 {
		return nil, nil
	}

	var h models.Help
	err = r.db.QueryRowContext(
		ctx,
		`SELECT id, project_id, user_id, status, created_at, updated_at FROM helps WHERE id = ?`,
		helpID,
	).Scan(&h.ID, &h.ProjectID, &h.UserID, &h.Status, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("reload help %d: %w", helpID, err)
	}
	h.CreatedAt = h.CreatedAt.UTC()
	h.UpdatedAt = h.UpdatedAt.UTC()
	return &h, nil
}

// ListByUser returns the user's applications joined with project and owner fields.
func (r *HelpSQLite) ListByUser(ctx context.Context, userID int) ([]models.UserHelp, error) {
	return r.listUserHelps(ctx, selectHelpsByUserSQL, userID)
}

// ListMatchedByUser is ListByUser restricted to matched applications.
func (r *HelpSQLite) ListMatchedByUser(ctx context.Context, userID int) ([]models.UserHelp, error) {
	return r.listUserHelps(ctx, selectMatchesByUserSQL, userID)
}

func (r *HelpSQLite) listUserHelps(ctx context.Context, query string, userID int) ([]models.UserHelp, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select helps for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.UserHelp
	for rows.Next() {
		var h models.UserHelp
		if err := rows.Scan(
			&h.HelpID, &h.Status,
			&h.ProjectID, &h.ProjectTitle, &h.ProjectDescription, &h.ProjectStatus,
			&h.OwnerID, &h.OwnerName,
		); err != nil {
			return nil, fmt.Errorf("scan user help row: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user help rows: %w", err)
	}
	return out, nil
}
