package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"matchboard/internal/models"

	"github.com/google/uuid"
)

type ActivitySQLite struct {
	db *sql.DB
}

func NewActivitySQLite(db *sql.DB) *ActivitySQLite { return &ActivitySQLite{db: db} }

var _ Activity = (*ActivitySQLite)(nil)

const timestampLayout = "2006-01-02 15:04:05"

// Append inserts a new activity entry. EventID and OccurredAt are filled when empty.
func (r *ActivitySQLite) Append(ctx context.Context, e models.ActivityEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	var metaPtr *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity (id, occurred_at, type, message, meta)
		VALUES (?, ?, ?, ?, ?)
	`,
		e.EventID,
		e.OccurredAt.Format(timestampLayout),
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Message,
		metaPtr,
	)
	if err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

// List returns events filtered by [from, to] (inclusive) and/or type, ordered ASC.
func (r *ActivitySQLite) List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	var (
		conds []string
		args  []any
	)

	// Bounds are formatted like the stored column so the comparison stays
	// lexicographic-safe.
	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format(timestampLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format(timestampLayout))
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := `SELECT id, occurred_at, type, message, meta FROM activity`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select activity events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.ActivityEvent
	for rows.Next() {
		var (
			e    models.ActivityEvent
			meta sql.NullString
		)
		if err := rows.Scan(&e.EventID, &e.OccurredAt, &e.Type, &e.Message, &meta); err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		e.OccurredAt = e.OccurredAt.UTC()
		if meta.Valid && meta.String != "" {
			var decoded any
			if err := json.Unmarshal([]byte(meta.String), &decoded); err == nil {
				e.Metadata = decoded
			}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}
	return out, nil
}
