package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"frigdash/internal/models"

	"github.com/google/uuid"
)

const (
	insertAuditSQL = `
		INSERT INTO access_audit (id, occurred_at, path, remote_ip, granted)
		VALUES (?, ?, ?, ?, ?)
	`
	selectRecentAuditSQL = `SELECT id, occurred_at, path, remote_ip, granted FROM access_audit ORDER BY occurred_at DESC LIMIT ?`

	sqliteTimestampLayout = "2006-01-02 15:04:05"
)

type AuditSQLite struct {
	db *sql.DB
}

func NewAuditSQLite(db *sql.DB) *AuditSQLite { return &AuditSQLite{db: db} }

var _ AuditRepo = (*AuditSQLite)(nil)

// Append inserts one entry. Empty ID and zero OccurredAt are filled in.
func (r *AuditSQLite) Append(ctx context.Context, e models.AuditEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, insertAuditSQL,
		e.ID,
		e.OccurredAt.UTC().Format(sqliteTimestampLayout),
		e.Path,
		e.RemoteIP,
		e.Granted,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first.
func (r *AuditSQLite) ListRecent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectRecentAuditSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	out := make([]models.AuditEntry, 0, limit)
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.OccurredAt, &e.Path, &e.RemoteIP, &e.Granted); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.OccurredAt = e.OccurredAt.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
