package repository

import (
	"context"
	"database/sql"

	"frigdash/internal/models"
)

type AuditRepo interface {
	Append(ctx context.Context, e models.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]models.AuditEntry, error)
}

type Repository struct {
	AuditRepo AuditRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		AuditRepo: NewAuditSQLite(db),
	}
}
