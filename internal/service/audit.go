package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"frigdash/internal/models"
	"frigdash/internal/repository"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

var errAuditPathEmpty = errors.New("audit entry path is empty")

type AuditService struct {
	repo repository.AuditRepo
}

func NewAuditService(repo repository.AuditRepo) *AuditService {
	return &AuditService{repo: repo}
}

// normalizeAuditLimit maps non-positive to the default and caps the rest.
func normalizeAuditLimit(limit int) int {
	if limit <= 0 {
		return defaultAuditLimit
	}
	if limit > maxAuditLimit {
		return maxAuditLimit
	}
	return limit
}

func (s *AuditService) Record(ctx context.Context, e models.AuditEntry) error {
	e.Path = strings.TrimSpace(e.Path)
	if e.Path == "" {
		return errAuditPathEmpty
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}
	e.OccurredAt = e.OccurredAt.UTC()
	return s.repo.Append(ctx, e)
}

func (s *AuditService) Recent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	return s.repo.ListRecent(ctx, normalizeAuditLimit(limit))
}
