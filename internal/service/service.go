package service

import (
	"context"
	"fmt"

	"frigdash/internal/config"
	"frigdash/internal/logfile"
	"frigdash/internal/memory"
	"frigdash/internal/models"
	"frigdash/internal/repository"
	"frigdash/internal/status"
)

// LogViewer pages through the newest frigbot log file.
type LogViewer interface {
	LatestLogFile(ctx context.Context) (string, error)
	LogChunk(ctx context.Context, req logfile.ChunkRequest) (models.LogChunk, error)
}

// Monitoring reports the watched service's state and uptime.
type Monitoring interface {
	ServiceStatus(ctx context.Context) models.StatusResult
}

// Access checks the shared-secret key.
type Access interface {
	Allow(key string) bool
}

// Memory exposes the memory files directory.
type Memory interface {
	ListMemories(ctx context.Context) ([]models.MemoryFile, error)
	ReadMemory(ctx context.Context, name string) ([]byte, error)
}

// Audit records attempts on key-gated routes.
type Audit interface {
	Record(ctx context.Context, e models.AuditEntry) error
	Recent(ctx context.Context, limit int) ([]models.AuditEntry, error)
}

// Service aggregates all sub-services for the HTTP layer.
type Service struct {
	LogViewer
	Monitoring
	Access
	Memory
	Audit
}

// NewService wires configuration and the repository layer into services.
func NewService(cfg config.Config, repos *repository.Repository) (*Service, error) {
	access, err := NewAccessService(cfg.Auth.Key, cfg.Auth.KeyHash)
	if err != nil {
		return nil, fmt.Errorf("auth config: %w", err)
	}

	locator := logfile.NewLocator(cfg.Logs.Dir, cfg.Logs.Pattern)
	statusReader := status.NewReader(status.NewSource(cfg.Status.Backend), cfg.Status.Timeout)

	return &Service{
		LogViewer:  NewLogViewerService(logfile.NewReader(locator)),
		Monitoring: NewMonitoringService(statusReader, cfg.Status.Service),
		Access:     access,
		Memory:     NewMemoryService(memory.NewStore(cfg.Memory.Dir)),
		Audit:      NewAuditService(repos.AuditRepo),
	}, nil
}
