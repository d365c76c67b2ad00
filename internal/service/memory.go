package service

import (
	"context"

	"frigdash/internal/memory"
	"frigdash/internal/models"
)

type MemoryService struct {
	store *memory.Store
}

func NewMemoryService(store *memory.Store) *MemoryService {
	return &MemoryService{store: store}
}

func (s *MemoryService) ListMemories(ctx context.Context) ([]models.MemoryFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.List()
}

func (s *MemoryService) ReadMemory(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Read(name)
}
