package service

import (
	"context"
	"path/filepath"

	"frigdash/internal/logfile"
	"frigdash/internal/models"
)

type LogViewerService struct {
	reader *logfile.Reader
}

func NewLogViewerService(reader *logfile.Reader) *LogViewerService {
	return &LogViewerService{reader: reader}
}

// LatestLogFile returns the base name of the newest log file.
func (s *LogViewerService) LatestLogFile(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := s.reader.Latest()
	if err != nil {
		return "", err
	}
	return filepath.Base(path), nil
}

// LogChunk always returns a well-formed chunk; the error is informational.
func (s *LogViewerService) LogChunk(ctx context.Context, req logfile.ChunkRequest) (models.LogChunk, error) {
	if err := ctx.Err(); err != nil {
		return logfile.EmptyChunk(err.Error()), err
	}
	return s.reader.GetChunk(req)
}
