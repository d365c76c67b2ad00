package service

import (
	"context"

	"frigdash/internal/models"
	"frigdash/internal/status"
)

type MonitoringService struct {
	reader  *status.Reader
	service string
}

func NewMonitoringService(reader *status.Reader, serviceName string) *MonitoringService {
	return &MonitoringService{reader: reader, service: serviceName}
}

// ServiceStatus returns Found=false when the process manager can't answer.
func (s *MonitoringService) ServiceStatus(ctx context.Context) models.StatusResult {
	if s.service == "" {
		return models.StatusResult{}
	}
	return s.reader.Get(ctx, s.service)
}
