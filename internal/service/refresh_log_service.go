package service

import (
	"context"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/repository"
	apperrors "hostel-be-svc/pkg/errors"
	"hostel-be-svc/pkg/logger"
)

// RefreshLogService exposes the history of scheduled session refreshes
type RefreshLogService interface {
	GetRecent(ctx context.Context, limit int) ([]*models.RefreshLog, error)
}

type refreshLogService struct {
	refreshLogRepo repository.RefreshLogRepository
	logger         *logger.Logger
}

// NewRefreshLogService creates a new refresh log service. A nil repository
// means refresh runs are not persisted and the history is always empty.
func NewRefreshLogService(refreshLogRepo repository.RefreshLogRepository, logger *logger.Logger) RefreshLogService {
	return &refreshLogService{
		refreshLogRepo: refreshLogRepo,
		logger:         logger,
	}
}

func (s *refreshLogService) GetRecent(ctx context.Context, limit int) ([]*models.RefreshLog, error) {
	if s.refreshLogRepo == nil {
		return []*models.RefreshLog{}, nil
	}

	logs, err := s.refreshLogRepo.GetRecentRefreshLogs(ctx, limit)
	if err != nil {
		s.logger.WithError(err).WithField("limit", limit).Error("Failed to get refresh logs")
		return nil, apperrors.NewInternalError("failed to get refresh logs", err)
	}
	return logs, nil
}
