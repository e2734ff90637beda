package repository

import (
	"context"

	"gorm.io/gorm"

	"hostel-be-svc/internal/models"
)

// RefreshLogRepository defines the interface for refresh log data operations
type RefreshLogRepository interface {
	CreateRefreshLog(ctx context.Context, log *models.RefreshLog) error
	GetRecentRefreshLogs(ctx context.Context, limit int) ([]*models.RefreshLog, error)
}

// refreshLogRepository implements RefreshLogRepository
type refreshLogRepository struct {
	db *gorm.DB
}

// NewRefreshLogRepository creates a new instance of RefreshLogRepository
func NewRefreshLogRepository(db *gorm.DB) RefreshLogRepository {
	return &refreshLogRepository{
		db: db,
	}
}

// CreateRefreshLog creates a new refresh log record
func (r *refreshLogRepository) CreateRefreshLog(ctx context.Context, log *models.RefreshLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// GetRecentRefreshLogs returns the newest refresh logs first
func (r *refreshLogRepository) GetRecentRefreshLogs(ctx context.Context, limit int) ([]*models.RefreshLog, error) {
	var logs []*models.RefreshLog

	if limit <= 0 {
		limit = 20
	}

	err := r.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, err
	}

	return logs, nil
}
