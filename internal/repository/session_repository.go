package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/session"
)

// SessionRepository defines the interface for session slot data operations.
// It satisfies session.Persistence so the cache can sit on PostgreSQL.
type SessionRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

// sessionRepository implements SessionRepository
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new instance of SessionRepository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Load retrieves the payload stored under key
func (r *sessionRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var slot models.SessionSlot

	err := r.db.WithContext(ctx).Where("key = ?", key).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return []byte(slot.Payload), nil
}

// Save upserts the payload stored under key
func (r *sessionRepository) Save(ctx context.Context, key string, payload []byte) error {
	slot := models.SessionSlot{
		Key:       key,
		Payload:   string(payload),
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&slot).Error
}

// Delete removes the slot stored under key
func (r *sessionRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&models.SessionSlot{}).Error
}
