package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/normalize"
	"hostel-be-svc/internal/reconcile"
	"hostel-be-svc/internal/repository"
	"hostel-be-svc/internal/session"
	"hostel-be-svc/pkg/logger"
)

// JobCodeSessionRefresh identifies session refresh runs in refresh_logs
const JobCodeSessionRefresh = "SESSION_REFRESH"

// Refresh run statuses
const (
	StatusStart   = "START"
	StatusSuccess = "SUCCESS"
	StatusPartial = "PARTIAL"
	StatusSkipped = "SKIPPED"
	StatusFailed  = "FAILED"
)

// SessionRefreshScheduler periodically reconciles the cached session user
// with the backend so views opened later start from fresh data
type SessionRefreshScheduler struct {
	cache          *session.Cache
	reconciler     *reconcile.Reconciler
	refreshLogRepo repository.RefreshLogRepository
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
	timeout        time.Duration
	marshal        func(v interface{}) ([]byte, error)
}

// NewSessionRefreshScheduler creates a new session refresh scheduler
func NewSessionRefreshScheduler(cache *session.Cache, reconciler *reconcile.Reconciler, refreshLogRepo repository.RefreshLogRepository, logger *logger.Logger, cronExpression string) *SessionRefreshScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &SessionRefreshScheduler{
		cache:          cache,
		reconciler:     reconciler,
		refreshLogRepo: refreshLogRepo,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
		timeout:        time.Minute,
		marshal:        json.Marshal,
	}
}

// Start schedules the refresh job and starts the cron runner
func (s *SessionRefreshScheduler) Start() error {
	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling session refresh job")
	_, err := s.cron.AddFunc(s.cronExpression, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule session refresh job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Session refresh scheduler started successfully")

	return nil
}

// Stop waits for a running job and stops the scheduler
func (s *SessionRefreshScheduler) Stop() {
	s.logger.Info("Stopping session refresh scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Session refresh scheduler stopped successfully")
}

// RunOnce performs one refresh and returns its final status
func (s *SessionRefreshScheduler) RunOnce(ctx context.Context) string {
	docID := uuid.New().String()
	s.writeLog(ctx, docID, "Starting scheduled session refresh", StatusStart, "")

	cached, err := s.cache.Get(ctx)
	if errors.Is(err, session.ErrNoSession) {
		s.writeLog(ctx, docID, "No user logged in", StatusSkipped, "")
		return StatusSkipped
	}
	if err != nil {
		s.writeLog(ctx, docID, fmt.Sprintf("Failed to read session: %v", err), StatusFailed, "")
		s.logger.WithError(err).Error("Session refresh could not read the cache")
		return StatusFailed
	}

	userID := normalize.UserID(cached)
	outcome := s.reconciler.Run(ctx, cached)

	sourcesJSON, err := s.marshal(outcome.Sources)
	if err != nil {
		s.logger.WithError(err).WithField("document_id", docID).Warn("Failed to encode refresh sources for log message")
		sourcesJSON = []byte("[]")
	}
	var status, message string
	switch {
	case outcome.Skipped:
		status, message = StatusSkipped, "Stored user missing id/email"
	case outcome.Failed() == 0:
		status, message = StatusSuccess, fmt.Sprintf("Session refreshed (changed=%t): %s", outcome.Changed, sourcesJSON)
	case outcome.Succeeded() > 0:
		status, message = StatusPartial, fmt.Sprintf("Session partially refreshed: %s", sourcesJSON)
	default:
		status, message = StatusFailed, fmt.Sprintf("All sources failed: %s", sourcesJSON)
	}

	s.writeLog(ctx, docID, message, status, userID)
	s.logger.WithFields(map[string]interface{}{
		"document_id": docID,
		"status":      status,
		"changed":     outcome.Changed,
	}).Info("Scheduled session refresh completed")

	return status
}

// writeLog creates a new refresh log entry in the database
func (s *SessionRefreshScheduler) writeLog(ctx context.Context, documentID, message, status, userID string) {
	if s.refreshLogRepo == nil {
		return
	}

	now := time.Now()
	jobCode := JobCodeSessionRefresh
	entry := &models.RefreshLog{
		DocumentID: &documentID,
		JobCode:    &jobCode,
		Message:    &message,
		Status:     &status,
		CreatedAt:  &now,
		UpdatedAt:  &now,
	}
	if userID != "" {
		entry.UserID = &userID
	}

	if err := s.refreshLogRepo.CreateRefreshLog(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create refresh log entry")
	}
}
