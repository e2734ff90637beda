package service

import (
	"context"
	"strings"

	"hostel-be-svc/internal/backend"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/normalize"
	"hostel-be-svc/internal/session"
	apperrors "hostel-be-svc/pkg/errors"
	"hostel-be-svc/pkg/logger"
)

// AuthService interface defines login and session methods
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.UserRecord, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (models.UserRecord, error)
}

// authService implements AuthService interface
type authService struct {
	client   backend.Client
	cache    *session.Cache
	notifier *session.Notifier
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(client backend.Client, cache *session.Cache, notifier *session.Notifier, logger *logger.Logger) AuthService {
	return &authService{
		client:   client,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// Login authenticates against the backend, caches the returned user without
// its password and broadcasts it to every subscribed view
func (s *authService) Login(ctx context.Context, email, password string) (models.UserRecord, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("Please enter email and password")
	}

	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.logger.WithError(err).WithField("email", email).Warn("Login failed")
		return nil, err
	}
	user = normalize.StripSensitive(user)

	if err := session.Publish(ctx, s.cache, s.notifier, user); err != nil {
		s.logger.WithError(err).WithField("email", email).Error("Failed to store session user")
		return nil, apperrors.NewInternalError("failed to store session", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"email":   email,
		"user_id": normalize.UserID(user),
	}).Info("User logged in")

	return user, nil
}

// Logout clears the session and tells every view the user is gone
func (s *authService) Logout(ctx context.Context) error {
	if err := s.cache.Clear(ctx); err != nil {
		return apperrors.NewInternalError("failed to clear session", err)
	}
	s.notifier.Notify(nil)
	s.logger.Info("User logged out")
	return nil
}

// Current returns the cached user or a NO_SESSION error
func (s *authService) Current(ctx context.Context) (models.UserRecord, error) {
	return s.cache.Get(ctx)
}
