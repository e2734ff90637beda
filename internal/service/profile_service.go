package service

import (
	"context"
	"sync"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/internal/normalize"
	"hostel-be-svc/internal/reconcile"
	"hostel-be-svc/internal/session"
	"hostel-be-svc/pkg/logger"
)

const msgNoUser = "No user logged in."

// ProfileService interface defines profile service methods
type ProfileService interface {
	Load(ctx context.Context, override models.UserRecord) (*response.ProfileView, error)
	Snapshot() *response.ProfileView
	Wait()
	Close()
}

// profileService implements ProfileService interface
type profileService struct {
	cache      *session.Cache
	reconciler *reconcile.Reconciler
	fileBase   string
	logger     *logger.Logger

	mu       sync.RWMutex
	snapshot *response.ProfileView
	live     *liveView
}

// NewProfileService creates a new profile service. Uploaded document paths are
// resolved against fileBase.
func NewProfileService(cache *session.Cache, notifier *session.Notifier, reconciler *reconcile.Reconciler, fileBase string, logger *logger.Logger) ProfileService {
	s := &profileService{
		cache:      cache,
		reconciler: reconciler,
		fileBase:   fileBase,
		logger:     logger,
		snapshot:   &response.ProfileView{Message: msgNoUser},
	}
	s.live = newLiveView(notifier, s.onSessionChange)
	return s
}

// Load renders the profile of override, or of the cached user when override
// is nil, and then refreshes it from the backend
func (s *profileService) Load(ctx context.Context, override models.UserRecord) (*response.ProfileView, error) {
	user := override
	if user == nil {
		cached, err := cachedUser(ctx, s.cache)
		if err != nil {
			return nil, err
		}
		user = cached
	}
	if user == nil {
		view := &response.ProfileView{Message: msgNoUser}
		s.store(view)
		return view, nil
	}

	s.store(s.render(user))

	outcome := s.reconciler.Run(ctx, user)
	if outcome.Failed() > 0 {
		s.logger.WithField("failed_sources", outcome.Failed()).Debug("Profile shown with partially stale data")
	}

	view := s.render(outcome.Merged)
	s.store(view)
	return view, nil
}

// Snapshot returns the last rendered profile
func (s *profileService) Snapshot() *response.ProfileView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *profileService) Wait() {
	s.live.Wait()
}

func (s *profileService) Close() {
	s.live.Close()
}

func (s *profileService) onSessionChange(user models.UserRecord) {
	if user == nil {
		s.store(&response.ProfileView{Message: msgNoUser})
		return
	}
	s.live.refresh(func(ctx context.Context) {
		if _, err := s.Load(ctx, user); err != nil {
			s.logger.WithError(err).Warn("Profile refresh failed")
		}
	})
}

func (s *profileService) render(user models.UserRecord) *response.ProfileView {
	profile := normalize.Profile(user, s.fileBase)
	return &response.ProfileView{LoggedIn: true, Profile: &profile}
}

func (s *profileService) store(view *response.ProfileView) {
	s.mu.Lock()
	s.snapshot = view
	s.mu.Unlock()
}
