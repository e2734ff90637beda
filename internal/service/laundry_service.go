package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"hostel-be-svc/internal/backend"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/internal/normalize"
	"hostel-be-svc/internal/session"
	apperrors "hostel-be-svc/pkg/errors"
	"hostel-be-svc/pkg/logger"
)

// LaundryService interface defines laundry service methods
type LaundryService interface {
	Prefill(ctx context.Context) (models.LaundryForm, error)
	Submit(ctx context.Context, form models.LaundryForm, upload *models.Upload) (*response.SubmissionResult, error)
	List(ctx context.Context, phone string) (*response.LaundryListView, error)
	State() response.LaundryState
	Wait()
	Close()
}

// laundryService implements LaundryService interface
type laundryService struct {
	client backend.Client
	cache  *session.Cache
	logger *logger.Logger
	now    func() time.Time

	mu    sync.RWMutex
	state response.LaundryState
	live  *liveView
}

// NewLaundryService creates a new laundry service subscribed to session changes
func NewLaundryService(client backend.Client, cache *session.Cache, notifier *session.Notifier, logger *logger.Logger) LaundryService {
	s := &laundryService{
		client: client,
		cache:  cache,
		logger: logger,
		now:    time.Now,
		state:  response.LaundryState{Phase: response.PhaseIdle},
	}
	s.state.Listing.Requests = []models.LaundryRequest{}
	s.live = newLiveView(notifier, s.onSessionChange)
	return s
}

// Prefill returns a laundry form filled from the cached user
func (s *laundryService) Prefill(ctx context.Context) (models.LaundryForm, error) {
	user, err := cachedUser(ctx, s.cache)
	if err != nil {
		return models.LaundryForm{}, err
	}
	form := laundryFormFor(user)
	s.mu.Lock()
	s.state.Form = form
	s.mu.Unlock()
	return form, nil
}

// Submit validates and posts a laundry request with an optional cloth image,
// then re-lists requests for its phone number
func (s *laundryService) Submit(ctx context.Context, form models.LaundryForm, upload *models.Upload) (*response.SubmissionResult, error) {
	form = trimLaundryForm(form)
	if form.Name == "" || form.Phone == "" || form.GivenCloth == "" || form.RoomNo == "" {
		return nil, apperrors.NewValidationError(msgRequiredFields)
	}
	if form.Date == "" {
		form.Date = s.now().Format(dateLayout)
	}

	s.setPhase(response.PhaseSubmitting)
	err := s.client.SubmitLaundry(ctx, form, upload)
	s.setPhase(response.PhaseIdle)

	if err != nil {
		s.logger.WithError(err).WithField("phone", form.Phone).Error("Failed to submit laundry request")
		if apperrors.Is(err, apperrors.ErrorTypeTransport) {
			return nil, apperrors.NewTransportError("Error submitting request", err)
		}
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"phone":       form.Phone,
		"given_cloth": form.GivenCloth,
		"with_image":  upload != nil,
	}).Info("Laundry request submitted")

	s.mu.Lock()
	s.state.Form = models.LaundryForm{}
	s.mu.Unlock()

	if _, err := s.List(ctx, form.Phone); err != nil {
		s.logger.WithError(err).Warn("Failed to refresh laundry requests after submit")
	}

	return &response.SubmissionResult{Success: true, Message: "Laundry request submitted successfully!"}, nil
}

// List replaces the displayed requests with those filed under phone. Backend
// failures produce an empty list and a message rather than an error.
func (s *laundryService) List(ctx context.Context, phone string) (*response.LaundryListView, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, apperrors.NewValidationError(msgPhoneRequired)
	}

	s.setPhase(response.PhaseLoadingList)
	requests, err := s.client.GetLaundry(ctx, phone)
	s.setPhase(response.PhaseIdle)

	listing := response.LaundryListView{Phone: phone, Requests: requests}
	if err != nil {
		s.logger.WithError(err).WithField("phone", phone).Warn("Failed to list laundry requests")
		listing.Requests = []models.LaundryRequest{}
		listing.Message = apperrors.MessageOf(err, "No requests found")
	} else if len(requests) == 0 {
		listing.Requests = []models.LaundryRequest{}
		listing.Message = "No requests found"
	}

	s.mu.Lock()
	s.state.Listing = listing
	s.mu.Unlock()

	return &listing, nil
}

// State returns a copy of the current view state
func (s *laundryService) State() response.LaundryState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.state
	state.Listing.Requests = append([]models.LaundryRequest{}, s.state.Listing.Requests...)
	return state
}

func (s *laundryService) Wait() {
	s.live.Wait()
}

func (s *laundryService) Close() {
	s.live.Close()
}

func (s *laundryService) onSessionChange(user models.UserRecord) {
	form := laundryFormFor(user)

	s.mu.Lock()
	s.state.Form = form
	if user == nil {
		s.state.Listing = response.LaundryListView{Requests: []models.LaundryRequest{}}
	}
	s.mu.Unlock()

	if form.Phone == "" {
		return
	}
	s.live.refresh(func(ctx context.Context) {
		if _, err := s.List(ctx, form.Phone); err != nil {
			s.logger.WithError(err).Warn("Laundry auto-listing failed")
		}
	})
}

func (s *laundryService) setPhase(phase response.Phase) {
	s.mu.Lock()
	s.state.Phase = phase
	s.mu.Unlock()
}

func laundryFormFor(user models.UserRecord) models.LaundryForm {
	if user == nil {
		return models.LaundryForm{}
	}
	return models.LaundryForm{
		Name:   normalize.Name(user),
		Phone:  normalize.First(user, "phone"),
		RoomNo: normalize.RoomNumber(user),
	}
}

func trimLaundryForm(form models.LaundryForm) models.LaundryForm {
	return models.LaundryForm{
		Name:       strings.TrimSpace(form.Name),
		Phone:      strings.TrimSpace(form.Phone),
		GivenCloth: strings.TrimSpace(form.GivenCloth),
		RoomNo:     strings.TrimSpace(form.RoomNo),
		Date:       strings.TrimSpace(form.Date),
	}
}
