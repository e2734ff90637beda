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

const (
	msgRequiredFields = "Please fill all required fields."
	msgPhoneRequired  = "Please enter your phone number"
	dateLayout        = "2006-01-02"
)

// ComplaintService interface defines complaint service methods
type ComplaintService interface {
	Prefill(ctx context.Context) (models.ComplaintForm, error)
	Submit(ctx context.Context, form models.ComplaintForm) (*response.SubmissionResult, error)
	List(ctx context.Context, phone string) (*response.ComplaintListView, error)
	State() response.ComplaintState
	Wait()
	Close()
}

// complaintService implements ComplaintService interface
type complaintService struct {
	client backend.Client
	cache  *session.Cache
	logger *logger.Logger
	now    func() time.Time

	mu    sync.RWMutex
	state response.ComplaintState
	live  *liveView
}

// NewComplaintService creates a new complaint service subscribed to session changes
func NewComplaintService(client backend.Client, cache *session.Cache, notifier *session.Notifier, logger *logger.Logger) ComplaintService {
	s := &complaintService{
		client: client,
		cache:  cache,
		logger: logger,
		now:    time.Now,
		state:  response.ComplaintState{Phase: response.PhaseIdle},
	}
	s.state.Listing.Complaints = []models.ComplaintTicket{}
	s.live = newLiveView(notifier, s.onSessionChange)
	return s
}

// Prefill returns a complaint form filled from the cached user
func (s *complaintService) Prefill(ctx context.Context) (models.ComplaintForm, error) {
	user, err := cachedUser(ctx, s.cache)
	if err != nil {
		return models.ComplaintForm{}, err
	}
	form := complaintFormFor(user)
	s.mu.Lock()
	s.state.Form = form
	s.mu.Unlock()
	return form, nil
}

// Submit validates and posts a complaint, then re-lists complaints for the
// phone number it was filed under
func (s *complaintService) Submit(ctx context.Context, form models.ComplaintForm) (*response.SubmissionResult, error) {
	form = trimComplaintForm(form)
	if form.Complaint == "" || form.Phone == "" || form.Name == "" || form.RoomNo == "" {
		return nil, apperrors.NewValidationError(msgRequiredFields)
	}
	if form.Date == "" {
		form.Date = s.now().Format(dateLayout)
	}

	s.setPhase(response.PhaseSubmitting)
	err := s.client.SubmitComplaint(ctx, form)
	s.setPhase(response.PhaseIdle)

	if err != nil {
		s.logger.WithError(err).WithField("phone", form.Phone).Error("Failed to submit complaint")
		if apperrors.Is(err, apperrors.ErrorTypeTransport) {
			return nil, apperrors.NewTransportError("Network error while submitting complaint", err)
		}
		return nil, err
	}

	s.logger.WithField("phone", form.Phone).Info("Complaint submitted")

	s.mu.Lock()
	s.state.Form = models.ComplaintForm{}
	s.mu.Unlock()

	if _, err := s.List(ctx, form.Phone); err != nil {
		s.logger.WithError(err).Warn("Failed to refresh complaints after submit")
	}

	return &response.SubmissionResult{Success: true, Message: "Complaint submitted successfully!"}, nil
}

// List replaces the displayed complaints with those filed under phone. Backend
// failures produce an empty list and a message rather than an error.
func (s *complaintService) List(ctx context.Context, phone string) (*response.ComplaintListView, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, apperrors.NewValidationError(msgPhoneRequired)
	}

	s.setPhase(response.PhaseLoadingList)
	complaints, err := s.client.GetComplaints(ctx, phone)
	s.setPhase(response.PhaseIdle)

	listing := response.ComplaintListView{Phone: phone, Complaints: complaints}
	if err != nil {
		s.logger.WithError(err).WithField("phone", phone).Warn("Failed to list complaints")
		listing.Complaints = []models.ComplaintTicket{}
		listing.Message = apperrors.MessageOf(err, "No complaints found")
	} else if len(complaints) == 0 {
		listing.Complaints = []models.ComplaintTicket{}
		listing.Message = "No complaints found"
	}

	s.mu.Lock()
	s.state.Listing = listing
	s.mu.Unlock()

	return &listing, nil
}

// State returns a copy of the current view state
func (s *complaintService) State() response.ComplaintState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := s.state
	state.Listing.Complaints = append([]models.ComplaintTicket{}, s.state.Listing.Complaints...)
	return state
}

func (s *complaintService) Wait() {
	s.live.Wait()
}

func (s *complaintService) Close() {
	s.live.Close()
}

func (s *complaintService) onSessionChange(user models.UserRecord) {
	form := complaintFormFor(user)

	s.mu.Lock()
	s.state.Form = form
	if user == nil {
		s.state.Listing = response.ComplaintListView{Complaints: []models.ComplaintTicket{}}
	}
	s.mu.Unlock()

	if form.Phone == "" {
		return
	}
	s.live.refresh(func(ctx context.Context) {
		if _, err := s.List(ctx, form.Phone); err != nil {
			s.logger.WithError(err).Warn("Complaint auto-listing failed")
		}
	})
}

func (s *complaintService) setPhase(phase response.Phase) {
	s.mu.Lock()
	s.state.Phase = phase
	s.mu.Unlock()
}

func complaintFormFor(user models.UserRecord) models.ComplaintForm {
	if user == nil {
		return models.ComplaintForm{}
	}
	return models.ComplaintForm{
		Name:   normalize.Name(user),
		Phone:  normalize.First(user, "phone"),
		RoomNo: normalize.RoomNumber(user),
	}
}

func trimComplaintForm(form models.ComplaintForm) models.ComplaintForm {
	return models.ComplaintForm{
		Date:      strings.TrimSpace(form.Date),
		Complaint: strings.TrimSpace(form.Complaint),
		Name:      strings.TrimSpace(form.Name),
		Phone:     strings.TrimSpace(form.Phone),
		RoomNo:    strings.TrimSpace(form.RoomNo),
	}
}
