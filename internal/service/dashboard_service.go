package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"hostel-be-svc/internal/backend"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/internal/normalize"
	"hostel-be-svc/internal/reconcile"
	"hostel-be-svc/internal/session"
	apperrors "hostel-be-svc/pkg/errors"
	"hostel-be-svc/pkg/logger"
)

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	Load(ctx context.Context) (*response.DashboardView, error)
	Snapshot() *response.DashboardView
	Wait()
	Close()
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	client         backend.Client
	cache          *session.Cache
	reconciler     *reconcile.Reconciler
	currencySymbol string
	logger         *logger.Logger
	now            func() time.Time

	mu       sync.RWMutex
	snapshot *response.DashboardView
	live     *liveView
}

// NewDashboardService creates a new dashboard service subscribed to session changes
func NewDashboardService(client backend.Client, cache *session.Cache, notifier *session.Notifier, reconciler *reconcile.Reconciler, currencySymbol string, logger *logger.Logger) DashboardService {
	s := &dashboardService{
		client:         client,
		cache:          cache,
		reconciler:     reconciler,
		currencySymbol: currencySymbol,
		logger:         logger,
		now:            time.Now,
	}
	s.snapshot = s.render(nil, nil, nil)
	s.live = newLiveView(notifier, s.onSessionChange)
	return s
}

// Load renders the dashboard from the cached user, then refreshes it from the
// backend. Backend failures only show up in the per-source status.
func (s *dashboardService) Load(ctx context.Context) (*response.DashboardView, error) {
	cached, err := cachedUser(ctx, s.cache)
	if err != nil {
		return nil, err
	}
	if cached == nil {
		view := s.render(nil, nil, nil)
		s.store(view)
		return view, nil
	}

	s.store(s.render(cached, nil, nil))

	menuFuture := reconcile.Go(ctx, reconcile.SourceMenu, s.client.GetFoodMenu)
	outcome := s.reconciler.Run(ctx, cached)
	menu := menuFuture.Await()

	sources := append([]reconcile.SourceStatus{}, outcome.Sources...)
	if menu.OK() {
		sources = append(sources, reconcile.SourceStatus{Source: menu.Source, OK: true})
	} else {
		s.logger.WithError(menu.Err).Warn("Failed to fetch menu for dashboard")
		sources = append(sources, reconcile.SourceStatus{Source: menu.Source, Error: apperrors.MessageOf(menu.Err, menu.Err.Error())})
	}

	view := s.render(outcome.Merged, outcome.Room, menu.Value)
	view.Sources = sources
	s.store(view)

	return view, nil
}

// Snapshot returns the last rendered dashboard
func (s *dashboardService) Snapshot() *response.DashboardView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *dashboardService) Wait() {
	s.live.Wait()
}

func (s *dashboardService) Close() {
	s.live.Close()
}

func (s *dashboardService) onSessionChange(user models.UserRecord) {
	s.store(s.render(user, nil, nil))
	if user == nil {
		return
	}
	s.live.refresh(func(ctx context.Context) {
		if _, err := s.Load(ctx); err != nil {
			s.logger.WithError(err).Warn("Dashboard refresh failed")
		}
	})
}

func (s *dashboardService) store(view *response.DashboardView) {
	s.mu.Lock()
	s.snapshot = view
	s.mu.Unlock()
}

func (s *dashboardService) render(user models.UserRecord, room *models.RoomAssignment, menu []models.MenuEntry) *response.DashboardView {
	weekday := s.now().Weekday().String()
	view := &response.DashboardView{
		LoggedIn:      user != nil,
		Name:          normalize.Name(user),
		RoomNumber:    normalize.RoomNumber(user),
		RentDue:       formatRent(normalize.MonthlyFee(user), s.currencySymbol),
		DueDate:       normalize.First(user, normalize.DueDateKeys...),
		PaymentStatus: normalize.Status("", normalize.ReceiptDefaultStatus),
		Weekday:       weekday,
		TodayMenu:     []response.MealSlot{},
		Notifications: []response.Notification{},
	}

	if room != nil {
		if room.Room != nil {
			if room.Room.RoomNo != "" {
				view.RoomNumber = room.Room.RoomNo
			}
			view.RoomType = "Non-AC Room"
			if room.Room.AC {
				view.RoomType = "AC Room"
			}
		}
		if room.Booking != nil {
			view.PaymentStatus = room.Booking.ReceiptStatus
		}
	}

	if today, ok := normalize.MenuForDay(menu, weekday); ok {
		view.TodayMenu = []response.MealSlot{
			{Meal: "Breakfast", Window: "8:00 - 9:00 AM", Items: today.Breakfast},
			{Meal: "Lunch", Window: "12:00 - 2:00 PM", Items: today.Lunch},
			{Meal: "Dinner", Window: "8:00 - 9:00 PM", Items: today.Dinner},
		}
		if today.Dinner != "" {
			view.Notifications = append(view.Notifications, response.Notification{
				Type:    "food",
				Message: "Today's special: " + today.Dinner,
			})
		}
	}

	if user != nil && !view.PaymentStatus.Done {
		message := "Rent payment pending"
		if view.DueDate != "" {
			message = "Rent payment due on " + view.DueDate
		}
		view.Notifications = append([]response.Notification{{Type: "payment", Message: message}}, view.Notifications...)
	}

	return view
}

// formatRent renders a numeric fee with digit grouping. Anything that does
// not parse as a number is shown as sent.
func formatRent(raw, symbol string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return raw
	}
	if amount == float64(int64(amount)) {
		return symbol + humanize.Comma(int64(amount))
	}
	return symbol + humanize.CommafWithDigits(amount, 2)
}
