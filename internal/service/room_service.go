package service

import (
	"context"

	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/internal/normalize"
	"hostel-be-svc/internal/reconcile"
	"hostel-be-svc/internal/session"
	"hostel-be-svc/pkg/logger"
)

// RoomDetailsService interface defines room details service methods
type RoomDetailsService interface {
	Load(ctx context.Context) (*response.RoomDetailsView, error)
}

// roomDetailsService implements RoomDetailsService interface
type roomDetailsService struct {
	cache      *session.Cache
	reconciler *reconcile.Reconciler
	fileBase   string
	logger     *logger.Logger
}

// NewRoomDetailsService creates a new room details service
func NewRoomDetailsService(cache *session.Cache, reconciler *reconcile.Reconciler, fileBase string, logger *logger.Logger) RoomDetailsService {
	return &roomDetailsService{
		cache:      cache,
		reconciler: reconciler,
		fileBase:   fileBase,
		logger:     logger,
	}
}

// Load returns the room and booking assigned to the cached user. When the
// lookup fails the cached room number is still shown next to the message.
func (s *roomDetailsService) Load(ctx context.Context) (*response.RoomDetailsView, error) {
	cached, err := cachedUser(ctx, s.cache)
	if err != nil {
		return nil, err
	}
	if cached == nil {
		return &response.RoomDetailsView{Message: msgNoUser}, nil
	}

	view := &response.RoomDetailsView{
		LoggedIn:   true,
		RoomNumber: normalize.RoomNumber(cached),
	}

	outcome := s.reconciler.Run(ctx, cached)
	if outcome.Skipped {
		view.Message = "Stored user missing id/email"
		return view, nil
	}

	view.RoomNumber = normalize.RoomNumber(outcome.Merged)

	if outcome.Room == nil {
		view.Message = "Could not fetch assigned room"
		for _, src := range outcome.Sources {
			if src.Source == reconcile.SourceRoom && src.Error != "" {
				view.Message = src.Error
			}
		}
		return view, nil
	}

	view.Room = outcome.Room.Room
	view.Booking = outcome.Room.Booking
	if view.Room != nil && view.Room.RoomNo != "" {
		view.RoomNumber = view.Room.RoomNo
	}
	if view.Booking != nil {
		view.ReceiptURL = normalize.ResolveFileURL(s.fileBase, view.Booking.Receipt)
	}
	if view.Room == nil {
		view.Message = "No room assigned yet"
	}

	return view, nil
}
