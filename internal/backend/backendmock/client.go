// Package backendmock provides a testify mock of backend.Client
package backendmock

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"hostel-be-svc/internal/backend"
	"hostel-be-svc/internal/models"
)

// Client is a mock backend.Client
type Client struct {
	mock.Mock
}

var _ backend.Client = (*Client)(nil)

func (m *Client) Login(ctx context.Context, email, password string) (models.UserRecord, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.UserRecord), args.Error(1)
}

func (m *Client) GetUser(ctx context.Context, id string) (models.UserRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.UserRecord), args.Error(1)
}

func (m *Client) GetUserRoom(ctx context.Context, lookup backend.RoomLookup) (*models.RoomAssignment, error) {
	args := m.Called(ctx, lookup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RoomAssignment), args.Error(1)
}

func (m *Client) GetFoodMenu(ctx context.Context) ([]models.MenuEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuEntry), args.Error(1)
}

func (m *Client) SubmitComplaint(ctx context.Context, form models.ComplaintForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *Client) GetComplaints(ctx context.Context, phone string) ([]models.ComplaintTicket, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ComplaintTicket), args.Error(1)
}

// SubmitLaundry passes the upload body to Called as a string ("" when absent)
func (m *Client) SubmitLaundry(ctx context.Context, form models.LaundryForm, upload *models.Upload) error {
	content := ""
	if upload != nil && upload.Body != nil {
		data, _ := io.ReadAll(upload.Body)
		content = string(data)
	}
	args := m.Called(ctx, form, content)
	return args.Error(0)
}

func (m *Client) GetLaundry(ctx context.Context, phone string) ([]models.LaundryRequest, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LaundryRequest), args.Error(1)
}
