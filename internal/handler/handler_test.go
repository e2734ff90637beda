package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hostel-be-svc/internal/backend/backendmock"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/reconcile"
	"hostel-be-svc/internal/service"
	"hostel-be-svc/internal/session"
	apperrors "hostel-be-svc/pkg/errors"
	"hostel-be-svc/pkg/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type testEnv struct {
	client   *backendmock.Client
	cache    *session.Cache
	notifier *session.Notifier
	logger   *logger.Logger
	router   *gin.Engine
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()
	client := new(backendmock.Client)
	return &testEnv{
		client:   client,
		cache:    session.NewCache(session.NewMemoryPersistence(), "lv_current_user", log),
		notifier: session.NewNotifier(log),
		logger:   log,
		router:   gin.New(),
	}
}

func (e *testEnv) do(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	var body envelope
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	data, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthCheck(t *testing.T) {
	e := newTestEnv()
	reconciler := reconcile.NewReconciler(e.client, e.cache, e.logger)
	SetupRoutes(
		e.router,
		service.NewAuthService(e.client, e.cache, e.notifier, e.logger),
		service.NewDashboardService(e.client, e.cache, e.notifier, reconciler, "₹", e.logger),
		service.NewProfileService(e.cache, e.notifier, reconciler, "", e.logger),
		service.NewRoomDetailsService(e.cache, reconciler, "", e.logger),
		service.NewFoodMenuService(e.client, e.logger),
		service.NewComplaintService(e.client, e.cache, e.notifier, e.logger),
		service.NewLaundryService(e.client, e.cache, e.notifier, e.logger),
		service.NewRefreshLogService(nil, e.logger),
		e.logger,
	)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hostel Backend Service")

	w = httptest.NewRecorder()
	e.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/refresh-logs", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestAuthHandler_Login(t *testing.T) {
	e := newTestEnv()
	h := NewAuthHandler(service.NewAuthService(e.client, e.cache, e.notifier, e.logger), e.logger)
	e.router.POST("/login", h.Login)
	e.router.GET("/session", h.Session)

	e.client.On("Login", mock.Anything, "a@b.com", "pw").
		Return(models.UserRecord{"id": "7", "name": "Abhay", "password": "pw"}, nil)

	w, body := e.do(jsonRequest(http.MethodPost, "/login", LoginRequest{Email: "a@b.com", Password: "pw"}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.NotContains(t, string(body.Data), "password")

	w, body = e.do(httptest.NewRequest(http.MethodGet, "/session", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(body.Data), `"name":"Abhay"`)
}

func TestAuthHandler_LoginErrors(t *testing.T) {
	e := newTestEnv()
	h := NewAuthHandler(service.NewAuthService(e.client, e.cache, e.notifier, e.logger), e.logger)
	e.router.POST("/login", h.Login)

	e.client.On("Login", mock.Anything, "a@b.com", "bad").
		Return(nil, apperrors.NewApplicationError("Invalid email or password"))
	e.client.On("Login", mock.Anything, "down@b.com", "pw").
		Return(nil, apperrors.NewTransportError("Network/server error", context.DeadlineExceeded))

	tests := []struct {
		name    string
		req     *http.Request
		status  int
		message string
	}{
		{
			name:    "malformed body",
			req:     httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{")),
			status:  http.StatusBadRequest,
			message: "Invalid request body",
		},
		{
			name:    "missing password",
			req:     jsonRequest(http.MethodPost, "/login", LoginRequest{Email: "a@b.com"}),
			status:  http.StatusBadRequest,
			message: "Please enter email and password",
		},
		{
			name:    "rejected",
			req:     jsonRequest(http.MethodPost, "/login", LoginRequest{Email: "a@b.com", Password: "bad"}),
			status:  http.StatusUnprocessableEntity,
			message: "Invalid email or password",
		},
		{
			name:    "backend down",
			req:     jsonRequest(http.MethodPost, "/login", LoginRequest{Email: "down@b.com", Password: "pw"}),
			status:  http.StatusBadGateway,
			message: "Network/server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := e.do(tt.req)
			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestAuthHandler_SessionWithoutLogin(t *testing.T) {
	e := newTestEnv()
	h := NewAuthHandler(service.NewAuthService(e.client, e.cache, e.notifier, e.logger), e.logger)
	e.router.GET("/session", h.Session)
	e.router.POST("/logout", h.Logout)

	w, body := e.do(httptest.NewRequest(http.MethodGet, "/session", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No user logged in.", body.Message)

	w, _ = e.do(httptest.NewRequest(http.MethodPost, "/logout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardHandler_NoSession(t *testing.T) {
	e := newTestEnv()
	reconciler := reconcile.NewReconciler(e.client, e.cache, e.logger)
	svc := service.NewDashboardService(e.client, e.cache, e.notifier, reconciler, "₹", e.logger)
	defer svc.Close()
	e.router.GET("/dashboard", NewDashboardHandler(svc, e.logger).GetDashboard)

	w, body := e.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(body.Data), `"logged_in":false`)
	e.client.AssertNotCalled(t, "GetFoodMenu", mock.Anything)
}

func TestRoomHandler_NoSession(t *testing.T) {
	e := newTestEnv()
	reconciler := reconcile.NewReconciler(e.client, e.cache, e.logger)
	e.router.GET("/room", NewRoomHandler(service.NewRoomDetailsService(e.cache, reconciler, "", e.logger), e.logger).GetRoomDetails)

	w, body := e.do(httptest.NewRequest(http.MethodGet, "/room", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(body.Data), "No user logged in.")
}

func TestFoodMenuHandler_SearchAndEntries(t *testing.T) {
	e := newTestEnv()
	e.router.GET("/food-menu", NewFoodMenuHandler(service.NewFoodMenuService(e.client, e.logger), e.logger).GetFoodMenu)

	e.client.On("GetFoodMenu", mock.Anything).Return([]models.MenuEntry{
		{Day: "Monday", Breakfast: "Poha", Lunch: "Paneer Pulao", Dinner: "Roti"},
		{Day: "Tuesday", Breakfast: "Idli", Lunch: "Rajma", Dinner: "Matar Paneer"},
		{Day: "Wednesday", Breakfast: "Upma", Lunch: "Dal", Dinner: "Khichdi"},
	}, nil)

	w, body := e.do(httptest.NewRequest(http.MethodGet, "/food-menu?search=PANEER&entries=1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Entries []models.MenuEntry `json:"entries"`
		Summary string             `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &page))
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "Monday", page.Entries[0].Day)
	assert.Equal(t, "Showing 1 of 2 (filtered from 3)", page.Summary)
}

func TestComplaintHandler_Submit(t *testing.T) {
	e := newTestEnv()
	svc := service.NewComplaintService(e.client, e.cache, e.notifier, e.logger)
	defer svc.Close()
	h := NewComplaintHandler(svc, e.logger)
	e.router.POST("/complaints", h.SubmitComplaint)
	e.router.GET("/complaints", h.ListComplaints)

	e.client.On("SubmitComplaint", mock.Anything, mock.MatchedBy(func(f models.ComplaintForm) bool {
		return f.Phone == "555" && f.RoomNo == "LV216" && f.Date != ""
	})).Return(nil)
	e.client.On("GetComplaints", mock.Anything, "555").Return([]models.ComplaintTicket{}, nil)

	form := url.Values{}
	form.Set("complaint", "Fan broken")
	form.Set("name", "Abhay")
	form.Set("phone", "555")
	form.Set("room_no", "LV216")
	req := httptest.NewRequest(http.MethodPost, "/complaints", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w, body := e.do(req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Complaint submitted successfully!", body.Message)
	e.client.AssertExpectations(t)

	w, body = e.do(jsonRequest(http.MethodPost, "/complaints", models.ComplaintForm{Phone: "555"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please fill all required fields.", body.Message)
}

func TestComplaintHandler_ListRequiresPhone(t *testing.T) {
	e := newTestEnv()
	svc := service.NewComplaintService(e.client, e.cache, e.notifier, e.logger)
	defer svc.Close()
	e.router.GET("/complaints", NewComplaintHandler(svc, e.logger).ListComplaints)

	w, body := e.do(httptest.NewRequest(http.MethodGet, "/complaints?phone=%20", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter your phone number", body.Message)
}

func TestLaundryHandler_SubmitWithImage(t *testing.T) {
	e := newTestEnv()
	svc := service.NewLaundryService(e.client, e.cache, e.notifier, e.logger)
	defer svc.Close()
	e.router.POST("/laundry", NewLaundryHandler(svc, e.logger).SubmitRequest)

	e.client.On("SubmitLaundry", mock.Anything, mock.MatchedBy(func(f models.LaundryForm) bool {
		return f.GivenCloth == "6" && f.Date == "2026-01-05"
	}), "jpeg-bytes").Return(nil)
	e.client.On("GetLaundry", mock.Anything, "555").Return([]models.LaundryRequest{{ID: "1", Phone: "555"}}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range map[string]string{
		"name": "Abhay", "phone": "555", "given_cloth": "6", "room_no": "LV216", "date": "2026-01-05",
	} {
		require.NoError(t, mw.WriteField(key, value))
	}
	part, err := mw.CreateFormFile("cloth_image", "clothes.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/laundry", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w, body := e.do(req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Laundry request submitted successfully!", body.Message)
	e.client.AssertExpectations(t)
}

func TestLaundryHandler_ListFailureIsEmptyList(t *testing.T) {
	e := newTestEnv()
	svc := service.NewLaundryService(e.client, e.cache, e.notifier, e.logger)
	defer svc.Close()
	e.router.GET("/laundry", NewLaundryHandler(svc, e.logger).ListRequests)

	e.client.On("GetLaundry", mock.Anything, "555").Return(nil, apperrors.NewApplicationError("No requests found"))

	w, body := e.do(httptest.NewRequest(http.MethodGet, "/laundry?phone=555", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(body.Data), `"requests":[]`)
	assert.Contains(t, string(body.Data), "No requests found")
}
