package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-be-svc/internal/models"
	apperrors "hostel-be-svc/pkg/errors"
	"hostel-be-svc/pkg/logger"
)

// fakeAPI serves canned bodies per "/<endpoint>.php" path and records requests
type fakeAPI struct {
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []*http.Request
}

func newFakeAPI(t *testing.T) (*fakeAPI, Client) {
	api := &fakeAPI{handlers: map[string]http.HandlerFunc{}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.requests = append(api.requests, r)
		name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".php")
		h, ok := api.handlers[name]
		api.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(server.Close)

	return api, NewHTTPClient(server.URL+"/", 5*time.Second, logger.NewNopLogger())
}

func (f *fakeAPI) queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r.URL.RawQuery)
	}
	return out
}

func (f *fakeAPI) json(endpoint string, status int, body string) {
	f.handlers[endpoint] = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func TestLogin_StripsPassword(t *testing.T) {
	api, client := newFakeAPI(t)
	var got map[string]string
	api.handlers[EndpointLogin] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"success":true,"user":{"id":1,"name":"A","phone":"555","password":"hash"}}`)
	}

	user, err := client.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"email": "a@b.com", "password": "x"}, got)
	assert.Equal(t, json.Number("1"), user["id"])
	assert.Equal(t, "A", user["name"])
	assert.NotContains(t, user, "password")
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		errType apperrors.ErrorType
		message string
	}{
		{"server message", 200, `{"success":false,"message":"Wrong password"}`, apperrors.ErrorTypeApplication, "Wrong password"},
		{"error field", 200, `{"success":false,"error":"No such user"}`, apperrors.ErrorTypeApplication, "No such user"},
		{"fallback", 200, `{"success":false}`, apperrors.ErrorTypeApplication, "Invalid email or password"},
		{"missing user", 200, `{"success":true}`, apperrors.ErrorTypeApplication, "Server did not return user object"},
		{"html", 200, `<html>oops</html>`, apperrors.ErrorTypeTransport, "Server returned invalid response"},
		{"json array", 200, `[1,2]`, apperrors.ErrorTypeTransport, "Server returned invalid response"},
		{"500 with failure body", 500, `{"success":false,"error":"db down"}`, apperrors.ErrorTypeApplication, "db down"},
		{"500 with success body", 500, `{"success":true,"user":{}}`, apperrors.ErrorTypeTransport, "server responded with status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, client := newFakeAPI(t)
			api.json(EndpointLogin, tt.status, tt.body)

			_, err := client.Login(context.Background(), "a@b.com", "x")
			require.Error(t, err)
			assert.Equal(t, tt.errType, apperrors.TypeOf(err))
			assert.Equal(t, tt.message, apperrors.MessageOf(err, ""))
		})
	}
}

func TestSuccessFlagSpellings(t *testing.T) {
	for _, raw := range []string{`true`, `1`, `"true"`, `"1"`, `"TRUE"`} {
		api, client := newFakeAPI(t)
		api.json(EndpointGetFoodMenu, 200, `{"success":`+raw+`,"menu":[]}`)

		_, err := client.GetFoodMenu(context.Background())
		assert.NoError(t, err, raw)
	}

	for _, raw := range []string{`false`, `0`, `"0"`, `null`, `"yes please"`} {
		api, client := newFakeAPI(t)
		api.json(EndpointGetFoodMenu, 200, `{"success":`+raw+`,"menu":[]}`)

		_, err := client.GetFoodMenu(context.Background())
		assert.True(t, apperrors.Is(err, apperrors.ErrorTypeApplication), raw)
	}
}

func TestNetworkFailureIsTransport(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1", time.Second, logger.NewNopLogger())

	_, err := client.GetUser(context.Background(), "1")
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeTransport))
}

func TestGetUser(t *testing.T) {
	api, client := newFakeAPI(t)
	api.handlers[EndpointGetUser] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("id"))
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		io.WriteString(w, `{"success":true,"user":{"id":"7","email":"s@x.in","Password":"p"}}`)
	}

	user, err := client.GetUser(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, models.UserRecord{"id": "7", "email": "s@x.in"}, user)
}

func TestGetUserRoom_LookupKey(t *testing.T) {
	api, client := newFakeAPI(t)
	api.handlers[EndpointGetUserRoom] = func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"room":{"room_no":"101","fees":14000,"seater":2,"AC":"Yes"},"booking":{"receipt_status":"approved"}}`)
	}

	assignment, err := client.GetUserRoom(context.Background(), RoomLookup{ID: "7", Email: "s@x.in"})
	require.NoError(t, err)
	require.NotNil(t, assignment.Room)
	assert.Equal(t, "101", assignment.Room.RoomNo)
	assert.Equal(t, "14000", assignment.Room.Fees)
	assert.True(t, assignment.Room.AC)
	assert.Equal(t, "Approved", assignment.Booking.ReceiptStatus.Label)

	_, err = client.GetUserRoom(context.Background(), RoomLookup{Email: "s@x.in"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id=7", "email=s%40x.in"}, api.queries())
}

func TestGetUserRoom_NoIdentity(t *testing.T) {
	api, client := newFakeAPI(t)

	_, err := client.GetUserRoom(context.Background(), RoomLookup{})
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeValidation))
	assert.Empty(t, api.queries())
}

func TestGetFoodMenu(t *testing.T) {
	api, client := newFakeAPI(t)
	api.json(EndpointGetFoodMenu, 200, `{"success":true,"menu":[
		{"id":1,"day":"Monday","it1":"Poha","it2":"Dal","it3":"Roti"},
		{"id":2,"day":"Tuesday","breakfast":"Idli","lunch":"Rice","dinner":"Paneer"}
	]}`)

	menu, err := client.GetFoodMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, models.MenuEntry{ID: "1", Day: "Monday", Breakfast: "Poha", Lunch: "Dal", Dinner: "Roti"}, menu[0])
	assert.Equal(t, "Paneer", menu[1].Dinner)
}

func TestSubmitComplaint_Multipart(t *testing.T) {
	api, client := newFakeAPI(t)
	api.handlers[EndpointSubmitComplaint] = func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "2026-01-02", r.FormValue("date"))
		assert.Equal(t, "Fan broken", r.FormValue("complaint"))
		assert.Equal(t, "A", r.FormValue("name"))
		assert.Equal(t, "555", r.FormValue("phone"))
		assert.Equal(t, "101", r.FormValue("room_no"))
		io.WriteString(w, `{"success":true}`)
	}

	err := client.SubmitComplaint(context.Background(), models.ComplaintForm{
		Date: "2026-01-02", Complaint: "Fan broken", Name: "A", Phone: "555", RoomNo: "101",
	})
	assert.NoError(t, err)
}

func TestSubmitLaundry_WithImage(t *testing.T) {
	api, client := newFakeAPI(t)
	api.handlers[EndpointSubmitLaundry] = func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "6", r.FormValue("given_cloth"))

		file, header, err := r.FormFile("cloth_image")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "shirts.jpg", header.Filename)
		assert.Equal(t, "jpeg-bytes", string(data))

		io.WriteString(w, `{"success":true}`)
	}

	err := client.SubmitLaundry(context.Background(),
		models.LaundryForm{Name: "A", Phone: "555", GivenCloth: "6", RoomNo: "101", Date: "2026-01-02"},
		&models.Upload{Filename: "shirts.jpg", Body: strings.NewReader("jpeg-bytes")})
	assert.NoError(t, err)
}

func TestSubmitLaundry_WithoutImage(t *testing.T) {
	api, client := newFakeAPI(t)
	api.handlers[EndpointSubmitLaundry] = func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("cloth_image")
		assert.ErrorIs(t, err, http.ErrMissingFile)
		io.WriteString(w, `{"success":false}`)
	}

	err := client.SubmitLaundry(context.Background(), models.LaundryForm{Name: "A"}, nil)
	assert.Equal(t, "Submission failed", apperrors.MessageOf(err, ""))
}

func TestGetComplaints(t *testing.T) {
	api, client := newFakeAPI(t)
	api.handlers[EndpointGetComplaints] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "555", r.URL.Query().Get("phone"))
		io.WriteString(w, `{"success":true,"complaints":[{"complaint_id":3,"Date":"2026-01-02","mill":"Cold food","status":"resolved"}]}`)
	}

	complaints, err := client.GetComplaints(context.Background(), "555")
	require.NoError(t, err)
	require.Len(t, complaints, 1)
	assert.Equal(t, "3", complaints[0].ID)
	assert.Equal(t, "Cold food", complaints[0].Complaint)
	assert.True(t, complaints[0].Status.Done)
}

func TestGetLaundry(t *testing.T) {
	api, client := newFakeAPI(t)
	api.json(EndpointGetLaundry, 200, `{"success":true,"requests":[{"id":"9","name":"A","given_cloth":"4","cloth_image":"uploads/a.jpg"}]}`)

	requests, err := client.GetLaundry(context.Background(), "555")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Pending", requests[0].Status.Label)
	assert.True(t, strings.HasSuffix(requests[0].ClothImage, "/uploads/a.jpg"))
	assert.True(t, strings.HasPrefix(requests[0].ClothImage, "http://"))
}

func TestGetLaundry_Failure(t *testing.T) {
	api, client := newFakeAPI(t)
	api.json(EndpointGetLaundry, 200, `{"success":false}`)

	requests, err := client.GetLaundry(context.Background(), "555")
	assert.Nil(t, requests)
	assert.Equal(t, "No requests found", apperrors.MessageOf(err, ""))
}
