package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/normalize"
	apperrors "hostel-be-svc/pkg/errors"
	"hostel-be-svc/pkg/logger"
)

// Endpoint names of the hostel PHP API
const (
	EndpointLogin           = "login"
	EndpointGetUser         = "get_user"
	EndpointGetUserRoom     = "get_user_room"
	EndpointGetFoodMenu     = "get_foodmenu"
	EndpointSubmitComplaint = "submit_complaint"
	EndpointGetComplaints   = "get_complaints"
	EndpointSubmitLaundry   = "submit_laundry"
	EndpointGetLaundry      = "get_laundry"
)

const (
	msgInvalidResponse = "Server returned invalid response"
	msgNetworkError    = "Network/server error"
)

// RoomLookup identifies the user whose room is requested. ID wins when both are set.
type RoomLookup struct {
	ID    string
	Email string
}

// Client defines the calls made against the hostel API
type Client interface {
	Login(ctx context.Context, email, password string) (models.UserRecord, error)
	GetUser(ctx context.Context, id string) (models.UserRecord, error)
	GetUserRoom(ctx context.Context, lookup RoomLookup) (*models.RoomAssignment, error)
	GetFoodMenu(ctx context.Context) ([]models.MenuEntry, error)
	SubmitComplaint(ctx context.Context, form models.ComplaintForm) error
	GetComplaints(ctx context.Context, phone string) ([]models.ComplaintTicket, error)
	SubmitLaundry(ctx context.Context, form models.LaundryForm, upload *models.Upload) error
	GetLaundry(ctx context.Context, phone string) ([]models.LaundryRequest, error)
}

// httpClient implements Client over net/http
type httpClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewHTTPClient creates a new Client for the API rooted at baseURL.
// A zero timeout leaves the transport default in place.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *logger.Logger) Client {
	return &httpClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Login authenticates the credentials and returns the user without its password
func (c *httpClient) Login(ctx context.Context, email, password string) (models.UserRecord, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode login request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(EndpointLogin, nil), bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create login request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	payload, err := c.do(req, EndpointLogin, "Invalid email or password")
	if err != nil {
		return nil, err
	}

	user, ok := normalize.AsRow(payload["user"])
	if !ok {
		return nil, apperrors.NewApplicationError("Server did not return user object")
	}
	return normalize.StripSensitive(user), nil
}

// GetUser fetches a fresh copy of the user with the given id
func (c *httpClient) GetUser(ctx context.Context, id string) (models.UserRecord, error) {
	payload, err := c.get(ctx, EndpointGetUser, url.Values{"id": {id}}, "Failed to fetch user")
	if err != nil {
		return nil, err
	}

	user, ok := normalize.AsRow(payload["user"])
	if !ok {
		return nil, apperrors.NewApplicationError("Server did not return user object")
	}
	return normalize.StripSensitive(user), nil
}

// GetUserRoom fetches the room and booking assigned to the user
func (c *httpClient) GetUserRoom(ctx context.Context, lookup RoomLookup) (*models.RoomAssignment, error) {
	query := url.Values{}
	switch {
	case lookup.ID != "":
		query.Set("id", lookup.ID)
	case lookup.Email != "":
		query.Set("email", lookup.Email)
	default:
		return nil, apperrors.NewValidationError("Stored user missing id/email")
	}

	payload, err := c.get(ctx, EndpointGetUserRoom, query, "Could not fetch assigned room")
	if err != nil {
		return nil, err
	}
	return normalize.Assignment(payload), nil
}

// GetFoodMenu fetches the weekly menu
func (c *httpClient) GetFoodMenu(ctx context.Context) ([]models.MenuEntry, error) {
	payload, err := c.get(ctx, EndpointGetFoodMenu, nil, "Failed to load menu")
	if err != nil {
		return nil, err
	}
	return normalize.Menu(normalize.AsRows(payload["menu"])), nil
}

// SubmitComplaint posts a new complaint
func (c *httpClient) SubmitComplaint(ctx context.Context, form models.ComplaintForm) error {
	fields := []formField{
		{"date", form.Date},
		{"complaint", form.Complaint},
		{"name", form.Name},
		{"phone", form.Phone},
		{"room_no", form.RoomNo},
	}

	req, err := c.multipartRequest(ctx, EndpointSubmitComplaint, fields, nil)
	if err != nil {
		return err
	}

	_, err = c.do(req, EndpointSubmitComplaint, "Failed to submit complaint")
	return err
}

// GetComplaints lists the complaints filed under phone
func (c *httpClient) GetComplaints(ctx context.Context, phone string) ([]models.ComplaintTicket, error) {
	payload, err := c.get(ctx, EndpointGetComplaints, url.Values{"phone": {phone}}, "No complaints found")
	if err != nil {
		return nil, err
	}
	return normalize.Complaints(normalize.AsRows(payload["complaints"])), nil
}

// SubmitLaundry posts a new laundry request with an optional cloth image
func (c *httpClient) SubmitLaundry(ctx context.Context, form models.LaundryForm, upload *models.Upload) error {
	fields := []formField{
		{"name", form.Name},
		{"phone", form.Phone},
		{"given_cloth", form.GivenCloth},
		{"room_no", form.RoomNo},
		{"date", form.Date},
	}

	req, err := c.multipartRequest(ctx, EndpointSubmitLaundry, fields, upload)
	if err != nil {
		return err
	}

	_, err = c.do(req, EndpointSubmitLaundry, "Submission failed")
	return err
}

// GetLaundry lists the laundry requests filed under phone
func (c *httpClient) GetLaundry(ctx context.Context, phone string) ([]models.LaundryRequest, error) {
	payload, err := c.get(ctx, EndpointGetLaundry, url.Values{"phone": {phone}}, "No requests found")
	if err != nil {
		return nil, err
	}
	return normalize.LaundryRequests(normalize.AsRows(payload["requests"]), c.baseURL), nil
}

type formField struct {
	name  string
	value string
}

func (c *httpClient) endpointURL(endpoint string, query url.Values) string {
	u := fmt.Sprintf("%s/%s.php", c.baseURL, endpoint)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *httpClient) get(ctx context.Context, endpoint string, query url.Values, fallback string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(endpoint, query), nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create request", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	return c.do(req, endpoint, fallback)
}

func (c *httpClient) multipartRequest(ctx context.Context, endpoint string, fields []formField, upload *models.Upload) (*http.Request, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := writer.WriteField(f.name, f.value); err != nil {
			return nil, apperrors.NewInternalError("failed to encode form", err)
		}
	}

	if upload != nil && upload.Body != nil {
		part, err := writer.CreateFormFile("cloth_image", upload.Filename)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to encode upload", err)
		}
		if _, err := io.Copy(part, upload.Body); err != nil {
			return nil, apperrors.NewInternalError("failed to read upload", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, apperrors.NewInternalError("failed to encode form", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(endpoint, nil), &buf)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req, nil
}

// do sends req and decodes the {success, ...} envelope
func (c *httpClient) do(req *http.Request, endpoint, fallback string) (map[string]interface{}, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("endpoint", endpoint).Error("Request to hostel API failed")
		return nil, apperrors.NewTransportError(msgNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.WithError(err).WithField("endpoint", endpoint).Error("Failed to read hostel API response")
		return nil, apperrors.NewTransportError(msgNetworkError, err)
	}

	c.logger.WithFields(map[string]interface{}{
		"endpoint":    endpoint,
		"status_code": resp.StatusCode,
		"duration":    time.Since(start).String(),
	}).Debug("Hostel API responded")

	var payload map[string]interface{}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil || payload == nil {
		c.logger.WithFields(map[string]interface{}{
			"endpoint":    endpoint,
			"status_code": resp.StatusCode,
			"body":        truncate(string(body), 256),
		}).Error("Expected JSON object from hostel API")
		return nil, apperrors.NewTransportError(msgInvalidResponse, err)
	}

	if !isSuccess(payload["success"]) {
		message := normalize.First(payload, "message", "error")
		if message == "" {
			message = fallback
		}
		c.logger.WithFields(map[string]interface{}{
			"endpoint":    endpoint,
			"status_code": resp.StatusCode,
			"message":     message,
		}).Warn("Hostel API reported failure")
		return nil, apperrors.NewApplicationError(message)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apperrors.NewTransportError(
			fmt.Sprintf("server responded with status %d", resp.StatusCode), nil)
	}

	return payload, nil
}

// isSuccess accepts the spellings of "true" the PHP endpoints have used
func isSuccess(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case json.Number:
		return t.String() == "1"
	case float64:
		return t == 1
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		return s == "true" || s == "1"
	default:
		return false
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
