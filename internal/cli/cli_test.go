package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "hostel-be-svc/pkg/errors"
)

type fakeHostelAPI struct {
	*httptest.Server

	mu         sync.Mutex
	complaints []map[string]string
}

func newFakeHostelAPI(t *testing.T) *fakeHostelAPI {
	t.Helper()
	api := &fakeHostelAPI{}

	user := map[string]interface{}{
		"id": "7", "name": "Abhay", "email": "a@b.com", "phone": "555", "rno": "LV216",
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/login.php", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "pw" {
			writeJSON(w, map[string]interface{}{"success": false, "message": "Invalid email or password"})
			return
		}
		withPassword := map[string]interface{}{"password": "pw"}
		for k, v := range user {
			withPassword[k] = v
		}
		writeJSON(w, map[string]interface{}{"success": true, "user": withPassword})
	})
	mux.HandleFunc("/get_user.php", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"success": true, "user": user})
	})
	mux.HandleFunc("/get_user_room.php", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"success": true,
			"room":    map[string]interface{}{"room_no": "LV216", "ac": 1, "fees": "14000"},
		})
	})
	mux.HandleFunc("/get_foodmenu.php", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"success": true, "menu": []map[string]string{
			{"day": "Monday", "breakfast": "Poha", "lunch": "Paneer Pulao", "dinner": "Roti"},
			{"day": "Tuesday", "breakfast": "Idli", "lunch": "Rajma", "dinner": "Matar Paneer"},
			{"day": "Wednesday", "breakfast": "Upma", "lunch": "Dal", "dinner": "Khichdi"},
		}})
	})
	mux.HandleFunc("/submit_complaint.php", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			writeJSON(w, map[string]interface{}{"success": false, "error": err.Error()})
			return
		}
		api.mu.Lock()
		api.complaints = append(api.complaints, map[string]string{
			"complaint": r.FormValue("complaint"),
			"name":      r.FormValue("name"),
			"phone":     r.FormValue("phone"),
			"room_no":   r.FormValue("room_no"),
			"date":      r.FormValue("date"),
		})
		api.mu.Unlock()
		writeJSON(w, map[string]interface{}{"success": true})
	})
	mux.HandleFunc("/get_complaints.php", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"success": true, "complaints": []map[string]string{
			{"complaint_id": "3", "Date": "2026-01-05", "room_no": "LV216", "mill": "Fan broken", "status": "in_progress"},
		}})
	})

	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)
	return api
}

func (api *fakeHostelAPI) submitted() []map[string]string {
	api.mu.Lock()
	defer api.mu.Unlock()
	return append([]map[string]string{}, api.complaints...)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func run(t *testing.T, baseURL, sessionDir string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--base-url", baseURL, "--session-dir", sessionDir}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestLoginWhoamiLogout(t *testing.T) {
	api := newFakeHostelAPI(t)
	dir := t.TempDir()

	out, err := run(t, api.URL, dir, "login", "--email", "a@b.com", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Abhay (a@b.com)")

	stored, err := os.ReadFile(filepath.Join(dir, "lv_current_user.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(stored), "password")

	out, err = run(t, api.URL, dir, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "LV216")

	_, err = run(t, api.URL, dir, "logout")
	require.NoError(t, err)

	_, err = run(t, api.URL, dir, "whoami")
	require.Error(t, err)
	assert.Equal(t, "No user logged in.", apperrors.MessageOf(err, ""))
}

func TestLoginRejected(t *testing.T) {
	api := newFakeHostelAPI(t)

	_, err := run(t, api.URL, t.TempDir(), "login", "--email", "a@b.com", "--password", "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", apperrors.MessageOf(err, ""))
}

func TestMenuSearch(t *testing.T) {
	api := newFakeHostelAPI(t)

	out, err := run(t, api.URL, t.TempDir(), "menu", "--search", "paneer", "--entries", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Paneer Pulao")
	assert.NotContains(t, out, "Matar Paneer")
	assert.Contains(t, out, "Showing 1 of 2 (filtered from 3)")
}

func TestDashboardWithoutSession(t *testing.T) {
	api := newFakeHostelAPI(t)

	out, err := run(t, api.URL, t.TempDir(), "--json", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, `"logged_in": false`)
}

func TestDashboardAfterLogin(t *testing.T) {
	api := newFakeHostelAPI(t)
	dir := t.TempDir()

	_, err := run(t, api.URL, dir, "login", "--email", "a@b.com", "--password", "pw")
	require.NoError(t, err)

	out, err := run(t, api.URL, dir, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, Abhay")
	assert.Contains(t, out, "LV216 (AC Room)")
}

func TestComplaintSubmitUsesCachedUser(t *testing.T) {
	api := newFakeHostelAPI(t)
	dir := t.TempDir()

	_, err := run(t, api.URL, dir, "login", "--email", "a@b.com", "--password", "pw")
	require.NoError(t, err)

	out, err := run(t, api.URL, dir, "complaint", "submit", "--complaint", "Fan broken", "--date", "2026-01-05")
	require.NoError(t, err)
	assert.Contains(t, out, "Complaint submitted successfully!")
	assert.Contains(t, out, "In Progress")

	submitted := api.submitted()
	require.Len(t, submitted, 1)
	assert.Equal(t, map[string]string{
		"complaint": "Fan broken",
		"name":      "Abhay",
		"phone":     "555",
		"room_no":   "LV216",
		"date":      "2026-01-05",
	}, submitted[0])
}

func TestComplaintListNeedsPhone(t *testing.T) {
	api := newFakeHostelAPI(t)

	_, err := run(t, api.URL, t.TempDir(), "complaint", "list")
	require.Error(t, err)
	assert.Equal(t, "Please enter your phone number", apperrors.MessageOf(err, ""))
}
