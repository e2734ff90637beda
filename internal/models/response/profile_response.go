package response

import "hostel-be-svc/internal/models"

// ProfileView represents the profile page
type ProfileView struct {
	LoggedIn bool            `json:"logged_in" example:"true"`
	Message  string          `json:"message,omitempty" example:"No user logged in."`
	Profile  *models.Profile `json:"profile,omitempty"`
}
