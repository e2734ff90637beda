package response

import "hostel-be-svc/internal/models"

// Phase is the state of a resource view
type Phase string

// Resource view phases
const (
	PhaseIdle        Phase = "idle"
	PhaseSubmitting  Phase = "submitting"
	PhaseLoadingList Phase = "loading-list"
)

// SubmissionResult represents the outcome of a form submission
type SubmissionResult struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Complaint submitted successfully!"`
}

// ComplaintListView represents the complaints listed for a phone number
type ComplaintListView struct {
	Phone      string                   `json:"phone" example:"9876543210"`
	Complaints []models.ComplaintTicket `json:"complaints"`
	Message    string                   `json:"message,omitempty"`
}

// ComplaintState represents the complaint view
type ComplaintState struct {
	Phase   Phase                `json:"phase" example:"idle"`
	Form    models.ComplaintForm `json:"form"`
	Listing ComplaintListView    `json:"listing"`
}

// LaundryListView represents the laundry requests listed for a phone number
type LaundryListView struct {
	Phone    string                  `json:"phone" example:"9876543210"`
	Requests []models.LaundryRequest `json:"requests"`
	Message  string                  `json:"message,omitempty" example:"No requests found"`
}

// LaundryState represents the laundry view
type LaundryState struct {
	Phase   Phase              `json:"phase" example:"idle"`
	Form    models.LaundryForm `json:"form"`
	Listing LaundryListView    `json:"listing"`
}
