package response

import "hostel-be-svc/internal/models"

// RoomDetailsView represents the room and payment page
type RoomDetailsView struct {
	LoggedIn   bool                  `json:"logged_in" example:"true"`
	RoomNumber string                `json:"room_number" example:"LV216"`
	Room       *models.RoomRecord    `json:"room,omitempty"`
	Booking    *models.BookingRecord `json:"booking,omitempty"`
	ReceiptURL string                `json:"receipt_url,omitempty"`
	Message    string                `json:"message,omitempty" example:"Could not fetch assigned room"`
}
