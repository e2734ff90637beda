package response

import (
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/reconcile"
)

// Notification represents a derived dashboard notification
type Notification struct {
	Type    string `json:"type" example:"payment"`
	Message string `json:"message" example:"Rent payment due on 15th Jan 2025"`
}

// MealSlot represents one meal of today's menu with its serving window
type MealSlot struct {
	Meal   string `json:"meal" example:"Breakfast"`
	Window string `json:"window" example:"8:00 - 9:00 AM"`
	Items  string `json:"items" example:"ALOO KA PARATHA"`
}

// DashboardView represents the dashboard summary
type DashboardView struct {
	LoggedIn      bool                     `json:"logged_in" example:"true"`
	Name          string                   `json:"name" example:"Abhay"`
	RoomNumber    string                   `json:"room_number" example:"LV216"`
	RoomType      string                   `json:"room_type,omitempty" example:"AC Room"`
	RentDue       string                   `json:"rent_due" example:"₹14,000"`
	DueDate       string                   `json:"due_date,omitempty" example:"15th Jan 2025"`
	PaymentStatus models.Status            `json:"payment_status"`
	Weekday       string                   `json:"weekday" example:"Monday"`
	TodayMenu     []MealSlot               `json:"today_menu"`
	Notifications []Notification           `json:"notifications"`
	Sources       []reconcile.SourceStatus `json:"sources,omitempty"`
}
