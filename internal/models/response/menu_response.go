package response

import "hostel-be-svc/internal/models"

// FoodMenuPage represents one page of the weekly menu
type FoodMenuPage struct {
	Entries  []models.MenuEntry `json:"entries"`
	Search   string             `json:"search,omitempty" example:"paneer"`
	PageSize int                `json:"page_size" example:"10"`
	Shown    int                `json:"shown" example:"7"`
	Matched  int                `json:"matched" example:"7"`
	Total    int                `json:"total" example:"7"`
	Summary  string             `json:"summary" example:"Showing 7 of 7"`
}
