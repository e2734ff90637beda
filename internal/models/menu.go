package models

// MenuEntry is one weekday row of the food menu
type MenuEntry struct {
	ID        string `json:"id,omitempty"`
	Day       string `json:"day"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}
