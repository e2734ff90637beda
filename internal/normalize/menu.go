package normalize

import (
	"strings"

	"hostel-be-svc/internal/models"
)

// MenuEntry maps one get_foodmenu row
func MenuEntry(row map[string]interface{}) models.MenuEntry {
	return models.MenuEntry{
		ID:        First(row, "id"),
		Day:       First(row, "day"),
		Breakfast: First(row, MenuBreakfastKeys...),
		Lunch:     First(row, MenuLunchKeys...),
		Dinner:    First(row, MenuDinnerKeys...),
	}
}

// Menu maps every get_foodmenu row
func Menu(rows []map[string]interface{}) []models.MenuEntry {
	entries := make([]models.MenuEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, MenuEntry(row))
	}
	return entries
}

// MenuForDay returns the entry whose day matches weekday, ignoring case
func MenuForDay(entries []models.MenuEntry, weekday string) (models.MenuEntry, bool) {
	for _, entry := range entries {
		if strings.EqualFold(strings.TrimSpace(entry.Day), weekday) {
			return entry, true
		}
	}
	return models.MenuEntry{}, false
}
