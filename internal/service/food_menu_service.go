package service

import (
	"context"
	"fmt"
	"strings"

	"hostel-be-svc/internal/backend"
	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/pkg/logger"
)

// DefaultMenuPageSize is used when no positive page size is requested
const DefaultMenuPageSize = 10

// FoodMenuService interface defines food menu service methods
type FoodMenuService interface {
	Page(ctx context.Context, search string, entries int) (*response.FoodMenuPage, error)
}

// foodMenuService implements FoodMenuService interface
type foodMenuService struct {
	client backend.Client
	logger *logger.Logger
}

// NewFoodMenuService creates a new food menu service
func NewFoodMenuService(client backend.Client, logger *logger.Logger) FoodMenuService {
	return &foodMenuService{
		client: client,
		logger: logger,
	}
}

// Page fetches the full menu and returns the first page of rows matching search
func (s *foodMenuService) Page(ctx context.Context, search string, entries int) (*response.FoodMenuPage, error) {
	menu, err := s.client.GetFoodMenu(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load food menu")
		return nil, err
	}
	return Paginate(menu, search, entries), nil
}

// Paginate filters menu case-insensitively on every column and keeps the
// first entries rows
func Paginate(menu []models.MenuEntry, search string, entries int) *response.FoodMenuPage {
	if entries <= 0 {
		entries = DefaultMenuPageSize
	}
	search = strings.TrimSpace(search)
	needle := strings.ToLower(search)

	matched := make([]models.MenuEntry, 0, len(menu))
	for _, entry := range menu {
		if needle == "" || menuEntryContains(entry, needle) {
			matched = append(matched, entry)
		}
	}

	shown := matched
	if len(shown) > entries {
		shown = shown[:entries]
	}

	summary := fmt.Sprintf("Showing %d of %d", len(shown), len(matched))
	if search != "" {
		summary += fmt.Sprintf(" (filtered from %d)", len(menu))
	}

	return &response.FoodMenuPage{
		Entries:  shown,
		Search:   search,
		PageSize: entries,
		Shown:    len(shown),
		Matched:  len(matched),
		Total:    len(menu),
		Summary:  summary,
	}
}

func menuEntryContains(entry models.MenuEntry, needle string) bool {
	for _, field := range []string{entry.Day, entry.Breakfast, entry.Lunch, entry.Dinner} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
