package service

import (
	"context"
	"errors"

	"orderflow/web-svc/internal/domain"
)

var ErrItemUnavailable = errors.New("menu item is not available")

const uncategorized = "Other"

type MenuSection struct {
	Category string            `json:"category"`
	Items    []domain.MenuItem `json:"items"`
}

type MenuService struct {
	api MenuAPI
}

func NewMenuService(api MenuAPI) *MenuService {
	return &MenuService{api: api}
}

// Sections groups available items under their categories, in category order.
func (s *MenuService) Sections(ctx context.Context) ([]MenuSection, error) {
	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.api.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	return GroupMenu(categories, items), nil
}

// Item looks up an orderable item.
func (s *MenuService) Item(ctx context.Context, id int) (domain.MenuItem, error) {
	items, err := s.api.ListMenuItems(ctx)
	if err != nil {
		return domain.MenuItem{}, err
	}
	for _, item := range items {
		if item.ID != id {
			continue
		}
		if !item.IsAvailable {
			return domain.MenuItem{}, ErrItemUnavailable
		}
		return item, nil
	}
	return domain.MenuItem{}, ErrUnknownItem
}

func GroupMenu(categories []domain.Category, items []domain.MenuItem) []MenuSection {
	byID := make(map[int]int, len(categories))
	byName := make(map[string]int, len(categories))
	sections := make([]MenuSection, 0, len(categories)+1)
	for _, category := range categories {
		byID[category.ID] = len(sections)
		byName[category.Name] = len(sections)
		sections = append(sections, MenuSection{Category: category.Name, Items: []domain.MenuItem{}})
	}

	other := -1
	for _, item := range items {
		if !item.IsAvailable {
			continue
		}

		idx, ok := byID[item.CategoryKey()]
		if !ok && item.Category.Name != "" {
			idx, ok = byName[item.Category.Name]
		}
		if !ok {
			if other < 0 {
				other = len(sections)
				sections = append(sections, MenuSection{Category: uncategorized, Items: []domain.MenuItem{}})
			}
			idx = other
		}
		sections[idx].Items = append(sections[idx].Items, item)
	}

	grouped := sections[:0]
	for _, section := range sections {
		if len(section.Items) > 0 {
			grouped = append(grouped, section)
		}
	}
	return grouped
}
