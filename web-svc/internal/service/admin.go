package service

import (
	"context"
	"strings"

	"orderflow/web-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const DefaultReceiptLimit = 50

type FeedbackSummary struct {
	AverageRating float64        `json:"average_rating"`
	Orders        []domain.Order `json:"orders"`
}

type AdminService struct {
	api      AdminAPI
	receipts ReceiptRepository
}

func NewAdminService(api AdminAPI, receipts ReceiptRepository) *AdminService {
	return &AdminService{
		api:      api,
		receipts: receipts,
	}
}

func (s *AdminService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.api.ListCategories(ctx)
}

func (s *AdminService) AddCategory(ctx context.Context, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, newValidationError("category name is required")
	}
	return s.api.CreateCategory(ctx, name)
}

func (s *AdminService) MenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	return s.api.ListMenuItems(ctx)
}

func (s *AdminService) AddMenuItem(ctx context.Context, form domain.MenuItemForm) (domain.MenuItem, error) {
	if err := checkMenuItemForm(form); err != nil {
		return domain.MenuItem{}, err
	}
	return s.api.CreateMenuItem(ctx, form)
}

func (s *AdminService) EditMenuItem(ctx context.Context, id int, form domain.MenuItemForm) (domain.MenuItem, error) {
	if err := checkMenuItemForm(form); err != nil {
		return domain.MenuItem{}, err
	}
	return s.api.UpdateMenuItem(ctx, id, form)
}

func (s *AdminService) RemoveMenuItem(ctx context.Context, id int) error {
	return s.api.DeleteMenuItem(ctx, id)
}

func (s *AdminService) Orders(ctx context.Context) ([]domain.Order, error) {
	return s.api.ListOrders(ctx)
}

func (s *AdminService) SetOrderStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error {
	if strings.TrimSpace(orderNumber) == "" {
		return newValidationError("order number is missing")
	}
	if !status.Valid() {
		return newValidationError("unknown order status %q", status)
	}
	return s.api.UpdateOrderStatus(ctx, orderNumber, status)
}

func (s *AdminService) Feedback(ctx context.Context) (FeedbackSummary, error) {
	orders, err := s.api.ListFeedback(ctx)
	if err != nil {
		return FeedbackSummary{}, err
	}
	rating, err := s.api.AverageRating(ctx)
	if err != nil {
		return FeedbackSummary{}, err
	}
	return FeedbackSummary{AverageRating: rating.AverageRating, Orders: orders}, nil
}

// Dashboard combines the analytics endpoints into the admin overview.
func (s *AdminService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	analytics, err := s.api.Analytics(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}
	sales, err := s.api.WeeklySales(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}
	popularity, err := s.api.MenuPopularity(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	return domain.Dashboard{
		TotalOrders:     analytics.TotalOrders,
		ActiveOrders:    analytics.ActiveOrders,
		CompletedOrders: analytics.CompletedOrders(),
		MenuItems:       analytics.MenuItems,
		WeekStart:       sales.WeekStart,
		WeekEnd:         sales.WeekEnd,
		Sales:           sales.Points(),
		Popularity:      popularity,
	}, nil
}

// Receipts lists recent local submissions; without a journal the list is empty.
func (s *AdminService) Receipts(ctx context.Context, limit int) ([]domain.Receipt, error) {
	if s.receipts == nil {
		return []domain.Receipt{}, nil
	}
	if limit <= 0 {
		limit = DefaultReceiptLimit
	}
	return s.receipts.Recent(ctx, limit)
}

type menuItemInput struct {
	Name       string `validate:"required"`
	Price      string `validate:"required,numeric"`
	CategoryID int    `validate:"min=1"`
}

var menuItemMessages = map[string]string{
	"Name":       "name is required",
	"Price":      "price must be a number",
	"CategoryID": "category is required",
}

func checkMenuItemForm(form domain.MenuItemForm) error {
	input := menuItemInput{
		Name:       strings.TrimSpace(form.Name),
		Price:      strings.TrimSpace(form.Price),
		CategoryID: form.CategoryID,
	}
	if err := validateStruct(input, menuItemMessages); err != nil {
		return err
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return newValidationError("%s", menuItemMessages["Price"])
	}
	if price.IsNegative() {
		return newValidationError("price must not be negative")
	}
	return nil
}
