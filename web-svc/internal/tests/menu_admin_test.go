package tests

import (
	"context"
	"testing"

	"orderflow/web-svc/internal/domain"
	"orderflow/web-svc/internal/mocks"
	"orderflow/web-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGroupMenu(t *testing.T) {
	categories := []domain.Category{{ID: 1, Name: "Mains"}, {ID: 2, Name: "Drinks"}, {ID: 3, Name: "Desserts"}}
	items := []domain.MenuItem{
		{ID: 10, Name: "Pizza", CategoryID: 1, IsAvailable: true},
		{ID: 11, Name: "Cola", Category: domain.CategoryRef{ID: 2}, IsAvailable: true},
		{ID: 12, Name: "Tea", Category: domain.CategoryRef{Name: "Drinks"}, IsAvailable: true},
		{ID: 13, Name: "Cake", CategoryID: 3, IsAvailable: false},
		{ID: 14, Name: "Mystery", CategoryID: 99, IsAvailable: true},
	}

	sections := service.GroupMenu(categories, items)

	require.Len(t, sections, 3)
	assert.Equal(t, "Mains", sections[0].Category)
	assert.Equal(t, "Drinks", sections[1].Category)
	assert.Equal(t, []int{11, 12}, []int{sections[1].Items[0].ID, sections[1].Items[1].ID})
	assert.Equal(t, "Other", sections[2].Category)
	assert.Equal(t, 14, sections[2].Items[0].ID)
}

func TestMenuService_Item(t *testing.T) {
	items := []domain.MenuItem{
		{ID: 1, Name: "Pizza", IsAvailable: true},
		{ID: 2, Name: "Cake", IsAvailable: false},
	}

	tests := []struct {
		name          string
		id            int
		expectedError error
	}{
		{name: "available", id: 1},
		{name: "unavailable", id: 2, expectedError: service.ErrItemUnavailable},
		{name: "unknown", id: 3, expectedError: service.ErrUnknownItem},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			api := mocks.NewMenuAPI(t)
			api.On("ListMenuItems", ctx).Return(items, nil).Once()

			item, err := service.NewMenuService(api).Item(ctx, testCase.id)

			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Pizza", item.Name)
		})
	}
}

func TestMenuService_SectionsPropagatesErrors(t *testing.T) {
	ctx := context.Background()
	api := mocks.NewMenuAPI(t)
	api.On("ListCategories", ctx).Return(nil, assert.AnError).Once()

	sections, err := service.NewMenuService(api).Sections(ctx)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, sections)
	api.AssertNotCalled(t, "ListMenuItems", mock.Anything)
}

func TestAdminService_Validation(t *testing.T) {
	tests := []struct {
		name            string
		run             func(svc *service.AdminService) error
		expectedMessage string
	}{
		{
			name: "blank_category",
			run: func(svc *service.AdminService) error {
				_, err := svc.AddCategory(context.Background(), "  ")
				return err
			},
			expectedMessage: "category name is required",
		},
		{
			name: "menu_item_missing_fields",
			run: func(svc *service.AdminService) error {
				_, err := svc.AddMenuItem(context.Background(), domain.MenuItemForm{Price: "abc"})
				return err
			},
			expectedMessage: "name is required; price must be a number; category is required",
		},
		{
			name: "edit_menu_item_bad_price",
			run: func(svc *service.AdminService) error {
				_, err := svc.EditMenuItem(context.Background(), 4, domain.MenuItemForm{Name: "Soup", Price: "4,50", CategoryID: 1})
				return err
			},
			expectedMessage: "price must be a number",
		},
		{
			name: "negative_price",
			run: func(svc *service.AdminService) error {
				_, err := svc.AddMenuItem(context.Background(), domain.MenuItemForm{Name: "Soup", Price: "-5", CategoryID: 1})
				return err
			},
			expectedMessage: "price must not be negative",
		},
		{
			name: "status_without_order",
			run: func(svc *service.AdminService) error {
				return svc.SetOrderStatus(context.Background(), "", domain.OrderCompleted)
			},
			expectedMessage: "order number is missing",
		},
		{
			name: "unknown_status",
			run: func(svc *service.AdminService) error {
				return svc.SetOrderStatus(context.Background(), "ORD-1", domain.OrderStatus("lost"))
			},
			expectedMessage: `unknown order status "lost"`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := service.NewAdminService(mocks.NewAdminAPI(t), nil)

			err := testCase.run(svc)

			assert.EqualError(t, err, testCase.expectedMessage)
			assert.True(t, service.IsValidation(err))
		})
	}
}

func TestAdminService_AddMenuItem(t *testing.T) {
	ctx := context.Background()
	api := mocks.NewAdminAPI(t)
	form := domain.MenuItemForm{Name: "Soup", Price: "4.50", CategoryID: 2, IsAvailable: true}

	api.On("CreateMenuItem", ctx, form).Return(domain.MenuItem{ID: 9, Name: "Soup"}, nil).Once()

	item, err := service.NewAdminService(api, nil).AddMenuItem(ctx, form)

	require.NoError(t, err)
	assert.Equal(t, 9, item.ID)
}

func TestAdminService_SetOrderStatus(t *testing.T) {
	ctx := context.Background()
	api := mocks.NewAdminAPI(t)
	api.On("UpdateOrderStatus", ctx, "ORD-1", domain.OrderInProgress).Return(nil).Once()

	assert.NoError(t, service.NewAdminService(api, nil).SetOrderStatus(ctx, "ORD-1", domain.OrderInProgress))
}

func TestAdminService_Feedback(t *testing.T) {
	ctx := context.Background()
	api := mocks.NewAdminAPI(t)
	rating := 4
	orders := []domain.Order{{OrderNumber: "ORD-1", StarRating: &rating}}

	api.On("ListFeedback", ctx).Return(orders, nil).Once()
	api.On("AverageRating", ctx).Return(domain.AverageRating{AverageRating: 4.5}, nil).Once()

	summary, err := service.NewAdminService(api, nil).Feedback(ctx)

	require.NoError(t, err)
	assert.Equal(t, 4.5, summary.AverageRating)
	assert.Equal(t, orders, summary.Orders)
}

func TestAdminService_Dashboard(t *testing.T) {
	ctx := context.Background()
	api := mocks.NewAdminAPI(t)

	api.On("Analytics", ctx).Return(domain.Analytics{TotalOrders: 10, ActiveOrders: 3, MenuItems: 12}, nil).Once()
	api.On("WeeklySales", ctx).Return(domain.WeeklySales{
		WeeklySales: map[string]domain.Price{"Wednesday": domain.NewPrice("5"), "Monday": domain.NewPrice("20")},
		WeekStart:   "2024-05-06",
		WeekEnd:     "2024-05-12",
	}, nil).Once()
	api.On("MenuPopularity", ctx).Return([]domain.PopularItem{{Name: "Pizza", Sales: 7, Percentage: 70}}, nil).Once()

	dashboard, err := service.NewAdminService(api, nil).Dashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, 7, dashboard.CompletedOrders)
	assert.Equal(t, 12, dashboard.MenuItems)
	require.Len(t, dashboard.Sales, 2)
	assert.Equal(t, "Monday", dashboard.Sales[0].Name)
	assert.Equal(t, "Pizza", dashboard.Popularity[0].Name)
}

func TestAdminService_DashboardStopsOnError(t *testing.T) {
	ctx := context.Background()
	api := mocks.NewAdminAPI(t)
	api.On("Analytics", ctx).Return(domain.Analytics{}, assert.AnError).Once()

	_, err := service.NewAdminService(api, nil).Dashboard(ctx)

	assert.ErrorIs(t, err, assert.AnError)
	api.AssertNotCalled(t, "WeeklySales", mock.Anything)
}

func TestAdminService_Receipts(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{name: "default_limit", limit: 0, expectedLimit: service.DefaultReceiptLimit},
		{name: "explicit_limit", limit: 5, expectedLimit: 5},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			repository := mocks.NewReceiptRepository(t)
			repository.On("Recent", ctx, testCase.expectedLimit).
				Return([]domain.Receipt{{ID: 1, OrderNumber: "ORD-1"}}, nil).Once()

			receipts, err := service.NewAdminService(mocks.NewAdminAPI(t), repository).Receipts(ctx, testCase.limit)

			require.NoError(t, err)
			assert.Len(t, receipts, 1)
		})
	}
}

func TestAdminService_ReceiptsWithoutJournal(t *testing.T) {
	receipts, err := service.NewAdminService(mocks.NewAdminAPI(t), nil).Receipts(context.Background(), 10)

	require.NoError(t, err)
	assert.NotNil(t, receipts)
	assert.Empty(t, receipts)
}
