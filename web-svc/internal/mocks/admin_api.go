package mocks

import (
	"context"

	"orderflow/web-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// AdminAPI is a mock type for the AdminAPI type
type AdminAPI struct {
	mock.Mock
}

// ListCategories provides a mock function with given fields: ctx
func (_m *AdminAPI) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListCategories")
	}

	var r0 []domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// ListMenuItems provides a mock function with given fields: ctx
func (_m *AdminAPI) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListMenuItems")
	}

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// ListOrders provides a mock function with given fields: ctx
func (_m *AdminAPI) ListOrders(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListOrders")
	}

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// UpdateOrderStatus provides a mock function with given fields: ctx, orderNumber, status
func (_m *AdminAPI) UpdateOrderStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error {
	ret := _m.Called(ctx, orderNumber, status)

	if len(ret) == 0 {
		panic("no return value specified for UpdateOrderStatus")
	}

	r0 := ret.Error(0)

	return r0
}

// CreateCategory provides a mock function with given fields: ctx, name
func (_m *AdminAPI) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for CreateCategory")
	}

	r0 := ret.Get(0).(domain.Category)
	r1 := ret.Error(1)

	return r0, r1
}

// CreateMenuItem provides a mock function with given fields: ctx, form
func (_m *AdminAPI) CreateMenuItem(ctx context.Context, form domain.MenuItemForm) (domain.MenuItem, error) {
	ret := _m.Called(ctx, form)

	if len(ret) == 0 {
		panic("no return value specified for CreateMenuItem")
	}

	r0 := ret.Get(0).(domain.MenuItem)
	r1 := ret.Error(1)

	return r0, r1
}

// UpdateMenuItem provides a mock function with given fields: ctx, id, form
func (_m *AdminAPI) UpdateMenuItem(ctx context.Context, id int, form domain.MenuItemForm) (domain.MenuItem, error) {
	ret := _m.Called(ctx, id, form)

	if len(ret) == 0 {
		panic("no return value specified for UpdateMenuItem")
	}

	r0 := ret.Get(0).(domain.MenuItem)
	r1 := ret.Error(1)

	return r0, r1
}

// DeleteMenuItem provides a mock function with given fields: ctx, id
func (_m *AdminAPI) DeleteMenuItem(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteMenuItem")
	}

	r0 := ret.Error(0)

	return r0
}

// ListFeedback provides a mock function with given fields: ctx
func (_m *AdminAPI) ListFeedback(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListFeedback")
	}

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// AverageRating provides a mock function with given fields: ctx
func (_m *AdminAPI) AverageRating(ctx context.Context) (domain.AverageRating, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for AverageRating")
	}

	r0 := ret.Get(0).(domain.AverageRating)
	r1 := ret.Error(1)

	return r0, r1
}

// Analytics provides a mock function with given fields: ctx
func (_m *AdminAPI) Analytics(ctx context.Context) (domain.Analytics, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Analytics")
	}

	r0 := ret.Get(0).(domain.Analytics)
	r1 := ret.Error(1)

	return r0, r1
}

// WeeklySales provides a mock function with given fields: ctx
func (_m *AdminAPI) WeeklySales(ctx context.Context) (domain.WeeklySales, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for WeeklySales")
	}

	r0 := ret.Get(0).(domain.WeeklySales)
	r1 := ret.Error(1)

	return r0, r1
}

// MenuPopularity provides a mock function with given fields: ctx
func (_m *AdminAPI) MenuPopularity(ctx context.Context) ([]domain.PopularItem, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for MenuPopularity")
	}

	var r0 []domain.PopularItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PopularItem)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewAdminAPI creates a new instance of AdminAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAdminAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *AdminAPI {
	mock := &AdminAPI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
