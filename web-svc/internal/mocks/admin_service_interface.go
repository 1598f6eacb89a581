package mocks

import (
	"context"

	"orderflow/web-svc/internal/domain"
	"orderflow/web-svc/internal/service"

	mock "github.com/stretchr/testify/mock"
)

// AdminServiceInterface is a mock type for the AdminServiceInterface type
type AdminServiceInterface struct {
	mock.Mock
}

// Categories provides a mock function with given fields: ctx
func (_m *AdminServiceInterface) Categories(ctx context.Context) ([]domain.Category, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Categories")
	}

	var r0 []domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// AddCategory provides a mock function with given fields: ctx, name
func (_m *AdminServiceInterface) AddCategory(ctx context.Context, name string) (domain.Category, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for AddCategory")
	}

	r0 := ret.Get(0).(domain.Category)
	r1 := ret.Error(1)

	return r0, r1
}

// MenuItems provides a mock function with given fields: ctx
func (_m *AdminServiceInterface) MenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for MenuItems")
	}

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// AddMenuItem provides a mock function with given fields: ctx, form
func (_m *AdminServiceInterface) AddMenuItem(ctx context.Context, form domain.MenuItemForm) (domain.MenuItem, error) {
	ret := _m.Called(ctx, form)

	if len(ret) == 0 {
		panic("no return value specified for AddMenuItem")
	}

	r0 := ret.Get(0).(domain.MenuItem)
	r1 := ret.Error(1)

	return r0, r1
}

// EditMenuItem provides a mock function with given fields: ctx, id, form
func (_m *AdminServiceInterface) EditMenuItem(ctx context.Context, id int, form domain.MenuItemForm) (domain.MenuItem, error) {
	ret := _m.Called(ctx, id, form)

	if len(ret) == 0 {
		panic("no return value specified for EditMenuItem")
	}

	r0 := ret.Get(0).(domain.MenuItem)
	r1 := ret.Error(1)

	return r0, r1
}

// RemoveMenuItem provides a mock function with given fields: ctx, id
func (_m *AdminServiceInterface) RemoveMenuItem(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for RemoveMenuItem")
	}

	r0 := ret.Error(0)

	return r0
}

// Orders provides a mock function with given fields: ctx
func (_m *AdminServiceInterface) Orders(ctx context.Context) ([]domain.Order, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Orders")
	}

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// SetOrderStatus provides a mock function with given fields: ctx, orderNumber, status
func (_m *AdminServiceInterface) SetOrderStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error {
	ret := _m.Called(ctx, orderNumber, status)

	if len(ret) == 0 {
		panic("no return value specified for SetOrderStatus")
	}

	r0 := ret.Error(0)

	return r0
}

// Feedback provides a mock function with given fields: ctx
func (_m *AdminServiceInterface) Feedback(ctx context.Context) (service.FeedbackSummary, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Feedback")
	}

	r0 := ret.Get(0).(service.FeedbackSummary)
	r1 := ret.Error(1)

	return r0, r1
}

// Dashboard provides a mock function with given fields: ctx
func (_m *AdminServiceInterface) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Dashboard")
	}

	r0 := ret.Get(0).(domain.Dashboard)
	r1 := ret.Error(1)

	return r0, r1
}

// Receipts provides a mock function with given fields: ctx, limit
func (_m *AdminServiceInterface) Receipts(ctx context.Context, limit int) ([]domain.Receipt, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for Receipts")
	}

	var r0 []domain.Receipt
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Receipt)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewAdminServiceInterface creates a new instance of AdminServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAdminServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AdminServiceInterface {
	mock := &AdminServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
