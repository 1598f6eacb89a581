package mocks

import (
	"context"

	"orderflow/web-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// MenuAPI is a mock type for the MenuAPI type
type MenuAPI struct {
	mock.Mock
}

// ListCategories provides a mock function with given fields: ctx
func (_m *MenuAPI) ListCategories(ctx context.Context) ([]domain.Category, error) {
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
func (_m *MenuAPI) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
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

// NewMenuAPI creates a new instance of MenuAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMenuAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuAPI {
	mock := &MenuAPI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
