package mocks

import (
	"context"

	"orderflow/web-svc/internal/domain"
	"orderflow/web-svc/internal/service"

	mock "github.com/stretchr/testify/mock"
)

// MenuServiceInterface is a mock type for the MenuServiceInterface type
type MenuServiceInterface struct {
	mock.Mock
}

// Sections provides a mock function with given fields: ctx
func (_m *MenuServiceInterface) Sections(ctx context.Context) ([]service.MenuSection, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Sections")
	}

	var r0 []service.MenuSection
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]service.MenuSection)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Item provides a mock function with given fields: ctx, id
func (_m *MenuServiceInterface) Item(ctx context.Context, id int) (domain.MenuItem, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Item")
	}

	r0 := ret.Get(0).(domain.MenuItem)
	r1 := ret.Error(1)

	return r0, r1
}

// NewMenuServiceInterface creates a new instance of MenuServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMenuServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuServiceInterface {
	mock := &MenuServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
