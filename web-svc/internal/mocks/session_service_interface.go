package mocks

import (
	"context"

	"orderflow/web-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// SessionServiceInterface is a mock type for the SessionServiceInterface type
type SessionServiceInterface struct {
	mock.Mock
}

// Current provides a mock function with given fields: ctx, visitorID
func (_m *SessionServiceInterface) Current(ctx context.Context, visitorID string) domain.Session {
	ret := _m.Called(ctx, visitorID)

	if len(ret) == 0 {
		panic("no return value specified for Current")
	}

	r0 := ret.Get(0).(domain.Session)

	return r0
}

// Login provides a mock function with given fields: ctx, visitorID, email, password
func (_m *SessionServiceInterface) Login(ctx context.Context, visitorID string, email string, password string) (domain.Session, error) {
	ret := _m.Called(ctx, visitorID, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	r0 := ret.Get(0).(domain.Session)
	r1 := ret.Error(1)

	return r0, r1
}

// Logout provides a mock function with given fields: ctx, visitorID
func (_m *SessionServiceInterface) Logout(ctx context.Context, visitorID string) error {
	ret := _m.Called(ctx, visitorID)

	if len(ret) == 0 {
		panic("no return value specified for Logout")
	}

	r0 := ret.Error(0)

	return r0
}

// NewSessionServiceInterface creates a new instance of SessionServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSessionServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionServiceInterface {
	mock := &SessionServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
