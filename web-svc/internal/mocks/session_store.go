package mocks

import (
	"context"

	"orderflow/web-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// SessionStore is a mock type for the SessionStore type
type SessionStore struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx, visitorID
func (_m *SessionStore) Load(ctx context.Context, visitorID string) (domain.Session, error) {
	ret := _m.Called(ctx, visitorID)

	if len(ret) == 0 {
		panic("no return value specified for Load")
	}

	r0 := ret.Get(0).(domain.Session)
	r1 := ret.Error(1)

	return r0, r1
}

// Save provides a mock function with given fields: ctx, visitorID, session
func (_m *SessionStore) Save(ctx context.Context, visitorID string, session domain.Session) error {
	ret := _m.Called(ctx, visitorID, session)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	r0 := ret.Error(0)

	return r0
}

// Clear provides a mock function with given fields: ctx, visitorID
func (_m *SessionStore) Clear(ctx context.Context, visitorID string) error {
	ret := _m.Called(ctx, visitorID)

	if len(ret) == 0 {
		panic("no return value specified for Clear")
	}

	r0 := ret.Error(0)

	return r0
}

// NewSessionStore creates a new instance of SessionStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSessionStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionStore {
	mock := &SessionStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
