package mocks

import (
	"context"

	"orderflow/web-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// AuthAPI is a mock type for the AuthAPI type
type AuthAPI struct {
	mock.Mock
}

// Login provides a mock function with given fields: ctx, email, password
func (_m *AuthAPI) Login(ctx context.Context, email string, password string) (domain.LoginResult, error) {
	ret := _m.Called(ctx, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	r0 := ret.Get(0).(domain.LoginResult)
	r1 := ret.Error(1)

	return r0, r1
}

// Logout provides a mock function with given fields: ctx
func (_m *AuthAPI) Logout(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Logout")
	}

	r0 := ret.Error(0)

	return r0
}

// NewAuthAPI creates a new instance of AuthAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAuthAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthAPI {
	mock := &AuthAPI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
