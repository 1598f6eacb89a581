package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// FeedbackServiceInterface is a mock type for the FeedbackServiceInterface type
type FeedbackServiceInterface struct {
	mock.Mock
}

// Submit provides a mock function with given fields: ctx, orderNumber, rating, comment
func (_m *FeedbackServiceInterface) Submit(ctx context.Context, orderNumber *string, rating int, comment string) error {
	ret := _m.Called(ctx, orderNumber, rating, comment)

	if len(ret) == 0 {
		panic("no return value specified for Submit")
	}

	r0 := ret.Error(0)

	return r0
}

// NewFeedbackServiceInterface creates a new instance of FeedbackServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewFeedbackServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *FeedbackServiceInterface {
	mock := &FeedbackServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
