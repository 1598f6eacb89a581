package mocks

import (
	"context"

	"orderflow/web-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// FeedbackAPI is a mock type for the FeedbackAPI type
type FeedbackAPI struct {
	mock.Mock
}

// SubmitFeedback provides a mock function with given fields: ctx, feedback
func (_m *FeedbackAPI) SubmitFeedback(ctx context.Context, feedback domain.Feedback) error {
	ret := _m.Called(ctx, feedback)

	if len(ret) == 0 {
		panic("no return value specified for SubmitFeedback")
	}

	r0 := ret.Error(0)

	return r0
}

// NewFeedbackAPI creates a new instance of FeedbackAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewFeedbackAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *FeedbackAPI {
	mock := &FeedbackAPI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
