package mocks

import (
	"context"

	"orderflow/web-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// OrderAPI is a mock type for the OrderAPI type
type OrderAPI struct {
	mock.Mock
}

// CreateOrder provides a mock function with given fields: ctx, itemIDs
func (_m *OrderAPI) CreateOrder(ctx context.Context, itemIDs []int) (domain.CreatedOrder, error) {
	ret := _m.Called(ctx, itemIDs)

	if len(ret) == 0 {
		panic("no return value specified for CreateOrder")
	}

	r0 := ret.Get(0).(domain.CreatedOrder)
	r1 := ret.Error(1)

	return r0, r1
}

// NewOrderAPI creates a new instance of OrderAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderAPI {
	mock := &OrderAPI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
