package mocks

import (
	"context"

	"orderflow/web-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// KitchenAPI is a mock type for the KitchenAPI type
type KitchenAPI struct {
	mock.Mock
}

// ListOrders provides a mock function with given fields: ctx
func (_m *KitchenAPI) ListOrders(ctx context.Context) ([]domain.Order, error) {
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
func (_m *KitchenAPI) UpdateOrderStatus(ctx context.Context, orderNumber string, status domain.OrderStatus) error {
	ret := _m.Called(ctx, orderNumber, status)

	if len(ret) == 0 {
		panic("no return value specified for UpdateOrderStatus")
	}

	r0 := ret.Error(0)

	return r0
}

// NewKitchenAPI creates a new instance of KitchenAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewKitchenAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *KitchenAPI {
	mock := &KitchenAPI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
