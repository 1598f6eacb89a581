package mocks

import (
	"context"

	"orderflow/web-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// ReceiptRepository is a mock type for the ReceiptRepository type
type ReceiptRepository struct {
	mock.Mock
}

// Record provides a mock function with given fields: ctx, receipt
func (_m *ReceiptRepository) Record(ctx context.Context, receipt *domain.Receipt) error {
	ret := _m.Called(ctx, receipt)

	if len(ret) == 0 {
		panic("no return value specified for Record")
	}

	r0 := ret.Error(0)

	return r0
}

// Recent provides a mock function with given fields: ctx, limit
func (_m *ReceiptRepository) Recent(ctx context.Context, limit int) ([]domain.Receipt, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for Recent")
	}

	var r0 []domain.Receipt
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Receipt)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewReceiptRepository creates a new instance of ReceiptRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewReceiptRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReceiptRepository {
	mock := &ReceiptRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
