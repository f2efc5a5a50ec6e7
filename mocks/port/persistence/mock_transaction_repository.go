package persistence

import (
	context "context"

	entity "github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock type for the TransactionRepository type
type MockTransactionRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, transaction
func (_m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	ret := _m.Called(ctx, transaction)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Transaction) error); ok {
		r0 = rf(ctx, transaction)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetByTxID provides a mock function with given fields: ctx, txID
func (_m *MockTransactionRepository) GetByTxID(ctx context.Context, txID string) (*entity.Transaction, error) {
	ret := _m.Called(ctx, txID)

	var r0 *entity.Transaction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Transaction, error)); ok {
		return rf(ctx, txID)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// ListByUserID provides a mock function with given fields: ctx, userID
func (_m *MockTransactionRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*entity.Transaction
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]*entity.Transaction, error)); ok {
		return rf(ctx, userID)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Transaction)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// NewMockTransactionRepository creates a new instance of MockTransactionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionRepository {
	mock := &MockTransactionRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
