package usecase

import (
	context "context"

	entity "github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"

	usecase "github.com/amirhossein-jamali/wallet-api/internal/domain/port/usecase"
)

// MockTransactionUseCase is a mock type for the TransactionUseCase type
type MockTransactionUseCase struct {
	mock.Mock
}

// CreateTransaction provides a mock function with given fields: ctx, req
func (_m *MockTransactionUseCase) CreateTransaction(ctx context.Context, req usecase.CreateTransactionRequest) (*usecase.TransactionResult, error) {
	ret := _m.Called(ctx, req)

	var r0 *usecase.TransactionResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, usecase.CreateTransactionRequest) (*usecase.TransactionResult, error)); ok {
		return rf(ctx, req)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.TransactionResult)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// GetTransaction provides a mock function with given fields: ctx, txID
func (_m *MockTransactionUseCase) GetTransaction(ctx context.Context, txID string) (*entity.Transaction, error) {
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

// ListUserTransactions provides a mock function with given fields: ctx, userID
func (_m *MockTransactionUseCase) ListUserTransactions(ctx context.Context, userID string) ([]*entity.Transaction, error) {
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

// ValidateTransactionRequest provides a mock function with given fields: req
func (_m *MockTransactionUseCase) ValidateTransactionRequest(req usecase.CreateTransactionRequest) error {
	ret := _m.Called(req)

	var r0 error
	if rf, ok := ret.Get(0).(func(usecase.CreateTransactionRequest) error); ok {
		r0 = rf(req)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockTransactionUseCase creates a new instance of MockTransactionUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTransactionUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionUseCase {
	mock := &MockTransactionUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
