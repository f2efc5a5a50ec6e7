package usecase

import (
	context "context"

	entity "github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
	mock "github.com/stretchr/testify/mock"
)

// MockBalanceUseCase is a mock type for the BalanceUseCase type
type MockBalanceUseCase struct {
	mock.Mock
}

// BalanceOf provides a mock function with given fields: ctx, address
func (_m *MockBalanceUseCase) BalanceOf(ctx context.Context, address string) (*entity.BalanceResult, error) {
	ret := _m.Called(ctx, address)

	var r0 *entity.BalanceResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.BalanceResult, error)); ok {
		return rf(ctx, address)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BalanceResult)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// WalletBalance provides a mock function with given fields: ctx
func (_m *MockBalanceUseCase) WalletBalance(ctx context.Context) (*entity.BalanceResult, error) {
	ret := _m.Called(ctx)

	var r0 *entity.BalanceResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*entity.BalanceResult, error)); ok {
		return rf(ctx)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.BalanceResult)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// NewMockBalanceUseCase creates a new instance of MockBalanceUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockBalanceUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBalanceUseCase {
	mock := &MockBalanceUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
