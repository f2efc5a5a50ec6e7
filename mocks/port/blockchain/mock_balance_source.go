package blockchain

import (
	context "context"
	big "math/big"

	mock "github.com/stretchr/testify/mock"
)

// MockBalanceSource is a mock type for the BalanceSource type
type MockBalanceSource struct {
	mock.Mock
}

// BalanceAt provides a mock function with given fields: ctx, address
func (_m *MockBalanceSource) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	ret := _m.Called(ctx, address)

	var r0 *big.Int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*big.Int, error)); ok {
		return rf(ctx, address)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*big.Int)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// NewMockBalanceSource creates a new instance of MockBalanceSource. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockBalanceSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBalanceSource {
	mock := &MockBalanceSource{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
