package transaction

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
	domainerrs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	portuse "github.com/amirhossein-jamali/wallet-api/internal/domain/port/usecase"
	mcore "github.com/amirhossein-jamali/wallet-api/mocks/port/core"
	mpers "github.com/amirhossein-jamali/wallet-api/mocks/port/persistence"
	muse "github.com/amirhossein-jamali/wallet-api/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	walletAddress = "0xdAC17F958D2ee523a2206206994597C13D831ec7"
	firstTxID     = "6f1c1c53-8a5e-4bb4-9a43-0d2d3e0a4f10"
	secondTxID    = "0b8e7f4e-1e3a-4c55-9d0e-6a3b2f1d9c21"
)

func oneEther() *big.Int {
	wei, _ := new(big.Int).SetString("1000000000000000000", 10)
	return wei
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	validReq := portuse.CreateTransactionRequest{UserID: "user123", Amount: "100.50", Currency: "BTC"}
	upstreamErr := domainerrs.NewUpstreamServiceError("ethereum-rpc", "eth_getBalance", errors.New("connection refused"))

	tests := []struct {
		name          string
		req           portuse.CreateTransactionRequest
		policy        BalanceFailurePolicy
		setupMocks    func(*mpers.MockTransactionRepository, *muse.MockBalanceUseCase, *mcore.MockIDGenerator)
		expectedError error
		assertResult  func(*testing.T, *portuse.TransactionResult)
	}{
		{
			name:   "Successful Creation With Balance",
			req:    validReq,
			policy: PolicyDegrade,
			setupMocks: func(repo *mpers.MockTransactionRepository, enricher *muse.MockBalanceUseCase, ids *mcore.MockIDGenerator) {
				ids.On("NewID").Return(firstTxID).Once()
				repo.On("Create", mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
					return tx.TxID == firstTxID &&
						tx.UserID == "user123" &&
						tx.FormattedAmount() == "100.50" &&
						tx.Currency == "BTC" &&
						tx.CreatedAt.Equal(now)
				})).Return(nil).Once()
				enricher.On("WalletBalance", mock.Anything).
					Return(entity.NewBalanceResult(walletAddress, oneEther()), nil).Once()
			},
			assertResult: func(t *testing.T, result *portuse.TransactionResult) {
				assert.Equal(t, firstTxID, result.Transaction.TxID)
				assert.Equal(t, "user123", result.Transaction.UserID)
				assert.Equal(t, "100.50", result.Transaction.FormattedAmount())
				assert.Equal(t, "BTC", result.Transaction.Currency)
				require.NotNil(t, result.Balance)
				assert.Equal(t, "1.0", result.Balance.BalanceEth)
				assert.NoError(t, result.BalanceErr)
			},
		},
		{
			name:          "Missing User ID",
			req:           portuse.CreateTransactionRequest{Amount: "100.50", Currency: "BTC"},
			policy:        PolicyDegrade,
			setupMocks:    func(*mpers.MockTransactionRepository, *muse.MockBalanceUseCase, *mcore.MockIDGenerator) {},
			expectedError: domainerrs.ErrValidation,
		},
		{
			name:          "Non Numeric Amount",
			req:           portuse.CreateTransactionRequest{UserID: "user123", Amount: "cien", Currency: "BTC"},
			policy:        PolicyDegrade,
			setupMocks:    func(*mpers.MockTransactionRepository, *muse.MockBalanceUseCase, *mcore.MockIDGenerator) {},
			expectedError: domainerrs.ErrValidation,
		},
		{
			name:   "Persistence Failure",
			req:    validReq,
			policy: PolicyDegrade,
			setupMocks: func(repo *mpers.MockTransactionRepository, enricher *muse.MockBalanceUseCase, ids *mcore.MockIDGenerator) {
				ids.On("NewID").Return(firstTxID).Once()
				repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).
					Return(fmt.Errorf("%w: insert failed", domainerrs.ErrDatabaseConnection)).Once()
			},
			expectedError: domainerrs.ErrDatabaseConnection,
		},
		{
			name:   "Balance Failure Degrades",
			req:    validReq,
			policy: PolicyDegrade,
			setupMocks: func(repo *mpers.MockTransactionRepository, enricher *muse.MockBalanceUseCase, ids *mcore.MockIDGenerator) {
				ids.On("NewID").Return(firstTxID).Once()
				repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
				enricher.On("WalletBalance", mock.Anything).Return(nil, upstreamErr).Once()
			},
			assertResult: func(t *testing.T, result *portuse.TransactionResult) {
				assert.Equal(t, firstTxID, result.Transaction.TxID)
				assert.Nil(t, result.Balance)
				assert.True(t, domainerrs.IsUpstreamServiceError(result.BalanceErr))
			},
		},
		{
			name:   "Balance Failure Fails Request",
			req:    validReq,
			policy: PolicyFail,
			setupMocks: func(repo *mpers.MockTransactionRepository, enricher *muse.MockBalanceUseCase, ids *mcore.MockIDGenerator) {
				ids.On("NewID").Return(firstTxID).Once()
				repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil).Once()
				enricher.On("WalletBalance", mock.Anything).Return(nil, upstreamErr).Once()
			},
			expectedError: domainerrs.ErrUpstreamService,
			assertResult: func(t *testing.T, result *portuse.TransactionResult) {
				require.NotNil(t, result)
				assert.Equal(t, firstTxID, result.Transaction.TxID)
				assert.Nil(t, result.Balance)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mpers.NewMockTransactionRepository(t)
			enricher := muse.NewMockBalanceUseCase(t)
			ids := mcore.NewMockIDGenerator(t)
			tt.setupMocks(repo, enricher, ids)

			service := NewTransactionService(repo, enricher, ids, newFixedClock(t, now), newPermissiveLogger(t),
				WithBalanceFailurePolicy(tt.policy))

			result, err := service.CreateTransaction(ctx, tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}
			if tt.assertResult != nil {
				tt.assertResult(t, result)
			}
		})
	}
}

func TestCreateTransactionReportsAllInvalidFields(t *testing.T) {
	service := NewTransactionService(
		mpers.NewMockTransactionRepository(t),
		muse.NewMockBalanceUseCase(t),
		mcore.NewMockIDGenerator(t),
		newFixedClock(t, time.Now()),
		newPermissiveLogger(t),
	)

	_, err := service.CreateTransaction(context.Background(), portuse.CreateTransactionRequest{Amount: "cien"})

	verr, ok := domainerrs.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, FieldUserID)
	assert.Contains(t, verr.Fields, FieldAmount)
	assert.Contains(t, verr.Fields, FieldCurrency)
}

func TestCreateTransactionIdenticalRequestsAreNotDeduplicated(t *testing.T) {
	repo := mpers.NewMockTransactionRepository(t)
	enricher := muse.NewMockBalanceUseCase(t)
	ids := mcore.NewMockIDGenerator(t)

	ids.On("NewID").Return(firstTxID).Once()
	ids.On("NewID").Return(secondTxID).Once()

	var stored []*entity.Transaction
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).
		Run(func(args mock.Arguments) {
			stored = append(stored, args.Get(1).(*entity.Transaction))
		}).
		Return(nil).Twice()
	enricher.On("WalletBalance", mock.Anything).
		Return(entity.NewBalanceResult(walletAddress, oneEther()), nil).Twice()

	service := NewTransactionService(repo, enricher, ids, newFixedClock(t, time.Now()), newPermissiveLogger(t))
	req := portuse.CreateTransactionRequest{UserID: "user123", Amount: "100.50", Currency: "BTC"}

	first, err := service.CreateTransaction(context.Background(), req)
	require.NoError(t, err)
	second, err := service.CreateTransaction(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.Transaction.TxID, second.Transaction.TxID)
	require.Len(t, stored, 2)
	assert.NotSame(t, stored[0], stored[1])
}

func TestValidateTransactionRequest(t *testing.T) {
	service := NewTransactionService(nil, nil, nil, nil, newPermissiveLogger(t))

	assert.NoError(t, service.ValidateTransactionRequest(portuse.CreateTransactionRequest{
		UserID: "user123", Amount: "1", Currency: "BTC",
	}))

	err := service.ValidateTransactionRequest(portuse.CreateTransactionRequest{UserID: "user123", Currency: "BTC"})
	assert.True(t, domainerrs.IsValidationError(err))
}

func TestParseBalanceFailurePolicy(t *testing.T) {
	policy, err := ParseBalanceFailurePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyDegrade, policy)

	policy, err = ParseBalanceFailurePolicy("fail")
	require.NoError(t, err)
	assert.Equal(t, PolicyFail, policy)

	_, err = ParseBalanceFailurePolicy("retry")
	assert.Error(t, err)
}
