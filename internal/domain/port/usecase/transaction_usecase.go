package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
)

// CreateTransactionRequest represents an incoming transaction creation request.
// Amount is the decimal text as sent by the client.
type CreateTransactionRequest struct {
	UserID   string
	Amount   string
	Currency string
}

// TransactionResult contains the stored record and its balance enrichment
type TransactionResult struct {
	Transaction *entity.Transaction
	// Balance is nil when the lookup failed and the failure was tolerated
	Balance *entity.BalanceResult
	// BalanceErr holds the tolerated lookup failure, if any
	BalanceErr error
}

// TransactionUseCase defines methods for transaction-related business operations
type TransactionUseCase interface {
	// CreateTransaction validates and stores a transaction, then enriches the
	// result with the configured wallet balance
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*TransactionResult, error)

	// ValidateTransactionRequest validates an incoming request without storing it
	ValidateTransactionRequest(req CreateTransactionRequest) error

	// GetTransaction returns one stored transaction
	GetTransaction(ctx context.Context, txID string) (*entity.Transaction, error)

	// ListUserTransactions returns all transactions of a user, oldest first
	ListUserTransactions(ctx context.Context, userID string) ([]*entity.Transaction, error)
}
