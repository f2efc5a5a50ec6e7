package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
)

// TransactionRepository defines the record store for transactions.
// Records are append-only: there is no update or delete.
type TransactionRepository interface {
	// Create saves a new transaction
	//
	// Possible errors:
	// - ErrDatabaseConnection: If the write fails for any reason
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByTxID retrieves a transaction by its identifier
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction has the given ID
	// - ErrDatabaseConnection: If database connection fails
	GetByTxID(ctx context.Context, txID string) (*entity.Transaction, error)

	// ListByUserID returns all transactions of a user, oldest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUserID(ctx context.Context, userID string) ([]*entity.Transaction, error)
}
