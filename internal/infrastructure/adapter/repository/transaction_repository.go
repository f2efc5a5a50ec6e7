package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	queryTimeout    time.Duration
	errorClassifier *ErrorClassifier
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new TransactionRepository instance.
// A zero queryTimeout leaves the caller's deadline untouched.
func NewTransactionRepository(
	db *gorm.DB,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	queryTimeout time.Duration,
) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		queryTimeout:    queryTimeout,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return r.timeProvider.WithTimeout(ctx, r.queryTimeout)
}

// entityToModel converts a transaction entity to a database model
func entityToModel(transaction *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		TxID:      transaction.TxID,
		UserID:    transaction.UserID,
		Amount:    transaction.Amount,
		Currency:  transaction.Currency,
		CreatedAt: transaction.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		TxID:      m.TxID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Currency:  m.Currency,
		CreatedAt: m.CreatedAt,
	}
}

// Create stores a new transaction exactly once
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	r.logger.Debug("Creating transaction", map[string]any{
		"tx_id":   transaction.TxID,
		"user_id": transaction.UserID,
	})

	if err := r.db.WithContext(ctx).Create(entityToModel(transaction)).Error; err != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"tx_id":      transaction.TxID,
			"user_id":    transaction.UserID,
			"error_type": string(r.errorClassifier.Classify(err)),
			"error":      err.Error(),
		})
		return r.errorClassifier.Wrap("create transaction", err)
	}

	return nil
}

// GetByTxID retrieves a transaction by its identifier
func (r *TransactionRepository) GetByTxID(ctx context.Context, txID string) (*entity.Transaction, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var transactionModel model.Transaction
	err := r.db.WithContext(ctx).
		Where("tx_id = ?", txID).
		Take(&transactionModel).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debug("Transaction not found", map[string]any{
				"tx_id": txID,
			})
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"tx_id":      txID,
			"error_type": string(r.errorClassifier.Classify(err)),
			"error":      err.Error(),
		})
		return nil, r.errorClassifier.Wrap("get transaction", err)
	}

	return modelToEntity(&transactionModel), nil
}

// ListByUserID returns all transactions of a user ordered by creation time
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error

	if err != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"user_id":    userID,
			"error_type": string(r.errorClassifier.Classify(err)),
			"error":      err.Error(),
		})
		return nil, r.errorClassifier.Wrap("list transactions", err)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, modelToEntity(&models[i]))
	}

	r.logger.Debug("Transactions listed", map[string]any{
		"user_id": userID,
		"count":   len(transactions),
	})
	return transactions, nil
}
