package transaction

import (
	"context"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
)

// GetTransaction returns one stored transaction by its identifier
func (s *Service) GetTransaction(ctx context.Context, txID string) (*entity.Transaction, error) {
	if err := s.validator.ValidateTxID(txID); err != nil {
		return nil, err
	}
	return s.repo.GetByTxID(ctx, txID)
}

// ListUserTransactions returns all transactions of a user, oldest first
func (s *Service) ListUserTransactions(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return nil, err
	}

	txns, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if txns == nil {
		txns = []*entity.Transaction{}
	}
	return txns, nil
}
