package transaction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/usecase"
)

// ValidateTransactionRequest validates an incoming request without storing it
func (s *Service) ValidateTransactionRequest(req usecase.CreateTransactionRequest) error {
	if _, verr := s.validator.ValidateCreate(req); verr != nil {
		return verr
	}
	return nil
}

// CreateTransaction validates the request, stores one record under a fresh
// identifier and enriches the result with the configured wallet balance.
//
// The record is stored before the balance lookup, so a lookup failure never
// undoes the write. Under PolicyFail the failure is returned together with the
// result; under PolicyDegrade it is only reported in result.BalanceErr.
func (s *Service) CreateTransaction(ctx context.Context, req usecase.CreateTransactionRequest) (*usecase.TransactionResult, error) {
	amount, verr := s.validator.ValidateCreate(req)
	if verr != nil {
		s.logger.Debug("Transaction request rejected", verr.LogFields())
		return nil, verr
	}

	txn, err := entity.NewTransaction(s.idGenerator.NewID(), req.UserID, amount, req.Currency, s.timeProvider)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrValidation, err)
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		s.logger.Error("Failed to store transaction", map[string]any{
			"tx_id":   txn.TxID,
			"user_id": txn.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"tx_id":    txn.TxID,
		"user_id":  txn.UserID,
		"amount":   txn.FormattedAmount(),
		"currency": txn.Currency,
	})

	result := &usecase.TransactionResult{Transaction: txn}

	balance, err := s.enricher.WalletBalance(ctx)
	if err != nil {
		fields := map[string]any{
			"tx_id":  txn.TxID,
			"policy": string(s.failurePolicy),
			"error":  err.Error(),
		}
		if s.failurePolicy == PolicyFail {
			s.logger.Error("Balance lookup failed, failing request", fields)
			return result, err
		}
		s.logger.Warn("Balance lookup failed, responding without balance", fields)
		result.BalanceErr = err
		return result, nil
	}

	result.Balance = balance
	return result, nil
}
