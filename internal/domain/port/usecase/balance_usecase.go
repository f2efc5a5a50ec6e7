package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
)

// BalanceUseCase defines on-chain balance lookups
type BalanceUseCase interface {
	// WalletBalance returns the balance of the configured wallet
	WalletBalance(ctx context.Context) (*entity.BalanceResult, error)

	// BalanceOf returns the balance of an arbitrary address
	BalanceOf(ctx context.Context, address string) (*entity.BalanceResult, error)
}
