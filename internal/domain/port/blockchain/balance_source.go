package blockchain

import (
	"context"
	"math/big"
)

// BalanceSource queries the native-currency balance of an address
type BalanceSource interface {
	// BalanceAt returns the latest balance of address in the smallest
	// indivisible unit (wei for Ethereum networks)
	BalanceAt(ctx context.Context, address string) (*big.Int, error)
}
