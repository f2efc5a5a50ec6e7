package entity

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the fixed scale between wei and ether (1 ether = 10^18 wei)
const EtherDecimals = 18

// BalanceResult is the ephemeral outcome of a balance lookup. It is produced
// per request and never stored.
type BalanceResult struct {
	Address    string
	BalanceWei *big.Int
	BalanceEth string
}

// NewBalanceResult builds a balance result from a wei amount
func NewBalanceResult(address string, wei *big.Int) *BalanceResult {
	if wei == nil {
		wei = new(big.Int)
	}
	return &BalanceResult{
		Address:    address,
		BalanceWei: new(big.Int).Set(wei),
		BalanceEth: WeiToEther(wei),
	}
}

// WeiToEther converts a wei amount to ether text. The conversion is exact;
// the result always carries at least one fraction digit ("1.0", "0.5",
// "0.000000000000000001").
func WeiToEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}

	text := decimal.NewFromBigInt(wei, -EtherDecimals).String()
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}
