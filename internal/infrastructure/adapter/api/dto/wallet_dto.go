package dto

import "github.com/amirhossein-jamali/wallet-api/internal/domain/entity"

// NativeCurrency is the unit of reported balances
const NativeCurrency = "ETH"

// WalletBalanceResponse represents the API response for an address balance
type WalletBalanceResponse struct {
	WalletAddress string `json:"walletAddress"`
	Currency      string `json:"currency"`
	BalanceEth    string `json:"balance_eth"`
}

// NewWalletBalanceResponse serializes a balance result
func NewWalletBalanceResponse(result *entity.BalanceResult) WalletBalanceResponse {
	return WalletBalanceResponse{
		WalletAddress: result.Address,
		Currency:      NativeCurrency,
		BalanceEth:    result.BalanceEth,
	}
}

// HealthResponse represents the API response of the health probe
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
