package blockchain

import (
	"context"
	"fmt"
	"math/big"

	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/blockchain"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthBalanceSource reads account balances from an Ethereum JSON-RPC endpoint.
// The underlying client keeps one connection pool and is safe for
// concurrent use.
type EthBalanceSource struct {
	client *ethclient.Client
	logger core.Logger
}

var _ blockchain.BalanceSource = (*EthBalanceSource)(nil)

// NewEthBalanceSource dials the RPC endpoint. For HTTP(S) endpoints no
// request is sent until the first lookup.
func NewEthBalanceSource(ctx context.Context, rpcURL string, logger core.Logger) (*EthBalanceSource, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ethereum rpc: %w", err)
	}

	logger.Info("Ethereum RPC client ready", nil)

	return &EthBalanceSource{
		client: client,
		logger: logger,
	}, nil
}

// BalanceAt returns the balance in wei at the latest block
func (s *EthBalanceSource) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidAddress, address)
	}

	wei, err := s.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, err
	}
	return wei, nil
}

// Close releases the RPC client
func (s *EthBalanceSource) Close() {
	s.client.Close()
}
