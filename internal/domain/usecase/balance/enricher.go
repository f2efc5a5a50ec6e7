package balance

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/blockchain"
	coreport "github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/usecase"
)

// ServiceName identifies the balance-query service in errors and logs
const ServiceName = "ethereum-rpc"

// FieldWalletAddress is the API field name of a queried address
const FieldWalletAddress = "walletAddress"

// EnricherConfig holds the fixed lookup settings, built once at startup
type EnricherConfig struct {
	// WalletAddress is the account whose balance is merged into responses
	WalletAddress string
	// RequestTimeout bounds a single lookup; zero means no extra bound
	RequestTimeout time.Duration
}

// Enricher fetches on-chain balances and converts them to ether
type Enricher struct {
	source       blockchain.BalanceSource
	config       EnricherConfig
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.BalanceUseCase = (*Enricher)(nil)

// NewEnricher creates a new balance enricher
func NewEnricher(
	source blockchain.BalanceSource,
	config EnricherConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Enricher {
	return &Enricher{
		source:       source,
		config:       config,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// WalletBalance returns the balance of the configured wallet
func (e *Enricher) WalletBalance(ctx context.Context) (*entity.BalanceResult, error) {
	return e.fetch(ctx, e.config.WalletAddress)
}

// BalanceOf returns the balance of an arbitrary address
func (e *Enricher) BalanceOf(ctx context.Context, address string) (*entity.BalanceResult, error) {
	if err := entity.ValidateAddress(address); err != nil {
		verr := errs.NewValidationError()
		verr.Add(FieldWalletAddress, "Enter a valid hex account address.")
		return nil, verr
	}
	return e.fetch(ctx, address)
}

func (e *Enricher) fetch(ctx context.Context, address string) (*entity.BalanceResult, error) {
	if e.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = e.timeProvider.WithTimeout(ctx, e.config.RequestTimeout)
		defer cancel()
	}

	start := e.timeProvider.Now()
	wei, err := e.source.BalanceAt(ctx, address)
	if err != nil {
		return nil, errs.NewUpstreamServiceError(ServiceName, "eth_getBalance", err)
	}

	result := entity.NewBalanceResult(address, wei)
	e.logger.Debug("Balance fetched", map[string]any{
		"address":     address,
		"balance_eth": result.BalanceEth,
		"elapsed_ms":  e.timeProvider.Since(start).Milliseconds(),
	})
	return result, nil
}
