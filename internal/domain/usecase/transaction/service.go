package transaction

import (
	"fmt"

	coreport "github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/usecase"
)

// BalanceFailurePolicy decides what happens to a creation request when the
// balance lookup fails after the record was stored
type BalanceFailurePolicy string

const (
	// PolicyDegrade answers with the stored record and no balance
	PolicyDegrade BalanceFailurePolicy = "degrade"
	// PolicyFail answers with an upstream error; the record stays stored
	PolicyFail BalanceFailurePolicy = "fail"
)

// ParseBalanceFailurePolicy maps a config string to a policy
func ParseBalanceFailurePolicy(value string) (BalanceFailurePolicy, error) {
	switch BalanceFailurePolicy(value) {
	case PolicyDegrade, "":
		return PolicyDegrade, nil
	case PolicyFail:
		return PolicyFail, nil
	default:
		return "", fmt.Errorf("unknown balance failure policy %q, must be %q or %q", value, PolicyDegrade, PolicyFail)
	}
}

// Service is the transaction use case implementation
type Service struct {
	repo          persistence.TransactionRepository
	enricher      usecase.BalanceUseCase
	validator     *TransactionValidator
	idGenerator   coreport.IDGenerator
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	failurePolicy BalanceFailurePolicy
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// Option configures optional Service behaviour
type Option func(*Service)

// WithBalanceFailurePolicy sets how balance lookup failures are handled
func WithBalanceFailurePolicy(policy BalanceFailurePolicy) Option {
	return func(s *Service) {
		s.failurePolicy = policy
	}
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	repo persistence.TransactionRepository,
	enricher usecase.BalanceUseCase,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		repo:          repo,
		enricher:      enricher,
		validator:     NewTransactionValidator(),
		idGenerator:   idGenerator,
		timeProvider:  timeProvider,
		logger:        logger,
		failurePolicy: PolicyDegrade,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailurePolicy returns the configured balance failure policy
func (s *Service) FailurePolicy() BalanceFailurePolicy {
	return s.failurePolicy
}
