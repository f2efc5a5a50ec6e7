package blockchain

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	mchain "github.com/amirhossein-jamali/wallet-api/mocks/port/blockchain"
	mcore "github.com/amirhossein-jamali/wallet-api/mocks/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedBalanceSource(t *testing.T) {
	next := mchain.NewMockBalanceSource(t)
	next.On("BalanceAt", mock.Anything, testWallet).Return(big.NewInt(42), nil).Once()
	next.On("BalanceAt", mock.Anything, testWallet).Return(nil, errors.New("timeout")).Once()

	clock := mcore.NewMockTimeProvider(t)
	clock.On("Now").Return(time.Unix(0, 0))
	clock.On("Since", mock.Anything).Return(120 * time.Millisecond)

	reg := prometheus.NewRegistry()
	source := NewInstrumentedBalanceSource(next, reg, clock)

	wei, err := source.BalanceAt(context.Background(), testWallet)
	require.NoError(t, err)
	assert.Equal(t, int64(42), wei.Int64())

	_, err = source.BalanceAt(context.Background(), testWallet)
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(source.lookups.WithLabelValues(resultSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(source.lookups.WithLabelValues(resultError)))

	count, err := testutil.GatherAndCount(reg, "wallet_api_balance_lookup_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
