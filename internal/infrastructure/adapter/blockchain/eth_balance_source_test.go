package blockchain

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWallet = "0xdAC17F958D2ee523a2206206994597C13D831ec7"

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params []any           `json:"params"`
}

// newRPCServer answers eth_getBalance with result, or with an RPC error when
// result is empty
func newRPCServer(t *testing.T, result string, seen *[]rpcRequest) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if seen != nil {
			*seen = append(*seen, req)
		}

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if result == "" {
			resp["error"] = map[string]any{"code": -32000, "message": "header not found"}
		} else {
			resp["result"] = result
		}

		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestEthBalanceSourceBalanceAt(t *testing.T) {
	var seen []rpcRequest
	server := newRPCServer(t, "0xde0b6b3a7640000", &seen)
	defer server.Close()

	source, err := NewEthBalanceSource(context.Background(), server.URL, logger.NewNoopLogger())
	require.NoError(t, err)
	defer source.Close()

	wei, err := source.BalanceAt(context.Background(), testWallet)

	require.NoError(t, err)
	expected, _ := new(big.Int).SetString("1000000000000000000", 10)
	assert.Equal(t, 0, expected.Cmp(wei))

	require.Len(t, seen, 1)
	assert.Equal(t, "eth_getBalance", seen[0].Method)
	require.Len(t, seen[0].Params, 2)
	assert.True(t, strings.EqualFold(testWallet, seen[0].Params[0].(string)))
	assert.Equal(t, "latest", seen[0].Params[1])
}

func TestEthBalanceSourceRPCError(t *testing.T) {
	server := newRPCServer(t, "", nil)
	defer server.Close()

	source, err := NewEthBalanceSource(context.Background(), server.URL, logger.NewNoopLogger())
	require.NoError(t, err)
	defer source.Close()

	wei, err := source.BalanceAt(context.Background(), testWallet)

	assert.Nil(t, wei)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header not found")
}

func TestEthBalanceSourceInvalidAddress(t *testing.T) {
	var seen []rpcRequest
	server := newRPCServer(t, "0x0", &seen)
	defer server.Close()

	source, err := NewEthBalanceSource(context.Background(), server.URL, logger.NewNoopLogger())
	require.NoError(t, err)
	defer source.Close()

	_, err = source.BalanceAt(context.Background(), "0x1234")

	assert.ErrorIs(t, err, errs.ErrInvalidAddress)
	assert.Empty(t, seen)
}

func TestNewEthBalanceSourceBadURL(t *testing.T) {
	_, err := NewEthBalanceSource(context.Background(), "ftp://example.invalid", logger.NewNoopLogger())
	assert.Error(t, err)
}
