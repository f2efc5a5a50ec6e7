package handler

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"testing"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/logger"
	muse "github.com/amirhossein-jamali/wallet-api/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHome(t *testing.T) {
	router := gin.New()
	router.GET("/", Home)

	w := performRequest(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetBalance(t *testing.T) {
	newRouter := func(t *testing.T) (*gin.Engine, *muse.MockBalanceUseCase) {
		useCase := muse.NewMockBalanceUseCase(t)
		router := gin.New()
		router.GET("/balance/:walletAddress", NewBalanceHandler(useCase, logger.NewNoopLogger()).GetBalance)
		return router, useCase
	}

	t.Run("Success", func(t *testing.T) {
		router, useCase := newRouter(t)
		useCase.On("BalanceOf", mock.Anything, testWallet).
			Return(entity.NewBalanceResult(testWallet, big.NewInt(500_000_000_000_000_000)), nil).Once()

		w := performRequest(router, http.MethodGet, "/balance/"+testWallet, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"walletAddress": "`+testWallet+`", "currency": "ETH", "balance_eth": "0.5"}`, w.Body.String())
	})

	t.Run("Invalid Address", func(t *testing.T) {
		verr := domainerr.NewValidationError()
		verr.Add("walletAddress", "Enter a valid hex account address.")

		router, useCase := newRouter(t)
		useCase.On("BalanceOf", mock.Anything, "0x12").Return(nil, verr).Once()

		w := performRequest(router, http.MethodGet, "/balance/0x12", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string][]string{"walletAddress": {"Enter a valid hex account address."}}, decodeFields(t, w))
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		router, useCase := newRouter(t)
		useCase.On("BalanceOf", mock.Anything, testWallet).
			Return(nil, domainerr.NewUpstreamServiceError("ethereum-rpc", "eth_getBalance", errors.New("timeout"))).Once()

		w := performRequest(router, http.MethodGet, "/balance/"+testWallet, nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(_ context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		router := gin.New()
		router.GET("/health", NewHealthHandler(stubPinger{}, logger.NewNoopLogger()).Check)

		w := performRequest(router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status": "ok", "database": "up"}`, w.Body.String())
	})

	t.Run("Database Down", func(t *testing.T) {
		router := gin.New()
		router.GET("/health", NewHealthHandler(stubPinger{err: errors.New("refused")}, logger.NewNoopLogger()).Check)

		w := performRequest(router, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
