package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// BalanceHandler handles wallet balance lookups
type BalanceHandler struct {
	balanceService usecase.BalanceUseCase
	logger         coreport.Logger
}

// NewBalanceHandler creates a new balance handler instance
func NewBalanceHandler(balanceService usecase.BalanceUseCase, logger coreport.Logger) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		logger:         logger,
	}
}

// GetBalance handles the GET /balance/:walletAddress endpoint
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	result, err := h.balanceService.BalanceOf(c.Request.Context(), c.Param("walletAddress"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWalletBalanceResponse(result))
}
