package handler

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionService usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	useJSONFieldNames()

	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// CreateTransaction handles the POST /transactions/ endpoint
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, h.logger, fmt.Errorf("%w: %w", domainerr.ErrInvalidRequest, err))
		return
	}

	var req dto.CreateTransactionRequest
	if err := binding.JSON.BindBody(body, &req); err != nil && !isEmptyBody(err) {
		bindErrs, ok := bindingFieldErrors(err, body)
		if !ok {
			h.logger.Debug("Malformed transaction request", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "JSON parse error - " + err.Error(),
			})
			return
		}

		// fields rejected while binding keep their own message; the rest are
		// checked by the use case so all failures are reported at once
		if domainErr, ok := domainerr.AsValidationError(h.transactionService.ValidateTransactionRequest(req.ToUseCase())); ok {
			for field, messages := range domainErr.Fields {
				if _, seen := bindErrs.Fields[field]; !seen {
					bindErrs.Fields[field] = messages
				}
			}
		}
		c.JSON(http.StatusBadRequest, dto.FieldErrors(bindErrs.Fields))
		return
	}

	result, err := h.transactionService.CreateTransaction(c.Request.Context(), req.ToUseCase())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreateTransactionResponse(result))
}

// GetTransaction handles the GET /transactions/:txId endpoint
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	txn, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("txId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStoredTransactionResponse(txn))
}

// ListTransactions handles the GET /transactions?userId= endpoint
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	txns, err := h.transactionService.ListUserTransactions(c.Request.Context(), c.Query("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(txns))
}
