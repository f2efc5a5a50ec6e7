package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/usecase"
)

// CreateTransactionRequest is the body of POST /transactions/.
// Amount is kept raw so both JSON numbers and numeric strings are accepted.
type CreateTransactionRequest struct {
	UserID   string          `json:"userId" binding:"required,max=255"`
	Amount   json.RawMessage `json:"amount"`
	Currency string          `json:"currency" binding:"required,max=10"`
}

// stringFields are the request fields that must be sent as JSON strings
var stringFields = []string{"userId", "currency"}

// NonStringFields returns the string fields of a request body that hold a
// non-string value. encoding/json stops reporting after the first type
// mismatch; this finds all of them. Missing and null fields are not listed.
func NonStringFields(body []byte) []string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	var fields []string
	for _, name := range stringFields {
		value, ok := raw[name]
		if !ok {
			continue
		}
		value = bytes.TrimSpace(value)
		if len(value) == 0 || value[0] == '"' || bytes.Equal(value, []byte("null")) {
			continue
		}
		fields = append(fields, name)
	}
	return fields
}

// AmountText returns the amount as decimal text; "" when missing or null
func (r *CreateTransactionRequest) AmountText() string {
	raw := bytes.TrimSpace(r.Amount)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var text string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err == nil {
			return text
		}
	}
	return string(raw)
}

// ToUseCase maps the request to the use case input
func (r *CreateTransactionRequest) ToUseCase() usecase.CreateTransactionRequest {
	return usecase.CreateTransactionRequest{
		UserID:   r.UserID,
		Amount:   r.AmountText(),
		Currency: r.Currency,
	}
}

// TransactionResponse is the serialized transaction record
type TransactionResponse struct {
	TxID     string `json:"txId"`
	UserID   string `json:"userId"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// StoredTransactionResponse is a transaction read back from the store
type StoredTransactionResponse struct {
	TransactionResponse
	CreatedAt time.Time `json:"createdAt"`
}

// GoerliBalance is the balance block merged into a creation response
type GoerliBalance struct {
	BalanceEth string `json:"balance_eth"`
}

// CreateTransactionResponse is the 201 body of POST /transactions/.
// GoerliBalance is null when the lookup failed and the failure was tolerated.
type CreateTransactionResponse struct {
	TransactionResponse
	GoerliBalance *GoerliBalance `json:"goerli_balance"`
}

// NewTransactionResponse serializes a stored transaction
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		TxID:     txn.TxID,
		UserID:   txn.UserID,
		Amount:   txn.FormattedAmount(),
		Currency: txn.Currency,
	}
}

// NewCreateTransactionResponse merges the record with its balance
func NewCreateTransactionResponse(result *usecase.TransactionResult) CreateTransactionResponse {
	resp := CreateTransactionResponse{
		TransactionResponse: NewTransactionResponse(result.Transaction),
	}
	if result.Balance != nil {
		resp.GoerliBalance = &GoerliBalance{BalanceEth: result.Balance.BalanceEth}
	}
	return resp
}

// NewStoredTransactionResponse serializes a stored transaction with its creation time
func NewStoredTransactionResponse(txn *entity.Transaction) StoredTransactionResponse {
	return StoredTransactionResponse{
		TransactionResponse: NewTransactionResponse(txn),
		CreatedAt:           txn.CreatedAt.UTC(),
	}
}

// NewTransactionListResponse serializes a list of transactions
func NewTransactionListResponse(txns []*entity.Transaction) []StoredTransactionResponse {
	resp := make([]StoredTransactionResponse, 0, len(txns))
	for _, txn := range txns {
		resp = append(resp, NewStoredTransactionResponse(txn))
	}
	return resp
}
