package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	tport "github.com/amirhossein-jamali/wallet-api/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

const (
	// MaxUserIDLength is the storage limit of the user identifier
	MaxUserIDLength = 255
	// MaxCurrencyLength is the storage limit of the currency code
	MaxCurrencyLength = 10
)

// Transaction is an immutable record of a user's monetary amount in a currency
type Transaction struct {
	TxID      string          // Generated identifier, never reassigned
	UserID    string          // Owner of the transaction
	Amount    decimal.Decimal // Fixed-point amount with 2 fraction digits
	Currency  string          // Short currency token, e.g. "BTC"
	CreatedAt time.Time       // When the record was created
}

// NewTransaction creates a transaction record with the given identifier.
// Field-level validation with client-facing messages happens before this in
// the use case; here only the record invariants are enforced.
func NewTransaction(
	txID string,
	userID string,
	amount decimal.Decimal,
	currency string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if strings.TrimSpace(txID) == "" {
		return nil, errs.ErrInvalidTransactionID
	}

	if strings.TrimSpace(userID) == "" || utf8.RuneCountInString(userID) > MaxUserIDLength {
		return nil, errs.ErrInvalidUserID
	}

	if strings.TrimSpace(currency) == "" || utf8.RuneCountInString(currency) > MaxCurrencyLength {
		return nil, errs.ErrInvalidCurrency
	}

	return &Transaction{
		TxID:      txID,
		UserID:    userID,
		Amount:    amount.Round(MaxDecimalPlaces),
		Currency:  currency,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// FormattedAmount returns the amount as fixed-point text, e.g. "100.50"
func (t *Transaction) FormattedAmount() string {
	return FormatAmount(t.Amount)
}

// String implements fmt.Stringer
func (t *Transaction) String() string {
	return fmt.Sprintf("%s %s - %s", t.FormattedAmount(), t.Currency, t.UserID)
}
