package transaction

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/wallet-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-api/internal/domain/port/usecase"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field names as they appear in the API payload
const (
	FieldUserID   = "userId"
	FieldAmount   = "amount"
	FieldCurrency = "currency"
	FieldTxID     = "txId"
)

// Validation messages
const (
	MsgRequired = "This field is required."
	MsgBlank    = "This field may not be blank."
)

// TransactionValidator provides validation for transaction requests
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateCreate validates all creation fields and returns the parsed amount.
// Every failing field is reported, not just the first one.
func (v *TransactionValidator) ValidateCreate(req usecase.CreateTransactionRequest) (decimal.Decimal, *errs.ValidationError) {
	verr := errs.NewValidationError()

	v.validateText(verr, FieldUserID, req.UserID, entity.MaxUserIDLength)
	v.validateText(verr, FieldCurrency, req.Currency, entity.MaxCurrencyLength)
	amount := v.validateAmount(verr, req.Amount)

	if verr.HasErrors() {
		return decimal.Zero, verr
	}
	return amount, nil
}

// validateText checks a required text field and its maximum length
func (v *TransactionValidator) validateText(verr *errs.ValidationError, field, value string, maxLen int) {
	switch {
	case value == "":
		verr.Add(field, MsgRequired)
	case strings.TrimSpace(value) == "":
		verr.Add(field, MsgBlank)
	case utf8.RuneCountInString(value) > maxLen:
		verr.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", maxLen))
	}
}

// validateAmount checks that the amount is present and a valid fixed-point decimal
func (v *TransactionValidator) validateAmount(verr *errs.ValidationError, amount string) decimal.Decimal {
	if amount == "" {
		verr.Add(FieldAmount, MsgRequired)
		return decimal.Zero
	}

	value, err := entity.ParseAmount(amount)
	if err != nil {
		var amountErr *entity.AmountError
		if errors.As(err, &amountErr) {
			verr.Add(FieldAmount, amountErr.Message)
		} else {
			verr.Add(FieldAmount, entity.MsgAmountInvalid)
		}
		return decimal.Zero
	}
	return value
}

// ValidateTxID checks that a transaction ID is a UUID in the canonical
// 8-4-4-4-12 form. The braced, urn and undashed forms uuid.Parse also
// accepts are rejected since the store only understands the canonical one.
func (v *TransactionValidator) ValidateTxID(txID string) error {
	parsed, err := uuid.Parse(txID)
	if err != nil || parsed.String() != strings.ToLower(txID) {
		verr := errs.NewValidationError()
		verr.Add(FieldTxID, "Must be a valid UUID.")
		return fmt.Errorf("%w: %w", errs.ErrInvalidTransactionID, verr)
	}
	return nil
}

// ValidateUserID checks the user ID used for listing
func (v *TransactionValidator) ValidateUserID(userID string) error {
	verr := errs.NewValidationError()
	v.validateText(verr, FieldUserID, userID, entity.MaxUserIDLength)
	return verr.OrNil()
}
