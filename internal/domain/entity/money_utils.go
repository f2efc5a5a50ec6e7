package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	"github.com/shopspring/decimal"
)

const (
	// MaxDecimalPlaces defines the maximum number of fraction digits allowed for money amounts
	MaxDecimalPlaces = 2
	// MaxDigits defines the maximum number of significant digits of a money amount
	MaxDigits = 10
)

// AmountError describes why an amount was rejected. The message is suitable
// for returning to API clients.
type AmountError struct {
	Message string
}

// Error implements the error interface
func (e *AmountError) Error() string {
	return errs.ErrInvalidAmount.Error() + ": " + e.Message
}

// Unwrap returns ErrInvalidAmount so callers can use errors.Is
func (e *AmountError) Unwrap() error {
	return errs.ErrInvalidAmount
}

// Amount validation messages
const (
	MsgAmountInvalid       = "A valid number is required."
	MsgAmountMaxDigits     = "Ensure that there are no more than 10 digits in total."
	MsgAmountMaxDecimals   = "Ensure that there are no more than 2 decimal places."
	MsgAmountMaxWholeDigit = "Ensure that there are no more than 8 digits before the decimal point."
)

// ParseAmount parses a decimal amount and checks its precision.
// Accepted: "100", "100.5", "100.50", "-3.10", "1e2".
// Rejected: empty text, non-numbers, NaN/Inf, more than 2 fraction digits,
// more than 10 digits in total, more than 8 digits before the point.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, &AmountError{Message: MsgAmountInvalid}
	}

	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, &AmountError{Message: MsgAmountInvalid}
	}

	totalDigits, wholeDigits, decimalPlaces := precisionOf(value)

	switch {
	case totalDigits > MaxDigits:
		return decimal.Zero, &AmountError{Message: MsgAmountMaxDigits}
	case decimalPlaces > MaxDecimalPlaces:
		return decimal.Zero, &AmountError{Message: MsgAmountMaxDecimals}
	case wholeDigits > MaxDigits-MaxDecimalPlaces:
		return decimal.Zero, &AmountError{Message: MsgAmountMaxWholeDigit}
	}

	return value.Round(MaxDecimalPlaces), nil
}

// precisionOf counts digits the way the input was written: trailing zeros
// after the point count as decimal places ("1.000" has three).
func precisionOf(value decimal.Decimal) (totalDigits, wholeDigits, decimalPlaces int) {
	digits := len(strings.TrimPrefix(value.Coefficient().String(), "-"))
	exponent := int(value.Exponent())

	switch {
	case exponent >= 0:
		totalDigits = digits + exponent
		wholeDigits = totalDigits
	case digits > -exponent:
		totalDigits = digits
		decimalPlaces = -exponent
		wholeDigits = totalDigits - decimalPlaces
	default:
		totalDigits = -exponent
		decimalPlaces = totalDigits
	}
	return totalDigits, wholeDigits, decimalPlaces
}

// FormatAmount renders an amount with exactly two fraction digits.
// For example 100.5 becomes "100.50" and 7 becomes "7.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}
