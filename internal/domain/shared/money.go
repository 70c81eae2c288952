package shared

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of fraction digits amounts carry
const DisplayPlaces = 2

// Bounds on the decimal representation. Arithmetic on a decimal rescales its
// coefficient to 10^|exponent|, so exponents and digit counts stay small.
const (
	minExponent = -18
	maxExponent = 18
	maxDigits   = 30
)

var (
	ErrInvalidAmount = errors.New("amount must be a positive number with at most two decimals")
	// ErrNonPositiveAmount is an ErrInvalidAmount caused by the sign alone
	ErrNonPositiveAmount = fmt.Errorf("%w: must be positive", ErrInvalidAmount)
)

// ParseAmount parses user input into an exact decimal amount.
// It does not check the sign; callers decide whether zero is acceptable.
func ParseAmount(input string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !HasValidPrecision(amount) {
		return decimal.Zero, ErrInvalidAmount
	}

	return amount, nil
}

// ParseInitialBalance parses an opening balance; empty input means zero
func ParseInitialBalance(input string) (decimal.Decimal, error) {
	if strings.TrimSpace(input) == "" {
		return decimal.Zero, nil
	}

	amount, err := ParseAmount(input)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// ValidatePositive checks that amount is strictly positive and representable in minor units
func ValidatePositive(amount decimal.Decimal) error {
	if !HasValidPrecision(amount) {
		return ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	return nil
}

// HasValidPrecision reports whether amount has no more than DisplayPlaces
// fraction digits and a representation small enough to compute with
func HasValidPrecision(amount decimal.Decimal) bool {
	if !withinBounds(amount) {
		return false
	}
	return amount.Equal(amount.Truncate(DisplayPlaces))
}

func withinBounds(amount decimal.Decimal) bool {
	exp := amount.Exponent()
	if exp < minExponent || exp > maxExponent {
		return false
	}
	return amount.NumDigits() <= maxDigits
}

// FormatAmount renders an amount with exactly two fraction digits
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPlaces)
}
