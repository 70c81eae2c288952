package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Integer", "50", "50", false},
		{"TwoDecimals", "12.34", "12.34", false},
		{"SurroundingSpaces", "  7.5 ", "7.5", false},
		{"Negative", "-3.10", "-3.1", false},
		{"Empty", "", "", true},
		{"NotANumber", "ten", "", true},
		{"TooPrecise", "1.005", "", true},
		{"TrailingZerosAllowed", "1.500", "1.5", false},
		{"ScientificWithinBounds", "1.5e2", "150", false},
		{"HugeExponent", "1e999999999", "", true},
		{"TinyExponent", "1e-999999999", "", true},
		{"TooManyDigits", "1234567890123456789012345678901", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(amount), "got %s", amount)
		})
	}
}

func TestParseInitialBalance(t *testing.T) {
	t.Run("EmptyMeansZero", func(t *testing.T) {
		amount, err := ParseInitialBalance("   ")
		require.NoError(t, err)
		assert.True(t, amount.IsZero())
	})

	t.Run("ZeroAllowed", func(t *testing.T) {
		amount, err := ParseInitialBalance("0")
		require.NoError(t, err)
		assert.True(t, amount.IsZero())
	})

	t.Run("NegativeRejected", func(t *testing.T) {
		_, err := ParseInitialBalance("-1")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("UnparsableRejected", func(t *testing.T) {
		_, err := ParseInitialBalance("abc")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestValidatePositive(t *testing.T) {
	assert.NoError(t, ValidatePositive(decimal.RequireFromString("0.01")))
	assert.ErrorIs(t, ValidatePositive(decimal.Zero), ErrNonPositiveAmount)
	assert.ErrorIs(t, ValidatePositive(decimal.RequireFromString("-5")), ErrNonPositiveAmount)
	assert.ErrorIs(t, ValidatePositive(decimal.RequireFromString("-5")), ErrInvalidAmount)

	err := ValidatePositive(decimal.RequireFromString("0.001"))
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.NotErrorIs(t, err, ErrNonPositiveAmount)

	assert.ErrorIs(t, ValidatePositive(decimal.New(1, 999999999)), ErrInvalidAmount)
	assert.ErrorIs(t, ValidatePositive(decimal.New(1, -999999999)), ErrInvalidAmount)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "150.00", FormatAmount(decimal.NewFromInt(150)))
	assert.Equal(t, "0.10", FormatAmount(decimal.RequireFromString("0.1")))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
}

func TestEntryType_Label(t *testing.T) {
	assert.Equal(t, "Created with", EntryTypeCreated.Label())
	assert.Equal(t, "Deposit", EntryTypeDeposit.Label())
	assert.Equal(t, "Withdraw", EntryTypeWithdrawal.Label())
	assert.Equal(t, "Transfer out", EntryTypeTransferOut.Label())
	assert.Equal(t, "Transfer in", EntryTypeTransferIn.Label())
	assert.True(t, EntryTypeTransferIn.IsTransfer())
	assert.False(t, EntryTypeDeposit.IsTransfer())
}
