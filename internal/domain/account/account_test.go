package account

import (
	"testing"
	"time"

	"github.com/console-banking-ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOwner string

func (o testOwner) ExternalID() string { return string(o) }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestAccount(t *testing.T, code int64, id, balance string) *Account {
	t.Helper()
	acc, err := NewAccount(code, id, dec(balance), testOwner("AB123"))
	require.NoError(t, err)
	return acc
}

func TestNewAccount(t *testing.T) {
	t.Run("SuccessfulCreation", func(t *testing.T) {
		fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		acc, err := NewAccount(7, "SAVINGS", dec("100.00"), testOwner("AB123"), WithClock(func() time.Time { return fixed }))

		require.NoError(t, err)
		require.NotNil(t, acc)
		assert.Equal(t, int64(7), acc.Code())
		assert.Equal(t, "SAVINGS", acc.ID())
		assert.Equal(t, "AB123", acc.Owner().ExternalID())
		assert.Equal(t, "AB123:SAVINGS", acc.Descriptor())
		assert.True(t, dec("100").Equal(acc.Balance()))
		assert.Equal(t, fixed, acc.CreatedAt())
		assert.Equal(t, []string{"Created with 100.00"}, acc.History())

		entries := acc.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].Sequence)
		assert.Equal(t, shared.EntryTypeCreated, entries[0].Type)
		assert.Equal(t, fixed, entries[0].Timestamp)
	})

	t.Run("DefaultIdentifier", func(t *testing.T) {
		acc, err := NewAccount(3, "", decimal.Zero, nil)
		require.NoError(t, err)
		assert.Equal(t, "ACC3", acc.ID())
		assert.Equal(t, "ACC3", acc.Descriptor(), "accounts without an owner describe themselves by id")
		assert.Equal(t, []string{"Created with 0.00"}, acc.History())
	})

	t.Run("NegativeInitialBalance", func(t *testing.T) {
		acc, err := NewAccount(1, "X", dec("-0.01"), nil)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Nil(t, acc)
	})

	t.Run("TooPreciseInitialBalance", func(t *testing.T) {
		_, err := NewAccount(1, "X", dec("1.001"), nil)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestAccount_Deposit(t *testing.T) {
	t.Run("SuccessfulDeposit", func(t *testing.T) {
		acc := newTestAccount(t, 1, "ACC1", "50.00")

		err := acc.Deposit(dec("20.00"))

		require.NoError(t, err)
		assert.True(t, dec("70").Equal(acc.Balance()))
		assert.Equal(t, []string{"Created with 50.00", "Deposit 20.00"}, acc.History())

		entries := acc.Entries()
		assert.Equal(t, shared.EntryTypeDeposit, entries[1].Type)
		assert.True(t, dec("70").Equal(entries[1].BalanceAfter))
	})

	t.Run("InvalidAmounts", func(t *testing.T) {
		for _, amount := range []string{"0", "-5", "0.001", "1e999999999", "1e-999999999"} {
			acc := newTestAccount(t, 1, "ACC1", "50.00")

			err := acc.Deposit(dec(amount))

			assert.ErrorIs(t, err, ErrInvalidAmount, amount)
			assert.True(t, dec("50").Equal(acc.Balance()), amount)
			assert.Len(t, acc.History(), 1, amount)
		}
	})

	t.Run("NoFloatingPointDrift", func(t *testing.T) {
		acc := newTestAccount(t, 1, "ACC1", "0")
		for i := 0; i < 10; i++ {
			require.NoError(t, acc.Deposit(dec("0.10")))
		}
		assert.True(t, dec("1.00").Equal(acc.Balance()))
		assert.Len(t, acc.History(), 11)
	})
}

func TestAccount_Withdraw(t *testing.T) {
	t.Run("SuccessfulWithdrawal", func(t *testing.T) {
		acc := newTestAccount(t, 1, "ACC1", "100.00")

		err := acc.Withdraw(dec("30.00"))

		require.NoError(t, err)
		assert.True(t, dec("70").Equal(acc.Balance()))
		assert.Equal(t, "Withdraw 30.00", acc.History()[1])
	})

	t.Run("WithdrawEntireBalance", func(t *testing.T) {
		acc := newTestAccount(t, 1, "ACC1", "100.00")
		require.NoError(t, acc.Withdraw(dec("100.00")))
		assert.True(t, acc.Balance().IsZero())
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		acc := newTestAccount(t, 1, "ACC1", "150.00")

		err := acc.Withdraw(dec("200.00"))

		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, dec("150").Equal(acc.Balance()))
		assert.Len(t, acc.History(), 1)
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		acc := newTestAccount(t, 1, "ACC1", "150.00")

		assert.ErrorIs(t, acc.Withdraw(decimal.Zero), ErrInvalidAmount)
		assert.ErrorIs(t, acc.Withdraw(dec("-1")), ErrInvalidAmount)
		assert.ErrorIs(t, acc.Withdraw(dec("1e999999999")), ErrInvalidAmount)
		assert.Len(t, acc.History(), 1)
	})
}

func TestAccount_CanWithdraw(t *testing.T) {
	t.Run("CanWithdrawSufficientFunds", func(t *testing.T) {
		acc := newTestAccount(t, 1, "ACC1", "10.00")
		assert.True(t, acc.CanWithdraw(dec("5.00")))
		assert.True(t, acc.CanWithdraw(dec("10.00")))
	})

	t.Run("CannotWithdrawInsufficientFunds", func(t *testing.T) {
		acc := newTestAccount(t, 1, "ACC1", "10.00")
		assert.False(t, acc.CanWithdraw(dec("10.01")))
	})
}

func TestAccount_ReadsAreIdempotent(t *testing.T) {
	acc := newTestAccount(t, 1, "ACC1", "10.00")
	require.NoError(t, acc.Deposit(dec("5")))

	assert.Equal(t, acc.History(), acc.History())
	assert.True(t, acc.Balance().Equal(acc.Balance()))
}

func TestAccount_EntriesReturnsCopy(t *testing.T) {
	acc := newTestAccount(t, 1, "ACC1", "10.00")

	entries := acc.Entries()
	entries[0].Amount = dec("999")

	assert.Equal(t, "Created with 10.00", acc.History()[0])
}
