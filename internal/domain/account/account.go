package account

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/console-banking-ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = shared.ErrInvalidAmount
)

// Owner is the party holding an account. Accounts only read from it.
type Owner interface {
	ExternalID() string
}

// Account is a balance with an append-only history.
// All methods are safe for concurrent use; every mutation holds mu and
// appends exactly one entry while the new balance is written.
type Account struct {
	mu        sync.Mutex
	code      int64
	id        string
	owner     Owner
	balance   decimal.Decimal
	history   []Entry
	createdAt time.Time
	now       func() time.Time
}

// Option configures an Account at creation
type Option func(*Account)

// WithClock overrides the time source used to stamp history entries
func WithClock(now func() time.Time) Option {
	return func(a *Account) {
		if now != nil {
			a.now = now
		}
	}
}

// DefaultID is the identifier given to an account opened without one
func DefaultID(code int64) string {
	return fmt.Sprintf("ACC%d", code)
}

// NewAccount creates an account seeded with initialBalance, recorded as its first history entry
func NewAccount(code int64, id string, initialBalance decimal.Decimal, owner Owner, opts ...Option) (*Account, error) {
	if initialBalance.IsNegative() || !shared.HasValidPrecision(initialBalance) {
		return nil, ErrInvalidAmount
	}
	if id == "" {
		id = DefaultID(code)
	}

	a := &Account{
		code:    code,
		id:      id,
		owner:   owner,
		balance: initialBalance,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.createdAt = a.now()
	a.appendEntry(shared.EntryTypeCreated, initialBalance, "", uuid.Nil)
	return a, nil
}

// Code returns the ledger-assigned sequential code
func (a *Account) Code() int64 { return a.code }

// ID returns the human-chosen identifier
func (a *Account) ID() string { return a.id }

// Owner returns the holder of the account, nil when opened without one
func (a *Account) Owner() Owner { return a.owner }

// CreatedAt returns the creation time
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// Descriptor identifies the account in transfer history lines as "<owner id>:<account id>"
func (a *Account) Descriptor() string {
	if a.owner == nil {
		return a.id
	}
	return a.owner.ExternalID() + ":" + a.id
}

// Balance returns the current balance
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns the rendered history lines, oldest first
func (a *Account) History() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	lines := make([]string, len(a.history))
	for i, entry := range a.history {
		lines[i] = entry.Description()
	}
	return lines
}

// Entries returns a copy of the structured history, oldest first
func (a *Account) Entries() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	entries := make([]Entry, len(a.history))
	copy(entries, a.history)
	return entries
}

// Deposit adds the specified amount to the account balance
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := shared.ValidatePositive(amount); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)
	a.appendEntry(shared.EntryTypeDeposit, amount, "", uuid.Nil)
	return nil
}

// Withdraw subtracts the specified amount from the account balance
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := shared.ValidatePositive(amount); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.canWithdraw(amount) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	a.appendEntry(shared.EntryTypeWithdrawal, amount, "", uuid.Nil)
	return nil
}

// CanWithdraw checks if the account has sufficient funds for a withdrawal
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.canWithdraw(amount)
}

func (a *Account) canWithdraw(amount decimal.Decimal) bool {
	return a.balance.GreaterThanOrEqual(amount)
}

// appendEntry must be called with mu held, after the balance was updated
func (a *Account) appendEntry(entryType shared.EntryType, amount decimal.Decimal, counterparty string, transferID uuid.UUID) {
	a.history = append(a.history, Entry{
		Sequence:     len(a.history) + 1,
		Type:         entryType,
		Amount:       amount,
		Counterparty: counterparty,
		TransferID:   transferID,
		BalanceAfter: a.balance,
		Timestamp:    a.now(),
	})
}
