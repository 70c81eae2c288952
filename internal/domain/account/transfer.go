package account

import (
	"cmp"
	"errors"
	"slices"

	"github.com/console-banking-ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrMissingAccount = errors.New("transfer requires a source and a target account")

// Receipt describes a completed transfer
type Receipt struct {
	TransferID    uuid.UUID
	Amount        decimal.Decimal
	Source        string
	Target        string
	SourceBalance decimal.Decimal
	TargetBalance decimal.Decimal
}

// Transfer moves amount from source to target as one unit.
//
// Validation runs once against the source, then both legs are applied while
// both accounts are locked. The legs cannot fail, so once the debit is written
// the credit always follows. Self-transfers take the same path and leave the
// balance unchanged with one entry per leg.
func Transfer(source, target *Account, amount decimal.Decimal) (*Receipt, error) {
	if source == nil || target == nil {
		return nil, ErrMissingAccount
	}
	if err := shared.ValidatePositive(amount); err != nil {
		return nil, err
	}

	unlock := lockPair(source, target)
	defer unlock()

	if !source.canWithdraw(amount) {
		return nil, ErrInsufficientFunds
	}

	transferID := uuid.New()
	source.recordTransferOut(amount, target.Descriptor(), transferID)
	target.recordTransferIn(amount, source.Descriptor(), transferID)

	return &Receipt{
		TransferID:    transferID,
		Amount:        amount,
		Source:        source.Descriptor(),
		Target:        target.Descriptor(),
		SourceBalance: source.balance,
		TargetBalance: target.balance,
	}, nil
}

// recordTransferOut is the unvalidated debit leg; mu must be held
func (a *Account) recordTransferOut(amount decimal.Decimal, target string, transferID uuid.UUID) {
	a.balance = a.balance.Sub(amount)
	a.appendEntry(shared.EntryTypeTransferOut, amount, target, transferID)
}

// recordTransferIn is the unvalidated credit leg; mu must be held
func (a *Account) recordTransferIn(amount decimal.Decimal, source string, transferID uuid.UUID) {
	a.balance = a.balance.Add(amount)
	a.appendEntry(shared.EntryTypeTransferIn, amount, source, transferID)
}

// lockPair locks both accounts in ascending code order so concurrent
// transfers in opposite directions cannot deadlock.
func lockPair(a, b *Account) (unlock func()) {
	if a == b {
		a.mu.Lock()
		return a.mu.Unlock
	}

	first, second := a, b
	if b.code < a.code {
		first, second = b, a
	}
	first.mu.Lock()
	second.mu.Lock()
	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}

// SumBalances returns the combined balance of accounts as one consistent
// reading: every account is locked, in ascending code order, before any
// balance is read, so no transfer can be observed half applied.
// Nil and repeated accounts are ignored.
func SumBalances(accounts []*Account) decimal.Decimal {
	ordered := distinctByCode(accounts)
	unlock := lockAll(ordered)
	defer unlock()

	total := decimal.Zero
	for _, acc := range ordered {
		total = total.Add(acc.balance)
	}
	return total
}

// distinctByCode drops nil and repeated accounts and sorts the rest by code,
// the lock order lockPair uses.
func distinctByCode(accounts []*Account) []*Account {
	seen := make(map[*Account]struct{}, len(accounts))
	ordered := make([]*Account, 0, len(accounts))
	for _, acc := range accounts {
		if acc == nil {
			continue
		}
		if _, ok := seen[acc]; ok {
			continue
		}
		seen[acc] = struct{}{}
		ordered = append(ordered, acc)
	}
	slices.SortStableFunc(ordered, func(a, b *Account) int {
		return cmp.Compare(a.code, b.code)
	})
	return ordered
}

// lockAll locks ordered front to back and unlocks in reverse
func lockAll(ordered []*Account) (unlock func()) {
	for _, acc := range ordered {
		acc.mu.Lock()
	}
	return func() {
		for i := len(ordered) - 1; i >= 0; i-- {
			ordered[i].mu.Unlock()
		}
	}
}
