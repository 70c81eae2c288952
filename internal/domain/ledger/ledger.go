// Package ledger holds every client and account of the bank and coordinates
// operations that span more than one account.
package ledger

import (
	"iter"
	"strings"
	"sync"
	"time"

	"github.com/console-banking-ledger/internal/domain/account"
	"github.com/console-banking-ledger/internal/domain/client"
	"github.com/console-banking-ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/atomic"
)

// Uniqueness controls how account identifiers may repeat
type Uniqueness string

const (
	UniquenessPermissive Uniqueness = "permissive"
	UniquenessClient     Uniqueness = "client"
	UniquenessGlobal     Uniqueness = "global"
)

// ParseUniqueness maps a configuration value to a Uniqueness policy
func ParseUniqueness(value string) (Uniqueness, error) {
	switch u := Uniqueness(strings.ToLower(strings.TrimSpace(value))); u {
	case UniquenessPermissive, UniquenessClient, UniquenessGlobal:
		return u, nil
	default:
		return "", ErrUnknownUniqueness
	}
}

// ClientSummary is one line of the client listing
type ClientSummary struct {
	ClientID     string
	FirstName    string
	LastName     string
	Phone        string
	AccountCount int
}

// FullName joins first and last name, skipping empty parts
func (s ClientSummary) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Ledger is the bank: the registry of clients and the owner of account numbering.
// Clients are kept in registration order with an index for lookups.
type Ledger struct {
	mu         sync.RWMutex
	clients    []*client.Client
	index      map[string]*client.Client
	nextCode   *atomic.Int64
	uniqueness Uniqueness
	now        func() time.Time
}

// Option configures a Ledger
type Option func(*Ledger)

// WithUniqueness sets the account identifier policy (default UniquenessClient)
func WithUniqueness(u Uniqueness) Option {
	return func(l *Ledger) {
		l.uniqueness = u
	}
}

// WithClock sets the time source for history entries
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates an empty ledger
func New(opts ...Option) *Ledger {
	l := &Ledger{
		index:      make(map[string]*client.Client),
		nextCode:   atomic.NewInt64(0),
		uniqueness: UniquenessClient,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Uniqueness returns the active account identifier policy
func (l *Ledger) Uniqueness() Uniqueness {
	return l.uniqueness
}

// FindClient returns the client registered under id (exact match)
func (l *Ledger) FindClient(id string) (*client.Client, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if c, ok := l.index[id]; ok {
		return c, nil
	}
	return nil, ErrClientNotFound{ClientID: id}
}

// RegisterClient creates a client, or returns the existing one when id is
// already registered. created reports which of the two happened.
func (l *Ledger) RegisterClient(id, firstName, lastName, phone string) (c *client.Client, created bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.registerLocked(id, firstName, lastName, phone)
}

func (l *Ledger) registerLocked(id, firstName, lastName, phone string) (*client.Client, bool, error) {
	if existing, ok := l.index[strings.TrimSpace(id)]; ok {
		return existing, false, nil
	}

	c, err := client.NewClient(id, firstName, lastName, phone,
		client.WithUniqueAccountIDs(l.uniqueness != UniquenessPermissive))
	if err != nil {
		return nil, false, err
	}

	l.clients = append(l.clients, c)
	l.index[c.ExternalID()] = c
	return c, true, nil
}

// CreateAccount opens an account for clientID, registering the client first
// if it is unknown. An empty accountID gets the default "ACC<code>".
// initialBalance is user input: empty means zero, otherwise it must parse as
// a non-negative amount.
func (l *Ledger) CreateAccount(clientID, accountID, initialBalance string) (*account.Account, error) {
	balance, err := shared.ParseInitialBalance(initialBalance)
	if err != nil {
		return nil, err
	}
	accountID = strings.TrimSpace(accountID)

	l.mu.Lock()
	defer l.mu.Unlock()

	owner, ok := l.index[strings.TrimSpace(clientID)]
	if !ok {
		// Validate the client id without registering until the account is known to be valid
		if _, err := client.NewClient(clientID, "", "", ""); err != nil {
			return nil, err
		}
	}

	code := l.nextCode.Load() + 1
	if accountID == "" {
		accountID = account.DefaultID(code)
	}

	if err := l.checkUniqueLocked(owner, accountID); err != nil {
		return nil, err
	}

	if owner == nil {
		owner, _, err = l.registerLocked(clientID, "", "", "")
		if err != nil {
			return nil, err
		}
	}

	acc, err := account.NewAccount(code, accountID, balance, owner, account.WithClock(l.now))
	if err != nil {
		return nil, err
	}
	if err := owner.AddAccount(acc); err != nil {
		return nil, err
	}

	l.nextCode.Store(code)
	return acc, nil
}

func (l *Ledger) checkUniqueLocked(owner *client.Client, accountID string) error {
	switch l.uniqueness {
	case UniquenessClient:
		if owner != nil && owner.HasAccount(accountID) {
			return client.ErrDuplicateAccountID{ClientID: owner.ExternalID(), AccountID: accountID}
		}
	case UniquenessGlobal:
		for _, c := range l.clients {
			if c.HasAccount(accountID) {
				return client.ErrDuplicateAccountID{AccountID: accountID}
			}
		}
	}
	return nil
}

// FindAccount resolves a client identifier and account identifier to an account
func (l *Ledger) FindAccount(clientID, accountID string) (*account.Account, error) {
	c, err := l.FindClient(clientID)
	if err != nil {
		return nil, err
	}
	return c.FindAccount(accountID)
}

// Transfer moves amount between two accounts, possibly of different clients.
// See account.Transfer for the protocol.
func (l *Ledger) Transfer(source, target *account.Account, amount decimal.Decimal) (*account.Receipt, error) {
	return account.Transfer(source, target, amount)
}

// ListClients yields a summary per client in registration order.
// Each range over the sequence takes a fresh snapshot.
func (l *Ledger) ListClients() iter.Seq[ClientSummary] {
	return func(yield func(ClientSummary) bool) {
		for _, c := range l.snapshot() {
			summary := ClientSummary{
				ClientID:     c.ExternalID(),
				FirstName:    c.FirstName(),
				LastName:     c.LastName(),
				Phone:        c.Phone(),
				AccountCount: c.AccountCount(),
			}
			if !yield(summary) {
				return
			}
		}
	}
}

// ClientCount returns the number of registered clients
func (l *Ledger) ClientCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clients)
}

// AccountCount returns how many accounts were ever opened; it is also the last code issued
func (l *Ledger) AccountCount() int64 {
	return l.nextCode.Load()
}

// TotalBalance sums the balances of every account opened so far.
// The sum is read with all accounts locked, so it is exact even while
// transfers run concurrently.
func (l *Ledger) TotalBalance() decimal.Decimal {
	var accounts []*account.Account
	for _, c := range l.snapshot() {
		accounts = append(accounts, c.Accounts()...)
	}
	return account.SumBalances(accounts)
}

func (l *Ledger) snapshot() []*client.Client {
	l.mu.RLock()
	defer l.mu.RUnlock()

	clients := make([]*client.Client, len(l.clients))
	copy(clients, l.clients)
	return clients
}
