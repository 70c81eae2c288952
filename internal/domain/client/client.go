package client

import (
	"errors"
	"strings"
	"sync"

	"github.com/console-banking-ledger/internal/domain/account"
)

var (
	ErrEmptyClientID    = errors.New("client identifier cannot be empty")
	ErrInvalidSelection = errors.New("invalid account selection")
	ErrNilAccount       = errors.New("account cannot be nil")
)

// Client is the party that owns accounts. Accounts keep their opening order.
type Client struct {
	mu        sync.RWMutex
	id        string
	firstName string
	lastName  string
	phone     string
	accounts  []*account.Account

	uniqueAccountIDs bool
}

// Option configures a Client at creation
type Option func(*Client)

// WithUniqueAccountIDs rejects a second account with an identifier already held by the client
func WithUniqueAccountIDs(unique bool) Option {
	return func(c *Client) {
		c.uniqueAccountIDs = unique
	}
}

// NewClient creates a client with no accounts
func NewClient(id, firstName, lastName, phone string, opts ...Option) (*Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyClientID
	}

	c := &Client{
		id:        id,
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		phone:     strings.TrimSpace(phone),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ExternalID returns the caller-supplied unique identifier (e.g. a national ID)
func (c *Client) ExternalID() string { return c.id }

func (c *Client) FirstName() string { return c.firstName }

func (c *Client) LastName() string { return c.lastName }

// Phone may be empty
func (c *Client) Phone() string { return c.phone }

// FullName joins first and last name, skipping empty parts
func (c *Client) FullName() string {
	return strings.TrimSpace(c.firstName + " " + c.lastName)
}

// AddAccount appends acc to the client's accounts
func (c *Client) AddAccount(acc *account.Account) error {
	if acc == nil {
		return ErrNilAccount
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.uniqueAccountIDs && c.indexOf(acc.ID()) >= 0 {
		return ErrDuplicateAccountID{ClientID: c.id, AccountID: acc.ID()}
	}
	c.accounts = append(c.accounts, acc)
	return nil
}

// HasAccount reports whether the client holds an account with the given identifier
func (c *Client) HasAccount(accountID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexOf(accountID) >= 0
}

// Accounts returns the client's accounts in opening order
func (c *Client) Accounts() []*account.Account {
	c.mu.RLock()
	defer c.mu.RUnlock()

	accounts := make([]*account.Account, len(c.accounts))
	copy(accounts, c.accounts)
	return accounts
}

// AccountCount returns the number of accounts held
func (c *Client) AccountCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.accounts)
}

// AccountAt selects an account by its 1-based position in opening order
func (c *Client) AccountAt(position int) (*account.Account, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if position < 1 || position > len(c.accounts) {
		return nil, ErrInvalidSelection
	}
	return c.accounts[position-1], nil
}

// FindAccount returns the first account with the given identifier
func (c *Client) FindAccount(accountID string) (*account.Account, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(accountID); i >= 0 {
		return c.accounts[i], nil
	}
	return nil, ErrAccountNotFound{ClientID: c.id, AccountID: accountID}
}

func (c *Client) indexOf(accountID string) int {
	for i, acc := range c.accounts {
		if acc.ID() == accountID {
			return i
		}
	}
	return -1
}
