package client

// ErrAccountNotFound indicates the client holds no account with the identifier
type ErrAccountNotFound struct {
	ClientID  string
	AccountID string
}

func (e ErrAccountNotFound) Error() string {
	return "account not found: " + e.ClientID + ":" + e.AccountID
}

// Is matches any ErrAccountNotFound when the target is zero-valued
func (e ErrAccountNotFound) Is(target error) bool {
	t, ok := target.(ErrAccountNotFound)
	if !ok {
		return false
	}
	if t == (ErrAccountNotFound{}) {
		return true
	}
	return e == t
}

// ErrDuplicateAccountID indicates an account identifier uniqueness violation
type ErrDuplicateAccountID struct {
	ClientID  string
	AccountID string
}

func (e ErrDuplicateAccountID) Error() string {
	if e.ClientID == "" {
		return "account identifier already in use: " + e.AccountID
	}
	return "client " + e.ClientID + " already holds account " + e.AccountID
}

// Is matches any ErrDuplicateAccountID when the target is zero-valued
func (e ErrDuplicateAccountID) Is(target error) bool {
	t, ok := target.(ErrDuplicateAccountID)
	if !ok {
		return false
	}
	if t == (ErrDuplicateAccountID{}) {
		return true
	}
	return e == t
}
