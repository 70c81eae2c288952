package ledger

import "errors"

var ErrUnknownUniqueness = errors.New("unknown account identifier uniqueness policy")

// ErrClientNotFound indicates no client is registered under the identifier
type ErrClientNotFound struct {
	ClientID string
}

func (e ErrClientNotFound) Error() string {
	return "client not found: " + e.ClientID
}

// Is implements the errors.Is interface for ErrClientNotFound
func (e ErrClientNotFound) Is(target error) bool {
	t, ok := target.(ErrClientNotFound)
	if !ok {
		return false
	}
	// If the target ClientID is empty, consider it a match for any ErrClientNotFound
	if t.ClientID == "" {
		return true
	}
	return e.ClientID == t.ClientID
}
