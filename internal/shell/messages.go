package shell

import (
	"errors"
	"strconv"

	"github.com/console-banking-ledger/internal/domain/account"
	"github.com/console-banking-ledger/internal/domain/client"
	"github.com/console-banking-ledger/internal/domain/ledger"
	"github.com/console-banking-ledger/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// report prints the operator-facing message for err and logs it with attrs
func (s *Shell) report(err error, attrs ...any) {
	s.reject(message(err), err, attrs...)
}

// reject prints text in place of the default message for err
func (s *Shell) reject(text string, err error, attrs ...any) {
	s.println(text)
	s.logger.Warn("Operation rejected", append(attrs, "error", err)...)
}

func message(err error) string {
	switch {
	case errors.Is(err, shared.ErrNonPositiveAmount):
		return "Must be positive."
	case errors.Is(err, shared.ErrInvalidAmount):
		return "Invalid amount."
	case errors.Is(err, account.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, ledger.ErrClientNotFound{}):
		return "Client not found."
	case errors.Is(err, client.ErrAccountNotFound{}):
		return "Account not found."
	case errors.Is(err, client.ErrDuplicateAccountID{}):
		return "Account ID already in use."
	case errors.Is(err, client.ErrInvalidSelection):
		return "Invalid selection."
	case errors.Is(err, client.ErrEmptyClientID):
		return "Client CIN cannot be empty."
	default:
		return "Operation failed: " + err.Error()
	}
}

func parseSelection(answer string) (int, error) {
	position, err := strconv.Atoi(answer)
	if err != nil {
		return 0, client.ErrInvalidSelection
	}
	return position, nil
}

func formatAmount(amount decimal.Decimal) string {
	return shared.FormatAmount(amount)
}
