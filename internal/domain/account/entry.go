package account

import (
	"fmt"
	"time"

	"github.com/console-banking-ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is one immutable record of a balance-affecting event
type Entry struct {
	Sequence     int              `json:"sequence"`
	Type         shared.EntryType `json:"type"`
	Amount       decimal.Decimal  `json:"amount"`
	Counterparty string           `json:"counterparty,omitempty"` // Descriptor of the other account of a transfer
	TransferID   uuid.UUID        `json:"transfer_id"`            // Shared by both legs of a transfer
	BalanceAfter decimal.Decimal  `json:"balance_after"`
	Timestamp    time.Time        `json:"timestamp"`
}

// Description renders the entry as a history line, e.g. "Transfer out 10.00 to 42:ACC2"
func (e Entry) Description() string {
	amount := shared.FormatAmount(e.Amount)
	switch e.Type {
	case shared.EntryTypeTransferOut:
		return fmt.Sprintf("%s %s to %s", e.Type.Label(), amount, e.Counterparty)
	case shared.EntryTypeTransferIn:
		return fmt.Sprintf("%s %s from %s", e.Type.Label(), amount, e.Counterparty)
	default:
		return fmt.Sprintf("%s %s", e.Type.Label(), amount)
	}
}
