package shared

// EntryType defines the balance-affecting events recorded in an account history
type EntryType string

const (
	EntryTypeCreated     EntryType = "CREATED"
	EntryTypeDeposit     EntryType = "DEPOSIT"
	EntryTypeWithdrawal  EntryType = "WITHDRAWAL"
	EntryTypeTransferOut EntryType = "TRANSFER_OUT"
	EntryTypeTransferIn  EntryType = "TRANSFER_IN"
)

// Label returns the human readable prefix used in history lines
func (t EntryType) Label() string {
	switch t {
	case EntryTypeCreated:
		return "Created with"
	case EntryTypeDeposit:
		return "Deposit"
	case EntryTypeWithdrawal:
		return "Withdraw"
	case EntryTypeTransferOut:
		return "Transfer out"
	case EntryTypeTransferIn:
		return "Transfer in"
	default:
		return string(t)
	}
}

// IsTransfer reports whether the entry is one leg of a transfer
func (t EntryType) IsTransfer() bool {
	return t == EntryTypeTransferOut || t == EntryTypeTransferIn
}
