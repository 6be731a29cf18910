package domain

import "time"

// TransactionKind classifies a ledger entry.
type TransactionKind string

const (
	CreditTransfer    TransactionKind = "CREDIT_TRANSFER"
	DebitTransfer     TransactionKind = "DEBIT_TRANSFER"
	Deposit           TransactionKind = "DEPOSIT"
	Withdraw          TransactionKind = "WITHDRAW"
	GameWin           TransactionKind = "GAME_WIN"
	GameLoss          TransactionKind = "GAME_LOSS"
	GameRefund        TransactionKind = "GAME_REFUND"
	CapitalInjection  TransactionKind = "CAPITAL_INJECTION"
	CapitalExtraction TransactionKind = "CAPITAL_EXTRACTION"
)

// Metadata keys written by the ledger engine.
const (
	MetaNote              = "note"
	MetaSource            = "source"
	MetaBalanceBefore     = "balance_before"
	MetaBalanceAfter      = "balance_after"
	MetaFromBalanceBefore = "from_balance_before"
	MetaFromBalanceAfter  = "from_balance_after"
	MetaToBalanceBefore   = "to_balance_before"
	MetaToBalanceAfter    = "to_balance_after"
	MetaExternalTxID      = "seamless_transaction_id"
	MetaAction            = "action"
	MetaWagerCode         = "wager_code"
	MetaProductCode       = "product_code"
	MetaCurrency          = "currency"
	MetaGameType          = "game_type"
)

// Metadata is a free-form annotation map attached to ledger entries.
type Metadata map[string]any

// Clone returns a shallow copy so callers can keep their map unchanged.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m)+4)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// LedgerEntry is one immutable balance movement.
// A nil FromAccountID is an external injection, a nil ToAccountID an external extraction.
type LedgerEntry struct {
	ID                    string          `json:"id"`
	FromAccountID         *string         `json:"fromAccountID,omitempty"`
	ToAccountID           *string         `json:"toAccountID,omitempty"`
	Amount                int64           `json:"amount"`
	Kind                  TransactionKind `json:"kind"`
	ExternalTransactionID *string         `json:"externalTransactionID,omitempty"`
	Metadata              Metadata        `json:"metadata"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// BalanceChange is the outcome of a single-account ledger mutation.
// BalanceBefore and BalanceAfter are the values observed under the row lock.
type BalanceChange struct {
	Account       Account
	BalanceBefore int64
	BalanceAfter  int64
	Entry         LedgerEntry
}

// TransferResult is the outcome of a transfer between two accounts.
type TransferResult struct {
	From  Account
	To    Account
	Entry LedgerEntry
}
