package services

import (
	"context"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	"github.com/SscSPs/wallet_ledger_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// BalanceScaler converts a ledger balance into the unit an external record reports in.
type BalanceScaler func(balance int64) decimal.Decimal

// MutationConfig carries optional behaviour of a single-account ledger mutation.
type MutationConfig struct {
	ExternalRecord *domain.ExternalTransactionRecord
	Scaler         BalanceScaler
}

// MutationOption configures a deposit or withdraw.
type MutationOption func(*MutationConfig)

// WithExternalRecord makes the ledger write record as completed inside the same atomic
// unit as the balance change, with before/after balances taken under the row lock.
func WithExternalRecord(record domain.ExternalTransactionRecord, scaler BalanceScaler) MutationOption {
	return func(c *MutationConfig) {
		rec := record
		c.ExternalRecord = &rec
		c.Scaler = scaler
	}
}

// LedgerMutatorSvc is the only way account balances change.
type LedgerMutatorSvc interface {
	// Deposit credits amount to the account and writes one entry with no source.
	Deposit(ctx context.Context, accountID string, amount int64, kind domain.TransactionKind, meta domain.Metadata, opts ...MutationOption) (*domain.BalanceChange, error)

	// Withdraw debits amount from the account and writes one entry with no destination.
	Withdraw(ctx context.Context, accountID string, amount int64, kind domain.TransactionKind, meta domain.Metadata, opts ...MutationOption) (*domain.BalanceChange, error)

	// Transfer atomically moves amount between two hierarchy-adjacent accounts.
	Transfer(ctx context.Context, fromID string, toID string, amount int64, kind domain.TransactionKind, meta domain.Metadata) (*domain.TransferResult, error)

	// OpenAccount creates account under its parent and, when initialBalance is positive,
	// funds it from the parent with a credit transfer in the same atomic unit.
	OpenAccount(ctx context.Context, account domain.Account, initialBalance int64, meta domain.Metadata) (*domain.Account, error)
}

// LedgerReaderSvc exposes the read paths over ledger entries.
type LedgerReaderSvc interface {
	ListEntries(ctx context.Context, accountID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerMutatorSvc
	LedgerReaderSvc
}
