package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
)

// LedgerTx is the unit of work the ledger engine mutates balances in.
// Everything written through one LedgerTx commits or rolls back together.
type LedgerTx interface {
	// LockAccountsForUpdate acquires exclusive row locks on the given accounts in ascending
	// id order and returns their current state. Missing accounts yield ErrNotFound.
	LockAccountsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// InsertAccount creates an account inside the unit so that it can be locked and funded
	// before anything becomes visible. A taken user name yields ErrDuplicate.
	InsertAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountBalance writes a new balance for an account locked in this unit.
	UpdateAccountBalance(ctx context.Context, accountID string, balance int64, now time.Time) error

	// InsertLedgerEntry appends an immutable ledger entry.
	InsertLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error

	// InsertExternalTransaction appends a provider transaction record.
	// A second completed record for the same transaction id yields ErrDuplicate.
	InsertExternalTransaction(ctx context.Context, record domain.ExternalTransactionRecord) error
}

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// WithinTransaction runs fn inside one atomic unit. The unit commits when fn returns
	// nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}
