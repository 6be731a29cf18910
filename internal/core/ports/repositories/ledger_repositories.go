package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
)

// EntryCursor positions keyset pagination over ledger entries (newest first).
type EntryCursor struct {
	CreatedAt time.Time
	ID        string
}

// LedgerEntryReader defines read operations for ledger entries
type LedgerEntryReader interface {
	// ListEntriesByAccount lists entries touching an account, newest first, strictly
	// older than the cursor when one is given.
	ListEntriesByAccount(ctx context.Context, accountID string, limit int, cursor *EntryCursor) ([]domain.LedgerEntry, error)

	// ExistsByExternalTransactionID reports whether an entry carries the external id.
	ExistsByExternalTransactionID(ctx context.Context, transactionID string) (bool, error)
}

// LedgerRepositoryFacade combines ledger reads with the mutation unit of work.
type LedgerRepositoryFacade interface {
	LedgerEntryReader
	TransactionManager
}
