package repositories

import (
	"context"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
)

// ExternalTransactionReader defines read operations for provider transaction records
type ExternalTransactionReader interface {
	// ExistsCompleted reports whether a completed record exists for the transaction id.
	ExistsCompleted(ctx context.Context, transactionID string) (bool, error)

	// FindCompletedByWager finds the completed record of a member's wager.
	FindCompletedByWager(ctx context.Context, memberAccount string, wagerCode string) (*domain.ExternalTransactionRecord, error)

	// ListByTransactionID returns every attempt recorded for the transaction id, oldest first.
	ListByTransactionID(ctx context.Context, transactionID string) ([]domain.ExternalTransactionRecord, error)
}

// ExternalTransactionWriter appends attempt records outside a ledger unit of work.
type ExternalTransactionWriter interface {
	// SaveExternalTransaction appends a record. A second completed record for the
	// same transaction id yields ErrDuplicate.
	SaveExternalTransaction(ctx context.Context, record domain.ExternalTransactionRecord) error
}

// ExternalTransactionRepositoryFacade combines the provider transaction interfaces
type ExternalTransactionRepositoryFacade interface {
	ExternalTransactionReader
	ExternalTransactionWriter
}
