package services

import (
	"context"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
)

// IdempotencySvc guarantees at-most-once application of provider transaction ids.
type IdempotencySvc interface {
	// IsDuplicate reports whether the transaction id has already been applied.
	IsDuplicate(ctx context.Context, transactionID string) (bool, error)

	// Claim takes an in-flight claim on the transaction id. claimed is false when another
	// request is processing the same id. release must be called once processing ends.
	Claim(ctx context.Context, transactionID string) (release func(), claimed bool, err error)

	// RecordAttempt appends an attempt record. A uniqueness violation is reported as
	// the duplicate status rather than an error.
	RecordAttempt(ctx context.Context, record domain.ExternalTransactionRecord) (domain.ExternalTransactionStatus, error)

	// History returns every recorded attempt of the transaction id.
	History(ctx context.Context, transactionID string) ([]domain.ExternalTransactionRecord, error)
}
