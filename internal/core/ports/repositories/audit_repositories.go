package repositories

import (
	"context"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
)

// BatchAuditWriter appends webhook batch audit rows.
type BatchAuditWriter interface {
	SaveBatchAudit(ctx context.Context, record domain.BatchAuditRecord) error
}
