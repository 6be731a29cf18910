package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBatchAuditRepository appends webhook batch audit rows.
type PgxBatchAuditRepository struct {
	pool *pgxpool.Pool
}

func newPgxBatchAuditRepository(pool *pgxpool.Pool) portsrepo.BatchAuditWriter {
	return &PgxBatchAuditRepository{pool: pool}
}

// SaveBatchAudit appends one batch audit row.
func (r *PgxBatchAuditRepository) SaveBatchAudit(ctx context.Context, record domain.BatchAuditRecord) error {
	m := mapping.ToModelBatchAudit(record)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO batch_audit_log (endpoint, operator_code, request, response, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		m.Endpoint, m.OperatorCode, m.Request, m.Response, m.Status, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save batch audit for %s: %w", m.Endpoint, err)
	}
	return nil
}
