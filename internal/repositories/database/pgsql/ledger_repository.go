package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger_backend/internal/models"
	"github.com/SscSPs/wallet_ledger_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository reads ledger entries and owns the mutation unit of work.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// ListEntriesByAccount lists entries touching an account, newest first.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, cursor *portsrepo.EntryCursor) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, from_account_id, to_account_id, amount, kind, external_transaction_id, metadata, created_at
		FROM ledger_entries
		WHERE (from_account_id = $1 OR to_account_id = $1)
	`
	args := []any{accountID}
	if cursor != nil {
		query += ` AND (created_at, id) < ($2, $3)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries of %s: %w", accountID, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.ID,
			&m.FromAccountID,
			&m.ToAccountID,
			&m.Amount,
			&m.Kind,
			&m.ExternalTransactionID,
			&m.Metadata,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entry, err := mapping.ToDomainLedgerEntry(m)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entries: %w", err)
	}
	return entries, nil
}

// ExistsByExternalTransactionID reports whether an entry carries the external id.
func (r *PgxLedgerRepository) ExistsByExternalTransactionID(ctx context.Context, transactionID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE external_transaction_id = $1)`,
		transactionID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ledger entries for %s: %w", transactionID, err)
	}
	return exists, nil
}
