package pgsql

import (
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every postgres repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:             newPgxAccountRepository(dbPool),
		LedgerRepo:              newPgxLedgerRepository(dbPool),
		ExternalTransactionRepo: newPgxExternalTransactionRepository(dbPool),
		BatchAuditRepo:          newPgxBatchAuditRepository(dbPool),
		GameRepo:                newPgxGameRepository(dbPool),
	}
}
