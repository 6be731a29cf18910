package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// WithinTransaction runs fn inside one read-committed database transaction.
func (r *BaseRepository) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	// Ignored once the transaction is committed.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, &pgxLedgerTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return mapWriteError(err, "failed to commit transaction")
	}
	return nil
}

// mapWriteError converts constraint violations into domain errors.
func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicate, msg, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s (%s)", apperrors.ErrInsufficientBalance, msg, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// pgxLedgerTx is the postgres implementation of a ledger unit of work.
type pgxLedgerTx struct {
	tx pgx.Tx
}

var _ portsrepo.LedgerTx = (*pgxLedgerTx)(nil)

// LockAccountsForUpdate locks rows one at a time in ascending id order so that two
// units touching the same accounts always queue in the same order.
func (t *pgxLedgerTx) LockAccountsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	ids := uniqueSorted(accountIDs)
	locked := make(map[string]domain.Account, len(ids))

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`
	for _, id := range ids {
		acc, err := scanAccount(t.tx.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
			}
			return nil, fmt.Errorf("failed to lock account %s: %w", id, err)
		}
		locked[id] = acc
	}
	return locked, nil
}

func (t *pgxLedgerTx) UpdateAccountBalance(ctx context.Context, accountID string, balance int64, now time.Time) error {
	tag, err := t.tx.Exec(ctx, `UPDATE accounts SET balance = $2, updated_at = $3 WHERE id = $1`, accountID, balance, now)
	if err != nil {
		return mapWriteError(err, "failed to update balance of account "+accountID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}

func (t *pgxLedgerTx) InsertAccount(ctx context.Context, account domain.Account) error {
	return insertAccount(ctx, t.tx, account)
}

func (t *pgxLedgerTx) InsertLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	return insertLedgerEntry(ctx, t.tx, entry)
}

func (t *pgxLedgerTx) InsertExternalTransaction(ctx context.Context, record domain.ExternalTransactionRecord) error {
	return insertExternalTransaction(ctx, t.tx, record)
}

func insertLedgerEntry(ctx context.Context, q querier, entry domain.LedgerEntry) error {
	m, err := mapping.ToModelLedgerEntry(entry)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO ledger_entries (id, from_account_id, to_account_id, amount, kind, external_transaction_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = q.Exec(ctx, query,
		m.ID,
		m.FromAccountID,
		m.ToAccountID,
		m.Amount,
		m.Kind,
		m.ExternalTransactionID,
		m.Metadata,
		m.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to insert ledger entry "+m.ID)
	}
	return nil
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
