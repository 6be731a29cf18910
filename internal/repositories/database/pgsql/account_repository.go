package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger_backend/internal/models"
	"github.com/SscSPs/wallet_ledger_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `id, user_name, kind, parent_id, balance, status, created_at, updated_at`

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	if err := row.Scan(
		&m.ID,
		&m.UserName,
		&m.Kind,
		&m.ParentID,
		&m.Balance,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return insertAccount(ctx, r.pool, account)
}

func insertAccount(ctx context.Context, q querier, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (id, user_name, kind, parent_id, balance, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := q.Exec(ctx, query,
		m.ID,
		m.UserName,
		m.Kind,
		m.ParentID,
		m.Balance,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to save account %s", m.UserName))
	}
	return nil
}

func (r *PgxAccountRepository) findOne(ctx context.Context, where string, arg any) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where + ` LIMIT 1`
	acc, err := scanAccount(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := r.findOne(ctx, `id = $1`, accountID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return acc, err
}

// FindAccountByUserName retrieves an account by its member identifier.
func (r *PgxAccountRepository) FindAccountByUserName(ctx context.Context, userName string) (*domain.Account, error) {
	acc, err := r.findOne(ctx, `user_name = $1`, userName)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find account by user name %s: %w", userName, err)
	}
	return acc, err
}

// FindSystemWallet resolves the well-known system wallet row by its kind tag.
func (r *PgxAccountRepository) FindSystemWallet(ctx context.Context) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE kind = $1 ORDER BY created_at, id LIMIT 1`
	acc, err := scanAccount(r.pool.QueryRow(ctx, query, string(domain.SystemWallet)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: system wallet", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find system wallet: %w", err)
	}
	return &acc, nil
}

// ListChildren retrieves the direct downline of an account.
func (r *PgxAccountRepository) ListChildren(ctx context.Context, parentID string, limit int, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE parent_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, parentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list children of %s: %w", parentID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccountStatus toggles the soft status flag of an account.
func (r *PgxAccountRepository) UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus, now time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE accounts SET status = $2, updated_at = $3 WHERE id = $1`, accountID, string(status), now)
	if err != nil {
		return fmt.Errorf("failed to update status of account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
