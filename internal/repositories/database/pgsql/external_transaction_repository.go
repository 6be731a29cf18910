package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger_backend/internal/models"
	"github.com/SscSPs/wallet_ledger_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const externalTransactionColumns = `
	id, transaction_id, member_account, account_id, agent_id, product_code, provider_name,
	game_type, game_code, game_name, channel_code, operator_code, request_time, currency,
	action, amount, ledger_amount, valid_bet_amount, bet_amount, prize_amount, tip_amount,
	wager_code, wager_status, round_id, settle_at, created_at_provider, payload, status,
	error_message, before_balance, after_balance, created_at`

// PgxExternalTransactionRepository stores provider transaction attempts.
type PgxExternalTransactionRepository struct {
	pool *pgxpool.Pool
}

func newPgxExternalTransactionRepository(pool *pgxpool.Pool) portsrepo.ExternalTransactionRepositoryFacade {
	return &PgxExternalTransactionRepository{pool: pool}
}

var _ portsrepo.ExternalTransactionRepositoryFacade = (*PgxExternalTransactionRepository)(nil)

func insertExternalTransaction(ctx context.Context, q querier, record domain.ExternalTransactionRecord) error {
	m := mapping.ToModelExternalTransaction(record)
	query := `
		INSERT INTO external_transaction_records (
			transaction_id, member_account, account_id, agent_id, product_code, provider_name,
			game_type, game_code, game_name, channel_code, operator_code, request_time, currency,
			action, amount, ledger_amount, valid_bet_amount, bet_amount, prize_amount, tip_amount,
			wager_code, wager_status, round_id, settle_at, created_at_provider, payload, status,
			error_message, before_balance, after_balance, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31);
	`
	_, err := q.Exec(ctx, query,
		m.TransactionID, m.MemberAccount, m.AccountID, m.AgentID, m.ProductCode, m.ProviderName,
		m.GameType, m.GameCode, m.GameName, m.ChannelCode, m.OperatorCode, m.RequestTime, m.Currency,
		m.Action, m.Amount, m.LedgerAmount, m.ValidBetAmount, m.BetAmount, m.PrizeAmount, m.TipAmount,
		m.WagerCode, m.WagerStatus, m.RoundID, m.SettleAt, m.CreatedAtProvider, m.Payload, m.Status,
		m.ErrorMessage, m.BeforeBalance, m.AfterBalance, m.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to insert external transaction "+m.TransactionID)
	}
	return nil
}

func scanExternalTransaction(row pgx.Row) (domain.ExternalTransactionRecord, error) {
	var m models.ExternalTransactionRecord
	err := row.Scan(
		&m.ID, &m.TransactionID, &m.MemberAccount, &m.AccountID, &m.AgentID, &m.ProductCode, &m.ProviderName,
		&m.GameType, &m.GameCode, &m.GameName, &m.ChannelCode, &m.OperatorCode, &m.RequestTime, &m.Currency,
		&m.Action, &m.Amount, &m.LedgerAmount, &m.ValidBetAmount, &m.BetAmount, &m.PrizeAmount, &m.TipAmount,
		&m.WagerCode, &m.WagerStatus, &m.RoundID, &m.SettleAt, &m.CreatedAtProvider, &m.Payload, &m.Status,
		&m.ErrorMessage, &m.BeforeBalance, &m.AfterBalance, &m.CreatedAt,
	)
	if err != nil {
		return domain.ExternalTransactionRecord{}, err
	}
	return mapping.ToDomainExternalTransaction(m), nil
}

// SaveExternalTransaction appends an attempt record outside any ledger unit.
func (r *PgxExternalTransactionRepository) SaveExternalTransaction(ctx context.Context, record domain.ExternalTransactionRecord) error {
	return insertExternalTransaction(ctx, r.pool, record)
}

// ExistsCompleted reports whether a completed record exists for the transaction id.
func (r *PgxExternalTransactionRepository) ExistsCompleted(ctx context.Context, transactionID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM external_transaction_records WHERE transaction_id = $1 AND status = $2)`,
		transactionID, string(domain.ExternalCompleted),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check external transaction %s: %w", transactionID, err)
	}
	return exists, nil
}

// FindCompletedByWager finds the completed record of a member's wager.
func (r *PgxExternalTransactionRepository) FindCompletedByWager(ctx context.Context, memberAccount string, wagerCode string) (*domain.ExternalTransactionRecord, error) {
	query := `SELECT ` + externalTransactionColumns + `
		FROM external_transaction_records
		WHERE member_account = $1 AND wager_code = $2 AND status = $3
		ORDER BY created_at
		LIMIT 1`
	rec, err := scanExternalTransaction(r.pool.QueryRow(ctx, query, memberAccount, wagerCode, string(domain.ExternalCompleted)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wager %s of %s: %w", wagerCode, memberAccount, err)
	}
	return &rec, nil
}

// ListByTransactionID returns every attempt recorded for the transaction id, oldest first.
func (r *PgxExternalTransactionRepository) ListByTransactionID(ctx context.Context, transactionID string) ([]domain.ExternalTransactionRecord, error) {
	query := `SELECT ` + externalTransactionColumns + `
		FROM external_transaction_records
		WHERE transaction_id = $1
		ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts of %s: %w", transactionID, err)
	}
	defer rows.Close()

	records := []domain.ExternalTransactionRecord{}
	for rows.Next() {
		rec, err := scanExternalTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan external transaction: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating external transactions: %w", err)
	}
	return records, nil
}
