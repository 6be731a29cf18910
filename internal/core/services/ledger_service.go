package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/dto"
	"github.com/SscSPs/wallet_ledger_backend/internal/platform/metrics"
	"github.com/SscSPs/wallet_ledger_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultEntryPageSize = 50

// ledgerService is the ledger engine. Every balance change in the system goes through it.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	now         func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the time source used for entry timestamps.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates the ledger engine.
func NewLedgerService(accountRepo portsrepo.AccountReader, ledgerRepo portsrepo.LedgerRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Deposit credits amount to the account.
func (s *ledgerService) Deposit(ctx context.Context, accountID string, amount int64, kind domain.TransactionKind, meta domain.Metadata, opts ...portssvc.MutationOption) (*domain.BalanceChange, error) {
	change, err := s.mutate(ctx, accountID, amount, kind, meta, true, opts)
	s.observe(ctx, "deposit", accountID, kind, err)
	return change, err
}

// Withdraw debits amount from the account.
func (s *ledgerService) Withdraw(ctx context.Context, accountID string, amount int64, kind domain.TransactionKind, meta domain.Metadata, opts ...portssvc.MutationOption) (*domain.BalanceChange, error) {
	change, err := s.mutate(ctx, accountID, amount, kind, meta, false, opts)
	s.observe(ctx, "withdraw", accountID, kind, err)
	return change, err
}

func (s *ledgerService) mutate(ctx context.Context, accountID string, amount int64, kind domain.TransactionKind, meta domain.Metadata, credit bool, opts []portssvc.MutationOption) (*domain.BalanceChange, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}
	cfg := portssvc.MutationConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var change *domain.BalanceChange
	err := s.ledgerRepo.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		locked, err := tx.LockAccountsForUpdate(ctx, []string{accountID})
		if err != nil {
			return err
		}
		acc := locked[accountID]
		if !acc.IsActive() {
			return fmt.Errorf("%w: account %s", apperrors.ErrAccountSuspended, accountID)
		}

		before := acc.Balance
		var after int64
		if credit {
			if before > math.MaxInt64-amount {
				return fmt.Errorf("%w: balance of %s would overflow", apperrors.ErrInvalidAmount, accountID)
			}
			after = before + amount
		} else {
			if before < amount {
				return fmt.Errorf("%w: account %s holds %d, needs %d", apperrors.ErrInsufficientBalance, accountID, before, amount)
			}
			after = before - amount
		}

		now := s.now()
		if err := tx.UpdateAccountBalance(ctx, accountID, after, now); err != nil {
			return err
		}

		entry := domain.LedgerEntry{
			ID:        uuid.NewString(),
			Amount:    amount,
			Kind:      kind,
			Metadata:  meta.Clone(),
			CreatedAt: now,
		}
		if credit {
			entry.ToAccountID = &accountID
		} else {
			entry.FromAccountID = &accountID
		}
		entry.Metadata[domain.MetaBalanceBefore] = before
		entry.Metadata[domain.MetaBalanceAfter] = after
		if cfg.ExternalRecord != nil {
			extID := cfg.ExternalRecord.TransactionID
			entry.ExternalTransactionID = &extID
			entry.Metadata[domain.MetaExternalTxID] = extID
		}
		if err := tx.InsertLedgerEntry(ctx, entry); err != nil {
			return err
		}

		if cfg.ExternalRecord != nil {
			if err := tx.InsertExternalTransaction(ctx, completedRecord(*cfg.ExternalRecord, cfg.Scaler, accountID, amount, before, after, now)); err != nil {
				return err
			}
		}

		acc.Balance = after
		acc.UpdatedAt = now
		change = &domain.BalanceChange{Account: acc, BalanceBefore: before, BalanceAfter: after, Entry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

func completedRecord(rec domain.ExternalTransactionRecord, scaler portssvc.BalanceScaler, accountID string, amount, before, after int64, now time.Time) domain.ExternalTransactionRecord {
	if scaler == nil {
		scaler = decimal.NewFromInt
	}
	rec.Status = domain.ExternalCompleted
	rec.AccountID = &accountID
	rec.LedgerAmount = amount
	rec.BeforeBalance = scaler(before)
	rec.AfterBalance = scaler(after)
	rec.CreatedAt = now
	return rec
}

// Transfer moves amount from one account to an adjacent account of the hierarchy.
func (s *ledgerService) Transfer(ctx context.Context, fromID string, toID string, amount int64, kind domain.TransactionKind, meta domain.Metadata) (*domain.TransferResult, error) {
	res, err := s.transfer(ctx, fromID, toID, amount, kind, meta)
	s.observe(ctx, "transfer", fromID, kind, err, slog.String("to_account_id", toID))
	return res, err
}

func (s *ledgerService) transfer(ctx context.Context, fromID string, toID string, amount int64, kind domain.TransactionKind, meta domain.Metadata) (*domain.TransferResult, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}
	if fromID == toID {
		return nil, fmt.Errorf("%w: source and destination are the same account", apperrors.ErrTransferNotPermitted)
	}

	// Unlocked pre-check so that obviously illegal transfers never queue for locks.
	from, err := s.accountRepo.FindAccountByID(ctx, fromID)
	if err != nil {
		return nil, fmt.Errorf("source account %s: %w", fromID, err)
	}
	to, err := s.accountRepo.FindAccountByID(ctx, toID)
	if err != nil {
		return nil, fmt.Errorf("destination account %s: %w", toID, err)
	}
	if err := domain.CheckTransfer(*from, *to, kind); err != nil {
		return nil, err
	}

	var result *domain.TransferResult
	err = s.ledgerRepo.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		var err error
		result, err = s.transferLocked(ctx, tx, fromID, toID, amount, kind, meta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// transferLocked runs the locked part of a transfer inside an open unit of work.
func (s *ledgerService) transferLocked(ctx context.Context, tx portsrepo.LedgerTx, fromID, toID string, amount int64, kind domain.TransactionKind, meta domain.Metadata) (*domain.TransferResult, error) {
	locked, err := tx.LockAccountsForUpdate(ctx, []string{fromID, toID})
	if err != nil {
		return nil, err
	}
	from, to := locked[fromID], locked[toID]
	for _, acc := range []domain.Account{from, to} {
		if !acc.IsActive() {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrAccountSuspended, acc.ID)
		}
	}
	if err := domain.CheckTransfer(from, to, kind); err != nil {
		return nil, err
	}
	if from.Balance < amount {
		return nil, fmt.Errorf("%w: account %s holds %d, needs %d", apperrors.ErrInsufficientBalance, fromID, from.Balance, amount)
	}
	if to.Balance > math.MaxInt64-amount {
		return nil, fmt.Errorf("%w: balance of %s would overflow", apperrors.ErrInvalidAmount, toID)
	}

	now := s.now()
	fromAfter := from.Balance - amount
	toAfter := to.Balance + amount
	if err := tx.UpdateAccountBalance(ctx, fromID, fromAfter, now); err != nil {
		return nil, err
	}
	if err := tx.UpdateAccountBalance(ctx, toID, toAfter, now); err != nil {
		return nil, err
	}

	entry := domain.LedgerEntry{
		ID:            uuid.NewString(),
		FromAccountID: &fromID,
		ToAccountID:   &toID,
		Amount:        amount,
		Kind:          kind,
		Metadata:      meta.Clone(),
		CreatedAt:     now,
	}
	entry.Metadata[domain.MetaFromBalanceBefore] = from.Balance
	entry.Metadata[domain.MetaFromBalanceAfter] = fromAfter
	entry.Metadata[domain.MetaToBalanceBefore] = to.Balance
	entry.Metadata[domain.MetaToBalanceAfter] = toAfter
	if err := tx.InsertLedgerEntry(ctx, entry); err != nil {
		return nil, err
	}

	from.Balance, from.UpdatedAt = fromAfter, now
	to.Balance, to.UpdatedAt = toAfter, now
	return &domain.TransferResult{From: from, To: to, Entry: entry}, nil
}

// OpenAccount inserts the account and funds it from its parent in one unit.
func (s *ledgerService) OpenAccount(ctx context.Context, account domain.Account, initialBalance int64, meta domain.Metadata) (*domain.Account, error) {
	if initialBalance < 0 {
		return nil, fmt.Errorf("%w: initial balance %d", apperrors.ErrInvalidAmount, initialBalance)
	}
	if initialBalance > 0 && account.ParentID == nil {
		return nil, fmt.Errorf("%w: an account without a parent cannot be funded", apperrors.ErrValidation)
	}
	account.Balance = 0

	var opened *domain.Account
	err := s.ledgerRepo.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		if err := tx.InsertAccount(ctx, account); err != nil {
			return err
		}
		if initialBalance == 0 {
			acc := account
			opened = &acc
			return nil
		}
		res, err := s.transferLocked(ctx, tx, *account.ParentID, account.ID, initialBalance, domain.CreditTransfer, meta)
		if err != nil {
			return err
		}
		opened = &res.To
		return nil
	})
	if initialBalance > 0 {
		s.observe(ctx, "open_account", account.ID, domain.CreditTransfer, err)
	}
	if err != nil {
		return nil, err
	}
	return opened, nil
}

func (s *ledgerService) observe(ctx context.Context, op string, accountID string, kind domain.TransactionKind, err error, extra ...any) {
	outcome := mutationOutcome(err)
	metrics.ObserveLedgerMutation(string(kind), outcome)

	args := append([]any{
		slog.String("operation", op),
		slog.String("account_id", accountID),
		slog.String("kind", string(kind)),
	}, extra...)
	switch {
	case err == nil:
		s.LogDebug(ctx, "Ledger mutation committed", args...)
	case isExpected(err):
		s.LogDebug(ctx, "Ledger mutation rejected", append(args, slog.String("reason", err.Error()))...)
	default:
		s.LogError(ctx, err, "Ledger mutation failed", args...)
	}
}

func mutationOutcome(err error) string {
	switch {
	case err == nil:
		return "committed"
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, apperrors.ErrDuplicate):
		return "duplicate"
	case errors.Is(err, apperrors.ErrTransferNotPermitted):
		return "not_permitted"
	case errors.Is(err, apperrors.ErrAccountSuspended):
		return "suspended"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrValidation):
		return "invalid"
	}
	return "error"
}

// ListEntries pages through the entries touching an account, newest first.
func (s *ledgerService) ListEntries(ctx context.Context, accountID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for entry listing", slog.String("account_id", accountID))
		}
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultEntryPageSize
	}

	var cursor *portsrepo.EntryCursor
	if params.NextToken != "" {
		createdAt, id, err := pagination.DecodeEntryToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &portsrepo.EntryCursor{CreatedAt: createdAt, ID: id}
	}

	entries, err := s.ledgerRepo.ListEntriesByAccount(ctx, accountID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	resp := &dto.ListLedgerEntriesResponse{Entries: make([]dto.LedgerEntryResponse, 0, len(entries))}
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeEntryToken(last.CreatedAt, last.ID)
		resp.NextToken = &token
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dto.ToLedgerEntryResponse(e))
	}
	return resp, nil
}
