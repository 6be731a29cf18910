package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/services"
)

const defaultClaimTTL = 30 * time.Second

type idempotencyService struct {
	BaseService
	externalRepo portsrepo.ExternalTransactionRepositoryFacade
	ledgerRepo   portsrepo.LedgerEntryReader
	claims       portsrepo.ClaimStore
	claimTTL     time.Duration
}

// IdempotencyServiceOption is a functional option for configuring the idempotency service
type IdempotencyServiceOption func(*idempotencyService)

// WithClaimStore enables cross-process in-flight claims. A nil store leaves claims disabled.
func WithClaimStore(store portsrepo.ClaimStore, ttl time.Duration) IdempotencyServiceOption {
	return func(s *idempotencyService) {
		s.claims = store
		if ttl > 0 {
			s.claimTTL = ttl
		}
	}
}

// NewIdempotencyService creates the dedup index over external transaction records and ledger entries.
func NewIdempotencyService(externalRepo portsrepo.ExternalTransactionRepositoryFacade, ledgerRepo portsrepo.LedgerEntryReader, options ...IdempotencyServiceOption) portssvc.IdempotencySvc {
	svc := &idempotencyService{
		externalRepo: externalRepo,
		ledgerRepo:   ledgerRepo,
		claimTTL:     defaultClaimTTL,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.IdempotencySvc = (*idempotencyService)(nil)

// IsDuplicate reports whether a completed record or a ledger entry already carries the id.
func (s *idempotencyService) IsDuplicate(ctx context.Context, transactionID string) (bool, error) {
	completed, err := s.externalRepo.ExistsCompleted(ctx, transactionID)
	if err != nil {
		return false, fmt.Errorf("failed to check completed records: %w", err)
	}
	if completed {
		return true, nil
	}
	applied, err := s.ledgerRepo.ExistsByExternalTransactionID(ctx, transactionID)
	if err != nil {
		return false, fmt.Errorf("failed to check ledger entries: %w", err)
	}
	return applied, nil
}

// Claim takes the in-flight claim. Without a claim store, or when the store fails, the
// claim is granted and the storage uniqueness constraints stay the final guard.
func (s *idempotencyService) Claim(ctx context.Context, transactionID string) (func(), bool, error) {
	noop := func() {}
	if s.claims == nil {
		return noop, true, nil
	}

	ok, err := s.claims.Acquire(ctx, transactionID, s.claimTTL)
	if err != nil {
		s.LogWarn(ctx, "Claim store unavailable, continuing without claim",
			slog.String("transaction_id", transactionID),
			slog.String("error", err.Error()))
		return noop, true, nil
	}
	if !ok {
		return noop, false, nil
	}

	release := func() {
		// The claim must be dropped even if the request context was cancelled.
		releaseCtx := context.WithoutCancel(ctx)
		if err := s.claims.Release(releaseCtx, transactionID); err != nil {
			s.LogWarn(releaseCtx, "Failed to release claim",
				slog.String("transaction_id", transactionID),
				slog.String("error", err.Error()))
		}
	}
	return release, true, nil
}

// RecordAttempt appends an attempt row. A completed row that collides with an earlier
// completed row is stored as a duplicate attempt instead.
func (s *idempotencyService) RecordAttempt(ctx context.Context, record domain.ExternalTransactionRecord) (domain.ExternalTransactionStatus, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	err := s.externalRepo.SaveExternalTransaction(ctx, record)
	if err == nil {
		return record.Status, nil
	}
	if !errors.Is(err, apperrors.ErrDuplicate) {
		s.LogError(ctx, err, "Failed to record external transaction attempt",
			slog.String("transaction_id", record.TransactionID),
			slog.String("status", string(record.Status)))
		return "", err
	}

	record.Status = domain.ExternalDuplicate
	if record.ErrorMessage == "" {
		record.ErrorMessage = domain.CodeDuplicateTransaction.Message()
	}
	if err := s.externalRepo.SaveExternalTransaction(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to record duplicate attempt",
			slog.String("transaction_id", record.TransactionID))
	}
	return domain.ExternalDuplicate, nil
}

// History returns every recorded attempt of the transaction id.
func (s *idempotencyService) History(ctx context.Context, transactionID string) ([]domain.ExternalTransactionRecord, error) {
	records, err := s.externalRepo.ListByTransactionID(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list external transaction attempts", slog.String("transaction_id", transactionID))
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return records, nil
}
