package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
)

// memTx buffers the writes of one unit of work. Row locks are held until the unit
// commits or rolls back; buffered writes become visible all at once on commit.
type memTx struct {
	store    *Store
	held     map[string]*sync.Mutex
	locked   map[string]domain.Account
	created  map[string]domain.Account
	balances map[string]int64
	updated  map[string]time.Time
	entries  []domain.LedgerEntry
	external []domain.ExternalTransactionRecord
}

var _ portsrepo.LedgerTx = (*memTx)(nil)

// WithinTransaction runs fn inside one atomic unit.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	tx := &memTx{
		store:    s,
		held:     make(map[string]*sync.Mutex),
		locked:   make(map[string]domain.Account),
		created:  make(map[string]domain.Account),
		balances: make(map[string]int64),
		updated:  make(map[string]time.Time),
	}
	defer tx.unlockAll()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

func (t *memTx) unlockAll() {
	for _, l := range t.held {
		l.Unlock()
	}
}

// LockAccountsForUpdate takes the row locks in ascending id order.
func (t *memTx) LockAccountsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	ids := make([]string, 0, len(accountIDs))
	seen := make(map[string]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := t.held[id]; !ok {
			l := t.store.rowLock(id)
			l.Lock()
			t.held[id] = l
		}

		acc, ok := t.created[id]
		if !ok {
			t.store.mu.RLock()
			acc, ok = t.store.accounts[id]
			t.store.mu.RUnlock()
		}
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if bal, ok := t.balances[id]; ok {
			acc.Balance = bal
			acc.UpdatedAt = t.updated[id]
		}
		t.locked[id] = acc
		out[id] = acc
	}
	return out, nil
}

func (t *memTx) InsertAccount(_ context.Context, account domain.Account) error {
	t.store.mu.RLock()
	err := t.store.checkAccountLocked(account)
	t.store.mu.RUnlock()
	if err != nil {
		return err
	}
	for _, acc := range t.created {
		if acc.ID == account.ID || acc.UserName == account.UserName {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, account.UserName)
		}
	}
	t.created[account.ID] = account
	return nil
}

func (t *memTx) UpdateAccountBalance(_ context.Context, accountID string, balance int64, now time.Time) error {
	if _, ok := t.locked[accountID]; !ok {
		return fmt.Errorf("account %s is not locked in this unit of work", accountID)
	}
	if balance < 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrInsufficientBalance, accountID)
	}
	t.balances[accountID] = balance
	t.updated[accountID] = now
	return nil
}

func (t *memTx) InsertLedgerEntry(_ context.Context, entry domain.LedgerEntry) error {
	if entry.ExternalTransactionID != nil {
		ext := *entry.ExternalTransactionID
		t.store.mu.RLock()
		_, exists := t.store.entryExtIDs[ext]
		t.store.mu.RUnlock()
		if exists {
			return fmt.Errorf("%w: ledger entry for %s", apperrors.ErrDuplicate, ext)
		}
		for _, e := range t.entries {
			if e.ExternalTransactionID != nil && *e.ExternalTransactionID == ext {
				return fmt.Errorf("%w: ledger entry for %s", apperrors.ErrDuplicate, ext)
			}
		}
	}
	t.entries = append(t.entries, entry)
	return nil
}

func (t *memTx) InsertExternalTransaction(_ context.Context, record domain.ExternalTransactionRecord) error {
	t.store.mu.RLock()
	err := t.store.checkExternalLocked(record, t.pendingCompleted())
	t.store.mu.RUnlock()
	if err != nil {
		return err
	}
	t.external = append(t.external, record)
	return nil
}

func (t *memTx) pendingCompleted() map[string]struct{} {
	out := make(map[string]struct{}, len(t.external))
	for _, rec := range t.external {
		if rec.Status == domain.ExternalCompleted {
			out[rec.TransactionID] = struct{}{}
		}
	}
	return out
}

// commit re-validates uniqueness against state committed by other units since the
// inserts were buffered, then applies every write under the store lock.
func (t *memTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range t.entries {
		if e.ExternalTransactionID == nil {
			continue
		}
		if _, ok := s.entryExtIDs[*e.ExternalTransactionID]; ok {
			return fmt.Errorf("%w: ledger entry for %s", apperrors.ErrDuplicate, *e.ExternalTransactionID)
		}
	}
	for _, rec := range t.external {
		if err := s.checkExternalLocked(rec, nil); err != nil {
			return err
		}
	}
	for _, acc := range t.created {
		if err := s.checkAccountLocked(acc); err != nil {
			return err
		}
	}

	for id, acc := range t.created {
		s.accounts[id] = acc
		s.userNames[acc.UserName] = id
	}

	for id, bal := range t.balances {
		acc := s.accounts[id]
		acc.Balance = bal
		acc.UpdatedAt = t.updated[id]
		s.accounts[id] = acc
	}
	for _, e := range t.entries {
		s.entries = append(s.entries, e)
		if e.ExternalTransactionID != nil {
			s.entryExtIDs[*e.ExternalTransactionID] = struct{}{}
		}
	}
	for _, rec := range t.external {
		s.appendExternalLocked(rec)
	}
	return nil
}
