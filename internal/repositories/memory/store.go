// Package memory is an in-process implementation of every repository port. It keeps the
// locking and uniqueness guarantees of the postgres schema and is used for local runs
// and tests.
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
	"github.com/google/uuid"
)

// SystemWalletUserName is the user name of the seeded system wallet.
const SystemWalletUserName = "system_wallet"

// Store holds all state in maps guarded by mu. Account row locks are separate
// per-account mutexes so a unit of work can hold them across its whole lifetime.
type Store struct {
	mu sync.RWMutex

	accounts      map[string]domain.Account
	userNames     map[string]string
	entries       []domain.LedgerEntry
	entryExtIDs   map[string]struct{}
	external      []domain.ExternalTransactionRecord
	completedExt  map[string]struct{}
	nextExternal  int64
	audits        []domain.BatchAuditRecord
	nextAudit     int64
	games         map[string]domain.Game
	productToName map[int64]string

	lockMu   sync.Mutex
	rowLocks map[string]*sync.Mutex
}

// NewStore creates an empty store holding only the system wallet.
func NewStore() *Store {
	s := &Store{
		accounts:      make(map[string]domain.Account),
		userNames:     make(map[string]string),
		entryExtIDs:   make(map[string]struct{}),
		completedExt:  make(map[string]struct{}),
		games:         make(map[string]domain.Game),
		productToName: make(map[int64]string),
		rowLocks:      make(map[string]*sync.Mutex),
	}
	now := time.Now().UTC()
	wallet := domain.Account{
		ID:        uuid.NewString(),
		UserName:  SystemWalletUserName,
		Kind:      domain.SystemWallet,
		Status:    domain.AccountActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.accounts[wallet.ID] = wallet
	s.userNames[wallet.UserName] = wallet.ID
	return s
}

// NewRepositoryProvider exposes one store through every repository port.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:             s,
		LedgerRepo:              s,
		ExternalTransactionRepo: s,
		BatchAuditRepo:          s,
		GameRepo:                s,
	}
}

var (
	_ portsrepo.AccountRepositoryFacade             = (*Store)(nil)
	_ portsrepo.LedgerRepositoryFacade              = (*Store)(nil)
	_ portsrepo.ExternalTransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.BatchAuditWriter                    = (*Store)(nil)
	_ portsrepo.GameReader                          = (*Store)(nil)
)

func (s *Store) rowLock(accountID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	l, ok := s.rowLocks[accountID]
	if !ok {
		l = &sync.Mutex{}
		s.rowLocks[accountID] = l
	}
	return l
}

// --- accounts ---

func (s *Store) SaveAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAccountLocked(account); err != nil {
		return err
	}
	s.accounts[account.ID] = account
	s.userNames[account.UserName] = account.ID
	return nil
}

// checkAccountLocked enforces the primary key, the user name unique index and the
// balance check constraint.
func (s *Store) checkAccountLocked(account domain.Account) error {
	if _, ok := s.accounts[account.ID]; ok {
		return fmt.Errorf("%w: account id %s", apperrors.ErrDuplicate, account.ID)
	}
	if _, ok := s.userNames[account.UserName]; ok {
		return fmt.Errorf("%w: user name %s", apperrors.ErrDuplicate, account.UserName)
	}
	if account.Balance < 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrInsufficientBalance, account.ID)
	}
	return nil
}

func (s *Store) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

func (s *Store) FindAccountByUserName(_ context.Context, userName string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.userNames[userName]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	acc := s.accounts[id]
	return &acc, nil
}

func (s *Store) FindSystemWallet(_ context.Context) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *domain.Account
	for _, acc := range s.accounts {
		if acc.Kind != domain.SystemWallet {
			continue
		}
		if found == nil || acc.CreatedAt.Before(found.CreatedAt) {
			a := acc
			found = &a
		}
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (s *Store) ListChildren(_ context.Context, parentID string, limit int, offset int) ([]domain.Account, error) {
	s.mu.RLock()
	children := []domain.Account{}
	for _, acc := range s.accounts {
		if acc.ParentID != nil && *acc.ParentID == parentID {
			children = append(children, acc)
		}
	}
	s.mu.RUnlock()

	sort.Slice(children, func(i, j int) bool {
		if children[i].CreatedAt.Equal(children[j].CreatedAt) {
			return children[i].ID < children[j].ID
		}
		return children[i].CreatedAt.Before(children[j].CreatedAt)
	})
	if offset >= len(children) {
		return []domain.Account{}, nil
	}
	end := len(children)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return children[offset:end], nil
}

func (s *Store) UpdateAccountStatus(_ context.Context, accountID string, status domain.AccountStatus, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return apperrors.ErrNotFound
	}
	acc.Status = status
	acc.UpdatedAt = now
	s.accounts[accountID] = acc
	return nil
}

// --- ledger entries ---

func (s *Store) ListEntriesByAccount(_ context.Context, accountID string, limit int, cursor *portsrepo.EntryCursor) ([]domain.LedgerEntry, error) {
	s.mu.RLock()
	matched := []domain.LedgerEntry{}
	for _, e := range s.entries {
		if !touches(e, accountID) {
			continue
		}
		if cursor != nil && !olderThan(e, *cursor) {
			continue
		}
		matched = append(matched, e)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *Store) ExistsByExternalTransactionID(_ context.Context, transactionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entryExtIDs[transactionID]
	return ok, nil
}

func touches(e domain.LedgerEntry, accountID string) bool {
	return (e.FromAccountID != nil && *e.FromAccountID == accountID) ||
		(e.ToAccountID != nil && *e.ToAccountID == accountID)
}

func olderThan(e domain.LedgerEntry, c portsrepo.EntryCursor) bool {
	if e.CreatedAt.Equal(c.CreatedAt) {
		return e.ID < c.ID
	}
	return e.CreatedAt.Before(c.CreatedAt)
}

// Entries returns a copy of every ledger entry in insertion order.
func (s *Store) Entries() []domain.LedgerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.LedgerEntry(nil), s.entries...)
}

// --- external transactions ---

func (s *Store) SaveExternalTransaction(_ context.Context, record domain.ExternalTransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkExternalLocked(record, nil); err != nil {
		return err
	}
	s.appendExternalLocked(record)
	return nil
}

func (s *Store) ExistsCompleted(_ context.Context, transactionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.completedExt[transactionID]
	return ok, nil
}

func (s *Store) FindCompletedByWager(_ context.Context, memberAccount string, wagerCode string) (*domain.ExternalTransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.external {
		if rec.Status == domain.ExternalCompleted && rec.MemberAccount == memberAccount && rec.WagerCode == wagerCode {
			r := rec
			return &r, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListByTransactionID(_ context.Context, transactionID string) ([]domain.ExternalTransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ExternalTransactionRecord{}
	for _, rec := range s.external {
		if rec.TransactionID == transactionID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// checkExternalLocked enforces the partial unique index on completed rows. pending holds
// completed ids buffered in the same unit of work.
func (s *Store) checkExternalLocked(record domain.ExternalTransactionRecord, pending map[string]struct{}) error {
	if record.Status != domain.ExternalCompleted {
		return nil
	}
	if _, ok := s.completedExt[record.TransactionID]; ok {
		return fmt.Errorf("%w: external transaction %s", apperrors.ErrDuplicate, record.TransactionID)
	}
	if _, ok := pending[record.TransactionID]; ok {
		return fmt.Errorf("%w: external transaction %s", apperrors.ErrDuplicate, record.TransactionID)
	}
	return nil
}

func (s *Store) appendExternalLocked(record domain.ExternalTransactionRecord) {
	s.nextExternal++
	record.ID = s.nextExternal
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	s.external = append(s.external, record)
	if record.Status == domain.ExternalCompleted {
		s.completedExt[record.TransactionID] = struct{}{}
	}
}

// --- batch audit ---

func (s *Store) SaveBatchAudit(_ context.Context, record domain.BatchAuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextAudit++
	record.ID = s.nextAudit
	s.audits = append(s.audits, record)
	return nil
}

// BatchAudits returns a copy of every batch audit row.
func (s *Store) BatchAudits() []domain.BatchAuditRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.BatchAuditRecord(nil), s.audits...)
}

// --- games ---

// SeedGame adds a catalog entry.
func (s *Store) SeedGame(game domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.GameCode] = game
	if _, ok := s.productToName[game.ProductCode]; !ok {
		s.productToName[game.ProductCode] = game.ProviderName
	}
}

func (s *Store) FindGameByCode(_ context.Context, gameCode string) (*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[gameCode]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &g, nil
}

func (s *Store) FindProviderNameByProductCode(_ context.Context, productCode int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.productToName[productCode]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return name, nil
}

// TotalBalance sums every account balance. The ledger only moves money between
// accounts or through entries with a nil side, so this is the conservation check.
func (s *Store) TotalBalance() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, acc := range s.accounts {
		total += acc.Balance
	}
	return total
}
