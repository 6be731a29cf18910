package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger_backend/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
}

func (s *StoreTestSuite) newAccount(name string, kind domain.AccountKind, parent *string, balance int64) domain.Account {
	now := time.Now().UTC()
	acc := domain.Account{
		ID:        uuid.NewString(),
		UserName:  name,
		Kind:      kind,
		ParentID:  parent,
		Balance:   balance,
		Status:    domain.AccountActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(s.store.SaveAccount(s.ctx, acc))
	return acc
}

func (s *StoreTestSuite) TestSeedsSystemWallet() {
	wallet, err := s.store.FindSystemWallet(s.ctx)
	s.Require().NoError(err)
	s.Equal(domain.SystemWallet, wallet.Kind)
	s.Equal(memory.SystemWalletUserName, wallet.UserName)
}

func (s *StoreTestSuite) TestSaveAccount_DuplicateUserName() {
	s.newAccount("owner1", domain.Owner, nil, 0)
	err := s.store.SaveAccount(s.ctx, domain.Account{ID: uuid.NewString(), UserName: "owner1", Kind: domain.Owner})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *StoreTestSuite) TestFindAccount_NotFound() {
	_, err := s.store.FindAccountByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.store.FindAccountByUserName(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestListChildren_Paginates() {
	owner := s.newAccount("owner1", domain.Owner, nil, 0)
	for _, name := range []string{"a1", "a2", "a3"} {
		s.newAccount(name, domain.Agent, &owner.ID, 0)
	}
	page, err := s.store.ListChildren(s.ctx, owner.ID, 2, 0)
	s.Require().NoError(err)
	s.Len(page, 2)
	rest, err := s.store.ListChildren(s.ctx, owner.ID, 2, 2)
	s.Require().NoError(err)
	s.Len(rest, 1)
	empty, err := s.store.ListChildren(s.ctx, owner.ID, 2, 10)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *StoreTestSuite) TestWithinTransaction_RollbackOnError() {
	acc := s.newAccount("owner1", domain.Owner, nil, 100)
	boom := apperrors.ErrValidation

	err := s.store.WithinTransaction(s.ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		_, err := tx.LockAccountsForUpdate(ctx, []string{acc.ID})
		s.Require().NoError(err)
		s.Require().NoError(tx.UpdateAccountBalance(ctx, acc.ID, 50, time.Now()))
		s.Require().NoError(tx.InsertLedgerEntry(ctx, domain.LedgerEntry{ID: uuid.NewString(), FromAccountID: &acc.ID, Amount: 50, Kind: domain.Withdraw}))
		return boom
	})
	s.ErrorIs(err, boom)

	got, err := s.store.FindAccountByID(s.ctx, acc.ID)
	s.Require().NoError(err)
	s.Equal(int64(100), got.Balance)
	s.Empty(s.store.Entries())
}

func (s *StoreTestSuite) TestWithinTransaction_CommitIsVisible() {
	acc := s.newAccount("owner1", domain.Owner, nil, 100)
	err := s.store.WithinTransaction(s.ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		locked, err := tx.LockAccountsForUpdate(ctx, []string{acc.ID, acc.ID})
		if err != nil {
			return err
		}
		return tx.UpdateAccountBalance(ctx, acc.ID, locked[acc.ID].Balance+25, time.Now())
	})
	s.Require().NoError(err)

	got, err := s.store.FindAccountByID(s.ctx, acc.ID)
	s.Require().NoError(err)
	s.Equal(int64(125), got.Balance)
}

func (s *StoreTestSuite) TestInsertAccount_VisibleOnlyAfterCommit() {
	acc := domain.Account{ID: uuid.NewString(), UserName: "agent1", Kind: domain.Agent, Status: domain.AccountActive}

	err := s.store.WithinTransaction(s.ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		s.Require().NoError(tx.InsertAccount(ctx, acc))
		locked, err := tx.LockAccountsForUpdate(ctx, []string{acc.ID})
		s.Require().NoError(err)
		s.Equal("agent1", locked[acc.ID].UserName)

		_, err = s.store.FindAccountByID(ctx, acc.ID)
		s.ErrorIs(err, apperrors.ErrNotFound)
		return apperrors.ErrInsufficientBalance
	})
	s.ErrorIs(err, apperrors.ErrInsufficientBalance)
	_, err = s.store.FindAccountByUserName(s.ctx, "agent1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	err = s.store.WithinTransaction(s.ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		return tx.InsertAccount(ctx, acc)
	})
	s.Require().NoError(err)
	_, err = s.store.FindAccountByUserName(s.ctx, "agent1")
	s.NoError(err)
}

func (s *StoreTestSuite) TestLock_MissingAccount() {
	err := s.store.WithinTransaction(s.ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		_, err := tx.LockAccountsForUpdate(ctx, []string{"missing"})
		return err
	})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestUpdate_NegativeBalanceRejected() {
	acc := s.newAccount("owner1", domain.Owner, nil, 10)
	err := s.store.WithinTransaction(s.ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		if _, err := tx.LockAccountsForUpdate(ctx, []string{acc.ID}); err != nil {
			return err
		}
		return tx.UpdateAccountBalance(ctx, acc.ID, -1, time.Now())
	})
	s.ErrorIs(err, apperrors.ErrInsufficientBalance)
}

func (s *StoreTestSuite) TestExternalTransaction_CompletedIsUnique() {
	rec := domain.ExternalTransactionRecord{TransactionID: "tx-1", MemberAccount: "p1", Status: domain.ExternalCompleted}
	s.Require().NoError(s.store.SaveExternalTransaction(s.ctx, rec))
	s.ErrorIs(s.store.SaveExternalTransaction(s.ctx, rec), apperrors.ErrDuplicate)

	failed := rec
	failed.Status = domain.ExternalFailed
	s.NoError(s.store.SaveExternalTransaction(s.ctx, failed))

	history, err := s.store.ListByTransactionID(s.ctx, "tx-1")
	s.Require().NoError(err)
	s.Len(history, 2)
	ok, err := s.store.ExistsCompleted(s.ctx, "tx-1")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *StoreTestSuite) TestLedgerEntry_ExternalIDIsUnique() {
	acc := s.newAccount("owner1", domain.Owner, nil, 0)
	ext := "tx-9"
	insert := func() error {
		return s.store.WithinTransaction(s.ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
			return tx.InsertLedgerEntry(ctx, domain.LedgerEntry{ID: uuid.NewString(), ToAccountID: &acc.ID, Amount: 1, Kind: domain.GameWin, ExternalTransactionID: &ext})
		})
	}
	s.Require().NoError(insert())
	s.ErrorIs(insert(), apperrors.ErrDuplicate)

	exists, err := s.store.ExistsByExternalTransactionID(s.ctx, ext)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StoreTestSuite) TestFindCompletedByWager() {
	s.Require().NoError(s.store.SaveExternalTransaction(s.ctx, domain.ExternalTransactionRecord{
		TransactionID: "bet-1", MemberAccount: "p1", WagerCode: "w-1", Status: domain.ExternalCompleted,
	}))
	rec, err := s.store.FindCompletedByWager(s.ctx, "p1", "w-1")
	s.Require().NoError(err)
	s.Equal("bet-1", rec.TransactionID)

	_, err = s.store.FindCompletedByWager(s.ctx, "p2", "w-1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// Opposite-order lock requests on the same pair must not deadlock.
func (s *StoreTestSuite) TestLockOrdering_NoDeadlock() {
	a := s.newAccount("owner1", domain.Owner, nil, 1000)
	b := s.newAccount("owner2", domain.Owner, nil, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.store.WithinTransaction(s.ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
				_, err := tx.LockAccountsForUpdate(ctx, []string{a.ID, b.ID})
				return err
			})
		}()
		go func() {
			defer wg.Done()
			_ = s.store.WithinTransaction(s.ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
				_, err := tx.LockAccountsForUpdate(ctx, []string{b.ID, a.ID})
				return err
			})
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.FailNow("lock acquisition deadlocked")
	}
}

func (s *StoreTestSuite) TestGames() {
	s.store.SeedGame(domain.Game{GameCode: "g1", GameType: "SLOT", ProductCode: 1001, ProviderName: "PP"})
	g, err := s.store.FindGameByCode(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal("SLOT", g.GameType)
	name, err := s.store.FindProviderNameByProductCode(s.ctx, 1001)
	s.Require().NoError(err)
	s.Equal("PP", name)
	_, err = s.store.FindGameByCode(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
