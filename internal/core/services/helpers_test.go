package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// stepClock advances one second on every read so entries get strictly ordered timestamps.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

// openAccount creates an account through the ledger engine, funded from its parent.
func openAccount(ctx context.Context, ledger portssvc.LedgerMutatorSvc, name string, kind domain.AccountKind, parentID string, initial int64) (*domain.Account, error) {
	now := time.Now().UTC()
	acc := domain.Account{
		ID:        uuid.NewString(),
		UserName:  name,
		Kind:      kind,
		Status:    domain.AccountActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if parentID != "" {
		p := parentID
		acc.ParentID = &p
	}
	return ledger.OpenAccount(ctx, acc, initial, domain.Metadata{domain.MetaSource: "test"})
}
