package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByUserName retrieves an account by its external member identifier.
	FindAccountByUserName(ctx context.Context, userName string) (*domain.Account, error)

	// FindSystemWallet retrieves the account tagged with the SystemWallet kind.
	FindSystemWallet(ctx context.Context) (*domain.Account, error)

	// ListChildren retrieves the direct downline of an account.
	ListChildren(ctx context.Context, parentID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
// Balances are not written here; see LedgerTx.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountStatus toggles the soft status flag of an account.
	UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
