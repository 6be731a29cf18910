package services

import (
	"context"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	"github.com/SscSPs/wallet_ledger_backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByUserName retrieves an account by its member identifier.
	GetAccountByUserName(ctx context.Context, userName string) (*domain.Account, error)

	// ListChildren retrieves the direct downline of an account.
	ListChildren(ctx context.Context, parentID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines administrative write operations for accounts
type AccountWriterSvc interface {
	// CreateAccount creates an account under its parent and applies the optional initial top-up.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccountStatus suspends or re-activates an account.
	UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus) (*domain.Account, error)
}

// AccountCashierSvc moves money along an account's own lineage.
type AccountCashierSvc interface {
	// CashIn moves amount from the account's parent into the account.
	CashIn(ctx context.Context, accountID string, amount int64, note string) (*domain.TransferResult, error)

	// CashOut moves amount from the account back to its parent.
	CashOut(ctx context.Context, accountID string, amount int64, note string) (*domain.TransferResult, error)

	// InjectCapital deposits external capital into the system wallet.
	InjectCapital(ctx context.Context, amount int64, note string) (*domain.BalanceChange, error)

	// ExtractCapital withdraws capital out of the system wallet.
	ExtractCapital(ctx context.Context, amount int64, note string) (*domain.BalanceChange, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCashierSvc
}
