package handlers_test

import (
	"context"
	"encoding/json"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByUserName(ctx context.Context, userName string) (*domain.Account, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListChildren(ctx context.Context, parentID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, parentID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus) (*domain.Account, error) {
	args := m.Called(ctx, accountID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) CashIn(ctx context.Context, accountID string, amount int64, note string) (*domain.TransferResult, error) {
	args := m.Called(ctx, accountID, amount, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}
func (m *MockAccountService) CashOut(ctx context.Context, accountID string, amount int64, note string) (*domain.TransferResult, error) {
	args := m.Called(ctx, accountID, amount, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}
func (m *MockAccountService) InjectCapital(ctx context.Context, amount int64, note string) (*domain.BalanceChange, error) {
	args := m.Called(ctx, amount, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceChange), args.Error(1)
}
func (m *MockAccountService) ExtractCapital(ctx context.Context, amount int64, note string) (*domain.BalanceChange, error) {
	args := m.Called(ctx, amount, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceChange), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Deposit(ctx context.Context, accountID string, amount int64, kind domain.TransactionKind, meta domain.Metadata, opts ...portssvc.MutationOption) (*domain.BalanceChange, error) {
	args := m.Called(ctx, accountID, amount, kind, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceChange), args.Error(1)
}
func (m *MockLedgerService) Withdraw(ctx context.Context, accountID string, amount int64, kind domain.TransactionKind, meta domain.Metadata, opts ...portssvc.MutationOption) (*domain.BalanceChange, error) {
	args := m.Called(ctx, accountID, amount, kind, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceChange), args.Error(1)
}
func (m *MockLedgerService) Transfer(ctx context.Context, fromID string, toID string, amount int64, kind domain.TransactionKind, meta domain.Metadata) (*domain.TransferResult, error) {
	args := m.Called(ctx, fromID, toID, amount, kind, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}
func (m *MockLedgerService) OpenAccount(ctx context.Context, account domain.Account, initialBalance int64, meta domain.Metadata) (*domain.Account, error) {
	args := m.Called(ctx, account, initialBalance, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockLedgerService) ListEntries(ctx context.Context, accountID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLedgerEntriesResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock IdempotencyService ---
type MockIdempotencyService struct {
	mock.Mock
}

func (m *MockIdempotencyService) IsDuplicate(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}
func (m *MockIdempotencyService) Claim(ctx context.Context, transactionID string) (func(), bool, error) {
	args := m.Called(ctx, transactionID)
	return func() {}, args.Bool(0), args.Error(1)
}
func (m *MockIdempotencyService) RecordAttempt(ctx context.Context, record domain.ExternalTransactionRecord) (domain.ExternalTransactionStatus, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(domain.ExternalTransactionStatus), args.Error(1)
}
func (m *MockIdempotencyService) History(ctx context.Context, transactionID string) ([]domain.ExternalTransactionRecord, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExternalTransactionRecord), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.IdempotencySvc = (*MockIdempotencyService)(nil)

// --- Mock SeamlessWalletService ---
type MockSeamlessService struct {
	mock.Mock
}

func (m *MockSeamlessService) Deposit(ctx context.Context, req dto.SeamlessTransactionRequest, raw json.RawMessage) *dto.SeamlessResponse {
	return m.Called(ctx, req, raw).Get(0).(*dto.SeamlessResponse)
}
func (m *MockSeamlessService) Withdraw(ctx context.Context, req dto.SeamlessTransactionRequest, raw json.RawMessage) *dto.SeamlessResponse {
	return m.Called(ctx, req, raw).Get(0).(*dto.SeamlessResponse)
}
func (m *MockSeamlessService) GetBalance(ctx context.Context, req dto.GetBalanceRequest, raw json.RawMessage) *dto.SeamlessResponse {
	return m.Called(ctx, req, raw).Get(0).(*dto.SeamlessResponse)
}

// Ensure mock implements the interface
var _ portssvc.SeamlessWalletSvc = (*MockSeamlessService)(nil)
