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
	"github.com/SscSPs/wallet_ledger_backend/internal/dto"
	"github.com/google/uuid"
)

const sourceAdmin = "admin"

// accountService implements the administrative operations on the hierarchy.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	ledger      portssvc.LedgerMutatorSvc
	now         func() time.Time
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, ledger portssvc.LedgerMutatorSvc) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: repo,
		ledger:      ledger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates an owner, agent or player. Owners without an explicit parent
// hang off the system wallet.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if !req.Kind.IsValid() || req.Kind == domain.SystemWallet {
		return nil, fmt.Errorf("%w: accounts of kind %q cannot be created", apperrors.ErrValidation, req.Kind)
	}
	if req.InitialBalance < 0 {
		return nil, fmt.Errorf("%w: initial balance %d", apperrors.ErrInvalidAmount, req.InitialBalance)
	}

	var parent *domain.Account
	var err error
	switch {
	case req.ParentID != nil:
		parent, err = s.accountRepo.FindAccountByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s does not exist", apperrors.ErrValidation, *req.ParentID)
			}
			s.LogError(ctx, err, "Failed to find parent account", slog.String("parent_id", *req.ParentID))
			return nil, err
		}
	case req.Kind == domain.Owner:
		parent, err = s.accountRepo.FindSystemWallet(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to find system wallet")
			return nil, err
		}
	}
	if err := domain.CheckParent(req.Kind, parent); err != nil {
		return nil, err
	}

	now := s.now()
	account := domain.Account{
		ID:        uuid.NewString(),
		UserName:  req.UserName,
		Kind:      req.Kind,
		Status:    domain.AccountActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	meta := domain.Metadata{domain.MetaSource: sourceAdmin}
	if parent != nil {
		parentID := parent.ID
		account.ParentID = &parentID
		meta[domain.MetaNote] = initialTopUpNote(parent.Kind)
	}

	created, err := s.ledger.OpenAccount(ctx, account, req.InitialBalance, meta)
	if err != nil {
		if !isExpected(err) {
			s.LogError(ctx, err, "Failed to open account", slog.String("user_name", req.UserName))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", created.ID),
		slog.String("kind", string(created.Kind)),
		slog.Int64("initial_balance", req.InitialBalance))
	return created, nil
}

func initialTopUpNote(parentKind domain.AccountKind) string {
	switch parentKind {
	case domain.Owner:
		return "Initial top up from owner"
	case domain.Agent:
		return "Initial top up from agent"
	}
	return "Initial top up"
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByUserName(ctx context.Context, userName string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByUserName(ctx, userName)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by user name", slog.String("user_name", userName))
		}
		return nil, err
	}
	return account, nil
}

// ListChildren retrieves the direct downline of an account.
func (s *accountService) ListChildren(ctx context.Context, parentID string, limit int, offset int) ([]domain.Account, error) {
	if _, err := s.GetAccountByID(ctx, parentID); err != nil {
		return nil, err
	}
	children, err := s.accountRepo.ListChildren(ctx, parentID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list children", slog.String("parent_id", parentID))
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	if children == nil {
		return []domain.Account{}, nil
	}
	return children, nil
}

// UpdateAccountStatus suspends or re-activates an account. The system wallet cannot be suspended.
func (s *accountService) UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus) (*domain.Account, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, status)
	}
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Kind == domain.SystemWallet && status != domain.AccountActive {
		return nil, fmt.Errorf("%w: the system wallet cannot be suspended", apperrors.ErrValidation)
	}
	if account.Status == status {
		return account, nil
	}

	now := s.now()
	if err := s.accountRepo.UpdateAccountStatus(ctx, accountID, status, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update account status", slog.String("account_id", accountID))
		}
		return nil, err
	}
	account.Status = status
	account.UpdatedAt = now

	s.LogInfo(ctx, "Account status updated", slog.String("account_id", accountID), slog.String("status", string(status)))
	return account, nil
}

// CashIn moves amount from the account's parent into the account.
func (s *accountService) CashIn(ctx context.Context, accountID string, amount int64, note string) (*domain.TransferResult, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.ParentID == nil {
		return nil, fmt.Errorf("%w: account %s has no parent", apperrors.ErrTransferNotPermitted, accountID)
	}
	return s.ledger.Transfer(ctx, *account.ParentID, accountID, amount, domain.CreditTransfer, adminMeta(note))
}

// CashOut moves amount from the account back to its parent.
func (s *accountService) CashOut(ctx context.Context, accountID string, amount int64, note string) (*domain.TransferResult, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.ParentID == nil {
		return nil, fmt.Errorf("%w: account %s has no parent", apperrors.ErrTransferNotPermitted, accountID)
	}
	return s.ledger.Transfer(ctx, accountID, *account.ParentID, amount, domain.DebitTransfer, adminMeta(note))
}

// InjectCapital deposits external capital into the system wallet.
func (s *accountService) InjectCapital(ctx context.Context, amount int64, note string) (*domain.BalanceChange, error) {
	wallet, err := s.accountRepo.FindSystemWallet(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to find system wallet")
		return nil, err
	}
	return s.ledger.Deposit(ctx, wallet.ID, amount, domain.CapitalInjection, adminMeta(note))
}

// ExtractCapital withdraws capital out of the system wallet.
func (s *accountService) ExtractCapital(ctx context.Context, amount int64, note string) (*domain.BalanceChange, error) {
	wallet, err := s.accountRepo.FindSystemWallet(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to find system wallet")
		return nil, err
	}
	return s.ledger.Withdraw(ctx, wallet.ID, amount, domain.CapitalExtraction, adminMeta(note))
}

func adminMeta(note string) domain.Metadata {
	meta := domain.Metadata{domain.MetaSource: sourceAdmin}
	if note != "" {
		meta[domain.MetaNote] = note
	}
	return meta
}
