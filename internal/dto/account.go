package dto

import (
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	UserName       string             `json:"userName" binding:"required,min=3,max=64"`
	Kind           domain.AccountKind `json:"kind" binding:"required,oneof=OWNER AGENT PLAYER"`
	ParentID       *string            `json:"parentID"`                               // Required for agents and players
	InitialBalance int64              `json:"initialBalance" binding:"omitempty,gte=0"` // Optional top-up from the parent
}

// UpdateAccountStatusRequest toggles an account's status.
type UpdateAccountStatusRequest struct {
	Status domain.AccountStatus `json:"status" binding:"required,oneof=ACTIVE SUSPENDED"`
}

// AmountRequest carries an admin cash movement.
type AmountRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Note   string `json:"note" binding:"max=255"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	ID        string               `json:"id"`
	UserName  string               `json:"userName"`
	Kind      domain.AccountKind   `json:"kind"`
	ParentID  string               `json:"parentID"` // Empty for roots
	Balance   int64                `json:"balance"`
	Status    domain.AccountStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	parentID := ""
	if acc.ParentID != nil {
		parentID = *acc.ParentID
	}
	return AccountResponse{
		ID:        acc.ID,
		UserName:  acc.UserName,
		Kind:      acc.Kind,
		ParentID:  parentID,
		Balance:   acc.Balance,
		Status:    acc.Status,
		CreatedAt: acc.CreatedAt,
		UpdatedAt: acc.UpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// TransferResponse is returned by cash in and cash out.
type TransferResponse struct {
	From  AccountResponse     `json:"from"`
	To    AccountResponse     `json:"to"`
	Entry LedgerEntryResponse `json:"entry"`
}

// ToTransferResponse converts a domain.TransferResult to its DTO.
func ToTransferResponse(res *domain.TransferResult) TransferResponse {
	return TransferResponse{
		From:  ToAccountResponse(&res.From),
		To:    ToAccountResponse(&res.To),
		Entry: ToLedgerEntryResponse(res.Entry),
	}
}

// BalanceChangeResponse is returned by capital injection and extraction.
type BalanceChangeResponse struct {
	Account       AccountResponse     `json:"account"`
	BalanceBefore int64               `json:"balanceBefore"`
	BalanceAfter  int64               `json:"balanceAfter"`
	Entry         LedgerEntryResponse `json:"entry"`
}

// ToBalanceChangeResponse converts a domain.BalanceChange to its DTO.
func ToBalanceChangeResponse(change *domain.BalanceChange) BalanceChangeResponse {
	return BalanceChangeResponse{
		Account:       ToAccountResponse(&change.Account),
		BalanceBefore: change.BalanceBefore,
		BalanceAfter:  change.BalanceAfter,
		Entry:         ToLedgerEntryResponse(change.Entry),
	}
}
