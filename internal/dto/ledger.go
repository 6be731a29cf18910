package dto

import (
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
)

// LedgerEntryResponse mirrors domain.LedgerEntry.
type LedgerEntryResponse struct {
	ID                    string                 `json:"id"`
	FromAccountID         *string                `json:"fromAccountID"`
	ToAccountID           *string                `json:"toAccountID"`
	Amount                int64                  `json:"amount"`
	Kind                  domain.TransactionKind `json:"kind"`
	ExternalTransactionID *string                `json:"externalTransactionID,omitempty"`
	Metadata              domain.Metadata        `json:"metadata"`
	CreatedAt             time.Time              `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:                    e.ID,
		FromAccountID:         e.FromAccountID,
		ToAccountID:           e.ToAccountID,
		Amount:                e.Amount,
		Kind:                  e.Kind,
		ExternalTransactionID: e.ExternalTransactionID,
		Metadata:              e.Metadata,
		CreatedAt:             e.CreatedAt,
	}
}

// ListLedgerEntriesParams defines query parameters for listing ledger entries.
type ListLedgerEntriesParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=1,max=500"`
	NextToken string `form:"next_token"`
}

// ListLedgerEntriesResponse wraps a page of ledger entries.
type ListLedgerEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ExternalTransactionHistoryResponse lists every attempt of one provider transaction.
type ExternalTransactionHistoryResponse struct {
	TransactionID string                             `json:"transactionID"`
	Attempts      []domain.ExternalTransactionRecord `json:"attempts"`
}
