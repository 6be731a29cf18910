package services

import (
	"context"
	"encoding/json"

	"github.com/SscSPs/wallet_ledger_backend/internal/dto"
)

// SeamlessWalletSvc implements the provider-facing seamless wallet webhooks.
// Results are always returned as a protocol response; per-transaction failures are
// encoded as result codes, not errors.
type SeamlessWalletSvc interface {
	Deposit(ctx context.Context, req dto.SeamlessTransactionRequest, raw json.RawMessage) *dto.SeamlessResponse
	Withdraw(ctx context.Context, req dto.SeamlessTransactionRequest, raw json.RawMessage) *dto.SeamlessResponse
	GetBalance(ctx context.Context, req dto.GetBalanceRequest, raw json.RawMessage) *dto.SeamlessResponse
}
