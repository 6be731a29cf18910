package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// millisThreshold separates epoch milliseconds from epoch seconds.
const millisThreshold = 1_000_000_000_000

// FlexString accepts both JSON strings and JSON numbers. Providers are inconsistent
// about how they encode identifiers.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the raw value.
func (f FlexString) String() string {
	return string(f)
}

// EpochTime converts a provider epoch timestamp (seconds or milliseconds) into a time.
// Empty or non-numeric values yield nil.
func EpochTime(n json.Number) *time.Time {
	if n == "" {
		return nil
	}
	v, err := n.Int64()
	if err != nil || v <= 0 {
		return nil
	}
	if v >= millisThreshold {
		v /= 1000
	}
	t := time.Unix(v, 0).UTC()
	return &t
}

// SeamlessTransactionRequest is the signed deposit/withdraw webhook envelope.
type SeamlessTransactionRequest struct {
	OperatorCode  string                 `json:"operator_code" validate:"required"`
	Currency      string                 `json:"currency" validate:"required"`
	Sign          string                 `json:"sign" validate:"required"`
	RequestTime   json.Number            `json:"request_time" validate:"required,numeric"`
	BatchRequests []SeamlessBatchRequest `json:"batch_requests" validate:"required,min=1,dive"`
}

// SeamlessBatchRequest groups the transactions of one member.
type SeamlessBatchRequest struct {
	MemberAccount string                `json:"member_account" validate:"required"`
	ProductCode   int64                 `json:"product_code" validate:"required"`
	GameType      string                `json:"game_type"`
	Transactions  []SeamlessTransaction `json:"transactions"`
}

// SeamlessTransaction is one provider transaction. Missing id or action is reported
// per transaction rather than failing the whole envelope.
type SeamlessTransaction struct {
	ID             FlexString          `json:"id"`
	Action         string              `json:"action"`
	Amount         decimal.Decimal     `json:"amount"`
	ValidBetAmount decimal.NullDecimal `json:"valid_bet_amount"`
	BetAmount      decimal.NullDecimal `json:"bet_amount"`
	PrizeAmount    decimal.NullDecimal `json:"prize_amount"`
	TipAmount      decimal.NullDecimal `json:"tip_amount"`
	WagerCode      FlexString          `json:"wager_code"`
	WagerStatus    string              `json:"wager_status"`
	RoundID        FlexString          `json:"round_id"`
	GameCode       string              `json:"game_code"`
	ChannelCode    string              `json:"channel_code"`
	SettleAt       json.Number         `json:"settle_at"`
	SettledAt      json.Number         `json:"settled_at"`
	CreatedAt      json.Number         `json:"created_at"`
	Payload        json.RawMessage     `json:"payload"`
}

// WagerKey returns the wager code, falling back to the round id.
func (t SeamlessTransaction) WagerKey() string {
	if t.WagerCode != "" {
		return t.WagerCode.String()
	}
	return t.RoundID.String()
}

// SettleTime returns settle_at, falling back to settled_at.
func (t SeamlessTransaction) SettleTime() *time.Time {
	if t.SettleAt != "" {
		return EpochTime(t.SettleAt)
	}
	return EpochTime(t.SettledAt)
}

// GetBalanceRequest is the signed balance query envelope.
type GetBalanceRequest struct {
	OperatorCode  string           `json:"operator_code" validate:"required"`
	Currency      string           `json:"currency" validate:"required"`
	Sign          string           `json:"sign" validate:"required"`
	RequestTime   json.Number      `json:"request_time" validate:"required,numeric"`
	BatchRequests []GetBalanceItem `json:"batch_requests" validate:"required,min=1,dive"`
}

// GetBalanceItem is one member of a balance query.
type GetBalanceItem struct {
	MemberAccount string `json:"member_account" validate:"required"`
	ProductCode   int64  `json:"product_code" validate:"required"`
}

// SeamlessResult is the per-transaction (or per-member) result record.
type SeamlessResult struct {
	MemberAccount string              `json:"member_account"`
	ProductCode   int64               `json:"product_code"`
	BeforeBalance json.Number         `json:"before_balance,omitempty"`
	Balance       json.Number         `json:"balance"`
	Code          domain.SeamlessCode `json:"code"`
	Message       string              `json:"message"`
}

// SeamlessResponse is the top-level webhook response.
type SeamlessResponse struct {
	Code    domain.SeamlessCode `json:"code"`
	Message string              `json:"message"`
	Data    any                 `json:"data"`
}

// HasFailures reports whether any result in the response is not a success.
func (r *SeamlessResponse) HasFailures() bool {
	if r.Code != domain.CodeSuccess {
		return true
	}
	results, ok := r.Data.([]SeamlessResult)
	if !ok {
		return false
	}
	for _, res := range results {
		if res.Code != domain.CodeSuccess {
			return true
		}
	}
	return false
}

// FormatBalance renders an amount with exactly scale decimals as a JSON number.
func FormatBalance(amount decimal.Decimal, scale int32) json.Number {
	return json.Number(amount.StringFixed(scale))
}
