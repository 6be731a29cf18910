package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ExternalTransactionStatus is the outcome recorded for one provider transaction attempt.
type ExternalTransactionStatus string

const (
	ExternalCompleted ExternalTransactionStatus = "completed"
	ExternalFailed    ExternalTransactionStatus = "failed"
	ExternalDuplicate ExternalTransactionStatus = "duplicate"
	ExternalInfo      ExternalTransactionStatus = "info"
)

// ExternalTransactionRecord is the append-only attempt history of a provider transaction.
// Only one completed row may exist per TransactionID.
type ExternalTransactionRecord struct {
	ID                int64                     `json:"id"`
	TransactionID     string                    `json:"transactionID"`
	MemberAccount     string                    `json:"memberAccount"`
	AccountID         *string                   `json:"accountID,omitempty"`
	AgentID           *string                   `json:"agentID,omitempty"`
	ProductCode       int64                     `json:"productCode"`
	ProviderName      string                    `json:"providerName"`
	GameType          string                    `json:"gameType"`
	GameCode          string                    `json:"gameCode"`
	GameName          string                    `json:"gameName"`
	ChannelCode       string                    `json:"channelCode"`
	OperatorCode      string                    `json:"operatorCode"`
	RequestTime       *time.Time                `json:"requestTime,omitempty"`
	Currency          string                    `json:"currency"`
	Action            string                    `json:"action"`
	Amount            decimal.Decimal           `json:"amount"`
	LedgerAmount      int64                     `json:"ledgerAmount"`
	ValidBetAmount    decimal.NullDecimal       `json:"validBetAmount"`
	BetAmount         decimal.NullDecimal       `json:"betAmount"`
	PrizeAmount       decimal.NullDecimal       `json:"prizeAmount"`
	TipAmount         decimal.NullDecimal       `json:"tipAmount"`
	WagerCode         string                    `json:"wagerCode"`
	WagerStatus       string                    `json:"wagerStatus"`
	RoundID           string                    `json:"roundID"`
	SettleAt          *time.Time                `json:"settleAt,omitempty"`
	CreatedAtProvider *time.Time                `json:"createdAtProvider,omitempty"`
	Payload           json.RawMessage           `json:"payload,omitempty"`
	Status            ExternalTransactionStatus `json:"status"`
	ErrorMessage      string                    `json:"errorMessage,omitempty"`
	BeforeBalance     decimal.Decimal           `json:"beforeBalance"`
	AfterBalance      decimal.Decimal           `json:"afterBalance"`
	CreatedAt         time.Time                 `json:"createdAt"`
}

// BatchAuditStatus summarises a whole webhook call.
type BatchAuditStatus string

const (
	BatchSuccess        BatchAuditStatus = "success"
	BatchPartialFailure BatchAuditStatus = "partial_success_or_failure"
)

// BatchAuditRecord stores the full request and response of one webhook call.
type BatchAuditRecord struct {
	ID           int64            `json:"id"`
	Endpoint     string           `json:"endpoint"`
	OperatorCode string           `json:"operatorCode"`
	Request      json.RawMessage  `json:"request"`
	Response     json.RawMessage  `json:"response"`
	Status       BatchAuditStatus `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// Game is a catalog entry used to classify provider transactions.
type Game struct {
	GameCode     string `json:"gameCode"`
	GameName     string `json:"gameName"`
	GameType     string `json:"gameType"`
	ProductCode  int64  `json:"productCode"`
	ProviderName string `json:"providerName"`
}
