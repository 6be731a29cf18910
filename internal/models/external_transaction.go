package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ExternalTransactionRecord is the row shape of the external_transaction_records table.
type ExternalTransactionRecord struct {
	ID                int64               `db:"id"`
	TransactionID     string              `db:"transaction_id"`
	MemberAccount     string              `db:"member_account"`
	AccountID         sql.NullString      `db:"account_id"`
	AgentID           sql.NullString      `db:"agent_id"`
	ProductCode       int64               `db:"product_code"`
	ProviderName      string              `db:"provider_name"`
	GameType          string              `db:"game_type"`
	GameCode          string              `db:"game_code"`
	GameName          string              `db:"game_name"`
	ChannelCode       string              `db:"channel_code"`
	OperatorCode      string              `db:"operator_code"`
	RequestTime       sql.NullTime        `db:"request_time"`
	Currency          string              `db:"currency"`
	Action            string              `db:"action"`
	Amount            decimal.Decimal     `db:"amount"`
	LedgerAmount      int64               `db:"ledger_amount"`
	ValidBetAmount    decimal.NullDecimal `db:"valid_bet_amount"`
	BetAmount         decimal.NullDecimal `db:"bet_amount"`
	PrizeAmount       decimal.NullDecimal `db:"prize_amount"`
	TipAmount         decimal.NullDecimal `db:"tip_amount"`
	WagerCode         string              `db:"wager_code"`
	WagerStatus       string              `db:"wager_status"`
	RoundID           string              `db:"round_id"`
	SettleAt          sql.NullTime        `db:"settle_at"`
	CreatedAtProvider sql.NullTime        `db:"created_at_provider"`
	Payload           []byte              `db:"payload"` // JSONB, nullable
	Status            string              `db:"status"`
	ErrorMessage      string              `db:"error_message"`
	BeforeBalance     decimal.Decimal     `db:"before_balance"`
	AfterBalance      decimal.Decimal     `db:"after_balance"`
	CreatedAt         time.Time           `db:"created_at"`
}

// BatchAudit is the row shape of the batch_audit_log table.
type BatchAudit struct {
	ID           int64     `db:"id"`
	Endpoint     string    `db:"endpoint"`
	OperatorCode string    `db:"operator_code"`
	Request      []byte    `db:"request"`
	Response     []byte    `db:"response"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}
