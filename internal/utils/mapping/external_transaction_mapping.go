package mapping

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	"github.com/SscSPs/wallet_ledger_backend/internal/models"
)

// ToModelExternalTransaction converts a domain record to its row shape.
func ToModelExternalTransaction(d domain.ExternalTransactionRecord) models.ExternalTransactionRecord {
	return models.ExternalTransactionRecord{
		ID:                d.ID,
		TransactionID:     d.TransactionID,
		MemberAccount:     d.MemberAccount,
		AccountID:         ToNullString(d.AccountID),
		AgentID:           ToNullString(d.AgentID),
		ProductCode:       d.ProductCode,
		ProviderName:      d.ProviderName,
		GameType:          d.GameType,
		GameCode:          d.GameCode,
		GameName:          d.GameName,
		ChannelCode:       d.ChannelCode,
		OperatorCode:      d.OperatorCode,
		RequestTime:       toNullTime(d.RequestTime),
		Currency:          d.Currency,
		Action:            d.Action,
		Amount:            d.Amount,
		LedgerAmount:      d.LedgerAmount,
		ValidBetAmount:    d.ValidBetAmount,
		BetAmount:         d.BetAmount,
		PrizeAmount:       d.PrizeAmount,
		TipAmount:         d.TipAmount,
		WagerCode:         d.WagerCode,
		WagerStatus:       d.WagerStatus,
		RoundID:           d.RoundID,
		SettleAt:          toNullTime(d.SettleAt),
		CreatedAtProvider: toNullTime(d.CreatedAtProvider),
		Payload:           nullableJSON(d.Payload),
		Status:            string(d.Status),
		ErrorMessage:      d.ErrorMessage,
		BeforeBalance:     d.BeforeBalance,
		AfterBalance:      d.AfterBalance,
		CreatedAt:         d.CreatedAt,
	}
}

// ToDomainExternalTransaction converts a row back to the domain type.
func ToDomainExternalTransaction(m models.ExternalTransactionRecord) domain.ExternalTransactionRecord {
	return domain.ExternalTransactionRecord{
		ID:                m.ID,
		TransactionID:     m.TransactionID,
		MemberAccount:     m.MemberAccount,
		AccountID:         FromNullString(m.AccountID),
		AgentID:           FromNullString(m.AgentID),
		ProductCode:       m.ProductCode,
		ProviderName:      m.ProviderName,
		GameType:          m.GameType,
		GameCode:          m.GameCode,
		GameName:          m.GameName,
		ChannelCode:       m.ChannelCode,
		OperatorCode:      m.OperatorCode,
		RequestTime:       fromNullTime(m.RequestTime),
		Currency:          m.Currency,
		Action:            m.Action,
		Amount:            m.Amount,
		LedgerAmount:      m.LedgerAmount,
		ValidBetAmount:    m.ValidBetAmount,
		BetAmount:         m.BetAmount,
		PrizeAmount:       m.PrizeAmount,
		TipAmount:         m.TipAmount,
		WagerCode:         m.WagerCode,
		WagerStatus:       m.WagerStatus,
		RoundID:           m.RoundID,
		SettleAt:          fromNullTime(m.SettleAt),
		CreatedAtProvider: fromNullTime(m.CreatedAtProvider),
		Payload:           json.RawMessage(m.Payload),
		Status:            domain.ExternalTransactionStatus(m.Status),
		ErrorMessage:      m.ErrorMessage,
		BeforeBalance:     m.BeforeBalance,
		AfterBalance:      m.AfterBalance,
		CreatedAt:         m.CreatedAt,
	}
}

// ToModelBatchAudit converts a batch audit record to its row shape.
func ToModelBatchAudit(d domain.BatchAuditRecord) models.BatchAudit {
	return models.BatchAudit{
		ID:           d.ID,
		Endpoint:     d.Endpoint,
		OperatorCode: d.OperatorCode,
		Request:      nullableJSON(d.Request),
		Response:     nullableJSON(d.Response),
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
	}
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

// nullableJSON keeps empty payloads out of JSONB columns.
func nullableJSON(raw json.RawMessage) []byte {
	if len(raw) == 0 || !json.Valid(raw) {
		return nil
	}
	return raw
}
