package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	"github.com/SscSPs/wallet_ledger_backend/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to its row shape.
func ToModelLedgerEntry(d domain.LedgerEntry) (models.LedgerEntry, error) {
	meta, err := json.Marshal(d.Metadata)
	if err != nil {
		return models.LedgerEntry{}, fmt.Errorf("failed to encode ledger metadata: %w", err)
	}
	return models.LedgerEntry{
		ID:                    d.ID,
		FromAccountID:         ToNullString(d.FromAccountID),
		ToAccountID:           ToNullString(d.ToAccountID),
		Amount:                d.Amount,
		Kind:                  string(d.Kind),
		ExternalTransactionID: ToNullString(d.ExternalTransactionID),
		Metadata:              meta,
		CreatedAt:             d.CreatedAt,
	}, nil
}

// ToDomainLedgerEntry converts a ledger row back to the domain type.
func ToDomainLedgerEntry(m models.LedgerEntry) (domain.LedgerEntry, error) {
	meta := domain.Metadata{}
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &meta); err != nil {
			return domain.LedgerEntry{}, fmt.Errorf("failed to decode metadata of entry %s: %w", m.ID, err)
		}
	}
	return domain.LedgerEntry{
		ID:                    m.ID,
		FromAccountID:         FromNullString(m.FromAccountID),
		ToAccountID:           FromNullString(m.ToAccountID),
		Amount:                m.Amount,
		Kind:                  domain.TransactionKind(m.Kind),
		ExternalTransactionID: FromNullString(m.ExternalTransactionID),
		Metadata:              meta,
		CreatedAt:             m.CreatedAt,
	}, nil
}
