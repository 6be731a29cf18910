package mapping

import (
	"database/sql"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	"github.com/SscSPs/wallet_ledger_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:        d.ID,
		UserName:  d.UserName,
		Kind:      string(d.Kind),
		ParentID:  ToNullString(d.ParentID),
		Balance:   d.Balance,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:        m.ID,
		UserName:  m.UserName,
		Kind:      domain.AccountKind(m.Kind),
		ParentID:  FromNullString(m.ParentID),
		Balance:   m.Balance,
		Status:    domain.AccountStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToNullString converts an optional string for storage.
func ToNullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// FromNullString converts a nullable column back to an optional string.
func FromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
