package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	connReset := errors.New("connection reset")

	tests := []struct {
		name      string
		err       error
		wantIs    error
		wantPgErr bool
		notIs     []error
		wantMsg   string
	}{
		{
			name:    "unique violation is a duplicate",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "ledger_entries_external_transaction_id_key"},
			wantIs:  apperrors.ErrDuplicate,
			notIs:   []error{apperrors.ErrInsufficientBalance},
			wantMsg: "ledger_entries_external_transaction_id_key",
		},
		{
			name:   "wrapped unique violation is a duplicate",
			err:    fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}),
			wantIs: apperrors.ErrDuplicate,
		},
		{
			name:    "check violation is insufficient balance",
			err:     &pgconn.PgError{Code: "23514", ConstraintName: "accounts_balance_check"},
			wantIs:  apperrors.ErrInsufficientBalance,
			notIs:   []error{apperrors.ErrDuplicate},
			wantMsg: "accounts_balance_check",
		},
		{
			name:      "other postgres codes pass through wrapped",
			err:       &pgconn.PgError{Code: "40P01"},
			wantPgErr: true,
			notIs:     []error{apperrors.ErrDuplicate, apperrors.ErrInsufficientBalance},
		},
		{
			name:    "plain errors pass through wrapped",
			err:     connReset,
			wantIs:  connReset,
			notIs:   []error{apperrors.ErrDuplicate, apperrors.ErrInsufficientBalance},
			wantMsg: "failed to write: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapWriteError(tt.err, "failed to write")

			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}
			if tt.wantPgErr {
				var pgErr *pgconn.PgError
				if assert.ErrorAs(t, got, &pgErr) {
					assert.Equal(t, "40P01", pgErr.Code)
				}
			}
			for _, target := range tt.notIs {
				assert.NotErrorIs(t, got, target)
			}
			assert.Contains(t, got.Error(), "failed to write")
			if tt.wantMsg != "" {
				assert.Contains(t, got.Error(), tt.wantMsg)
			}
		})
	}
}

func TestUniqueSorted(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"single", []string{"b"}, []string{"b"}},
		{"sorted ascending", []string{"c", "a", "b"}, []string{"a", "b", "c"}},
		{"duplicates removed", []string{"b", "a", "b", "a"}, []string{"a", "b"}},
		{
			"uuid order",
			[]string{"f47ac10b-58cc-4372-a567-0e02b2c3d479", "0b9e2f4a-1c2d-4e5f-8a9b-112233445566", "f47ac10b-58cc-4372-a567-0e02b2c3d479"},
			[]string{"0b9e2f4a-1c2d-4e5f-8a9b-112233445566", "f47ac10b-58cc-4372-a567-0e02b2c3d479"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uniqueSorted(tt.ids))
		})
	}
}

func TestUniqueSortedDoesNotMutateInput(t *testing.T) {
	ids := []string{"c", "a", "c"}
	_ = uniqueSorted(ids)
	assert.Equal(t, []string{"c", "a", "c"}, ids)
}
