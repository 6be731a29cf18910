package models

import (
	"database/sql"
	"time"
)

// LedgerEntry is the row shape of the ledger_entries table.
type LedgerEntry struct {
	ID                    string         `db:"id"`
	FromAccountID         sql.NullString `db:"from_account_id"`
	ToAccountID           sql.NullString `db:"to_account_id"`
	Amount                int64          `db:"amount"`
	Kind                  string         `db:"kind"`
	ExternalTransactionID sql.NullString `db:"external_transaction_id"`
	Metadata              []byte         `db:"metadata"` // JSONB
	CreatedAt             time.Time      `db:"created_at"`
}
