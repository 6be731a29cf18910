package models

import (
	"database/sql"
	"time"
)

// Account is the row shape of the accounts table.
type Account struct {
	ID        string         `db:"id"`
	UserName  string         `db:"user_name"`
	Kind      string         `db:"kind"`
	ParentID  sql.NullString `db:"parent_id"`
	Balance   int64          `db:"balance"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
