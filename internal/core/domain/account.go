package domain

import "time"

// AccountKind is the position of an account in the custodial hierarchy.
type AccountKind string

const (
	SystemWallet AccountKind = "SYSTEM_WALLET"
	Owner        AccountKind = "OWNER"
	Agent        AccountKind = "AGENT"
	Player       AccountKind = "PLAYER"
)

// IsValid reports whether k is one of the known kinds.
func (k AccountKind) IsValid() bool {
	switch k {
	case SystemWallet, Owner, Agent, Player:
		return true
	}
	return false
}

// UplineKind returns the kind an account of kind k must have as its parent.
// The second return value is false for SystemWallet, which has no upline.
func (k AccountKind) UplineKind() (AccountKind, bool) {
	switch k {
	case Owner:
		return SystemWallet, true
	case Agent:
		return Owner, true
	case Player:
		return Agent, true
	}
	return "", false
}

// AccountStatus is the soft lifecycle flag of an account.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
)

// IsValid reports whether s is one of the known statuses.
func (s AccountStatus) IsValid() bool {
	return s == AccountActive || s == AccountSuspended
}

// Account is a node in the SystemWallet/Owner/Agent/Player hierarchy.
// Balance is in ledger minor units and is only ever mutated by the ledger engine.
type Account struct {
	ID        string        `json:"id"`
	UserName  string        `json:"userName"`
	Kind      AccountKind   `json:"kind"`
	ParentID  *string       `json:"parentID,omitempty"`
	Balance   int64         `json:"balance"`
	Status    AccountStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// IsActive reports whether the account may take part in ledger mutations.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}

// IsChildOf reports whether a's parent is parent.
func (a Account) IsChildOf(parent Account) bool {
	return a.ParentID != nil && *a.ParentID == parent.ID
}
