package domain

import (
	"fmt"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
)

// TransferDirection tells which way along the hierarchy a transfer kind may move money.
type TransferDirection int

const (
	// Downline moves money from an account to one of its direct children.
	Downline TransferDirection = iota
	// Upline moves money from an account to its direct parent.
	Upline
)

type transferEdge struct {
	from, to AccountKind
}

// permittedEdges is the closed permission table for transfers, keyed by direction.
// requireLineage marks edges where the child must point at the parent by ParentID.
var permittedEdges = map[TransferDirection]map[transferEdge]bool{
	Downline: {
		{SystemWallet, Owner}: false,
		{Owner, Agent}:        true,
		{Agent, Player}:       true,
	},
	Upline: {
		{Owner, SystemWallet}: false,
		{Agent, Owner}:        true,
		{Player, Agent}:       true,
	},
}

// DirectionOf returns the direction a transaction kind travels in. Cash-outs travel
// upward, every other transfer kind travels downward.
func DirectionOf(kind TransactionKind) TransferDirection {
	if kind == DebitTransfer {
		return Upline
	}
	return Downline
}

// CheckTransfer validates that moving money from -> to with the given kind follows an
// adjacent edge of the hierarchy along the accounts' own lineage.
func CheckTransfer(from, to Account, kind TransactionKind) error {
	if from.ID == to.ID {
		return fmt.Errorf("%w: source and destination are the same account", apperrors.ErrTransferNotPermitted)
	}

	dir := DirectionOf(kind)
	requireLineage, ok := permittedEdges[dir][transferEdge{from.Kind, to.Kind}]
	if !ok {
		return fmt.Errorf("%w: %s from %s to %s", apperrors.ErrTransferNotPermitted, kind, from.Kind, to.Kind)
	}
	if !requireLineage {
		return nil
	}

	switch dir {
	case Downline:
		if !to.IsChildOf(from) {
			return fmt.Errorf("%w: account %s is not a direct child of %s", apperrors.ErrTransferNotPermitted, to.ID, from.ID)
		}
	case Upline:
		if !from.IsChildOf(to) {
			return fmt.Errorf("%w: account %s is not the parent of %s", apperrors.ErrTransferNotPermitted, to.ID, from.ID)
		}
	}
	return nil
}

// CheckParent validates that parent may be the upline of a new account of the given kind.
// A nil parent is accepted only for owners, which then hang off the system wallet implicitly.
func CheckParent(kind AccountKind, parent *Account) error {
	want, ok := kind.UplineKind()
	if !ok {
		return fmt.Errorf("%w: accounts of kind %s cannot be created", apperrors.ErrValidation, kind)
	}
	if parent == nil {
		if kind == Owner {
			return nil
		}
		return fmt.Errorf("%w: %s requires a parent of kind %s", apperrors.ErrValidation, kind, want)
	}
	if parent.Kind != want {
		return fmt.Errorf("%w: %s parent must be %s, got %s", apperrors.ErrValidation, kind, want, parent.Kind)
	}
	return nil
}
