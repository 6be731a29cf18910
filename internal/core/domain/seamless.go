package domain

import "strings"

// SeamlessCode is a per-transaction result code of the seamless wallet protocol.
type SeamlessCode int

const (
	CodeSuccess              SeamlessCode = 0
	CodeInternalServerError  SeamlessCode = 999
	CodeMemberNotExist       SeamlessCode = 1000
	CodeInsufficientBalance  SeamlessCode = 1001
	CodeDuplicateTransaction SeamlessCode = 1003
	CodeInvalidSignature     SeamlessCode = 1004
	CodeBetNotExist          SeamlessCode = 1006
)

// Message returns the default human-readable message for c.
func (c SeamlessCode) Message() string {
	switch c {
	case CodeSuccess:
		return "Success"
	case CodeInternalServerError:
		return "Internal Server Error"
	case CodeMemberNotExist:
		return "Member not exist"
	case CodeInsufficientBalance:
		return "Insufficient balance"
	case CodeDuplicateTransaction:
		return "Duplicate transaction"
	case CodeInvalidSignature:
		return "Invalid signature"
	case CodeBetNotExist:
		return "Bet not exist"
	}
	return "Unknown"
}

// SeamlessOperation names a webhook operation; it is part of the signed string.
type SeamlessOperation string

const (
	OpDeposit    SeamlessOperation = "deposit"
	OpWithdraw   SeamlessOperation = "withdraw"
	OpGetBalance SeamlessOperation = "getbalance"
)

// ActionCancel reverses a previously placed wager.
const ActionCancel = "CANCEL"

var depositActions = map[string]struct{}{
	"WIN": {}, "SETTLED": {}, "JACKPOT": {}, "BONUS": {}, "PROMO": {},
	"LEADERBOARD": {}, "FREEBET": {}, "PRESERVE_REFUND": {}, ActionCancel: {},
}

var withdrawActions = map[string]struct{}{
	"BET": {}, "ADJUST_DEBIT": {}, "WITHDRAW": {}, "FEE": {},
}

var wagerStatuses = map[string]struct{}{
	"SETTLED": {}, "UNSETTLED": {}, "PENDING": {}, "CANCELLED": {}, "VOID": {},
}

// IsDepositAction reports whether action may be sent to the deposit endpoint.
func IsDepositAction(action string) bool {
	_, ok := depositActions[strings.ToUpper(action)]
	return ok
}

// IsWithdrawAction reports whether action may be sent to the withdraw endpoint.
func IsWithdrawAction(action string) bool {
	_, ok := withdrawActions[strings.ToUpper(action)]
	return ok
}

// IsValidWagerStatus reports whether status is an accepted wager status. Empty is accepted.
func IsValidWagerStatus(status string) bool {
	if status == "" {
		return true
	}
	_, ok := wagerStatuses[strings.ToUpper(status)]
	return ok
}
