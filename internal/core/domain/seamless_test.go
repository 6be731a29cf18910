package domain_test

import (
	"testing"

	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSeamlessCode_Message(t *testing.T) {
	assert.Equal(t, "Success", domain.CodeSuccess.Message())
	assert.Equal(t, "Insufficient balance", domain.CodeInsufficientBalance.Message())
	assert.Equal(t, "Invalid signature", domain.CodeInvalidSignature.Message())
	assert.Equal(t, "Unknown", domain.SeamlessCode(4242).Message())
}

func TestActionTables(t *testing.T) {
	for _, action := range []string{"WIN", "settled", "Cancel", "PRESERVE_REFUND"} {
		assert.True(t, domain.IsDepositAction(action), action)
	}
	assert.False(t, domain.IsDepositAction("BET"))

	for _, action := range []string{"BET", "fee", "ADJUST_DEBIT"} {
		assert.True(t, domain.IsWithdrawAction(action), action)
	}
	assert.False(t, domain.IsWithdrawAction("WIN"))

	assert.True(t, domain.IsValidWagerStatus(""))
	assert.True(t, domain.IsValidWagerStatus("settled"))
	assert.False(t, domain.IsValidWagerStatus("LOST"))
}
