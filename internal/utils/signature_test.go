package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeamlessSignature(t *testing.T) {
	sign := SeamlessSignature("OP01", "1700000000", "deposit", "topsecret")
	assert.Len(t, sign, 32)
	assert.Equal(t, strings.ToLower(sign), sign, "Signature should be lowercase hex")

	assert.NotEqual(t, sign, SeamlessSignature("OP01", "1700000000", "withdraw", "topsecret"),
		"Operation name must be part of the signed string")
}

func TestVerifySeamlessSignature(t *testing.T) {
	sign := SeamlessSignature("OP01", "1700000000", "getbalance", "topsecret")

	assert.True(t, VerifySeamlessSignature(sign, "OP01", "1700000000", "getbalance", "topsecret"))
	assert.True(t, VerifySeamlessSignature(strings.ToUpper(sign), "OP01", "1700000000", "getbalance", "topsecret"),
		"Comparison should be case-insensitive")
	assert.False(t, VerifySeamlessSignature(sign, "OP01", "1700000001", "getbalance", "topsecret"))
	assert.False(t, VerifySeamlessSignature(sign, "OP01", "1700000000", "getbalance", "other"))
	assert.False(t, VerifySeamlessSignature("", "OP01", "1700000000", "getbalance", "topsecret"))
	assert.False(t, VerifySeamlessSignature(SeamlessSignature("OP01", "1", "deposit", ""), "OP01", "1", "deposit", ""),
		"An unset secret must reject every request")
}
