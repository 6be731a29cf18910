package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorTokenRoundTrip(t *testing.T) {
	token, err := GenerateOperatorToken("operator-7", "secret", "wallet-admin", time.Minute)
	require.NoError(t, err)

	claims, err := ParseOperatorToken(token, "secret", "wallet-admin")
	require.NoError(t, err)
	assert.Equal(t, "operator-7", claims.Subject)
	assert.Equal(t, "wallet-admin", claims.Issuer)
}

func TestParseOperatorToken_Rejections(t *testing.T) {
	valid, err := GenerateOperatorToken("operator-7", "secret", "wallet-admin", time.Minute)
	require.NoError(t, err)
	expired, err := GenerateOperatorToken("operator-7", "secret", "wallet-admin", -time.Minute)
	require.NoError(t, err)
	anonymous, err := GenerateOperatorToken("", "secret", "wallet-admin", time.Minute)
	require.NoError(t, err)

	_, err = ParseOperatorToken(valid, "other-secret", "wallet-admin")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseOperatorToken(valid, "secret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	_, err = ParseOperatorToken(expired, "secret", "wallet-admin")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ParseOperatorToken(anonymous, "secret", "wallet-admin")
	assert.ErrorIs(t, err, ErrMissingSubject)

	_, err = ParseOperatorToken(valid, "secret", "")
	assert.NoError(t, err, "An empty issuer disables the issuer check")
}
