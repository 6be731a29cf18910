package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeEntryToken(t *testing.T) {
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)
	entryID := "5f0c3a0e-8a7f-4c1f-9d0a-1b2c3d4e5f60"

	token := EncodeEntryToken(createdAt, entryID)
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.NotContains(t, token, "+", "Token must be safe in a query string")
	assert.NotContains(t, token, "/", "Token must be safe in a query string")

	decodedAt, decodedID, err := DecodeEntryToken(token)
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt), "Created at should match after decode")
	assert.Equal(t, entryID, decodedID)

	// Non-UTC input is normalized
	local := createdAt.In(time.FixedZone("UTC+7", 7*3600))
	decodedAt, _, err = DecodeEntryToken(EncodeEntryToken(local, entryID))
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt))
}

func TestDecodeEntryTokenError(t *testing.T) {
	_, _, err := DecodeEntryToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	missingID := base64.RawURLEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z"))
	_, _, err = DecodeEntryToken(missingID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.RawURLEncoding.EncodeToString([]byte("notadate|abc"))
	_, _, err = DecodeEntryToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	parts, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, parts)
}
