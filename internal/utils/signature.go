package utils

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// SeamlessSignature computes md5(operatorCode + requestTime + operation + secret) as lowercase hex.
func SeamlessSignature(operatorCode, requestTime, operation, secret string) string {
	sum := md5.Sum([]byte(operatorCode + requestTime + operation + secret))
	return hex.EncodeToString(sum[:])
}

// VerifySeamlessSignature checks a provider signature case-insensitively. An empty secret
// never verifies.
func VerifySeamlessSignature(sign, operatorCode, requestTime, operation, secret string) bool {
	if secret == "" || sign == "" {
		return false
	}
	expected := SeamlessSignature(operatorCode, requestTime, operation, secret)
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(sign)), []byte(expected)) == 1
}
