package models

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// NormalizeEmail lowercases the domain part of an address. The local part is
// left untouched since it is case-sensitive per RFC 5321.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// GenerateOneTimeCode returns a random 6-digit verification code. Every account
// gets its own code at creation time; there is no shared default.
func GenerateOneTimeCode() string {
	const digits = "0123456789"
	code := make([]byte, 6)
	for i := range code {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		code[i] = digits[num.Int64()]
	}
	return string(code)
}
