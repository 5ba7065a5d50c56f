package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateToken returns a cryptographically unguessable token of 2*n hex
// characters.
func GenerateToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("failed to read from entropy source: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// NewRequestId tags proxied requests for log correlation.
func NewRequestId() string {
	return uuid.New().String()
}
