package id

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID creates a unique 32-character hex ID from 16 random bytes.
func GenerateID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return hex.EncodeToString(b)
}
