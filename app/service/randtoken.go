package service

import (
	"crypto/rand"
	"encoding/hex"
)

// generateOpaqueToken returns a hex-encoded random token carrying length
// bytes of entropy. Used for account verification and password reset tokens.
func generateOpaqueToken(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
