package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashing signals an infrastructure-level failure inside the credential
// hasher: hashing itself failed, or a stored hash is malformed.
var ErrHashing = errors.New("credential hashing failed")

// HashPassword produces a salted bcrypt hash. The salt is embedded in the
// output, so the same plaintext hashes to a different value on every call.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrHashing, err.Error())
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext against a stored bcrypt hash. A
// mismatch returns (false, nil); a hash bcrypt cannot parse returns ErrHashing.
func VerifyPassword(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %s", ErrHashing, err.Error())
}
