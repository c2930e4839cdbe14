package service

import "strings"

// CanonicalizeEmail normalizes an email address for uniqueness checks and
// lookups: trimmed and lowercased. The address is stored as entered; only the
// canonical form carries the unique constraint.
func CanonicalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
