// Package auth provides the password digest used by the credential
// store. Passwords are stored as unsalted hex SHA-256 digests for
// compatibility with rows written by earlier versions of the tool.
// Known gaps: no salt, no work factor, no timing-attack mitigation.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of password.
// The digest is deterministic: the same password always produces the
// same hash, which is what the username+hash login lookup relies on.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
