// Package hash provides fingerprinting utilities for secrets.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// FingerprintLength is the number of hex characters in a fingerprint.
const FingerprintLength = 8

// Fingerprint returns the first FingerprintLength hex characters of SHA-256(secret).
// It returns "" for an empty secret.
func Fingerprint(secret string) string {
	if secret == "" {
		return ""
	}
	return SHA256Sum(secret)[:FingerprintLength]
}

// SHA256Sum returns the full hex SHA-256 of a string.
func SHA256Sum(s string) string {
	hasher := sha256.New()
	_, _ = io.WriteString(hasher, s)
	return hex.EncodeToString(hasher.Sum(nil))
}
