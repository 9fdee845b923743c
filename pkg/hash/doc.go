// Package hash provides short, stable fingerprints for secrets.
//
// The setup tool never logs a token. When debug output needs to tell
// two tokens apart it logs Fingerprint(token) instead: the first 8 hex
// characters of SHA-256(token).
//
// Example usage:
//
//	fp := hash.Fingerprint("ghp_ABC123")
//	// Returns an 8-character value like "a1b2c3d4"
//
// Empty input yields an empty fingerprint so "no token" stays visible
// in logs.
package hash
