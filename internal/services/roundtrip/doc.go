// Package roundtrip checks a key pair end to end: it signs a message,
// rebuilds a verify-only pair from the encoded public key and verifies
// the signature with it.
package roundtrip
