// Package keypair holds identity key material and the operations on it.
//
// Three concrete pairs exist:
//
//   - Full: an Ed25519 pair derived from a seed; signs and verifies.
//   - Public: a public key only; verifies.
//   - Curve: an X25519 pair; seals and opens messages.
//
// Every pair moves from active to disposed exactly once. Dispose zeroes
// secret arrays in place, after which every call returns
// domain.ErrDisposed. Pairs are not safe for Dispose concurrent with other
// calls; the owner serializes access.
package keypair
