// Package crypto exposes the primitives identities are built from.
//
// Contents
//
//   - CRC-16/XMODEM checksum guarding encoded identities (CRC16)
//   - Unpadded, case-insensitive RFC 4648 base32 (EncodeBase32, DecodeBase32)
//   - Ed25519 derivation from a seed, signing and verification
//     (DeriveEd25519, SignEd25519, VerifyEd25519)
//   - X25519 derivation and nacl/box sealing for curve keys
//     (DeriveX25519, SealBox, OpenBox)
//   - Standard base64 for displaying signatures (B64, DecodeB64)
//
// # Notes
//
// Key material moves through fixed-size array types defined in
// internal/domain/types. Temporary slices holding secrets are wiped with
// internal/util/memzero before they are released.
package crypto
