package types

import "crypto/ed25519"

// Seed is the 32-byte generator from which a key pair is derived.
type Seed [ed25519.SeedSize]byte

// Slice returns the seed as a []byte aliasing the array.
func (s *Seed) Slice() []byte { return s[:] }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [ed25519.PublicKeySize]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is an Ed25519 expanded private key (seed followed by public key).
type Ed25519Private [ed25519.PrivateKeySize]byte

// Slice returns the key as a []byte aliasing the array.
func (k *Ed25519Private) Slice() []byte { return k[:] }

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private key.
type X25519Private [32]byte

// Slice returns the key as a []byte aliasing the array.
func (k *X25519Private) Slice() []byte { return k[:] }
