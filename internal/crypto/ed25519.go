package crypto

import (
	"crypto/ed25519"

	"nkeyid/internal/domain"
	"nkeyid/internal/util/memzero"
)

// DeriveEd25519 expands seed into its Ed25519 key pair, writing straight
// into priv and pub. Any 32-byte value is a valid seed.
func DeriveEd25519(seed *domain.Seed, priv *domain.Ed25519Private, pub *domain.Ed25519Public) {
	sk := ed25519.NewKeyFromSeed(seed[:])
	copy(priv[:], sk)
	copy(pub[:], sk[ed25519.SeedSize:])
	memzero.Zero(sk)
}

// SignEd25519 signs msg with priv and returns the signature.
func SignEd25519(priv *domain.Ed25519Private, msg []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(priv[:]), msg)
}

// VerifyEd25519 verifies sig over msg with pub.
func VerifyEd25519(pub domain.Ed25519Public, msg, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}
