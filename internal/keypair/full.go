package keypair

import (
	"fmt"

	"nkeyid/internal/codec"
	"nkeyid/internal/crypto"
	"nkeyid/internal/domain"
	"nkeyid/internal/util/memzero"
)

// Full is an Ed25519 identity that can sign.
type Full struct {
	kind     domain.Kind
	seed     domain.Seed
	priv     domain.Ed25519Private
	pub      domain.Ed25519Public
	disposed bool
}

// NewFull derives a signing pair of kind from a 32-byte seed. The seed is
// copied; the caller keeps ownership of (and wipes) its slice.
func NewFull(kind domain.Kind, seed []byte) (*Full, error) {
	if !kind.CanSign() {
		return nil, fmt.Errorf("%w: %s cannot sign", domain.ErrInvalidKind, kind)
	}
	if len(seed) != len(domain.Seed{}) {
		return nil, fmt.Errorf("%w: got %d bytes", domain.ErrInvalidSeedLength, len(seed))
	}
	kp := &Full{kind: kind}
	copy(kp.seed[:], seed)
	crypto.DeriveEd25519(&kp.seed, &kp.priv, &kp.pub)
	return kp, nil
}

// Kind returns the identity kind.
func (kp *Full) Kind() domain.Kind { return kp.kind }

// Seed returns the encoded seed.
func (kp *Full) Seed() (string, error) {
	if kp.disposed {
		return "", domain.ErrDisposed
	}
	return codec.Encode(kp.kind, domain.MaterialSeed, kp.seed[:])
}

// PublicKey returns the encoded public key.
func (kp *Full) PublicKey() (string, error) {
	if kp.disposed {
		return "", domain.ErrDisposed
	}
	return codec.Encode(kp.kind, domain.MaterialPublic, kp.pub[:])
}

// PrivateKey returns the encoded 64-byte private key.
func (kp *Full) PrivateKey() (string, error) {
	if kp.disposed {
		return "", domain.ErrDisposed
	}
	return codec.Encode(kp.kind, domain.MaterialPrivate, kp.priv[:])
}

// Sign returns the deterministic Ed25519 signature of message.
func (kp *Full) Sign(message []byte) ([]byte, error) {
	if kp.disposed {
		return nil, fmt.Errorf("%w: %w", domain.ErrDisposed, domain.ErrNoPrivateKey)
	}
	return crypto.SignEd25519(&kp.priv, message), nil
}

// Verify checks sig over message against the public key.
func (kp *Full) Verify(message, sig []byte) error {
	if kp.disposed {
		return domain.ErrDisposed
	}
	return verify(kp.pub, message, sig)
}

// Dispose zeroes the seed and private key.
func (kp *Full) Dispose() {
	if kp.disposed {
		return
	}
	memzero.Zero(kp.seed[:])
	memzero.Zero(kp.priv[:])
	kp.disposed = true
}

func verify(pub domain.Ed25519Public, message, sig []byte) error {
	if !crypto.VerifyEd25519(pub, message, sig) {
		return domain.ErrInvalidSignature
	}
	return nil
}
