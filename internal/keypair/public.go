package keypair

import (
	"fmt"

	"nkeyid/internal/codec"
	"nkeyid/internal/domain"
)

// Public is a verify-only identity.
type Public struct {
	kind     domain.Kind
	pub      domain.Ed25519Public
	disposed bool
}

// NewPublic wraps a raw 32-byte public key of kind.
func NewPublic(kind domain.Kind, pub []byte) (*Public, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidKind, kind)
	}
	if len(pub) != len(domain.Ed25519Public{}) {
		return nil, fmt.Errorf("%w: public key of %d bytes", domain.ErrInvalidKeyLength, len(pub))
	}
	kp := &Public{kind: kind}
	copy(kp.pub[:], pub)
	return kp, nil
}

func (kp *Public) Kind() domain.Kind { return kp.kind }

func (kp *Public) Seed() (string, error) {
	if kp.disposed {
		return "", domain.ErrDisposed
	}
	return "", domain.ErrNoPrivateMaterial
}

func (kp *Public) PublicKey() (string, error) {
	if kp.disposed {
		return "", domain.ErrDisposed
	}
	return codec.Encode(kp.kind, domain.MaterialPublic, kp.pub[:])
}

func (kp *Public) PrivateKey() (string, error) {
	if kp.disposed {
		return "", domain.ErrDisposed
	}
	return "", domain.ErrNoPrivateMaterial
}

func (kp *Public) Sign([]byte) ([]byte, error) {
	if kp.disposed {
		return nil, fmt.Errorf("%w: %w", domain.ErrDisposed, domain.ErrNoPrivateKey)
	}
	return nil, domain.ErrNoPrivateKey
}

// Verify checks sig over message. Curve public keys cannot verify.
func (kp *Public) Verify(message, sig []byte) error {
	if kp.disposed {
		return domain.ErrDisposed
	}
	if kp.kind == domain.KindCurve {
		return domain.ErrCurveKeyOperation
	}
	return verify(kp.pub, message, sig)
}

// Dispose marks the pair unusable. A public key holds no secret.
func (kp *Public) Dispose() { kp.disposed = true }
