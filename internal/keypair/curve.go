package keypair

import (
	"fmt"
	"io"

	"nkeyid/internal/codec"
	"nkeyid/internal/crypto"
	"nkeyid/internal/domain"
	"nkeyid/internal/util/memzero"
)

// Curve is an X25519 identity used to seal messages between peers.
type Curve struct {
	seed     domain.X25519Private
	pub      domain.X25519Public
	rand     io.Reader
	disposed bool
}

// NewCurve builds a curve pair whose private scalar is seed. Nonces for
// Seal are read from rand.
func NewCurve(seed []byte, rand io.Reader) (*Curve, error) {
	if len(seed) != len(domain.X25519Private{}) {
		return nil, fmt.Errorf("%w: got %d bytes", domain.ErrInvalidSeedLength, len(seed))
	}
	kp := &Curve{rand: rand}
	copy(kp.seed[:], seed)
	pub, err := crypto.DeriveX25519(&kp.seed)
	if err != nil {
		memzero.Zero(kp.seed[:])
		return nil, err
	}
	kp.pub = pub
	return kp, nil
}

func (kp *Curve) Kind() domain.Kind { return domain.KindCurve }

func (kp *Curve) Seed() (string, error) {
	if kp.disposed {
		return "", domain.ErrDisposed
	}
	return codec.Encode(domain.KindCurve, domain.MaterialSeed, kp.seed[:])
}

func (kp *Curve) PublicKey() (string, error) {
	if kp.disposed {
		return "", domain.ErrDisposed
	}
	return codec.Encode(domain.KindCurve, domain.MaterialPublic, kp.pub[:])
}

// PrivateKey is not defined for curve keys; the seed is the private scalar.
func (kp *Curve) PrivateKey() (string, error) {
	if kp.disposed {
		return "", domain.ErrDisposed
	}
	return "", domain.ErrCurveKeyOperation
}

func (kp *Curve) Sign([]byte) ([]byte, error) {
	if kp.disposed {
		return nil, domain.ErrDisposed
	}
	return nil, domain.ErrCurveKeyOperation
}

func (kp *Curve) Verify([]byte, []byte) error {
	if kp.disposed {
		return domain.ErrDisposed
	}
	return domain.ErrCurveKeyOperation
}

// Seal encrypts plaintext for the curve public key text recipient.
func (kp *Curve) Seal(plaintext []byte, recipient string) ([]byte, error) {
	if kp.disposed {
		return nil, domain.ErrDisposed
	}
	peer, err := curvePublic(recipient)
	if err != nil {
		return nil, err
	}
	return crypto.SealBox(kp.rand, plaintext, &peer, &kp.seed)
}

// Open decrypts sealed, which must come from the curve public key text sender.
func (kp *Curve) Open(sealed []byte, sender string) ([]byte, error) {
	if kp.disposed {
		return nil, domain.ErrDisposed
	}
	peer, err := curvePublic(sender)
	if err != nil {
		return nil, err
	}
	return crypto.OpenBox(sealed, &peer, &kp.seed)
}

// Dispose zeroes the private scalar.
func (kp *Curve) Dispose() {
	if kp.disposed {
		return
	}
	memzero.Zero(kp.seed[:])
	kp.disposed = true
}

func curvePublic(text string) (pub domain.X25519Public, err error) {
	kind, raw, err := codec.Decode(text, domain.MaterialPublic)
	if err != nil {
		return pub, err
	}
	if kind != domain.KindCurve {
		return pub, fmt.Errorf("%w: want curve public key, got %s", domain.ErrKindMismatch, kind)
	}
	copy(pub[:], raw)
	return pub, nil
}
