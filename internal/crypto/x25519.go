package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"

	"nkeyid/internal/domain"
)

const (
	// SealVersion is the header every sealed message starts with.
	SealVersion = "xkv1"
	// SealNonceSize is the nacl/box nonce length.
	SealNonceSize = 24
	// SealOverhead is the fixed size added to a plaintext by SealBox.
	SealOverhead = len(SealVersion) + SealNonceSize + box.Overhead
)

// DeriveX25519 returns the Curve25519 public key for priv. The scalar is
// clamped by the curve operation itself.
func DeriveX25519(priv *domain.X25519Private) (pub domain.X25519Public, err error) {
	pb, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pb)
	return pub, nil
}

// SealBox encrypts plaintext from sender to recipient. The output is
// SealVersion, a random nonce read from rand, then the box ciphertext.
func SealBox(rand io.Reader, plaintext []byte, recipient *domain.X25519Public, sender *domain.X25519Private) ([]byte, error) {
	var nonce [SealNonceSize]byte
	if _, err := io.ReadFull(rand, nonce[:]); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}
	out := make([]byte, 0, len(plaintext)+SealOverhead)
	out = append(out, SealVersion...)
	out = append(out, nonce[:]...)
	return box.Seal(out, plaintext, &nonce, (*[32]byte)(recipient), (*[32]byte)(sender)), nil
}

// OpenBox reverses SealBox for a message sent by sender to recipient.
func OpenBox(sealed []byte, sender *domain.X25519Public, recipient *domain.X25519Private) ([]byte, error) {
	if len(sealed) < len(SealVersion) || string(sealed[:len(SealVersion)]) != SealVersion {
		return nil, domain.ErrInvalidEncryptVersion
	}
	if len(sealed) < SealOverhead {
		return nil, domain.ErrInvalidEncrypted
	}
	var nonce [SealNonceSize]byte
	copy(nonce[:], sealed[len(SealVersion):])
	body := sealed[len(SealVersion)+SealNonceSize:]

	plain, ok := box.Open(nil, body, &nonce, (*[32]byte)(sender), (*[32]byte)(recipient))
	if !ok {
		return nil, domain.ErrInvalidEncrypted
	}
	return plain, nil
}
