package interfaces

import domaintypes "nkeyid/internal/domain/types"

// KeyPair is one identity's key material together with the operations it
// supports. A pair is owned by whoever created it and is not safe for
// concurrent Dispose with any other call.
type KeyPair interface {
	Kind() domaintypes.Kind

	// Seed, PublicKey and PrivateKey return the encoded text form.
	Seed() (string, error)
	PublicKey() (string, error)
	PrivateKey() (string, error)

	Sign(message []byte) ([]byte, error)
	// Verify returns domaintypes.ErrInvalidSignature when sig does not match.
	Verify(message, sig []byte) error

	// Dispose zeroes secret material in place. It is idempotent.
	Dispose()
}

// CurveKeyPair is a KeyPair for X25519 keys, which encrypt rather than sign.
type CurveKeyPair interface {
	KeyPair

	// Seal encrypts plaintext for the curve public key named by recipient.
	Seal(plaintext []byte, recipient string) ([]byte, error)
	// Open decrypts a sealed message from the curve public key named by sender.
	Open(sealed []byte, sender string) ([]byte, error)
}
