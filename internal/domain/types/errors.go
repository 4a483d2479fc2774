package types

import "errors"

var (
	// ErrMalformedText is returned for text that is not canonical base32
	// or is too short to hold a prefix and checksum.
	ErrMalformedText = errors.New("malformed identity text")
	// ErrChecksumMismatch is returned when the trailing CRC does not match.
	ErrChecksumMismatch = errors.New("identity checksum mismatch")
	// ErrKindMismatch is returned when text decodes cleanly but carries
	// different material, a different kind, or the wrong payload length.
	ErrKindMismatch = errors.New("identity kind mismatch")
	// ErrUnknownPrefix is returned when the prefix byte is not registered.
	ErrUnknownPrefix = errors.New("unknown identity prefix")

	ErrNoPrivateKey      = errors.New("no private key available")
	ErrNoPrivateMaterial = errors.New("no private material available")
	ErrDisposed          = errors.New("key pair has been disposed")

	// ErrInvalidSignature is the routine outcome of a failed verification.
	ErrInvalidSignature = errors.New("signature does not match")

	ErrInvalidKind       = errors.New("invalid identity kind")
	ErrInvalidSeedLength = errors.New("invalid seed length")
	ErrInvalidKeyLength  = errors.New("invalid key length")
	ErrInvalidMnemonic   = errors.New("invalid mnemonic")

	ErrCurveKeyOperation     = errors.New("operation not supported by curve keys")
	ErrInvalidEncryptVersion = errors.New("unsupported sealed message version")
	ErrInvalidEncrypted      = errors.New("sealed message cannot be opened")
)
