package codec

import (
	"encoding/binary"
	"fmt"

	"nkeyid/internal/crypto"
	"nkeyid/internal/domain"
	"nkeyid/internal/util/memzero"
)

const checksumLen = 2

// minDecodedLen is the shortest buffer holding a prefix, one payload byte
// and a checksum.
const minDecodedLen = 4

// Encode renders payload as text for the given kind and material.
func Encode(kind domain.Kind, material domain.Material, payload []byte) (string, error) {
	if want := material.PayloadLen(); len(payload) != want {
		lenErr := domain.ErrInvalidKeyLength
		if material == domain.MaterialSeed {
			lenErr = domain.ErrInvalidSeedLength
		}
		return "", fmt.Errorf("%w: %s wants %d bytes, got %d", lenErr, material, want, len(payload))
	}
	prefix, err := PrefixFor(kind, material)
	if err != nil {
		return "", err
	}

	buf := make([]byte, 0, len(prefix)+len(payload)+checksumLen)
	buf = append(buf, prefix...)
	buf = append(buf, payload...)
	buf = binary.LittleEndian.AppendUint16(buf, crypto.CRC16(buf))
	text := crypto.EncodeBase32(buf)
	memzero.Zero(buf)
	return text, nil
}

// Decode validates text as the expected material and returns its kind
// and payload. Seed and private payloads are secret; callers wipe them.
func Decode(text string, expected domain.Material) (domain.Kind, []byte, error) {
	material, kind, payload, err := DecodeAny(text)
	if err != nil {
		return domain.KindUnknown, nil, err
	}
	if material != expected {
		memzero.Zero(payload)
		return domain.KindUnknown, nil, fmt.Errorf("%w: want %s, got %s", domain.ErrKindMismatch, expected, material)
	}
	return kind, payload, nil
}

// DecodeAny validates text of any material.
func DecodeAny(text string) (domain.Material, domain.Kind, []byte, error) {
	raw, err := crypto.DecodeBase32(text)
	if err != nil {
		return 0, domain.KindUnknown, nil, fmt.Errorf("%w: %v", domain.ErrMalformedText, err)
	}
	if len(raw) < minDecodedLen {
		memzero.Zero(raw)
		return 0, domain.KindUnknown, nil, fmt.Errorf("%w: %d decoded bytes", domain.ErrMalformedText, len(raw))
	}

	n := len(raw) - checksumLen
	body := raw[:n]
	if crypto.CRC16(body) != binary.LittleEndian.Uint16(raw[n:]) {
		memzero.Zero(raw)
		return 0, domain.KindUnknown, nil, domain.ErrChecksumMismatch
	}

	material, kind, prefixLen, err := Resolve(body)
	if err != nil {
		memzero.Zero(raw)
		return 0, domain.KindUnknown, nil, err
	}
	payload := body[prefixLen:]
	if len(payload) != material.PayloadLen() {
		memzero.Zero(raw)
		return 0, domain.KindUnknown, nil, fmt.Errorf("%w: %s payload of %d bytes", domain.ErrKindMismatch, material, len(payload))
	}
	return material, kind, payload, nil
}

// IsValidPublicKey reports whether text is a well-formed public key of any kind.
func IsValidPublicKey(text string) bool {
	_, _, err := Decode(text, domain.MaterialPublic)
	return err == nil
}

// IsValidPublicKindKey reports whether text is a well-formed public key of kind.
func IsValidPublicKindKey(kind domain.Kind, text string) bool {
	k, _, err := Decode(text, domain.MaterialPublic)
	return err == nil && k == kind
}
