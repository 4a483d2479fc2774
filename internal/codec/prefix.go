package codec

import (
	"fmt"

	"nkeyid/internal/domain"
)

// Prefix is a leading byte of a decoded identity. Values are the base32
// symbol index shifted into the top five bits.
type Prefix byte

const (
	PrefixSeed     Prefix = 18 << 3 // 'S'
	PrefixPrivate  Prefix = 15 << 3 // 'P'
	PrefixAccount  Prefix = 0       // 'A'
	PrefixCluster  Prefix = 2 << 3  // 'C'
	PrefixServer   Prefix = 13 << 3 // 'N'
	PrefixOperator Prefix = 14 << 3 // 'O'
	PrefixUser     Prefix = 20 << 3 // 'U'
	PrefixCurve    Prefix = 23 << 3 // 'X'
)

// seedMask selects the bits of the first seed byte that carry PrefixSeed.
const seedMask = 0xF8

var publicPrefixes = map[domain.Kind]Prefix{
	domain.KindAccount:  PrefixAccount,
	domain.KindCluster:  PrefixCluster,
	domain.KindServer:   PrefixServer,
	domain.KindOperator: PrefixOperator,
	domain.KindUser:     PrefixUser,
	domain.KindCurve:    PrefixCurve,
}

var prefixKinds = func() map[Prefix]domain.Kind {
	m := make(map[Prefix]domain.Kind, len(publicPrefixes))
	for k, p := range publicPrefixes {
		m[p] = k
	}
	return m
}()

// Letter is the base32 symbol a prefix renders as.
func (p Prefix) Letter() byte { return "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"[p>>3] }

// PublicPrefix returns the public-key prefix for kind.
func PublicPrefix(kind domain.Kind) (Prefix, error) {
	p, ok := publicPrefixes[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidKind, kind)
	}
	return p, nil
}

// KindOf maps a public-key prefix back to its kind.
func KindOf(p Prefix) (domain.Kind, error) {
	k, ok := prefixKinds[p]
	if !ok {
		return domain.KindUnknown, fmt.Errorf("%w: 0x%02x", domain.ErrUnknownPrefix, byte(p))
	}
	return k, nil
}

// PrefixFor returns the leading bytes for material of the given kind.
// Public keys use the kind's prefix alone. Seeds pack PrefixSeed and the
// kind's prefix into two bytes so both letters survive base32. Private
// keys use PrefixPrivate regardless of kind.
func PrefixFor(kind domain.Kind, material domain.Material) ([]byte, error) {
	switch material {
	case domain.MaterialPrivate:
		return []byte{byte(PrefixPrivate)}, nil
	case domain.MaterialPublic:
		p, err := PublicPrefix(kind)
		if err != nil {
			return nil, err
		}
		return []byte{byte(p)}, nil
	case domain.MaterialSeed:
		p, err := PublicPrefix(kind)
		if err != nil {
			return nil, err
		}
		b1 := byte(PrefixSeed) | byte(p)>>5
		b2 := (byte(p) & 0x1F) << 3
		return []byte{b1, b2}, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrKindMismatch, material)
	}
}

// Resolve reads the prefix at the start of body and reports the material,
// the kind and how many bytes the prefix occupies.
func Resolve(body []byte) (domain.Material, domain.Kind, int, error) {
	if len(body) == 0 {
		return 0, domain.KindUnknown, 0, domain.ErrMalformedText
	}
	first := body[0]
	switch {
	case Prefix(first) == PrefixPrivate:
		return domain.MaterialPrivate, domain.KindUnknown, 1, nil

	case Prefix(first&seedMask) == PrefixSeed:
		if len(body) < 2 {
			return 0, domain.KindUnknown, 0, domain.ErrMalformedText
		}
		if body[1]&0x07 != 0 {
			return 0, domain.KindUnknown, 0, fmt.Errorf("%w: seed tail 0x%02x", domain.ErrUnknownPrefix, body[1])
		}
		inner := Prefix((first&0x07)<<5 | body[1]>>3)
		kind, err := KindOf(inner)
		if err != nil {
			return 0, domain.KindUnknown, 0, err
		}
		return domain.MaterialSeed, kind, 2, nil

	default:
		kind, err := KindOf(Prefix(first))
		if err != nil {
			return 0, domain.KindUnknown, 0, err
		}
		return domain.MaterialPublic, kind, 1, nil
	}
}
