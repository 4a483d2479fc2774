package types

import (
	"fmt"
	"strings"
)

// Kind is the role an identity plays.
type Kind uint8

const (
	// KindUnknown is reported for material that does not name a role,
	// such as an encoded private key.
	KindUnknown Kind = iota
	KindOperator
	KindAccount
	KindUser
	KindServer
	KindCluster
	// KindCurve identifies X25519 encryption keys. Curve pairs seal and
	// open messages instead of signing them.
	KindCurve
)

var kindNames = map[Kind]string{
	KindUnknown:  "unknown",
	KindOperator: "operator",
	KindAccount:  "account",
	KindUser:     "user",
	KindServer:   "server",
	KindCluster:  "cluster",
	KindCurve:    "curve",
}

// Kinds lists every named kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindOperator, KindAccount, KindUser, KindServer, KindCluster, KindCurve}
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k names a role.
func (k Kind) Valid() bool { return k > KindUnknown && k <= KindCurve }

// CanSign reports whether pairs of this kind hold Ed25519 signing keys.
func (k Kind) CanSign() bool { return k.Valid() && k != KindCurve }

// ParseKind accepts a kind name ("user") or its leading letter ("U"),
// case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		name := k.String()
		if s == name {
			return k, nil
		}
		if len(s) == 1 && s[0] == kindLetter(k) {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// kindLetter is the lower-case letter a public key of kind k starts with.
func kindLetter(k Kind) byte {
	switch k {
	case KindServer:
		return 'n'
	case KindCurve:
		return 'x'
	default:
		return k.String()[0]
	}
}

// Material is the kind of key bytes an encoded identity carries.
type Material uint8

const (
	MaterialSeed Material = iota + 1
	MaterialPublic
	MaterialPrivate
)

// String returns the lower-case name of the material.
func (m Material) String() string {
	switch m {
	case MaterialSeed:
		return "seed"
	case MaterialPublic:
		return "public"
	case MaterialPrivate:
		return "private"
	default:
		return fmt.Sprintf("material(%d)", uint8(m))
	}
}

// PayloadLen is the raw byte length the material requires.
func (m Material) PayloadLen() int {
	switch m {
	case MaterialSeed:
		return len(Seed{})
	case MaterialPublic:
		return len(Ed25519Public{})
	case MaterialPrivate:
		return len(Ed25519Private{})
	default:
		return 0
	}
}
