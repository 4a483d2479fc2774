package crypto

import (
	"encoding/base32"
	"errors"
	"fmt"
)

var (
	b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

	errNonCanonicalBase32 = errors.New("base32 trailing bits are not zero")
)

// EncodeBase32 encodes b as upper-case base32 without padding.
func EncodeBase32(b []byte) string { return b32.EncodeToString(b) }

// DecodeBase32 decodes unpadded base32 text. Lower-case symbols are
// accepted. Any byte outside the alphabet, a symbol count that cannot end
// on a byte boundary, or a set bit past the last whole byte is an error.
func DecodeBase32(s string) ([]byte, error) {
	src := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if !isBase32Symbol(c) {
			return nil, fmt.Errorf("illegal base32 symbol %q at offset %d", s[i], i)
		}
		src[i] = c
	}

	out := make([]byte, b32.DecodedLen(len(src)))
	n, err := b32.Decode(out, src)
	if err != nil {
		return nil, err
	}
	out = out[:n]

	if b32.EncodeToString(out) != string(src) {
		return nil, errNonCanonicalBase32
	}
	return out, nil
}

func isBase32Symbol(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('2' <= c && c <= '7')
}
