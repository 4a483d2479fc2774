package crypto_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"nkeyid/internal/crypto"
	"nkeyid/internal/domain"
)

func TestDeriveX25519_RFC7748(t *testing.T) {
	var priv domain.X25519Private
	copy(priv[:], mustHex(t, "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a"))

	pub, err := crypto.DeriveX25519(&priv)
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a"), pub[:])
}

func newCurve(t *testing.T) (domain.X25519Private, domain.X25519Public) {
	t.Helper()
	var priv domain.X25519Private
	_, err := rand.Read(priv[:])
	require.NoError(t, err)
	pub, err := crypto.DeriveX25519(&priv)
	require.NoError(t, err)
	return priv, pub
}

func TestSealOpenBox(t *testing.T) {
	alicePriv, alicePub := newCurve(t)
	bobPriv, bobPub := newCurve(t)
	msg := []byte("meet at the usual place")

	sealed, err := crypto.SealBox(rand.Reader, msg, &bobPub, &alicePriv)
	require.NoError(t, err)
	require.Len(t, sealed, len(msg)+crypto.SealOverhead)
	require.Equal(t, crypto.SealVersion, string(sealed[:4]))

	plain, err := crypto.OpenBox(sealed, &alicePub, &bobPriv)
	require.NoError(t, err)
	require.Equal(t, msg, plain)

	// Wrong sender key.
	_, err = crypto.OpenBox(sealed, &bobPub, &bobPriv)
	require.ErrorIs(t, err, domain.ErrInvalidEncrypted)

	// Header and length checks.
	_, err = crypto.OpenBox(append([]byte("xkv2"), sealed[4:]...), &alicePub, &bobPriv)
	require.ErrorIs(t, err, domain.ErrInvalidEncryptVersion)
	_, err = crypto.OpenBox(sealed[:crypto.SealOverhead-1], &alicePub, &bobPriv)
	require.ErrorIs(t, err, domain.ErrInvalidEncrypted)
}

func TestSealBox_ShortRandom(t *testing.T) {
	alicePriv, _ := newCurve(t)
	_, bobPub := newCurve(t)

	_, err := crypto.SealBox(bytes.NewReader(make([]byte, 10)), []byte("x"), &bobPub, &alicePriv)
	require.Error(t, err)
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}
