package crypto_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"nkeyid/internal/crypto"
	"nkeyid/internal/domain"
)

// RFC 8032, section 7.1, test 1.
const (
	rfc8032Seed = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	rfc8032Pub  = "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	rfc8032Sig  = "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDeriveEd25519_RFC8032(t *testing.T) {
	var seed domain.Seed
	copy(seed[:], mustHex(t, rfc8032Seed))

	var priv domain.Ed25519Private
	var pub domain.Ed25519Public
	crypto.DeriveEd25519(&seed, &priv, &pub)
	require.Equal(t, mustHex(t, rfc8032Pub), pub[:])
	require.Equal(t, seed[:], priv[:32])
	require.Equal(t, pub[:], priv[32:])

	sig := crypto.SignEd25519(&priv, nil)
	require.Equal(t, mustHex(t, rfc8032Sig), sig)
	require.True(t, crypto.VerifyEd25519(pub, nil, sig))
}

func TestVerifyEd25519_Rejects(t *testing.T) {
	var seed domain.Seed
	copy(seed[:], mustHex(t, rfc8032Seed))
	var priv domain.Ed25519Private
	var pub domain.Ed25519Public
	crypto.DeriveEd25519(&seed, &priv, &pub)
	sig := crypto.SignEd25519(&priv, []byte("hello"))

	require.False(t, crypto.VerifyEd25519(pub, []byte("hellx"), sig))
	require.False(t, crypto.VerifyEd25519(pub, []byte("hello"), sig[:63]))

	sig[0] ^= 0x01
	require.False(t, crypto.VerifyEd25519(pub, []byte("hello"), sig))
}

func TestDeriveEd25519_OverwritesInPlace(t *testing.T) {
	var seed domain.Seed
	copy(seed[:], mustHex(t, rfc8032Seed))

	var priv domain.Ed25519Private
	var pub domain.Ed25519Public
	for i := range priv {
		priv[i] = 0xff
	}
	for i := range pub {
		pub[i] = 0xff
	}
	crypto.DeriveEd25519(&seed, &priv, &pub)

	require.Equal(t, seed[:], priv[:32])
	require.Equal(t, mustHex(t, rfc8032Pub), pub[:])
	require.Equal(t, pub[:], priv[32:])
}
