package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nkeyid/internal/domain"
)

const (
	userSeed = "SUAJ2YNRTXX72WTAXKCEV5ES5QWMIRCJYVUXWMTJDFYDXLADDSXH6YALCA"
	userPub  = "UDLVVGABQKYQVN6VJP7NHSLEA45A5YLS6PNKMIZFV4BBU2HXA5IRUVAL"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), err
}

// field returns the value of a "Name: value" line.
func field(t *testing.T, out, name string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(line, name+": "); ok {
			return v
		}
	}
	t.Fatalf("no %q line in output:\n%s", name, out)
	return ""
}

func TestGen(t *testing.T) {
	out, err := run(t, "", "gen", "account", "--private", "--mnemonic")
	require.NoError(t, err)

	require.Equal(t, "account", field(t, out, "Kind"))
	require.True(t, strings.HasPrefix(field(t, out, "Seed"), "SA"))
	require.True(t, strings.HasPrefix(field(t, out, "Public Key"), "A"))
	require.True(t, strings.HasPrefix(field(t, out, "Private Key"), "P"))
	require.Len(t, strings.Fields(field(t, out, "Mnemonic")), 24)
}

func TestGen_DefaultKindFromConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("kind: operator\n"), 0o600))

	out, err := run(t, "", "--config", cfg, "gen")
	require.NoError(t, err)
	require.Equal(t, "operator", field(t, out, "Kind"))
	require.True(t, strings.HasPrefix(field(t, out, "Seed"), "SO"))
}

func TestGen_BadKind(t *testing.T) {
	_, err := run(t, "", "gen", "wizard")
	require.ErrorIs(t, err, domain.ErrInvalidKind)
}

func TestPubAndInspect(t *testing.T) {
	out, err := run(t, "", "pub", "--seed", userSeed)
	require.NoError(t, err)
	require.Equal(t, userPub+"\n", out)

	out, err = run(t, "", "inspect", userSeed)
	require.NoError(t, err)
	require.Equal(t, "seed", field(t, out, "Material"))
	require.Equal(t, "user", field(t, out, "Kind"))
}

func TestSeedSources(t *testing.T) {
	t.Setenv(EnvSeed, "")
	_, err := run(t, "", "pub")
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "seed.txt")
	require.NoError(t, os.WriteFile(path, []byte(userSeed+"\n"), 0o600))

	out, err := run(t, "", "pub", "--seed-file", path)
	require.NoError(t, err)
	require.Equal(t, userPub+"\n", out)

	t.Setenv(EnvSeed, userSeed)
	out, err = run(t, "", "pub")
	require.NoError(t, err)
	require.Equal(t, userPub+"\n", out)
}

func TestSignVerify(t *testing.T) {
	sig, err := run(t, "", "sign", "--seed", userSeed, "hello")
	require.NoError(t, err)
	sig = strings.TrimSpace(sig)

	out, err := run(t, "", "verify", "--pub", userPub, "--sig", sig, "hello")
	require.NoError(t, err)
	require.Equal(t, "Signature Verified\n", out)

	_, err = run(t, "", "verify", "--pub", userPub, "--sig", sig, "hellx")
	require.ErrorIs(t, err, domain.ErrInvalidSignature)

	// Data from stdin signs the same bytes.
	stdinSig, err := run(t, "hello", "sign", "--seed", userSeed)
	require.NoError(t, err)
	require.Equal(t, sig, strings.TrimSpace(stdinSig))
}

func TestSign_RejectsPublicKeyAsSeed(t *testing.T) {
	_, err := run(t, "", "sign", "--seed", userPub, "hello")
	require.ErrorIs(t, err, domain.ErrKindMismatch)
}

func TestRoundTrip(t *testing.T) {
	out, err := run(t, "", "roundtrip", "--seed", userSeed, "data to sign")
	require.NoError(t, err)
	require.Contains(t, out, "[OK] Data: data to sign")
	require.Contains(t, out, "[OK] Public Key: "+userPub)
	require.Contains(t, out, "[OK] Signature Verified")
}

func TestMnemonicRecover(t *testing.T) {
	words, err := run(t, "", "mnemonic", "--seed", userSeed)
	require.NoError(t, err)

	args := append([]string{"recover", "user"}, strings.Fields(words)...)
	out, err := run(t, "", args...)
	require.NoError(t, err)
	require.Equal(t, userSeed, field(t, out, "Seed"))
	require.Equal(t, userPub, field(t, out, "Public Key"))
}

func TestSealOpen(t *testing.T) {
	alice, err := run(t, "", "gen", "curve")
	require.NoError(t, err)
	bob, err := run(t, "", "gen", "x")
	require.NoError(t, err)

	sealed, err := run(t, "", "seal", "--seed", field(t, alice, "Seed"), "--to", field(t, bob, "Public Key"), "secret")
	require.NoError(t, err)

	out, err := run(t, "", "open", "--seed", field(t, bob, "Seed"), "--from", field(t, alice, "Public Key"), strings.TrimSpace(sealed))
	require.NoError(t, err)
	require.Equal(t, "secret\n", out)

	_, err = run(t, "", "seal", "--seed", userSeed, "--to", field(t, bob, "Public Key"), "secret")
	require.ErrorIs(t, err, domain.ErrKindMismatch)
}
