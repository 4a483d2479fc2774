package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"nkeyid/internal/app"
	"nkeyid/internal/domain"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(app.EnvLogLevel, "")
	t.Setenv(app.EnvKind, "")

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
	kind, err := cfg.DefaultKind()
	require.NoError(t, err)
	require.Equal(t, domain.KindUser, kind)
}

func TestLoadConfig_HomeFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(app.EnvLogLevel, "")
	t.Setenv(app.EnvKind, "")
	writeFile(t, filepath.Join(home, ".nkeyid", "config.yaml"), "logLevel: debug\nkind: account\n")

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "account", cfg.Kind)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	writeFile(t, path, "kind: account\n")
	t.Setenv(app.EnvKind, "O")
	t.Setenv(app.EnvLogLevel, "info")

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	kind, err := cfg.DefaultKind()
	require.NoError(t, err)
	require.Equal(t, domain.KindOperator, kind)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv(app.EnvLogLevel, "")
	t.Setenv(app.EnvKind, "")
	dir := t.TempDir()

	_, err := app.LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "kind: [unterminated\n")
	_, err = app.LoadConfig(bad)
	require.Error(t, err)

	unknownKind := filepath.Join(dir, "kind.yaml")
	writeFile(t, unknownKind, "kind: wizard\n")
	_, err = app.LoadConfig(unknownKind)
	require.ErrorIs(t, err, domain.ErrInvalidKind)

	badLevel := filepath.Join(dir, "level.yaml")
	writeFile(t, badLevel, "logLevel: loud\n")
	_, err = app.LoadConfig(badLevel)
	require.Error(t, err)
}

func TestNew_WiresServices(t *testing.T) {
	var logs bytes.Buffer
	cfg := app.DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.LogOut = &logs

	a, err := app.New(cfg)
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, a.Log.GetLevel())

	kp, err := a.IDs.Generate(domain.KindUser)
	require.NoError(t, err)
	defer kp.Dispose()

	_, err = a.RoundTrip.Run(kp, []byte("wired"))
	require.NoError(t, err)
	require.Contains(t, logs.String(), "generated key pair")
	require.Contains(t, logs.String(), "round trip verified")
}
