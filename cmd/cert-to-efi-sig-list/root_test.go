package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/multiformats/go-multibase"
	"github.com/stretchr/testify/require"

	"github.com/nicholasbishop/efitools/guid"
	"github.com/nicholasbishop/efitools/signature"
	"github.com/nicholasbishop/efitools/testing/fixtures"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New(Config{Encoding: EncodingRaw, LogLevel: "debug"})
	var stderr bytes.Buffer
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stderr.String(), err
}

func writeCert(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "PK.crt")
	require.NoError(t, os.WriteFile(path, fixtures.PKCert, 0o600))
	return path
}

func TestConvert(t *testing.T) {
	cert := writeCert(t)
	out := filepath.Join(t.TempDir(), "PK.esl")

	logs, err := execute(t, "--owner", fixtures.Owner.String(), cert, out)
	require.NoError(t, err)
	require.Contains(t, logs, "wrote signature list")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, fixtures.PKSignatureList, data)
}

func TestConvertDefaultOwner(t *testing.T) {
	cert := writeCert(t)
	out := filepath.Join(t.TempDir(), "PK.esl")

	_, err := execute(t, cert, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	owner := data[signature.HeaderSize : signature.HeaderSize+guid.Size]
	require.Equal(t, guid.Nil.Bytes(), owner)
	require.Equal(t, fixtures.PKSignatureList[signature.HeaderSize+guid.Size:], data[signature.HeaderSize+guid.Size:])
}

func TestConvertRandomOwner(t *testing.T) {
	cert := writeCert(t)
	out := filepath.Join(t.TempDir(), "PK.esl")

	_, err := execute(t, "--owner", "random", cert, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	owner, err := guid.Decode(data[signature.HeaderSize : signature.HeaderSize+guid.Size])
	require.NoError(t, err)
	require.False(t, owner.IsNil())
}

func TestConvertMultibase(t *testing.T) {
	cert := writeCert(t)
	out := filepath.Join(t.TempDir(), "PK.esl.b64")

	_, err := execute(t, "--owner", fixtures.Owner.String(), "--encoding", "base64", cert, out)
	require.NoError(t, err)

	text, err := os.ReadFile(out)
	require.NoError(t, err)
	enc, data, err := multibase.Decode(string(text))
	require.NoError(t, err)
	require.Equal(t, multibase.Encoding(multibase.Base64), enc)
	require.Equal(t, fixtures.PKSignatureList, data)
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()
	cert := writeCert(t)
	garbage := filepath.Join(dir, "garbage.crt")
	require.NoError(t, os.WriteFile(garbage, []byte("not a certificate"), 0o600))

	testCases := []struct {
		name string
		args []string
	}{
		{"missing args", []string{cert}},
		{"missing cert", []string{filepath.Join(dir, "nope.crt"), filepath.Join(dir, "out.esl")}},
		{"invalid cert", []string{garbage, filepath.Join(dir, "out.esl")}},
		{"invalid owner", []string{"--owner", "0011223344556677889900aabbccddeeff", cert, filepath.Join(dir, "out.esl")}},
		{"invalid encoding", []string{"--encoding", "rot13", cert, filepath.Join(dir, "out.esl")}},
		{"invalid log level", []string{"--log-level", "loud", cert, filepath.Join(dir, "out.esl")}},
		{"unwritable output", []string{cert, filepath.Join(dir, "missing", "out.esl")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
		})
	}

	_, err := os.Stat(filepath.Join(dir, "out.esl"))
	require.True(t, os.IsNotExist(err))
}

func TestConvertInvalidOwnerReason(t *testing.T) {
	_, err := execute(t, "--owner", "0011223344556677889900aabbccddeeff", writeCert(t), filepath.Join(t.TempDir(), "out.esl"))
	require.ErrorIs(t, err, guid.ErrMissingDash)
}

func TestNewConfig(t *testing.T) {
	t.Setenv("EFI_SIGLIST_OWNER", fixtures.Owner.String())
	t.Setenv("EFI_SIGLIST_LOG_LEVEL", "warn")

	cfg, err := NewConfig(envPrefix)
	require.NoError(t, err)
	require.Equal(t, fixtures.Owner.String(), cfg.Owner)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, EncodingRaw, cfg.Encoding)

	cmd := New(cfg)
	owner, err := cmd.Flags().GetString(FlagOwner)
	require.NoError(t, err)
	require.Equal(t, fixtures.Owner.String(), owner)
}
