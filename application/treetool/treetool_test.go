package treetool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abadhikari/merkle-prefix-tree/application"
	"github.com/abadhikari/merkle-prefix-tree/crypto/sign"
	"github.com/abadhikari/merkle-prefix-tree/merkletree"
)

func testLoggerConfig() *application.LoggerConfig {
	return &application.LoggerConfig{Environment: "development"}
}

func writeEntries(t *testing.T, dir, blob string) string {
	t.Helper()
	path := filepath.Join(dir, "entries.json")
	require.NoError(t, os.WriteFile(path, []byte(blob), 0644))
	return path
}

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	conf := NewConfig(file, "toml", 8, true, "", "entries.json", "", testLoggerConfig())
	require.NoError(t, conf.Save())

	loaded := &Config{}
	require.NoError(t, loaded.Load(file, "toml"))
	require.Equal(t, uint32(8), loaded.Height)
	require.True(t, loaded.AppendOnly)
	require.Equal(t, "SHAKE128", loaded.Hasher)
	// Relative paths resolve next to the config file.
	require.Equal(t, filepath.Join(dir, "entries.json"), loaded.EntriesPath)
}

func TestLoadEntries(t *testing.T) {
	dir := t.TempDir()
	entries := writeEntries(t, dir, `[
		{"prefix": "0001", "value": "3"},
		{"key": "alice", "value": "alice's key"}
	]`)
	conf := NewConfig(filepath.Join(dir, "config.toml"), "toml", 4, false,
		"", entries, "", testLoggerConfig())

	tt, err := New(conf)
	require.NoError(t, err)
	emptyRoot := tt.Tree().GetRootHash()

	n, err := tt.LoadEntries()
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.NotEqual(t, emptyRoot, tt.Tree().GetRootHash())

	leaf, err := tt.Tree().Get("0001")
	require.NoError(t, err)
	require.NotNil(t, leaf)
	require.Equal(t, "3", leaf.Value())

	// The keyed entry landed at the derived prefix.
	leaf, err = tt.Tree().Get(tt.KeyPrefix("alice"))
	require.NoError(t, err)
	require.NotNil(t, leaf)
	require.Equal(t, "alice's key", leaf.Value())
}

func TestProve(t *testing.T) {
	dir := t.TempDir()
	entries := writeEntries(t, dir, `[{"prefix": "0110", "value": "v"}]`)
	conf := NewConfig(filepath.Join(dir, "config.toml"), "toml", 4, false,
		"", entries, "", testLoggerConfig())

	tt, err := New(conf)
	require.NoError(t, err)
	_, err = tt.LoadEntries()
	require.NoError(t, err)

	proof, included, err := tt.Prove("0110")
	require.NoError(t, err)
	require.True(t, included)
	require.Len(t, proof, 4)

	proof, included, err = tt.Prove("1001")
	require.NoError(t, err)
	require.False(t, included)
	require.Empty(t, proof)

	_, _, err = tt.Prove("21")
	require.ErrorIs(t, err, merkletree.ErrInvalidPrefix)
}

func TestSignedRoot(t *testing.T) {
	dir := t.TempDir()
	sk, err := sign.GenerateKey(nil)
	require.NoError(t, err)
	keyPath := filepath.Join(dir, "sign.priv")
	require.NoError(t, os.WriteFile(keyPath, sk, 0600))

	conf := NewConfig(filepath.Join(dir, "config.toml"), "toml", 4, false,
		"", "", keyPath, testLoggerConfig())
	tt, err := New(conf)
	require.NoError(t, err)

	str, err := tt.SignedRoot(0, []byte{})
	require.NoError(t, err)
	pk, ok := sk.Public()
	require.True(t, ok)
	require.True(t, str.Verify(pk))
	require.Equal(t, tt.Tree().GetRootHash(), str.TreeHash)
}

func TestSignedRootWithoutKey(t *testing.T) {
	conf := NewConfig("config.toml", "toml", 4, false, "", "", "", testLoggerConfig())
	tt, err := New(conf)
	require.NoError(t, err)
	_, err = tt.SignedRoot(0, nil)
	require.Error(t, err)
}

func TestNewRejectsUnknownHasher(t *testing.T) {
	conf := NewConfig("config.toml", "toml", 4, false, "NO-SUCH-HASH", "", "", testLoggerConfig())
	_, err := New(conf)
	require.Error(t, err)
}

func TestNewRejectsInvalidHeight(t *testing.T) {
	conf := NewConfig("config.toml", "toml", 0, false, "", "", "", testLoggerConfig())
	_, err := New(conf)
	require.ErrorIs(t, err, merkletree.ErrInvalidHeight)
}
