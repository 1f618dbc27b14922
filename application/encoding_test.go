package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadEntriesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json")
	blob := `[
		{"prefix": "0001", "value": "3"},
		{"key": "alice", "value": "alice's key"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0644))

	entries, err := ReadEntriesFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "0001", entries[0].Prefix)
	require.Equal(t, "3", entries[0].Value)
	require.Equal(t, "alice", entries[1].Key)
}

func TestReadEntriesFileRejectsAmbiguousSlots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json")

	for _, blob := range []string{
		`[{"prefix": "0001", "key": "alice", "value": "v"}]`,
		`[{"value": "v"}]`,
	} {
		require.NoError(t, os.WriteFile(path, []byte(blob), 0644))
		_, err := ReadEntriesFile(path)
		require.Error(t, err)
		require.NoError(t, os.Remove(path))
	}
}

func TestReadEntriesFileErrors(t *testing.T) {
	_, err := ReadEntriesFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "entries.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	_, err = ReadEntriesFile(path)
	require.Error(t, err)
}
