package history

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "history.json"), testLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Contains("1"))
}

func TestLoad_EmptyFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	l, err := Load(path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
}

func TestLoad_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path, testLogger())
	assert.Error(t, err)
}

func TestLoad_UnreadablePathFails(t *testing.T) {
	// A directory cannot be read as a file.
	_, err := Load(t.TempDir(), testLogger())
	assert.Error(t, err)
}

func TestPersistRoundTrip(t *testing.T) {
	for _, name := range []string{"history.json", "history.yaml", "history.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			l, err := Load(path, testLogger())
			require.NoError(t, err)

			l.Mark("1", "Fix bug")
			l.Mark("2", "Add feature")
			require.NoError(t, l.Persist())

			reloaded, err := Load(path, testLogger())
			require.NoError(t, err)
			assert.Equal(t, map[string]string{"1": "Fix bug", "2": "Add feature"}, reloaded.Snapshot())
		})
	}
}

func TestPersist_HumanReadableJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	l, err := Load(path, testLogger())
	require.NoError(t, err)

	l.Mark("7", "버그 수정 <html>")
	require.NoError(t, l.Persist())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"7\": \"버그 수정 <html>\"")

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "버그 수정 <html>", decoded["7"])
}

func TestPersist_OverwritesPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"1": "Old"}`), 0o644))

	l, err := Load(path, testLogger())
	require.NoError(t, err)
	l.Mark("1", "New title")
	l.Mark("3", "Third")
	require.NoError(t, l.Persist())

	reloaded, err := Load(path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1": "New title", "3": "Third"}, reloaded.Snapshot())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestPersist_MissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "history.json")
	l, err := Load(path, testLogger())
	require.NoError(t, err)
	l.Mark("1", "x")
	assert.Error(t, l.Persist())
}

func TestMarkIsIdempotent(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "h.json"), testLogger())
	require.NoError(t, err)

	l.Mark(Key(5), "A")
	l.Mark(Key(5), "A")
	l.Mark(Key(5), "B")

	assert.Equal(t, 1, l.Len())
	title, ok := l.Title("5")
	assert.True(t, ok)
	assert.Equal(t, "B", title)
}

func TestSnapshotIsACopy(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "h.json"), testLogger())
	require.NoError(t, err)
	l.Mark("1", "A")

	snap := l.Snapshot()
	snap["2"] = "B"
	assert.False(t, l.Contains("2"))
}
