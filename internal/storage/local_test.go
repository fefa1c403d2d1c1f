package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSaveAndReadBack(t *testing.T) {
	store := newTestStore(t)

	content := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0x01, 0x02}
	require.NoError(t, store.Save("image.png", bytes.NewReader(content)))
	assert.True(t, store.Exists("image.png"))

	path, err := store.Path("image.png")
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("file.txt", strings.NewReader("first")))
	require.NoError(t, store.Save("file.txt", strings.NewReader("second")))

	path, err := store.Path("file.txt")
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("file.txt", strings.NewReader("data")))
	require.NoError(t, store.Delete("file.txt"))
	assert.False(t, store.Exists("file.txt"))

	// Deleting a missing file is not an error.
	assert.NoError(t, store.Delete("file.txt"))
}

func TestTraversalRejected(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{
		"",
		"../escape.txt",
		"a/b.txt",
		filepath.Join("..", "..", "etc", "passwd"),
	} {
		_, err := store.Path(name)
		assert.Error(t, err, "name %q should be rejected", name)

		err = store.Save(name, strings.NewReader("data"))
		assert.Error(t, err, "save of %q should be rejected", name)
	}
}
