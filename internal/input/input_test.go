package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Read(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day-7-input"), []byte("contents\n"), 0o644))

	store := NewStore(dir)

	contents, err := store.Read(7)
	require.NoError(t, err)
	assert.Equal(t, "contents\n", contents)
}

func TestStore_Read_MissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Read(3)
	assert.ErrorContains(t, err, "failed to read puzzle input")
}

func TestStore_Path(t *testing.T) {
	store := NewStore("inputs")
	assert.Equal(t, filepath.Join("inputs", "day-12-input"), store.Path(12))
}
