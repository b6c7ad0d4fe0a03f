package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "matrix.txt")

	require.NoError(t, AtomicWrite(path, []byte("hello\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	// Overwrites existing content.
	require.NoError(t, AtomicWrite(path, []byte("replaced\n")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "replaced\n", string(data))
}

func TestAtomicWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matrix.txt")

	require.NoError(t, AtomicWrite(path, []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "matrix.txt", entries[0].Name())
}

func TestTable(t *testing.T) {
	got := Table([]string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}})

	want := "| A | B |\n" +
		"| --- | --- |\n" +
		"| 1 | 2 |\n" +
		"| 3 | 4 |\n"
	assert.Equal(t, want, got)
}
