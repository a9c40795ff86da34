package documents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("some corpus text"), 0644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "some corpus text", text)
}

func TestLoadMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "readme.md")
	require.NoError(t, os.WriteFile(path, []byte("# heading\n\nbody"), 0644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "# heading\n\nbody", text)
}

func TestLoadUnsupportedType(t *testing.T) {
	_, err := Load("image.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
