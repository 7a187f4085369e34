package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"audio.mp3", "mp3"},
		{"AUDIO.MP3", "mp3"},
		{"/some/dir/recording.M4A", "m4a"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
		{".hidden", "hidden"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileExtension(tt.path), "path %q", tt.path)
	}
}

func TestEnsureDirectory(t *testing.T) {
	base := t.TempDir()

	nested := filepath.Join(base, "a", "b", "c")
	require.NoError(t, EnsureDirectory(nested))
	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// idempotent on an existing directory
	require.NoError(t, EnsureDirectory(nested))

	// refuses a path occupied by a file
	file := filepath.Join(base, "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	err = EnsureDirectory(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "go.mod"))
}
