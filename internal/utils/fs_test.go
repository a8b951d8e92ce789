package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"~/cache", filepath.Join(home, "cache")},
		{"~", home},
		{"/abs/path", "/abs/path"},
		{"relative/path", "relative/path"},
		{"~user/x", "~user/x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "file.css")

	require.NoError(t, EnsureDir(path))

	info, err := os.Stat(filepath.Join(dir, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSafeJoin(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain file", input: "main.css", want: filepath.Join(dir, "main.css")},
		{name: "nested file", input: "css/main.css", want: filepath.Join(dir, "css", "main.css")},
		{name: "cleaned inside", input: "css/../main.css", want: filepath.Join(dir, "main.css")},
		{name: "parent", input: "../main.css", wantErr: true},
		{name: "absolute", input: "/etc/passwd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "dir itself", input: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeJoin(dir, tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPathEscapes)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "main.css")

	require.NoError(t, WriteFile(path, []byte("body{}")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))

	require.NoError(t, WriteFile(path, []byte("p{}")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "p{}", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}
