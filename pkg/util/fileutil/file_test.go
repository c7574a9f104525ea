package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveFileReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jar")
	dst := filepath.Join(dir, "dst.jar")

	require.NoError(t, os.WriteFile(src, []byte("new content"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0644))

	require.NoError(t, MoveFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(got))

	exists, err := IsFileExists(src)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMoveFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := MoveFile(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	assert.Error(t, err)
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0644))

	require.NoError(t, CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
	assert.FileExists(t, src)
}

func TestWriteFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.bin")

	n, err := WriteFile(dst, strings.NewReader("0123456789"))
	require.NoError(t, err)
	assert.EqualValues(t, 10, n)

	_, err = WriteFile(filepath.Join(t.TempDir(), "missing", "out.bin"), strings.NewReader("x"))
	assert.Error(t, err)
}

func TestCreateFileIfNotExists(t *testing.T) {
	name := filepath.Join(t.TempDir(), "logs", "nested", "nexusctl.log")

	require.NoError(t, CreateFileIfNotExists(name))
	assert.FileExists(t, name)

	// second call is a no-op
	require.NoError(t, CreateFileIfNotExists(name))
	assert.True(t, IsDir(filepath.Dir(name)))
}
