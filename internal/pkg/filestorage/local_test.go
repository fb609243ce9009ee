package filestorage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return ls
}

func TestDeleteFileRemovesStoredFile(t *testing.T) {
	ls := newTestStorage(t)

	dir := filepath.Join(ls.basePath, "avatars")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	target := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(target, []byte("png"), 0o644))

	err := ls.DeleteFile("http://localhost:8080/uploads/avatars/photo.png")
	require.NoError(t, err)

	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFileMissingFileSucceeds(t *testing.T) {
	ls := newTestStorage(t)

	err := ls.DeleteFile("http://localhost:8080/uploads/avatars/gone.png")
	assert.NoError(t, err)
}

func TestDeleteFileEmptyURLIsNoop(t *testing.T) {
	ls := newTestStorage(t)

	assert.NoError(t, ls.DeleteFile(""))
}

func TestDeleteFileRejectsPathTraversal(t *testing.T) {
	ls := newTestStorage(t)

	tests := []string{
		"http://localhost:8080/uploads/../secrets.txt",
		"http://localhost:8080/uploads/../../etc/passwd",
		"http://localhost:8080/uploads/..",
	}
	for _, url := range tests {
		err := ls.DeleteFile(url)
		assert.Error(t, err, "expected %q to be rejected", url)
	}
}

func TestNewLocalStorageTrimsBaseURL(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads", ls.baseURL)
}
