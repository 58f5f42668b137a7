package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadDownloadRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	key, err := s.Upload(context.Background(), strings.NewReader("aadhaar scan"), "emp-1/aadhaar.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "emp-1/aadhaar.pdf", key)

	rc, err := s.Download(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "aadhaar scan", string(content))

	require.NoError(t, s.Delete(context.Background(), key))
	_, err = s.Download(context.Background(), key)
	assert.Error(t, err)
}

func TestLocalStorage_RejectsPathsOutsideRoot(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, path := range []string{"../escape.txt", "a/../../escape.txt", ".."} {
		_, err := s.Upload(context.Background(), strings.NewReader("x"), path, "text/plain")
		assert.Error(t, err, "upload %s", path)

		_, err = s.Download(context.Background(), path)
		assert.Error(t, err, "download %s", path)

		assert.Error(t, s.Delete(context.Background(), path), "delete %s", path)
	}
}

func TestLocalStorage_DeleteMissingFileIsNoOp(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, s.Delete(context.Background(), "emp-1/gone.pdf"))
}
