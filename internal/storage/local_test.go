package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Amarie1212/ppmnurulhakim/internal/storage"
)

func newStore(t *testing.T) *storage.LocalStorage {
	t.Helper()
	s, err := storage.NewLocalStorage(t.TempDir())
	assert.NoError(t, err)
	return s
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	err := s.Save(ctx, "1693000000000_photo.jpg", strings.NewReader("image-bytes"))
	assert.NoError(t, err)

	exists, size, err := s.Exists(ctx, "1693000000000_photo.jpg")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, int64(len("image-bytes")), size)

	rc, err := s.Open(ctx, "1693000000000_photo.jpg")
	assert.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	assert.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	keys, err := s.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1693000000000_photo.jpg"}, keys)
}

func TestLocalStorage_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	assert.NoError(t, s.Save(ctx, "proof.jpg", strings.NewReader("x")))
	assert.NoError(t, s.Delete(ctx, "proof.jpg"))
	// Deleting again is not an error.
	assert.NoError(t, s.Delete(ctx, "proof.jpg"))

	exists, _, err := s.Exists(ctx, "proof.jpg")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	for _, key := range []string{"../outside.txt", "/etc/passwd", "a/../../b"} {
		err := s.Save(ctx, key, strings.NewReader("x"))
		assert.Error(t, err, "key %q", key)
	}
}

func TestGenerateKey(t *testing.T) {
	key := storage.GenerateKey("bukti transfer (1).jpg")
	assert.Regexp(t, `^\d+_bukti_transfer__1_\.jpg$`, key)

	// Hostile names degrade to a random key rather than an empty one.
	key = storage.GenerateKey("...")
	assert.Regexp(t, `^\d+_[0-9a-f-]{36}$`, key)
}
