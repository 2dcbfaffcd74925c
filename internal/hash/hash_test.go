package hash

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	emptyDigest      = "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	helloWorldDigest = "sha256:b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
)

func TestSHA256Hasher_HashBytes(t *testing.T) {
	h := NewSHA256Hasher()

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "empty", data: nil, want: emptyDigest},
		{name: "known vector", data: []byte("hello world"), want: helloWorldDigest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.HashBytes(tt.data))
		})
	}

	assert.NotEqual(t, h.HashBytes([]byte("a")), h.HashBytes([]byte("b")))
}

func TestSHA256Hasher_HashFile(t *testing.T) {
	h := NewSHA256Hasher()
	dir := t.TempDir()

	t.Run("matches HashBytes", func(t *testing.T) {
		path := filepath.Join(dir, "gsd-statusline.js")
		require.NoError(t, os.WriteFile(path, []byte("hello world"), 0644))

		got, err := h.HashFile(path)
		require.NoError(t, err)
		assert.Equal(t, helloWorldDigest, got)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.js")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		got, err := h.HashFile(path)
		require.NoError(t, err)
		assert.Equal(t, emptyDigest, got)
	})

	t.Run("large file is streamed", func(t *testing.T) {
		path := filepath.Join(dir, "large.js")
		data := make([]byte, 1<<20)
		for i := range data {
			data[i] = byte(i % 251)
		}
		require.NoError(t, os.WriteFile(path, data, 0644))

		got, err := h.HashFile(path)
		require.NoError(t, err)
		assert.Equal(t, h.HashBytes(data), got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := h.HashFile(filepath.Join(dir, "missing.js"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := h.HashFile(dir)
		assert.Error(t, err)
	})
}

func TestFakeHasher(t *testing.T) {
	h := NewFakeHasher()

	got, err := h.HashFile("/project/hooks/dist/c.js")
	require.NoError(t, err)
	assert.Equal(t, "fake:c.js", got)

	h.SetHash("/project/hooks/dist/c.js", "sha256:fixed")
	got, err = h.HashFile("/project/hooks/dist/c.js")
	require.NoError(t, err)
	assert.Equal(t, "sha256:fixed", got)

	assert.Equal(t, "fake:5", h.HashBytes([]byte("hello")))
}
