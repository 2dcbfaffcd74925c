// Package hash computes content checksums for build artifacts.
//
// Every artifact in the build report carries a digest of the bytes that were
// written, so two runs can be compared without diffing the files. Digests
// are rendered as "<algorithm>:<hex>".
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Algorithm is the digest prefix written by SHA256Hasher.
const Algorithm = "sha256"

// Hasher provides an abstraction for artifact hashing.
type Hasher interface {
	// HashFile computes the digest of the file at the given path.
	HashFile(path string) (string, error)

	// HashBytes computes the digest of an in-memory artifact.
	HashBytes(data []byte) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// HashFile streams the file at path through SHA-256.
func (h *SHA256Hasher) HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return h.hashReader(file)
}

// HashBytes computes the SHA-256 digest of data.
func (h *SHA256Hasher) HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return format(sum[:])
}

func (h *SHA256Hasher) hashReader(r io.Reader) (string, error) {
	digest := sha256.New()
	if _, err := io.Copy(digest, r); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return format(digest.Sum(nil)), nil
}

func format(sum []byte) string {
	return Algorithm + ":" + hex.EncodeToString(sum)
}

// FakeHasher implements Hasher without touching the filesystem. Digests
// encode the input so tests can tell artifacts apart.
type FakeHasher struct {
	files map[string]string
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{files: make(map[string]string)}
}

// SetHash fixes the digest returned for path.
func (h *FakeHasher) SetHash(path, digest string) {
	h.files[path] = digest
}

// HashFile returns the digest set for path, or one derived from its name.
func (h *FakeHasher) HashFile(path string) (string, error) {
	if digest, ok := h.files[path]; ok {
		return digest, nil
	}
	return "fake:" + filepath.Base(path), nil
}

// HashBytes returns a digest derived from the length of data.
func (h *FakeHasher) HashBytes(data []byte) string {
	return fmt.Sprintf("fake:%d", len(data))
}
