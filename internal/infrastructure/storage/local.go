// Package storage persists attachment files on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fixmylab/internal/shared/config"
)

// LocalStore writes objects under a root directory and resolves them to
// URLs under a public base path. Keys use forward slashes; a key that
// escapes the root is rejected.
type LocalStore struct {
	rootPath  string
	publicURL string
}

func NewLocalStore(cfg *config.StorageConfig) (*LocalStore, error) {
	root, err := filepath.Abs(cfg.RootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}

	return &LocalStore{
		rootPath:  root,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// RootPath returns the absolute directory files are stored under. The HTTP
// layer serves it as static content.
func (s *LocalStore) RootPath() string {
	return s.rootPath
}

func (s *LocalStore) Put(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error) {
	path, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create object file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, content)
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if size > 0 && written != size {
		os.Remove(path)
		return "", fmt.Errorf("short write: got %d bytes, want %d", written, size)
	}

	return s.publicURL + "/" + key, nil
}

// DeletePrefix removes every object stored under the prefix.
func (s *LocalStore) DeletePrefix(ctx context.Context, prefix string) error {
	path, err := s.resolve(prefix)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete objects under %s: %w", prefix, err)
	}
	return nil
}

// resolve maps a key to an absolute path inside the root, rejecting
// traversal attempts.
func (s *LocalStore) resolve(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("object key is empty")
	}

	clean := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid object key: %s", key)
	}

	return filepath.Join(s.rootPath, clean), nil
}
