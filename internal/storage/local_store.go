package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes assets under the public static directory.
type LocalStore struct {
	publicDir string
}

func NewLocalStore(publicDir string) *LocalStore {
	return &LocalStore{publicDir: publicDir}
}

func (s *LocalStore) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	dir := filepath.Join(s.publicDir, "uploads")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("write asset %s: %w", name, err)
	}
	return UploadsPrefix + name, nil
}

func (s *LocalStore) Remove(publicPath string) error {
	rel := strings.TrimPrefix(publicPath, "/")
	// Refuse to unlink anything that escapes the public dir.
	if rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid asset path %q", publicPath)
	}
	return os.Remove(filepath.Join(s.publicDir, filepath.FromSlash(rel)))
}
