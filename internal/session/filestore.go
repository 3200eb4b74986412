package session

import (
	"context"
	"errors"
	"os"
	"strings"
)

// FileStore keeps the token in a single file, the console's stand-in for the
// dashboard's local-storage entry.
type FileStore struct {
	path string
}

// NewFileStore builds a file-backed token store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read returns the persisted token, empty when none exists.
func (f *FileStore) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Write persists the token.
func (f *FileStore) Write(ctx context.Context, token string) error {
	return os.WriteFile(f.path, []byte(token+"\n"), 0o600)
}

// Delete removes the persisted token.
func (f *FileStore) Delete(ctx context.Context) error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
