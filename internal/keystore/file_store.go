package keystore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the key file kept in the user's home directory.
const DefaultFileName = ".wakafile"

// FileStore keeps the raw API key string in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a Store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns ~/.wakafile.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

func (s *FileStore) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrKeyMissing
		}
		return "", fmt.Errorf("reading api key file: %w", err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", ErrKeyMissing
	}
	return key, nil
}

func (s *FileStore) Write(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating api key directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(key), 0o600); err != nil {
		return fmt.Errorf("writing api key file: %w", err)
	}
	return nil
}

func (s *FileStore) Path() string {
	return s.path
}
