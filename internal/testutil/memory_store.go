package testutil

import "github.com/alexanderramin/wakatime/internal/keystore"

// MemoryStore is an in-memory key store for service and CLI tests. ReadErr
// and WriteErr inject failures. An empty Key reads as keystore.ErrKeyMissing.
type MemoryStore struct {
	Key      string
	ReadErr  error
	WriteErr error
	Reads    int
	Writes   int
}

func (s *MemoryStore) Read() (string, error) {
	s.Reads++
	if s.ReadErr != nil {
		return "", s.ReadErr
	}
	if s.Key == "" {
		return "", keystore.ErrKeyMissing
	}
	return s.Key, nil
}

func (s *MemoryStore) Write(key string) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Key = key
	s.Writes++
	return nil
}

func (s *MemoryStore) Path() string {
	return "memory"
}
