package keystore

// Store persists the single API key token.
type Store interface {
	// Read returns the stored key, or ErrKeyMissing when there is none.
	Read() (string, error)

	// Write replaces the stored key.
	Write(key string) error

	// Path describes where the key is kept, for user-facing messages.
	Path() string
}
