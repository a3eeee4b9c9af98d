package keystore

import "errors"

var (
	// ErrKeyMissing indicates no API key file exists or it holds no key.
	ErrKeyMissing = errors.New("no api key stored")

	// ErrEmptyKey indicates an attempt to store a blank key.
	ErrEmptyKey = errors.New("api key is empty")
)
