package storage

import "errors"

// ErrStorage marks failures of the backing key-value store.
var ErrStorage = errors.New("storage failure")

// Storage is a synchronous key-value store that survives restarts.
type Storage interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}
