// Package store provides the key-value persistence layer for tracker
// state.
package store

// Store is the persistence collaborator injected into the tracker.
// Implementations must tolerate missing keys: Get reports absence via
// the second return value, not an error.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
