// Package kv is the capability contract for the namespaced key-value store
// backing the local snapshot. It is injected into the snapshot store rather
// than reached through an ambient global so tests can substitute doubles.
package kv

// Store is a minimal key-value capability: get, set, remove.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) ([]byte, bool, error)
	// Set fully replaces the value for key.
	Set(key string, value []byte) error
	// Remove deletes the key; removing an absent key is not an error.
	Remove(key string) error
}
