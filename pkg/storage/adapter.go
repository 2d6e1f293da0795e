// Package storage defines the capability contract of record storage
// backends and the validation layer composed around them.
package storage

import "github.com/bitym/core/pkg/shardstore"

// Adapter is the capability contract of a record storage backend.
// shardstore.Store is the filesystem implementation.
type Adapter interface {
	// Open notifies the backend about an upcoming usage session.
	Open(readOnly bool) error
	// Init prepares the backend for work (e.g. creates missing
	// directories). Must be called after Open.
	Init() error
	// Close finishes the usage session.
	Close() error

	// Fetch reads the record stored under the given key. Returns
	// shardstore.ErrRecordNotFound if there is none.
	Fetch(key string) (*shardstore.Record, error)
	// Store persists the record under its hash.
	Store(rec *shardstore.Record) error
}
