package plait

// This file defines all public interfaces for interacting with stores.
// KVStore is the basic object to use in all module code.

// ReadOnlyKVStore is a simple interface to query data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Errors on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists.
	Has(key []byte) (bool, error)
}

// KVStore is a simple interface to get/set data.
//
// For simplicity, we require all backing stores to implement this
// interface. They may implement other methods as well, but at least
// these are required.
type KVStore interface {
	ReadOnlyKVStore

	// Set sets the key. Errors on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Errors on nil key.
	Delete(key []byte) error

	// NewBatch returns a batch that can write to this store later.
	NewBatch() Batch
}

// SetDeleter is a subset of KVStore that batches write into.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Batch groups writes so they may be applied together.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore is a KVStore that supports savepoints.
//
// These extend KVStore to allow grouping temporary writes which may be
// committed or discarded together, like Postgresql SAVEPOINT / ROLLBACK
// TO SAVEPOINT. Methods that need all-or-nothing semantics should use
// this instead of KVStore.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a scratch-pad of uncommitted data that responds to all
// queries. At the end, call Write to apply the cached writes to the
// parent, or Discard to drop them.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively.
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data.
	Discard()
}
