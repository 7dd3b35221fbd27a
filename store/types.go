//nolint
package store

import "github.com/plait-network/plait"

// Move references for all storage types into this package for shorter
// names everywhere.

type ReadOnlyKVStore = plait.ReadOnlyKVStore
type KVStore = plait.KVStore
type SetDeleter = plait.SetDeleter
type Batch = plait.Batch
type CacheableKVStore = plait.CacheableKVStore
type KVCacheWrap = plait.KVCacheWrap
