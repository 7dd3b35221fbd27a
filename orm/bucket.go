/*
Package orm breaks the state space into prefixed sections called
buckets, and provides typed access to the objects stored inside.

Every bucket owns a name that prefixes all of its keys, so two buckets
can never collide. Sequences provide auto-incremented unique ids inside
a bucket namespace.
*/
package orm

import (
	"regexp"

	"github.com/plait-network/plait"
	"github.com/plait-network/plait/errors"
)

// isBucketName defines which bucket names are allowed. Bucket names take
// part in the construction of every database key, so they are kept short
// and conflict-free.
var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Model is implemented by any entity that can be stored in a Bucket.
type Model interface {
	plait.Persistent

	// Validate returns an error if the model is not in a valid state
	// to save to the db (eg. field missing, out of range, ...).
	Validate() error
}

// Bucket is a prefixed subspace of the DB that stores one kind of Model.
type Bucket struct {
	name   string
	prefix []byte
}

// NewBucket creates a bucket with the given name. It panics when the
// name is malformed, as bucket names are static program configuration.
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic("invalid bucket name: " + name)
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including the prefix.
func (b Bucket) DBKey(key []byte) []byte {
	// Always return a copy. Using append on b.prefix would reuse the
	// prefix backing array and a second call would overwrite the first
	// result.
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// One queries the database for a single model instance, addressed by its
// primary key. The result is loaded into dest. This method returns
// ErrNotFound if the entity does not exist in the database.
func (b Bucket) One(db plait.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "bucket lookup")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal %T", dest)
	}
	return nil
}

// Has checks for the existence of an entity with the given primary key.
func (b Bucket) Has(db plait.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Put validates and saves the given model in the database.
func (b Bucket) Put(db plait.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal %T", m)
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Delete removes an entity with the given primary key. It returns
// ErrNotFound if an entity with that key does not exist.
func (b Bucket) Delete(db plait.KVStore, key []byte) error {
	dbkey := b.DBKey(key)
	ok, err := db.Has(dbkey)
	if err != nil {
		return errors.Wrap(err, "bucket lookup")
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "key %X", key)
	}
	return db.Delete(dbkey)
}

// Sequence returns a named sequence scoped to this bucket.
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}
