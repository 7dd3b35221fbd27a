// Package gconf provides a toolset for managing a per-package
// configuration singleton. The configuration object is owned by the
// package that declares it and may only be modified through that
// package's own operations.
package gconf

import (
	"github.com/plait-network/plait/errors"
)

// ReadStore is a subset of plait.ReadOnlyKVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of plait.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
	Has([]byte) (bool, error)
}

// ValidMarshaler is implemented by objects that can serialize themselves
// to a binary representation and sanity-check their own content.
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

// Unmarshaler is implemented by objects that can load their state from a
// given binary representation.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

// Configuration combines both directions of serialization.
type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

func confKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save will Validate the object before writing it to the configuration
// singleton of the given package.
func Save(db Store, pkg string, src ValidMarshaler) error {
	key := confKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	return db.Set(key, raw)
}

// Load reads the configuration singleton of the given package into dst.
// It returns ErrNotFound when the package was never configured.
func Load(db ReadStore, pkg string, dst Unmarshaler) error {
	key := confKey(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}

// Exists checks whether the configuration singleton of the given package
// was ever stored.
func Exists(db Store, pkg string) (bool, error) {
	return db.Has(confKey(pkg))
}
