package gconf

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plait-network/plait/errors"
	"github.com/plait-network/plait/store"
)

type settings struct {
	Name  string `json:"name"`
	Limit int64  `json:"limit"`
}

var _ Configuration = (*settings)(nil)

func (s *settings) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func (s *settings) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, s)
}

func (s *settings) Validate() error {
	if s.Name == "" {
		return errors.Wrap(errors.ErrModel, "name required")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	var missing settings
	err := Load(db, "mypkg", &missing)
	assert.True(t, errors.ErrNotFound.Is(err))
	ok, err := Exists(db, "mypkg")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, Save(db, "mypkg", &settings{Name: "first", Limit: 10}))
	ok, err = Exists(db, "mypkg")
	require.NoError(t, err)
	assert.True(t, ok)

	var loaded settings
	require.NoError(t, Load(db, "mypkg", &loaded))
	assert.Equal(t, settings{Name: "first", Limit: 10}, loaded)

	// Saving again replaces the singleton.
	require.NoError(t, Save(db, "mypkg", &settings{Name: "second", Limit: 20}))
	require.NoError(t, Load(db, "mypkg", &loaded))
	assert.Equal(t, settings{Name: "second", Limit: 20}, loaded)
}

func TestSaveValidates(t *testing.T) {
	db := store.MemStore()

	err := Save(db, "mypkg", &settings{Name: ""})
	assert.True(t, errors.ErrModel.Is(err))
	ok, err := Exists(db, "mypkg")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPackagesAreIsolated(t *testing.T) {
	db := store.MemStore()

	require.NoError(t, Save(db, "alpha", &settings{Name: "a"}))

	var missing settings
	err := Load(db, "beta", &missing)
	assert.True(t, errors.ErrNotFound.Is(err))
}
