package plait_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plait-network/plait"
	"github.com/plait-network/plait/errors"
)

func TestNewAddress(t *testing.T) {
	addr := plait.NewAddress([]byte("some-public-key"))
	require.NoError(t, addr.Validate())
	assert.Equal(t, plait.AddressLength, len(addr))

	// Hashing is deterministic.
	assert.True(t, addr.Equals(plait.NewAddress([]byte("some-public-key"))))
	assert.False(t, addr.Equals(plait.NewAddress([]byte("other-public-key"))))

	assert.Nil(t, plait.NewAddress(nil))
}

func TestAddressValidate(t *testing.T) {
	cases := map[string]struct {
		addr    plait.Address
		wantErr *errors.Error
	}{
		"proper size":   {addr: plait.NewAddress([]byte("x"))},
		"empty":         {addr: nil, wantErr: errors.ErrInput},
		"too short":     {addr: plait.Address("foo"), wantErr: errors.ErrInput},
		"one too long":  {addr: plait.Address("123456789012345678901"), wantErr: errors.ErrInput},
		"exactly bound": {addr: plait.Address("12345678901234567890")},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.addr.Validate()
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
		})
	}
}

func TestAddressJSONRoundtrip(t *testing.T) {
	addr := plait.NewAddress([]byte("round-trip"))
	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var loaded plait.Address
	require.NoError(t, json.Unmarshal(raw, &loaded))
	assert.True(t, addr.Equals(loaded))

	var garbage plait.Address
	err = json.Unmarshal([]byte(`"zzzz"`), &garbage)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestConditionParse(t *testing.T) {
	cases := map[string]struct {
		cond    plait.Condition
		wantErr *errors.Error
	}{
		"valid":            {cond: plait.NewCondition("sigs", "ed25519", []byte("data"))},
		"binary data":      {cond: plait.NewCondition("sigs", "ed25519", []byte{0x20, 0x0a, 0x00})},
		"short extension":  {cond: plait.NewCondition("ab", "ed25519", []byte("data")), wantErr: errors.ErrInput},
		"long type":        {cond: plait.NewCondition("sigs", "waytoolongname", []byte("data")), wantErr: errors.ErrInput},
		"no data":          {cond: plait.Condition("sigs/ed25519/"), wantErr: errors.ErrInput},
		"not a condition":  {cond: plait.Condition("random"), wantErr: errors.ErrInput},
		"invalid ext char": {cond: plait.NewCondition("sig!", "ed25519", []byte("data")), wantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ext, typ, data, err := tc.cond.Parse()
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			assert.Equal(t, tc.wantErr.Is(nil), tc.cond.Validate() == nil)
			if err != nil {
				return
			}
			assert.Equal(t, tc.cond, plait.NewCondition(ext, typ, data))
		})
	}
}

func TestConditionAddress(t *testing.T) {
	cond := plait.NewCondition("sigs", "ed25519", []byte("my-key"))
	addr := cond.Address()
	require.NoError(t, addr.Validate())
	// Different conditions map to different addresses.
	other := plait.NewCondition("sigs", "ed25519", []byte("other-key"))
	assert.False(t, addr.Equals(other.Address()))
}

func TestConditionJSONRoundtrip(t *testing.T) {
	cond := plait.NewCondition("sigs", "ed25519", []byte("binary\ndata"))
	raw, err := json.Marshal(cond)
	require.NoError(t, err)

	var loaded plait.Condition
	require.NoError(t, json.Unmarshal(raw, &loaded))
	assert.True(t, cond.Equals(loaded))

	var empty plait.Condition
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.Nil(t, empty)

	var garbage plait.Condition
	err = json.Unmarshal([]byte(`"onlytwo/segments"`), &garbage)
	assert.True(t, errors.ErrInput.Is(err))
}
