package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()

	msg := []byte("sign me")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)

	assert.True(t, pub.Verify(msg, sig))
	assert.False(t, pub.Verify([]byte("other message"), sig))
	assert.False(t, GenPrivKeyEd25519().PublicKey().Verify(msg, sig))
}

func TestCondition(t *testing.T) {
	priv := GenPrivKeyEd25519()
	cond := priv.PublicKey().Condition()

	require.NoError(t, cond.Validate())
	ext, typ, _, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, ExtensionName, ext)
	assert.Equal(t, "ed25519", typ)

	require.NoError(t, priv.PublicKey().Address().Validate())
	assert.Equal(t, cond.Address(), priv.PublicKey().Address())
}

func TestPrivKeyFromSeed(t *testing.T) {
	seed := make([]byte, 32)
	copy(seed, "deterministic seed for testing")

	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	// The same seed yields the same identity.
	assert.Equal(t, a.PublicKey().Address(), b.PublicKey().Address())

	sig, err := a.Sign([]byte("msg"))
	require.NoError(t, err)
	assert.True(t, b.PublicKey().Verify([]byte("msg"), sig))
}
