// Package crypto provides key generation and signing primitives used to
// derive signer identities. Signature verification of incoming calls is
// the host's job, so only the pieces needed to mint identities and sign
// payloads client-side live here.
package crypto

import (
	"github.com/plait-network/plait"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we derive from public keys.
const ExtensionName = "sigs"

// Signer is the functionality we use from a private key. No serializing
// to support hardware devices as well.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() PublicKey
}

// PublicKey wraps an ed25519 public key.
type PublicKey struct {
	data ed25519.PublicKey
}

// Verify checks the signature was created with this message and the
// private side of this public key.
func (p PublicKey) Verify(message, sig []byte) bool {
	return ed25519.Verify(p.data, message, sig)
}

// Condition encodes the public key into an authorization condition.
func (p PublicKey) Condition() plait.Condition {
	return plait.NewCondition(ExtensionName, "ed25519", p.data)
}

// Address is a shortcut for Condition().Address().
func (p PublicKey) Address() plait.Address {
	return p.Condition().Address()
}

// PrivateKey wraps an ed25519 private key.
type PrivateKey struct {
	data ed25519.PrivateKey
}

var _ Signer = PrivateKey{}

// Sign returns a matching signature for this private key.
func (p PrivateKey) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(p.data, message), nil
}

// PublicKey returns the corresponding public key.
func (p PrivateKey) PublicKey() PublicKey {
	return PublicKey{data: p.data.Public().(ed25519.PublicKey)}
}

// GenPrivKeyEd25519 returns a random new private key.
func GenPrivKeyEd25519() PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return PrivateKey{data: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key
// from a given seed. Use if you have a strong source of external
// randomness, or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) PrivateKey {
	return PrivateKey{data: ed25519.NewKeyFromSeed(seed)}
}
