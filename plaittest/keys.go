package plaittest

import (
	"github.com/plait-network/plait"
	"github.com/plait-network/plait/crypto"
)

// NewKey generates a fresh ed25519 private key.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition generates the signature condition of a fresh key.
func NewCondition() plait.Condition {
	return NewKey().PublicKey().Condition()
}
