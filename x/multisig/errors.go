package multisig

import (
	"github.com/plait-network/plait/errors"
)

// Error codes 1-12 are the public taxonomy of the wallet. The numeric
// values are part of the client contract and must never change.
var (
	// ErrAlreadyInitialized is returned when initialize is called on a
	// wallet that already holds a configuration.
	ErrAlreadyInitialized = errors.Register(1, "already initialized")

	// ErrNotInitialized is returned by every operation that runs before
	// the wallet configuration was created.
	ErrNotInitialized = errors.Register(2, "not initialized")

	// ErrInvalidThreshold is returned when a threshold is zero or
	// greater than the number of signers it applies to.
	ErrInvalidThreshold = errors.Register(3, "invalid threshold")

	// ErrNotASigner is returned when the acting identity is not a
	// member of the current signer set.
	ErrNotASigner = errors.Register(4, "not a signer")

	// ErrProposalNotFound is returned when no proposal exists under the
	// given id.
	ErrProposalNotFound = errors.Register(5, "proposal not found")

	// ErrAlreadyApproved is returned when a signer approves the same
	// proposal twice.
	ErrAlreadyApproved = errors.Register(6, "already approved")

	// ErrNotApproved is returned when a signer revokes an approval they
	// never gave.
	ErrNotApproved = errors.Register(7, "not approved")

	// ErrThresholdNotMet is returned when execution is attempted before
	// the quorum was collected.
	ErrThresholdNotMet = errors.Register(8, "threshold not met")

	// ErrAlreadyExecuted is returned on any mutation of a proposal that
	// was executed before.
	ErrAlreadyExecuted = errors.Register(9, "already executed")

	// ErrProposalExpired is returned when the ledger sequence moved
	// past the proposal expiration.
	ErrProposalExpired = errors.Register(10, "proposal expired")

	// ErrDuplicateSigner is returned when a signer set contains the
	// same address more than once.
	ErrDuplicateSigner = errors.Register(11, "duplicate signer")

	// ErrEmptySigners is returned when a signer set contains no
	// entries.
	ErrEmptySigners = errors.Register(12, "empty signer set")
)
