package multisig

import (
	"github.com/plait-network/plait"
	"github.com/plait-network/plait/coin"
	"github.com/plait-network/plait/errors"
	"github.com/plait-network/plait/orm"
)

// ProposalStatus tracks the lifecycle of a proposal. A proposal starts
// Active and becomes Executed at most once. There is no other terminal
// state; proposals that never collect a quorum simply expire.
type ProposalStatus uint8

const (
	// ProposalStatusInvalid is the zero value and never stored.
	ProposalStatusInvalid ProposalStatus = iota
	// ProposalStatusActive means the proposal accepts approvals and
	// may be executed.
	ProposalStatusActive
	// ProposalStatusExecuted means the action was dispatched. The
	// record is kept forever as an audit trail.
	ProposalStatusExecuted
)

func (s ProposalStatus) String() string {
	switch s {
	case ProposalStatusActive:
		return "active"
	case ProposalStatusExecuted:
		return "executed"
	default:
		return "invalid"
	}
}

// Validate returns an error unless this is a known, storable status.
func (s ProposalStatus) Validate() error {
	switch s {
	case ProposalStatusActive, ProposalStatusExecuted:
		return nil
	default:
		return errors.Wrapf(errors.ErrState, "status %d", s)
	}
}

// Action is what a proposal performs once the quorum approved it. The
// set of implementations is closed: execution dispatches with an
// exhaustive type switch and treats any other type as a coding error.
//
// Validate covers only stateless shape of the data. Whether the action
// can actually be applied is decided at execution time, against the
// configuration current at that moment.
type Action interface {
	Validate() error
}

// TransferAction moves funds out of the wallet account.
type TransferAction struct {
	Destination plait.Address
	Amount      coin.Coin
}

var _ Action = (*TransferAction)(nil)

func (a *TransferAction) Validate() error {
	if err := a.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := a.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

// UpdateSignersAction replaces the wallet signer set and threshold.
// Whether the new configuration is legal is checked only when the
// proposal executes, not when it is created.
type UpdateSignersAction struct {
	Signers   []plait.Address
	Threshold uint32
}

var _ Action = (*UpdateSignersAction)(nil)

func (a *UpdateSignersAction) Validate() error {
	for i, s := range a.Signers {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "signer #%d", i)
		}
	}
	return nil
}

// Configuration is the root of trust of the wallet: who may sign and
// how many of them must approve. It is created once by initialize and
// afterwards replaced only by executing an UpdateSigners action. Token
// optionally names the account the wallet funds are held at; when
// empty, funds are assumed at the wallet's own derived address.
type Configuration struct {
	Signers   []plait.Address
	Threshold uint32
	Token     plait.Address
}

var _ orm.Model = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

// Validate enforces the global wallet invariants: a non-empty, unique
// signer set and a threshold that is always satisfiable. It runs on
// every write of the configuration, so no execution path can install a
// broken signer set.
func (c *Configuration) Validate() error {
	if len(c.Signers) == 0 {
		return errors.Wrap(ErrEmptySigners, "signers")
	}
	seen := make(map[string]struct{}, len(c.Signers))
	for _, s := range c.Signers {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "signer %s", s)
		}
		if _, ok := seen[string(s)]; ok {
			return errors.Wrapf(ErrDuplicateSigner, "signer %s", s)
		}
		seen[string(s)] = struct{}{}
	}
	if c.Threshold == 0 || c.Threshold > uint32(len(c.Signers)) {
		return errors.Wrapf(ErrInvalidThreshold, "threshold %d of %d signers", c.Threshold, len(c.Signers))
	}
	if len(c.Token) != 0 {
		if err := c.Token.Validate(); err != nil {
			return errors.Wrap(err, "token")
		}
	}
	return nil
}

// IsSigner returns true when the address is a member of the current
// signer set.
func (c *Configuration) IsSigner(addr plait.Address) bool {
	for _, s := range c.Signers {
		if s.Equals(addr) {
			return true
		}
	}
	return false
}

// Proposal is one pending or executed request to perform an Action,
// gated by quorum and expiry. Proposals are append-only: they are never
// deleted, and the only mutations are approval bookkeeping and the
// one-way Active to Executed transition.
type Proposal struct {
	// ID is assigned from the wallet proposal counter, 1-based.
	ID uint32
	// Proposer is the signer that created the proposal.
	Proposer plait.Address
	// Action is performed once the quorum approves.
	Action Action
	// Approvals contains the signers that currently approve, in
	// approval order.
	Approvals []plait.Address
	// Status is Active until the action was dispatched.
	Status ProposalStatus
	// Expiration is the last ledger sequence at which the proposal
	// can still be approved or executed.
	Expiration int64
}

var _ orm.Model = (*Proposal)(nil)

func (p *Proposal) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(p)
}

func (p *Proposal) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, p)
}

// Validate ensures the proposal can be persisted. Note that it must
// accept every proposal the engine may legally produce, including ones
// whose action would fail execution-time validation.
func (p *Proposal) Validate() error {
	if p.ID == 0 {
		return errors.Wrap(errors.ErrModel, "missing id")
	}
	if err := p.Proposer.Validate(); err != nil {
		return errors.Wrap(err, "proposer")
	}
	if p.Action == nil {
		return errors.Wrap(errors.ErrModel, "missing action")
	}
	if err := p.Action.Validate(); err != nil {
		return errors.Wrap(err, "action")
	}
	for i, a := range p.Approvals {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "approval #%d", i)
		}
	}
	return p.Status.Validate()
}

// HasApproved returns true when the signer currently approves the
// proposal.
func (p *Proposal) HasApproved(signer plait.Address) bool {
	for _, a := range p.Approvals {
		if a.Equals(signer) {
			return true
		}
	}
	return false
}

// Approve records an approval by the signer. Each signer can approve
// once.
func (p *Proposal) Approve(signer plait.Address) error {
	if p.HasApproved(signer) {
		return errors.Wrapf(ErrAlreadyApproved, "signer %s", signer)
	}
	p.Approvals = append(p.Approvals, signer)
	return nil
}

// Revoke withdraws a previously given approval by the signer.
func (p *Proposal) Revoke(signer plait.Address) error {
	for i, a := range p.Approvals {
		if a.Equals(signer) {
			p.Approvals = append(p.Approvals[:i], p.Approvals[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrNotApproved, "signer %s", signer)
}
