package multisig

import (
	"github.com/plait-network/plait"
	"github.com/plait-network/plait/errors"
)

// Message paths, used for routing.
const (
	// pathPrefix is shared by all messages of this package.
	pathPrefix = "multisig/"

	PathInitializeMsg     = pathPrefix + "initialize"
	PathCreateProposalMsg = pathPrefix + "create_proposal"
	PathApproveMsg        = pathPrefix + "approve"
	PathRevokeApprovalMsg = pathPrefix + "revoke_approval"
	PathExecuteMsg        = pathPrefix + "execute"
	PathSetTokenMsg       = pathPrefix + "set_token"
)

var (
	_ plait.Msg = (*InitializeMsg)(nil)
	_ plait.Msg = (*CreateProposalMsg)(nil)
	_ plait.Msg = (*ApproveMsg)(nil)
	_ plait.Msg = (*RevokeApprovalMsg)(nil)
	_ plait.Msg = (*ExecuteProposalMsg)(nil)
	_ plait.Msg = (*SetTokenMsg)(nil)
)

// InitializeMsg sets up the wallet with its first signer set and
// approval threshold.
type InitializeMsg struct {
	Signers   []plait.Address `json:"signers"`
	Threshold uint32          `json:"threshold"`
}

func (InitializeMsg) Path() string {
	return PathInitializeMsg
}

// Validate checks the message shape only. Whether the signer set and
// threshold form a legal configuration is decided by the wallet itself.
func (m *InitializeMsg) Validate() error {
	for i, s := range m.Signers {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "signer #%d", i)
		}
	}
	return nil
}

func (m *InitializeMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *InitializeMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// CreateProposalMsg registers a new proposal for the given action.
type CreateProposalMsg struct {
	Proposer   plait.Address `json:"proposer"`
	Action     Action        `json:"action"`
	Expiration int64         `json:"expiration"`
}

func (CreateProposalMsg) Path() string {
	return PathCreateProposalMsg
}

func (m *CreateProposalMsg) Validate() error {
	if err := m.Proposer.Validate(); err != nil {
		return errors.Wrap(err, "proposer")
	}
	if m.Action == nil {
		return errors.Wrap(errors.ErrInput, "missing action")
	}
	if err := m.Action.Validate(); err != nil {
		return errors.Wrap(err, "action")
	}
	if m.Expiration < 0 {
		return errors.Wrap(errors.ErrInput, "negative expiration")
	}
	return nil
}

func (m *CreateProposalMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *CreateProposalMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// ApproveMsg records the signer's approval on a proposal.
type ApproveMsg struct {
	Signer     plait.Address `json:"signer"`
	ProposalID uint32        `json:"proposal_id"`
}

func (ApproveMsg) Path() string {
	return PathApproveMsg
}

func (m *ApproveMsg) Validate() error {
	if err := m.Signer.Validate(); err != nil {
		return errors.Wrap(err, "signer")
	}
	return nil
}

func (m *ApproveMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ApproveMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// RevokeApprovalMsg withdraws a previously given approval.
type RevokeApprovalMsg struct {
	Signer     plait.Address `json:"signer"`
	ProposalID uint32        `json:"proposal_id"`
}

func (RevokeApprovalMsg) Path() string {
	return PathRevokeApprovalMsg
}

func (m *RevokeApprovalMsg) Validate() error {
	if err := m.Signer.Validate(); err != nil {
		return errors.Wrap(err, "signer")
	}
	return nil
}

func (m *RevokeApprovalMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *RevokeApprovalMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// ExecuteProposalMsg dispatches the proposal action once enough
// approvals are in place.
type ExecuteProposalMsg struct {
	Caller     plait.Address `json:"caller"`
	ProposalID uint32        `json:"proposal_id"`
}

func (ExecuteProposalMsg) Path() string {
	return PathExecuteMsg
}

func (m *ExecuteProposalMsg) Validate() error {
	if err := m.Caller.Validate(); err != nil {
		return errors.Wrap(err, "caller")
	}
	return nil
}

func (m *ExecuteProposalMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ExecuteProposalMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// SetTokenMsg configures the account that funds transfer actions.
type SetTokenMsg struct {
	Signer plait.Address `json:"signer"`
	Token  plait.Address `json:"token"`
}

func (SetTokenMsg) Path() string {
	return PathSetTokenMsg
}

func (m *SetTokenMsg) Validate() error {
	if err := m.Signer.Validate(); err != nil {
		return errors.Wrap(err, "signer")
	}
	if err := m.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	return nil
}

func (m *SetTokenMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SetTokenMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}
