package multisig

import (
	amino "github.com/tendermint/go-amino"
)

// cdc serializes all models and messages of this package. Action is a
// registered interface, so the two variants travel with a type tag and
// unmarshal back into their concrete type.
var cdc = amino.NewCodec()

func init() {
	cdc.RegisterInterface((*Action)(nil), nil)
	cdc.RegisterConcrete(&TransferAction{}, "multisig/transfer", nil)
	cdc.RegisterConcrete(&UpdateSignersAction{}, "multisig/update_signers", nil)

	cdc.RegisterConcrete(&InitializeMsg{}, "multisig/msg/initialize", nil)
	cdc.RegisterConcrete(&CreateProposalMsg{}, "multisig/msg/create_proposal", nil)
	cdc.RegisterConcrete(&ApproveMsg{}, "multisig/msg/approve", nil)
	cdc.RegisterConcrete(&RevokeApprovalMsg{}, "multisig/msg/revoke_approval", nil)
	cdc.RegisterConcrete(&ExecuteProposalMsg{}, "multisig/msg/execute", nil)
	cdc.RegisterConcrete(&SetTokenMsg{}, "multisig/msg/set_token", nil)
}
