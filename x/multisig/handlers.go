package multisig

import (
	"fmt"

	"github.com/plait-network/plait"
	"github.com/plait-network/plait/errors"
	"github.com/plait-network/plait/orm"
	"github.com/plait-network/plait/x"
)

const (
	// Gas cost of processing each message kind. Approving is cheap,
	// executing dispatches an action and costs more.
	initializeCost int64 = 300
	proposalCost   int64 = 300
	approvalCost   int64 = 100
	executeCost    int64 = 500
	setTokenCost   int64 = 100
)

// TagProposalID is the tag key carrying the proposal id on delivered
// transactions.
const TagProposalID = "multisig:proposal"

// RegisterRoutes will instantiate and register all handlers of this
// package.
func RegisterRoutes(r plait.Registry, auth x.Authenticator, mover CoinMover) {
	engine := NewEngine(auth, mover)
	r.Handle(PathInitializeMsg, InitializeHandler{engine: engine})
	r.Handle(PathCreateProposalMsg, CreateProposalHandler{engine: engine})
	r.Handle(PathApproveMsg, ApproveHandler{engine: engine})
	r.Handle(PathRevokeApprovalMsg, RevokeApprovalHandler{engine: engine})
	r.Handle(PathExecuteMsg, ExecuteHandler{engine: engine})
	r.Handle(PathSetTokenMsg, SetTokenHandler{engine: engine})
}

// InitializeHandler sets up the wallet configuration.
type InitializeHandler struct {
	engine *Engine
}

var _ plait.Handler = InitializeHandler{}

func (h InitializeHandler) Check(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.CheckResult, error) {
	var res plait.CheckResult
	if _, err := h.validate(tx); err != nil {
		return res, err
	}
	res.GasAllocated = initializeCost
	return res, nil
}

func (h InitializeHandler) Deliver(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.DeliverResult, error) {
	var res plait.DeliverResult
	msg, err := h.validate(tx)
	if err != nil {
		return res, err
	}
	if err := h.engine.Initialize(db, msg.Signers, msg.Threshold); err != nil {
		return res, err
	}
	return res, nil
}

func (h InitializeHandler) validate(tx plait.Tx) (*InitializeMsg, error) {
	msg, err := extractMsg(tx)
	if err != nil {
		return nil, err
	}
	initMsg, ok := msg.(*InitializeMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "%T", msg)
	}
	return initMsg, nil
}

// CreateProposalHandler registers new proposals.
type CreateProposalHandler struct {
	engine *Engine
}

var _ plait.Handler = CreateProposalHandler{}

func (h CreateProposalHandler) Check(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.CheckResult, error) {
	var res plait.CheckResult
	if _, err := h.validate(tx); err != nil {
		return res, err
	}
	res.GasAllocated = proposalCost
	return res, nil
}

func (h CreateProposalHandler) Deliver(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.DeliverResult, error) {
	var res plait.DeliverResult
	msg, err := h.validate(tx)
	if err != nil {
		return res, err
	}
	id, err := h.engine.CreateProposal(ctx, db, msg.Proposer, msg.Action, msg.Expiration)
	if err != nil {
		return res, err
	}
	res.Data = orm.EncodeSequence(int64(id))
	res.Tags = proposalTags(id)
	return res, nil
}

func (h CreateProposalHandler) validate(tx plait.Tx) (*CreateProposalMsg, error) {
	msg, err := extractMsg(tx)
	if err != nil {
		return nil, err
	}
	createMsg, ok := msg.(*CreateProposalMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "%T", msg)
	}
	return createMsg, nil
}

// ApproveHandler records approvals on proposals.
type ApproveHandler struct {
	engine *Engine
}

var _ plait.Handler = ApproveHandler{}

func (h ApproveHandler) Check(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.CheckResult, error) {
	var res plait.CheckResult
	if _, err := h.validate(tx); err != nil {
		return res, err
	}
	res.GasAllocated = approvalCost
	return res, nil
}

func (h ApproveHandler) Deliver(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.DeliverResult, error) {
	var res plait.DeliverResult
	msg, err := h.validate(tx)
	if err != nil {
		return res, err
	}
	if err := h.engine.Approve(ctx, db, msg.Signer, msg.ProposalID); err != nil {
		return res, err
	}
	res.Tags = proposalTags(msg.ProposalID)
	return res, nil
}

func (h ApproveHandler) validate(tx plait.Tx) (*ApproveMsg, error) {
	msg, err := extractMsg(tx)
	if err != nil {
		return nil, err
	}
	approveMsg, ok := msg.(*ApproveMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "%T", msg)
	}
	return approveMsg, nil
}

// RevokeApprovalHandler withdraws approvals from proposals.
type RevokeApprovalHandler struct {
	engine *Engine
}

var _ plait.Handler = RevokeApprovalHandler{}

func (h RevokeApprovalHandler) Check(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.CheckResult, error) {
	var res plait.CheckResult
	if _, err := h.validate(tx); err != nil {
		return res, err
	}
	res.GasAllocated = approvalCost
	return res, nil
}

func (h RevokeApprovalHandler) Deliver(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.DeliverResult, error) {
	var res plait.DeliverResult
	msg, err := h.validate(tx)
	if err != nil {
		return res, err
	}
	if err := h.engine.RevokeApproval(ctx, db, msg.Signer, msg.ProposalID); err != nil {
		return res, err
	}
	res.Tags = proposalTags(msg.ProposalID)
	return res, nil
}

func (h RevokeApprovalHandler) validate(tx plait.Tx) (*RevokeApprovalMsg, error) {
	msg, err := extractMsg(tx)
	if err != nil {
		return nil, err
	}
	revokeMsg, ok := msg.(*RevokeApprovalMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "%T", msg)
	}
	return revokeMsg, nil
}

// ExecuteHandler dispatches proposal actions.
type ExecuteHandler struct {
	engine *Engine
}

var _ plait.Handler = ExecuteHandler{}

func (h ExecuteHandler) Check(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.CheckResult, error) {
	var res plait.CheckResult
	if _, err := h.validate(tx); err != nil {
		return res, err
	}
	res.GasAllocated = executeCost
	return res, nil
}

func (h ExecuteHandler) Deliver(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.DeliverResult, error) {
	var res plait.DeliverResult
	msg, err := h.validate(tx)
	if err != nil {
		return res, err
	}
	if err := h.engine.Execute(ctx, db, msg.Caller, msg.ProposalID); err != nil {
		return res, err
	}
	res.Tags = proposalTags(msg.ProposalID)
	return res, nil
}

func (h ExecuteHandler) validate(tx plait.Tx) (*ExecuteProposalMsg, error) {
	msg, err := extractMsg(tx)
	if err != nil {
		return nil, err
	}
	executeMsg, ok := msg.(*ExecuteProposalMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "%T", msg)
	}
	return executeMsg, nil
}

// SetTokenHandler configures the wallet funding account.
type SetTokenHandler struct {
	engine *Engine
}

var _ plait.Handler = SetTokenHandler{}

func (h SetTokenHandler) Check(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.CheckResult, error) {
	var res plait.CheckResult
	if _, err := h.validate(tx); err != nil {
		return res, err
	}
	res.GasAllocated = setTokenCost
	return res, nil
}

func (h SetTokenHandler) Deliver(ctx plait.Context, db plait.KVStore, tx plait.Tx) (plait.DeliverResult, error) {
	var res plait.DeliverResult
	msg, err := h.validate(tx)
	if err != nil {
		return res, err
	}
	if err := h.engine.SetToken(ctx, db, msg.Signer, msg.Token); err != nil {
		return res, err
	}
	return res, nil
}

func (h SetTokenHandler) validate(tx plait.Tx) (*SetTokenMsg, error) {
	msg, err := extractMsg(tx)
	if err != nil {
		return nil, err
	}
	tokenMsg, ok := msg.(*SetTokenMsg)
	if !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "%T", msg)
	}
	return tokenMsg, nil
}

// extractMsg pulls the message out of the transaction and runs the
// stateless sanity checks.
func extractMsg(tx plait.Tx) (plait.Msg, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "get message")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "empty message")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}

func proposalTags(id uint32) []plait.Tag {
	return []plait.Tag{
		plait.NewTag(TagProposalID, fmt.Sprint(id)),
	}
}
