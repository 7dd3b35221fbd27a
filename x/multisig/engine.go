package multisig

import (
	"github.com/plait-network/plait"
	"github.com/plait-network/plait/coin"
	"github.com/plait-network/plait/errors"
	"github.com/plait-network/plait/x"
)

// CoinMover is the token transfer capability of the host ledger.
// Moving coins must either fully succeed or fail the enclosing call,
// for example on insufficient balance.
type CoinMover interface {
	MoveCoins(db plait.KVStore, src plait.Address, dest plait.Address, amount coin.Coin) error
}

// Engine implements the wallet policy: it validates preconditions,
// mutates proposals and, once a quorum approves, dispatches the
// proposed action. All state the engine owns is reached through the
// provided store; the engine itself is stateless and safe to share.
type Engine struct {
	auth   x.Authenticator
	bucket ProposalBucket
	mover  CoinMover
}

// NewEngine returns an engine using the given authorization gate and
// token transfer capability.
func NewEngine(auth x.Authenticator, mover CoinMover) *Engine {
	return &Engine{
		auth:   auth,
		bucket: NewProposalBucket(),
		mover:  mover,
	}
}

// Initialize sets up the wallet with the initial signers and approval
// threshold. It can succeed at most once.
func (e *Engine) Initialize(db plait.KVStore, signers []plait.Address, threshold uint32) error {
	switch ok, err := confExists(db); {
	case err != nil:
		return errors.Wrap(err, "configuration lookup")
	case ok:
		return errors.Wrap(ErrAlreadyInitialized, "configuration exists")
	}
	conf := Configuration{
		Signers:   signers,
		Threshold: threshold,
	}
	// saveConf validates: empty set, duplicates and threshold bounds
	// are rejected here.
	return saveConf(db, &conf)
}

// CreateProposal stores a new proposal for the given action and returns
// its id. Only current signers may propose. The action content is not
// validated against the configuration here; that happens when the
// proposal executes.
func (e *Engine) CreateProposal(ctx plait.Context, db plait.KVStore, proposer plait.Address, action Action, expiration int64) (uint32, error) {
	conf, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	if err := e.authorized(ctx, conf, proposer); err != nil {
		return 0, err
	}
	if action == nil {
		return 0, errors.Wrap(errors.ErrInput, "missing action")
	}

	proposal := Proposal{
		Proposer:   proposer,
		Action:     action,
		Approvals:  nil,
		Status:     ProposalStatusActive,
		Expiration: expiration,
	}
	id, err := e.bucket.Create(db, &proposal)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Approve records the signer's approval on an active, unexpired
// proposal. Each signer can approve once.
func (e *Engine) Approve(ctx plait.Context, db plait.KVStore, signer plait.Address, proposalID uint32) error {
	proposal, _, err := e.loadActive(ctx, db, signer, proposalID)
	if err != nil {
		return err
	}
	if err := proposal.Approve(signer); err != nil {
		return err
	}
	return e.bucket.Update(db, proposal)
}

// RevokeApproval withdraws a previously given approval. A signer may
// revoke and re-approve any number of times while the proposal is
// active and unexpired.
func (e *Engine) RevokeApproval(ctx plait.Context, db plait.KVStore, signer plait.Address, proposalID uint32) error {
	proposal, _, err := e.loadActive(ctx, db, signer, proposalID)
	if err != nil {
		return err
	}
	if err := proposal.Revoke(signer); err != nil {
		return err
	}
	return e.bucket.Update(db, proposal)
}

// Execute dispatches the proposal action once enough approvals were
// collected. Any current signer can trigger execution. The threshold is
// read at execution time, so configuration changes between approval and
// execution move the bar.
//
// Only a successful dispatch flips the proposal to Executed. When an
// UpdateSigners action carries an illegal configuration the call fails
// and the proposal stays active, so a corrected configuration can be
// proposed and the old one retried or left to expire.
func (e *Engine) Execute(ctx plait.Context, db plait.KVStore, caller plait.Address, proposalID uint32) error {
	proposal, conf, err := e.loadActive(ctx, db, caller, proposalID)
	if err != nil {
		return err
	}
	if uint32(len(proposal.Approvals)) < conf.Threshold {
		return errors.Wrapf(ErrThresholdNotMet, "%d of %d", len(proposal.Approvals), conf.Threshold)
	}

	switch action := proposal.Action.(type) {
	case *TransferAction:
		src := conf.Token
		if len(src) == 0 {
			src = WalletAddress()
		}
		if err := e.mover.MoveCoins(db, src, action.Destination, action.Amount); err != nil {
			return errors.Wrap(err, "move coins")
		}
	case *UpdateSignersAction:
		next := Configuration{
			Signers:   action.Signers,
			Threshold: action.Threshold,
			Token:     conf.Token,
		}
		if err := saveConf(db, &next); err != nil {
			return err
		}
	default:
		return errors.Wrapf(errors.ErrHuman, "unknown action type %T", proposal.Action)
	}

	proposal.Status = ProposalStatusExecuted
	return e.bucket.Update(db, proposal)
}

// SetToken stores the account that holds the wallet funds used by
// transfer actions. Any current signer may configure it.
func (e *Engine) SetToken(ctx plait.Context, db plait.KVStore, signer plait.Address, token plait.Address) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if err := e.authorized(ctx, conf, signer); err != nil {
		return err
	}
	conf.Token = token
	return saveConf(db, conf)
}

// GetProposal returns the stored proposal. Executed proposals remain
// readable forever.
func (e *Engine) GetProposal(db plait.ReadOnlyKVStore, proposalID uint32) (*Proposal, error) {
	if _, err := loadConf(db); err != nil {
		return nil, err
	}
	return e.bucket.GetProposal(db, proposalID)
}

// GetSigners returns the current signer set.
func (e *Engine) GetSigners(db plait.ReadOnlyKVStore) ([]plait.Address, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	return conf.Signers, nil
}

// GetThreshold returns the current approval threshold.
func (e *Engine) GetThreshold(db plait.ReadOnlyKVStore) (uint32, error) {
	conf, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	return conf.Threshold, nil
}

// GetProposalCount returns how many proposals were ever created,
// which is also the highest assigned proposal id.
func (e *Engine) GetProposalCount(db plait.ReadOnlyKVStore) (uint32, error) {
	if _, err := loadConf(db); err != nil {
		return 0, err
	}
	return e.bucket.Count(db)
}

// authorized ensures the call was authorized as the given identity and
// that the identity is a current signer.
func (e *Engine) authorized(ctx plait.Context, conf *Configuration, addr plait.Address) error {
	if !e.auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s did not authorize this call", addr)
	}
	if !conf.IsSigner(addr) {
		return errors.Wrapf(ErrNotASigner, "%s", addr)
	}
	return nil
}

// loadActive performs the checks shared by approve, revoke and execute:
// initialization, authorization, signer membership, proposal existence,
// active status and non-expiry. It returns the proposal together with
// the current configuration.
func (e *Engine) loadActive(ctx plait.Context, db plait.KVStore, signer plait.Address, proposalID uint32) (*Proposal, *Configuration, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if err := e.authorized(ctx, conf, signer); err != nil {
		return nil, nil, err
	}
	proposal, err := e.bucket.GetProposal(db, proposalID)
	if err != nil {
		return nil, nil, err
	}
	if proposal.Status == ProposalStatusExecuted {
		return nil, nil, errors.Wrapf(ErrAlreadyExecuted, "id %d", proposalID)
	}
	height, err := plait.MustHeight(ctx)
	if err != nil {
		return nil, nil, err
	}
	if height > proposal.Expiration {
		return nil, nil, errors.Wrapf(ErrProposalExpired, "height %d is past %d", height, proposal.Expiration)
	}
	return proposal, conf, nil
}
