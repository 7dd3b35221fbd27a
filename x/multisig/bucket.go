package multisig

import (
	"github.com/plait-network/plait"
	"github.com/plait-network/plait/errors"
	"github.com/plait-network/plait/gconf"
	"github.com/plait-network/plait/orm"
)

const (
	// packageName scopes the configuration singleton and the wallet
	// condition.
	packageName = "multisig"

	// bucketName is where we store the proposals.
	bucketName = "proposals"
	// sequenceName is the auto-increment id counter for proposals.
	sequenceName = "id"
)

// WalletCondition is the condition the wallet account is derived from.
// Funds held by the wallet live at this address unless a token account
// was configured.
func WalletCondition() plait.Condition {
	return plait.NewCondition(packageName, "wallet", []byte("primary"))
}

// WalletAddress is a shortcut for WalletCondition().Address().
func WalletAddress() plait.Address {
	return WalletCondition().Address()
}

// ProposalBucket is a type-safe wrapper around the proposals bucket,
// including the id sequence. Proposals are append-only; the bucket is
// never asked to delete.
type ProposalBucket struct {
	orm.Bucket
	idSeq orm.Sequence
}

// NewProposalBucket initializes a ProposalBucket with the default name.
func NewProposalBucket() ProposalBucket {
	b := orm.NewBucket(bucketName)
	return ProposalBucket{
		Bucket: b,
		idSeq:  b.Sequence(sequenceName),
	}
}

// proposalKey is the primary key of a proposal inside the bucket.
func proposalKey(id uint32) []byte {
	return orm.EncodeSequence(int64(id))
}

// Create allocates the next proposal id, stamps it on the proposal and
// persists it. It returns the assigned id.
func (b ProposalBucket) Create(db plait.KVStore, p *Proposal) (uint32, error) {
	id, err := b.idSeq.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "proposal sequence")
	}
	p.ID = uint32(id)
	if err := b.Put(db, proposalKey(p.ID), p); err != nil {
		return 0, errors.Wrap(err, "save proposal")
	}
	return p.ID, nil
}

// GetProposal returns the proposal with the given id.
func (b ProposalBucket) GetProposal(db plait.ReadOnlyKVStore, id uint32) (*Proposal, error) {
	var p Proposal
	switch err := b.One(db, proposalKey(id), &p); {
	case err == nil:
		return &p, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrProposalNotFound, "id %d", id)
	default:
		return nil, errors.Wrap(err, "bucket lookup")
	}
}

// Update overwrites the stored state of the proposal.
func (b ProposalBucket) Update(db plait.KVStore, p *Proposal) error {
	return b.Put(db, proposalKey(p.ID), p)
}

// Count returns how many proposals were ever created.
func (b ProposalBucket) Count(db plait.ReadOnlyKVStore) (uint32, error) {
	n, _, err := b.idSeq.Latest(db)
	if err != nil {
		return 0, errors.Wrap(err, "proposal sequence")
	}
	return uint32(n), nil
}

// loadConf returns the current wallet configuration, or
// ErrNotInitialized when initialize never ran.
func loadConf(db plait.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, packageName, &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(ErrNotInitialized, "no configuration")
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}

// saveConf validates and persists the wallet configuration.
func saveConf(db plait.KVStore, conf *Configuration) error {
	return gconf.Save(db, packageName, conf)
}

// confExists reports whether the wallet was initialized.
func confExists(db plait.KVStore) (bool, error) {
	return gconf.Exists(db, packageName)
}
