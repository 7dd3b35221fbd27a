package multisig

import (
	"testing"

	"github.com/plait-network/plait"
	"github.com/plait-network/plait/coin"
	"github.com/plait-network/plait/plaittest"
	"github.com/plait-network/plait/plaittest/assert"
	"github.com/plait-network/plait/store"
)

func testProposal() *Proposal {
	return &Proposal{
		Proposer: plaittest.NewCondition().Address(),
		Action: &TransferAction{
			Destination: plaittest.NewCondition().Address(),
			Amount:      coin.NewCoin(3, 0, "IOV"),
		},
		Status:     ProposalStatusActive,
		Expiration: 50,
	}
}

func TestProposalBucketCreate(t *testing.T) {
	db := store.MemStore()
	b := NewProposalBucket()

	count, err := b.Count(db)
	assert.Nil(t, err)
	assert.Equal(t, uint32(0), count)

	for want := uint32(1); want <= 3; want++ {
		id, err := b.Create(db, testProposal())
		assert.Nil(t, err)
		assert.Equal(t, want, id)
	}

	count, err = b.Count(db)
	assert.Nil(t, err)
	assert.Equal(t, uint32(3), count)
}

func TestProposalBucketRoundtrip(t *testing.T) {
	db := store.MemStore()
	b := NewProposalBucket()

	proposal := testProposal()
	id, err := b.Create(db, proposal)
	assert.Nil(t, err)

	loaded, err := b.GetProposal(db, id)
	assert.Nil(t, err)
	assert.Equal(t, proposal, loaded)

	signer := plaittest.NewCondition().Address()
	assert.Nil(t, loaded.Approve(signer))
	assert.Nil(t, b.Update(db, loaded))

	again, err := b.GetProposal(db, id)
	assert.Nil(t, err)
	assert.Equal(t, []plait.Address{signer}, again.Approvals)
}

func TestProposalBucketMissing(t *testing.T) {
	db := store.MemStore()
	b := NewProposalBucket()

	_, err := b.GetProposal(db, 1)
	assert.IsErr(t, ErrProposalNotFound, err)
}

func TestWalletAddress(t *testing.T) {
	// The wallet address is deterministic and well formed.
	assert.Nil(t, WalletAddress().Validate())
	assert.Equal(t, WalletAddress(), WalletCondition().Address())
}
