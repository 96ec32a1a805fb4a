package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/ballot-network/ballot-core/testutils/fake"
	"github.com/ballot-network/ballot-core/x/ballot/types"
)

func TestQuerier(t *testing.T) {
	t.Run("query the winner of the ballot", func(t *testing.T) { queryWinnerReturnsLeadingProposal(t) })
	t.Run("query a single proposal by its index", func(t *testing.T) { queryProposalByIndex(t) })
	t.Run("error when querying a proposal with a malformed index", func(t *testing.T) { queryProposalMalformedIndexReturnError(t) })
	t.Run("query all proposals in registration order", func(t *testing.T) { queryAllProposals(t) })
	t.Run("query the chairperson", func(t *testing.T) { queryChairperson(t) })
	t.Run("query whether an account has voted", func(t *testing.T) { queryHasVotedFollowsRecord(t) })
	t.Run("voter record query is gated like the keeper lookup", func(t *testing.T) { queryVoterGated(t) })
	t.Run("error on unknown query endpoint", func(t *testing.T) { queryUnknownPathReturnError(t) })
}

func queryWinnerReturnsLeadingProposal(t *testing.T) {
	ctx := sdk.NewContext(fake.NewMultiStore(), abci.Header{}, false, log.TestingLogger())
	keeper.SetProposals(ctx, []types.Proposal{
		{Name: "alpha", VoteCount: 3},
		{Name: "beta", VoteCount: 5},
		{Name: "gamma", VoteCount: 5},
	})

	bz, err := NewQuerier(keeper)(ctx, []string{QueryWinner}, abci.RequestQuery{})
	assert.NoError(t, err)

	var winner types.QueryWinnerResponse
	types.ModuleCdc.MustUnmarshalJSON(bz, &winner)
	assert.Equal(t, types.QueryWinnerResponse{Index: 1, Name: "beta", VoteCount: 5}, winner)
}

func queryProposalByIndex(t *testing.T) {
	ctx := newBallot("alpha", "beta")

	bz, err := NewQuerier(keeper)(ctx, []string{QueryProposal, "1"}, abci.RequestQuery{})
	assert.NoError(t, err)

	var proposal types.Proposal
	types.ModuleCdc.MustUnmarshalJSON(bz, &proposal)
	assert.Equal(t, "beta", proposal.Name)

	_, err = NewQuerier(keeper)(ctx, []string{QueryProposal, "7"}, abci.RequestQuery{})
	assert.Error(t, err)
	assert.True(t, types.ErrInvalidProposal.Is(err))
}

func queryProposalMalformedIndexReturnError(t *testing.T) {
	ctx := newBallot("alpha", "beta")

	_, err := NewQuerier(keeper)(ctx, []string{QueryProposal, "first"}, abci.RequestQuery{})

	assert.Error(t, err)
	assert.True(t, types.ErrInvalidProposal.Is(err))
}

func queryAllProposals(t *testing.T) {
	ctx := newBallot("alpha", "beta", "gamma")

	bz, err := NewQuerier(keeper)(ctx, []string{QueryProposals}, abci.RequestQuery{})
	assert.NoError(t, err)

	var proposals []types.Proposal
	types.ModuleCdc.MustUnmarshalJSON(bz, &proposals)
	assert.Equal(t, []types.Proposal{
		{Name: "alpha"}, {Name: "beta"}, {Name: "gamma"},
	}, proposals)
}

func queryChairperson(t *testing.T) {
	ctx := newBallot("alpha", "beta")

	bz, err := NewQuerier(keeper)(ctx, []string{QueryChairperson}, abci.RequestQuery{})
	assert.NoError(t, err)

	var address sdk.AccAddress
	types.ModuleCdc.MustUnmarshalJSON(bz, &address)
	assert.Equal(t, chairperson, address)
}

func queryHasVotedFollowsRecord(t *testing.T) {
	ctx := newBallot("alpha", "beta")
	voter := randAddress()
	grant(t, ctx, voter)

	bz, err := NewQuerier(keeper)(ctx, []string{QueryHasVoted, voter.String()}, abci.RequestQuery{})
	assert.NoError(t, err)

	var voted bool
	types.ModuleCdc.MustUnmarshalJSON(bz, &voted)
	assert.False(t, voted)

	_, err = keeper.Vote(ctx, voter, 0)
	assert.NoError(t, err)

	bz, err = NewQuerier(keeper)(ctx, []string{QueryHasVoted, voter.String()}, abci.RequestQuery{})
	assert.NoError(t, err)
	types.ModuleCdc.MustUnmarshalJSON(bz, &voted)
	assert.True(t, voted)
}

func queryVoterGated(t *testing.T) {
	ctx := newBallot("alpha", "beta")
	voter := randAddress()
	grant(t, ctx, voter)

	bz, err := NewQuerier(keeper)(ctx, []string{QueryVoter, voter.String(), voter.String()}, abci.RequestQuery{})
	assert.NoError(t, err)

	var record types.Voter
	types.ModuleCdc.MustUnmarshalJSON(bz, &record)
	assert.Equal(t, uint64(1), record.Weight)

	bz, err = NewQuerier(keeper)(ctx, []string{QueryVoter, chairperson.String(), voter.String()}, abci.RequestQuery{})
	assert.NoError(t, err)
	types.ModuleCdc.MustUnmarshalJSON(bz, &record)
	assert.Equal(t, uint64(1), record.Weight)

	_, err = NewQuerier(keeper)(ctx, []string{QueryVoter, randAddress().String(), voter.String()}, abci.RequestQuery{})
	assert.Error(t, err)
	assert.True(t, types.ErrNotAuthorized.Is(err))
}

func queryUnknownPathReturnError(t *testing.T) {
	ctx := newBallot("alpha", "beta")

	_, err := NewQuerier(keeper)(ctx, []string{"tally"}, abci.RequestQuery{})

	assert.Error(t, err)
}
