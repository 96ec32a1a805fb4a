package ballot_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/ballot-network/ballot-core/testutils"
	"github.com/ballot-network/ballot-core/testutils/fake"
	"github.com/ballot-network/ballot-core/x/ballot"
	"github.com/ballot-network/ballot-core/x/ballot/keeper"
	"github.com/ballot-network/ballot-core/x/ballot/types"
)

var (
	k keeper.Keeper

	// sdk.VerifyAddressFormat demands addresses of exactly 20 bytes
	chairperson = sdk.AccAddress("chairperson---------")
)

func init() {
	k = keeper.NewKeeper(testutils.Codec(), sdk.NewKVStoreKey("testKey"))
}

func setup(proposals ...string) (sdk.Context, sdk.Handler) {
	ctx := sdk.NewContext(fake.NewMultiStore(), abci.Header{}, false, log.TestingLogger())
	ballot.InitGenesis(ctx, k, ballot.NewGenesisState(chairperson, proposals))
	return ctx, ballot.NewHandler(k)
}

func TestHandler(t *testing.T) {
	t.Run("a full ballot round decided through messages", func(t *testing.T) { fullRoundThroughMessages(t) })
	t.Run("error when the grant message is not sent by the chairperson", func(t *testing.T) { grantFromNonChairpersonRejected(t) })
	t.Run("error on unknown message type", func(t *testing.T) { unknownMessageTypeRejected(t) })
	t.Run("exported state after half a round imports cleanly again", func(t *testing.T) { exportedStateRoundTrips(t) })
}

func fullRoundThroughMessages(t *testing.T) {
	ctx, handler := setup("alpha", "beta")
	a := sdk.AccAddress(testutils.RandString(20))
	b := sdk.AccAddress(testutils.RandString(20))
	c := sdk.AccAddress(testutils.RandString(20))

	for _, voter := range []sdk.AccAddress{a, b, c} {
		res, err := handler(ctx, types.MsgGrantVotingRight{Sender: chairperson, Voter: voter})
		assert.NoError(t, err)
		assert.NotNil(t, res)
	}

	res, err := handler(ctx, types.MsgVote{Sender: chairperson, Proposal: 0})
	assert.NoError(t, err)
	assert.NotNil(t, res)

	res, err = handler(ctx, types.MsgDelegate{Sender: a, Delegate: b})
	assert.NoError(t, err)
	assert.NotNil(t, res)

	res, err = handler(ctx, types.MsgVote{Sender: b, Proposal: 1})
	assert.NoError(t, err)
	assert.NotNil(t, res)

	res, err = handler(ctx, types.MsgVote{Sender: c, Proposal: 1})
	assert.NoError(t, err)
	assert.NotNil(t, res)

	winner, err := k.WinningProposal(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), winner)

	name, err := k.WinnerName(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "beta", name)
}

func grantFromNonChairpersonRejected(t *testing.T) {
	ctx, handler := setup("alpha", "beta")
	voter := sdk.AccAddress(testutils.RandString(20))

	_, err := handler(ctx, types.MsgGrantVotingRight{Sender: voter, Voter: voter})

	assert.Error(t, err)
	assert.True(t, types.ErrNotAuthorized.Is(err))
	assert.Equal(t, types.Voter{}, k.GetVoter(ctx, voter))
}

func unknownMessageTypeRejected(t *testing.T) {
	ctx, handler := setup("alpha", "beta")

	_, err := handler(ctx, sdk.NewTestMsg())

	assert.Error(t, err)
}

func exportedStateRoundTrips(t *testing.T) {
	ctx, handler := setup("alpha", "beta")
	a := sdk.AccAddress(testutils.RandString(20))
	b := sdk.AccAddress(testutils.RandString(20))

	for _, voter := range []sdk.AccAddress{a, b} {
		_, err := handler(ctx, types.MsgGrantVotingRight{Sender: chairperson, Voter: voter})
		assert.NoError(t, err)
	}
	_, err := handler(ctx, types.MsgVote{Sender: chairperson, Proposal: 0})
	assert.NoError(t, err)
	_, err = handler(ctx, types.MsgDelegate{Sender: a, Delegate: b})
	assert.NoError(t, err)

	exported := ballot.ExportGenesis(ctx, k)
	assert.NoError(t, exported.Validate())

	ctx2 := sdk.NewContext(fake.NewMultiStore(), abci.Header{}, false, log.TestingLogger())
	ballot.InitGenesis(ctx2, k, exported)
	assert.Equal(t, exported, ballot.ExportGenesis(ctx2, k))

	// the round continues seamlessly on the imported state
	weight, err := k.Vote(ctx2, b, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), weight)
}
