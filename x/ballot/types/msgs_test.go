package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
)

func TestMsgs(t *testing.T) {
	t.Run("all messages route to the ballot module", func(t *testing.T) { msgsRouteToModule(t) })
	t.Run("grant message requires both addresses", func(t *testing.T) { grantRequiresBothAddresses(t) })
	t.Run("delegate message rejects missing addresses and self delegation", func(t *testing.T) { delegateRejectsSelfDelegation(t) })
	t.Run("vote message requires a sender", func(t *testing.T) { voteRequiresSender(t) })
	t.Run("the sender is the sole signer", func(t *testing.T) { senderSigns(t) })
}

func msgsRouteToModule(t *testing.T) {
	assert.Equal(t, RouterKey, MsgGrantVotingRight{}.Route())
	assert.Equal(t, RouterKey, MsgDelegate{}.Route())
	assert.Equal(t, RouterKey, MsgVote{}.Route())
}

func grantRequiresBothAddresses(t *testing.T) {
	assert.Error(t, MsgGrantVotingRight{Voter: voterA}.ValidateBasic())
	assert.Error(t, MsgGrantVotingRight{Sender: chair}.ValidateBasic())
	assert.NoError(t, MsgGrantVotingRight{Sender: chair, Voter: voterA}.ValidateBasic())
}

func delegateRejectsSelfDelegation(t *testing.T) {
	assert.Error(t, MsgDelegate{Delegate: voterB}.ValidateBasic())
	assert.Error(t, MsgDelegate{Sender: voterA}.ValidateBasic())

	err := MsgDelegate{Sender: voterA, Delegate: voterA}.ValidateBasic()
	assert.Error(t, err)
	assert.True(t, ErrSelfDelegation.Is(err))

	assert.NoError(t, MsgDelegate{Sender: voterA, Delegate: voterB}.ValidateBasic())
}

func voteRequiresSender(t *testing.T) {
	assert.Error(t, MsgVote{Proposal: 0}.ValidateBasic())

	// the proposal index is checked against the registry when the message is handled
	assert.NoError(t, MsgVote{Sender: voterA, Proposal: 999}.ValidateBasic())
}

func senderSigns(t *testing.T) {
	assert.Equal(t, []sdk.AccAddress{chair}, MsgGrantVotingRight{Sender: chair, Voter: voterA}.GetSigners())
	assert.Equal(t, []sdk.AccAddress{voterA}, MsgDelegate{Sender: voterA, Delegate: voterB}.GetSigners())
	assert.Equal(t, []sdk.AccAddress{voterA}, MsgVote{Sender: voterA}.GetSigners())
}
