package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = MsgVote{}

// MsgVote represents a message to put the sender's voting weight behind a proposal
type MsgVote struct {
	Sender   sdk.AccAddress
	Proposal uint64
}

// NewMsgVote - MsgVote constructor
func NewMsgVote(sender sdk.AccAddress, proposal uint64) sdk.Msg {
	return MsgVote{Sender: sender, Proposal: proposal}
}

// Route returns the route for this message
func (msg MsgVote) Route() string {
	return RouterKey
}

// Type returns the type of this message
func (msg MsgVote) Type() string {
	return "Vote"
}

// ValidateBasic executes a stateless message validation.
// The proposal index can only be checked against the registered proposals once state is available,
// so that check happens in the handler.
func (msg MsgVote) ValidateBasic() error {
	if msg.Sender == nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "missing sender")
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (msg MsgVote) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners returns the set of signers for this message
func (msg MsgVote) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Sender}
}
