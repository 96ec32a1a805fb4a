package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = MsgGrantVotingRight{}

// MsgGrantVotingRight represents a message to grant an account the right to vote
type MsgGrantVotingRight struct {
	Sender sdk.AccAddress
	Voter  sdk.AccAddress
}

// NewMsgGrantVotingRight - MsgGrantVotingRight constructor
func NewMsgGrantVotingRight(sender sdk.AccAddress, voter sdk.AccAddress) sdk.Msg {
	return MsgGrantVotingRight{Sender: sender, Voter: voter}
}

// Route returns the route for this message
func (msg MsgGrantVotingRight) Route() string {
	return RouterKey
}

// Type returns the type of this message
func (msg MsgGrantVotingRight) Type() string {
	return "GrantVotingRight"
}

// ValidateBasic executes a stateless message validation
func (msg MsgGrantVotingRight) ValidateBasic() error {
	if msg.Sender == nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "missing sender")
	}
	if msg.Voter == nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "missing voter")
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (msg MsgGrantVotingRight) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners returns the set of signers for this message
func (msg MsgGrantVotingRight) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Sender}
}
