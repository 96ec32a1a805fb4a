package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ sdk.Msg = MsgDelegate{}

// MsgDelegate represents a message to pass the sender's voting weight on to another account
type MsgDelegate struct {
	Sender   sdk.AccAddress
	Delegate sdk.AccAddress
}

// NewMsgDelegate - MsgDelegate constructor
func NewMsgDelegate(sender sdk.AccAddress, delegate sdk.AccAddress) sdk.Msg {
	return MsgDelegate{Sender: sender, Delegate: delegate}
}

// Route returns the route for this message
func (msg MsgDelegate) Route() string {
	return RouterKey
}

// Type returns the type of this message
func (msg MsgDelegate) Type() string {
	return "Delegate"
}

// ValidateBasic executes a stateless message validation
func (msg MsgDelegate) ValidateBasic() error {
	if msg.Sender == nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "missing sender")
	}
	if msg.Delegate == nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "missing delegate")
	}
	if msg.Delegate.Equals(msg.Sender) {
		return ErrSelfDelegation
	}
	return nil
}

// GetSignBytes returns the message bytes that need to be signed
func (msg MsgDelegate) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// GetSigners returns the set of signers for this message
func (msg MsgDelegate) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.Sender}
}
