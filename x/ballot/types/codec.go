package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers concrete types on codec
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterConcrete(MsgGrantVotingRight{}, "ballot/GrantVotingRight", nil)
	cdc.RegisterConcrete(MsgDelegate{}, "ballot/Delegate", nil)
	cdc.RegisterConcrete(MsgVote{}, "ballot/Vote", nil)
}

// ModuleCdc defines the module codec
var ModuleCdc *codec.Codec

func init() {
	ModuleCdc = codec.New()
	RegisterCodec(ModuleCdc)
	codec.RegisterCrypto(ModuleCdc)
	ModuleCdc.Seal()
}
