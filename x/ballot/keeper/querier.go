package keeper

import (
	"fmt"
	"strconv"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/ballot-network/ballot-core/x/ballot/types"
)

// Query labels
const (
	QueryWinner      = "winner"
	QueryProposal    = "proposal"
	QueryProposals   = "proposals"
	QueryChairperson = "chairperson"
	QueryHasVoted    = "hasVoted"
	QueryVoter       = "voter"
)

// NewQuerier returns a new querier for the ballot module
func NewQuerier(k Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, _ abci.RequestQuery) ([]byte, error) {
		switch path[0] {
		case QueryWinner:
			return queryWinner(ctx, k)
		case QueryProposal:
			return queryProposal(ctx, k, path[1])
		case QueryProposals:
			return toJSON(k.GetProposals(ctx))
		case QueryChairperson:
			return toJSON(k.GetChairperson(ctx))
		case QueryHasVoted:
			return queryHasVoted(ctx, k, path[1])
		case QueryVoter:
			return queryVoter(ctx, k, path[1], path[2])
		default:
			return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, fmt.Sprintf("unknown ballot query endpoint: %s", path[0]))
		}
	}
}

func queryWinner(ctx sdk.Context, k Keeper) ([]byte, error) {
	winner, err := k.WinningProposal(ctx)
	if err != nil {
		return nil, err
	}
	proposal, err := k.GetProposal(ctx, winner)
	if err != nil {
		return nil, err
	}
	return toJSON(types.QueryWinnerResponse{Index: winner, Name: proposal.Name, VoteCount: proposal.VoteCount})
}

func queryProposal(ctx sdk.Context, k Keeper, index string) ([]byte, error) {
	i, err := strconv.ParseUint(index, 10, 64)
	if err != nil {
		return nil, sdkerrors.Wrap(types.ErrInvalidProposal, index)
	}
	proposal, err := k.GetProposal(ctx, i)
	if err != nil {
		return nil, err
	}
	return toJSON(proposal)
}

func queryHasVoted(ctx sdk.Context, k Keeper, voter string) ([]byte, error) {
	address, err := sdk.AccAddressFromBech32(voter)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, voter)
	}
	return toJSON(k.HasVoted(ctx, address))
}

func queryVoter(ctx sdk.Context, k Keeper, requester string, voter string) ([]byte, error) {
	requesterAddr, err := sdk.AccAddressFromBech32(requester)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, requester)
	}
	voterAddr, err := sdk.AccAddressFromBech32(voter)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, voter)
	}
	record, err := k.GetVoterInfo(ctx, requesterAddr, voterAddr)
	if err != nil {
		return nil, err
	}
	return toJSON(record)
}

func toJSON(value interface{}) ([]byte, error) {
	return codec.MarshalJSONIndent(types.ModuleCdc, value)
}
