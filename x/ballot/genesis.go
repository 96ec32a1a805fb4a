package ballot

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ballot-network/ballot-core/x/ballot/keeper"
	"github.com/ballot-network/ballot-core/x/ballot/types"
)

// InitGenesis initializes the ballot module's state from a provided genesis state
func InitGenesis(ctx sdk.Context, k keeper.Keeper, state types.GenesisState) {
	k.SetChairperson(ctx, state.Chairperson)
	k.SetProposals(ctx, state.Proposals)
	for _, voter := range state.Voters {
		k.SetVoter(ctx, voter.Address, voter.Record)
	}
	k.SetTotalVotingWeight(ctx, state.TotalVotingWeight)
}

// ExportGenesis returns the ballot module's genesis state
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) types.GenesisState {
	return types.GenesisState{
		Chairperson:       k.GetChairperson(ctx),
		Proposals:         k.GetProposals(ctx),
		Voters:            k.GetVoters(ctx),
		TotalVotingWeight: k.GetTotalVotingWeight(ctx),
	}
}
