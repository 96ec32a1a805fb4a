package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/ballot-network/ballot-core/x/ballot/types"
)

// RegisterInvariants registers all ballot invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "total-weight", TotalWeightInvariant(k))
}

// TotalWeightInvariant checks that all granted voting weight is accounted for:
// it either rests on accounts that have not voted yet or has been counted on proposals
func TotalWeightInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var resting, counted uint64
		for _, voter := range k.GetVoters(ctx) {
			if !voter.Record.Voted {
				resting += voter.Record.Weight
			}
		}
		for _, proposal := range k.GetProposals(ctx) {
			counted += proposal.VoteCount
		}

		total := k.GetTotalVotingWeight(ctx)
		broken := total != resting+counted

		return sdk.FormatInvariant(types.ModuleName, "total-weight", fmt.Sprintf(
			"total granted voting weight: %d\nweight resting on voters: %d\nweight counted on proposals: %d\n",
			total, resting, counted)), broken
	}
}
