package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState represents the complete state of the ballot. Exporting a running chain
// produces a state with accumulated votes that can be imported again as is.
type GenesisState struct {
	Chairperson       sdk.AccAddress
	Proposals         []Proposal
	Voters            []GenesisVoter
	TotalVotingWeight uint64
}

// GenesisVoter associates a voter record with its account address
type GenesisVoter struct {
	Address sdk.AccAddress
	Record  Voter
}

// NewGenesisState creates the state of a fresh ballot: the given proposals with no
// accumulated weight and the chairperson holding the single granted voting right
func NewGenesisState(chairperson sdk.AccAddress, proposalNames []string) GenesisState {
	proposals := make([]Proposal, 0, len(proposalNames))
	for _, name := range proposalNames {
		proposals = append(proposals, NewProposal(name))
	}
	return GenesisState{
		Chairperson:       chairperson,
		Proposals:         proposals,
		Voters:            []GenesisVoter{{Address: chairperson, Record: Voter{Weight: 1}}},
		TotalVotingWeight: 1,
	}
}

// DefaultGenesisState returns an empty state. It does not pass validation on purpose:
// a ballot without a chairperson and proposals is misconfigured,
// so both must be set before launch (see the set-genesis-ballot command)
func DefaultGenesisState() GenesisState {
	return GenesisState{}
}

// Validate checks the ballot state for consistency
func (state GenesisState) Validate() error {
	if err := sdk.VerifyAddressFormat(state.Chairperson); err != nil {
		return fmt.Errorf("chairperson not set: %v", err)
	}
	if len(state.Proposals) == 0 {
		return fmt.Errorf("ballot needs at least one proposal")
	}
	for i, proposal := range state.Proposals {
		if err := proposal.Validate(); err != nil {
			return fmt.Errorf("invalid proposal %d: %v", i, err)
		}
	}

	voters := make(map[string]Voter, len(state.Voters))
	for _, voter := range state.Voters {
		if err := sdk.VerifyAddressFormat(voter.Address); err != nil {
			return fmt.Errorf("invalid voter address: %v", err)
		}
		if _, ok := voters[voter.Address.String()]; ok {
			return fmt.Errorf("duplicate entry for voter %s", voter.Address)
		}
		if err := validateVoter(voter.Record, uint64(len(state.Proposals))); err != nil {
			return fmt.Errorf("invalid record for voter %s: %v", voter.Address, err)
		}
		voters[voter.Address.String()] = voter.Record
	}

	if record, ok := voters[state.Chairperson.String()]; !ok || record.Weight == 0 {
		return fmt.Errorf("chairperson %s must hold voting weight", state.Chairperson)
	}

	if err := validateDelegationChains(voters); err != nil {
		return err
	}

	// all granted weight either rests on accounts that have not voted yet or is counted on proposals
	var resting, counted uint64
	for _, record := range voters {
		if !record.Voted {
			resting += record.Weight
		}
	}
	for _, proposal := range state.Proposals {
		counted += proposal.VoteCount
	}
	if state.TotalVotingWeight != resting+counted {
		return fmt.Errorf("voting weight is not conserved: %d granted, %d accounted for", state.TotalVotingWeight, resting+counted)
	}

	return nil
}

func validateVoter(record Voter, proposalCount uint64) error {
	if record.HasDelegated() && !record.Voted {
		return fmt.Errorf("account with a delegate must be marked as voted")
	}
	if record.Voted && !record.HasDelegated() && record.Vote >= proposalCount {
		return fmt.Errorf("vote for unknown proposal %d", record.Vote)
	}
	return nil
}

func validateDelegationChains(voters map[string]Voter) error {
	for start, record := range voters {
		seen := map[string]bool{start: true}
		for record.HasDelegated() {
			next := record.Delegate.String()
			if seen[next] {
				return fmt.Errorf("delegation cycle involving %s", start)
			}
			seen[next] = true

			// chains may end in accounts without a stored record
			record = voters[next]
		}
	}
	return nil
}
