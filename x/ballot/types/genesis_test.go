package types

import (
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
)

var (
	// sdk.VerifyAddressFormat demands addresses of exactly 20 bytes
	chair  = testAddress("chairperson")
	voterA = testAddress("voterA")
	voterB = testAddress("voterB")
	voterC = testAddress("voterC")
)

func testAddress(name string) sdk.AccAddress {
	return sdk.AccAddress(name + strings.Repeat("-", 20-len(name)))
}

func TestGenesisState(t *testing.T) {
	t.Run("a fresh ballot state is valid", func(t *testing.T) { freshStateIsValid(t) })
	t.Run("the default state is not ready to launch", func(t *testing.T) { defaultStateIsInvalid(t) })
	t.Run("error without a chairperson", func(t *testing.T) { missingChairpersonReturnError(t) })
	t.Run("error without proposals", func(t *testing.T) { missingProposalsReturnError(t) })
	t.Run("proposal names are capped, not truncated", func(t *testing.T) { overlongProposalNameReturnError(t) })
	t.Run("error on an empty proposal name", func(t *testing.T) { emptyProposalNameReturnError(t) })
	t.Run("error on duplicate voter entries", func(t *testing.T) { duplicateVoterReturnError(t) })
	t.Run("error when the chairperson holds no voting weight", func(t *testing.T) { weightlessChairpersonReturnError(t) })
	t.Run("error on a delegate target without the voted mark", func(t *testing.T) { delegateWithoutVotedMarkReturnError(t) })
	t.Run("error on a direct vote outside the proposal range", func(t *testing.T) { voteOutOfRangeReturnError(t) })
	t.Run("error on a delegation cycle", func(t *testing.T) { delegationCycleReturnError(t) })
	t.Run("error when granted weight is not conserved", func(t *testing.T) { unconservedWeightReturnError(t) })
	t.Run("a state exported mid round is valid", func(t *testing.T) { midRoundStateIsValid(t) })
	t.Run("a delegation chain may end in an account without a record", func(t *testing.T) { chainEndingOffLedgerIsValid(t) })
}

func freshStateIsValid(t *testing.T) {
	state := NewGenesisState(chair, []string{"alpha", "beta"})

	assert.NoError(t, state.Validate())
	assert.Equal(t, uint64(1), state.TotalVotingWeight)
	assert.Equal(t, uint64(1), state.Voters[0].Record.Weight)
}

func defaultStateIsInvalid(t *testing.T) {
	assert.Error(t, DefaultGenesisState().Validate())
}

func missingChairpersonReturnError(t *testing.T) {
	state := NewGenesisState(chair, []string{"alpha"})
	state.Chairperson = nil

	assert.Error(t, state.Validate())
}

func missingProposalsReturnError(t *testing.T) {
	assert.Error(t, NewGenesisState(chair, nil).Validate())
}

func overlongProposalNameReturnError(t *testing.T) {
	longest := strings.Repeat("x", MaxProposalNameLength)
	assert.NoError(t, NewGenesisState(chair, []string{longest}).Validate())

	assert.Error(t, NewGenesisState(chair, []string{longest + "x"}).Validate())
}

func emptyProposalNameReturnError(t *testing.T) {
	assert.Error(t, NewGenesisState(chair, []string{"alpha", ""}).Validate())
}

func duplicateVoterReturnError(t *testing.T) {
	state := NewGenesisState(chair, []string{"alpha"})
	state.Voters = append(state.Voters, GenesisVoter{Address: chair, Record: Voter{Weight: 1}})

	assert.Error(t, state.Validate())
}

func weightlessChairpersonReturnError(t *testing.T) {
	state := NewGenesisState(chair, []string{"alpha"})
	state.Voters = []GenesisVoter{{Address: chair, Record: Voter{}}}
	state.TotalVotingWeight = 0

	assert.Error(t, state.Validate())
}

func delegateWithoutVotedMarkReturnError(t *testing.T) {
	state := NewGenesisState(chair, []string{"alpha"})
	state.Voters = append(state.Voters, GenesisVoter{
		Address: voterA,
		Record:  Voter{Weight: 1, Delegate: voterB},
	})

	assert.Error(t, state.Validate())
}

func voteOutOfRangeReturnError(t *testing.T) {
	state := NewGenesisState(chair, []string{"alpha", "beta"})
	state.Voters = append(state.Voters, GenesisVoter{
		Address: voterA,
		Record:  Voter{Weight: 1, Voted: true, Vote: 2},
	})

	assert.Error(t, state.Validate())
}

func delegationCycleReturnError(t *testing.T) {
	state := NewGenesisState(chair, []string{"alpha"})
	state.Voters = append(state.Voters,
		GenesisVoter{Address: voterA, Record: Voter{Weight: 1, Voted: true, Delegate: voterB}},
		GenesisVoter{Address: voterB, Record: Voter{Weight: 1, Voted: true, Delegate: voterA}},
	)

	assert.Error(t, state.Validate())
}

func unconservedWeightReturnError(t *testing.T) {
	state := NewGenesisState(chair, []string{"alpha"})
	state.TotalVotingWeight = 5

	assert.Error(t, state.Validate())
}

func midRoundStateIsValid(t *testing.T) {
	state := GenesisState{
		Chairperson: chair,
		Proposals:   []Proposal{{Name: "alpha", VoteCount: 1}, {Name: "beta"}},
		Voters: []GenesisVoter{
			{Address: chair, Record: Voter{Weight: 1, Voted: true, Vote: 0}},
			{Address: voterA, Record: Voter{Weight: 1, Voted: true, Delegate: voterB}},
			{Address: voterB, Record: Voter{Weight: 2}},
		},
		TotalVotingWeight: 3,
	}

	assert.NoError(t, state.Validate())
}

func chainEndingOffLedgerIsValid(t *testing.T) {
	state := GenesisState{
		Chairperson: chair,
		Proposals:   []Proposal{{Name: "alpha"}},
		Voters: []GenesisVoter{
			{Address: chair, Record: Voter{Weight: 1}},
			{Address: voterA, Record: Voter{Weight: 1, Voted: true, Delegate: voterC}},
		},
		TotalVotingWeight: 1,
	}

	assert.NoError(t, state.Validate())
}
