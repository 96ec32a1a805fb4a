package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MaxProposalNameLength is the upper bound on the byte length of a proposal name.
// Longer names are rejected outright instead of being truncated.
const MaxProposalNameLength = 32

// Proposal is a single ballot option. Proposals are identified by the zero-based
// index under which they were registered at genesis; that order never changes.
type Proposal struct {
	Name      string
	VoteCount uint64
}

// NewProposal creates a proposal with no accumulated weight
func NewProposal(name string) Proposal {
	return Proposal{Name: name}
}

// Validate checks that the proposal name is well formed
func (p Proposal) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("proposal name must not be empty")
	}
	if len(p.Name) > MaxProposalNameLength {
		return fmt.Errorf("proposal name %.10q... exceeds %d bytes", p.Name, MaxProposalNameLength)
	}
	return nil
}

// Voter is the voting record of a single account. Accounts without a stored record
// read as the zero value, i.e. no weight, not voted. Weight accumulates delegated
// weight on top of the granted right and is never reduced; Voted is a one-way flag
// that is never cleared. Vote is only meaningful when the account voted directly,
// that is when Voted is set and Delegate is empty.
type Voter struct {
	Weight   uint64
	Voted    bool
	Delegate sdk.AccAddress
	Vote     uint64
}

// HasDelegated returns true if the voter passed its weight on to another account
func (v Voter) HasDelegated() bool {
	return !v.Delegate.Empty()
}
