package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Code 1 is a reserved code for internal errors and should not be used for anything else
var (
	_ = sdkerrors.Register(ModuleName, 1, "internal error")

	// ErrNotAuthorized is returned when an operation reserved for the chairperson is attempted by anyone else
	ErrNotAuthorized = sdkerrors.Register(ModuleName, 2, "not authorized")

	// ErrAlreadyHasRight is returned when granting a voting right to an account that already holds weight
	ErrAlreadyHasRight = sdkerrors.Register(ModuleName, 3, "account already has the right to vote")

	// ErrNoVotingRight is returned when an account without weight tries to vote or delegate
	ErrNoVotingRight = sdkerrors.Register(ModuleName, 4, "account has no right to vote")

	// ErrAlreadyVoted is returned when an account that has already voted or delegated tries to do either again
	ErrAlreadyVoted = sdkerrors.Register(ModuleName, 5, "account already voted")

	// ErrSelfDelegation is returned when an account tries to delegate to itself
	ErrSelfDelegation = sdkerrors.Register(ModuleName, 6, "delegation to self is not allowed")

	// ErrDelegationCycle is returned when a delegation would close a loop in the delegation chain
	ErrDelegationCycle = sdkerrors.Register(ModuleName, 7, "delegation would create a cycle")

	// ErrInvalidProposal is returned when a proposal index is outside the registered range
	ErrInvalidProposal = sdkerrors.Register(ModuleName, 8, "no proposal with this index")
)
