/*
Package keeper manages the state of a single-round ballot: the proposals fixed at
genesis, the voting record of every account and the total granted voting weight.
All rules for granting rights, delegating and voting live here.
*/
package keeper

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/ballot-network/ballot-core/x/ballot/types"
)

const (
	voterPrefix    = "voter_"
	proposalPrefix = "proposal_"
)

var (
	chairpersonKey   = []byte("chairperson")
	proposalCountKey = []byte("proposalCount")
	totalWeightKey   = []byte("totalWeight")
)

// Keeper - the ballot module's keeper
type Keeper struct {
	storeKey sdk.StoreKey
	cdc      *codec.Codec
}

// NewKeeper - keeper constructor
func NewKeeper(cdc *codec.Codec, key sdk.StoreKey) Keeper {
	return Keeper{cdc: cdc, storeKey: key}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// SetChairperson sets the chairperson of the ballot.
// The chairperson is fixed at genesis and never changes afterwards.
func (k Keeper) SetChairperson(ctx sdk.Context, chairperson sdk.AccAddress) {
	ctx.KVStore(k.storeKey).Set(chairpersonKey, chairperson)
}

// GetChairperson returns the chairperson of the ballot
func (k Keeper) GetChairperson(ctx sdk.Context) sdk.AccAddress {
	return ctx.KVStore(k.storeKey).Get(chairpersonKey)
}

// SetProposals registers the ordered list of proposals.
// Proposals are fixed at genesis, so neither their number nor their order ever changes.
func (k Keeper) SetProposals(ctx sdk.Context, proposals []types.Proposal) {
	store := ctx.KVStore(k.storeKey)
	for i, proposal := range proposals {
		store.Set(proposalKey(uint64(i)), k.cdc.MustMarshalBinaryLengthPrefixed(proposal))
	}
	store.Set(proposalCountKey, k.cdc.MustMarshalBinaryLengthPrefixed(uint64(len(proposals))))
}

// GetProposalCount returns the number of registered proposals
func (k Keeper) GetProposalCount(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(proposalCountKey)
	if bz == nil {
		return 0
	}
	var count uint64
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &count)
	return count
}

// GetProposal returns the proposal registered under the given index
func (k Keeper) GetProposal(ctx sdk.Context, index uint64) (types.Proposal, error) {
	if index >= k.GetProposalCount(ctx) {
		return types.Proposal{}, sdkerrors.Wrapf(types.ErrInvalidProposal, "index %d", index)
	}
	return k.getProposal(ctx, index), nil
}

// GetProposals returns all proposals in registration order
func (k Keeper) GetProposals(ctx sdk.Context) []types.Proposal {
	count := k.GetProposalCount(ctx)
	proposals := make([]types.Proposal, 0, count)
	for i := uint64(0); i < count; i++ {
		proposals = append(proposals, k.getProposal(ctx, i))
	}
	return proposals
}

// WinningProposal returns the index of the proposal that accumulated the most voting weight.
// Ties resolve to the proposal that was registered first.
func (k Keeper) WinningProposal(ctx sdk.Context) (uint64, error) {
	count := k.GetProposalCount(ctx)
	if count == 0 {
		return 0, fmt.Errorf("no proposals registered")
	}

	var winner, winningCount uint64
	for i := uint64(0); i < count; i++ {
		if proposal := k.getProposal(ctx, i); proposal.VoteCount > winningCount {
			winningCount = proposal.VoteCount
			winner = i
		}
	}
	return winner, nil
}

// WinnerName returns the name of the winning proposal
func (k Keeper) WinnerName(ctx sdk.Context) (string, error) {
	winner, err := k.WinningProposal(ctx)
	if err != nil {
		return "", err
	}
	return k.getProposal(ctx, winner).Name, nil
}

// GiveRightToVote grants the given account the right to cast one vote.
// Only the chairperson may grant voting rights, and only to accounts that hold
// no weight and have not voted.
func (k Keeper) GiveRightToVote(ctx sdk.Context, sender sdk.AccAddress, voter sdk.AccAddress) error {
	if err := k.requireChairperson(ctx, sender); err != nil {
		return err
	}

	record := k.GetVoter(ctx, voter)
	if record.Voted {
		return sdkerrors.Wrap(types.ErrAlreadyVoted, voter.String())
	}
	if record.Weight != 0 {
		return sdkerrors.Wrap(types.ErrAlreadyHasRight, voter.String())
	}

	record.Weight = 1
	k.SetVoter(ctx, voter, record)
	k.SetTotalVotingWeight(ctx, k.GetTotalVotingWeight(ctx)+1)
	return nil
}

// Vote puts the full current weight of the sender behind the given proposal and
// returns the weight that was counted. The proposal index is validated before the
// voter record is touched, so a failed vote leaves no trace.
func (k Keeper) Vote(ctx sdk.Context, sender sdk.AccAddress, proposal uint64) (uint64, error) {
	record := k.GetVoter(ctx, sender)
	if err := requireVotingRight(record, sender); err != nil {
		return 0, err
	}
	if proposal >= k.GetProposalCount(ctx) {
		return 0, sdkerrors.Wrapf(types.ErrInvalidProposal, "index %d", proposal)
	}

	record.Voted = true
	record.Vote = proposal
	k.SetVoter(ctx, sender, record)
	k.addVoteWeight(ctx, proposal, record.Weight)

	return record.Weight, nil
}

// Delegate marks the sender as voted and passes its weight on to the given account.
// If the delegation chain starting there ends in a voter that has already cast a direct
// vote, the weight is counted for that vote immediately. Otherwise it comes to rest on
// the account at the end of the chain and is counted if and when that account votes.
// Returns the account the weight ended up with.
func (k Keeper) Delegate(ctx sdk.Context, sender sdk.AccAddress, delegate sdk.AccAddress) (sdk.AccAddress, error) {
	record := k.GetVoter(ctx, sender)
	if err := requireVotingRight(record, sender); err != nil {
		return nil, err
	}
	if delegate.Equals(sender) {
		return nil, sdkerrors.Wrap(types.ErrSelfDelegation, sender.String())
	}

	final, err := k.resolveDelegate(ctx, sender, delegate)
	if err != nil {
		return nil, err
	}

	// the immediate delegate is recorded, not the end of the chain,
	// so later delegations resolve against the live records
	record.Voted = true
	record.Delegate = delegate
	k.SetVoter(ctx, sender, record)

	finalRecord := k.GetVoter(ctx, final)
	if finalRecord.Voted {
		k.addVoteWeight(ctx, finalRecord.Vote, record.Weight)
	} else {
		finalRecord.Weight += record.Weight
		k.SetVoter(ctx, final, finalRecord)
	}

	return final, nil
}

// HasVoted returns true if the given account has cast or delegated its vote
func (k Keeper) HasVoted(ctx sdk.Context, voter sdk.AccAddress) bool {
	return k.GetVoter(ctx, voter).Voted
}

// GetVoterInfo returns the full voting record of the given account.
// Everyone may look up their own record, all others are reserved for the chairperson.
func (k Keeper) GetVoterInfo(ctx sdk.Context, requester sdk.AccAddress, voter sdk.AccAddress) (types.Voter, error) {
	if !requester.Equals(voter) {
		if err := k.requireChairperson(ctx, requester); err != nil {
			return types.Voter{}, err
		}
	}
	return k.GetVoter(ctx, voter), nil
}

// GetVoter returns the voting record of the given account.
// Accounts without a stored record read as the zero value.
func (k Keeper) GetVoter(ctx sdk.Context, address sdk.AccAddress) types.Voter {
	bz := ctx.KVStore(k.storeKey).Get(voterKey(address))
	if bz == nil {
		return types.Voter{}
	}
	var record types.Voter
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &record)
	return record
}

// SetVoter stores the voting record of the given account
func (k Keeper) SetVoter(ctx sdk.Context, address sdk.AccAddress, record types.Voter) {
	ctx.KVStore(k.storeKey).Set(voterKey(address), k.cdc.MustMarshalBinaryLengthPrefixed(record))
}

// GetVoters returns all stored voter records in store order.
// Used for state export and invariant checks.
func (k Keeper) GetVoters(ctx sdk.Context) []types.GenesisVoter {
	var voters []types.GenesisVoter
	iter := sdk.KVStorePrefixIterator(ctx.KVStore(k.storeKey), []byte(voterPrefix))
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var record types.Voter
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iter.Value(), &record)
		voters = append(voters, types.GenesisVoter{
			Address: sdk.AccAddress(iter.Key()[len(voterPrefix):]),
			Record:  record,
		})
	}
	return voters
}

// GetTotalVotingWeight returns the total voting weight ever granted
func (k Keeper) GetTotalVotingWeight(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(totalWeightKey)
	if bz == nil {
		return 0
	}
	var total uint64
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &total)
	return total
}

// SetTotalVotingWeight sets the total granted voting weight. Used by genesis import;
// afterwards the total only changes when the chairperson grants a right.
func (k Keeper) SetTotalVotingWeight(ctx sdk.Context, total uint64) {
	ctx.KVStore(k.storeKey).Set(totalWeightKey, k.cdc.MustMarshalBinaryLengthPrefixed(total))
}

// resolveDelegate walks the delegation chain starting at the given account until it
// reaches an account that has not delegated. The walk fails the moment it comes back
// to the delegator, before anything is written.
func (k Keeper) resolveDelegate(ctx sdk.Context, delegator sdk.AccAddress, delegate sdk.AccAddress) (sdk.AccAddress, error) {
	for {
		if delegate.Equals(delegator) {
			return nil, sdkerrors.Wrap(types.ErrDelegationCycle, delegator.String())
		}
		record := k.GetVoter(ctx, delegate)
		if !record.HasDelegated() {
			return delegate, nil
		}
		delegate = record.Delegate
	}
}

func (k Keeper) requireChairperson(ctx sdk.Context, address sdk.AccAddress) error {
	if !k.GetChairperson(ctx).Equals(address) {
		return sdkerrors.Wrap(types.ErrNotAuthorized, "chairperson only")
	}
	return nil
}

func requireVotingRight(record types.Voter, address sdk.AccAddress) error {
	if record.Weight == 0 {
		return sdkerrors.Wrap(types.ErrNoVotingRight, address.String())
	}
	if record.Voted {
		return sdkerrors.Wrap(types.ErrAlreadyVoted, address.String())
	}
	return nil
}

func (k Keeper) addVoteWeight(ctx sdk.Context, proposal uint64, weight uint64) {
	p := k.getProposal(ctx, proposal)
	p.VoteCount += weight
	k.setProposal(ctx, proposal, p)
}

func (k Keeper) getProposal(ctx sdk.Context, index uint64) types.Proposal {
	var proposal types.Proposal
	k.cdc.MustUnmarshalBinaryLengthPrefixed(ctx.KVStore(k.storeKey).Get(proposalKey(index)), &proposal)
	return proposal
}

func (k Keeper) setProposal(ctx sdk.Context, index uint64, proposal types.Proposal) {
	ctx.KVStore(k.storeKey).Set(proposalKey(index), k.cdc.MustMarshalBinaryLengthPrefixed(proposal))
}

func proposalKey(index uint64) []byte {
	return []byte(fmt.Sprintf("%s%d", proposalPrefix, index))
}

func voterKey(address sdk.AccAddress) []byte {
	return append([]byte(voterPrefix), address...)
}
