package cli

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/context"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/spf13/cobra"

	"github.com/ballot-network/ballot-core/x/ballot/keeper"
	"github.com/ballot-network/ballot-core/x/ballot/types"
)

// GetQueryCmd returns the cli query commands for this module
func GetQueryCmd(queryRoute string, cdc *codec.Codec) *cobra.Command {
	ballotQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the ballot module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ballotQueryCmd.AddCommand(flags.GetCommands(
		GetCmdWinner(queryRoute, cdc),
		GetCmdProposal(queryRoute, cdc),
		GetCmdProposals(queryRoute, cdc),
		GetCmdChairperson(queryRoute, cdc),
		GetCmdHasVoted(queryRoute, cdc),
		GetCmdVoter(queryRoute, cdc),
	)...)

	return ballotQueryCmd
}

// GetCmdWinner returns the command to query the currently winning proposal
func GetCmdWinner(queryRoute string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "winner",
		Short: "Query the proposal that currently leads the ballot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", queryRoute, keeper.QueryWinner), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not determine the winning proposal")
			}

			var out types.QueryWinnerResponse
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

// GetCmdProposal returns the command to query a single proposal by index
func GetCmdProposal(queryRoute string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "proposal [index]",
		Short: "Query the name and vote count of the proposal with the given index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s", queryRoute, keeper.QueryProposal, args[0]), nil)
			if err != nil {
				return sdkerrors.Wrapf(err, "could not resolve proposal %s", args[0])
			}

			var out types.Proposal
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

// GetCmdProposals returns the command to query all proposals
func GetCmdProposals(queryRoute string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "proposals",
		Short: "Query all proposals in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", queryRoute, keeper.QueryProposals), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not resolve the proposals")
			}

			var out []types.Proposal
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

// GetCmdChairperson returns the command to query the chairperson of the ballot
func GetCmdChairperson(queryRoute string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "chairperson",
		Short: "Query the chairperson of the ballot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s", queryRoute, keeper.QueryChairperson), nil)
			if err != nil {
				return sdkerrors.Wrap(err, "could not resolve the chairperson")
			}

			var out sdk.AccAddress
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

// GetCmdHasVoted returns the command to query whether an account has cast or delegated its vote
func GetCmdHasVoted(queryRoute string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "hasVoted [voter]",
		Short: "Query whether [voter] has cast or delegated its vote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			res, _, err := cliCtx.QueryWithData(fmt.Sprintf("custom/%s/%s/%s", queryRoute, keeper.QueryHasVoted, args[0]), nil)
			if err != nil {
				return sdkerrors.Wrapf(err, "could not resolve voter %s", args[0])
			}

			var out bool
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}

// GetCmdVoter returns the command to query the full voting record of an account.
// Records of other accounts can only be looked up by the chairperson.
func GetCmdVoter(queryRoute string, cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "voter [requester] [voter]",
		Short: "Query the full voting record of [voter] on behalf of [requester]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx := context.NewCLIContext().WithCodec(cdc)

			res, _, err := cliCtx.QueryWithData(
				fmt.Sprintf("custom/%s/%s/%s/%s", queryRoute, keeper.QueryVoter, args[0], args[1]), nil)
			if err != nil {
				return sdkerrors.Wrapf(err, "could not resolve voter %s", args[1])
			}

			var out types.Voter
			cdc.MustUnmarshalJSON(res, &out)
			return cliCtx.PrintOutput(out)
		},
	}
}
