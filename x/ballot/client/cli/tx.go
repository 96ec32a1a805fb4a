package cli

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/context"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/cosmos/cosmos-sdk/x/auth/client/utils"
	"github.com/spf13/cobra"

	"github.com/ballot-network/ballot-core/x/ballot/types"
)

// GetTxCmd returns the transaction commands for this module
func GetTxCmd(cdc *codec.Codec) *cobra.Command {
	ballotTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "ballot transactions subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ballotTxCmd.AddCommand(flags.PostCommands(
		GetCmdGrantRight(cdc),
		GetCmdDelegate(cdc),
		GetCmdVote(cdc),
	)...)

	return ballotTxCmd
}

// GetCmdGrantRight returns the command to grant an account the right to vote
func GetCmdGrantRight(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "grantRight [voter]",
		Short: "Grant [voter] the right to vote on the ballot (chairperson only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := prepare(cmd.InOrStdin(), cdc)

			voter, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return sdkerrors.Wrap(err, "invalid voter address")
			}

			msg := types.NewMsgGrantVotingRight(cliCtx.GetFromAddress(), voter)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}
}

// GetCmdDelegate returns the command to pass the sender's vote on to another account
func GetCmdDelegate(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "delegate [to]",
		Short: "Pass your vote on to [to]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := prepare(cmd.InOrStdin(), cdc)

			delegate, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return sdkerrors.Wrap(err, "invalid delegate address")
			}

			msg := types.NewMsgDelegate(cliCtx.GetFromAddress(), delegate)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}
}

// GetCmdVote returns the command to cast a vote
func GetCmdVote(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "vote [proposal]",
		Short: "Cast your vote for the proposal with index [proposal]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, txBldr := prepare(cmd.InOrStdin(), cdc)

			proposal, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return sdkerrors.Wrap(err, "proposal must be a non-negative integer")
			}

			msg := types.NewMsgVote(cliCtx.GetFromAddress(), proposal)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return utils.GenerateOrBroadcastMsgs(cliCtx, txBldr, []sdk.Msg{msg})
		},
	}
}

func prepare(reader io.Reader, cdc *codec.Codec) (context.CLIContext, auth.TxBuilder) {
	inBuf := bufio.NewReader(reader)
	txBldr := auth.NewTxBuilderFromCLI(inBuf).WithTxEncoder(utils.GetTxEncoder(cdc))
	cliCtx := context.NewCLIContextWithInput(inBuf).WithCodec(cdc)
	return cliCtx, txBldr
}
