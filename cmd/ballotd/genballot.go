package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tendermint/tendermint/libs/cli"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/server"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/genutil"

	"github.com/ballot-network/ballot-core/x/ballot"
)

// SetGenesisBallotCmd returns set-genesis-ballot cobra Command.
func SetGenesisBallotCmd(ctx *server.Context, cdc *codec.Codec, defaultNodeHome string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-genesis-ballot [chairperson] [proposal] [[proposal]...]",
		Short: "Set the chairperson and the proposals of the ballot in genesis.json",
		Long: `Set the chairperson and the proposals of the ballot in genesis.json. The
ballot state written by this command replaces any ballot state the file held before.
The chairperson account is granted the right to vote with weight 1.
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := ctx.Config
			config.SetRoot(viper.GetString(cli.HomeFlag))

			chairperson, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse chairperson address: %w", err)
			}

			genesisBallot := ballot.NewGenesisState(chairperson, args[1:])
			if err := genesisBallot.Validate(); err != nil {
				return fmt.Errorf("failed to validate ballot genesis state: %w", err)
			}

			genFile := config.GenesisFile()
			appState, genDoc, err := genutil.GenesisStateFromGenFile(cdc, genFile)
			if err != nil {
				return fmt.Errorf("failed to unmarshal genesis state: %w", err)
			}

			ballotGenStateBz, err := cdc.MarshalJSON(genesisBallot)
			if err != nil {
				return fmt.Errorf("failed to marshal ballot genesis state: %w", err)
			}

			appState[ballot.ModuleName] = ballotGenStateBz

			appStateJSON, err := cdc.MarshalJSON(appState)
			if err != nil {
				return fmt.Errorf("failed to marshal application genesis state: %w", err)
			}

			genDoc.AppState = appStateJSON
			return genutil.ExportGenesisFile(genDoc, genFile)
		},
	}

	cmd.Flags().String(cli.HomeFlag, defaultNodeHome, "node's home directory")

	return cmd
}
