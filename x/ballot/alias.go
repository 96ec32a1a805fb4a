package ballot

import (
	"github.com/ballot-network/ballot-core/x/ballot/keeper"
	"github.com/ballot-network/ballot-core/x/ballot/types"
)

const (
	// ModuleName is an alias for the module name
	ModuleName = types.ModuleName
	// StoreKey is an alias for the module's store key
	StoreKey = types.StoreKey
	// RouterKey is an alias for the module's routing key
	RouterKey = types.RouterKey
	// QuerierRoute is an alias for the module's query route
	QuerierRoute = types.QuerierRoute
)

var (
	// NewKeeper is an alias for the keeper constructor
	NewKeeper = keeper.NewKeeper
	// NewQuerier is an alias for the querier constructor
	NewQuerier = keeper.NewQuerier
	// RegisterCodec is an alias for the module's codec registration
	RegisterCodec = types.RegisterCodec
	// NewGenesisState is an alias for the genesis state constructor
	NewGenesisState = types.NewGenesisState
	// DefaultGenesisState is an alias for the default genesis state
	DefaultGenesisState = types.DefaultGenesisState
	// ModuleCdc is an alias for the module's codec
	ModuleCdc = types.ModuleCdc
)

type (
	// Keeper is an alias for the module's keeper
	Keeper = keeper.Keeper
	// GenesisState is an alias for the module's genesis state
	GenesisState = types.GenesisState
	// Proposal is an alias for the proposal type
	Proposal = types.Proposal
	// Voter is an alias for the voter record type
	Voter = types.Voter
)
