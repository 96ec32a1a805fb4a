package rest

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client/context"
	"github.com/gorilla/mux"

	"github.com/ballot-network/ballot-core/x/ballot/types"
)

// RegisterRoutes registers this module's REST routes with the given router
func RegisterRoutes(cliCtx context.CLIContext, r *mux.Router) {
	r.HandleFunc(fmt.Sprintf("/tx/%s/grantRight/{voter}", types.ModuleName), grantRightHandlerFn(cliCtx)).Methods("POST")
	r.HandleFunc(fmt.Sprintf("/tx/%s/delegate/{delegate}", types.ModuleName), delegateHandlerFn(cliCtx)).Methods("POST")
	r.HandleFunc(fmt.Sprintf("/tx/%s/vote/{proposal}", types.ModuleName), voteHandlerFn(cliCtx)).Methods("POST")

	r.HandleFunc(fmt.Sprintf("/query/%s/winner", types.ModuleName), queryWinnerHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/proposal/{index}", types.ModuleName), queryProposalHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/proposals", types.ModuleName), queryProposalsHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/chairperson", types.ModuleName), queryChairpersonHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/hasVoted/{voter}", types.ModuleName), queryHasVotedHandlerFn(cliCtx)).Methods("GET")
	r.HandleFunc(fmt.Sprintf("/query/%s/voter/{requester}/{voter}", types.ModuleName), queryVoterHandlerFn(cliCtx)).Methods("GET")
}
