package rest

import (
	"net/http"
	"strconv"

	"github.com/cosmos/cosmos-sdk/client/context"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/rest"
	"github.com/cosmos/cosmos-sdk/x/auth/client/utils"
	"github.com/gorilla/mux"

	clientUtils "github.com/ballot-network/ballot-core/utils"
	"github.com/ballot-network/ballot-core/x/ballot/types"
)

// ReqGrantRight represents a request to grant an account the right to vote
type ReqGrantRight struct {
	BaseReq rest.BaseReq `json:"base_req" yaml:"base_req"`
}

// ReqDelegate represents a request to pass the sender's vote on to another account
type ReqDelegate struct {
	BaseReq rest.BaseReq `json:"base_req" yaml:"base_req"`
}

// ReqVote represents a request to cast a vote
type ReqVote struct {
	BaseReq rest.BaseReq `json:"base_req" yaml:"base_req"`
}

func grantRightHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqGrantRight
		if !rest.ReadRESTReq(w, r, cliCtx.Codec, &req) {
			return
		}
		baseReq := req.BaseReq.Sanitize()
		if !baseReq.ValidateBasic(w) {
			return
		}
		sender, ok := clientUtils.ExtractReqSender(w, baseReq)
		if !ok {
			return
		}

		voter, err := sdk.AccAddressFromBech32(mux.Vars(r)["voter"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		msg := types.NewMsgGrantVotingRight(sender, voter)
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		utils.WriteGenerateStdTxResponse(w, cliCtx, baseReq, []sdk.Msg{msg})
	}
}

func delegateHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqDelegate
		if !rest.ReadRESTReq(w, r, cliCtx.Codec, &req) {
			return
		}
		baseReq := req.BaseReq.Sanitize()
		if !baseReq.ValidateBasic(w) {
			return
		}
		sender, ok := clientUtils.ExtractReqSender(w, baseReq)
		if !ok {
			return
		}

		delegate, err := sdk.AccAddressFromBech32(mux.Vars(r)["delegate"])
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		msg := types.NewMsgDelegate(sender, delegate)
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		utils.WriteGenerateStdTxResponse(w, cliCtx, baseReq, []sdk.Msg{msg})
	}
}

func voteHandlerFn(cliCtx context.CLIContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReqVote
		if !rest.ReadRESTReq(w, r, cliCtx.Codec, &req) {
			return
		}
		baseReq := req.BaseReq.Sanitize()
		if !baseReq.ValidateBasic(w) {
			return
		}
		sender, ok := clientUtils.ExtractReqSender(w, baseReq)
		if !ok {
			return
		}

		proposal, err := strconv.ParseUint(mux.Vars(r)["proposal"], 10, 64)
		if err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, "proposal must be a non-negative integer")
			return
		}

		msg := types.NewMsgVote(sender, proposal)
		if err := msg.ValidateBasic(); err != nil {
			rest.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		utils.WriteGenerateStdTxResponse(w, cliCtx, baseReq, []sdk.Msg{msg})
	}
}
