package ballot

import (
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ballot-network/ballot-core/x/ballot/keeper"
	"github.com/ballot-network/ballot-core/x/ballot/types"
)

// NewHandler returns the handler of the ballot module
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())
		switch msg := msg.(type) {
		case types.MsgGrantVotingRight:
			return handleMsgGrantVotingRight(ctx, k, msg)
		case types.MsgDelegate:
			return handleMsgDelegate(ctx, k, msg)
		case types.MsgVote:
			return handleMsgVote(ctx, k, msg)
		default:
			return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest,
				fmt.Sprintf("unrecognized %s message type: %T", types.ModuleName, msg))
		}
	}
}

func handleMsgGrantVotingRight(ctx sdk.Context, k keeper.Keeper, msg types.MsgGrantVotingRight) (*sdk.Result, error) {
	if err := k.GiveRightToVote(ctx, msg.Sender, msg.Voter); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info(fmt.Sprintf("voting right granted to %s", msg.Voter))
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.EventTypeGrantVotingRight),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
			sdk.NewAttribute(types.AttributeVoter, msg.Voter.String()),
		),
	)
	return &sdk.Result{Events: ctx.EventManager().Events()}, nil
}

func handleMsgDelegate(ctx sdk.Context, k keeper.Keeper, msg types.MsgDelegate) (*sdk.Result, error) {
	final, err := k.Delegate(ctx, msg.Sender, msg.Delegate)
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Info(fmt.Sprintf("%s delegated to %s, delegation chain ends at %s", msg.Sender, msg.Delegate, final))
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.EventTypeDelegate),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
			sdk.NewAttribute(types.AttributeDelegate, msg.Delegate.String()),
		),
	)
	return &sdk.Result{Events: ctx.EventManager().Events()}, nil
}

func handleMsgVote(ctx sdk.Context, k keeper.Keeper, msg types.MsgVote) (*sdk.Result, error) {
	weight, err := k.Vote(ctx, msg.Sender, msg.Proposal)
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Info(fmt.Sprintf("%s voted for proposal %d with weight %d", msg.Sender, msg.Proposal, weight))
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeModule),
			sdk.NewAttribute(sdk.AttributeKeyAction, types.EventTypeVote),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender.String()),
			sdk.NewAttribute(types.AttributeProposal, strconv.FormatUint(msg.Proposal, 10)),
			sdk.NewAttribute(types.AttributeWeight, strconv.FormatUint(weight, 10)),
		),
	)
	return &sdk.Result{Events: ctx.EventManager().Events()}, nil
}
