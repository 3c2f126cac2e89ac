package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/takahser/protocol/x/captcha/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the captcha MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RegisterProvider handles operator admission of a new provider
func (ms msgServer) RegisterProvider(goCtx context.Context, msg *types.MsgRegisterProvider) (*types.MsgRegisterProviderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RegisterProvider: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("RegisterProvider: invalid creator address: %w", err)
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RegisterProvider: invalid provider address: %w", err)
	}

	if err := ms.Keeper.RegisterProvider(ctx, creator, provider, msg.ServiceOrigin, msg.Fee, msg.Payee); err != nil {
		return nil, fmt.Errorf("RegisterProvider: %w", err)
	}
	return &types.MsgRegisterProviderResponse{}, nil
}

// UpdateProvider handles a provider rewriting its own registration
func (ms msgServer) UpdateProvider(goCtx context.Context, msg *types.MsgUpdateProvider) (*types.MsgUpdateProviderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateProvider: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("UpdateProvider: invalid provider address: %w", err)
	}

	if err := ms.Keeper.UpdateProvider(ctx, provider, msg.ServiceOrigin, msg.Fee, msg.Payee, msg.Amount); err != nil {
		return nil, fmt.Errorf("UpdateProvider: %w", err)
	}
	return &types.MsgUpdateProviderResponse{}, nil
}

// DeregisterProvider handles operator-forced provider deactivation
func (ms msgServer) DeregisterProvider(goCtx context.Context, msg *types.MsgDeregisterProvider) (*types.MsgDeregisterProviderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DeregisterProvider: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("DeregisterProvider: invalid creator address: %w", err)
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("DeregisterProvider: invalid provider address: %w", err)
	}

	if err := ms.Keeper.DeregisterProvider(ctx, creator, provider); err != nil {
		return nil, fmt.Errorf("DeregisterProvider: %w", err)
	}
	return &types.MsgDeregisterProviderResponse{}, nil
}

// StakeProvider handles a provider staking an attached amount
func (ms msgServer) StakeProvider(goCtx context.Context, msg *types.MsgStakeProvider) (*types.MsgStakeProviderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("StakeProvider: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("StakeProvider: invalid provider address: %w", err)
	}

	if err := ms.Keeper.StakeProvider(ctx, provider, msg.Amount); err != nil {
		return nil, fmt.Errorf("StakeProvider: %w", err)
	}
	return &types.MsgStakeProviderResponse{}, nil
}

// UnstakeProvider handles a provider withdrawing its full stake
func (ms msgServer) UnstakeProvider(goCtx context.Context, msg *types.MsgUnstakeProvider) (*types.MsgUnstakeProviderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UnstakeProvider: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("UnstakeProvider: invalid provider address: %w", err)
	}

	if err := ms.Keeper.UnstakeProvider(ctx, provider); err != nil {
		return nil, fmt.Errorf("UnstakeProvider: %w", err)
	}
	return &types.MsgUnstakeProviderResponse{}, nil
}

// AddDataSet handles a provider registering a captcha dataset
func (ms msgServer) AddDataSet(goCtx context.Context, msg *types.MsgAddDataSet) (*types.MsgAddDataSetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddDataSet: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddDataSet: invalid provider address: %w", err)
	}

	if err := ms.Keeper.AddDataSet(ctx, provider, msg.MerkleTreeRoot, msg.CaptchaType); err != nil {
		return nil, fmt.Errorf("AddDataSet: %w", err)
	}
	return &types.MsgAddDataSetResponse{CaptchaDatasetId: msg.MerkleTreeRoot}, nil
}

// RegisterDapp handles dapp registration or re-registration
func (ms msgServer) RegisterDapp(goCtx context.Context, msg *types.MsgRegisterDapp) (*types.MsgRegisterDappResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RegisterDapp: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("RegisterDapp: invalid creator address: %w", err)
	}
	contract, err := sdk.AccAddressFromBech32(msg.Contract)
	if err != nil {
		return nil, fmt.Errorf("RegisterDapp: invalid contract address: %w", err)
	}

	if err := ms.Keeper.RegisterDapp(ctx, creator, msg.ClientOrigin, contract, msg.Owner, msg.Amount); err != nil {
		return nil, fmt.Errorf("RegisterDapp: %w", err)
	}
	return &types.MsgRegisterDappResponse{}, nil
}

// FundDapp handles topping up a dapp balance
func (ms msgServer) FundDapp(goCtx context.Context, msg *types.MsgFundDapp) (*types.MsgFundDappResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("FundDapp: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("FundDapp: invalid creator address: %w", err)
	}
	contract, err := sdk.AccAddressFromBech32(msg.Contract)
	if err != nil {
		return nil, fmt.Errorf("FundDapp: invalid contract address: %w", err)
	}

	if err := ms.Keeper.FundDapp(ctx, creator, contract, msg.Amount); err != nil {
		return nil, fmt.Errorf("FundDapp: %w", err)
	}
	return &types.MsgFundDappResponse{}, nil
}

// CancelDapp handles refunding and deactivating a dapp
func (ms msgServer) CancelDapp(goCtx context.Context, msg *types.MsgCancelDapp) (*types.MsgCancelDappResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CancelDapp: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CancelDapp: invalid creator address: %w", err)
	}
	contract, err := sdk.AccAddressFromBech32(msg.Contract)
	if err != nil {
		return nil, fmt.Errorf("CancelDapp: invalid contract address: %w", err)
	}

	if err := ms.Keeper.CancelDapp(ctx, creator, contract); err != nil {
		return nil, fmt.Errorf("CancelDapp: %w", err)
	}
	return &types.MsgCancelDappResponse{}, nil
}

// CommitSolution handles a dapp user submitting a solution root
func (ms msgServer) CommitSolution(goCtx context.Context, msg *types.MsgCommitSolution) (*types.MsgCommitSolutionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CommitSolution: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		return nil, fmt.Errorf("CommitSolution: invalid account address: %w", err)
	}
	contract, err := sdk.AccAddressFromBech32(msg.Contract)
	if err != nil {
		return nil, fmt.Errorf("CommitSolution: invalid contract address: %w", err)
	}

	id, err := ms.Keeper.CommitSolution(ctx, account, contract, msg.CaptchaDatasetId, msg.UserMerkleTreeRoot)
	if err != nil {
		return nil, fmt.Errorf("CommitSolution: %w", err)
	}
	return &types.MsgCommitSolutionResponse{CommitmentId: id}, nil
}

// ApproveSolution handles a provider approving a commitment
func (ms msgServer) ApproveSolution(goCtx context.Context, msg *types.MsgApproveSolution) (*types.MsgApproveSolutionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ApproveSolution: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("ApproveSolution: invalid provider address: %w", err)
	}

	if err := ms.Keeper.ProviderApprove(ctx, provider, msg.CommitmentId); err != nil {
		return nil, fmt.Errorf("ApproveSolution: %w", err)
	}
	return &types.MsgApproveSolutionResponse{}, nil
}

// DisapproveSolution handles a provider disapproving a commitment
func (ms msgServer) DisapproveSolution(goCtx context.Context, msg *types.MsgDisapproveSolution) (*types.MsgDisapproveSolutionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DisapproveSolution: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("DisapproveSolution: invalid provider address: %w", err)
	}

	if err := ms.Keeper.ProviderDisapprove(ctx, provider, msg.CommitmentId); err != nil {
		return nil, fmt.Errorf("DisapproveSolution: %w", err)
	}
	return &types.MsgDisapproveSolutionResponse{}, nil
}

// AddOperator handles operator set expansion
func (ms msgServer) AddOperator(goCtx context.Context, msg *types.MsgAddOperator) (*types.MsgAddOperatorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddOperator: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("AddOperator: invalid creator address: %w", err)
	}
	operator, err := sdk.AccAddressFromBech32(msg.Operator)
	if err != nil {
		return nil, fmt.Errorf("AddOperator: invalid operator address: %w", err)
	}

	if err := ms.Keeper.AddOperator(ctx, creator, operator); err != nil {
		return nil, fmt.Errorf("AddOperator: %w", err)
	}
	return &types.MsgAddOperatorResponse{}, nil
}
