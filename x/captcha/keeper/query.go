package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/takahser/protocol/x/captcha/types"
)

var _ types.QueryServer = Keeper{}

// Params returns the module parameters
func (k Keeper) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

// Provider queries a provider's registration details
func (k Keeper) Provider(goCtx context.Context, req *types.QueryProviderRequest) (*types.QueryProviderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid provider address")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	provider, found := k.GetProvider(ctx, addr)
	if !found {
		return nil, status.Errorf(codes.NotFound, "provider %s not found", req.Address)
	}
	return &types.QueryProviderResponse{Provider: provider}, nil
}

// Providers queries all registered providers
func (k Keeper) Providers(goCtx context.Context, req *types.QueryProvidersRequest) (*types.QueryProvidersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	var providers []types.ProviderRecord
	k.IterateProviders(ctx, func(addr sdk.AccAddress, provider types.Provider) bool {
		providers = append(providers, types.ProviderRecord{Address: addr.String(), Provider: provider})
		return false
	})
	return &types.QueryProvidersResponse{Providers: providers}, nil
}

// ProviderBalance queries a provider's tracked balance; unknown providers
// report zero rather than an error
func (k Keeper) ProviderBalance(goCtx context.Context, req *types.QueryProviderBalanceRequest) (*types.QueryProviderBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid provider address")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryProviderBalanceResponse{Balance: k.GetProviderBalance(ctx, addr).String()}, nil
}

// Dapp queries a dapp's registration details
func (k Keeper) Dapp(goCtx context.Context, req *types.QueryDappRequest) (*types.QueryDappResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	contract, err := sdk.AccAddressFromBech32(req.Contract)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid contract address")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	dapp, found := k.GetDapp(ctx, contract)
	if !found {
		return nil, status.Errorf(codes.NotFound, "dapp %s not found", req.Contract)
	}
	return &types.QueryDappResponse{Dapp: dapp}, nil
}

// Dapps queries all registered dapps
func (k Keeper) Dapps(goCtx context.Context, req *types.QueryDappsRequest) (*types.QueryDappsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	var dapps []types.DappRecord
	k.IterateDapps(ctx, func(contract sdk.AccAddress, dapp types.Dapp) bool {
		dapps = append(dapps, types.DappRecord{Contract: contract.String(), Dapp: dapp})
		return false
	})
	return &types.QueryDappsResponse{Dapps: dapps}, nil
}

// DappBalance queries a dapp's tracked balance; unknown contracts report
// zero rather than an error
func (k Keeper) DappBalance(goCtx context.Context, req *types.QueryDappBalanceRequest) (*types.QueryDappBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	contract, err := sdk.AccAddressFromBech32(req.Contract)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid contract address")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryDappBalanceResponse{Balance: k.GetDappBalance(ctx, contract).String()}, nil
}

// CaptchaData queries a dataset by its merkle tree root
func (k Keeper) CaptchaData(goCtx context.Context, req *types.QueryCaptchaDataRequest) (*types.QueryCaptchaDataResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.DatasetId == types.ZeroHash {
		return nil, status.Error(codes.InvalidArgument, "dataset id cannot be empty")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	data, found := k.GetCaptchaData(ctx, req.DatasetId)
	if !found {
		return nil, status.Errorf(codes.NotFound, "dataset %s not found", req.DatasetId)
	}
	return &types.QueryCaptchaDataResponse{Data: data}, nil
}

// Commitment queries a solution commitment by index
func (k Keeper) Commitment(goCtx context.Context, req *types.QueryCommitmentRequest) (*types.QueryCommitmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.Id == 0 {
		return nil, status.Error(codes.InvalidArgument, "commitment id cannot be zero")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	commitment, found := k.GetCommitment(ctx, req.Id)
	if !found {
		return nil, status.Errorf(codes.NotFound, "commitment %d not found", req.Id)
	}
	return &types.QueryCommitmentResponse{Commitment: commitment}, nil
}

// DappUser queries an account's reputation counters
func (k Keeper) DappUser(goCtx context.Context, req *types.QueryDappUserRequest) (*types.QueryDappUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid user address")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	user, found := k.GetDappUser(ctx, addr)
	if !found {
		return nil, status.Errorf(codes.NotFound, "dapp user %s not found", req.Address)
	}
	return &types.QueryDappUserResponse{User: user}, nil
}

// IsHuman reports whether an account clears the given correctness threshold
func (k Keeper) IsHuman(goCtx context.Context, req *types.QueryIsHumanRequest) (*types.QueryIsHumanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.Threshold > 100 {
		return nil, status.Error(codes.InvalidArgument, "threshold must be a percentage in [0, 100]")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid user address")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	human, err := k.IsHumanUser(ctx, addr, req.Threshold)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "dapp user %s not found", req.Address)
	}
	return &types.QueryIsHumanResponse{Human: human}, nil
}

// Operators queries the operator set
func (k Keeper) Operators(goCtx context.Context, req *types.QueryOperatorsRequest) (*types.QueryOperatorsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryOperatorsResponse{Operators: k.GetOperators(ctx)}, nil
}
