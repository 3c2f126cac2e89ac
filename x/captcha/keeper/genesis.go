package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/takahser/protocol/x/captcha/types"
)

// InitGenesis initializes the captcha module's state from a genesis state
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid captcha genesis state: %w", err)
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	if len(genState.Operators) == 0 {
		k.Logger(ctx).Info("captcha module starting with an empty operator set; provider admission is impossible until one is added at genesis")
	}
	for _, op := range genState.Operators {
		addr, err := sdk.AccAddressFromBech32(op)
		if err != nil {
			return fmt.Errorf("invalid operator %s: %w", op, err)
		}
		k.setOperator(ctx, addr)
	}

	for _, rec := range genState.Providers {
		addr, err := sdk.AccAddressFromBech32(rec.Address)
		if err != nil {
			return fmt.Errorf("invalid provider address %s: %w", rec.Address, err)
		}
		k.SetProvider(ctx, addr, rec.Provider)
	}

	for _, rec := range genState.Dapps {
		contract, err := sdk.AccAddressFromBech32(rec.Contract)
		if err != nil {
			return fmt.Errorf("invalid dapp contract %s: %w", rec.Contract, err)
		}
		k.SetDapp(ctx, contract, rec.Dapp)
	}

	for _, rec := range genState.CaptchaData {
		data := rec.Data
		data.MerkleTreeRoot = rec.DatasetId
		k.SetCaptchaData(ctx, data)
	}

	for _, rec := range genState.Commitments {
		k.SetCommitment(ctx, rec.Id, rec.Commitment)
	}
	if genState.NextCommitmentId > 0 {
		k.SetCommitmentCount(ctx, genState.NextCommitmentId-1)
	}

	for _, rec := range genState.DappUsers {
		addr, err := sdk.AccAddressFromBech32(rec.Address)
		if err != nil {
			return fmt.Errorf("invalid dapp user address %s: %w", rec.Address, err)
		}
		k.SetDappUser(ctx, addr, rec.User)
	}
	return nil
}

// ExportGenesis returns the captcha module's state as a genesis state
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	genState := types.GenesisState{
		Params:           k.GetParams(ctx),
		Operators:        k.GetOperators(ctx),
		NextCommitmentId: k.GetCommitmentCount(ctx) + 1,
	}

	k.IterateProviders(ctx, func(addr sdk.AccAddress, provider types.Provider) bool {
		genState.Providers = append(genState.Providers, types.ProviderRecord{
			Address:  addr.String(),
			Provider: provider,
		})
		return false
	})

	k.IterateDapps(ctx, func(contract sdk.AccAddress, dapp types.Dapp) bool {
		genState.Dapps = append(genState.Dapps, types.DappRecord{
			Contract: contract.String(),
			Dapp:     dapp,
		})
		return false
	})

	k.IterateCaptchaData(ctx, func(data types.CaptchaData) bool {
		genState.CaptchaData = append(genState.CaptchaData, types.CaptchaDataRecord{
			DatasetId: data.MerkleTreeRoot,
			Data:      data,
		})
		return false
	})

	k.IterateCommitments(ctx, func(id uint64, commitment types.CaptchaSolutionCommitment) bool {
		genState.Commitments = append(genState.Commitments, types.CommitmentRecord{
			Id:         id,
			Commitment: commitment,
		})
		return false
	})

	k.IterateDappUsers(ctx, func(addr sdk.AccAddress, user types.DappUser) bool {
		genState.DappUsers = append(genState.DappUsers, types.DappUserRecord{
			Address: addr.String(),
			User:    user,
		})
		return false
	})

	return &genState
}
