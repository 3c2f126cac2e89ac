package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	captchatypes "github.com/takahser/protocol/x/captcha/types"
)

// ValidateProvider checks that an account is a registered, active, funded
// provider and returns its record. Read-only; callers run it before any
// mutation.
func (k Keeper) ValidateProvider(ctx sdk.Context, addr sdk.AccAddress) (captchatypes.Provider, error) {
	provider, found := k.GetProvider(ctx, addr)
	if !found {
		return captchatypes.Provider{}, sdkerrors.Wrapf(captchatypes.ErrProviderDoesNotExist, "provider %s", addr)
	}
	if provider.Status != captchatypes.StatusActive {
		return captchatypes.Provider{}, sdkerrors.Wrapf(captchatypes.ErrProviderInactive, "provider %s has status %s", addr, provider.Status)
	}
	if !provider.Balance.IsPositive() {
		return captchatypes.Provider{}, sdkerrors.Wrapf(captchatypes.ErrProviderInsufficientFunds, "provider %s", addr)
	}
	return provider, nil
}

// ValidateDapp checks that a contract is a registered, active, funded dapp
// and returns its record. Read-only; callers run it before any mutation.
func (k Keeper) ValidateDapp(ctx sdk.Context, contract sdk.AccAddress) (captchatypes.Dapp, error) {
	dapp, found := k.GetDapp(ctx, contract)
	if !found {
		return captchatypes.Dapp{}, sdkerrors.Wrapf(captchatypes.ErrDappDoesNotExist, "dapp %s", contract)
	}
	if dapp.Status != captchatypes.StatusActive {
		return captchatypes.Dapp{}, sdkerrors.Wrapf(captchatypes.ErrDappInactive, "dapp %s has status %s", contract, dapp.Status)
	}
	if !dapp.Balance.IsPositive() {
		return captchatypes.Dapp{}, sdkerrors.Wrapf(captchatypes.ErrDappInsufficientFunds, "dapp %s", contract)
	}
	return dapp, nil
}
