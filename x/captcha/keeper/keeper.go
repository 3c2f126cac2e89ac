package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	captchatypes "github.com/takahser/protocol/x/captcha/types"
)

// Keeper of the captcha store
type Keeper struct {
	storeKey      storetypes.StoreKey
	cdc           codec.BinaryCodec
	accountKeeper captchatypes.AccountKeeper
	bankKeeper    captchatypes.BankKeeper
	hooks         captchatypes.CaptchaHooks
	metrics       *CaptchaMetrics
}

// NewKeeper creates a new captcha Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	accountKeeper captchatypes.AccountKeeper,
	bankKeeper captchatypes.BankKeeper,
) *Keeper {
	return &Keeper{
		storeKey:      key,
		cdc:           cdc,
		accountKeeper: accountKeeper,
		bankKeeper:    bankKeeper,
		metrics:       GetCaptchaMetrics(),
	}
}

// SetHooks sets the captcha hooks. Panics if called more than once, matching
// the staking module convention.
func (k *Keeper) SetHooks(h captchatypes.CaptchaHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set captcha hooks twice")
	}
	k.hooks = h
	return k
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+captchatypes.ModuleName)
}

// GetBankKeeper exposes the bank keeper for module tests.
func (k Keeper) GetBankKeeper() captchatypes.BankKeeper {
	return k.bankKeeper
}

// GetModuleAddress returns the module's escrow account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.accountKeeper.GetModuleAddress(captchatypes.ModuleName)
}

// getStore returns the KVStore for the captcha module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

func (k Keeper) afterProviderRegistered(ctx sdk.Context, provider sdk.AccAddress) {
	if k.hooks == nil {
		return
	}
	if err := k.hooks.AfterProviderRegistered(ctx, provider); err != nil {
		k.Logger(ctx).Error("provider registered hook failed", "provider", provider.String(), "error", err)
	}
}

func (k Keeper) afterProviderDeactivated(ctx sdk.Context, provider sdk.AccAddress) {
	if k.hooks == nil {
		return
	}
	if err := k.hooks.AfterProviderDeactivated(ctx, provider); err != nil {
		k.Logger(ctx).Error("provider deactivated hook failed", "provider", provider.String(), "error", err)
	}
}
