package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	captchatypes "github.com/takahser/protocol/x/captcha/types"
)

// escrowCoins moves an attached amount from the caller into the module
// account. A zero amount is a no-op.
func (k Keeper) escrowCoins(ctx sdk.Context, from sdk.AccAddress, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	denom := k.GetParams(ctx).StakeDenom
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	return k.bankKeeper.SendCoinsFromAccountToModule(ctx, from, captchatypes.ModuleName, coins)
}

// withdrawCoins pays escrowed funds out to an account. Failure is propagated;
// callers must not have mutated state beforehand.
func (k Keeper) withdrawCoins(ctx sdk.Context, to sdk.AccAddress, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	denom := k.GetParams(ctx).StakeDenom
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, captchatypes.ModuleName, to, coins)
}

// refundCoins returns an attached amount to a rejected caller. Refunds are
// best-effort: a failed transfer is logged and otherwise ignored.
func (k Keeper) refundCoins(ctx sdk.Context, to sdk.AccAddress, amount math.Int) {
	if !amount.IsPositive() {
		return
	}
	if err := k.withdrawCoins(ctx, to, amount); err != nil {
		k.Logger(ctx).Error("refund transfer failed", "to", to.String(), "amount", amount.String(), "error", err)
		return
	}
	k.metrics.RefundedContributions.Inc()
}
