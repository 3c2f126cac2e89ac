package keeper

import (
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	captchatypes "github.com/takahser/protocol/x/captcha/types"
)

// IsOperator reports whether an account is in the operator set.
func (k Keeper) IsOperator(ctx sdk.Context, addr sdk.AccAddress) bool {
	return k.getStore(ctx).Has(captchatypes.OperatorKey(addr))
}

// setOperator adds an account to the operator set.
func (k Keeper) setOperator(ctx sdk.Context, addr sdk.AccAddress) {
	k.getStore(ctx).Set(captchatypes.OperatorKey(addr), []byte{1})
}

// AddOperator admits a new operator. Calls from accounts outside the
// operator set succeed without effect.
func (k Keeper) AddOperator(ctx sdk.Context, caller, operator sdk.AccAddress) error {
	if !k.IsOperator(ctx, caller) {
		return nil
	}
	if k.IsOperator(ctx, operator) {
		return nil
	}
	k.setOperator(ctx, operator)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		captchatypes.EventTypeOperatorAdd,
		sdk.NewAttribute(captchatypes.AttributeKeyOperator, operator.String()),
	))
	return nil
}

// GetOperators returns the operator set in key order.
func (k Keeper) GetOperators(ctx sdk.Context) []string {
	var operators []string
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, captchatypes.OperatorKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(captchatypes.OperatorKeyPrefix):])
		operators = append(operators, addr.String())
	}
	return operators
}
