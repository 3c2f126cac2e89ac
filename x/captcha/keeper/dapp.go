package keeper

import (
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	captchatypes "github.com/takahser/protocol/x/captcha/types"
)

// GetDapp returns the dapp record for a contract, if present.
func (k Keeper) GetDapp(ctx sdk.Context, contract sdk.AccAddress) (captchatypes.Dapp, bool) {
	store := k.getStore(ctx)
	bz := store.Get(captchatypes.DappKey(contract))
	if bz == nil {
		return captchatypes.Dapp{}, false
	}
	var dapp captchatypes.Dapp
	if err := json.Unmarshal(bz, &dapp); err != nil {
		panic(err)
	}
	return dapp, true
}

// SetDapp stores a dapp record.
func (k Keeper) SetDapp(ctx sdk.Context, contract sdk.AccAddress, dapp captchatypes.Dapp) {
	bz, err := json.Marshal(dapp)
	if err != nil {
		panic(err)
	}
	k.getStore(ctx).Set(captchatypes.DappKey(contract), bz)
}

// IterateDapps walks all dapp records in key order.
func (k Keeper) IterateDapps(ctx sdk.Context, cb func(contract sdk.AccAddress, dapp captchatypes.Dapp) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, captchatypes.DappKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var dapp captchatypes.Dapp
		if err := json.Unmarshal(iterator.Value(), &dapp); err != nil {
			panic(err)
		}
		contract := sdk.AccAddress(iterator.Key()[len(captchatypes.DappKeyPrefix):])
		if cb(contract, dapp) {
			break
		}
	}
}

// GetDappBalance returns a dapp's tracked balance, zero for unknown
// contracts.
func (k Keeper) GetDappBalance(ctx sdk.Context, contract sdk.AccAddress) math.Int {
	dapp, found := k.GetDapp(ctx, contract)
	if !found {
		return math.ZeroInt()
	}
	return dapp.Balance
}

// RegisterDapp registers a dapp contract with an initial funding amount, or
// routes to the update path when the contract is already registered. The
// owner defaults to the caller when left empty.
func (k Keeper) RegisterDapp(ctx sdk.Context, caller sdk.AccAddress, clientOrigin string, contract sdk.AccAddress, owner string, amount math.Int) error {
	if owner == "" {
		owner = caller.String()
	}

	if _, found := k.GetDapp(ctx, contract); found {
		return k.updateDapp(ctx, caller, owner, clientOrigin, contract, amount)
	}

	if err := k.escrowCoins(ctx, caller, amount); err != nil {
		return err
	}

	status := captchatypes.StatusSuspended
	if amount.IsPositive() {
		status = captchatypes.StatusActive
	}
	dapp := captchatypes.Dapp{
		Status:        status,
		Balance:       amount,
		Owner:         owner,
		MinDifficulty: k.GetParams(ctx).MinDifficulty,
		ClientOrigin:  clientOrigin,
	}
	k.SetDapp(ctx, contract, dapp)

	k.metrics.DappsRegistered.Inc()
	k.metrics.DappBalance.WithLabelValues(contract.String(), k.GetParams(ctx).StakeDenom).Set(floatFromInt(dapp.Balance))

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		captchatypes.EventTypeDappRegister,
		sdk.NewAttribute(captchatypes.AttributeKeyContract, contract.String()),
		sdk.NewAttribute(captchatypes.AttributeKeyOwner, owner),
		sdk.NewAttribute(captchatypes.AttributeKeyClientOrigin, clientOrigin),
	))
	return nil
}

// updateDapp rewrites a registered dapp's origin and owner and tops up its
// balance. A caller that is not the current owner gets its attached amount
// back and causes no state change.
func (k Keeper) updateDapp(ctx sdk.Context, caller sdk.AccAddress, owner, clientOrigin string, contract sdk.AccAddress, amount math.Int) error {
	dapp, found := k.GetDapp(ctx, contract)
	if !found {
		return sdkerrors.Wrapf(captchatypes.ErrDappDoesNotExist, "dapp %s", contract)
	}

	if err := k.escrowCoins(ctx, caller, amount); err != nil {
		return err
	}
	if dapp.Owner != caller.String() {
		k.refundCoins(ctx, caller, amount)
		return nil
	}

	dapp.Balance = dapp.Balance.Add(amount)
	dapp.Owner = owner
	dapp.ClientOrigin = clientOrigin
	if dapp.Balance.IsPositive() {
		dapp.Status = captchatypes.StatusActive
	} else {
		dapp.Status = captchatypes.StatusSuspended
	}
	k.SetDapp(ctx, contract, dapp)

	k.metrics.DappBalance.WithLabelValues(contract.String(), k.GetParams(ctx).StakeDenom).Set(floatFromInt(dapp.Balance))

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		captchatypes.EventTypeDappUpdate,
		sdk.NewAttribute(captchatypes.AttributeKeyContract, contract.String()),
		sdk.NewAttribute(captchatypes.AttributeKeyOwner, owner),
		sdk.NewAttribute(captchatypes.AttributeKeyClientOrigin, clientOrigin),
	))
	return nil
}

// FundDapp tops up a dapp's balance with the attached amount. Unknown
// contracts and non-owner callers are refunded without effect. The fund event
// fires only when the resulting balance leaves the dapp active.
func (k Keeper) FundDapp(ctx sdk.Context, caller, contract sdk.AccAddress, amount math.Int) error {
	if err := k.escrowCoins(ctx, caller, amount); err != nil {
		return err
	}

	dapp, found := k.GetDapp(ctx, contract)
	if !found || dapp.Owner != caller.String() {
		k.refundCoins(ctx, caller, amount)
		return nil
	}

	dapp.Balance = dapp.Balance.Add(amount)
	if dapp.Balance.IsPositive() {
		dapp.Status = captchatypes.StatusActive
	} else {
		dapp.Status = captchatypes.StatusSuspended
	}
	k.SetDapp(ctx, contract, dapp)

	k.metrics.DappBalance.WithLabelValues(contract.String(), k.GetParams(ctx).StakeDenom).Set(floatFromInt(dapp.Balance))

	if dapp.Status == captchatypes.StatusActive {
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			captchatypes.EventTypeDappFund,
			sdk.NewAttribute(captchatypes.AttributeKeyContract, contract.String()),
			sdk.NewAttribute(captchatypes.AttributeKeyValue, dapp.Balance.String()),
		))
	}
	return nil
}

// CancelDapp refunds a dapp's remaining balance to its owner and deactivates
// it. A zero balance succeeds without effect.
func (k Keeper) CancelDapp(ctx sdk.Context, caller, contract sdk.AccAddress) error {
	dapp, found := k.GetDapp(ctx, contract)
	if !found {
		return sdkerrors.Wrapf(captchatypes.ErrDappDoesNotExist, "dapp %s", contract)
	}
	if dapp.Owner != caller.String() {
		return sdkerrors.Wrapf(captchatypes.ErrNotAuthorised, "%s does not own dapp %s", caller, contract)
	}
	if !dapp.Balance.IsPositive() {
		return nil
	}

	refunded := dapp.Balance
	if err := k.withdrawCoins(ctx, caller, refunded); err != nil {
		return err
	}

	dapp.Balance = math.ZeroInt()
	dapp.Status = captchatypes.StatusDeactivated
	k.SetDapp(ctx, contract, dapp)

	k.metrics.DappsCancelled.Inc()
	k.metrics.DappBalance.WithLabelValues(contract.String(), k.GetParams(ctx).StakeDenom).Set(0)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		captchatypes.EventTypeDappCancel,
		sdk.NewAttribute(captchatypes.AttributeKeyContract, contract.String()),
		sdk.NewAttribute(captchatypes.AttributeKeyValue, refunded.String()),
	))
	return nil
}
