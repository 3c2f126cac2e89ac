package keeper

import (
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	captchatypes "github.com/takahser/protocol/x/captcha/types"
)

// GetProvider returns the provider record for an account, if present.
func (k Keeper) GetProvider(ctx sdk.Context, addr sdk.AccAddress) (captchatypes.Provider, bool) {
	store := k.getStore(ctx)
	bz := store.Get(captchatypes.ProviderKey(addr))
	if bz == nil {
		return captchatypes.Provider{}, false
	}
	var provider captchatypes.Provider
	if err := json.Unmarshal(bz, &provider); err != nil {
		panic(err)
	}
	return provider, true
}

// SetProvider stores a provider record.
func (k Keeper) SetProvider(ctx sdk.Context, addr sdk.AccAddress, provider captchatypes.Provider) {
	bz, err := json.Marshal(provider)
	if err != nil {
		panic(err)
	}
	k.getStore(ctx).Set(captchatypes.ProviderKey(addr), bz)
}

// IterateProviders walks all provider records in key order.
func (k Keeper) IterateProviders(ctx sdk.Context, cb func(addr sdk.AccAddress, provider captchatypes.Provider) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, captchatypes.ProviderKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var provider captchatypes.Provider
		if err := json.Unmarshal(iterator.Value(), &provider); err != nil {
			panic(err)
		}
		addr := sdk.AccAddress(iterator.Key()[len(captchatypes.ProviderKeyPrefix):])
		if cb(addr, provider) {
			break
		}
	}
}

// GetProviderBalance returns a provider's tracked balance, zero for unknown
// accounts.
func (k Keeper) GetProviderBalance(ctx sdk.Context, addr sdk.AccAddress) math.Int {
	provider, found := k.GetProvider(ctx, addr)
	if !found {
		return math.ZeroInt()
	}
	return provider.Balance
}

// RegisterProvider admits a new provider. Only operators may register
// providers; the row starts deactivated with no stake and no dataset.
func (k Keeper) RegisterProvider(ctx sdk.Context, caller, provider sdk.AccAddress, serviceOrigin string, fee uint32, payee captchatypes.Payee) error {
	if !k.IsOperator(ctx, caller) {
		return sdkerrors.Wrapf(captchatypes.ErrNotAuthorised, "%s is not an operator", caller)
	}
	if _, found := k.GetProvider(ctx, provider); found {
		return sdkerrors.Wrapf(captchatypes.ErrProviderExists, "provider %s", provider)
	}

	k.SetProvider(ctx, provider, captchatypes.Provider{
		Status:           captchatypes.StatusDeactivated,
		Balance:          math.ZeroInt(),
		Fee:              fee,
		Payee:            payee,
		ServiceOrigin:    serviceOrigin,
		CaptchaDatasetId: captchatypes.ZeroHash,
	})

	k.metrics.ProvidersRegistered.Inc()
	k.afterProviderRegistered(ctx, provider)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		captchatypes.EventTypeProviderRegister,
		sdk.NewAttribute(captchatypes.AttributeKeyAccount, provider.String()),
	))
	return nil
}

// UpdateProvider overwrites a provider's registration details. Only the
// provider itself may update; any attached amount is added to its balance and
// the status drops back to deactivated so the threshold check reruns on the
// next stake.
func (k Keeper) UpdateProvider(ctx sdk.Context, caller sdk.AccAddress, serviceOrigin string, fee uint32, payee captchatypes.Payee, amount math.Int) error {
	provider, found := k.GetProvider(ctx, caller)
	if !found {
		return sdkerrors.Wrapf(captchatypes.ErrProviderDoesNotExist, "provider %s", caller)
	}

	if err := k.escrowCoins(ctx, caller, amount); err != nil {
		return err
	}

	provider.Balance = provider.Balance.Add(amount)
	provider.Fee = fee
	provider.Payee = payee
	provider.ServiceOrigin = serviceOrigin
	provider.Status = captchatypes.StatusDeactivated
	k.SetProvider(ctx, caller, provider)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		captchatypes.EventTypeProviderUpdate,
		sdk.NewAttribute(captchatypes.AttributeKeyAccount, caller.String()),
	))
	return nil
}

// DeregisterProvider forces a provider back to deactivated status. The call
// is a silent no-op for non-operators; the provider's balance is untouched.
func (k Keeper) DeregisterProvider(ctx sdk.Context, caller, addr sdk.AccAddress) error {
	if !k.IsOperator(ctx, caller) {
		return nil
	}
	provider, found := k.GetProvider(ctx, addr)
	if !found {
		return sdkerrors.Wrapf(captchatypes.ErrProviderDoesNotExist, "provider %s", addr)
	}

	wasActive := provider.Status == captchatypes.StatusActive
	provider.Status = captchatypes.StatusDeactivated
	k.SetProvider(ctx, addr, provider)

	k.metrics.ProvidersDeregistered.Inc()
	if wasActive {
		k.metrics.ProvidersActive.Dec()
	}
	k.afterProviderDeactivated(ctx, addr)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		captchatypes.EventTypeProviderDeregister,
		sdk.NewAttribute(captchatypes.AttributeKeyAccount, addr.String()),
	))
	return nil
}

// StakeProvider escrows the attached amount into the provider's balance and
// activates the provider once the stake threshold is reached.
func (k Keeper) StakeProvider(ctx sdk.Context, caller sdk.AccAddress, amount math.Int) error {
	if !amount.IsPositive() {
		return sdkerrors.Wrap(captchatypes.ErrInsufficientBalance, "stake requires an attached amount")
	}
	if err := k.escrowCoins(ctx, caller, amount); err != nil {
		return err
	}

	provider, found := k.GetProvider(ctx, caller)
	if !found {
		k.refundCoins(ctx, caller, amount)
		return sdkerrors.Wrapf(captchatypes.ErrProviderDoesNotExist, "provider %s", caller)
	}

	params := k.GetParams(ctx)
	provider.Balance = provider.Balance.Add(amount)
	if provider.Balance.GTE(params.ProviderStakeThreshold) && provider.Status != captchatypes.StatusActive {
		provider.Status = captchatypes.StatusActive
		k.metrics.ProvidersActive.Inc()
	}
	k.SetProvider(ctx, caller, provider)
	k.metrics.ProviderStake.WithLabelValues(caller.String(), params.StakeDenom).Set(floatFromInt(provider.Balance))

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		captchatypes.EventTypeProviderStake,
		sdk.NewAttribute(captchatypes.AttributeKeyAccount, caller.String()),
		sdk.NewAttribute(captchatypes.AttributeKeyValue, provider.Balance.String()),
	))
	return nil
}

// UnstakeProvider refunds the provider's full balance and deactivates it. A
// zero balance succeeds without effect.
func (k Keeper) UnstakeProvider(ctx sdk.Context, caller sdk.AccAddress) error {
	provider, found := k.GetProvider(ctx, caller)
	if !found {
		return sdkerrors.Wrapf(captchatypes.ErrProviderDoesNotExist, "provider %s", caller)
	}
	if !provider.Balance.IsPositive() {
		return nil
	}

	refunded := provider.Balance
	if err := k.withdrawCoins(ctx, caller, refunded); err != nil {
		return err
	}

	wasActive := provider.Status == captchatypes.StatusActive
	provider.Balance = math.ZeroInt()
	provider.Status = captchatypes.StatusDeactivated
	k.SetProvider(ctx, caller, provider)

	k.metrics.ProvidersDeregistered.Inc()
	if wasActive {
		k.metrics.ProvidersActive.Dec()
	}
	k.metrics.ProviderStake.WithLabelValues(caller.String(), k.GetParams(ctx).StakeDenom).Set(0)
	k.afterProviderDeactivated(ctx, caller)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		captchatypes.EventTypeProviderUnstake,
		sdk.NewAttribute(captchatypes.AttributeKeyAccount, caller.String()),
		sdk.NewAttribute(captchatypes.AttributeKeyValue, refunded.String()),
	))
	return nil
}

// GetCaptchaData returns the dataset stored under a merkle tree root, if
// present.
func (k Keeper) GetCaptchaData(ctx sdk.Context, merkleTreeRoot string) (captchatypes.CaptchaData, bool) {
	store := k.getStore(ctx)
	bz := store.Get(captchatypes.CaptchaDataKey(merkleTreeRoot))
	if bz == nil {
		return captchatypes.CaptchaData{}, false
	}
	var data captchatypes.CaptchaData
	if err := json.Unmarshal(bz, &data); err != nil {
		panic(err)
	}
	return data, true
}

// SetCaptchaData stores a dataset record keyed by its merkle tree root.
func (k Keeper) SetCaptchaData(ctx sdk.Context, data captchatypes.CaptchaData) {
	bz, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	k.getStore(ctx).Set(captchatypes.CaptchaDataKey(data.MerkleTreeRoot), bz)
}

// IterateCaptchaData walks all dataset records in key order.
func (k Keeper) IterateCaptchaData(ctx sdk.Context, cb func(data captchatypes.CaptchaData) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, captchatypes.CaptchaDataKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var data captchatypes.CaptchaData
		if err := json.Unmarshal(iterator.Value(), &data); err != nil {
			panic(err)
		}
		if cb(data) {
			break
		}
	}
}

// AddDataSet registers a captcha dataset for an active, funded provider and
// makes it the provider's current dataset. Re-adding an existing root
// overwrites it.
func (k Keeper) AddDataSet(ctx sdk.Context, caller sdk.AccAddress, merkleTreeRoot string, captchaType uint16) error {
	provider, err := k.ValidateProvider(ctx, caller)
	if err != nil {
		return err
	}

	k.SetCaptchaData(ctx, captchatypes.CaptchaData{
		Provider:       caller.String(),
		MerkleTreeRoot: merkleTreeRoot,
		CaptchaType:    captchaType,
	})
	provider.CaptchaDatasetId = merkleTreeRoot
	k.SetProvider(ctx, caller, provider)

	k.metrics.DatasetsAdded.Inc()

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		captchatypes.EventTypeProviderAddDataset,
		sdk.NewAttribute(captchatypes.AttributeKeyAccount, caller.String()),
		sdk.NewAttribute(captchatypes.AttributeKeyMerkleTreeRoot, merkleTreeRoot),
	))
	return nil
}

func floatFromInt(v math.Int) float64 {
	f, err := v.ToLegacyDec().Float64()
	if err != nil {
		return 0
	}
	return f
}
