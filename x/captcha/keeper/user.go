package keeper

import (
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	captchatypes "github.com/takahser/protocol/x/captcha/types"
)

// GetDappUser returns the reputation counters for an account, if present.
func (k Keeper) GetDappUser(ctx sdk.Context, addr sdk.AccAddress) (captchatypes.DappUser, bool) {
	store := k.getStore(ctx)
	bz := store.Get(captchatypes.DappUserKey(addr))
	if bz == nil {
		return captchatypes.DappUser{}, false
	}
	var user captchatypes.DappUser
	if err := json.Unmarshal(bz, &user); err != nil {
		panic(err)
	}
	return user, true
}

// SetDappUser stores an account's reputation counters.
func (k Keeper) SetDappUser(ctx sdk.Context, addr sdk.AccAddress, user captchatypes.DappUser) {
	bz, err := json.Marshal(user)
	if err != nil {
		panic(err)
	}
	k.getStore(ctx).Set(captchatypes.DappUserKey(addr), bz)
}

// IterateDappUsers walks all reputation records in key order.
func (k Keeper) IterateDappUsers(ctx sdk.Context, cb func(addr sdk.AccAddress, user captchatypes.DappUser) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, captchatypes.DappUserKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var user captchatypes.DappUser
		if err := json.Unmarshal(iterator.Value(), &user); err != nil {
			panic(err)
		}
		addr := sdk.AccAddress(iterator.Key()[len(captchatypes.DappUserKeyPrefix):])
		if cb(addr, user) {
			break
		}
	}
}

// ensureDappUser creates an account's reputation record on first contact.
// Existing counters are left untouched.
func (k Keeper) ensureDappUser(ctx sdk.Context, addr sdk.AccAddress) {
	if _, found := k.GetDappUser(ctx, addr); found {
		return
	}
	k.SetDappUser(ctx, addr, captchatypes.DappUser{})
}

// IsHumanUser reports whether an account's adjudication history clears the
// given correctness threshold percentage. The percentage is computed with
// integer arithmetic; an account with no adjudications yet scores zero, so it
// only clears a zero threshold.
func (k Keeper) IsHumanUser(ctx sdk.Context, addr sdk.AccAddress, thresholdPercent uint8) (bool, error) {
	user, found := k.GetDappUser(ctx, addr)
	if !found {
		return false, sdkerrors.Wrapf(captchatypes.ErrDappUserDoesNotExist, "user %s", addr)
	}

	total := user.CorrectCaptchas + user.IncorrectCaptchas
	if total == 0 {
		return thresholdPercent == 0, nil
	}
	percent := user.CorrectCaptchas * 100 / total
	return percent >= uint64(thresholdPercent), nil
}
