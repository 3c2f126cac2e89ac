package keeper

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	captchatypes "github.com/takahser/protocol/x/captcha/types"
)

// GetParams returns the current module parameters, falling back to defaults
// when the store has never been initialised.
func (k Keeper) GetParams(ctx sdk.Context) captchatypes.Params {
	store := k.getStore(ctx)
	bz := store.Get(captchatypes.ParamsKey)
	if bz == nil {
		return captchatypes.DefaultParams()
	}
	var params captchatypes.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		panic(err)
	}
	return params
}

// SetParams stores the module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params captchatypes.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(captchatypes.ParamsKey, bz)
	return nil
}
