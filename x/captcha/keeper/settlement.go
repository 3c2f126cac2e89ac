package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	captchatypes "github.com/takahser/protocol/x/captcha/types"
)

// feeAmount widens a provider's fee to the balance type. Zero when the payee
// direction disables settlement.
func feeAmount(provider captchatypes.Provider) math.Int {
	if provider.Fee == 0 || provider.Payee == captchatypes.PayeeNone {
		return math.ZeroInt()
	}
	return math.NewIntFromUint64(uint64(provider.Fee))
}

// ensureSettleable checks that the paying side can cover the fee. The check
// runs before any mutation in the adjudication path; an uncovered fee rejects
// the call instead of driving a tracked balance negative.
func ensureSettleable(provider captchatypes.Provider, dapp captchatypes.Dapp) error {
	fee := feeAmount(provider)
	if fee.IsZero() {
		return nil
	}
	switch provider.Payee {
	case captchatypes.PayeeProvider:
		if dapp.Balance.LT(fee) {
			return sdkerrors.Wrapf(captchatypes.ErrDappInsufficientFunds, "fee %s exceeds dapp balance %s", fee, dapp.Balance)
		}
	case captchatypes.PayeeDapp:
		if provider.Balance.LT(fee) {
			return sdkerrors.Wrapf(captchatypes.ErrProviderInsufficientFunds, "fee %s exceeds provider balance %s", fee, provider.Balance)
		}
	}
	return nil
}

// PayFee settles one adjudicated solution's fee between a provider and a
// dapp. The fee moves between the two tracked balances inside the module
// escrow, so their sum is preserved. A zero fee or a None payee is a no-op.
func (k Keeper) PayFee(ctx sdk.Context, providerAddr, contract sdk.AccAddress) error {
	provider, found := k.GetProvider(ctx, providerAddr)
	if !found {
		return sdkerrors.Wrapf(captchatypes.ErrProviderDoesNotExist, "provider %s", providerAddr)
	}
	dapp, found := k.GetDapp(ctx, contract)
	if !found {
		return sdkerrors.Wrapf(captchatypes.ErrDappDoesNotExist, "dapp %s", contract)
	}

	fee := feeAmount(provider)
	if fee.IsZero() {
		return nil
	}
	if err := ensureSettleable(provider, dapp); err != nil {
		return err
	}

	switch provider.Payee {
	case captchatypes.PayeeProvider:
		provider.Balance = provider.Balance.Add(fee)
		dapp.Balance = dapp.Balance.Sub(fee)
	case captchatypes.PayeeDapp:
		provider.Balance = provider.Balance.Sub(fee)
		dapp.Balance = dapp.Balance.Add(fee)
	}
	k.SetProvider(ctx, providerAddr, provider)
	k.SetDapp(ctx, contract, dapp)

	k.metrics.FeesSettled.WithLabelValues(string(provider.Payee)).Inc()

	if k.hooks != nil {
		if hookErr := k.hooks.AfterFeeSettled(ctx, providerAddr, contract, fee); hookErr != nil {
			k.Logger(ctx).Error("fee settled hook failed", "provider", providerAddr.String(), "error", hookErr)
		}
	}
	return nil
}
