package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CaptchaHooks defines the interface for captcha module callbacks. Dispute
// handling, misbehaviour reporting and operator rotation are expected to be
// built on top of these notifications by dependent modules.
type CaptchaHooks interface {
	// AfterProviderRegistered is called when a new captcha provider registers.
	AfterProviderRegistered(ctx context.Context, provider sdk.AccAddress) error

	// AfterProviderDeactivated is called when a provider is deregistered or
	// unstakes its full balance.
	AfterProviderDeactivated(ctx context.Context, provider sdk.AccAddress) error

	// AfterSolutionAdjudicated is called when a provider approves or
	// disapproves a solution commitment. approved reports the verdict.
	AfterSolutionAdjudicated(ctx context.Context, commitmentID uint64, account sdk.AccAddress, approved bool) error

	// AfterFeeSettled is called when a captcha fee moves between a provider
	// and a dapp balance.
	AfterFeeSettled(ctx context.Context, provider, dapp sdk.AccAddress, fee sdkmath.Int) error
}

// MultiCaptchaHooks combines multiple captcha hooks into a single hook that calls all of them.
type MultiCaptchaHooks []CaptchaHooks

// NewMultiCaptchaHooks creates a new MultiCaptchaHooks from a list of hooks.
func NewMultiCaptchaHooks(hooks ...CaptchaHooks) MultiCaptchaHooks {
	return hooks
}

// AfterProviderRegistered calls AfterProviderRegistered on all registered hooks.
func (h MultiCaptchaHooks) AfterProviderRegistered(ctx context.Context, provider sdk.AccAddress) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterProviderRegistered(ctx, provider); err != nil {
			return err
		}
	}
	return nil
}

// AfterProviderDeactivated calls AfterProviderDeactivated on all registered hooks.
func (h MultiCaptchaHooks) AfterProviderDeactivated(ctx context.Context, provider sdk.AccAddress) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterProviderDeactivated(ctx, provider); err != nil {
			return err
		}
	}
	return nil
}

// AfterSolutionAdjudicated calls AfterSolutionAdjudicated on all registered hooks.
func (h MultiCaptchaHooks) AfterSolutionAdjudicated(ctx context.Context, commitmentID uint64, account sdk.AccAddress, approved bool) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterSolutionAdjudicated(ctx, commitmentID, account, approved); err != nil {
			return err
		}
	}
	return nil
}

// AfterFeeSettled calls AfterFeeSettled on all registered hooks.
func (h MultiCaptchaHooks) AfterFeeSettled(ctx context.Context, provider, dapp sdk.AccAddress, fee sdkmath.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterFeeSettled(ctx, provider, dapp, fee); err != nil {
			return err
		}
	}
	return nil
}
