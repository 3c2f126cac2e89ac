package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/takahser/protocol/x/captcha/types"
)

// RegisterInvariants registers all captcha invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "commitment-indexes", CommitmentIndexesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "legal-statuses", LegalStatusesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "escrow-balance", EscrowBalanceInvariant(k))
}

// AllInvariants runs all invariants of the captcha module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := CommitmentIndexesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = LegalStatusesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return EscrowBalanceInvariant(k)(ctx)
	}
}

// CommitmentIndexesInvariant checks that commitment indexes are gapless from
// 1 up to the stored counter and that index 0 is never assigned.
func CommitmentIndexesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		expected := uint64(1)
		k.IterateCommitments(ctx, func(id uint64, commitment types.CaptchaSolutionCommitment) bool {
			if id == 0 {
				count++
				msg += "commitment with index 0\n"
				return false
			}
			if id != expected {
				count++
				msg += fmt.Sprintf("commitment index gap: expected %d, found %d\n", expected, id)
			}
			expected = id + 1
			return false
		})

		if expected-1 != k.GetCommitmentCount(ctx) {
			count++
			msg += fmt.Sprintf("commitment counter %d does not match highest index %d\n",
				k.GetCommitmentCount(ctx), expected-1)
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "commitment-indexes",
			fmt.Sprintf("found %d commitment index violations\n%s", count, msg),
		), broken
	}
}

// LegalStatusesInvariant checks that every stored row carries a status value
// legal for its entity.
func LegalStatusesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		k.IterateProviders(ctx, func(addr sdk.AccAddress, provider types.Provider) bool {
			if provider.Status != types.StatusActive && provider.Status != types.StatusDeactivated {
				count++
				msg += fmt.Sprintf("provider %s has illegal status %s\n", addr, provider.Status)
			}
			if provider.Balance.IsNil() || provider.Balance.IsNegative() {
				count++
				msg += fmt.Sprintf("provider %s has negative balance\n", addr)
			}
			return false
		})

		k.IterateDapps(ctx, func(contract sdk.AccAddress, dapp types.Dapp) bool {
			switch dapp.Status {
			case types.StatusActive, types.StatusSuspended, types.StatusDeactivated:
			default:
				count++
				msg += fmt.Sprintf("dapp %s has illegal status %s\n", contract, dapp.Status)
			}
			if dapp.Balance.IsNil() || dapp.Balance.IsNegative() {
				count++
				msg += fmt.Sprintf("dapp %s has negative balance\n", contract)
			}
			return false
		})

		k.IterateCommitments(ctx, func(id uint64, commitment types.CaptchaSolutionCommitment) bool {
			switch commitment.Status {
			case types.StatusPending, types.StatusApproved, types.StatusDisapproved:
			default:
				count++
				msg += fmt.Sprintf("commitment %d has illegal status %s\n", id, commitment.Status)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "legal-statuses",
			fmt.Sprintf("found %d status violations\n%s", count, msg),
		), broken
	}
}

// EscrowBalanceInvariant checks that the module account covers every tracked
// provider and dapp balance.
func EscrowBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		tracked := math.ZeroInt()
		k.IterateProviders(ctx, func(_ sdk.AccAddress, provider types.Provider) bool {
			tracked = tracked.Add(provider.Balance)
			return false
		})
		k.IterateDapps(ctx, func(_ sdk.AccAddress, dapp types.Dapp) bool {
			tracked = tracked.Add(dapp.Balance)
			return false
		})

		denom := k.GetParams(ctx).StakeDenom
		escrowed := k.bankKeeper.GetBalance(ctx, k.GetModuleAddress(), denom).Amount

		broken := escrowed.LT(tracked)
		return sdk.FormatInvariant(
			types.ModuleName, "escrow-balance",
			fmt.Sprintf("module escrow %s%s below tracked balances %s%s\n",
				escrowed, denom, tracked, denom),
		), broken
	}
}
