package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/takahser/protocol/testutil/keeper"
	"github.com/takahser/protocol/x/captcha/keeper"
	"github.com/takahser/protocol/x/captcha/types"
)

// TestAllInvariants_CleanAfterScenario tests that a full register, fund,
// commit and adjudicate cycle leaves every invariant intact
func TestAllInvariants_CleanAfterScenario(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))
	owner, contract := setupActiveDapp(t, f, math.NewInt(100))

	user := testAddr(0x07)
	id, err := f.Keeper.CommitSolution(f.Ctx, user, contract, testRoot, "0xcccc")
	require.NoError(t, err)
	require.NoError(t, f.Keeper.ProviderApprove(f.Ctx, provider, id))

	msg, broken := keeper.AllInvariants(*f.Keeper)(f.Ctx)
	require.False(t, broken, msg)

	require.NoError(t, f.Keeper.CancelDapp(f.Ctx, owner, contract))
	require.NoError(t, f.Keeper.UnstakeProvider(f.Ctx, provider))

	msg, broken = keeper.AllInvariants(*f.Keeper)(f.Ctx)
	require.False(t, broken, msg)
}

// TestCommitmentIndexesInvariant_DetectsGap tests gap detection
func TestCommitmentIndexesInvariant_DetectsGap(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)

	f.Keeper.SetCommitment(f.Ctx, 2, types.CaptchaSolutionCommitment{
		Account:          testAddr(0x07).String(),
		CaptchaDatasetId: testRoot,
		Status:           types.StatusPending,
		Contract:         testAddr(0x04).String(),
	})
	f.Keeper.SetCommitmentCount(f.Ctx, 2)

	msg, broken := keeper.CommitmentIndexesInvariant(*f.Keeper)(f.Ctx)
	require.True(t, broken, msg)
}

// TestLegalStatusesInvariant_DetectsIllegalStatus tests that a commitment
// status outside the pending cycle trips the invariant
func TestLegalStatusesInvariant_DetectsIllegalStatus(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)

	f.Keeper.SetCommitment(f.Ctx, 1, types.CaptchaSolutionCommitment{
		Account:          testAddr(0x07).String(),
		CaptchaDatasetId: testRoot,
		Status:           types.StatusSuspended,
		Contract:         testAddr(0x04).String(),
	})
	f.Keeper.SetCommitmentCount(f.Ctx, 1)

	msg, broken := keeper.LegalStatusesInvariant(*f.Keeper)(f.Ctx)
	require.True(t, broken, msg)
}

// TestEscrowBalanceInvariant_DetectsShortfall tests that a tracked balance
// without backing escrow trips the invariant
func TestEscrowBalanceInvariant_DetectsShortfall(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)

	f.Keeper.SetProvider(f.Ctx, testAddr(0x02), types.Provider{
		Status:  types.StatusActive,
		Balance: math.NewInt(1000),
		Payee:   types.PayeeNone,
	})

	msg, broken := keeper.EscrowBalanceInvariant(*f.Keeper)(f.Ctx)
	require.True(t, broken, msg)
}
