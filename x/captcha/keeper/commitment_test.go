package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/takahser/protocol/testutil/keeper"
	"github.com/takahser/protocol/x/captcha/types"
)

// TestCommitSolution_AssignsSequentialIds tests that commitment ids are
// assigned gaplessly from 1
func TestCommitSolution_AssignsSequentialIds(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	setupActiveProvider(t, f, operator, 0, types.PayeeNone, math.NewInt(100))
	_, contract := setupActiveDapp(t, f, math.NewInt(100))

	user := testAddr(0x07)
	for want := uint64(1); want <= 3; want++ {
		id, err := f.Keeper.CommitSolution(f.Ctx, user, contract, testRoot, "0xcccc")
		require.NoError(t, err)
		require.Equal(t, want, id)
	}
	require.Equal(t, uint64(3), f.Keeper.GetCommitmentCount(f.Ctx))

	commitment, found := f.Keeper.GetCommitment(f.Ctx, 2)
	require.True(t, found)
	require.Equal(t, user.String(), commitment.Account)
	require.Equal(t, testRoot, commitment.CaptchaDatasetId)
	require.Equal(t, "0xcccc", commitment.UserMerkleTreeRoot)
	require.Equal(t, types.StatusPending, commitment.Status)
	require.Equal(t, contract.String(), commitment.Contract)
}

// TestCommitSolution_CreatesDappUser tests that a first commitment creates
// the caller's reputation row with zeroed counters
func TestCommitSolution_CreatesDappUser(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	setupActiveProvider(t, f, operator, 0, types.PayeeNone, math.NewInt(100))
	_, contract := setupActiveDapp(t, f, math.NewInt(100))

	user := testAddr(0x07)
	_, err := f.Keeper.CommitSolution(f.Ctx, user, contract, testRoot, "0xcccc")
	require.NoError(t, err)

	row, found := f.Keeper.GetDappUser(f.Ctx, user)
	require.True(t, found)
	require.Zero(t, row.CorrectCaptchas)
	require.Zero(t, row.IncorrectCaptchas)
}

// TestCommitSolution_UnknownDataset tests the dataset existence gate
func TestCommitSolution_UnknownDataset(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	_, contract := setupActiveDapp(t, f, math.NewInt(100))

	_, err := f.Keeper.CommitSolution(f.Ctx, testAddr(0x07), contract, "0x9999", "0xcccc")
	require.ErrorIs(t, err, types.ErrCaptchaDataDoesNotExist)
	require.Zero(t, f.Keeper.GetCommitmentCount(f.Ctx))
}

// TestCommitSolution_InactiveDapp tests that a suspended dapp rejects
// commitments
func TestCommitSolution_InactiveDapp(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	setupActiveProvider(t, f, operator, 0, types.PayeeNone, math.NewInt(100))

	owner := testAddr(0x03)
	contract := testAddr(0x04)
	require.NoError(t, f.Keeper.RegisterDapp(f.Ctx, owner, "0xbbbb", contract, "", math.ZeroInt()))

	_, err := f.Keeper.CommitSolution(f.Ctx, testAddr(0x07), contract, testRoot, "0xcccc")
	require.ErrorIs(t, err, types.ErrDappInactive)
}

// TestCommitSolution_UnknownDapp tests the missing-dapp gate
func TestCommitSolution_UnknownDapp(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	setupActiveProvider(t, f, operator, 0, types.PayeeNone, math.NewInt(100))

	_, err := f.Keeper.CommitSolution(f.Ctx, testAddr(0x07), testAddr(0x44), testRoot, "0xcccc")
	require.ErrorIs(t, err, types.ErrDappDoesNotExist)
}

// TestProviderApprove_SettlesFeeToProvider tests the full approval flow: the
// commitment is approved, the user's correct counter moves and the fee moves
// from the dapp balance to the provider balance
func TestProviderApprove_SettlesFeeToProvider(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))
	_, contract := setupActiveDapp(t, f, math.NewInt(100))

	user := testAddr(0x07)
	id, err := f.Keeper.CommitSolution(f.Ctx, user, contract, testRoot, "0xcccc")
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	require.NoError(t, f.Keeper.ProviderApprove(f.Ctx, provider, id))

	commitment, _ := f.Keeper.GetCommitment(f.Ctx, id)
	require.Equal(t, types.StatusApproved, commitment.Status)
	require.Equal(t, math.NewInt(101), f.Keeper.GetProviderBalance(f.Ctx, provider))
	require.Equal(t, math.NewInt(99), f.Keeper.GetDappBalance(f.Ctx, contract))

	row, _ := f.Keeper.GetDappUser(f.Ctx, user)
	require.Equal(t, uint64(1), row.CorrectCaptchas)
	require.Zero(t, row.IncorrectCaptchas)
}

// TestProviderDisapprove tests the disapproval verdict and counter
func TestProviderDisapprove(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))
	_, contract := setupActiveDapp(t, f, math.NewInt(100))

	user := testAddr(0x07)
	id, err := f.Keeper.CommitSolution(f.Ctx, user, contract, testRoot, "0xcccc")
	require.NoError(t, err)

	require.NoError(t, f.Keeper.ProviderDisapprove(f.Ctx, provider, id))

	commitment, _ := f.Keeper.GetCommitment(f.Ctx, id)
	require.Equal(t, types.StatusDisapproved, commitment.Status)

	row, _ := f.Keeper.GetDappUser(f.Ctx, user)
	require.Zero(t, row.CorrectCaptchas)
	require.Equal(t, uint64(1), row.IncorrectCaptchas)
}

// TestAdjudicate_FirstVerdictWins tests that a second verdict on the same
// commitment succeeds without changing state or settling a second fee
func TestAdjudicate_FirstVerdictWins(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))
	_, contract := setupActiveDapp(t, f, math.NewInt(100))

	user := testAddr(0x07)
	id, err := f.Keeper.CommitSolution(f.Ctx, user, contract, testRoot, "0xcccc")
	require.NoError(t, err)
	require.NoError(t, f.Keeper.ProviderApprove(f.Ctx, provider, id))

	require.NoError(t, f.Keeper.ProviderDisapprove(f.Ctx, provider, id))

	commitment, _ := f.Keeper.GetCommitment(f.Ctx, id)
	require.Equal(t, types.StatusApproved, commitment.Status)
	require.Equal(t, math.NewInt(101), f.Keeper.GetProviderBalance(f.Ctx, provider))
	require.Equal(t, math.NewInt(99), f.Keeper.GetDappBalance(f.Ctx, contract))

	row, _ := f.Keeper.GetDappUser(f.Ctx, user)
	require.Equal(t, uint64(1), row.CorrectCaptchas)
	require.Zero(t, row.IncorrectCaptchas)
}

// TestAdjudicate_WrongDataset tests that a provider cannot adjudicate a
// commitment made against another provider's dataset
func TestAdjudicate_WrongDataset(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))
	_, contract := setupActiveDapp(t, f, math.NewInt(100))

	id, err := f.Keeper.CommitSolution(f.Ctx, testAddr(0x07), contract, testRoot, "0xcccc")
	require.NoError(t, err)

	// the provider moves to a fresh dataset before ruling
	require.NoError(t, f.Keeper.AddDataSet(f.Ctx, provider, "0xdddd", 1))

	err = f.Keeper.ProviderApprove(f.Ctx, provider, id)
	require.ErrorIs(t, err, types.ErrNotAuthorised)

	commitment, _ := f.Keeper.GetCommitment(f.Ctx, id)
	require.Equal(t, types.StatusPending, commitment.Status)
}

// TestAdjudicate_UnknownCommitment tests the missing-commitment error
func TestAdjudicate_UnknownCommitment(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))

	err := f.Keeper.ProviderApprove(f.Ctx, provider, 7)
	require.ErrorIs(t, err, types.ErrCaptchaSolutionCommitmentDoesNotExist)
}

// TestAdjudicate_InactiveProvider tests that only active providers may rule
func TestAdjudicate_InactiveProvider(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))
	_, contract := setupActiveDapp(t, f, math.NewInt(100))

	id, err := f.Keeper.CommitSolution(f.Ctx, testAddr(0x07), contract, testRoot, "0xcccc")
	require.NoError(t, err)

	require.NoError(t, f.Keeper.UnstakeProvider(f.Ctx, provider))

	err = f.Keeper.ProviderApprove(f.Ctx, provider, id)
	require.ErrorIs(t, err, types.ErrProviderInactive)
}
