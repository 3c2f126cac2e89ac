package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/takahser/protocol/testutil/keeper"
	"github.com/takahser/protocol/x/captcha/keeper"
	"github.com/takahser/protocol/x/captcha/types"
)

// TestMsgServer_FullLifecycle drives the whole protocol through the message
// surface: operator admits a provider, the provider stakes and publishes a
// dataset, a dapp registers, a user commits a solution and the provider
// approves it
func TestMsgServer_FullLifecycle(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	srv := keeper.NewMsgServerImpl(*f.Keeper)

	provider := testAddr(0x02)
	f.FundAccount(t, provider, math.NewInt(100))

	_, err := srv.RegisterProvider(f.Ctx, &types.MsgRegisterProvider{
		Creator:       operator.String(),
		ServiceOrigin: "0xaaaa",
		Fee:           1,
		Payee:         types.PayeeProvider,
		Provider:      provider.String(),
	})
	require.NoError(t, err)

	_, err = srv.StakeProvider(f.Ctx, &types.MsgStakeProvider{
		Provider: provider.String(),
		Amount:   math.NewInt(100),
	})
	require.NoError(t, err)

	dataResp, err := srv.AddDataSet(f.Ctx, &types.MsgAddDataSet{
		Provider:       provider.String(),
		MerkleTreeRoot: testRoot,
		CaptchaType:    1,
	})
	require.NoError(t, err)
	require.Equal(t, testRoot, dataResp.CaptchaDatasetId)

	owner := testAddr(0x03)
	contract := testAddr(0x04)
	f.FundAccount(t, owner, math.NewInt(100))

	_, err = srv.RegisterDapp(f.Ctx, &types.MsgRegisterDapp{
		Creator:      owner.String(),
		ClientOrigin: "0xbbbb",
		Contract:     contract.String(),
		Amount:       math.NewInt(100),
	})
	require.NoError(t, err)

	user := testAddr(0x07)
	commitResp, err := srv.CommitSolution(f.Ctx, &types.MsgCommitSolution{
		Account:            user.String(),
		Contract:           contract.String(),
		CaptchaDatasetId:   testRoot,
		UserMerkleTreeRoot: "0xcccc",
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), commitResp.CommitmentId)

	_, err = srv.ApproveSolution(f.Ctx, &types.MsgApproveSolution{
		Provider:     provider.String(),
		CommitmentId: commitResp.CommitmentId,
	})
	require.NoError(t, err)

	require.Equal(t, math.NewInt(101), f.Keeper.GetProviderBalance(f.Ctx, provider))
	require.Equal(t, math.NewInt(99), f.Keeper.GetDappBalance(f.Ctx, contract))
}

// TestMsgServer_RejectsInvalidMessage tests that stateless validation runs
// before any keeper call
func TestMsgServer_RejectsInvalidMessage(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)

	_, err := srv.RegisterProvider(f.Ctx, &types.MsgRegisterProvider{
		Creator:       "not-an-address",
		ServiceOrigin: "0xaaaa",
		Payee:         types.PayeeProvider,
		Provider:      testAddr(0x02).String(),
	})
	require.Error(t, err)

	_, err = srv.ApproveSolution(f.Ctx, &types.MsgApproveSolution{
		Provider:     testAddr(0x02).String(),
		CommitmentId: 0,
	})
	require.Error(t, err)
}

// TestMsgServer_StakeUnknownProvider tests that the keeper error surfaces
// through the message handler
func TestMsgServer_StakeUnknownProvider(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	srv := keeper.NewMsgServerImpl(*f.Keeper)

	caller := testAddr(0x02)
	f.FundAccount(t, caller, math.NewInt(10))

	_, err := srv.StakeProvider(f.Ctx, &types.MsgStakeProvider{
		Provider: caller.String(),
		Amount:   math.NewInt(10),
	})
	require.ErrorIs(t, err, types.ErrProviderDoesNotExist)
}
