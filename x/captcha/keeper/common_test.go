package keeper_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/takahser/protocol/testutil/keeper"
	"github.com/takahser/protocol/x/captcha/types"
)

const testRoot = "0x5dd1623e9db5e192d456cb28d3e2bd12d2a2a3db844f9ae1e8976f50e91a4bbf"

// testAddr derives a deterministic test address from a single byte tag.
func testAddr(tag byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{tag}, 20))
}

// setupOperator seeds an operator account into the fixture and returns it.
func setupOperator(t *testing.T, f keepertest.CaptchaTestFixture) sdk.AccAddress {
	operator := testAddr(0x01)
	f.SeedOperator(t, operator)
	return operator
}

// setupActiveProvider registers, funds and stakes a provider past the
// threshold and registers a dataset for it.
func setupActiveProvider(t *testing.T, f keepertest.CaptchaTestFixture, operator sdk.AccAddress, fee uint32, payee types.Payee, stake math.Int) sdk.AccAddress {
	provider := testAddr(0x02)
	require.NoError(t, f.Keeper.RegisterProvider(f.Ctx, operator, provider, "0xaaaa", fee, payee))
	f.FundAccount(t, provider, stake)
	require.NoError(t, f.Keeper.StakeProvider(f.Ctx, provider, stake))
	require.NoError(t, f.Keeper.AddDataSet(f.Ctx, provider, testRoot, 0))
	return provider
}

// setupActiveDapp registers a dapp contract with an initial balance paid by
// its owner.
func setupActiveDapp(t *testing.T, f keepertest.CaptchaTestFixture, balance math.Int) (owner, contract sdk.AccAddress) {
	owner = testAddr(0x03)
	contract = testAddr(0x04)
	f.FundAccount(t, owner, balance)
	require.NoError(t, f.Keeper.RegisterDapp(f.Ctx, owner, "0xbbbb", contract, "", balance))
	return owner, contract
}

// spendable reads an account's liquid balance in the stake denom.
func spendable(f keepertest.CaptchaTestFixture, addr sdk.AccAddress) math.Int {
	denom := f.Keeper.GetParams(f.Ctx).StakeDenom
	return f.BankKeeper.GetBalance(f.Ctx, addr, denom).Amount
}
