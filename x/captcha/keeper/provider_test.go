package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/takahser/protocol/testutil/keeper"
	"github.com/takahser/protocol/x/captcha/types"
)

// TestRegisterProvider_Valid tests operator admission of a new provider
func TestRegisterProvider_Valid(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := testAddr(0x10)

	err := f.Keeper.RegisterProvider(f.Ctx, operator, provider, "0xaaaa", 2, types.PayeeProvider)
	require.NoError(t, err)

	stored, found := f.Keeper.GetProvider(f.Ctx, provider)
	require.True(t, found)
	require.Equal(t, types.StatusDeactivated, stored.Status)
	require.True(t, stored.Balance.IsZero())
	require.Equal(t, uint32(2), stored.Fee)
	require.Equal(t, types.PayeeProvider, stored.Payee)
	require.Equal(t, types.ZeroHash, stored.CaptchaDatasetId)
}

// TestRegisterProvider_NotOperator tests rejection of non-operator callers
func TestRegisterProvider_NotOperator(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	provider := testAddr(0x10)

	err := f.Keeper.RegisterProvider(f.Ctx, testAddr(0x11), provider, "0xaaaa", 2, types.PayeeProvider)
	require.ErrorIs(t, err, types.ErrNotAuthorised)

	_, found := f.Keeper.GetProvider(f.Ctx, provider)
	require.False(t, found)
}

// TestRegisterProvider_Duplicate tests rejection of a second registration
func TestRegisterProvider_Duplicate(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := testAddr(0x10)

	require.NoError(t, f.Keeper.RegisterProvider(f.Ctx, operator, provider, "0xaaaa", 2, types.PayeeProvider))
	err := f.Keeper.RegisterProvider(f.Ctx, operator, provider, "0xcccc", 5, types.PayeeDapp)
	require.ErrorIs(t, err, types.ErrProviderExists)
}

// TestUpdateProvider_ResetsStatus tests that an update drops the provider
// back to deactivated and keeps its dataset id
func TestUpdateProvider_ResetsStatus(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))

	err := f.Keeper.UpdateProvider(f.Ctx, provider, "0xdddd", 7, types.PayeeDapp, math.ZeroInt())
	require.NoError(t, err)

	stored, found := f.Keeper.GetProvider(f.Ctx, provider)
	require.True(t, found)
	require.Equal(t, types.StatusDeactivated, stored.Status)
	require.Equal(t, uint32(7), stored.Fee)
	require.Equal(t, "0xdddd", stored.ServiceOrigin)
	require.Equal(t, testRoot, stored.CaptchaDatasetId)
	require.Equal(t, math.NewInt(100), stored.Balance)
}

// TestUpdateProvider_AddsAttachedAmount tests that an attached amount is
// escrowed into the provider balance
func TestUpdateProvider_AddsAttachedAmount(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))
	f.FundAccount(t, provider, math.NewInt(50))

	err := f.Keeper.UpdateProvider(f.Ctx, provider, "0xaaaa", 1, types.PayeeProvider, math.NewInt(50))
	require.NoError(t, err)

	require.Equal(t, math.NewInt(150), f.Keeper.GetProviderBalance(f.Ctx, provider))
	require.True(t, spendable(f, provider).IsZero())
}

// TestUpdateProvider_Unknown tests rejection for unregistered providers
func TestUpdateProvider_Unknown(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)

	err := f.Keeper.UpdateProvider(f.Ctx, testAddr(0x10), "0xaaaa", 1, types.PayeeProvider, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrProviderDoesNotExist)
}

// TestDeregisterProvider tests operator-forced deactivation
func TestDeregisterProvider(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))

	require.NoError(t, f.Keeper.DeregisterProvider(f.Ctx, operator, provider))

	stored, _ := f.Keeper.GetProvider(f.Ctx, provider)
	require.Equal(t, types.StatusDeactivated, stored.Status)
	// balance untouched
	require.Equal(t, math.NewInt(100), stored.Balance)
}

// TestDeregisterProvider_NotOperator tests the silent no-op for outsiders
func TestDeregisterProvider_NotOperator(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))

	require.NoError(t, f.Keeper.DeregisterProvider(f.Ctx, testAddr(0x11), provider))

	stored, _ := f.Keeper.GetProvider(f.Ctx, provider)
	require.Equal(t, types.StatusActive, stored.Status)
}

// TestStakeProvider_ZeroAmount tests rejection of a stake with no value
func TestStakeProvider_ZeroAmount(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := testAddr(0x10)
	require.NoError(t, f.Keeper.RegisterProvider(f.Ctx, operator, provider, "0xaaaa", 1, types.PayeeProvider))

	err := f.Keeper.StakeProvider(f.Ctx, provider, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	stored, _ := f.Keeper.GetProvider(f.Ctx, provider)
	require.Equal(t, types.StatusDeactivated, stored.Status)
	require.True(t, stored.Balance.IsZero())
}

// TestStakeProvider_Unknown tests that an unregistered staker gets its
// attached amount back
func TestStakeProvider_Unknown(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	stranger := testAddr(0x12)
	f.FundAccount(t, stranger, math.NewInt(25))

	err := f.Keeper.StakeProvider(f.Ctx, stranger, math.NewInt(25))
	require.ErrorIs(t, err, types.ErrProviderDoesNotExist)
	require.Equal(t, math.NewInt(25), spendable(f, stranger))
}

// TestStakeProvider_ActivatesAtThreshold tests the activation edge at the
// stake threshold
func TestStakeProvider_ActivatesAtThreshold(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := testAddr(0x10)
	require.NoError(t, f.Keeper.RegisterProvider(f.Ctx, operator, provider, "0xaaaa", 1, types.PayeeProvider))
	f.FundAccount(t, provider, math.NewInt(10))

	require.NoError(t, f.Keeper.StakeProvider(f.Ctx, provider, math.NewInt(9)))
	stored, _ := f.Keeper.GetProvider(f.Ctx, provider)
	require.Equal(t, types.StatusDeactivated, stored.Status)

	require.NoError(t, f.Keeper.StakeProvider(f.Ctx, provider, math.NewInt(1)))
	stored, _ = f.Keeper.GetProvider(f.Ctx, provider)
	require.Equal(t, types.StatusActive, stored.Status)
	require.Equal(t, math.NewInt(10), stored.Balance)
}

// TestUnstakeProvider tests the full refund and deactivation
func TestUnstakeProvider(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))

	require.NoError(t, f.Keeper.UnstakeProvider(f.Ctx, provider))

	stored, _ := f.Keeper.GetProvider(f.Ctx, provider)
	require.Equal(t, types.StatusDeactivated, stored.Status)
	require.True(t, stored.Balance.IsZero())
	require.Equal(t, math.NewInt(100), spendable(f, provider))
}

// TestUnstakeProvider_ZeroBalance tests the successful no-op
func TestUnstakeProvider_ZeroBalance(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := testAddr(0x10)
	require.NoError(t, f.Keeper.RegisterProvider(f.Ctx, operator, provider, "0xaaaa", 1, types.PayeeProvider))

	require.NoError(t, f.Keeper.UnstakeProvider(f.Ctx, provider))
}

// TestUnstakeProvider_Unknown tests rejection for unregistered callers
func TestUnstakeProvider_Unknown(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	err := f.Keeper.UnstakeProvider(f.Ctx, testAddr(0x13))
	require.ErrorIs(t, err, types.ErrProviderDoesNotExist)
}

// TestAddDataSet_RequiresActiveProvider tests the validation gate on dataset
// registration
func TestAddDataSet_RequiresActiveProvider(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := testAddr(0x10)
	require.NoError(t, f.Keeper.RegisterProvider(f.Ctx, operator, provider, "0xaaaa", 1, types.PayeeProvider))

	err := f.Keeper.AddDataSet(f.Ctx, provider, testRoot, 0)
	require.ErrorIs(t, err, types.ErrProviderInactive)

	err = f.Keeper.AddDataSet(f.Ctx, testAddr(0x11), testRoot, 0)
	require.ErrorIs(t, err, types.ErrProviderDoesNotExist)
}

// TestAddDataSet_SetsCurrentDataset tests dataset upsert and the provider's
// current dataset pointer
func TestAddDataSet_SetsCurrentDataset(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)
	provider := setupActiveProvider(t, f, operator, 1, types.PayeeProvider, math.NewInt(100))

	data, found := f.Keeper.GetCaptchaData(f.Ctx, testRoot)
	require.True(t, found)
	require.Equal(t, provider.String(), data.Provider)

	const secondRoot = "0x9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
	require.NoError(t, f.Keeper.AddDataSet(f.Ctx, provider, secondRoot, 1))

	stored, _ := f.Keeper.GetProvider(f.Ctx, provider)
	require.Equal(t, secondRoot, stored.CaptchaDatasetId)

	// first dataset remains addressable
	_, found = f.Keeper.GetCaptchaData(f.Ctx, testRoot)
	require.True(t, found)
}

// TestGetProviderBalance_Unknown tests the zero-not-error contract
func TestGetProviderBalance_Unknown(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	require.True(t, f.Keeper.GetProviderBalance(f.Ctx, testAddr(0x42)).IsZero())
}
