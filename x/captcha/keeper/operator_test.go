package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/takahser/protocol/testutil/keeper"
)

// TestAddOperator tests that an operator can admit another operator
func TestAddOperator(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)

	candidate := testAddr(0x08)
	require.False(t, f.Keeper.IsOperator(f.Ctx, candidate))

	require.NoError(t, f.Keeper.AddOperator(f.Ctx, operator, candidate))
	require.True(t, f.Keeper.IsOperator(f.Ctx, candidate))
}

// TestAddOperator_NotOperator tests that a non-operator caller is ignored
// without error
func TestAddOperator_NotOperator(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	setupOperator(t, f)

	stranger := testAddr(0x09)
	candidate := testAddr(0x08)

	require.NoError(t, f.Keeper.AddOperator(f.Ctx, stranger, candidate))
	require.False(t, f.Keeper.IsOperator(f.Ctx, candidate))
}

// TestAddOperator_AlreadyOperator tests the idempotent re-add
func TestAddOperator_AlreadyOperator(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)

	require.NoError(t, f.Keeper.AddOperator(f.Ctx, operator, operator))
	require.True(t, f.Keeper.IsOperator(f.Ctx, operator))
	require.Len(t, f.Keeper.GetOperators(f.Ctx), 1)
}

// TestGetOperators tests the full operator listing
func TestGetOperators(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	operator := setupOperator(t, f)

	second := testAddr(0x08)
	require.NoError(t, f.Keeper.AddOperator(f.Ctx, operator, second))

	operators := f.Keeper.GetOperators(f.Ctx)
	require.Len(t, operators, 2)
	require.Contains(t, operators, operator.String())
	require.Contains(t, operators, second.String())
}
