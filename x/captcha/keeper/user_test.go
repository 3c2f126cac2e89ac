package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/takahser/protocol/testutil/keeper"
	"github.com/takahser/protocol/x/captcha/types"
)

// TestIsHumanUser_Unknown tests the missing-user error
func TestIsHumanUser_Unknown(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	_, err := f.Keeper.IsHumanUser(f.Ctx, testAddr(0x07), 80)
	require.ErrorIs(t, err, types.ErrDappUserDoesNotExist)
}

// TestIsHumanUser_Thresholds tests the integer percentage cut-off across
// counter mixes
func TestIsHumanUser_Thresholds(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)

	tests := []struct {
		name      string
		correct   uint64
		incorrect uint64
		threshold uint8
		want      bool
	}{
		{"all correct meets any threshold", 5, 0, 100, true},
		{"exactly at threshold", 4, 1, 80, true},
		{"just under threshold", 3, 1, 80, false},
		{"all incorrect", 0, 5, 1, false},
		{"zero threshold always passes", 0, 5, 0, true},
		{"integer division truncates", 2, 1, 67, false},
	}
	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			addr := testAddr(byte(0x10 + i))
			f.Keeper.SetDappUser(f.Ctx, addr, types.DappUser{
				CorrectCaptchas:   tc.correct,
				IncorrectCaptchas: tc.incorrect,
			})
			human, err := f.Keeper.IsHumanUser(f.Ctx, addr, tc.threshold)
			require.NoError(t, err)
			require.Equal(t, tc.want, human)
		})
	}
}

// TestIsHumanUser_NoHistory tests a user with a row but no adjudicated
// commitments yet: only a zero threshold treats them as human
func TestIsHumanUser_NoHistory(t *testing.T) {
	f := keepertest.CaptchaKeeper(t)
	addr := testAddr(0x07)
	f.Keeper.SetDappUser(f.Ctx, addr, types.DappUser{})

	human, err := f.Keeper.IsHumanUser(f.Ctx, addr, 1)
	require.NoError(t, err)
	require.False(t, human)

	human, err = f.Keeper.IsHumanUser(f.Ctx, addr, 0)
	require.NoError(t, err)
	require.True(t, human)
}
