package types_test

import (
	"bytes"
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/takahser/protocol/x/captcha/types"
)

func addr(tag byte) string {
	return sdk.AccAddress(bytes.Repeat([]byte{tag}, 20)).String()
}

// TestMsgRegisterProvider_ValidateBasic tests stateless admission checks
func TestMsgRegisterProvider_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgRegisterProvider
		wantErr error
	}{
		{
			name: "valid",
			msg:  types.NewMsgRegisterProvider(addr(1), "0xaaaa", 1, types.PayeeProvider, addr(2)),
		},
		{
			name:    "bad creator",
			msg:     types.NewMsgRegisterProvider("junk", "0xaaaa", 1, types.PayeeProvider, addr(2)),
			wantErr: types.ErrInvalidAddress,
		},
		{
			name:    "bad provider",
			msg:     types.NewMsgRegisterProvider(addr(1), "0xaaaa", 1, types.PayeeProvider, "junk"),
			wantErr: types.ErrInvalidAddress,
		},
		{
			name:    "empty origin",
			msg:     types.NewMsgRegisterProvider(addr(1), "", 1, types.PayeeProvider, addr(2)),
			wantErr: types.ErrInvalidHash,
		},
		{
			name:    "oversized origin",
			msg:     types.NewMsgRegisterProvider(addr(1), strings.Repeat("a", 129), 1, types.PayeeProvider, addr(2)),
			wantErr: types.ErrInvalidHash,
		},
		{
			name:    "unknown payee",
			msg:     types.NewMsgRegisterProvider(addr(1), "0xaaaa", 1, types.Payee("treasury"), addr(2)),
			wantErr: types.ErrInvalidPayee,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// TestMsgUpdateProvider_ValidateBasic tests the attached amount checks
func TestMsgUpdateProvider_ValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgUpdateProvider(addr(1), "0xaaaa", 0, types.PayeeNone, math.ZeroInt()).ValidateBasic())

	err := types.NewMsgUpdateProvider(addr(1), "0xaaaa", 0, types.PayeeNone, math.NewInt(-1)).ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	err = types.NewMsgUpdateProvider(addr(1), "0xaaaa", 0, types.PayeeNone, math.Int{}).ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

// TestMsgStakeProvider_ValidateBasic tests that zero passes statelessly; the
// keeper is the one that rejects a zero stake
func TestMsgStakeProvider_ValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgStakeProvider(addr(1), math.ZeroInt()).ValidateBasic())
	require.NoError(t, types.NewMsgStakeProvider(addr(1), math.NewInt(5)).ValidateBasic())

	err := types.NewMsgStakeProvider("junk", math.NewInt(5)).ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	err = types.NewMsgStakeProvider(addr(1), math.NewInt(-5)).ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

// TestMsgRegisterDapp_ValidateBasic tests the optional owner field
func TestMsgRegisterDapp_ValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgRegisterDapp(addr(1), "0xbbbb", addr(2), "", math.NewInt(10)).ValidateBasic())
	require.NoError(t, types.NewMsgRegisterDapp(addr(1), "0xbbbb", addr(2), addr(3), math.NewInt(10)).ValidateBasic())

	err := types.NewMsgRegisterDapp(addr(1), "0xbbbb", addr(2), "junk", math.NewInt(10)).ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	err = types.NewMsgRegisterDapp(addr(1), "", addr(2), "", math.NewInt(10)).ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidHash)
}

// TestMsgCommitSolution_ValidateBasic tests both hash fields
func TestMsgCommitSolution_ValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgCommitSolution(addr(1), addr(2), "0xdddd", "0xcccc").ValidateBasic())

	err := types.NewMsgCommitSolution(addr(1), addr(2), "", "0xcccc").ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidHash)

	err = types.NewMsgCommitSolution(addr(1), addr(2), "0xdddd", "").ValidateBasic()
	require.ErrorIs(t, err, types.ErrInvalidHash)
}

// TestMsgApproveSolution_ValidateBasic tests the zero-id guard
func TestMsgApproveSolution_ValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgApproveSolution(addr(1), 1).ValidateBasic())

	err := types.NewMsgApproveSolution(addr(1), 0).ValidateBasic()
	require.ErrorIs(t, err, types.ErrCaptchaSolutionCommitmentDoesNotExist)

	err = types.NewMsgDisapproveSolution(addr(1), 0).ValidateBasic()
	require.ErrorIs(t, err, types.ErrCaptchaSolutionCommitmentDoesNotExist)
}

// TestMsgGetSigners tests that each message resolves its signer field
func TestMsgGetSigners(t *testing.T) {
	signer := sdk.AccAddress(bytes.Repeat([]byte{1}, 20))

	require.Equal(t, []sdk.AccAddress{signer}, types.NewMsgRegisterProvider(signer.String(), "0xaaaa", 0, types.PayeeNone, addr(2)).GetSigners())
	require.Equal(t, []sdk.AccAddress{signer}, types.NewMsgStakeProvider(signer.String(), math.NewInt(1)).GetSigners())
	require.Equal(t, []sdk.AccAddress{signer}, types.NewMsgCommitSolution(signer.String(), addr(2), "0xdddd", "0xcccc").GetSigners())
	require.Equal(t, []sdk.AccAddress{signer}, types.NewMsgAddOperator(signer.String(), addr(2)).GetSigners())
}

// TestMsgTypeRoutes tests the legacy route and type names
func TestMsgTypeRoutes(t *testing.T) {
	require.Equal(t, types.RouterKey, types.NewMsgUnstakeProvider(addr(1)).Route())
	require.Equal(t, "register_provider", types.NewMsgRegisterProvider(addr(1), "0xaaaa", 0, types.PayeeNone, addr(2)).Type())
	require.Equal(t, "commit_solution", types.NewMsgCommitSolution(addr(1), addr(2), "0xdddd", "0xcccc").Type())
	require.Equal(t, "approve_solution", types.NewMsgApproveSolution(addr(1), 1).Type())
}
