package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takahser/protocol/x/captcha/types"
)

// TestGovernanceStatus_Valid tests the status enum
func TestGovernanceStatus_Valid(t *testing.T) {
	for _, s := range []types.GovernanceStatus{
		types.StatusActive,
		types.StatusSuspended,
		types.StatusDeactivated,
		types.StatusPending,
		types.StatusApproved,
		types.StatusDisapproved,
	} {
		require.True(t, s.Valid(), s)
	}
	require.False(t, types.GovernanceStatus("frozen").Valid())
	require.False(t, types.GovernanceStatus("").Valid())
}

// TestPayee_Valid tests the payee enum
func TestPayee_Valid(t *testing.T) {
	require.True(t, types.PayeeProvider.Valid())
	require.True(t, types.PayeeDapp.Valid())
	require.True(t, types.PayeeNone.Valid())
	require.False(t, types.Payee("treasury").Valid())
	require.False(t, types.Payee("").Valid())
}
