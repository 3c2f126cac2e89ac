package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params holds the captcha module parameters.
type Params struct {
	// StakeDenom is the denomination escrowed for stakes, funding and fees.
	StakeDenom string `json:"stake_denom"`
	// ProviderStakeThreshold is the minimum provider balance required to
	// reach active status.
	ProviderStakeThreshold math.Int `json:"provider_stake_threshold"`
	// MinDifficulty is the starting difficulty assigned to newly registered
	// dapps.
	MinDifficulty uint16 `json:"min_difficulty"`
}

// DefaultParams returns the default parameters for the captcha module.
func DefaultParams() Params {
	return Params{
		StakeDenom:             "upaw",
		ProviderStakeThreshold: math.NewInt(10),
		MinDifficulty:          1,
	}
}

// Validate ensures the parameter set is well-formed.
func (p Params) Validate() error {
	if p.StakeDenom == "" {
		return fmt.Errorf("stake denom cannot be empty")
	}
	if p.ProviderStakeThreshold.IsNil() || !p.ProviderStakeThreshold.IsPositive() {
		return fmt.Errorf("provider stake threshold must be positive")
	}
	if p.MinDifficulty == 0 {
		return fmt.Errorf("min difficulty must be positive")
	}
	return nil
}
