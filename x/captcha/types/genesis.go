package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ProviderRecord pairs a provider with its address for genesis import/export.
type ProviderRecord struct {
	Address  string   `json:"address"`
	Provider Provider `json:"provider"`
}

// DappRecord pairs a dapp with its contract address for genesis import/export.
type DappRecord struct {
	Contract string `json:"contract"`
	Dapp     Dapp   `json:"dapp"`
}

// CaptchaDataRecord pairs a dataset with its id for genesis import/export.
type CaptchaDataRecord struct {
	DatasetId string      `json:"dataset_id"`
	Data      CaptchaData `json:"data"`
}

// CommitmentRecord pairs a solution commitment with its id for genesis
// import/export.
type CommitmentRecord struct {
	Id         uint64                    `json:"id"`
	Commitment CaptchaSolutionCommitment `json:"commitment"`
}

// DappUserRecord pairs a dapp user's scorecard with its address for genesis
// import/export.
type DappUserRecord struct {
	Address string   `json:"address"`
	User    DappUser `json:"user"`
}

// GenesisState defines the captcha module's genesis state.
type GenesisState struct {
	Params           Params              `json:"params"`
	Operators        []string            `json:"operators"`
	Providers        []ProviderRecord    `json:"providers"`
	Dapps            []DappRecord        `json:"dapps"`
	CaptchaData      []CaptchaDataRecord `json:"captcha_data"`
	Commitments      []CommitmentRecord  `json:"commitments"`
	DappUsers        []DappUserRecord    `json:"dapp_users"`
	NextCommitmentId uint64              `json:"next_commitment_id"`
}

// DefaultGenesis returns the default genesis state. At least one operator is
// required for provider admission to be possible at all.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:           DefaultParams(),
		Operators:        []string{},
		Providers:        []ProviderRecord{},
		Dapps:            []DappRecord{},
		CaptchaData:      []CaptchaDataRecord{},
		Commitments:      []CommitmentRecord{},
		DappUsers:        []DappUserRecord{},
		NextCommitmentId: 1,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenOperators := make(map[string]bool)
	for _, op := range gs.Operators {
		if _, err := sdk.AccAddressFromBech32(op); err != nil {
			return fmt.Errorf("invalid operator address %s: %w", op, err)
		}
		if seenOperators[op] {
			return fmt.Errorf("duplicate operator %s", op)
		}
		seenOperators[op] = true
	}

	seenProviders := make(map[string]bool)
	for _, rec := range gs.Providers {
		if _, err := sdk.AccAddressFromBech32(rec.Address); err != nil {
			return fmt.Errorf("invalid provider address %s: %w", rec.Address, err)
		}
		if seenProviders[rec.Address] {
			return fmt.Errorf("duplicate provider %s", rec.Address)
		}
		seenProviders[rec.Address] = true
		if !rec.Provider.Status.Valid() {
			return fmt.Errorf("provider %s has invalid status %q", rec.Address, rec.Provider.Status)
		}
		if !rec.Provider.Payee.Valid() {
			return fmt.Errorf("provider %s has invalid payee %q", rec.Address, rec.Provider.Payee)
		}
		if rec.Provider.Balance.IsNil() || rec.Provider.Balance.IsNegative() {
			return fmt.Errorf("provider %s has invalid balance", rec.Address)
		}
	}

	seenDapps := make(map[string]bool)
	for _, rec := range gs.Dapps {
		if _, err := sdk.AccAddressFromBech32(rec.Contract); err != nil {
			return fmt.Errorf("invalid dapp contract %s: %w", rec.Contract, err)
		}
		if seenDapps[rec.Contract] {
			return fmt.Errorf("duplicate dapp %s", rec.Contract)
		}
		seenDapps[rec.Contract] = true
		if !rec.Dapp.Status.Valid() {
			return fmt.Errorf("dapp %s has invalid status %q", rec.Contract, rec.Dapp.Status)
		}
		if rec.Dapp.Balance.IsNil() || rec.Dapp.Balance.IsNegative() {
			return fmt.Errorf("dapp %s has invalid balance", rec.Contract)
		}
		if _, err := sdk.AccAddressFromBech32(rec.Dapp.Owner); err != nil {
			return fmt.Errorf("dapp %s has invalid owner: %w", rec.Contract, err)
		}
	}

	seenDatasets := make(map[string]bool)
	for _, rec := range gs.CaptchaData {
		if rec.DatasetId == ZeroHash {
			return fmt.Errorf("captcha dataset with empty id")
		}
		if seenDatasets[rec.DatasetId] {
			return fmt.Errorf("duplicate captcha dataset %s", rec.DatasetId)
		}
		seenDatasets[rec.DatasetId] = true
		if !seenProviders[rec.Data.Provider] {
			return fmt.Errorf("captcha dataset %s references unknown provider %s", rec.DatasetId, rec.Data.Provider)
		}
	}

	if gs.NextCommitmentId == 0 {
		return fmt.Errorf("next commitment id must be positive")
	}
	seenCommitments := make(map[uint64]bool)
	for _, rec := range gs.Commitments {
		if rec.Id == 0 || rec.Id >= gs.NextCommitmentId {
			return fmt.Errorf("commitment id %d out of range", rec.Id)
		}
		if seenCommitments[rec.Id] {
			return fmt.Errorf("duplicate commitment %d", rec.Id)
		}
		seenCommitments[rec.Id] = true
		if !rec.Commitment.Status.Valid() {
			return fmt.Errorf("commitment %d has invalid status %q", rec.Id, rec.Commitment.Status)
		}
		if _, err := sdk.AccAddressFromBech32(rec.Commitment.Account); err != nil {
			return fmt.Errorf("commitment %d has invalid account: %w", rec.Id, err)
		}
	}

	seenUsers := make(map[string]bool)
	for _, rec := range gs.DappUsers {
		if _, err := sdk.AccAddressFromBech32(rec.Address); err != nil {
			return fmt.Errorf("invalid dapp user address %s: %w", rec.Address, err)
		}
		if seenUsers[rec.Address] {
			return fmt.Errorf("duplicate dapp user %s", rec.Address)
		}
		seenUsers[rec.Address] = true
	}

	return nil
}
