package types

import (
	"cosmossdk.io/math"
)

// GovernanceStatus is the shared lifecycle status enum for providers, dapps
// and solution commitments. Not every value is legal for every entity:
// providers only ever hold Active or Deactivated, dapps hold Active,
// Suspended or Deactivated, and commitments hold Pending, Approved or
// Disapproved.
type GovernanceStatus string

const (
	StatusActive      GovernanceStatus = "active"
	StatusSuspended   GovernanceStatus = "suspended"
	StatusDeactivated GovernanceStatus = "deactivated"
	StatusPending     GovernanceStatus = "pending"
	StatusApproved    GovernanceStatus = "approved"
	StatusDisapproved GovernanceStatus = "disapproved"
)

// Valid reports whether s is one of the defined status values.
func (s GovernanceStatus) Valid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusDeactivated, StatusPending, StatusApproved, StatusDisapproved:
		return true
	}
	return false
}

// Payee identifies which side receives the per-solution fee.
type Payee string

const (
	PayeeProvider Payee = "provider"
	PayeeDapp     Payee = "dapp"
	PayeeNone     Payee = "none"
)

// Valid reports whether p is one of the defined payee values.
func (p Payee) Valid() bool {
	switch p {
	case PayeeProvider, PayeeDapp, PayeeNone:
		return true
	}
	return false
}

// ZeroHash is the unset value for hash-typed fields. The module stores and
// compares hash strings opaquely; it never recomputes them.
const ZeroHash = ""

// Provider is an account offering captcha challenges. It must stake at least
// the configured threshold to become active.
type Provider struct {
	Status           GovernanceStatus `json:"status"`
	Balance          math.Int         `json:"balance"`
	Fee              uint32           `json:"fee"`
	Payee            Payee            `json:"payee"`
	ServiceOrigin    string           `json:"service_origin"`
	CaptchaDatasetId string           `json:"captcha_dataset_id"`
}

// Dapp is a client application consuming captcha verification. It is keyed by
// the dapp contract's own account, not its owner, so one owner may hold many
// dapp rows.
type Dapp struct {
	Status        GovernanceStatus `json:"status"`
	Balance       math.Int         `json:"balance"`
	Owner         string           `json:"owner"`
	MinDifficulty uint16           `json:"min_difficulty"`
	ClientOrigin  string           `json:"client_origin"`
}

// CaptchaData is a provider-owned dataset of captcha challenges, keyed by its
// merkle tree root. The root doubles as the dataset id.
type CaptchaData struct {
	Provider       string `json:"provider"`
	MerkleTreeRoot string `json:"merkle_tree_root"`
	CaptchaType    uint16 `json:"captcha_type"`
}

// CaptchaSolutionCommitment records a dapp user's submitted solution root
// awaiting a provider's verdict. Commitments are keyed by a monotonically
// increasing index starting at 1 and their status moves away from Pending at
// most once.
type CaptchaSolutionCommitment struct {
	Account            string           `json:"account"`
	CaptchaDatasetId   string           `json:"captcha_dataset_id"`
	UserMerkleTreeRoot string           `json:"user_merkle_tree_root"`
	Status             GovernanceStatus `json:"status"`
	Contract           string           `json:"contract"`
}

// DappUser holds the per-account reputation counters derived from
// adjudicated commitments. A row is created on the account's first
// commitment.
type DappUser struct {
	CorrectCaptchas   uint64 `json:"correct_captchas"`
	IncorrectCaptchas uint64 `json:"incorrect_captchas"`
}
