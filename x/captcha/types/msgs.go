package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type names
const (
	TypeMsgRegisterProvider   = "register_provider"
	TypeMsgUpdateProvider     = "update_provider"
	TypeMsgDeregisterProvider = "deregister_provider"
	TypeMsgStakeProvider      = "stake_provider"
	TypeMsgUnstakeProvider    = "unstake_provider"
	TypeMsgAddDataSet         = "add_data_set"
	TypeMsgRegisterDapp       = "register_dapp"
	TypeMsgFundDapp           = "fund_dapp"
	TypeMsgCancelDapp         = "cancel_dapp"
	TypeMsgCommitSolution     = "commit_solution"
	TypeMsgApproveSolution    = "approve_solution"
	TypeMsgDisapproveSolution = "disapprove_solution"
	TypeMsgAddOperator        = "add_operator"
)

const maxHashLength = 128

var (
	_ sdk.Msg = &MsgRegisterProvider{}
	_ sdk.Msg = &MsgUpdateProvider{}
	_ sdk.Msg = &MsgDeregisterProvider{}
	_ sdk.Msg = &MsgStakeProvider{}
	_ sdk.Msg = &MsgUnstakeProvider{}
	_ sdk.Msg = &MsgAddDataSet{}
	_ sdk.Msg = &MsgRegisterDapp{}
	_ sdk.Msg = &MsgFundDapp{}
	_ sdk.Msg = &MsgCancelDapp{}
	_ sdk.Msg = &MsgCommitSolution{}
	_ sdk.Msg = &MsgApproveSolution{}
	_ sdk.Msg = &MsgDisapproveSolution{}
	_ sdk.Msg = &MsgAddOperator{}
)

// validateHash checks an opaque hash-typed field. The module never
// interprets the value, only stores and compares it.
func validateHash(h string) error {
	if h == ZeroHash {
		return sdkerrors.Wrap(ErrInvalidHash, "hash cannot be empty")
	}
	if len(h) > maxHashLength {
		return sdkerrors.Wrapf(ErrInvalidHash, "hash exceeds %d characters", maxHashLength)
	}
	return nil
}

// validateOptionalAmount checks an attached value that may legitimately be
// zero; the keeper decides whether zero is acceptable for the operation.
func validateOptionalAmount(amount math.Int) error {
	if amount.IsNil() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount cannot be nil")
	}
	if amount.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount cannot be negative")
	}
	return nil
}

// MsgRegisterProvider registers a new provider. Only an operator may sign.
type MsgRegisterProvider struct {
	Creator       string `json:"creator"`
	ServiceOrigin string `json:"service_origin"`
	Fee           uint32 `json:"fee"`
	Payee         Payee  `json:"payee"`
	Provider      string `json:"provider"`
}

func NewMsgRegisterProvider(creator, serviceOrigin string, fee uint32, payee Payee, provider string) *MsgRegisterProvider {
	return &MsgRegisterProvider{
		Creator:       creator,
		ServiceOrigin: serviceOrigin,
		Fee:           fee,
		Payee:         payee,
		Provider:      provider,
	}
}

func (msg MsgRegisterProvider) Route() string { return RouterKey }
func (msg MsgRegisterProvider) Type() string  { return TypeMsgRegisterProvider }

func (msg MsgRegisterProvider) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

func (msg MsgRegisterProvider) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgRegisterProvider) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if err := validateHash(msg.ServiceOrigin); err != nil {
		return sdkerrors.Wrap(err, "invalid service origin")
	}
	if !msg.Payee.Valid() {
		return sdkerrors.Wrapf(ErrInvalidPayee, "unknown payee %q", msg.Payee)
	}
	return nil
}

// MsgUpdateProvider updates an existing provider. Only the provider itself
// may sign. Any attached amount is added to the provider's balance.
type MsgUpdateProvider struct {
	Provider      string   `json:"provider"`
	ServiceOrigin string   `json:"service_origin"`
	Fee           uint32   `json:"fee"`
	Payee         Payee    `json:"payee"`
	Amount        math.Int `json:"amount"`
}

func NewMsgUpdateProvider(provider, serviceOrigin string, fee uint32, payee Payee, amount math.Int) *MsgUpdateProvider {
	return &MsgUpdateProvider{
		Provider:      provider,
		ServiceOrigin: serviceOrigin,
		Fee:           fee,
		Payee:         payee,
		Amount:        amount,
	}
}

func (msg MsgUpdateProvider) Route() string { return RouterKey }
func (msg MsgUpdateProvider) Type() string  { return TypeMsgUpdateProvider }

func (msg MsgUpdateProvider) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg MsgUpdateProvider) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgUpdateProvider) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if err := validateHash(msg.ServiceOrigin); err != nil {
		return sdkerrors.Wrap(err, "invalid service origin")
	}
	if !msg.Payee.Valid() {
		return sdkerrors.Wrapf(ErrInvalidPayee, "unknown payee %q", msg.Payee)
	}
	return validateOptionalAmount(msg.Amount)
}

// MsgDeregisterProvider deactivates a provider. Only an operator may sign.
type MsgDeregisterProvider struct {
	Creator  string `json:"creator"`
	Provider string `json:"provider"`
}

func NewMsgDeregisterProvider(creator, provider string) *MsgDeregisterProvider {
	return &MsgDeregisterProvider{Creator: creator, Provider: provider}
}

func (msg MsgDeregisterProvider) Route() string { return RouterKey }
func (msg MsgDeregisterProvider) Type() string  { return TypeMsgDeregisterProvider }

func (msg MsgDeregisterProvider) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

func (msg MsgDeregisterProvider) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgDeregisterProvider) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	return nil
}

// MsgStakeProvider adds the attached amount to the signing provider's stake.
type MsgStakeProvider struct {
	Provider string   `json:"provider"`
	Amount   math.Int `json:"amount"`
}

func NewMsgStakeProvider(provider string, amount math.Int) *MsgStakeProvider {
	return &MsgStakeProvider{Provider: provider, Amount: amount}
}

func (msg MsgStakeProvider) Route() string { return RouterKey }
func (msg MsgStakeProvider) Type() string  { return TypeMsgStakeProvider }

func (msg MsgStakeProvider) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg MsgStakeProvider) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgStakeProvider) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	// zero is rejected by the keeper with ErrInsufficientBalance to keep the
	// protocol-level error taxonomy intact
	return validateOptionalAmount(msg.Amount)
}

// MsgUnstakeProvider refunds the signing provider's full stake and
// deactivates it.
type MsgUnstakeProvider struct {
	Provider string `json:"provider"`
}

func NewMsgUnstakeProvider(provider string) *MsgUnstakeProvider {
	return &MsgUnstakeProvider{Provider: provider}
}

func (msg MsgUnstakeProvider) Route() string { return RouterKey }
func (msg MsgUnstakeProvider) Type() string  { return TypeMsgUnstakeProvider }

func (msg MsgUnstakeProvider) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg MsgUnstakeProvider) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgUnstakeProvider) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	return nil
}

// MsgAddDataSet registers a captcha dataset for the signing provider and
// makes it the provider's current dataset.
type MsgAddDataSet struct {
	Provider       string `json:"provider"`
	MerkleTreeRoot string `json:"merkle_tree_root"`
	CaptchaType    uint16 `json:"captcha_type"`
}

func NewMsgAddDataSet(provider, merkleTreeRoot string, captchaType uint16) *MsgAddDataSet {
	return &MsgAddDataSet{Provider: provider, MerkleTreeRoot: merkleTreeRoot, CaptchaType: captchaType}
}

func (msg MsgAddDataSet) Route() string { return RouterKey }
func (msg MsgAddDataSet) Type() string  { return TypeMsgAddDataSet }

func (msg MsgAddDataSet) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg MsgAddDataSet) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgAddDataSet) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if err := validateHash(msg.MerkleTreeRoot); err != nil {
		return sdkerrors.Wrap(err, "invalid merkle tree root")
	}
	return nil
}

// MsgRegisterDapp registers a dapp contract, or updates it when the contract
// is already registered. Owner defaults to the signer when left empty.
type MsgRegisterDapp struct {
	Creator      string   `json:"creator"`
	ClientOrigin string   `json:"client_origin"`
	Contract     string   `json:"contract"`
	Owner        string   `json:"owner,omitempty"`
	Amount       math.Int `json:"amount"`
}

func NewMsgRegisterDapp(creator, clientOrigin, contract, owner string, amount math.Int) *MsgRegisterDapp {
	return &MsgRegisterDapp{
		Creator:      creator,
		ClientOrigin: clientOrigin,
		Contract:     contract,
		Owner:        owner,
		Amount:       amount,
	}
}

func (msg MsgRegisterDapp) Route() string { return RouterKey }
func (msg MsgRegisterDapp) Type() string  { return TypeMsgRegisterDapp }

func (msg MsgRegisterDapp) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

func (msg MsgRegisterDapp) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgRegisterDapp) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Contract); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid contract address: %s", err)
	}
	if msg.Owner != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
		}
	}
	if err := validateHash(msg.ClientOrigin); err != nil {
		return sdkerrors.Wrap(err, "invalid client origin")
	}
	return validateOptionalAmount(msg.Amount)
}

// MsgFundDapp tops up a dapp's balance. Only the dapp owner's funds are
// accepted; anyone else is refunded without effect.
type MsgFundDapp struct {
	Creator  string   `json:"creator"`
	Contract string   `json:"contract"`
	Amount   math.Int `json:"amount"`
}

func NewMsgFundDapp(creator, contract string, amount math.Int) *MsgFundDapp {
	return &MsgFundDapp{Creator: creator, Contract: contract, Amount: amount}
}

func (msg MsgFundDapp) Route() string { return RouterKey }
func (msg MsgFundDapp) Type() string  { return TypeMsgFundDapp }

func (msg MsgFundDapp) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

func (msg MsgFundDapp) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgFundDapp) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Contract); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid contract address: %s", err)
	}
	return validateOptionalAmount(msg.Amount)
}

// MsgCancelDapp refunds a dapp's remaining balance to its owner and
// deactivates it.
type MsgCancelDapp struct {
	Creator  string `json:"creator"`
	Contract string `json:"contract"`
}

func NewMsgCancelDapp(creator, contract string) *MsgCancelDapp {
	return &MsgCancelDapp{Creator: creator, Contract: contract}
}

func (msg MsgCancelDapp) Route() string { return RouterKey }
func (msg MsgCancelDapp) Type() string  { return TypeMsgCancelDapp }

func (msg MsgCancelDapp) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

func (msg MsgCancelDapp) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgCancelDapp) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Contract); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid contract address: %s", err)
	}
	return nil
}

// MsgCommitSolution submits a dapp user's captcha solution root for
// adjudication by the dataset's provider.
type MsgCommitSolution struct {
	Account            string `json:"account"`
	Contract           string `json:"contract"`
	CaptchaDatasetId   string `json:"captcha_dataset_id"`
	UserMerkleTreeRoot string `json:"user_merkle_tree_root"`
}

func NewMsgCommitSolution(account, contract, captchaDatasetId, userMerkleTreeRoot string) *MsgCommitSolution {
	return &MsgCommitSolution{
		Account:            account,
		Contract:           contract,
		CaptchaDatasetId:   captchaDatasetId,
		UserMerkleTreeRoot: userMerkleTreeRoot,
	}
}

func (msg MsgCommitSolution) Route() string { return RouterKey }
func (msg MsgCommitSolution) Type() string  { return TypeMsgCommitSolution }

func (msg MsgCommitSolution) GetSigners() []sdk.AccAddress {
	account, _ := sdk.AccAddressFromBech32(msg.Account)
	return []sdk.AccAddress{account}
}

func (msg MsgCommitSolution) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgCommitSolution) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid account address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Contract); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid contract address: %s", err)
	}
	if err := validateHash(msg.CaptchaDatasetId); err != nil {
		return sdkerrors.Wrap(err, "invalid captcha dataset id")
	}
	if err := validateHash(msg.UserMerkleTreeRoot); err != nil {
		return sdkerrors.Wrap(err, "invalid user merkle tree root")
	}
	return nil
}

// MsgApproveSolution marks a pending commitment as approved.
type MsgApproveSolution struct {
	Provider     string `json:"provider"`
	CommitmentId uint64 `json:"commitment_id"`
}

func NewMsgApproveSolution(provider string, commitmentId uint64) *MsgApproveSolution {
	return &MsgApproveSolution{Provider: provider, CommitmentId: commitmentId}
}

func (msg MsgApproveSolution) Route() string { return RouterKey }
func (msg MsgApproveSolution) Type() string  { return TypeMsgApproveSolution }

func (msg MsgApproveSolution) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg MsgApproveSolution) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgApproveSolution) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.CommitmentId == 0 {
		return sdkerrors.Wrap(ErrCaptchaSolutionCommitmentDoesNotExist, "commitment id cannot be zero")
	}
	return nil
}

// MsgDisapproveSolution marks a pending commitment as disapproved.
type MsgDisapproveSolution struct {
	Provider     string `json:"provider"`
	CommitmentId uint64 `json:"commitment_id"`
}

func NewMsgDisapproveSolution(provider string, commitmentId uint64) *MsgDisapproveSolution {
	return &MsgDisapproveSolution{Provider: provider, CommitmentId: commitmentId}
}

func (msg MsgDisapproveSolution) Route() string { return RouterKey }
func (msg MsgDisapproveSolution) Type() string  { return TypeMsgDisapproveSolution }

func (msg MsgDisapproveSolution) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg MsgDisapproveSolution) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgDisapproveSolution) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.CommitmentId == 0 {
		return sdkerrors.Wrap(ErrCaptchaSolutionCommitmentDoesNotExist, "commitment id cannot be zero")
	}
	return nil
}

// MsgAddOperator admits a new operator. Only an existing operator may sign;
// anyone else's call is a silent no-op, mirroring the protocol's permissive
// admin surface.
type MsgAddOperator struct {
	Creator  string `json:"creator"`
	Operator string `json:"operator"`
}

func NewMsgAddOperator(creator, operator string) *MsgAddOperator {
	return &MsgAddOperator{Creator: creator, Operator: operator}
}

func (msg MsgAddOperator) Route() string { return RouterKey }
func (msg MsgAddOperator) Type() string  { return TypeMsgAddOperator }

func (msg MsgAddOperator) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

func (msg MsgAddOperator) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgAddOperator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Operator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid operator address: %s", err)
	}
	return nil
}
