package types

// Event types for the captcha module
const (
	EventTypeProviderRegister   = "provider_register"
	EventTypeProviderUpdate     = "provider_update"
	EventTypeProviderDeregister = "provider_deregister"
	EventTypeProviderStake      = "provider_stake"
	EventTypeProviderUnstake    = "provider_unstake"
	EventTypeProviderAddDataset = "provider_add_dataset"
	EventTypeProviderApprove    = "provider_approve"
	EventTypeProviderDisapprove = "provider_disapprove"

	EventTypeDappRegister = "dapp_register"
	EventTypeDappUpdate   = "dapp_update"
	EventTypeDappFund     = "dapp_fund"
	EventTypeDappCancel   = "dapp_cancel"

	EventTypeDappUserCommit = "dapp_user_commit"

	EventTypeOperatorAdd = "operator_add"
)

// Event attribute keys
const (
	AttributeKeyAccount        = "account"
	AttributeKeyContract       = "contract"
	AttributeKeyOwner          = "owner"
	AttributeKeyValue          = "value"
	AttributeKeyMerkleTreeRoot = "merkle_tree_root"
	AttributeKeyDatasetId      = "captcha_dataset_id"
	AttributeKeyClientOrigin   = "client_origin"
	AttributeKeyCommitmentId   = "captcha_solution_commitment_id"
	AttributeKeyOperator       = "operator"
)
