package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "captcha"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	ProviderKeyPrefix    = []byte{0x01} // provider records by account
	DappKeyPrefix        = []byte{0x02} // dapp records by contract account
	CaptchaDataKeyPrefix = []byte{0x03} // datasets by merkle tree root
	CommitmentKeyPrefix  = []byte{0x04} // solution commitments by index
	CommitmentCountKey   = []byte{0x05} // max assigned commitment index
	DappUserKeyPrefix    = []byte{0x06} // reputation counters by account
	OperatorKeyPrefix    = []byte{0x07} // operator set membership
	ParamsKey            = []byte{0x08} // module parameters
)

// ProviderKey returns the store key for a provider record
func ProviderKey(addr sdk.AccAddress) []byte {
	return append(ProviderKeyPrefix, addr.Bytes()...)
}

// DappKey returns the store key for a dapp record
func DappKey(contract sdk.AccAddress) []byte {
	return append(DappKeyPrefix, contract.Bytes()...)
}

// CaptchaDataKey returns the store key for a dataset by its merkle tree root
func CaptchaDataKey(merkleTreeRoot string) []byte {
	return append(CaptchaDataKeyPrefix, []byte(merkleTreeRoot)...)
}

// CommitmentKey returns the store key for a solution commitment by index
func CommitmentKey(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return append(CommitmentKeyPrefix, bz...)
}

// DappUserKey returns the store key for a dapp user's reputation record
func DappUserKey(addr sdk.AccAddress) []byte {
	return append(DappUserKeyPrefix, addr.Bytes()...)
}

// OperatorKey returns the store key for an operator set entry
func OperatorKey(addr sdk.AccAddress) []byte {
	return append(OperatorKeyPrefix, addr.Bytes()...)
}
