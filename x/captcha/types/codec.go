package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterProvider{}, "captcha/MsgRegisterProvider", nil)
	cdc.RegisterConcrete(&MsgUpdateProvider{}, "captcha/MsgUpdateProvider", nil)
	cdc.RegisterConcrete(&MsgDeregisterProvider{}, "captcha/MsgDeregisterProvider", nil)
	cdc.RegisterConcrete(&MsgStakeProvider{}, "captcha/MsgStakeProvider", nil)
	cdc.RegisterConcrete(&MsgUnstakeProvider{}, "captcha/MsgUnstakeProvider", nil)
	cdc.RegisterConcrete(&MsgAddDataSet{}, "captcha/MsgAddDataSet", nil)
	cdc.RegisterConcrete(&MsgRegisterDapp{}, "captcha/MsgRegisterDapp", nil)
	cdc.RegisterConcrete(&MsgFundDapp{}, "captcha/MsgFundDapp", nil)
	cdc.RegisterConcrete(&MsgCancelDapp{}, "captcha/MsgCancelDapp", nil)
	cdc.RegisterConcrete(&MsgCommitSolution{}, "captcha/MsgCommitSolution", nil)
	cdc.RegisterConcrete(&MsgApproveSolution{}, "captcha/MsgApproveSolution", nil)
	cdc.RegisterConcrete(&MsgDisapproveSolution{}, "captcha/MsgDisapproveSolution", nil)
	cdc.RegisterConcrete(&MsgAddOperator{}, "captcha/MsgAddOperator", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRegisterProvider{},
		&MsgUpdateProvider{},
		&MsgDeregisterProvider{},
		&MsgStakeProvider{},
		&MsgUnstakeProvider{},
		&MsgAddDataSet{},
		&MsgRegisterDapp{},
		&MsgFundDapp{},
		&MsgCancelDapp{},
		&MsgCommitSolution{},
		&MsgApproveSolution{},
		&MsgDisapproveSolution{},
		&MsgAddOperator{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
