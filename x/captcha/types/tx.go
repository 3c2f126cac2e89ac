package types

import (
	context "context"

	grpc "google.golang.org/grpc"
)

// MsgServer is the transaction surface of the module.
type MsgServer interface {
	RegisterProvider(context.Context, *MsgRegisterProvider) (*MsgRegisterProviderResponse, error)
	UpdateProvider(context.Context, *MsgUpdateProvider) (*MsgUpdateProviderResponse, error)
	DeregisterProvider(context.Context, *MsgDeregisterProvider) (*MsgDeregisterProviderResponse, error)
	StakeProvider(context.Context, *MsgStakeProvider) (*MsgStakeProviderResponse, error)
	UnstakeProvider(context.Context, *MsgUnstakeProvider) (*MsgUnstakeProviderResponse, error)
	AddDataSet(context.Context, *MsgAddDataSet) (*MsgAddDataSetResponse, error)
	RegisterDapp(context.Context, *MsgRegisterDapp) (*MsgRegisterDappResponse, error)
	FundDapp(context.Context, *MsgFundDapp) (*MsgFundDappResponse, error)
	CancelDapp(context.Context, *MsgCancelDapp) (*MsgCancelDappResponse, error)
	CommitSolution(context.Context, *MsgCommitSolution) (*MsgCommitSolutionResponse, error)
	ApproveSolution(context.Context, *MsgApproveSolution) (*MsgApproveSolutionResponse, error)
	DisapproveSolution(context.Context, *MsgDisapproveSolution) (*MsgDisapproveSolutionResponse, error)
	AddOperator(context.Context, *MsgAddOperator) (*MsgAddOperatorResponse, error)
}

type MsgRegisterProviderResponse struct{}

type MsgUpdateProviderResponse struct{}

type MsgDeregisterProviderResponse struct{}

type MsgStakeProviderResponse struct{}

type MsgUnstakeProviderResponse struct{}

type MsgAddDataSetResponse struct {
	CaptchaDatasetId string `json:"captcha_dataset_id"`
}

type MsgRegisterDappResponse struct{}

type MsgFundDappResponse struct{}

type MsgCancelDappResponse struct{}

type MsgCommitSolutionResponse struct {
	CommitmentId uint64 `json:"commitment_id"`
}

type MsgApproveSolutionResponse struct{}

type MsgDisapproveSolutionResponse struct{}

type MsgAddOperatorResponse struct{}

// RegisterMsgServer registers the module's transaction handlers with the
// configurator's message router.
func RegisterMsgServer(s grpc.ServiceRegistrar, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_RegisterProvider_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgRegisterProvider)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).RegisterProvider(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/RegisterProvider",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).RegisterProvider(ctx, req.(*MsgRegisterProvider))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_UpdateProvider_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUpdateProvider)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UpdateProvider(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/UpdateProvider",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UpdateProvider(ctx, req.(*MsgUpdateProvider))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_DeregisterProvider_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgDeregisterProvider)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).DeregisterProvider(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/DeregisterProvider",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).DeregisterProvider(ctx, req.(*MsgDeregisterProvider))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_StakeProvider_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgStakeProvider)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).StakeProvider(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/StakeProvider",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).StakeProvider(ctx, req.(*MsgStakeProvider))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_UnstakeProvider_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUnstakeProvider)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UnstakeProvider(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/UnstakeProvider",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UnstakeProvider(ctx, req.(*MsgUnstakeProvider))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_AddDataSet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgAddDataSet)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).AddDataSet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/AddDataSet",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).AddDataSet(ctx, req.(*MsgAddDataSet))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_RegisterDapp_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgRegisterDapp)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).RegisterDapp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/RegisterDapp",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).RegisterDapp(ctx, req.(*MsgRegisterDapp))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_FundDapp_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgFundDapp)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).FundDapp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/FundDapp",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).FundDapp(ctx, req.(*MsgFundDapp))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_CancelDapp_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgCancelDapp)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).CancelDapp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/CancelDapp",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).CancelDapp(ctx, req.(*MsgCancelDapp))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_CommitSolution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgCommitSolution)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).CommitSolution(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/CommitSolution",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).CommitSolution(ctx, req.(*MsgCommitSolution))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_ApproveSolution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgApproveSolution)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).ApproveSolution(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/ApproveSolution",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).ApproveSolution(ctx, req.(*MsgApproveSolution))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_DisapproveSolution_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgDisapproveSolution)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).DisapproveSolution(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/DisapproveSolution",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).DisapproveSolution(ctx, req.(*MsgDisapproveSolution))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_AddOperator_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgAddOperator)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).AddOperator(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Msg/AddOperator",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).AddOperator(ctx, req.(*MsgAddOperator))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "captcha.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterProvider", Handler: _Msg_RegisterProvider_Handler},
		{MethodName: "UpdateProvider", Handler: _Msg_UpdateProvider_Handler},
		{MethodName: "DeregisterProvider", Handler: _Msg_DeregisterProvider_Handler},
		{MethodName: "StakeProvider", Handler: _Msg_StakeProvider_Handler},
		{MethodName: "UnstakeProvider", Handler: _Msg_UnstakeProvider_Handler},
		{MethodName: "AddDataSet", Handler: _Msg_AddDataSet_Handler},
		{MethodName: "RegisterDapp", Handler: _Msg_RegisterDapp_Handler},
		{MethodName: "FundDapp", Handler: _Msg_FundDapp_Handler},
		{MethodName: "CancelDapp", Handler: _Msg_CancelDapp_Handler},
		{MethodName: "CommitSolution", Handler: _Msg_CommitSolution_Handler},
		{MethodName: "ApproveSolution", Handler: _Msg_ApproveSolution_Handler},
		{MethodName: "DisapproveSolution", Handler: _Msg_DisapproveSolution_Handler},
		{MethodName: "AddOperator", Handler: _Msg_AddOperator_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "captcha/tx.proto",
}
