package types

import (
	context "context"

	grpc "google.golang.org/grpc"
)

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Provider(context.Context, *QueryProviderRequest) (*QueryProviderResponse, error)
	Providers(context.Context, *QueryProvidersRequest) (*QueryProvidersResponse, error)
	ProviderBalance(context.Context, *QueryProviderBalanceRequest) (*QueryProviderBalanceResponse, error)
	Dapp(context.Context, *QueryDappRequest) (*QueryDappResponse, error)
	Dapps(context.Context, *QueryDappsRequest) (*QueryDappsResponse, error)
	DappBalance(context.Context, *QueryDappBalanceRequest) (*QueryDappBalanceResponse, error)
	CaptchaData(context.Context, *QueryCaptchaDataRequest) (*QueryCaptchaDataResponse, error)
	Commitment(context.Context, *QueryCommitmentRequest) (*QueryCommitmentResponse, error)
	DappUser(context.Context, *QueryDappUserRequest) (*QueryDappUserResponse, error)
	IsHuman(context.Context, *QueryIsHumanRequest) (*QueryIsHumanResponse, error)
	Operators(context.Context, *QueryOperatorsRequest) (*QueryOperatorsResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryProviderRequest struct {
	Address string `json:"address"`
}

type QueryProviderResponse struct {
	Provider Provider `json:"provider"`
}

type QueryProvidersRequest struct{}

type QueryProvidersResponse struct {
	Providers []ProviderRecord `json:"providers"`
}

type QueryProviderBalanceRequest struct {
	Address string `json:"address"`
}

type QueryProviderBalanceResponse struct {
	Balance string `json:"balance"`
}

type QueryDappRequest struct {
	Contract string `json:"contract"`
}

type QueryDappResponse struct {
	Dapp Dapp `json:"dapp"`
}

type QueryDappsRequest struct{}

type QueryDappsResponse struct {
	Dapps []DappRecord `json:"dapps"`
}

type QueryDappBalanceRequest struct {
	Contract string `json:"contract"`
}

type QueryDappBalanceResponse struct {
	Balance string `json:"balance"`
}

type QueryCaptchaDataRequest struct {
	DatasetId string `json:"dataset_id"`
}

type QueryCaptchaDataResponse struct {
	Data CaptchaData `json:"data"`
}

type QueryCommitmentRequest struct {
	Id uint64 `json:"id"`
}

type QueryCommitmentResponse struct {
	Commitment CaptchaSolutionCommitment `json:"commitment"`
}

type QueryDappUserRequest struct {
	Address string `json:"address"`
}

type QueryDappUserResponse struct {
	User DappUser `json:"user"`
}

// QueryIsHumanRequest asks whether an account's adjudication history clears
// the given correctness threshold, expressed as a percentage in [0, 100].
type QueryIsHumanRequest struct {
	Address   string `json:"address"`
	Threshold uint8  `json:"threshold"`
}

type QueryIsHumanResponse struct {
	Human bool `json:"human"`
}

type QueryOperatorsRequest struct{}

type QueryOperatorsResponse struct {
	Operators []string `json:"operators"`
}

func (m *QueryParamsRequest) Reset()          { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string  { return protoString(m) }
func (m *QueryParamsRequest) ProtoMessage()   {}
func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return protoString(m) }
func (m *QueryParamsResponse) ProtoMessage()  {}

func (m *QueryProviderRequest) Reset()          { *m = QueryProviderRequest{} }
func (m *QueryProviderRequest) String() string  { return protoString(m) }
func (m *QueryProviderRequest) ProtoMessage()   {}
func (m *QueryProviderResponse) Reset()         { *m = QueryProviderResponse{} }
func (m *QueryProviderResponse) String() string { return protoString(m) }
func (m *QueryProviderResponse) ProtoMessage()  {}

func (m *QueryProvidersRequest) Reset()          { *m = QueryProvidersRequest{} }
func (m *QueryProvidersRequest) String() string  { return protoString(m) }
func (m *QueryProvidersRequest) ProtoMessage()   {}
func (m *QueryProvidersResponse) Reset()         { *m = QueryProvidersResponse{} }
func (m *QueryProvidersResponse) String() string { return protoString(m) }
func (m *QueryProvidersResponse) ProtoMessage()  {}

func (m *QueryProviderBalanceRequest) Reset()          { *m = QueryProviderBalanceRequest{} }
func (m *QueryProviderBalanceRequest) String() string  { return protoString(m) }
func (m *QueryProviderBalanceRequest) ProtoMessage()   {}
func (m *QueryProviderBalanceResponse) Reset()         { *m = QueryProviderBalanceResponse{} }
func (m *QueryProviderBalanceResponse) String() string { return protoString(m) }
func (m *QueryProviderBalanceResponse) ProtoMessage()  {}

func (m *QueryDappRequest) Reset()          { *m = QueryDappRequest{} }
func (m *QueryDappRequest) String() string  { return protoString(m) }
func (m *QueryDappRequest) ProtoMessage()   {}
func (m *QueryDappResponse) Reset()         { *m = QueryDappResponse{} }
func (m *QueryDappResponse) String() string { return protoString(m) }
func (m *QueryDappResponse) ProtoMessage()  {}

func (m *QueryDappsRequest) Reset()          { *m = QueryDappsRequest{} }
func (m *QueryDappsRequest) String() string  { return protoString(m) }
func (m *QueryDappsRequest) ProtoMessage()   {}
func (m *QueryDappsResponse) Reset()         { *m = QueryDappsResponse{} }
func (m *QueryDappsResponse) String() string { return protoString(m) }
func (m *QueryDappsResponse) ProtoMessage()  {}

func (m *QueryDappBalanceRequest) Reset()          { *m = QueryDappBalanceRequest{} }
func (m *QueryDappBalanceRequest) String() string  { return protoString(m) }
func (m *QueryDappBalanceRequest) ProtoMessage()   {}
func (m *QueryDappBalanceResponse) Reset()         { *m = QueryDappBalanceResponse{} }
func (m *QueryDappBalanceResponse) String() string { return protoString(m) }
func (m *QueryDappBalanceResponse) ProtoMessage()  {}

func (m *QueryCaptchaDataRequest) Reset()          { *m = QueryCaptchaDataRequest{} }
func (m *QueryCaptchaDataRequest) String() string  { return protoString(m) }
func (m *QueryCaptchaDataRequest) ProtoMessage()   {}
func (m *QueryCaptchaDataResponse) Reset()         { *m = QueryCaptchaDataResponse{} }
func (m *QueryCaptchaDataResponse) String() string { return protoString(m) }
func (m *QueryCaptchaDataResponse) ProtoMessage()  {}

func (m *QueryCommitmentRequest) Reset()          { *m = QueryCommitmentRequest{} }
func (m *QueryCommitmentRequest) String() string  { return protoString(m) }
func (m *QueryCommitmentRequest) ProtoMessage()   {}
func (m *QueryCommitmentResponse) Reset()         { *m = QueryCommitmentResponse{} }
func (m *QueryCommitmentResponse) String() string { return protoString(m) }
func (m *QueryCommitmentResponse) ProtoMessage()  {}

func (m *QueryDappUserRequest) Reset()          { *m = QueryDappUserRequest{} }
func (m *QueryDappUserRequest) String() string  { return protoString(m) }
func (m *QueryDappUserRequest) ProtoMessage()   {}
func (m *QueryDappUserResponse) Reset()         { *m = QueryDappUserResponse{} }
func (m *QueryDappUserResponse) String() string { return protoString(m) }
func (m *QueryDappUserResponse) ProtoMessage()  {}

func (m *QueryIsHumanRequest) Reset()          { *m = QueryIsHumanRequest{} }
func (m *QueryIsHumanRequest) String() string  { return protoString(m) }
func (m *QueryIsHumanRequest) ProtoMessage()   {}
func (m *QueryIsHumanResponse) Reset()         { *m = QueryIsHumanResponse{} }
func (m *QueryIsHumanResponse) String() string { return protoString(m) }
func (m *QueryIsHumanResponse) ProtoMessage()  {}

func (m *QueryOperatorsRequest) Reset()          { *m = QueryOperatorsRequest{} }
func (m *QueryOperatorsRequest) String() string  { return protoString(m) }
func (m *QueryOperatorsRequest) ProtoMessage()   {}
func (m *QueryOperatorsResponse) Reset()         { *m = QueryOperatorsResponse{} }
func (m *QueryOperatorsResponse) String() string { return protoString(m) }
func (m *QueryOperatorsResponse) ProtoMessage()  {}

// RegisterQueryServer registers the module's query handlers with the
// configurator's query router.
func RegisterQueryServer(s grpc.ServiceRegistrar, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

func _Query_Params_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Params(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/Params",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Params(ctx, req.(*QueryParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Provider_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryProviderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Provider(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/Provider",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Provider(ctx, req.(*QueryProviderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Providers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryProvidersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Providers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/Providers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Providers(ctx, req.(*QueryProvidersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_ProviderBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryProviderBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).ProviderBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/ProviderBalance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).ProviderBalance(ctx, req.(*QueryProviderBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Dapp_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryDappRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Dapp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/Dapp",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Dapp(ctx, req.(*QueryDappRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Dapps_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryDappsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Dapps(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/Dapps",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Dapps(ctx, req.(*QueryDappsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_DappBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryDappBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).DappBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/DappBalance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).DappBalance(ctx, req.(*QueryDappBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_CaptchaData_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryCaptchaDataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).CaptchaData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/CaptchaData",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).CaptchaData(ctx, req.(*QueryCaptchaDataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Commitment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryCommitmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Commitment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/Commitment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Commitment(ctx, req.(*QueryCommitmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_DappUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryDappUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).DappUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/DappUser",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).DappUser(ctx, req.(*QueryDappUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_IsHuman_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryIsHumanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).IsHuman(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/IsHuman",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).IsHuman(ctx, req.(*QueryIsHumanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Operators_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryOperatorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Operators(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/captcha.Query/Operators",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Operators(ctx, req.(*QueryOperatorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "captcha.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Params", Handler: _Query_Params_Handler},
		{MethodName: "Provider", Handler: _Query_Provider_Handler},
		{MethodName: "Providers", Handler: _Query_Providers_Handler},
		{MethodName: "ProviderBalance", Handler: _Query_ProviderBalance_Handler},
		{MethodName: "Dapp", Handler: _Query_Dapp_Handler},
		{MethodName: "Dapps", Handler: _Query_Dapps_Handler},
		{MethodName: "DappBalance", Handler: _Query_DappBalance_Handler},
		{MethodName: "CaptchaData", Handler: _Query_CaptchaData_Handler},
		{MethodName: "Commitment", Handler: _Query_Commitment_Handler},
		{MethodName: "DappUser", Handler: _Query_DappUser_Handler},
		{MethodName: "IsHuman", Handler: _Query_IsHuman_Handler},
		{MethodName: "Operators", Handler: _Query_Operators_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "captcha/query.proto",
}
