package types

import "encoding/json"

// The module's messages are wired by hand rather than generated, so each one
// carries the minimal method set the sdk.Msg interface expects.

func protoString(v interface{}) string {
	out, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(out)
}

func (m *MsgRegisterProvider) Reset()                  { *m = MsgRegisterProvider{} }
func (m *MsgRegisterProvider) String() string          { return protoString(m) }
func (m *MsgRegisterProvider) ProtoMessage()           {}
func (m *MsgRegisterProvider) XXX_MessageName() string { return "captcha.MsgRegisterProvider" }

func (m *MsgUpdateProvider) Reset()                  { *m = MsgUpdateProvider{} }
func (m *MsgUpdateProvider) String() string          { return protoString(m) }
func (m *MsgUpdateProvider) ProtoMessage()           {}
func (m *MsgUpdateProvider) XXX_MessageName() string { return "captcha.MsgUpdateProvider" }

func (m *MsgDeregisterProvider) Reset()                  { *m = MsgDeregisterProvider{} }
func (m *MsgDeregisterProvider) String() string          { return protoString(m) }
func (m *MsgDeregisterProvider) ProtoMessage()           {}
func (m *MsgDeregisterProvider) XXX_MessageName() string { return "captcha.MsgDeregisterProvider" }

func (m *MsgStakeProvider) Reset()                  { *m = MsgStakeProvider{} }
func (m *MsgStakeProvider) String() string          { return protoString(m) }
func (m *MsgStakeProvider) ProtoMessage()           {}
func (m *MsgStakeProvider) XXX_MessageName() string { return "captcha.MsgStakeProvider" }

func (m *MsgUnstakeProvider) Reset()                  { *m = MsgUnstakeProvider{} }
func (m *MsgUnstakeProvider) String() string          { return protoString(m) }
func (m *MsgUnstakeProvider) ProtoMessage()           {}
func (m *MsgUnstakeProvider) XXX_MessageName() string { return "captcha.MsgUnstakeProvider" }

func (m *MsgAddDataSet) Reset()                  { *m = MsgAddDataSet{} }
func (m *MsgAddDataSet) String() string          { return protoString(m) }
func (m *MsgAddDataSet) ProtoMessage()           {}
func (m *MsgAddDataSet) XXX_MessageName() string { return "captcha.MsgAddDataSet" }

func (m *MsgRegisterDapp) Reset()                  { *m = MsgRegisterDapp{} }
func (m *MsgRegisterDapp) String() string          { return protoString(m) }
func (m *MsgRegisterDapp) ProtoMessage()           {}
func (m *MsgRegisterDapp) XXX_MessageName() string { return "captcha.MsgRegisterDapp" }

func (m *MsgFundDapp) Reset()                  { *m = MsgFundDapp{} }
func (m *MsgFundDapp) String() string          { return protoString(m) }
func (m *MsgFundDapp) ProtoMessage()           {}
func (m *MsgFundDapp) XXX_MessageName() string { return "captcha.MsgFundDapp" }

func (m *MsgCancelDapp) Reset()                  { *m = MsgCancelDapp{} }
func (m *MsgCancelDapp) String() string          { return protoString(m) }
func (m *MsgCancelDapp) ProtoMessage()           {}
func (m *MsgCancelDapp) XXX_MessageName() string { return "captcha.MsgCancelDapp" }

func (m *MsgCommitSolution) Reset()                  { *m = MsgCommitSolution{} }
func (m *MsgCommitSolution) String() string          { return protoString(m) }
func (m *MsgCommitSolution) ProtoMessage()           {}
func (m *MsgCommitSolution) XXX_MessageName() string { return "captcha.MsgCommitSolution" }

func (m *MsgApproveSolution) Reset()                  { *m = MsgApproveSolution{} }
func (m *MsgApproveSolution) String() string          { return protoString(m) }
func (m *MsgApproveSolution) ProtoMessage()           {}
func (m *MsgApproveSolution) XXX_MessageName() string { return "captcha.MsgApproveSolution" }

func (m *MsgDisapproveSolution) Reset()                  { *m = MsgDisapproveSolution{} }
func (m *MsgDisapproveSolution) String() string          { return protoString(m) }
func (m *MsgDisapproveSolution) ProtoMessage()           {}
func (m *MsgDisapproveSolution) XXX_MessageName() string { return "captcha.MsgDisapproveSolution" }

func (m *MsgAddOperator) Reset()                  { *m = MsgAddOperator{} }
func (m *MsgAddOperator) String() string          { return protoString(m) }
func (m *MsgAddOperator) ProtoMessage()           {}
func (m *MsgAddOperator) XXX_MessageName() string { return "captcha.MsgAddOperator" }

func (m *MsgRegisterProviderResponse) Reset()         { *m = MsgRegisterProviderResponse{} }
func (m *MsgRegisterProviderResponse) String() string { return protoString(m) }
func (m *MsgRegisterProviderResponse) ProtoMessage()  {}
func (m *MsgRegisterProviderResponse) XXX_MessageName() string {
	return "captcha.MsgRegisterProviderResponse"
}

func (m *MsgUpdateProviderResponse) Reset()         { *m = MsgUpdateProviderResponse{} }
func (m *MsgUpdateProviderResponse) String() string { return protoString(m) }
func (m *MsgUpdateProviderResponse) ProtoMessage()  {}
func (m *MsgUpdateProviderResponse) XXX_MessageName() string {
	return "captcha.MsgUpdateProviderResponse"
}

func (m *MsgDeregisterProviderResponse) Reset()         { *m = MsgDeregisterProviderResponse{} }
func (m *MsgDeregisterProviderResponse) String() string { return protoString(m) }
func (m *MsgDeregisterProviderResponse) ProtoMessage()  {}
func (m *MsgDeregisterProviderResponse) XXX_MessageName() string {
	return "captcha.MsgDeregisterProviderResponse"
}

func (m *MsgStakeProviderResponse) Reset()                  { *m = MsgStakeProviderResponse{} }
func (m *MsgStakeProviderResponse) String() string          { return protoString(m) }
func (m *MsgStakeProviderResponse) ProtoMessage()           {}
func (m *MsgStakeProviderResponse) XXX_MessageName() string { return "captcha.MsgStakeProviderResponse" }

func (m *MsgUnstakeProviderResponse) Reset()         { *m = MsgUnstakeProviderResponse{} }
func (m *MsgUnstakeProviderResponse) String() string { return protoString(m) }
func (m *MsgUnstakeProviderResponse) ProtoMessage()  {}
func (m *MsgUnstakeProviderResponse) XXX_MessageName() string {
	return "captcha.MsgUnstakeProviderResponse"
}

func (m *MsgAddDataSetResponse) Reset()                  { *m = MsgAddDataSetResponse{} }
func (m *MsgAddDataSetResponse) String() string          { return protoString(m) }
func (m *MsgAddDataSetResponse) ProtoMessage()           {}
func (m *MsgAddDataSetResponse) XXX_MessageName() string { return "captcha.MsgAddDataSetResponse" }

func (m *MsgRegisterDappResponse) Reset()                  { *m = MsgRegisterDappResponse{} }
func (m *MsgRegisterDappResponse) String() string          { return protoString(m) }
func (m *MsgRegisterDappResponse) ProtoMessage()           {}
func (m *MsgRegisterDappResponse) XXX_MessageName() string { return "captcha.MsgRegisterDappResponse" }

func (m *MsgFundDappResponse) Reset()                  { *m = MsgFundDappResponse{} }
func (m *MsgFundDappResponse) String() string          { return protoString(m) }
func (m *MsgFundDappResponse) ProtoMessage()           {}
func (m *MsgFundDappResponse) XXX_MessageName() string { return "captcha.MsgFundDappResponse" }

func (m *MsgCancelDappResponse) Reset()                  { *m = MsgCancelDappResponse{} }
func (m *MsgCancelDappResponse) String() string          { return protoString(m) }
func (m *MsgCancelDappResponse) ProtoMessage()           {}
func (m *MsgCancelDappResponse) XXX_MessageName() string { return "captcha.MsgCancelDappResponse" }

func (m *MsgCommitSolutionResponse) Reset()         { *m = MsgCommitSolutionResponse{} }
func (m *MsgCommitSolutionResponse) String() string { return protoString(m) }
func (m *MsgCommitSolutionResponse) ProtoMessage()  {}
func (m *MsgCommitSolutionResponse) XXX_MessageName() string {
	return "captcha.MsgCommitSolutionResponse"
}

func (m *MsgApproveSolutionResponse) Reset()         { *m = MsgApproveSolutionResponse{} }
func (m *MsgApproveSolutionResponse) String() string { return protoString(m) }
func (m *MsgApproveSolutionResponse) ProtoMessage()  {}
func (m *MsgApproveSolutionResponse) XXX_MessageName() string {
	return "captcha.MsgApproveSolutionResponse"
}

func (m *MsgDisapproveSolutionResponse) Reset()         { *m = MsgDisapproveSolutionResponse{} }
func (m *MsgDisapproveSolutionResponse) String() string { return protoString(m) }
func (m *MsgDisapproveSolutionResponse) ProtoMessage()  {}
func (m *MsgDisapproveSolutionResponse) XXX_MessageName() string {
	return "captcha.MsgDisapproveSolutionResponse"
}

func (m *MsgAddOperatorResponse) Reset()                  { *m = MsgAddOperatorResponse{} }
func (m *MsgAddOperatorResponse) String() string          { return protoString(m) }
func (m *MsgAddOperatorResponse) ProtoMessage()           {}
func (m *MsgAddOperatorResponse) XXX_MessageName() string { return "captcha.MsgAddOperatorResponse" }
