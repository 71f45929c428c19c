// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package fidelio is a generated GoMock package.
package fidelio

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockWorldState is a mock of WorldState interface.
type MockWorldState struct {
	ctrl     *gomock.Controller
	recorder *MockWorldStateMockRecorder
}

// MockWorldStateMockRecorder is the mock recorder for MockWorldState.
type MockWorldStateMockRecorder struct {
	mock *MockWorldState
}

// NewMockWorldState creates a new mock instance.
func NewMockWorldState(ctrl *gomock.Controller) *MockWorldState {
	mock := &MockWorldState{ctrl: ctrl}
	mock.recorder = &MockWorldStateMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorldState) EXPECT() *MockWorldStateMockRecorder {
	return m.recorder
}

// AccountExists mocks base method.
func (m *MockWorldState) AccountExists(arg0 AccountAddress) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AccountExists", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// AccountExists indicates an expected call of AccountExists.
func (mr *MockWorldStateMockRecorder) AccountExists(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AccountExists", reflect.TypeOf((*MockWorldState)(nil).AccountExists), arg0)
}

// CreateInstance mocks base method.
func (m *MockWorldState) CreateInstance(arg0 Instance) ContractAddress {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateInstance", arg0)
	ret0, _ := ret[0].(ContractAddress)
	return ret0
}

// CreateInstance indicates an expected call of CreateInstance.
func (mr *MockWorldStateMockRecorder) CreateInstance(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateInstance", reflect.TypeOf((*MockWorldState)(nil).CreateInstance), arg0)
}

// GetAccountBalance mocks base method.
func (m *MockWorldState) GetAccountBalance(arg0 AccountAddress) Amount {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAccountBalance", arg0)
	ret0, _ := ret[0].(Amount)
	return ret0
}

// GetAccountBalance indicates an expected call of GetAccountBalance.
func (mr *MockWorldStateMockRecorder) GetAccountBalance(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAccountBalance", reflect.TypeOf((*MockWorldState)(nil).GetAccountBalance), arg0)
}

// GetInstanceBalance mocks base method.
func (m *MockWorldState) GetInstanceBalance(arg0 ContractAddress) Amount {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInstanceBalance", arg0)
	ret0, _ := ret[0].(Amount)
	return ret0
}

// GetInstanceBalance indicates an expected call of GetInstanceBalance.
func (mr *MockWorldStateMockRecorder) GetInstanceBalance(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInstanceBalance", reflect.TypeOf((*MockWorldState)(nil).GetInstanceBalance), arg0)
}

// GetInstanceModule mocks base method.
func (m *MockWorldState) GetInstanceModule(arg0 ContractAddress) ModuleReference {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInstanceModule", arg0)
	ret0, _ := ret[0].(ModuleReference)
	return ret0
}

// GetInstanceModule indicates an expected call of GetInstanceModule.
func (mr *MockWorldStateMockRecorder) GetInstanceModule(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInstanceModule", reflect.TypeOf((*MockWorldState)(nil).GetInstanceModule), arg0)
}

// GetInstanceName mocks base method.
func (m *MockWorldState) GetInstanceName(arg0 ContractAddress) ContractName {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInstanceName", arg0)
	ret0, _ := ret[0].(ContractName)
	return ret0
}

// GetInstanceName indicates an expected call of GetInstanceName.
func (mr *MockWorldStateMockRecorder) GetInstanceName(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInstanceName", reflect.TypeOf((*MockWorldState)(nil).GetInstanceName), arg0)
}

// GetInstanceOwner mocks base method.
func (m *MockWorldState) GetInstanceOwner(arg0 ContractAddress) AccountAddress {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInstanceOwner", arg0)
	ret0, _ := ret[0].(AccountAddress)
	return ret0
}

// GetInstanceOwner indicates an expected call of GetInstanceOwner.
func (mr *MockWorldStateMockRecorder) GetInstanceOwner(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInstanceOwner", reflect.TypeOf((*MockWorldState)(nil).GetInstanceOwner), arg0)
}

// GetInstanceState mocks base method.
func (m *MockWorldState) GetInstanceState(arg0 ContractAddress) []byte {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInstanceState", arg0)
	ret0, _ := ret[0].([]byte)
	return ret0
}

// GetInstanceState indicates an expected call of GetInstanceState.
func (mr *MockWorldStateMockRecorder) GetInstanceState(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInstanceState", reflect.TypeOf((*MockWorldState)(nil).GetInstanceState), arg0)
}

// InstanceExists mocks base method.
func (m *MockWorldState) InstanceExists(arg0 ContractAddress) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InstanceExists", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// InstanceExists indicates an expected call of InstanceExists.
func (mr *MockWorldStateMockRecorder) InstanceExists(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InstanceExists", reflect.TypeOf((*MockWorldState)(nil).InstanceExists), arg0)
}

// IsAccountMissing mocks base method.
func (m *MockWorldState) IsAccountMissing(arg0 AccountAddress) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsAccountMissing", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsAccountMissing indicates an expected call of IsAccountMissing.
func (mr *MockWorldStateMockRecorder) IsAccountMissing(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsAccountMissing", reflect.TypeOf((*MockWorldState)(nil).IsAccountMissing), arg0)
}

// ModuleExists mocks base method.
func (m *MockWorldState) ModuleExists(arg0 ModuleReference) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ModuleExists", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// ModuleExists indicates an expected call of ModuleExists.
func (mr *MockWorldStateMockRecorder) ModuleExists(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ModuleExists", reflect.TypeOf((*MockWorldState)(nil).ModuleExists), arg0)
}

// SetAccountBalance mocks base method.
func (m *MockWorldState) SetAccountBalance(arg0 AccountAddress, arg1 Amount) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetAccountBalance", arg0, arg1)
}

// SetAccountBalance indicates an expected call of SetAccountBalance.
func (mr *MockWorldStateMockRecorder) SetAccountBalance(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetAccountBalance", reflect.TypeOf((*MockWorldState)(nil).SetAccountBalance), arg0, arg1)
}

// SetInstanceBalance mocks base method.
func (m *MockWorldState) SetInstanceBalance(arg0 ContractAddress, arg1 Amount) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetInstanceBalance", arg0, arg1)
}

// SetInstanceBalance indicates an expected call of SetInstanceBalance.
func (mr *MockWorldStateMockRecorder) SetInstanceBalance(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetInstanceBalance", reflect.TypeOf((*MockWorldState)(nil).SetInstanceBalance), arg0, arg1)
}

// SetInstanceModule mocks base method.
func (m *MockWorldState) SetInstanceModule(arg0 ContractAddress, arg1 ModuleReference) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetInstanceModule", arg0, arg1)
}

// SetInstanceModule indicates an expected call of SetInstanceModule.
func (mr *MockWorldStateMockRecorder) SetInstanceModule(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetInstanceModule", reflect.TypeOf((*MockWorldState)(nil).SetInstanceModule), arg0, arg1)
}

// SetInstanceState mocks base method.
func (m *MockWorldState) SetInstanceState(arg0 ContractAddress, arg1 []byte) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetInstanceState", arg0, arg1)
}

// SetInstanceState indicates an expected call of SetInstanceState.
func (mr *MockWorldStateMockRecorder) SetInstanceState(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetInstanceState", reflect.TypeOf((*MockWorldState)(nil).SetInstanceState), arg0, arg1)
}

// MockTransactionContext is a mock of TransactionContext interface.
type MockTransactionContext struct {
	ctrl     *gomock.Controller
	recorder *MockTransactionContextMockRecorder
}

// MockTransactionContextMockRecorder is the mock recorder for MockTransactionContext.
type MockTransactionContextMockRecorder struct {
	mock *MockTransactionContext
}

// NewMockTransactionContext creates a new mock instance.
func NewMockTransactionContext(ctrl *gomock.Controller) *MockTransactionContext {
	mock := &MockTransactionContext{ctrl: ctrl}
	mock.recorder = &MockTransactionContextMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransactionContext) EXPECT() *MockTransactionContextMockRecorder {
	return m.recorder
}

// AccountExists mocks base method.
func (m *MockTransactionContext) AccountExists(arg0 AccountAddress) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AccountExists", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// AccountExists indicates an expected call of AccountExists.
func (mr *MockTransactionContextMockRecorder) AccountExists(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AccountExists", reflect.TypeOf((*MockTransactionContext)(nil).AccountExists), arg0)
}

// ChainEvents mocks base method.
func (m *MockTransactionContext) ChainEvents() []ChainEvent {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChainEvents")
	ret0, _ := ret[0].([]ChainEvent)
	return ret0
}

// ChainEvents indicates an expected call of ChainEvents.
func (mr *MockTransactionContextMockRecorder) ChainEvents() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChainEvents", reflect.TypeOf((*MockTransactionContext)(nil).ChainEvents))
}

// CreateInstance mocks base method.
func (m *MockTransactionContext) CreateInstance(arg0 Instance) ContractAddress {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateInstance", arg0)
	ret0, _ := ret[0].(ContractAddress)
	return ret0
}

// CreateInstance indicates an expected call of CreateInstance.
func (mr *MockTransactionContextMockRecorder) CreateInstance(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateInstance", reflect.TypeOf((*MockTransactionContext)(nil).CreateInstance), arg0)
}

// CreateSnapshot mocks base method.
func (m *MockTransactionContext) CreateSnapshot() Snapshot {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSnapshot")
	ret0, _ := ret[0].(Snapshot)
	return ret0
}

// CreateSnapshot indicates an expected call of CreateSnapshot.
func (mr *MockTransactionContextMockRecorder) CreateSnapshot() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSnapshot", reflect.TypeOf((*MockTransactionContext)(nil).CreateSnapshot))
}

// EmitEvent mocks base method.
func (m *MockTransactionContext) EmitEvent(arg0 EmittedEvent) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "EmitEvent", arg0)
}

// EmitEvent indicates an expected call of EmitEvent.
func (mr *MockTransactionContextMockRecorder) EmitEvent(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EmitEvent", reflect.TypeOf((*MockTransactionContext)(nil).EmitEvent), arg0)
}

// Events mocks base method.
func (m *MockTransactionContext) Events() []EmittedEvent {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Events")
	ret0, _ := ret[0].([]EmittedEvent)
	return ret0
}

// Events indicates an expected call of Events.
func (mr *MockTransactionContextMockRecorder) Events() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Events", reflect.TypeOf((*MockTransactionContext)(nil).Events))
}

// GetAccountBalance mocks base method.
func (m *MockTransactionContext) GetAccountBalance(arg0 AccountAddress) Amount {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAccountBalance", arg0)
	ret0, _ := ret[0].(Amount)
	return ret0
}

// GetAccountBalance indicates an expected call of GetAccountBalance.
func (mr *MockTransactionContextMockRecorder) GetAccountBalance(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAccountBalance", reflect.TypeOf((*MockTransactionContext)(nil).GetAccountBalance), arg0)
}

// GetInstanceBalance mocks base method.
func (m *MockTransactionContext) GetInstanceBalance(arg0 ContractAddress) Amount {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInstanceBalance", arg0)
	ret0, _ := ret[0].(Amount)
	return ret0
}

// GetInstanceBalance indicates an expected call of GetInstanceBalance.
func (mr *MockTransactionContextMockRecorder) GetInstanceBalance(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInstanceBalance", reflect.TypeOf((*MockTransactionContext)(nil).GetInstanceBalance), arg0)
}

// GetInstanceModule mocks base method.
func (m *MockTransactionContext) GetInstanceModule(arg0 ContractAddress) ModuleReference {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInstanceModule", arg0)
	ret0, _ := ret[0].(ModuleReference)
	return ret0
}

// GetInstanceModule indicates an expected call of GetInstanceModule.
func (mr *MockTransactionContextMockRecorder) GetInstanceModule(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInstanceModule", reflect.TypeOf((*MockTransactionContext)(nil).GetInstanceModule), arg0)
}

// GetInstanceName mocks base method.
func (m *MockTransactionContext) GetInstanceName(arg0 ContractAddress) ContractName {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInstanceName", arg0)
	ret0, _ := ret[0].(ContractName)
	return ret0
}

// GetInstanceName indicates an expected call of GetInstanceName.
func (mr *MockTransactionContextMockRecorder) GetInstanceName(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInstanceName", reflect.TypeOf((*MockTransactionContext)(nil).GetInstanceName), arg0)
}

// GetInstanceOwner mocks base method.
func (m *MockTransactionContext) GetInstanceOwner(arg0 ContractAddress) AccountAddress {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInstanceOwner", arg0)
	ret0, _ := ret[0].(AccountAddress)
	return ret0
}

// GetInstanceOwner indicates an expected call of GetInstanceOwner.
func (mr *MockTransactionContextMockRecorder) GetInstanceOwner(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInstanceOwner", reflect.TypeOf((*MockTransactionContext)(nil).GetInstanceOwner), arg0)
}

// GetInstanceState mocks base method.
func (m *MockTransactionContext) GetInstanceState(arg0 ContractAddress) []byte {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInstanceState", arg0)
	ret0, _ := ret[0].([]byte)
	return ret0
}

// GetInstanceState indicates an expected call of GetInstanceState.
func (mr *MockTransactionContextMockRecorder) GetInstanceState(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInstanceState", reflect.TypeOf((*MockTransactionContext)(nil).GetInstanceState), arg0)
}

// InstanceExists mocks base method.
func (m *MockTransactionContext) InstanceExists(arg0 ContractAddress) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InstanceExists", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// InstanceExists indicates an expected call of InstanceExists.
func (mr *MockTransactionContextMockRecorder) InstanceExists(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InstanceExists", reflect.TypeOf((*MockTransactionContext)(nil).InstanceExists), arg0)
}

// IsAccountMissing mocks base method.
func (m *MockTransactionContext) IsAccountMissing(arg0 AccountAddress) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsAccountMissing", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsAccountMissing indicates an expected call of IsAccountMissing.
func (mr *MockTransactionContextMockRecorder) IsAccountMissing(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsAccountMissing", reflect.TypeOf((*MockTransactionContext)(nil).IsAccountMissing), arg0)
}

// ModuleExists mocks base method.
func (m *MockTransactionContext) ModuleExists(arg0 ModuleReference) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ModuleExists", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// ModuleExists indicates an expected call of ModuleExists.
func (mr *MockTransactionContextMockRecorder) ModuleExists(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ModuleExists", reflect.TypeOf((*MockTransactionContext)(nil).ModuleExists), arg0)
}

// RecordChainEvent mocks base method.
func (m *MockTransactionContext) RecordChainEvent(arg0 ChainEvent) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordChainEvent", arg0)
}

// RecordChainEvent indicates an expected call of RecordChainEvent.
func (mr *MockTransactionContextMockRecorder) RecordChainEvent(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordChainEvent", reflect.TypeOf((*MockTransactionContext)(nil).RecordChainEvent), arg0)
}

// RecordTransfer mocks base method.
func (m *MockTransactionContext) RecordTransfer(arg0 Transfer) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordTransfer", arg0)
}

// RecordTransfer indicates an expected call of RecordTransfer.
func (mr *MockTransactionContextMockRecorder) RecordTransfer(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordTransfer", reflect.TypeOf((*MockTransactionContext)(nil).RecordTransfer), arg0)
}

// RestoreSnapshot mocks base method.
func (m *MockTransactionContext) RestoreSnapshot(arg0 Snapshot) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RestoreSnapshot", arg0)
}

// RestoreSnapshot indicates an expected call of RestoreSnapshot.
func (mr *MockTransactionContextMockRecorder) RestoreSnapshot(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RestoreSnapshot", reflect.TypeOf((*MockTransactionContext)(nil).RestoreSnapshot), arg0)
}

// SetAccountBalance mocks base method.
func (m *MockTransactionContext) SetAccountBalance(arg0 AccountAddress, arg1 Amount) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetAccountBalance", arg0, arg1)
}

// SetAccountBalance indicates an expected call of SetAccountBalance.
func (mr *MockTransactionContextMockRecorder) SetAccountBalance(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetAccountBalance", reflect.TypeOf((*MockTransactionContext)(nil).SetAccountBalance), arg0, arg1)
}

// SetInstanceBalance mocks base method.
func (m *MockTransactionContext) SetInstanceBalance(arg0 ContractAddress, arg1 Amount) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetInstanceBalance", arg0, arg1)
}

// SetInstanceBalance indicates an expected call of SetInstanceBalance.
func (mr *MockTransactionContextMockRecorder) SetInstanceBalance(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetInstanceBalance", reflect.TypeOf((*MockTransactionContext)(nil).SetInstanceBalance), arg0, arg1)
}

// SetInstanceModule mocks base method.
func (m *MockTransactionContext) SetInstanceModule(arg0 ContractAddress, arg1 ModuleReference) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetInstanceModule", arg0, arg1)
}

// SetInstanceModule indicates an expected call of SetInstanceModule.
func (mr *MockTransactionContextMockRecorder) SetInstanceModule(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetInstanceModule", reflect.TypeOf((*MockTransactionContext)(nil).SetInstanceModule), arg0, arg1)
}

// SetInstanceState mocks base method.
func (m *MockTransactionContext) SetInstanceState(arg0 ContractAddress, arg1 []byte) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetInstanceState", arg0, arg1)
}

// SetInstanceState indicates an expected call of SetInstanceState.
func (mr *MockTransactionContextMockRecorder) SetInstanceState(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetInstanceState", reflect.TypeOf((*MockTransactionContext)(nil).SetInstanceState), arg0, arg1)
}

// SlotTime mocks base method.
func (m *MockTransactionContext) SlotTime() (Timestamp, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SlotTime")
	ret0, _ := ret[0].(Timestamp)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// SlotTime indicates an expected call of SlotTime.
func (mr *MockTransactionContextMockRecorder) SlotTime() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SlotTime", reflect.TypeOf((*MockTransactionContext)(nil).SlotTime))
}

// Transfers mocks base method.
func (m *MockTransactionContext) Transfers() []Transfer {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transfers")
	ret0, _ := ret[0].([]Transfer)
	return ret0
}

// Transfers indicates an expected call of Transfers.
func (mr *MockTransactionContextMockRecorder) Transfers() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transfers", reflect.TypeOf((*MockTransactionContext)(nil).Transfers))
}
