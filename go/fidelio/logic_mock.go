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

// MockContractLogic is a mock of ContractLogic interface.
type MockContractLogic struct {
	ctrl     *gomock.Controller
	recorder *MockContractLogicMockRecorder
}

// MockContractLogicMockRecorder is the mock recorder for MockContractLogic.
type MockContractLogicMockRecorder struct {
	mock *MockContractLogic
}

// NewMockContractLogic creates a new mock instance.
func NewMockContractLogic(ctrl *gomock.Controller) *MockContractLogic {
	mock := &MockContractLogic{ctrl: ctrl}
	mock.recorder = &MockContractLogicMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockContractLogic) EXPECT() *MockContractLogicMockRecorder {
	return m.recorder
}

// Init mocks base method.
func (m *MockContractLogic) Init(ctx InitContext, host HostContext, amount Amount) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Init", ctx, host, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// Init indicates an expected call of Init.
func (mr *MockContractLogicMockRecorder) Init(ctx, host, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Init", reflect.TypeOf((*MockContractLogic)(nil).Init), ctx, host, amount)
}

// Receive mocks base method.
func (m *MockContractLogic) Receive(ctx ReceiveContext, host HostContext, amount Amount) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Receive", ctx, host, amount)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Receive indicates an expected call of Receive.
func (mr *MockContractLogicMockRecorder) Receive(ctx, host, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Receive", reflect.TypeOf((*MockContractLogic)(nil).Receive), ctx, host, amount)
}

// MockHostContext is a mock of HostContext interface.
type MockHostContext struct {
	ctrl     *gomock.Controller
	recorder *MockHostContextMockRecorder
}

// MockHostContextMockRecorder is the mock recorder for MockHostContext.
type MockHostContextMockRecorder struct {
	mock *MockHostContext
}

// NewMockHostContext creates a new mock instance.
func NewMockHostContext(ctrl *gomock.Controller) *MockHostContext {
	mock := &MockHostContext{ctrl: ctrl}
	mock.recorder = &MockHostContextMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHostContext) EXPECT() *MockHostContextMockRecorder {
	return m.recorder
}

// ChargeEnergy mocks base method.
func (m *MockHostContext) ChargeEnergy(amount Energy) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChargeEnergy", amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// ChargeEnergy indicates an expected call of ChargeEnergy.
func (mr *MockHostContextMockRecorder) ChargeEnergy(amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChargeEnergy", reflect.TypeOf((*MockHostContext)(nil).ChargeEnergy), amount)
}

// EmitEvent mocks base method.
func (m *MockHostContext) EmitEvent(data []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EmitEvent", data)
	ret0, _ := ret[0].(error)
	return ret0
}

// EmitEvent indicates an expected call of EmitEvent.
func (mr *MockHostContextMockRecorder) EmitEvent(data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EmitEvent", reflect.TypeOf((*MockHostContext)(nil).EmitEvent), data)
}

// Invoke mocks base method.
func (m *MockHostContext) Invoke(target ContractAddress, entrypoint EntrypointName, parameter []byte, amount Amount) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Invoke", target, entrypoint, parameter, amount)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Invoke indicates an expected call of Invoke.
func (mr *MockHostContextMockRecorder) Invoke(target, entrypoint, parameter, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Invoke", reflect.TypeOf((*MockHostContext)(nil).Invoke), target, entrypoint, parameter, amount)
}

// SelfBalance mocks base method.
func (m *MockHostContext) SelfBalance() Amount {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SelfBalance")
	ret0, _ := ret[0].(Amount)
	return ret0
}

// SelfBalance indicates an expected call of SelfBalance.
func (mr *MockHostContextMockRecorder) SelfBalance() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SelfBalance", reflect.TypeOf((*MockHostContext)(nil).SelfBalance))
}

// SetState mocks base method.
func (m *MockHostContext) SetState(state []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetState", state)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetState indicates an expected call of SetState.
func (mr *MockHostContextMockRecorder) SetState(state any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetState", reflect.TypeOf((*MockHostContext)(nil).SetState), state)
}

// SlotTime mocks base method.
func (m *MockHostContext) SlotTime() (Timestamp, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SlotTime")
	ret0, _ := ret[0].(Timestamp)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SlotTime indicates an expected call of SlotTime.
func (mr *MockHostContextMockRecorder) SlotTime() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SlotTime", reflect.TypeOf((*MockHostContext)(nil).SlotTime))
}

// State mocks base method.
func (m *MockHostContext) State() []byte {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "State")
	ret0, _ := ret[0].([]byte)
	return ret0
}

// State indicates an expected call of State.
func (mr *MockHostContextMockRecorder) State() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "State", reflect.TypeOf((*MockHostContext)(nil).State))
}

// Transfer mocks base method.
func (m *MockHostContext) Transfer(to AccountAddress, amount Amount) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transfer", to, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// Transfer indicates an expected call of Transfer.
func (mr *MockHostContextMockRecorder) Transfer(to, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transfer", reflect.TypeOf((*MockHostContext)(nil).Transfer), to, amount)
}

// Upgrade mocks base method.
func (m *MockHostContext) Upgrade(module ModuleReference) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upgrade", module)
	ret0, _ := ret[0].(error)
	return ret0
}

// Upgrade indicates an expected call of Upgrade.
func (mr *MockHostContextMockRecorder) Upgrade(module any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upgrade", reflect.TypeOf((*MockHostContext)(nil).Upgrade), module)
}
