// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fidelio

//go:generate mockgen -source world_state.go -destination world_state_mock.go -package fidelio

// WorldState is an interface to access and manipulate the state of the
// simulated chain: accounts with balances, deployed modules, and contract
// instances binding a module to an address, a state blob, and a balance.
type WorldState interface {
	AccountExists(AccountAddress) bool
	IsAccountMissing(AccountAddress) bool
	GetAccountBalance(AccountAddress) Amount
	SetAccountBalance(AccountAddress, Amount)

	ModuleExists(ModuleReference) bool

	InstanceExists(ContractAddress) bool
	GetInstanceBalance(ContractAddress) Amount
	SetInstanceBalance(ContractAddress, Amount)
	GetInstanceState(ContractAddress) []byte
	SetInstanceState(ContractAddress, []byte)
	GetInstanceModule(ContractAddress) ModuleReference
	SetInstanceModule(ContractAddress, ModuleReference)
	GetInstanceName(ContractAddress) ContractName
	GetInstanceOwner(ContractAddress) AccountAddress

	// CreateInstance registers a new instance under the next free contract
	// address and returns that address.
	CreateInstance(Instance) ContractAddress
}

// Instance describes a contract instance to be created.
type Instance struct {
	Module  ModuleReference
	Name    ContractName
	Owner   AccountAddress
	State   []byte
	Balance Amount
}

// TransactionContext is the journaled world-state view the execution engine
// runs a single top-level call against. All modifications are buffered; the
// enclosing chain applies them atomically on success and discards them on
// failure. Snapshots support the rollback of failed nested calls.
//
// Restoring a snapshot unwinds all world-state mutations and the transfers
// recorded since the snapshot was taken, but keeps emitted events and chain
// events: those are reported for diagnostics even when their side effects
// are rolled back.
type TransactionContext interface {
	WorldState

	CreateSnapshot() Snapshot
	RestoreSnapshot(Snapshot)

	RecordTransfer(Transfer)
	Transfers() []Transfer

	EmitEvent(EmittedEvent)
	Events() []EmittedEvent

	RecordChainEvent(ChainEvent)
	ChainEvents() []ChainEvent

	// SlotTime returns the chain's slot time; the second result is false if
	// none was set.
	SlotTime() (Timestamp, bool)
}

// Snapshot identifies a state within a transaction context that can be
// restored.
type Snapshot int
