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

// Processor is a component capable of executing contract calls. An
// implementation drives the externally supplied contract logic against an
// energy budget, mediates its effect requests against the world state, and
// records transfers and events on the transaction context. Implementations
// must honor the all-or-nothing contract: a failed call leaves the world
// state exactly as it was.
type Processor interface {
	// RunInit executes an init call, creating a new contract instance on
	// success. The returned error reports engine-internal problems only;
	// ordinary call failures are reported through the receipt.
	RunInit(InitTransaction, TransactionContext) (Receipt, error)

	// RunReceive executes an update or invoke call against an existing
	// instance. Whether the buffered effects are committed is decided by
	// the caller; the processor treats both identically.
	RunReceive(ReceiveTransaction, TransactionContext) (Receipt, error)
}

// InitTransaction summarizes the parameters of an init call.
type InitTransaction struct {
	Sender      AccountAddress
	Module      ModuleReference
	Name        ContractName
	Parameter   []byte
	Amount      Amount // charged from the sender, held by the new instance
	EnergyLimit Energy
}

// ReceiveTransaction summarizes the parameters of an update or invoke call.
type ReceiveTransaction struct {
	Sender      AccountAddress
	Address     ContractAddress
	Entrypoint  EntrypointName
	Parameter   []byte
	Amount      Amount // moved from the sender to the instance up front
	EnergyLimit Energy
}

// Receipt summarizes the outcome of a processed call. EnergyUsed never
// exceeds the transaction's energy limit.
type Receipt struct {
	Success         bool
	EnergyUsed      Energy
	ContractAddress *ContractAddress // filled for a successful init
	Output          []byte           // the return value of a successful receive
	FailureKind     FailureKind      // meaningful only if Success is false
	Payload         []byte           // contract-level error payload, if any
}

// SuccessfulContractInit is the success record of an init call.
type SuccessfulContractInit struct {
	ContractAddress ContractAddress
	Events          []EmittedEvent
	EnergyUsed      Energy
}

// SuccessfulContractUpdate is the success record of an update or invoke
// call. Transfers and chain events appear in call order; the sum of all
// transfer amounts equals the net balance change across the touched
// accounts.
type SuccessfulContractUpdate struct {
	ReturnValue []byte
	ChainEvents []ChainEvent
	Events      []EmittedEvent
	Transfers   []Transfer
	EnergyUsed  Energy
}
