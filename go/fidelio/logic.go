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

//go:generate mockgen -source logic.go -destination logic_mock.go -package fidelio

// ContractLogic is the externally supplied behavior of a contract. The chain
// treats contracts as opaque units that consume energy and request effects;
// it does not interpret their code. Implementations are registered with the
// logic registry and invoked by the execution engine through this interface.
//
// Logic reports contract-level failures by returning a *Reject carrying the
// contract's own serialized error. Any other non-nil error is treated as a
// trap without a payload. Errors received from HostContext operations must be
// propagated, possibly wrapped in a *Reject.
type ContractLogic interface {
	// Init computes the initial state of a new instance and stores it via
	// SetState on the given host. On success the chain registers the
	// instance; on failure nothing is created.
	Init(ctx InitContext, host HostContext, amount Amount) error

	// Receive executes the entrypoint named in the context against an
	// existing instance and returns the serialized return value.
	Receive(ctx ReceiveContext, host HostContext, amount Amount) ([]byte, error)
}

// InitContext carries the per-call inputs of an init call.
type InitContext struct {
	Origin    AccountAddress // the account that signed the init
	Parameter []byte
}

// ReceiveContext carries the per-call inputs of an update or invoke call.
type ReceiveContext struct {
	Invoker    AccountAddress // the account that signed the top-level call
	Sender     Address        // the immediate caller, account or contract
	Owner      AccountAddress // the account that created the instance
	Self       ContractAddress
	Entrypoint EntrypointName
	Parameter  []byte
}

// HostContext is the handle through which contract logic interacts with the
// chain during a call. All operations charge energy from the shared budget of
// the enclosing top-level call and fail with ErrOutOfEnergy once it is
// exhausted; that error must be propagated.
type HostContext interface {
	// State returns the current state of the executing instance. During an
	// init call it returns the state written so far.
	State() []byte

	// SetState replaces the state of the executing instance. State is owned
	// exclusively by the instance and never shared.
	SetState(state []byte) error

	// SelfBalance returns the current balance of the executing instance,
	// including the amount attached to the ongoing call.
	SelfBalance() Amount

	// Transfer moves currency from the executing instance to an account.
	// It fails with a TransferError, applied immediately otherwise.
	Transfer(to AccountAddress, amount Amount) error

	// Invoke issues a nested call to another contract, suspending the
	// executing logic until the result is known. A failed nested call is
	// reported as a *CallError with all of its effects rolled back.
	Invoke(target ContractAddress, entrypoint EntrypointName, parameter []byte, amount Amount) ([]byte, error)

	// Upgrade swaps the module reference of the executing instance. The new
	// module must already be deployed.
	Upgrade(module ModuleReference) error

	// SlotTime returns the chain's slot time, failing with ErrNoSlotTime
	// if none was set.
	SlotTime() (Timestamp, error)

	// EmitEvent appends an opaque log entry attributed to the executing
	// instance.
	EmitEvent(data []byte) error

	// ChargeEnergy consumes extra energy, allowing logic to account for
	// work the host cannot observe.
	ChargeEnergy(amount Energy) error
}
