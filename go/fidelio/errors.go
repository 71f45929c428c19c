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

import (
	"errors"
	"fmt"
)

// Two independent error taxonomies are used throughout this project and are
// never conflated:
//
//   - chain-level failures, expressed through the typed errors in this file
//     and surfaced directly to the calling test driver, and
//   - contract-level failures, which are opaque byte payloads produced by
//     contract logic and carried inside a FailedContractInteraction without
//     the engine ever interpreting them.

var (
	// ErrOutOfEnergy is reported when a call exhausts its energy budget.
	// Exhaustion at any depth fails the entire top-level call; the chain
	// itself remains usable.
	ErrOutOfEnergy = errors.New("out of energy")

	// ErrNoSlotTime is reported when contract logic reads the slot time of a
	// chain that has none set.
	ErrNoSlotTime = errors.New("slot time not set")

	// ErrModuleNotFound is reported when an operation references a module
	// that was never deployed.
	ErrModuleNotFound = errors.New("module not found")

	// ErrMissingEntrypoint is returned by contract logic when dispatched on
	// an entrypoint it does not define.
	ErrMissingEntrypoint = errors.New("missing entrypoint")
)

// TransferError enumerates the ways a requested transfer can fail.
type TransferError int

const (
	// AmountTooLarge indicates the sender's balance does not cover the
	// requested amount. There are no partial transfers.
	AmountTooLarge TransferError = iota

	// MissingAccount indicates the receiving account is marked missing.
	// A missing account exists in name only; every transfer to it fails.
	MissingAccount
)

func (e TransferError) Error() string {
	switch e {
	case AmountTooLarge:
		return "transfer failed: amount too large"
	case MissingAccount:
		return "transfer failed: missing account"
	}
	return fmt.Sprintf("transfer failed: unknown error %d", int(e))
}

// DeployErrorKind enumerates the ways a module deployment can fail.
type DeployErrorKind int

const (
	DeployFileNotFound DeployErrorKind = iota
	DeployInvalidModule
	DeployInsufficientFunds
	DeploySenderDoesNotExist
)

func (k DeployErrorKind) String() string {
	switch k {
	case DeployFileNotFound:
		return "file not found"
	case DeployInvalidModule:
		return "invalid module"
	case DeployInsufficientFunds:
		return "insufficient funds"
	case DeploySenderDoesNotExist:
		return "sender does not exist"
	}
	return fmt.Sprintf("unknown deploy error %d", int(k))
}

// DeployError is the typed failure of a module deployment.
type DeployError struct {
	Kind DeployErrorKind
	Err  error // optional underlying cause, e.g. the file-system error
}

func (e *DeployError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("module deployment failed: %v: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("module deployment failed: %v", e.Kind)
}

func (e *DeployError) Unwrap() error {
	return e.Err
}

// CallErrorCode enumerates the ways a nested contract call can fail from the
// perspective of the calling contract logic.
type CallErrorCode int

const (
	// CallMissingContract indicates no instance exists at the target address.
	CallMissingContract CallErrorCode = iota

	// CallMissingEntrypoint indicates the target contract does not define
	// the requested entrypoint.
	CallMissingEntrypoint

	// CallAmountTooLarge indicates the calling instance's balance does not
	// cover the amount attached to the nested call.
	CallAmountTooLarge

	// CallReject indicates the target's logic rejected with a payload.
	CallReject

	// CallTrap indicates the target's logic failed without a payload.
	CallTrap
)

func (c CallErrorCode) String() string {
	switch c {
	case CallMissingContract:
		return "missing contract"
	case CallMissingEntrypoint:
		return "missing entrypoint"
	case CallAmountTooLarge:
		return "amount too large"
	case CallReject:
		return "rejected"
	case CallTrap:
		return "trapped"
	}
	return fmt.Sprintf("unknown call error %d", int(c))
}

// CallError is handed to contract logic when a nested call it issued fails.
// The payload is only present for CallReject and is the callee's opaque
// contract-level error.
type CallError struct {
	Code    CallErrorCode
	Payload []byte
}

func (e *CallError) Error() string {
	return fmt.Sprintf("contract invocation failed: %v", e.Code)
}

// Reject is the error contract logic returns to fail with a contract-level
// error payload. Any other error returned by logic is treated as a trap.
type Reject struct {
	Payload []byte
}

func (e *Reject) Error() string {
	return fmt.Sprintf("rejected with %d bytes of payload", len(e.Payload))
}

// FailureKind classifies a failed contract interaction at the chain level.
type FailureKind int

const (
	// FailureReject reports that contract logic rejected; the failure
	// carries the logic's opaque error payload.
	FailureReject FailureKind = iota

	// FailureTrap reports that contract logic failed without a payload.
	FailureTrap

	// FailureOutOfEnergy reports energy exhaustion at some call depth.
	FailureOutOfEnergy

	// FailureModuleNotFound reports an init against an unknown module.
	FailureModuleNotFound

	// FailureContractNotFound reports an update against an address without
	// a registered instance.
	FailureContractNotFound

	// FailureLogicNotFound reports that no contract logic is registered for
	// the target module and contract name.
	FailureLogicNotFound

	// FailureAmountTooLarge reports that the sender could not cover the
	// amount attached to the call.
	FailureAmountTooLarge

	// FailureSenderDoesNotExist reports a call from a nonexistent account.
	FailureSenderDoesNotExist
)

func (k FailureKind) String() string {
	switch k {
	case FailureReject:
		return "rejected"
	case FailureTrap:
		return "trapped"
	case FailureOutOfEnergy:
		return "out of energy"
	case FailureModuleNotFound:
		return "module not found"
	case FailureContractNotFound:
		return "contract not found"
	case FailureLogicNotFound:
		return "logic not found"
	case FailureAmountTooLarge:
		return "amount too large"
	case FailureSenderDoesNotExist:
		return "sender does not exist"
	}
	return fmt.Sprintf("unknown failure %d", int(k))
}

// FailedContractInteraction is the failure record of an init, update, or
// invoke. All balance and state effects of the failed call are rolled back;
// the events recorded before the failure point are still reported for
// diagnostics. The payload is the contract's own serialized error and can be
// decoded on demand through the params package.
type FailedContractInteraction struct {
	EnergySpent Energy
	Kind        FailureKind
	Payload     []byte
	Events      []EmittedEvent
	ChainEvents []ChainEvent
}

func (f *FailedContractInteraction) Error() string {
	return fmt.Sprintf("contract interaction failed after %d energy: %v", f.EnergySpent, f.Kind)
}
