// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package leonore

import (
	"errors"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

// Invoke suspends the calling contract and runs a nested call against the
// same energy meter. The caller's interruption and resumption are recorded
// as chain events either way; a failed nested call has all of its effects
// rolled back before the caller resumes, and is reported as a *CallError.
// Energy exhaustion is not a call failure and propagates unwrapped, aborting
// the whole top-level call.
func (r *runContext) Invoke(
	target fidelio.ContractAddress,
	entrypoint fidelio.EntrypointName,
	parameter []byte,
	amount fidelio.Amount,
) ([]byte, error) {
	if err := r.meter.charge(InterruptCost); err != nil {
		return nil, err
	}
	caller := r.frame()
	r.context.RecordChainEvent(fidelio.Interrupted{Address: caller.self, Events: caller.events})
	caller.events = nil

	snapshot := r.context.CreateSnapshot()
	output, err := r.runNested(caller.self, target, entrypoint, parameter, amount)
	if err != nil {
		if errors.Is(err, fidelio.ErrOutOfEnergy) {
			return nil, err
		}
		r.context.RestoreSnapshot(snapshot)
		r.context.RecordChainEvent(fidelio.Resumed{Address: caller.self, Success: false})
		return nil, err
	}

	if err := r.meter.charge(ResumeCost); err != nil {
		return nil, err
	}
	r.context.RecordChainEvent(fidelio.Resumed{Address: caller.self, Success: true})
	return output, nil
}

func (r *runContext) runNested(
	caller fidelio.ContractAddress,
	target fidelio.ContractAddress,
	entrypoint fidelio.EntrypointName,
	parameter []byte,
	amount fidelio.Amount,
) ([]byte, error) {
	if !r.context.InstanceExists(target) {
		return nil, &fidelio.CallError{Code: fidelio.CallMissingContract}
	}
	module := r.context.GetInstanceModule(target)
	name := r.context.GetInstanceName(target)
	logic, found := r.resolver.Resolve(module, name)
	if !found {
		return nil, &fidelio.CallError{Code: fidelio.CallMissingContract}
	}

	callerBalance := r.context.GetInstanceBalance(caller)
	if callerBalance < amount {
		return nil, &fidelio.CallError{Code: fidelio.CallAmountTooLarge}
	}
	r.context.SetInstanceBalance(caller, callerBalance-amount)
	r.context.SetInstanceBalance(target, r.context.GetInstanceBalance(target)+amount)

	r.pushFrame(target)
	output, err := logic.Receive(fidelio.ReceiveContext{
		Invoker:    r.invoker,
		Sender:     fidelio.AddressFromContract(caller),
		Owner:      r.context.GetInstanceOwner(target),
		Self:       target,
		Entrypoint: entrypoint,
		Parameter:  parameter,
	}, r, amount)
	r.popFrame()
	if err != nil {
		return nil, asCallError(err)
	}
	return output, nil
}

// asCallError maps a failure of nested contract logic to the *CallError
// handed to the calling logic. Energy exhaustion passes through untouched.
func asCallError(err error) error {
	var reject *fidelio.Reject
	switch {
	case errors.Is(err, fidelio.ErrOutOfEnergy):
		return err
	case errors.As(err, &reject):
		return &fidelio.CallError{Code: fidelio.CallReject, Payload: reject.Payload}
	case errors.Is(err, fidelio.ErrMissingEntrypoint):
		return &fidelio.CallError{Code: fidelio.CallMissingEntrypoint}
	default:
		return &fidelio.CallError{Code: fidelio.CallTrap}
	}
}
