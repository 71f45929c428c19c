// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package examples bundles ready-made contract logics for demos and
// integration tests: a weather oracle, an icecream shop paying its vendor
// depending on the weather, and a counting contract exercising nested state
// updates around transfers. Each contract registers itself under its name in
// the global logic registry.
package examples

import (
	"errors"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
	"github.com/Fantom-foundation/Fidelio/go/params"
)

// ContractError is the shared error type of the example contracts, encoded
// as a single byte. Tests decode rejected calls' payloads back into it.
type ContractError uint8

const (
	// ErrorParseParams reports a malformed call parameter.
	ErrorParseParams ContractError = iota

	// ErrorTransfer reports a failed transfer request.
	ErrorTransfer

	// ErrorContractInvocation reports a failed nested contract call.
	ErrorContractInvocation

	// ErrorUnauthenticated reports a restricted entrypoint called by
	// somebody other than the contract's owner.
	ErrorUnauthenticated
)

func (e ContractError) Serial(w *params.Writer) {
	w.WriteU8(uint8(e))
}

func (e *ContractError) Deserial(r *params.Reader) {
	*e = ContractError(r.U8())
	if *e > ErrorUnauthenticated {
		r.Fail("unknown contract error %d", uint8(*e))
	}
}

// reject wraps the error into the opaque payload carried to the caller.
func (e ContractError) reject() *fidelio.Reject {
	return &fidelio.Reject{Payload: params.Serialize(e)}
}

// hostFailure maps an error received from a host operation to the logic's
// own error, keeping engine conditions such as energy exhaustion untouched.
func hostFailure(err error, own ContractError) error {
	var callError *fidelio.CallError
	var transferError fidelio.TransferError
	switch {
	case errors.As(err, &callError), errors.As(err, &transferError):
		return own.reject()
	default:
		return err
	}
}
