// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"github.com/Fantom-foundation/Fidelio/go/fidelio"
	"github.com/Fantom-foundation/Fidelio/go/params"
)

// IntegrateModule is the deployable code of the integrate contract.
var IntegrateModule = []byte("\x00asm\x01\x00\x00\x00 fidelio/examples/integrate")

func init() {
	fidelio.RegisterLogic("integrate", integrateLogic{})
}

// integrateLogic keeps a u32 counter and interleaves counter updates with a
// transfer: `receive` increments, forwards the attached amount to the given
// account, increments again, and returns the counter. Rollback tests use it
// to check that a failure in the middle discards both increments.
type integrateLogic struct{}

func (integrateLogic) Init(_ fidelio.InitContext, host fidelio.HostContext, _ fidelio.Amount) error {
	return host.SetState(encodeCounter(0))
}

func (integrateLogic) Receive(ctx fidelio.ReceiveContext, host fidelio.HostContext, amount fidelio.Amount) ([]byte, error) {
	switch ctx.Entrypoint {
	case "receive":
		account, err := parseVendorAddress(ctx.Parameter)
		if err != nil {
			return nil, ErrorParseParams.reject()
		}
		counter, err := parseCounter(host.State())
		if err != nil {
			return nil, ErrorParseParams.reject()
		}
		counter++
		if err := host.SetState(encodeCounter(counter)); err != nil {
			return nil, err
		}
		if err := host.Transfer(account, amount); err != nil {
			return nil, hostFailure(err, ErrorTransfer)
		}
		counter++
		if err := host.SetState(encodeCounter(counter)); err != nil {
			return nil, err
		}
		return encodeCounter(counter), nil
	case "view":
		return host.State(), nil
	default:
		return nil, fidelio.ErrMissingEntrypoint
	}
}

func parseCounter(data []byte) (uint32, error) {
	r := params.NewReader(data)
	counter := r.U32()
	if r.Err() != nil || r.Remaining() != 0 {
		return 0, params.ErrParsingFailed
	}
	return counter, nil
}

func encodeCounter(counter uint32) []byte {
	w := &params.Writer{}
	w.WriteU32(counter)
	return w.Bytes()
}
