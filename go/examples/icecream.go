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

// IcecreamModule is the deployable code of the icecream contract.
var IcecreamModule = []byte("\x00asm\x01\x00\x00\x00 fidelio/examples/icecream")

func init() {
	fidelio.RegisterLogic("icecream", icecreamLogic{})
}

// icecreamLogic sells icecream depending on the weather: `buy_icecream`
// queries the weather service the contract was initialized with and forwards
// the attached payment to the vendor when it is sunny, or refunds the
// invoker when it is rainy. The owner can swap the weather service through
// `replace_weather_service`.
//
// The contract's state is the address of its weather service.
type icecreamLogic struct{}

func (icecreamLogic) Init(ctx fidelio.InitContext, host fidelio.HostContext, _ fidelio.Amount) error {
	service, err := parseServiceAddress(ctx.Parameter)
	if err != nil {
		return ErrorParseParams.reject()
	}
	return host.SetState(encodeServiceAddress(service))
}

func (icecreamLogic) Receive(ctx fidelio.ReceiveContext, host fidelio.HostContext, amount fidelio.Amount) ([]byte, error) {
	switch ctx.Entrypoint {
	case "buy_icecream":
		return nil, buyIcecream(ctx, host, amount)
	case "replace_weather_service":
		sender, isAccount := ctx.Sender.Account()
		if !isAccount || sender != ctx.Owner {
			return nil, ErrorUnauthenticated.reject()
		}
		service, err := parseServiceAddress(ctx.Parameter)
		if err != nil {
			return nil, ErrorParseParams.reject()
		}
		return nil, host.SetState(encodeServiceAddress(service))
	case "view":
		return host.State(), nil
	default:
		return nil, fidelio.ErrMissingEntrypoint
	}
}

func buyIcecream(ctx fidelio.ReceiveContext, host fidelio.HostContext, amount fidelio.Amount) error {
	vendor, err := parseVendorAddress(ctx.Parameter)
	if err != nil {
		return ErrorParseParams.reject()
	}
	service, err := parseServiceAddress(host.State())
	if err != nil {
		return ErrorParseParams.reject()
	}

	response, err := host.Invoke(service, "get", nil, 0)
	if err != nil {
		return hostFailure(err, ErrorContractInvocation)
	}
	weather, err := params.Deserial[Weather](response)
	if err != nil {
		return ErrorParseParams.reject()
	}

	// Sunny weather pays the vendor; rainy weather returns the money.
	recipient := vendor
	if weather == Rainy {
		recipient = ctx.Invoker
	}
	if err := host.Transfer(recipient, amount); err != nil {
		return hostFailure(err, ErrorTransfer)
	}
	return nil
}

func parseServiceAddress(data []byte) (fidelio.ContractAddress, error) {
	r := params.NewReader(data)
	service := r.ContractAddress()
	if r.Err() != nil || r.Remaining() != 0 {
		return fidelio.ContractAddress{}, params.ErrParsingFailed
	}
	return service, nil
}

func encodeServiceAddress(service fidelio.ContractAddress) []byte {
	w := &params.Writer{}
	w.WriteContractAddress(service)
	return w.Bytes()
}

func parseVendorAddress(data []byte) (fidelio.AccountAddress, error) {
	r := params.NewReader(data)
	vendor := r.AccountAddress()
	if r.Err() != nil || r.Remaining() != 0 {
		return fidelio.AccountAddress{}, params.ErrParsingFailed
	}
	return vendor, nil
}
