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

// WeatherModule is the deployable code of the weather contract.
var WeatherModule = []byte("\x00asm\x01\x00\x00\x00 fidelio/examples/weather")

// Weather is the single-byte state and parameter of the weather contract.
type Weather uint8

const (
	Sunny Weather = iota
	Rainy
)

func (w Weather) Serial(wr *params.Writer) {
	wr.WriteU8(uint8(w))
}

func (w *Weather) Deserial(r *params.Reader) {
	*w = Weather(r.U8())
	if *w > Rainy {
		r.Fail("unknown weather %d", uint8(*w))
	}
}

func init() {
	fidelio.RegisterLogic("weather", weatherLogic{})
}

// weatherLogic is a trivial oracle: initialized with a weather value, it
// reports it through `get` and lets its owner overwrite it through `set`.
type weatherLogic struct{}

func (weatherLogic) Init(ctx fidelio.InitContext, host fidelio.HostContext, _ fidelio.Amount) error {
	weather, err := params.Deserial[Weather](ctx.Parameter)
	if err != nil {
		return ErrorParseParams.reject()
	}
	return host.SetState(params.Serialize(weather))
}

func (weatherLogic) Receive(ctx fidelio.ReceiveContext, host fidelio.HostContext, _ fidelio.Amount) ([]byte, error) {
	switch ctx.Entrypoint {
	case "get":
		return host.State(), nil
	case "set":
		sender, isAccount := ctx.Sender.Account()
		if !isAccount || sender != ctx.Owner {
			return nil, ErrorUnauthenticated.reject()
		}
		weather, err := params.Deserial[Weather](ctx.Parameter)
		if err != nil {
			return nil, ErrorParseParams.reject()
		}
		return nil, host.SetState(params.Serialize(weather))
	default:
		return nil, fidelio.ErrMissingEntrypoint
	}
}
