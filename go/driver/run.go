// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"time"

	"github.com/Fantom-foundation/Fidelio/go/chain"
	"github.com/Fantom-foundation/Fidelio/go/examples"
	"github.com/Fantom-foundation/Fidelio/go/fidelio"
	"github.com/Fantom-foundation/Fidelio/go/params"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
)

var RunCmd = cli.Command{
	Action: doRun,
	Name:   "run",
	Usage:  "Run the icecream demo scenario on a fresh chain",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "weather",
			Usage: "the weather reported by the oracle, sunny or rainy",
			Value: "sunny",
		},
		&cli.Uint64Flag{
			Name:  "price",
			Usage: "the icecream price in CCD",
			Value: 6,
		},
		&cli.Uint64Flag{
			Name:  "energy",
			Usage: "the energy budget per purchase",
			Value: 10_000,
		},
		&cli.IntFlag{
			Name:  "iterations",
			Usage: "number of purchases to run",
			Value: 1000,
		},
	},
}

func doRun(context *cli.Context) error {
	var weather examples.Weather
	switch context.String("weather") {
	case "sunny":
		weather = examples.Sunny
	case "rainy":
		weather = examples.Rainy
	default:
		return fmt.Errorf("invalid weather %q, use sunny or rainy", context.String("weather"))
	}
	price := fidelio.AmountFromCCD(context.Uint64("price"))
	energy := fidelio.Energy(context.Uint64("energy"))
	iterations := context.Int("iterations")

	invoker := fidelio.AccountAddress{1}
	vendor := fidelio.AccountAddress{2}

	sim := chain.New(fidelio.TimestampFromTime(time.Now()))
	if err := sim.CreateAccount(invoker, fidelio.AmountFromCCD(1_000_000_000)); err != nil {
		return err
	}
	if err := sim.CreateAccount(vendor, 0); err != nil {
		return err
	}

	weatherModule, err := sim.DeployModule(invoker, chain.FromBytes(examples.WeatherModule))
	if err != nil {
		return err
	}
	icecreamModule, err := sim.DeployModule(invoker, chain.FromBytes(examples.IcecreamModule))
	if err != nil {
		return err
	}

	weatherInit, err := sim.ContractInit(invoker, weatherModule, "weather",
		params.Typed(weather).Bytes(), 0, energy)
	if err != nil {
		return err
	}
	serviceParameter := &params.Writer{}
	serviceParameter.WriteContractAddress(weatherInit.ContractAddress)
	icecreamInit, err := sim.ContractInit(invoker, icecreamModule, "icecream",
		serviceParameter.Bytes(), 0, energy)
	if err != nil {
		return err
	}

	vendorParameter := &params.Writer{}
	vendorParameter.WriteAccountAddress(vendor)

	totalEnergy := fidelio.Energy(0)
	start := time.Now()
	var last *fidelio.SuccessfulContractUpdate
	for i := 0; i < iterations; i++ {
		update, err := sim.ContractUpdate(invoker, icecreamInit.ContractAddress,
			"buy_icecream", vendorParameter.Bytes(), price, energy)
		if err != nil {
			return fmt.Errorf("purchase %d failed: %w", i, err)
		}
		totalEnergy += update.EnergyUsed
		last = update
	}
	duration := time.Since(start)

	fmt.Printf("last purchase ledger:\n")
	for _, transfer := range last.Transfers {
		fmt.Printf("  %v -> %v: %v\n", transfer.From, transfer.To, transfer.Amount)
	}
	for _, event := range last.ChainEvents {
		fmt.Printf("  %v\n", event)
	}
	vendorBalance, _ := sim.BalanceOf(vendor)
	invokerBalance, _ := sim.BalanceOf(invoker)
	fmt.Printf("vendor balance:  %v\n", vendorBalance)
	fmt.Printf("invoker balance: %v\n", invokerBalance)

	rate := float64(totalEnergy) / duration.Seconds()
	fmt.Printf(
		"executed %d purchases in %v, %d energy total, %sEnergy/s\n",
		iterations, duration.Round(time.Millisecond), totalEnergy,
		unitconv.FormatPrefix(rate, unitconv.SI, 0),
	)
	return nil
}
