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

// Energy billing of the leonore engine. Every host operation charges from
// the single meter shared by all call frames of a top-level call.
const (
	InitBaseCost       = fidelio.Energy(500)
	ReceiveBaseCost    = fidelio.Energy(300)
	ParameterByteCost  = fidelio.Energy(1)
	StateWriteBaseCost = fidelio.Energy(20)
	StateByteCost      = fidelio.Energy(1)
	TransferCost       = fidelio.Energy(100)
	InterruptCost      = fidelio.Energy(100)
	ResumeCost         = fidelio.Energy(50)
	UpgradeCost        = fidelio.Energy(300)
	LogEventCost       = fidelio.Energy(50)
	LogByteCost        = fidelio.Energy(1)
	SlotTimeCost       = fidelio.Energy(10)
)

func init() {
	fidelio.RegisterProcessorFactory("leonore", newProcessor)
}

func newProcessor(resolver fidelio.LogicResolver) fidelio.Processor {
	return &processor{
		resolver: resolver,
	}
}

type processor struct {
	resolver fidelio.LogicResolver
}

func (p *processor) RunInit(
	transaction fidelio.InitTransaction,
	context fidelio.TransactionContext,
) (fidelio.Receipt, error) {
	meter := &energyMeter{limit: transaction.EnergyLimit}

	if !context.AccountExists(transaction.Sender) {
		return failure(meter, fidelio.FailureSenderDoesNotExist, nil), nil
	}
	if !context.ModuleExists(transaction.Module) {
		return failure(meter, fidelio.FailureModuleNotFound, nil), nil
	}
	if err := meter.charge(InitBaseCost + ParameterByteCost*fidelio.Energy(len(transaction.Parameter))); err != nil {
		return failure(meter, fidelio.FailureOutOfEnergy, nil), nil
	}
	logic, found := p.resolver.Resolve(transaction.Module, transaction.Name)
	if !found {
		return failure(meter, fidelio.FailureLogicNotFound, nil), nil
	}

	senderBalance := context.GetAccountBalance(transaction.Sender)
	if senderBalance < transaction.Amount {
		return failure(meter, fidelio.FailureAmountTooLarge, nil), nil
	}
	context.SetAccountBalance(transaction.Sender, senderBalance-transaction.Amount)

	address := context.CreateInstance(fidelio.Instance{
		Module:  transaction.Module,
		Name:    transaction.Name,
		Owner:   transaction.Sender,
		Balance: transaction.Amount,
	})

	run := newRunContext(context, p.resolver, meter, transaction.Sender)
	run.pushFrame(address)
	err := logic.Init(fidelio.InitContext{
		Origin:    transaction.Sender,
		Parameter: transaction.Parameter,
	}, run, transaction.Amount)
	run.popFrame()
	if err != nil {
		kind, payload := classify(err)
		return failure(meter, kind, payload), nil
	}

	return fidelio.Receipt{
		Success:         true,
		EnergyUsed:      meter.spent(),
		ContractAddress: &address,
	}, nil
}

func (p *processor) RunReceive(
	transaction fidelio.ReceiveTransaction,
	context fidelio.TransactionContext,
) (fidelio.Receipt, error) {
	meter := &energyMeter{limit: transaction.EnergyLimit}

	if !context.AccountExists(transaction.Sender) {
		return failure(meter, fidelio.FailureSenderDoesNotExist, nil), nil
	}
	if !context.InstanceExists(transaction.Address) {
		return failure(meter, fidelio.FailureContractNotFound, nil), nil
	}
	if err := meter.charge(ReceiveBaseCost + ParameterByteCost*fidelio.Energy(len(transaction.Parameter))); err != nil {
		return failure(meter, fidelio.FailureOutOfEnergy, nil), nil
	}
	module := context.GetInstanceModule(transaction.Address)
	name := context.GetInstanceName(transaction.Address)
	logic, found := p.resolver.Resolve(module, name)
	if !found {
		return failure(meter, fidelio.FailureLogicNotFound, nil), nil
	}

	senderBalance := context.GetAccountBalance(transaction.Sender)
	if senderBalance < transaction.Amount {
		return failure(meter, fidelio.FailureAmountTooLarge, nil), nil
	}
	context.SetAccountBalance(transaction.Sender, senderBalance-transaction.Amount)
	context.SetInstanceBalance(transaction.Address,
		context.GetInstanceBalance(transaction.Address)+transaction.Amount)

	run := newRunContext(context, p.resolver, meter, transaction.Sender)
	run.pushFrame(transaction.Address)
	output, err := logic.Receive(fidelio.ReceiveContext{
		Invoker:    transaction.Sender,
		Sender:     fidelio.AddressFromAccount(transaction.Sender),
		Owner:      context.GetInstanceOwner(transaction.Address),
		Self:       transaction.Address,
		Entrypoint: transaction.Entrypoint,
		Parameter:  transaction.Parameter,
	}, run, transaction.Amount)
	run.popFrame()
	if err != nil {
		kind, payload := classify(err)
		return failure(meter, kind, payload), nil
	}

	return fidelio.Receipt{
		Success:    true,
		EnergyUsed: meter.spent(),
		Output:     output,
	}, nil
}

func failure(meter *energyMeter, kind fidelio.FailureKind, payload []byte) fidelio.Receipt {
	return fidelio.Receipt{
		Success:     false,
		EnergyUsed:  meter.spent(),
		FailureKind: kind,
		Payload:     payload,
	}
}

// classify maps an error returned by contract logic to a chain-level failure
// kind. A *Reject carries the contract's own error payload; everything else
// that is not an engine condition counts as a trap.
func classify(err error) (fidelio.FailureKind, []byte) {
	var reject *fidelio.Reject
	switch {
	case errors.Is(err, fidelio.ErrOutOfEnergy):
		return fidelio.FailureOutOfEnergy, nil
	case errors.As(err, &reject):
		return fidelio.FailureReject, reject.Payload
	default:
		return fidelio.FailureTrap, nil
	}
}

// energyMeter is the shared budget of a single top-level call. Exhaustion at
// any call depth consumes the full budget: the chain cannot know how much of
// the partially executed work would have been billed.
type energyMeter struct {
	limit fidelio.Energy
	used  fidelio.Energy
}

func (m *energyMeter) charge(amount fidelio.Energy) error {
	if amount > m.limit-m.used {
		m.used = m.limit
		return fidelio.ErrOutOfEnergy
	}
	m.used += amount
	return nil
}

func (m *energyMeter) spent() fidelio.Energy {
	return m.used
}
