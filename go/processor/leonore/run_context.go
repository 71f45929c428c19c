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
	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

// runContext is the fidelio.HostContext handed to contract logic. It keeps
// an explicit stack of call frames, one per active contract, so that nested
// calls run without recursing through shared mutable state; all frames
// charge the one meter of the enclosing top-level call.
type runContext struct {
	context  fidelio.TransactionContext
	resolver fidelio.LogicResolver
	meter    *energyMeter
	invoker  fidelio.AccountAddress
	frames   []*callFrame
}

// callFrame tracks one active contract. events collects what the contract
// emitted since its last interruption; the next Interrupted chain event
// reports and clears it.
type callFrame struct {
	self   fidelio.ContractAddress
	events []fidelio.Event
}

func newRunContext(
	context fidelio.TransactionContext,
	resolver fidelio.LogicResolver,
	meter *energyMeter,
	invoker fidelio.AccountAddress,
) *runContext {
	return &runContext{
		context:  context,
		resolver: resolver,
		meter:    meter,
		invoker:  invoker,
	}
}

func (r *runContext) pushFrame(self fidelio.ContractAddress) {
	r.frames = append(r.frames, &callFrame{self: self})
}

func (r *runContext) popFrame() {
	r.frames = r.frames[:len(r.frames)-1]
}

func (r *runContext) frame() *callFrame {
	return r.frames[len(r.frames)-1]
}

func (r *runContext) State() []byte {
	return r.context.GetInstanceState(r.frame().self)
}

func (r *runContext) SetState(state []byte) error {
	cost := StateWriteBaseCost + StateByteCost*fidelio.Energy(len(state))
	if err := r.meter.charge(cost); err != nil {
		return err
	}
	r.context.SetInstanceState(r.frame().self, state)
	return nil
}

func (r *runContext) SelfBalance() fidelio.Amount {
	return r.context.GetInstanceBalance(r.frame().self)
}

func (r *runContext) Transfer(to fidelio.AccountAddress, amount fidelio.Amount) error {
	if err := r.meter.charge(TransferCost); err != nil {
		return err
	}
	self := r.frame().self
	if !r.context.AccountExists(to) {
		return fidelio.MissingAccount
	}
	balance := r.context.GetInstanceBalance(self)
	if balance < amount {
		return fidelio.AmountTooLarge
	}
	r.context.SetInstanceBalance(self, balance-amount)
	r.context.SetAccountBalance(to, r.context.GetAccountBalance(to)+amount)
	r.context.RecordTransfer(fidelio.Transfer{From: self, To: to, Amount: amount})
	return nil
}

func (r *runContext) Upgrade(module fidelio.ModuleReference) error {
	if err := r.meter.charge(UpgradeCost); err != nil {
		return err
	}
	if !r.context.ModuleExists(module) {
		return fidelio.ErrModuleNotFound
	}
	self := r.frame().self
	from := r.context.GetInstanceModule(self)
	r.context.SetInstanceModule(self, module)
	r.context.RecordChainEvent(fidelio.Upgraded{Address: self, From: from, To: module})
	return nil
}

func (r *runContext) SlotTime() (fidelio.Timestamp, error) {
	if err := r.meter.charge(SlotTimeCost); err != nil {
		return 0, err
	}
	slotTime, found := r.context.SlotTime()
	if !found {
		return 0, fidelio.ErrNoSlotTime
	}
	return slotTime, nil
}

func (r *runContext) EmitEvent(data []byte) error {
	cost := LogEventCost + LogByteCost*fidelio.Energy(len(data))
	if err := r.meter.charge(cost); err != nil {
		return err
	}
	frame := r.frame()
	r.context.EmitEvent(fidelio.EmittedEvent{Address: frame.self, Data: data})
	frame.events = append(frame.events, data)
	return nil
}

func (r *runContext) ChargeEnergy(amount fidelio.Energy) error {
	return r.meter.charge(amount)
}
