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

import "fmt"

// Event is an opaque log entry emitted by a contract. The chain orders
// events but never interprets their contents.
type Event []byte

// EmittedEvent is an event together with the address of the contract that
// emitted it.
type EmittedEvent struct {
	Address ContractAddress
	Data    Event
}

// Transfer records a single currency movement from a contract instance to an
// account, as requested by contract logic during a call.
type Transfer struct {
	From   ContractAddress
	To     AccountAddress
	Amount Amount
}

// ChainEvent records a control transfer between contracts during a single
// top-level call. Events are ordered by call order.
type ChainEvent interface {
	fmt.Stringer
	isChainEvent()
}

// Interrupted marks the point where a contract suspended its own execution
// to issue a nested call. Events lists the events the contract emitted since
// its last interruption.
type Interrupted struct {
	Address ContractAddress
	Events  []Event
}

// Resumed marks the completion of a nested call, handing control back to the
// interrupted contract. Success reports whether the nested call succeeded.
type Resumed struct {
	Address ContractAddress
	Success bool
}

// Upgraded records a module upgrade of a contract instance.
type Upgraded struct {
	Address ContractAddress
	From    ModuleReference
	To      ModuleReference
}

func (Interrupted) isChainEvent() {}
func (Resumed) isChainEvent()     {}
func (Upgraded) isChainEvent()    {}

func (e Interrupted) String() string {
	return fmt.Sprintf("interrupted %v, %d events", e.Address, len(e.Events))
}

func (e Resumed) String() string {
	return fmt.Sprintf("resumed %v, success=%t", e.Address, e.Success)
}

func (e Upgraded) String() string {
	return fmt.Sprintf("upgraded %v from %v to %v", e.Address, e.From, e.To)
}
