// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package chain

import (
	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

// transactionContext is the journaled fidelio.TransactionContext a single
// top-level call runs against. All mutations live in overlay maps on top of
// the chain's committed registries and are tracked in an undo journal;
// commit applies them to the registries in one step, and simply dropping the
// context discards them. Snapshots mark journal positions for the rollback
// of failed nested calls.
//
// Restoring a snapshot also truncates the transfer list back to the mark,
// but never the event lists: emitted events and chain events are reported
// for diagnostics even when the effects around them are rolled back.
type transactionContext struct {
	chain *Chain

	accountBalances  map[fidelio.AccountAddress]fidelio.Amount
	instanceBalances map[fidelio.ContractAddress]fidelio.Amount
	instanceStates   map[fidelio.ContractAddress][]byte
	instanceModules  map[fidelio.ContractAddress]fidelio.ModuleReference
	created          map[fidelio.ContractAddress]fidelio.Instance
	createdOrder     []fidelio.ContractAddress
	nextIndex        uint64

	journal   []journalEntry
	snapshots []snapshotMark

	transfers   []fidelio.Transfer
	events      []fidelio.EmittedEvent
	chainEvents []fidelio.ChainEvent
}

type snapshotMark struct {
	journal   int
	transfers int
}

// journalEntry undoes a single world-state mutation.
type journalEntry interface {
	revert(*transactionContext)
}

func newTransactionContext(chain *Chain) *transactionContext {
	return &transactionContext{
		chain:            chain,
		accountBalances:  map[fidelio.AccountAddress]fidelio.Amount{},
		instanceBalances: map[fidelio.ContractAddress]fidelio.Amount{},
		instanceStates:   map[fidelio.ContractAddress][]byte{},
		instanceModules:  map[fidelio.ContractAddress]fidelio.ModuleReference{},
		created:          map[fidelio.ContractAddress]fidelio.Instance{},
		nextIndex:        chain.contracts.nextIndex,
	}
}

// ---------------------------------------------------------------------------
// account access

func (c *transactionContext) AccountExists(address fidelio.AccountAddress) bool {
	return c.chain.accounts.exists(address)
}

func (c *transactionContext) IsAccountMissing(address fidelio.AccountAddress) bool {
	return c.chain.accounts.isMissing(address)
}

func (c *transactionContext) GetAccountBalance(address fidelio.AccountAddress) fidelio.Amount {
	if balance, found := c.accountBalances[address]; found {
		return balance
	}
	return c.chain.accounts.balance(address)
}

func (c *transactionContext) SetAccountBalance(address fidelio.AccountAddress, balance fidelio.Amount) {
	prev, overlaid := c.accountBalances[address]
	c.journal = append(c.journal, accountBalanceEntry{address, prev, overlaid})
	c.accountBalances[address] = balance
}

// ---------------------------------------------------------------------------
// module access

func (c *transactionContext) ModuleExists(ref fidelio.ModuleReference) bool {
	return c.chain.modules.exists(ref)
}

// ---------------------------------------------------------------------------
// instance access

func (c *transactionContext) InstanceExists(address fidelio.ContractAddress) bool {
	if _, found := c.created[address]; found {
		return true
	}
	return c.chain.contracts.exists(address)
}

func (c *transactionContext) GetInstanceBalance(address fidelio.ContractAddress) fidelio.Amount {
	if balance, found := c.instanceBalances[address]; found {
		return balance
	}
	if instance, found := c.created[address]; found {
		return instance.Balance
	}
	if record := c.chain.contracts.record(address); record != nil {
		return record.balance
	}
	return 0
}

func (c *transactionContext) SetInstanceBalance(address fidelio.ContractAddress, balance fidelio.Amount) {
	prev, overlaid := c.instanceBalances[address]
	c.journal = append(c.journal, instanceBalanceEntry{address, prev, overlaid})
	c.instanceBalances[address] = balance
}

func (c *transactionContext) GetInstanceState(address fidelio.ContractAddress) []byte {
	if state, found := c.instanceStates[address]; found {
		return state
	}
	if instance, found := c.created[address]; found {
		return instance.State
	}
	if record := c.chain.contracts.record(address); record != nil {
		return record.state
	}
	return nil
}

func (c *transactionContext) SetInstanceState(address fidelio.ContractAddress, state []byte) {
	prev, overlaid := c.instanceStates[address]
	c.journal = append(c.journal, instanceStateEntry{address, prev, overlaid})
	c.instanceStates[address] = append([]byte(nil), state...)
}

func (c *transactionContext) GetInstanceModule(address fidelio.ContractAddress) fidelio.ModuleReference {
	if module, found := c.instanceModules[address]; found {
		return module
	}
	if instance, found := c.created[address]; found {
		return instance.Module
	}
	if record := c.chain.contracts.record(address); record != nil {
		return record.module
	}
	return fidelio.ModuleReference{}
}

func (c *transactionContext) SetInstanceModule(address fidelio.ContractAddress, module fidelio.ModuleReference) {
	prev, overlaid := c.instanceModules[address]
	c.journal = append(c.journal, instanceModuleEntry{address, prev, overlaid})
	c.instanceModules[address] = module
}

func (c *transactionContext) GetInstanceName(address fidelio.ContractAddress) fidelio.ContractName {
	if instance, found := c.created[address]; found {
		return instance.Name
	}
	if record := c.chain.contracts.record(address); record != nil {
		return record.name
	}
	return ""
}

func (c *transactionContext) GetInstanceOwner(address fidelio.ContractAddress) fidelio.AccountAddress {
	if instance, found := c.created[address]; found {
		return instance.Owner
	}
	if record := c.chain.contracts.record(address); record != nil {
		return record.owner
	}
	return fidelio.AccountAddress{}
}

func (c *transactionContext) CreateInstance(instance fidelio.Instance) fidelio.ContractAddress {
	address := fidelio.ContractAddress{Index: c.nextIndex}
	c.nextIndex++
	instance.State = append([]byte(nil), instance.State...)
	c.created[address] = instance
	c.createdOrder = append(c.createdOrder, address)
	c.journal = append(c.journal, instanceCreatedEntry{address})
	return address
}

// ---------------------------------------------------------------------------
// snapshots and ledger

func (c *transactionContext) CreateSnapshot() fidelio.Snapshot {
	c.snapshots = append(c.snapshots, snapshotMark{
		journal:   len(c.journal),
		transfers: len(c.transfers),
	})
	return fidelio.Snapshot(len(c.snapshots) - 1)
}

func (c *transactionContext) RestoreSnapshot(snapshot fidelio.Snapshot) {
	mark := c.snapshots[snapshot]
	for i := len(c.journal) - 1; i >= mark.journal; i-- {
		c.journal[i].revert(c)
	}
	c.journal = c.journal[:mark.journal]
	c.transfers = c.transfers[:mark.transfers]
	c.snapshots = c.snapshots[:snapshot]
}

func (c *transactionContext) RecordTransfer(transfer fidelio.Transfer) {
	c.transfers = append(c.transfers, transfer)
}

func (c *transactionContext) Transfers() []fidelio.Transfer {
	return c.transfers
}

func (c *transactionContext) EmitEvent(event fidelio.EmittedEvent) {
	c.events = append(c.events, event)
}

func (c *transactionContext) Events() []fidelio.EmittedEvent {
	return c.events
}

func (c *transactionContext) RecordChainEvent(event fidelio.ChainEvent) {
	c.chainEvents = append(c.chainEvents, event)
}

func (c *transactionContext) ChainEvents() []fidelio.ChainEvent {
	return c.chainEvents
}

func (c *transactionContext) SlotTime() (fidelio.Timestamp, bool) {
	return c.chain.SlotTime()
}

// commit applies the buffered mutations to the chain's registries. Instances
// are registered first so that overlaid balance, state, and module updates
// addressed to freshly created instances find their records.
func (c *transactionContext) commit() {
	for _, address := range c.createdOrder {
		c.chain.contracts.registerAt(address, c.created[address])
	}
	for address, balance := range c.accountBalances {
		c.chain.accounts.setBalance(address, balance)
	}
	for address, balance := range c.instanceBalances {
		c.chain.contracts.record(address).balance = balance
	}
	for address, state := range c.instanceStates {
		c.chain.contracts.record(address).state = state
	}
	for address, module := range c.instanceModules {
		c.chain.contracts.record(address).module = module
	}
}

// ---------------------------------------------------------------------------
// journal entries

type accountBalanceEntry struct {
	address  fidelio.AccountAddress
	prev     fidelio.Amount
	overlaid bool
}

func (e accountBalanceEntry) revert(c *transactionContext) {
	if e.overlaid {
		c.accountBalances[e.address] = e.prev
	} else {
		delete(c.accountBalances, e.address)
	}
}

type instanceBalanceEntry struct {
	address  fidelio.ContractAddress
	prev     fidelio.Amount
	overlaid bool
}

func (e instanceBalanceEntry) revert(c *transactionContext) {
	if e.overlaid {
		c.instanceBalances[e.address] = e.prev
	} else {
		delete(c.instanceBalances, e.address)
	}
}

type instanceStateEntry struct {
	address  fidelio.ContractAddress
	prev     []byte
	overlaid bool
}

func (e instanceStateEntry) revert(c *transactionContext) {
	if e.overlaid {
		c.instanceStates[e.address] = e.prev
	} else {
		delete(c.instanceStates, e.address)
	}
}

type instanceModuleEntry struct {
	address  fidelio.ContractAddress
	prev     fidelio.ModuleReference
	overlaid bool
}

func (e instanceModuleEntry) revert(c *transactionContext) {
	if e.overlaid {
		c.instanceModules[e.address] = e.prev
	} else {
		delete(c.instanceModules, e.address)
	}
}

// instanceCreatedEntry reverts an instance creation, including the address
// allocation: a rolled-back init frees its index again, so the next creation
// within the same transaction reuses it.
type instanceCreatedEntry struct {
	address fidelio.ContractAddress
}

func (e instanceCreatedEntry) revert(c *transactionContext) {
	delete(c.created, e.address)
	c.createdOrder = c.createdOrder[:len(c.createdOrder)-1]
	c.nextIndex = e.address.Index
}
