// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package chain provides a deterministic, single-process simulation of a
// contract chain for integration tests: accounts, content-addressed code
// modules, contract instances, and energy-metered contract calls with an
// exact ledger of transfers and events.
//
// A Chain is not safe for concurrent use. Each operation runs to completion
// before the next one starts; tests own their chain exclusively.
package chain

import (
	"fmt"
	"time"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
	"github.com/holiman/uint256"

	_ "github.com/Fantom-foundation/Fidelio/go/processor/leonore"
)

// DefaultProcessor names the execution engine a Chain runs calls with.
const DefaultProcessor = "leonore"

// Chain is the facade of the simulated chain. All operations are
// synchronous and deterministic: the same sequence of operations on a fresh
// chain always produces the same balances, addresses, and ledgers.
type Chain struct {
	accounts  *accountRegistry
	modules   *moduleStore
	contracts *contractRegistry
	processor fidelio.Processor

	slotTime    fidelio.Timestamp
	hasSlotTime bool
}

// Empty creates a chain with no accounts, no modules, and no slot time set.
// Contract logic is resolved through the global logic registry.
func Empty() *Chain {
	return EmptyWithResolver(fidelio.GlobalLogicRegistry())
}

// New creates an empty chain with the given slot time.
func New(slotTime fidelio.Timestamp) *Chain {
	chain := Empty()
	chain.SetSlotTime(slotTime)
	return chain
}

// EmptyWithResolver creates an empty chain resolving contract logic through
// the given resolver instead of the global registry. Tests that bind logic
// per module version use this with their own registry.
func EmptyWithResolver(resolver fidelio.LogicResolver) *Chain {
	processor, err := fidelio.NewProcessor(DefaultProcessor, resolver)
	if err != nil {
		panic(fmt.Sprintf("invalid setup: %v", err))
	}
	return &Chain{
		accounts:  newAccountRegistry(),
		modules:   newModuleStore(),
		contracts: newContractRegistry(),
		processor: processor,
	}
}

// ---------------------------------------------------------------------------
// slot time

// SetSlotTime sets the chain's slot time. The slot time only changes through
// this function and TickSlotTime; running calls does not advance it.
func (c *Chain) SetSlotTime(slotTime fidelio.Timestamp) {
	c.slotTime = slotTime
	c.hasSlotTime = true
}

// TickSlotTime advances the slot time by the given duration. It fails with
// ErrNoSlotTime if no slot time was ever set.
func (c *Chain) TickSlotTime(delta time.Duration) error {
	if !c.hasSlotTime {
		return fidelio.ErrNoSlotTime
	}
	c.slotTime += fidelio.Timestamp(delta.Milliseconds())
	return nil
}

// SlotTime returns the chain's slot time; the second result is false if none
// was set.
func (c *Chain) SlotTime() (fidelio.Timestamp, bool) {
	return c.slotTime, c.hasSlotTime
}

// ---------------------------------------------------------------------------
// accounts

// CreateAccount registers a new account with the given starting balance and
// optional identity policies. Account addresses are externally chosen;
// re-creating an existing address is an error.
func (c *Chain) CreateAccount(address fidelio.AccountAddress, balance fidelio.Amount, policies ...fidelio.Policy) error {
	return c.accounts.create(address, balance, fidelio.Policies(policies))
}

// MakeAccountMissing registers the address as a missing account: it exists
// in name only, its balance reads as zero, and every transfer to it fails
// with fidelio.MissingAccount.
func (c *Chain) MakeAccountMissing(address fidelio.AccountAddress) {
	c.accounts.makeMissing(address)
}

// AccountExists returns true if the address holds a live account. Missing
// accounts do not count as existing.
func (c *Chain) AccountExists(address fidelio.AccountAddress) bool {
	return c.accounts.exists(address)
}

// BalanceOf returns the balance of an account. The second result is false
// if no such account exists.
func (c *Chain) BalanceOf(address fidelio.AccountAddress) (fidelio.Amount, bool) {
	if !c.accounts.exists(address) {
		return 0, false
	}
	return c.accounts.balance(address), true
}

// AccountPolicies returns the identity policies attached to an account, or
// nil if it has none.
func (c *Chain) AccountPolicies(address fidelio.AccountAddress) fidelio.Policies {
	return c.accounts.accountPolicies(address)
}

// ---------------------------------------------------------------------------
// modules

// DeployModule validates the module provided by the source, stores it under
// its content-derived reference, and debits the deployment fee from the
// sender. Deploying code that is already on the chain is a free no-op
// returning the same reference. Failures are reported as *DeployError.
func (c *Chain) DeployModule(sender fidelio.AccountAddress, source ModuleSource) (fidelio.ModuleReference, error) {
	if !c.accounts.exists(sender) {
		return fidelio.ModuleReference{}, &fidelio.DeployError{Kind: fidelio.DeploySenderDoesNotExist}
	}
	code, err := source.resolve()
	if err != nil {
		return fidelio.ModuleReference{}, err
	}
	ref := makeModuleReference(code)
	if c.modules.exists(ref) {
		return ref, nil
	}
	if !c.modules.validate(ref, code) {
		return fidelio.ModuleReference{}, &fidelio.DeployError{Kind: fidelio.DeployInvalidModule}
	}
	cost := deployCost(code)
	if c.accounts.balance(sender) < cost {
		return fidelio.ModuleReference{}, &fidelio.DeployError{Kind: fidelio.DeployInsufficientFunds}
	}
	if _, _, err := c.modules.add(code); err != nil {
		return fidelio.ModuleReference{}, err
	}
	c.accounts.setBalance(sender, c.accounts.balance(sender)-cost)
	return ref, nil
}

// ModuleExists returns true if a module is deployed under the reference.
func (c *Chain) ModuleExists(ref fidelio.ModuleReference) bool {
	return c.modules.exists(ref)
}

// ---------------------------------------------------------------------------
// contracts

// CreateContractAddress reserves the next free contract address without
// creating an instance behind it. The index is consumed permanently;
// subsequent instance creations skip it.
func (c *Chain) CreateContractAddress() fidelio.ContractAddress {
	return c.contracts.allocate()
}

// ContractExists returns true if a contract instance lives at the address.
func (c *Chain) ContractExists(address fidelio.ContractAddress) bool {
	return c.contracts.exists(address)
}

// ContractBalanceOf returns the balance of a contract instance. The second
// result is false if no instance lives at the address.
func (c *Chain) ContractBalanceOf(address fidelio.ContractAddress) (fidelio.Amount, bool) {
	record := c.contracts.record(address)
	if record == nil {
		return 0, false
	}
	return record.balance, true
}

// ContractInit runs an init call of the named contract from the given
// module, creating a new instance on success. The attached amount is debited
// from the sender and becomes the starting balance of the instance. On
// failure all effects are rolled back and a *FailedContractInteraction is
// returned.
func (c *Chain) ContractInit(
	sender fidelio.AccountAddress,
	module fidelio.ModuleReference,
	name fidelio.ContractName,
	parameter []byte,
	amount fidelio.Amount,
	energyLimit fidelio.Energy,
) (*fidelio.SuccessfulContractInit, error) {
	context := newTransactionContext(c)
	receipt, err := c.processor.RunInit(fidelio.InitTransaction{
		Sender:      sender,
		Module:      module,
		Name:        name,
		Parameter:   parameter,
		Amount:      amount,
		EnergyLimit: energyLimit,
	}, context)
	if err != nil {
		return nil, err
	}
	if !receipt.Success {
		return nil, failureFrom(receipt, context)
	}
	context.commit()
	return &fidelio.SuccessfulContractInit{
		ContractAddress: *receipt.ContractAddress,
		Events:          context.Events(),
		EnergyUsed:      receipt.EnergyUsed,
	}, nil
}

// ContractUpdate runs an update call against the instance at the given
// address, committing all effects on success. The attached amount moves from
// the sender to the instance before the logic runs. On failure all effects
// are rolled back and a *FailedContractInteraction is returned.
func (c *Chain) ContractUpdate(
	sender fidelio.AccountAddress,
	address fidelio.ContractAddress,
	entrypoint fidelio.EntrypointName,
	parameter []byte,
	amount fidelio.Amount,
	energyLimit fidelio.Energy,
) (*fidelio.SuccessfulContractUpdate, error) {
	update, context, err := c.runReceive(sender, address, entrypoint, parameter, amount, energyLimit)
	if err != nil {
		return nil, err
	}
	context.commit()
	return update, nil
}

// ContractInvoke runs the same call as ContractUpdate but never commits:
// even a successful invoke leaves the chain untouched. Invoke exists to
// probe contract views and candidate updates without perturbing the state
// under test; the returned record reports what an update would have done.
func (c *Chain) ContractInvoke(
	sender fidelio.AccountAddress,
	address fidelio.ContractAddress,
	entrypoint fidelio.EntrypointName,
	parameter []byte,
	amount fidelio.Amount,
	energyLimit fidelio.Energy,
) (*fidelio.SuccessfulContractUpdate, error) {
	update, _, err := c.runReceive(sender, address, entrypoint, parameter, amount, energyLimit)
	return update, err
}

func (c *Chain) runReceive(
	sender fidelio.AccountAddress,
	address fidelio.ContractAddress,
	entrypoint fidelio.EntrypointName,
	parameter []byte,
	amount fidelio.Amount,
	energyLimit fidelio.Energy,
) (*fidelio.SuccessfulContractUpdate, *transactionContext, error) {
	context := newTransactionContext(c)
	receipt, err := c.processor.RunReceive(fidelio.ReceiveTransaction{
		Sender:      sender,
		Address:     address,
		Entrypoint:  entrypoint,
		Parameter:   parameter,
		Amount:      amount,
		EnergyLimit: energyLimit,
	}, context)
	if err != nil {
		return nil, nil, err
	}
	if !receipt.Success {
		return nil, nil, failureFrom(receipt, context)
	}
	return &fidelio.SuccessfulContractUpdate{
		ReturnValue: receipt.Output,
		ChainEvents: context.ChainEvents(),
		Events:      context.Events(),
		Transfers:   context.Transfers(),
		EnergyUsed:  receipt.EnergyUsed,
	}, context, nil
}

func failureFrom(receipt fidelio.Receipt, context *transactionContext) *fidelio.FailedContractInteraction {
	return &fidelio.FailedContractInteraction{
		EnergySpent: receipt.EnergyUsed,
		Kind:        receipt.FailureKind,
		Payload:     receipt.Payload,
		Events:      context.Events(),
		ChainEvents: context.ChainEvents(),
	}
}

// ---------------------------------------------------------------------------
// aggregates

// TotalBalance sums the balances of all accounts and all contract instances.
// The sum is computed in 256-bit arithmetic so that it cannot overflow no
// matter how many entries the chain holds; conservation tests compare totals
// before and after call sequences that only move currency around.
func (c *Chain) TotalBalance() *uint256.Int {
	total := uint256.NewInt(0)
	for _, balance := range c.accounts.balances {
		total.Add(total, uint256.NewInt(uint64(balance)))
	}
	for _, record := range c.contracts.instances {
		total.Add(total, uint256.NewInt(uint64(record.balance)))
	}
	return total
}
