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

// contractRegistry is the committed instance state of a chain. Contract
// addresses are allocated in strictly increasing index order and never
// reused, including addresses reserved without an instance behind them.
type contractRegistry struct {
	instances map[fidelio.ContractAddress]*instanceRecord
	nextIndex uint64
}

type instanceRecord struct {
	module  fidelio.ModuleReference
	name    fidelio.ContractName
	owner   fidelio.AccountAddress
	state   []byte
	balance fidelio.Amount
}

func newContractRegistry() *contractRegistry {
	return &contractRegistry{
		instances: map[fidelio.ContractAddress]*instanceRecord{},
	}
}

// allocate reserves the next free contract address without registering an
// instance. The index is consumed either way.
func (r *contractRegistry) allocate() fidelio.ContractAddress {
	address := fidelio.ContractAddress{Index: r.nextIndex}
	r.nextIndex++
	return address
}

// registerAt installs an instance under an address previously handed out by
// the allocator. Used when committing a successful init.
func (r *contractRegistry) registerAt(address fidelio.ContractAddress, instance fidelio.Instance) {
	r.instances[address] = &instanceRecord{
		module:  instance.Module,
		name:    instance.Name,
		owner:   instance.Owner,
		state:   append([]byte(nil), instance.State...),
		balance: instance.Balance,
	}
	if address.Index >= r.nextIndex {
		r.nextIndex = address.Index + 1
	}
}

func (r *contractRegistry) exists(address fidelio.ContractAddress) bool {
	_, found := r.instances[address]
	return found
}

func (r *contractRegistry) record(address fidelio.ContractAddress) *instanceRecord {
	return r.instances[address]
}
