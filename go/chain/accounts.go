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
	"fmt"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

// accountRegistry is the committed account state of a chain: balances and
// identity policies, keyed by account address. An account can additionally be
// marked missing; a missing account exists in name only and every transfer to
// it fails with fidelio.MissingAccount.
type accountRegistry struct {
	balances map[fidelio.AccountAddress]fidelio.Amount
	policies map[fidelio.AccountAddress]fidelio.Policies
	missing  map[fidelio.AccountAddress]bool
}

func newAccountRegistry() *accountRegistry {
	return &accountRegistry{
		balances: map[fidelio.AccountAddress]fidelio.Amount{},
		policies: map[fidelio.AccountAddress]fidelio.Policies{},
		missing:  map[fidelio.AccountAddress]bool{},
	}
}

// create registers a new account. Addresses are externally chosen and must be
// unique; re-creating an existing account is an error, not an update.
func (r *accountRegistry) create(address fidelio.AccountAddress, balance fidelio.Amount, policies fidelio.Policies) error {
	if _, found := r.balances[address]; found {
		return fmt.Errorf("account %v already exists", address)
	}
	r.balances[address] = balance
	if policies != nil {
		r.policies[address] = policies
	}
	return nil
}

// makeMissing registers the address as a missing account. Its balance reads
// as zero and transfers to it fail. Marking an existing account missing
// removes it from the chain.
func (r *accountRegistry) makeMissing(address fidelio.AccountAddress) {
	delete(r.balances, address)
	delete(r.policies, address)
	r.missing[address] = true
}

func (r *accountRegistry) exists(address fidelio.AccountAddress) bool {
	_, found := r.balances[address]
	return found
}

func (r *accountRegistry) isMissing(address fidelio.AccountAddress) bool {
	return r.missing[address]
}

func (r *accountRegistry) balance(address fidelio.AccountAddress) fidelio.Amount {
	return r.balances[address]
}

func (r *accountRegistry) setBalance(address fidelio.AccountAddress, balance fidelio.Amount) {
	r.balances[address] = balance
}

// debit removes the given amount from the account, failing without any effect
// if the balance does not cover it. There are no partial debits.
func (r *accountRegistry) debit(address fidelio.AccountAddress, amount fidelio.Amount) error {
	balance, found := r.balances[address]
	if !found || balance < amount {
		return fidelio.AmountTooLarge
	}
	r.balances[address] = balance - amount
	return nil
}

func (r *accountRegistry) accountPolicies(address fidelio.AccountAddress) fidelio.Policies {
	return r.policies[address]
}
