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
	"errors"
	"testing"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

func TestAccountRegistry_DuplicateCreationFails(t *testing.T) {
	registry := newAccountRegistry()
	address := fidelio.AccountAddress{1}

	if err := registry.create(address, 100, nil); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	if err := registry.create(address, 200, nil); err == nil {
		t.Errorf("re-creating an account should fail")
	}
	if got := registry.balance(address); got != 100 {
		t.Errorf("failed creation must not modify the account, got balance %v", got)
	}
}

func TestAccountRegistry_MissingAccountsDoNotExist(t *testing.T) {
	registry := newAccountRegistry()
	address := fidelio.AccountAddress{1}

	if err := registry.create(address, 100, nil); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	registry.makeMissing(address)

	if registry.exists(address) {
		t.Errorf("missing account should not count as existing")
	}
	if !registry.isMissing(address) {
		t.Errorf("account not marked missing")
	}
	if got := registry.balance(address); got != 0 {
		t.Errorf("missing account balance should read as zero, got %v", got)
	}
}

func TestAccountRegistry_DebitFailsOnOverdraft(t *testing.T) {
	registry := newAccountRegistry()
	address := fidelio.AccountAddress{1}
	if err := registry.create(address, 100, nil); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	if err := registry.debit(address, 101); !errors.Is(err, fidelio.AmountTooLarge) {
		t.Errorf("overdraft should fail with AmountTooLarge, got %v", err)
	}
	if got := registry.balance(address); got != 100 {
		t.Errorf("failed debit must not change the balance, got %v", got)
	}

	if err := registry.debit(address, 100); err != nil {
		t.Errorf("covered debit failed: %v", err)
	}
	if got := registry.balance(address); got != 0 {
		t.Errorf("unexpected balance after debit: %v", got)
	}
}

func TestAccountRegistry_PoliciesAreStored(t *testing.T) {
	registry := newAccountRegistry()
	address := fidelio.AccountAddress{1}
	policies := fidelio.Policies{{Issuer: 7}}

	if err := registry.create(address, 0, policies); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	got := registry.accountPolicies(address)
	if len(got) != 1 || got[0].Issuer != 7 {
		t.Errorf("unexpected policies: %v", got)
	}
}
