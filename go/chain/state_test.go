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
	"bytes"
	"testing"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
	"pgregory.net/rand"
)

func TestTransactionContext_ReadsFallThroughToRegistries(t *testing.T) {
	sim := Empty()
	account := fidelio.AccountAddress{1}
	if err := sim.CreateAccount(account, 100); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	context := newTransactionContext(sim)
	if !context.AccountExists(account) {
		t.Errorf("committed account not visible")
	}
	if got := context.GetAccountBalance(account); got != 100 {
		t.Errorf("unexpected balance, wanted 100, got %v", got)
	}
}

func TestTransactionContext_MutationsAreInvisibleUntilCommit(t *testing.T) {
	sim := Empty()
	account := fidelio.AccountAddress{1}
	if err := sim.CreateAccount(account, 100); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	context := newTransactionContext(sim)
	context.SetAccountBalance(account, 42)
	if got := context.GetAccountBalance(account); got != 42 {
		t.Errorf("own mutation not visible, got %v", got)
	}
	if got := sim.accounts.balance(account); got != 100 {
		t.Errorf("uncommitted mutation visible in registry, got %v", got)
	}

	context.commit()
	if got := sim.accounts.balance(account); got != 42 {
		t.Errorf("committed mutation not applied, got %v", got)
	}
}

func TestTransactionContext_RestoreSnapshotUnwindsMutations(t *testing.T) {
	sim := Empty()
	account := fidelio.AccountAddress{1}
	if err := sim.CreateAccount(account, 100); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	context := newTransactionContext(sim)
	context.SetAccountBalance(account, 90)
	snapshot := context.CreateSnapshot()
	context.SetAccountBalance(account, 10)
	context.RecordTransfer(fidelio.Transfer{To: account, Amount: 80})
	context.RestoreSnapshot(snapshot)

	if got := context.GetAccountBalance(account); got != 90 {
		t.Errorf("snapshot restore did not unwind balance, got %v", got)
	}
	if len(context.Transfers()) != 0 {
		t.Errorf("snapshot restore did not truncate transfers")
	}
}

func TestTransactionContext_RestoreSnapshotKeepsEvents(t *testing.T) {
	sim := Empty()
	context := newTransactionContext(sim)

	snapshot := context.CreateSnapshot()
	context.EmitEvent(fidelio.EmittedEvent{Data: fidelio.Event("kept")})
	context.RecordChainEvent(fidelio.Resumed{Success: false})
	context.RestoreSnapshot(snapshot)

	if len(context.Events()) != 1 {
		t.Errorf("events must survive snapshot restore")
	}
	if len(context.ChainEvents()) != 1 {
		t.Errorf("chain events must survive snapshot restore")
	}
}

func TestTransactionContext_NestedSnapshotsRestoreInOrder(t *testing.T) {
	sim := Empty()
	account := fidelio.AccountAddress{1}
	if err := sim.CreateAccount(account, 1); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	context := newTransactionContext(sim)
	outer := context.CreateSnapshot()
	context.SetAccountBalance(account, 2)
	inner := context.CreateSnapshot()
	context.SetAccountBalance(account, 3)
	context.RestoreSnapshot(inner)
	if got := context.GetAccountBalance(account); got != 2 {
		t.Errorf("inner restore failed, got %v", got)
	}
	context.RestoreSnapshot(outer)
	if got := context.GetAccountBalance(account); got != 1 {
		t.Errorf("outer restore failed, got %v", got)
	}
}

func TestTransactionContext_CreatedInstancesAreJournaled(t *testing.T) {
	sim := Empty()
	context := newTransactionContext(sim)

	snapshot := context.CreateSnapshot()
	address := context.CreateInstance(fidelio.Instance{Name: "doomed", Balance: 5})
	if !context.InstanceExists(address) {
		t.Fatalf("created instance not visible")
	}
	context.RestoreSnapshot(snapshot)
	if context.InstanceExists(address) {
		t.Errorf("rolled-back instance still visible")
	}

	// The rolled-back index is free again within this transaction.
	if again := context.CreateInstance(fidelio.Instance{Name: "kept"}); again != address {
		t.Errorf("freed address not reused, wanted %v, got %v", address, again)
	}
}

func TestTransactionContext_CommitRegistersCreatedInstances(t *testing.T) {
	sim := Empty()
	context := newTransactionContext(sim)

	address := context.CreateInstance(fidelio.Instance{
		Module:  fidelio.ModuleReference{1},
		Name:    "counter",
		Owner:   fidelio.AccountAddress{2},
		State:   []byte{1, 2, 3},
		Balance: 7,
	})
	context.SetInstanceState(address, []byte{4, 5})
	context.commit()

	if !sim.contracts.exists(address) {
		t.Fatalf("committed instance not registered")
	}
	record := sim.contracts.record(address)
	if record.name != "counter" || record.balance != 7 {
		t.Errorf("unexpected instance record: %+v", record)
	}
	if !bytes.Equal(record.state, []byte{4, 5}) {
		t.Errorf("state overlay not applied, got %v", record.state)
	}
}

func TestTransactionContext_DiscardingLeavesRegistriesUntouched(t *testing.T) {
	sim := Empty()
	account := fidelio.AccountAddress{1}
	if err := sim.CreateAccount(account, 100); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	context := newTransactionContext(sim)
	context.SetAccountBalance(account, 0)
	context.CreateInstance(fidelio.Instance{Name: "ghost"})
	// context is dropped without commit

	if got := sim.accounts.balance(account); got != 100 {
		t.Errorf("discarded context modified the registry, got %v", got)
	}
	if sim.contracts.nextIndex != 0 {
		t.Errorf("discarded context consumed addresses")
	}
}

func TestContractRegistry_AddressesAreUniqueAndIncreasing(t *testing.T) {
	rnd := rand.New(0)
	sim := Empty()
	seen := map[fidelio.ContractAddress]bool{}
	last := int64(-1)

	for i := 0; i < 1000; i++ {
		var address fidelio.ContractAddress
		if rnd.Intn(2) == 0 {
			address = sim.CreateContractAddress()
		} else {
			context := newTransactionContext(sim)
			address = context.CreateInstance(fidelio.Instance{Name: "probe"})
			context.commit()
		}
		if seen[address] {
			t.Fatalf("address %v handed out twice", address)
		}
		seen[address] = true
		if int64(address.Index) <= last {
			t.Fatalf("address indices not strictly increasing: %v after %d", address, last)
		}
		last = int64(address.Index)
		if address.Subindex != 0 {
			t.Fatalf("subindex must be zero, got %v", address)
		}
	}
}

func TestContractRegistry_ReservedAddressIsSkipped(t *testing.T) {
	sim := Empty()
	reserved := sim.CreateContractAddress()

	context := newTransactionContext(sim)
	created := context.CreateInstance(fidelio.Instance{Name: "next"})
	context.commit()

	if created == reserved {
		t.Errorf("instance created at a reserved address")
	}
	if created.Index != reserved.Index+1 {
		t.Errorf("reserved address not skipped exactly once, got %v", created)
	}
}
