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

import (
	"testing"
	"time"

	"pgregory.net/rand"
)

func TestAmount_String(t *testing.T) {
	tests := map[Amount]string{
		0:                 "0.000000 CCD",
		1:                 "0.000001 CCD",
		MicroCCDPerCCD:    "1.000000 CCD",
		6_500_000:         "6.500000 CCD",
		AmountFromCCD(42): "42.000000 CCD",
	}
	for amount, want := range tests {
		if got := amount.String(); got != want {
			t.Errorf("invalid print of %d, wanted %s, got %s", uint64(amount), want, got)
		}
	}
}

func TestAmountFromCCD_ScalesByMicroCCD(t *testing.T) {
	if got := AmountFromCCD(6); got != Amount(6_000_000) {
		t.Errorf("unexpected amount, wanted 6000000, got %d", uint64(got))
	}
}

func TestAddress_UnionIsTagged(t *testing.T) {
	account := AccountAddress{1, 2, 3}
	contract := ContractAddress{Index: 4}

	fromAccount := AddressFromAccount(account)
	if !fromAccount.IsAccount() || fromAccount.IsContract() {
		t.Errorf("account address misclassified")
	}
	if got, ok := fromAccount.Account(); !ok || got != account {
		t.Errorf("failed to unwrap account address, got %v, %t", got, ok)
	}
	if _, ok := fromAccount.Contract(); ok {
		t.Errorf("account address unwrapped as contract")
	}

	fromContract := AddressFromContract(contract)
	if !fromContract.IsContract() || fromContract.IsAccount() {
		t.Errorf("contract address misclassified")
	}
	if got, ok := fromContract.Contract(); !ok || got != contract {
		t.Errorf("failed to unwrap contract address, got %v, %t", got, ok)
	}
}

func TestAddress_DefaultIsAccount(t *testing.T) {
	var address Address
	if !address.IsAccount() {
		t.Errorf("zero address should be an account address")
	}
}

func TestAccountAddress_MarshalingRoundTrip(t *testing.T) {
	rnd := rand.New(0)
	for i := 0; i < 100; i++ {
		var address AccountAddress
		rnd.Read(address[:])

		text, err := address.MarshalText()
		if err != nil {
			t.Fatalf("failed to marshal address: %v", err)
		}
		var restored AccountAddress
		if err := restored.UnmarshalText(text); err != nil {
			t.Fatalf("failed to unmarshal address: %v", err)
		}
		if restored != address {
			t.Errorf("invalid round trip, wanted %v, got %v", address, restored)
		}
	}
}

func TestAccountAddress_UnmarshalRejectsInvalidText(t *testing.T) {
	tests := []string{
		"",
		"12",
		"0x",
		"0x12",
		"0xzz00000000000000000000000000000000000000000000000000000000000000",
	}
	for _, test := range tests {
		var address AccountAddress
		if err := address.UnmarshalText([]byte(test)); err == nil {
			t.Errorf("expected %q to be rejected", test)
		}
	}
}

func TestTimestamp_TimeRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	stamp := TimestampFromTime(now)
	if got := stamp.Time(); !got.Equal(now) {
		t.Errorf("invalid round trip, wanted %v, got %v", now, got)
	}
}

func TestParseReceiveName(t *testing.T) {
	contract, entrypoint, err := ParseReceiveName("icecream.buy_icecream")
	if err != nil {
		t.Fatalf("failed to parse receive name: %v", err)
	}
	if contract != "icecream" || entrypoint != "buy_icecream" {
		t.Errorf("invalid parse result: %s, %s", contract, entrypoint)
	}

	if got := ReceiveName(contract, entrypoint); got != "icecream.buy_icecream" {
		t.Errorf("invalid receive name: %s", got)
	}

	invalid := []string{"", "icecream", ".get", "weather.", "."}
	for _, name := range invalid {
		if _, _, err := ParseReceiveName(name); err == nil {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
