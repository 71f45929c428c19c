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
	"errors"
	"testing"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

func validModule(payload string) []byte {
	return append([]byte("\x00asm\x01\x00\x00\x00"), payload...)
}

func TestModuleStore_ReferencesAreContentDerived(t *testing.T) {
	a := makeModuleReference(validModule("a"))
	b := makeModuleReference(validModule("b"))
	if a == b {
		t.Errorf("different code must have different references")
	}
	if a != makeModuleReference(validModule("a")) {
		t.Errorf("identical code must have identical references")
	}
}

func TestModuleStore_AddStoresValidatedCode(t *testing.T) {
	store := newModuleStore()
	code := validModule("store me")

	ref, added, err := store.add(code)
	if err != nil {
		t.Fatalf("failed to add module: %v", err)
	}
	if !added {
		t.Errorf("first add should report a new module")
	}
	if !store.exists(ref) {
		t.Errorf("added module not found")
	}
	stored, found := store.code(ref)
	if !found || !bytes.Equal(stored, code) {
		t.Errorf("stored code differs from input")
	}
}

func TestModuleStore_ReAddingIsIdempotent(t *testing.T) {
	store := newModuleStore()
	code := validModule("twice")

	first, _, err := store.add(code)
	if err != nil {
		t.Fatalf("failed to add module: %v", err)
	}
	second, added, err := store.add(code)
	if err != nil {
		t.Fatalf("failed to re-add module: %v", err)
	}
	if added {
		t.Errorf("re-adding identical code should not report a new module")
	}
	if first != second {
		t.Errorf("re-adding identical code changed the reference")
	}
}

func TestModuleStore_InvalidCodeIsRejected(t *testing.T) {
	store := newModuleStore()
	tests := [][]byte{
		nil,
		[]byte(""),
		[]byte("\x00as"),
		[]byte("wasm\x01\x00\x00\x00"),
	}
	for _, code := range tests {
		_, _, err := store.add(code)
		var deployError *fidelio.DeployError
		if !errors.As(err, &deployError) || deployError.Kind != fidelio.DeployInvalidModule {
			t.Errorf("expected invalid-module error for %q, got %v", code, err)
		}
	}
}

func TestModuleStore_ValidationVerdictsAreCached(t *testing.T) {
	store := newModuleStore()
	code := validModule("cached")
	ref := makeModuleReference(code)

	if !store.validate(ref, code) {
		t.Fatalf("valid module rejected")
	}
	if _, found := store.verdicts.Get(ref); !found {
		t.Errorf("verdict not cached")
	}
	// The cached verdict is used even if the passed code would not validate.
	if !store.validate(ref, nil) {
		t.Errorf("cached verdict not used")
	}
}

func TestDeployCost_ScalesWithCodeSize(t *testing.T) {
	small := deployCost(validModule(""))
	large := deployCost(validModule("0123456789"))
	if want := small + 10*moduleDeployByteCost; want != large {
		t.Errorf("unexpected cost scaling, wanted %v, got %v", want, large)
	}
}
