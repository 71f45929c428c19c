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

	"go.uber.org/mock/gomock"
)

func TestLogicRegistry_ResolvesByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	logic := NewMockContractLogic(ctrl)

	registry := NewLogicRegistry()
	registry.Register("counter", logic)

	resolved, found := registry.Resolve(ModuleReference{1}, "counter")
	if !found || resolved != logic {
		t.Errorf("failed to resolve registered logic")
	}
	if _, found := registry.Resolve(ModuleReference{1}, "unknown"); found {
		t.Errorf("resolved logic for an unknown name")
	}
}

func TestLogicRegistry_ModuleBindingTakesPrecedence(t *testing.T) {
	ctrl := gomock.NewController(t)
	byName := NewMockContractLogic(ctrl)
	byModule := NewMockContractLogic(ctrl)

	registry := NewLogicRegistry()
	registry.Register("counter", byName)
	registry.BindModule(ModuleReference{1}, "counter", byModule)

	if resolved, _ := registry.Resolve(ModuleReference{1}, "counter"); resolved != byModule {
		t.Errorf("module binding not preferred")
	}
	if resolved, _ := registry.Resolve(ModuleReference{2}, "counter"); resolved != byName {
		t.Errorf("name registration not used as fallback")
	}
}

func TestLogicRegistry_ReBindingReplacesModuleBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockContractLogic(ctrl)
	second := NewMockContractLogic(ctrl)

	registry := NewLogicRegistry()
	registry.BindModule(ModuleReference{1}, "counter", first)
	registry.BindModule(ModuleReference{1}, "counter", second)

	if resolved, _ := registry.Resolve(ModuleReference{1}, "counter"); resolved != second {
		t.Errorf("re-binding did not replace the previous binding")
	}
}

func TestLogicRegistry_DuplicateNameRegistrationPanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	logic := NewMockContractLogic(ctrl)

	registry := NewLogicRegistry()
	registry.Register("counter", logic)

	defer func() {
		if recover() == nil {
			t.Errorf("duplicate registration should panic")
		}
	}()
	registry.Register("counter", logic)
}

func TestLogicRegistry_NilLogicPanics(t *testing.T) {
	registry := NewLogicRegistry()
	defer func() {
		if recover() == nil {
			t.Errorf("nil logic registration should panic")
		}
	}()
	registry.Register("counter", nil)
}

func TestLogicRegistry_RegisteredReturnsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	logic := NewMockContractLogic(ctrl)

	registry := NewLogicRegistry()
	registry.Register("counter", logic)

	listing := registry.Registered()
	delete(listing, "counter")
	if _, found := registry.Resolve(ModuleReference{}, "counter"); !found {
		t.Errorf("modifying the listing must not affect the registry")
	}
}
