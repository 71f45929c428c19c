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
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
)

// LogicResolver resolves the logic of a contract given the module it was
// deployed from and its contract name. The execution engine resolves logic
// anew on every dispatch, so a module upgrade of an instance takes effect on
// the next call.
type LogicResolver interface {
	Resolve(module ModuleReference, name ContractName) (ContractLogic, bool)
}

// LogicRegistry is a LogicResolver backed by explicit registrations. Logic
// can be registered globally under a contract name, or bound to a specific
// module to give byte-identical contract names different behavior per module
// version. Module bindings take precedence over name registrations.
type LogicRegistry struct {
	byName   map[ContractName]ContractLogic
	byModule map[moduleBinding]ContractLogic
	lock     sync.Mutex
}

type moduleBinding struct {
	module ModuleReference
	name   ContractName
}

// NewLogicRegistry creates an empty registry.
func NewLogicRegistry() *LogicRegistry {
	return &LogicRegistry{
		byName:   map[ContractName]ContractLogic{},
		byModule: map[moduleBinding]ContractLogic{},
	}
}

// Register binds logic to a contract name for all modules. A panic is
// triggered if logic was bound to the same name before, or the logic is nil.
// This function is mainly intended to be used by package initialization code.
func (r *LogicRegistry) Register(name ContractName, logic ContractLogic) {
	if logic == nil {
		panic(fmt.Sprintf("invalid initialization: cannot register nil-logic using `%s`", name))
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, found := r.byName[name]; found {
		panic(fmt.Sprintf("invalid initialization: multiple logics registered for `%s`", name))
	}
	r.byName[name] = logic
}

// BindModule binds logic to a contract name within one specific module,
// overriding any name-level registration. Re-binding the same pair replaces
// the previous binding; tests use this to model upgraded module versions.
func (r *LogicRegistry) BindModule(module ModuleReference, name ContractName, logic ContractLogic) {
	if logic == nil {
		panic(fmt.Sprintf("invalid initialization: cannot bind nil-logic using `%s`", name))
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.byModule[moduleBinding{module, name}] = logic
}

func (r *LogicRegistry) Resolve(module ModuleReference, name ContractName) (ContractLogic, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if logic, found := r.byModule[moduleBinding{module, name}]; found {
		return logic, true
	}
	logic, found := r.byName[name]
	return logic, found
}

// Registered returns all name-level registrations.
func (r *LogicRegistry) Registered() map[ContractName]ContractLogic {
	r.lock.Lock()
	defer r.lock.Unlock()
	return maps.Clone(r.byName)
}

// RegisterLogic adds a name-level registration to the global default
// registry. Packages providing reusable contract logic register themselves
// here in their init code.
func RegisterLogic(name ContractName, logic ContractLogic) {
	globalLogicRegistry.Register(name, logic)
}

// GlobalLogicRegistry returns the registry fed by RegisterLogic. Chains use
// it unless an explicit registry is provided.
func GlobalLogicRegistry() *LogicRegistry {
	return globalLogicRegistry
}

var globalLogicRegistry = NewLogicRegistry()
