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
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// This file provides a registry for Processor implementations.
//
// The registry is intended to be used by all client code that would like to
// run contract calls. For an implementation to be available it needs to be
// registered. Typically, this registration is part of the init code of the
// package providing an implementation. Thus, by including the implementation
// package, processor implementations become available in this central
// registry.

// NewProcessor performs a lookup for the given name (case-insensitive) in
// the registry and creates a new Processor resolving contract logic through
// the given resolver. An error is returned if no factory was registered
// under the given name.
func NewProcessor(name string, resolver LogicResolver) (Processor, error) {
	factory := GetProcessorFactory(name)
	if factory == nil {
		return nil, fmt.Errorf("processor not found: %s", name)
	}
	return factory(resolver), nil
}

// GetProcessorFactory performs a lookup for the given name
// (case-insensitive) in the registry. The result is nil if no factory was
// registered under the given name.
func GetProcessorFactory(name string) ProcessorFactory {
	processorRegistryLock.Lock()
	defer processorRegistryLock.Unlock()
	return processorRegistry[strings.ToLower(name)]
}

// GetAllRegisteredProcessorFactories obtains all registered implementations.
func GetAllRegisteredProcessorFactories() map[string]ProcessorFactory {
	processorRegistryLock.Lock()
	defer processorRegistryLock.Unlock()
	return maps.Clone(processorRegistry)
}

// RegisterProcessorFactory registers a new Processor implementation to be
// exported for general use in the binary. The name is not case-sensitive,
// and a panic is triggered if a factory was bound to the same name before,
// or the factory is nil. This function is mainly intended to be used by
// package initialization code.
func RegisterProcessorFactory(name string, factory ProcessorFactory) {
	key := strings.ToLower(name)
	if factory == nil {
		panic(fmt.Sprintf("invalid initialization: cannot register nil-factory using `%s`", key))
	}
	processorRegistryLock.Lock()
	defer processorRegistryLock.Unlock()
	if _, found := processorRegistry[key]; found {
		panic(fmt.Sprintf("invalid initialization: multiple factories registered for `%s`", key))
	}
	processorRegistry[key] = factory
}

// ProcessorFactory is the type of a function that creates a new Processor
// resolving contract logic through the given resolver.
type ProcessorFactory func(resolver LogicResolver) Processor

// processorRegistry is a global registry for Processor factories of
// different implementations.
var processorRegistry = map[string]ProcessorFactory{}

// processorRegistryLock to protect access to the registry.
var processorRegistryLock sync.Mutex
