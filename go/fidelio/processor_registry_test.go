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
	"strings"
	"testing"
)

func TestProcessorRegistry_RegisteredFactoryCanBeFound(t *testing.T) {
	factory := func(LogicResolver) Processor { return nil }
	RegisterProcessorFactory("test-lookup", factory)

	if GetProcessorFactory("test-lookup") == nil {
		t.Errorf("registered factory not found")
	}
	if GetProcessorFactory("Test-Lookup") == nil {
		t.Errorf("factory lookup is not case-insensitive")
	}
	if _, found := GetAllRegisteredProcessorFactories()["test-lookup"]; !found {
		t.Errorf("factory missing in full listing")
	}
}

func TestProcessorRegistry_UnknownNameIsReported(t *testing.T) {
	if GetProcessorFactory("test-never-registered") != nil {
		t.Errorf("lookup of unknown name should fail")
	}
	if _, err := NewProcessor("test-never-registered", NewLogicRegistry()); err == nil {
		t.Errorf("creating a processor of an unknown name should fail")
	}
}

func TestProcessorRegistry_NewProcessorUsesFactory(t *testing.T) {
	instance := &dummyProcessor{}
	RegisterProcessorFactory("test-factory", func(LogicResolver) Processor {
		return instance
	})

	processor, err := NewProcessor("Test-Factory", NewLogicRegistry())
	if err != nil {
		t.Fatalf("failed to create processor: %v", err)
	}
	if processor != instance {
		t.Errorf("factory result not returned")
	}
}

func TestProcessorRegistry_DoubleRegistrationPanics(t *testing.T) {
	factory := func(LogicResolver) Processor { return nil }
	RegisterProcessorFactory("test-duplicate", factory)

	defer func() {
		msg := recover()
		if msg == nil {
			t.Errorf("duplicate registration should panic")
		} else if !strings.Contains(msg.(string), "test-duplicate") {
			t.Errorf("panic message should name the duplicate: %v", msg)
		}
	}()
	RegisterProcessorFactory("Test-Duplicate", factory)
}

func TestProcessorRegistry_NilFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("nil factory registration should panic")
		}
	}()
	RegisterProcessorFactory("test-nil", nil)
}

type dummyProcessor struct{}

func (*dummyProcessor) RunInit(InitTransaction, TransactionContext) (Receipt, error) {
	return Receipt{}, nil
}

func (*dummyProcessor) RunReceive(ReceiveTransaction, TransactionContext) (Receipt, error) {
	return Receipt{}, nil
}
