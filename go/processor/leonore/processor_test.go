// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package leonore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
	"go.uber.org/mock/gomock"
)

func TestProcessorRegistry_LeonoreIsRegistered(t *testing.T) {
	factories := fidelio.GetAllRegisteredProcessorFactories()
	if len(factories) == 0 {
		t.Errorf("no processor factories found")
	}
	if fidelio.GetProcessorFactory("leonore") == nil {
		t.Errorf("leonore processor factory not found")
	}
}

func TestProcessor_RunInitCreatesAnInstance(t *testing.T) {
	ctrl := gomock.NewController(t)
	context := fidelio.NewMockTransactionContext(ctrl)
	logic := fidelio.NewMockContractLogic(ctrl)

	registry := fidelio.NewLogicRegistry()
	registry.Register("counter", logic)

	sender := fidelio.AccountAddress{1}
	module := fidelio.ModuleReference{2}
	address := fidelio.ContractAddress{Index: 5}

	context.EXPECT().AccountExists(sender).Return(true)
	context.EXPECT().ModuleExists(module).Return(true)
	context.EXPECT().GetAccountBalance(sender).Return(fidelio.Amount(100))
	context.EXPECT().SetAccountBalance(sender, fidelio.Amount(90))
	context.EXPECT().CreateInstance(fidelio.Instance{
		Module:  module,
		Name:    "counter",
		Owner:   sender,
		Balance: 10,
	}).Return(address)
	logic.EXPECT().Init(gomock.Any(), gomock.Any(), fidelio.Amount(10)).Return(nil)

	processor := newProcessor(registry)
	receipt, err := processor.RunInit(fidelio.InitTransaction{
		Sender:      sender,
		Module:      module,
		Name:        "counter",
		Parameter:   []byte{1, 2},
		Amount:      10,
		EnergyLimit: 10_000,
	}, context)
	if err != nil {
		t.Fatalf("RunInit returned an error: %v", err)
	}
	if !receipt.Success {
		t.Fatalf("init failed: %v", receipt.FailureKind)
	}
	if receipt.ContractAddress == nil || *receipt.ContractAddress != address {
		t.Errorf("unexpected contract address: %v", receipt.ContractAddress)
	}
	if want := InitBaseCost + 2*ParameterByteCost; receipt.EnergyUsed != want {
		t.Errorf("unexpected energy usage, wanted %d, got %d", want, receipt.EnergyUsed)
	}
}

func TestProcessor_RunInitChecksThePreconditions(t *testing.T) {
	sender := fidelio.AccountAddress{1}
	module := fidelio.ModuleReference{2}

	tests := map[string]struct {
		prepare func(*fidelio.MockTransactionContext)
		kind    fidelio.FailureKind
	}{
		"missing sender": {
			prepare: func(context *fidelio.MockTransactionContext) {
				context.EXPECT().AccountExists(sender).Return(false)
			},
			kind: fidelio.FailureSenderDoesNotExist,
		},
		"missing module": {
			prepare: func(context *fidelio.MockTransactionContext) {
				context.EXPECT().AccountExists(sender).Return(true)
				context.EXPECT().ModuleExists(module).Return(false)
			},
			kind: fidelio.FailureModuleNotFound,
		},
		"missing logic": {
			prepare: func(context *fidelio.MockTransactionContext) {
				context.EXPECT().AccountExists(sender).Return(true)
				context.EXPECT().ModuleExists(module).Return(true)
			},
			kind: fidelio.FailureLogicNotFound,
		},
		"uncovered amount": {
			prepare: func(context *fidelio.MockTransactionContext) {
				context.EXPECT().AccountExists(sender).Return(true)
				context.EXPECT().ModuleExists(module).Return(true)
				context.EXPECT().GetAccountBalance(sender).Return(fidelio.Amount(5))
			},
			kind: fidelio.FailureAmountTooLarge,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			context := fidelio.NewMockTransactionContext(ctrl)
			test.prepare(context)

			registry := fidelio.NewLogicRegistry()
			if test.kind != fidelio.FailureLogicNotFound {
				registry.Register("counter", fidelio.NewMockContractLogic(ctrl))
			}

			processor := newProcessor(registry)
			receipt, err := processor.RunInit(fidelio.InitTransaction{
				Sender:      sender,
				Module:      module,
				Name:        "counter",
				Amount:      10,
				EnergyLimit: 10_000,
			}, context)
			if err != nil {
				t.Fatalf("RunInit returned an error: %v", err)
			}
			if receipt.Success {
				t.Fatalf("init should have failed")
			}
			if receipt.FailureKind != test.kind {
				t.Errorf("unexpected failure, wanted %v, got %v", test.kind, receipt.FailureKind)
			}
		})
	}
}

func TestProcessor_RunReceiveForwardsTheOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	context := fidelio.NewMockTransactionContext(ctrl)
	logic := fidelio.NewMockContractLogic(ctrl)

	registry := fidelio.NewLogicRegistry()
	registry.Register("counter", logic)

	sender := fidelio.AccountAddress{1}
	owner := fidelio.AccountAddress{2}
	module := fidelio.ModuleReference{3}
	address := fidelio.ContractAddress{Index: 4}

	context.EXPECT().AccountExists(sender).Return(true)
	context.EXPECT().InstanceExists(address).Return(true)
	context.EXPECT().GetInstanceModule(address).Return(module)
	context.EXPECT().GetInstanceName(address).Return(fidelio.ContractName("counter"))
	context.EXPECT().GetAccountBalance(sender).Return(fidelio.Amount(100))
	context.EXPECT().SetAccountBalance(sender, fidelio.Amount(80))
	context.EXPECT().GetInstanceBalance(address).Return(fidelio.Amount(5))
	context.EXPECT().SetInstanceBalance(address, fidelio.Amount(25))
	context.EXPECT().GetInstanceOwner(address).Return(owner)
	logic.EXPECT().Receive(fidelio.ReceiveContext{
		Invoker:    sender,
		Sender:     fidelio.AddressFromAccount(sender),
		Owner:      owner,
		Self:       address,
		Entrypoint: "bump",
		Parameter:  []byte{7},
	}, gomock.Any(), fidelio.Amount(20)).Return([]byte("done"), nil)

	processor := newProcessor(registry)
	receipt, err := processor.RunReceive(fidelio.ReceiveTransaction{
		Sender:      sender,
		Address:     address,
		Entrypoint:  "bump",
		Parameter:   []byte{7},
		Amount:      20,
		EnergyLimit: 10_000,
	}, context)
	if err != nil {
		t.Fatalf("RunReceive returned an error: %v", err)
	}
	if !receipt.Success {
		t.Fatalf("receive failed: %v", receipt.FailureKind)
	}
	if string(receipt.Output) != "done" {
		t.Errorf("unexpected output: %q", receipt.Output)
	}
}

func TestProcessor_RunReceiveReportsRejectsWithPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	context := fidelio.NewMockTransactionContext(ctrl)
	logic := fidelio.NewMockContractLogic(ctrl)

	registry := fidelio.NewLogicRegistry()
	registry.Register("counter", logic)

	sender := fidelio.AccountAddress{1}
	address := fidelio.ContractAddress{Index: 4}

	context.EXPECT().AccountExists(sender).Return(true)
	context.EXPECT().InstanceExists(address).Return(true)
	context.EXPECT().GetInstanceModule(address).Return(fidelio.ModuleReference{})
	context.EXPECT().GetInstanceName(address).Return(fidelio.ContractName("counter"))
	context.EXPECT().GetAccountBalance(sender).Return(fidelio.Amount(0))
	context.EXPECT().SetAccountBalance(sender, fidelio.Amount(0))
	context.EXPECT().GetInstanceBalance(address).Return(fidelio.Amount(0))
	context.EXPECT().SetInstanceBalance(address, fidelio.Amount(0))
	context.EXPECT().GetInstanceOwner(address).Return(fidelio.AccountAddress{})
	logic.EXPECT().Receive(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &fidelio.Reject{Payload: []byte{42}})

	processor := newProcessor(registry)
	receipt, err := processor.RunReceive(fidelio.ReceiveTransaction{
		Sender:      sender,
		Address:     address,
		Entrypoint:  "bump",
		EnergyLimit: 10_000,
	}, context)
	if err != nil {
		t.Fatalf("RunReceive returned an error: %v", err)
	}
	if receipt.Success {
		t.Fatalf("receive should have failed")
	}
	if receipt.FailureKind != fidelio.FailureReject {
		t.Errorf("unexpected failure kind: %v", receipt.FailureKind)
	}
	if len(receipt.Payload) != 1 || receipt.Payload[0] != 42 {
		t.Errorf("reject payload not forwarded, got %v", receipt.Payload)
	}
}

func TestProcessor_EnergyExhaustionConsumesTheFullBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	context := fidelio.NewMockTransactionContext(ctrl)

	sender := fidelio.AccountAddress{1}
	address := fidelio.ContractAddress{Index: 4}

	context.EXPECT().AccountExists(sender).Return(true)
	context.EXPECT().InstanceExists(address).Return(true)

	limit := ReceiveBaseCost - 1
	processor := newProcessor(fidelio.NewLogicRegistry())
	receipt, err := processor.RunReceive(fidelio.ReceiveTransaction{
		Sender:      sender,
		Address:     address,
		Entrypoint:  "bump",
		EnergyLimit: limit,
	}, context)
	if err != nil {
		t.Fatalf("RunReceive returned an error: %v", err)
	}
	if receipt.FailureKind != fidelio.FailureOutOfEnergy {
		t.Errorf("unexpected failure kind: %v", receipt.FailureKind)
	}
	if receipt.EnergyUsed != limit {
		t.Errorf("exhaustion must report the full budget, got %d of %d", receipt.EnergyUsed, limit)
	}
}

func TestClassify_MapsLogicErrors(t *testing.T) {
	tests := []struct {
		err     error
		kind    fidelio.FailureKind
		payload []byte
	}{
		{fidelio.ErrOutOfEnergy, fidelio.FailureOutOfEnergy, nil},
		{fmt.Errorf("wrapped: %w", fidelio.ErrOutOfEnergy), fidelio.FailureOutOfEnergy, nil},
		{&fidelio.Reject{Payload: []byte{1, 2}}, fidelio.FailureReject, []byte{1, 2}},
		{fidelio.ErrMissingEntrypoint, fidelio.FailureTrap, nil},
		{errors.New("anything else"), fidelio.FailureTrap, nil},
	}
	for _, test := range tests {
		kind, payload := classify(test.err)
		if kind != test.kind {
			t.Errorf("classify(%v): wanted %v, got %v", test.err, test.kind, kind)
		}
		if string(payload) != string(test.payload) {
			t.Errorf("classify(%v): wanted payload %v, got %v", test.err, test.payload, payload)
		}
	}
}

func TestEnergyMeter_ChargesUpToTheLimit(t *testing.T) {
	meter := &energyMeter{limit: 100}
	if err := meter.charge(60); err != nil {
		t.Fatalf("covered charge failed: %v", err)
	}
	if err := meter.charge(40); err != nil {
		t.Fatalf("exact charge failed: %v", err)
	}
	if err := meter.charge(1); !errors.Is(err, fidelio.ErrOutOfEnergy) {
		t.Errorf("charge beyond the limit should fail, got %v", err)
	}
	if meter.spent() != 100 {
		t.Errorf("unexpected spent energy: %d", meter.spent())
	}
}

func TestEnergyMeter_ExhaustionConsumesEverything(t *testing.T) {
	meter := &energyMeter{limit: 100}
	if err := meter.charge(10); err != nil {
		t.Fatalf("covered charge failed: %v", err)
	}
	if err := meter.charge(1000); !errors.Is(err, fidelio.ErrOutOfEnergy) {
		t.Fatalf("excessive charge should fail, got %v", err)
	}
	if meter.spent() != 100 {
		t.Errorf("exhaustion must consume the full budget, got %d", meter.spent())
	}
}
