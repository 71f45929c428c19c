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
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// AccountAddress represents the 256-bit (32 bytes) address of an account.
// Account addresses are opaque external identities; the chain never derives
// or interprets them.
type AccountAddress [32]byte

// ContractAddress identifies a contract instance on the chain. Indices are
// allocated in strictly increasing order and never reused. The subindex is
// reserved for future instance versioning and is always zero for now.
type ContractAddress struct {
	Index    uint64
	Subindex uint64
}

// Address is a tagged union of an account address and a contract address.
type Address struct {
	kind     addressKind
	account  AccountAddress
	contract ContractAddress
}

type addressKind byte

const (
	addressKindAccount addressKind = iota
	addressKindContract
)

// Amount represents a non-negative number of microCCD, the smallest unit of
// the chain currency. Arithmetic on amounts must never go below zero; the
// registries report over-drafts as typed transfer errors instead.
type Amount uint64

// MicroCCDPerCCD is the number of smallest currency units per CCD.
const MicroCCDPerCCD = 1_000_000

// Energy represents the metered execution resource of a call. Each call runs
// against a strictly decreasing budget of energy units.
type Energy uint64

// ModuleReference is the content-derived identifier of a deployed code
// module, computed as the Keccak-256 hash of the module's code.
type ModuleReference [32]byte

// Timestamp is a slot time expressed in milliseconds since the Unix epoch.
type Timestamp int64

// ContractName is the name a contract was registered and initialized under,
// for instance "weather" or "icecream".
type ContractName string

// EntrypointName names a receive entrypoint of a contract, for instance
// "buy_icecream".
type EntrypointName string

// Policies is an optional set of identity policies attached to an account.
// The chain stores and returns them, but never interprets their contents.
type Policies []Policy

// Policy is a single identity policy. Attribute values are opaque.
type Policy struct {
	Issuer     uint32
	CreatedAt  Timestamp
	ValidTo    Timestamp
	Attributes map[AttributeTag][]byte
}

// AttributeTag identifies an attribute within an identity policy.
type AttributeTag uint8

func (a AccountAddress) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

func (a AccountAddress) MarshalText() ([]byte, error) {
	return bytesToText(a[:])
}

func (a *AccountAddress) UnmarshalText(data []byte) error {
	return textToBytes(a[:], data)
}

func (a ContractAddress) String() string {
	return fmt.Sprintf("<%d,%d>", a.Index, a.Subindex)
}

func (m ModuleReference) String() string {
	return fmt.Sprintf("0x%x", m[:])
}

func (m ModuleReference) MarshalText() ([]byte, error) {
	return bytesToText(m[:])
}

func (m *ModuleReference) UnmarshalText(data []byte) error {
	return textToBytes(m[:], data)
}

// AddressFromAccount wraps an account address in the address union.
func AddressFromAccount(account AccountAddress) Address {
	return Address{kind: addressKindAccount, account: account}
}

// AddressFromContract wraps a contract address in the address union.
func AddressFromContract(contract ContractAddress) Address {
	return Address{kind: addressKindContract, contract: contract}
}

// IsAccount returns true if the address identifies an account.
func (a Address) IsAccount() bool {
	return a.kind == addressKindAccount
}

// IsContract returns true if the address identifies a contract instance.
func (a Address) IsContract() bool {
	return a.kind == addressKindContract
}

// Account returns the wrapped account address. The second result is false
// if the address identifies a contract instead.
func (a Address) Account() (AccountAddress, bool) {
	return a.account, a.kind == addressKindAccount
}

// Contract returns the wrapped contract address. The second result is false
// if the address identifies an account instead.
func (a Address) Contract() (ContractAddress, bool) {
	return a.contract, a.kind == addressKindContract
}

func (a Address) String() string {
	if a.kind == addressKindContract {
		return a.contract.String()
	}
	return a.account.String()
}

// AmountFromCCD converts a whole number of CCD into an Amount of microCCD.
func AmountFromCCD(ccd uint64) Amount {
	return Amount(ccd * MicroCCDPerCCD)
}

func (a Amount) String() string {
	return fmt.Sprintf("%d.%06d CCD", uint64(a)/MicroCCDPerCCD, uint64(a)%MicroCCDPerCCD)
}

// TimestampFromTime converts a time.Time into a slot time, truncating to
// millisecond precision.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixMilli())
}

// Time converts the slot time back into a time.Time.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t))
}

// ReceiveName combines a contract name and an entrypoint name into the
// qualified "<contract>.<entrypoint>" form.
func ReceiveName(contract ContractName, entrypoint EntrypointName) string {
	return string(contract) + "." + string(entrypoint)
}

// ParseReceiveName splits a qualified receive name into its contract and
// entrypoint parts.
func ParseReceiveName(name string) (ContractName, EntrypointName, error) {
	contract, entrypoint, found := strings.Cut(name, ".")
	if !found || contract == "" || entrypoint == "" {
		return "", "", fmt.Errorf("invalid receive name: %q", name)
	}
	return ContractName(contract), EntrypointName(entrypoint), nil
}

func bytesToText(data []byte) ([]byte, error) {
	return []byte(fmt.Sprintf("0x%x", data)), nil
}

func textToBytes(trg []byte, data []byte) error {
	s := string(data)
	if !strings.HasPrefix(s, "0x") {
		return fmt.Errorf("invalid format, does not start with 0x: %v", s)
	}
	data, err := hex.DecodeString(s[2:])
	if err != nil {
		return err
	}
	if want, got := len(trg), len(data); want != got {
		return fmt.Errorf("invalid format, wanted %d bytes, got %d", want, got)
	}
	copy(trg, data)
	return nil
}
