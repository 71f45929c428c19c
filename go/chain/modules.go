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
	"fmt"
	"os"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"
)

const (
	// moduleDeployBaseCost is the flat part of the deployment fee, in microCCD.
	moduleDeployBaseCost = fidelio.Amount(10_000)

	// moduleDeployByteCost is the per-byte part of the deployment fee.
	moduleDeployByteCost = fidelio.Amount(10)

	// moduleValidationCacheSize bounds the cache of validation verdicts. Test
	// suites deploy the same handful of modules over and over, so even a small
	// cache removes nearly all repeated validation work.
	moduleValidationCacheSize = 256
)

// moduleMagic is the required prefix of every deployable module.
var moduleMagic = []byte("\x00asm")

// ModuleSource provides the code of a module to deploy, either directly or
// from the file system.
type ModuleSource interface {
	resolve() ([]byte, error)
}

// FromBytes deploys the given code as-is.
func FromBytes(code []byte) ModuleSource {
	return bytesSource(code)
}

// FromFile deploys the content of the named file. A failing read is reported
// as a fidelio.DeployFileNotFound deployment error.
func FromFile(path string) ModuleSource {
	return fileSource(path)
}

type bytesSource []byte

func (s bytesSource) resolve() ([]byte, error) {
	return s, nil
}

type fileSource string

func (s fileSource) resolve() ([]byte, error) {
	code, err := os.ReadFile(string(s))
	if err != nil {
		return nil, &fidelio.DeployError{Kind: fidelio.DeployFileNotFound, Err: err}
	}
	return code, nil
}

// moduleStore holds the deployed code modules, addressed by the Keccak-256
// hash of their code. Modules are never deleted; instances reference them by
// hash for the rest of the chain's lifetime.
type moduleStore struct {
	modules  map[fidelio.ModuleReference][]byte
	verdicts *lru.Cache[fidelio.ModuleReference, bool]
}

func newModuleStore() *moduleStore {
	verdicts, err := lru.New[fidelio.ModuleReference, bool](moduleValidationCacheSize)
	if err != nil {
		panic(fmt.Sprintf("invalid validation cache size: %v", err))
	}
	return &moduleStore{
		modules:  map[fidelio.ModuleReference][]byte{},
		verdicts: verdicts,
	}
}

// makeModuleReference computes the content-derived identifier of a module.
func makeModuleReference(code []byte) fidelio.ModuleReference {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(code)
	var ref fidelio.ModuleReference
	hasher.Sum(ref[0:0])
	return ref
}

// add validates and stores the given code, returning its reference and
// whether the module was newly added. Identical code always maps to the same
// reference, so re-adding is a cheap no-op.
func (s *moduleStore) add(code []byte) (fidelio.ModuleReference, bool, error) {
	ref := makeModuleReference(code)
	if _, found := s.modules[ref]; found {
		return ref, false, nil
	}
	if !s.validate(ref, code) {
		return fidelio.ModuleReference{}, false, &fidelio.DeployError{Kind: fidelio.DeployInvalidModule}
	}
	s.modules[ref] = append([]byte(nil), code...)
	return ref, true, nil
}

// validate checks the module format, caching the verdict by code hash.
func (s *moduleStore) validate(ref fidelio.ModuleReference, code []byte) bool {
	if verdict, found := s.verdicts.Get(ref); found {
		return verdict
	}
	verdict := len(code) >= len(moduleMagic) && string(code[:len(moduleMagic)]) == string(moduleMagic)
	s.verdicts.Add(ref, verdict)
	return verdict
}

// deployCost is the fee debited from the deploying account for new modules.
func deployCost(code []byte) fidelio.Amount {
	return moduleDeployBaseCost + moduleDeployByteCost*fidelio.Amount(len(code))
}

func (s *moduleStore) exists(ref fidelio.ModuleReference) bool {
	_, found := s.modules[ref]
	return found
}

func (s *moduleStore) code(ref fidelio.ModuleReference) ([]byte, bool) {
	code, found := s.modules[ref]
	return code, found
}
