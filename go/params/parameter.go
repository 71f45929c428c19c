// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package params

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Parameter is the encoded argument of an init or receive call.
type Parameter struct {
	data []byte
}

// Empty is the zero-byte parameter of calls that take no argument.
func Empty() Parameter {
	return Parameter{}
}

// Raw wraps already encoded bytes.
func Raw(data []byte) Parameter {
	return Parameter{data: data}
}

// Typed encodes the given value into its wire form.
func Typed(value Serializable) Parameter {
	return Parameter{data: Serialize(value)}
}

// FromJSONFile encodes the JSON document in the named file under the schema
// in the named schema file.
func FromJSONFile(path string, schemaPath string) (Parameter, error) {
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		return Parameter{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Parameter{}, fmt.Errorf("failed to read parameter file: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return Parameter{}, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	w := &Writer{}
	if err := schema.encode(value, w); err != nil {
		return Parameter{}, err
	}
	return Parameter{data: w.Bytes()}, nil
}

// Bytes returns the encoded parameter.
func (p Parameter) Bytes() []byte {
	return p.data
}
