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
	"encoding/json"
	"errors"
	"fmt"
)

// ReturnValue is the encoded result of a receive call, or the encoded error
// payload of a rejected one. Both decode the same way: either into a typed
// value through Deserial, or into JSON under a schema file.
type ReturnValue []byte

// DeserialToJSON decodes the bytes under the schema in the named file and
// renders them as JSON. Schema problems are reported as ErrMissingSchemaFile
// or ErrInvalidSchemaFile; bytes that do not match the schema, including
// trailing bytes, as ErrParsingToJSONFailed.
func (v ReturnValue) DeserialToJSON(schemaFile string) (string, error) {
	schema, err := LoadSchema(schemaFile)
	if err != nil {
		return "", err
	}
	r := NewReader(v)
	value, err := schema.decode(r)
	if err != nil {
		if errors.Is(err, ErrParsingFailed) {
			return "", fmt.Errorf("%w: %v", ErrParsingToJSONFailed, err)
		}
		return "", err
	}
	if r.Remaining() != 0 {
		return "", fmt.Errorf("%w: %d trailing bytes", ErrParsingToJSONFailed, r.Remaining())
	}
	rendered, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParsingToJSONFailed, err)
	}
	return string(rendered), nil
}
