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
	"os"
	"strconv"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

var (
	// ErrMissingSchemaFile is reported when the named schema file cannot be
	// read.
	ErrMissingSchemaFile = errors.New("missing schema file")

	// ErrInvalidSchemaFile is reported when the schema file does not parse
	// or uses an unknown type.
	ErrInvalidSchemaFile = errors.New("invalid schema file")

	// ErrParsingToJSONFailed is reported when bytes do not decode under the
	// given schema.
	ErrParsingToJSONFailed = errors.New("parsing to JSON failed")
)

// Schema describes the shape of a single encoded value as a JSON document.
// Supported types are the unsigned integers u8 through u64, i32, bool,
// string, amount, account_address, contract_address, and the composites
// struct (a fixed field sequence) and enum (a u8 tag selecting a variant
// with its own field sequence).
type Schema struct {
	Kind     string          `json:"type"`
	Fields   []SchemaField   `json:"fields,omitempty"`
	Variants []SchemaVariant `json:"variants,omitempty"`
}

type SchemaField struct {
	Name string `json:"name"`
	Type Schema `json:"schema"`
}

type SchemaVariant struct {
	Name   string        `json:"name"`
	Fields []SchemaField `json:"fields,omitempty"`
}

// LoadSchema reads and validates a schema file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingSchemaFile, err)
	}
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchemaFile, err)
	}
	if err := schema.validate(); err != nil {
		return nil, err
	}
	return &schema, nil
}

func (s *Schema) validate() error {
	switch s.Kind {
	case "u8", "u16", "u32", "u64", "i32", "bool", "string",
		"amount", "account_address", "contract_address":
		return nil
	case "struct":
		for i := range s.Fields {
			if err := s.Fields[i].Type.validate(); err != nil {
				return err
			}
		}
		return nil
	case "enum":
		if len(s.Variants) == 0 || len(s.Variants) > 256 {
			return fmt.Errorf("%w: enum must have 1 to 256 variants", ErrInvalidSchemaFile)
		}
		for i := range s.Variants {
			for j := range s.Variants[i].Fields {
				if err := s.Variants[i].Fields[j].Type.validate(); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidSchemaFile, s.Kind)
	}
}

// decode consumes one value of this schema from the reader, producing a
// value that marshals to the corresponding JSON. Amounts and u64 are decoded
// to decimal strings since their range exceeds what JSON numbers carry
// exactly.
func (s *Schema) decode(r *Reader) (any, error) {
	switch s.Kind {
	case "u8":
		return r.U8(), r.Err()
	case "u16":
		return r.U16(), r.Err()
	case "u32":
		return r.U32(), r.Err()
	case "u64":
		return strconv.FormatUint(r.U64(), 10), r.Err()
	case "i32":
		return r.I32(), r.Err()
	case "bool":
		return r.Bool(), r.Err()
	case "string":
		return r.String(), r.Err()
	case "amount":
		return strconv.FormatUint(uint64(r.Amount()), 10), r.Err()
	case "account_address":
		address := r.AccountAddress()
		if err := r.Err(); err != nil {
			return nil, err
		}
		return address.String(), nil
	case "contract_address":
		address := r.ContractAddress()
		if err := r.Err(); err != nil {
			return nil, err
		}
		return map[string]any{
			"index":    strconv.FormatUint(address.Index, 10),
			"subindex": strconv.FormatUint(address.Subindex, 10),
		}, nil
	case "struct":
		return decodeFields(s.Fields, r)
	case "enum":
		tag := int(r.U8())
		if err := r.Err(); err != nil {
			return nil, err
		}
		if tag >= len(s.Variants) {
			return nil, fmt.Errorf("%w: enum tag %d out of range", ErrParsingToJSONFailed, tag)
		}
		variant := s.Variants[tag]
		if len(variant.Fields) == 0 {
			return variant.Name, nil
		}
		fields, err := decodeFields(variant.Fields, r)
		if err != nil {
			return nil, err
		}
		return map[string]any{variant.Name: fields}, nil
	}
	return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidSchemaFile, s.Kind)
}

func decodeFields(fields []SchemaField, r *Reader) (map[string]any, error) {
	result := map[string]any{}
	for i := range fields {
		value, err := fields[i].Type.decode(r)
		if err != nil {
			return nil, err
		}
		result[fields[i].Name] = value
	}
	return result, nil
}

// encode writes the JSON value into the wire encoding of this schema.
func (s *Schema) encode(value any, w *Writer) error {
	switch s.Kind {
	case "u8":
		n, err := asUint(value, 1<<8-1)
		if err != nil {
			return err
		}
		w.WriteU8(uint8(n))
		return nil
	case "u16":
		n, err := asUint(value, 1<<16-1)
		if err != nil {
			return err
		}
		w.WriteU16(uint16(n))
		return nil
	case "u32":
		n, err := asUint(value, 1<<32-1)
		if err != nil {
			return err
		}
		w.WriteU32(uint32(n))
		return nil
	case "u64", "amount":
		n, err := asUint(value, 1<<64-1)
		if err != nil {
			return err
		}
		w.WriteU64(n)
		return nil
	case "i32":
		number, ok := value.(json.Number)
		if !ok {
			return fmt.Errorf("%w: expected number, got %T", ErrParsingFailed, value)
		}
		n, err := strconv.ParseInt(number.String(), 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParsingFailed, err)
		}
		w.WriteI32(int32(n))
		return nil
	case "bool":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: expected bool, got %T", ErrParsingFailed, value)
		}
		w.WriteBool(b)
		return nil
	case "string":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: expected string, got %T", ErrParsingFailed, value)
		}
		w.WriteString(str)
		return nil
	case "account_address":
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: expected address string, got %T", ErrParsingFailed, value)
		}
		var address fidelio.AccountAddress
		if err := address.UnmarshalText([]byte(str)); err != nil {
			return fmt.Errorf("%w: %v", ErrParsingFailed, err)
		}
		w.WriteAccountAddress(address)
		return nil
	case "contract_address":
		fields, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: expected contract address object, got %T", ErrParsingFailed, value)
		}
		index, err := asUint(fields["index"], 1<<64-1)
		if err != nil {
			return err
		}
		subindex, err := asUint(fields["subindex"], 1<<64-1)
		if err != nil {
			return err
		}
		w.WriteU64(index)
		w.WriteU64(subindex)
		return nil
	case "struct":
		fields, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: expected object, got %T", ErrParsingFailed, value)
		}
		return encodeFields(s.Fields, fields, w)
	case "enum":
		return s.encodeEnum(value, w)
	}
	return fmt.Errorf("%w: unknown type %q", ErrInvalidSchemaFile, s.Kind)
}

func (s *Schema) encodeEnum(value any, w *Writer) error {
	// A variant without fields is its bare name; one with fields is an
	// object with a single key naming the variant.
	name, fields := "", map[string]any{}
	switch v := value.(type) {
	case string:
		name = v
	case map[string]any:
		if len(v) != 1 {
			return fmt.Errorf("%w: enum object must have exactly one key", ErrParsingFailed)
		}
		for key, inner := range v {
			name = key
			typed, ok := inner.(map[string]any)
			if !ok {
				return fmt.Errorf("%w: enum payload must be an object, got %T", ErrParsingFailed, inner)
			}
			fields = typed
		}
	default:
		return fmt.Errorf("%w: expected enum, got %T", ErrParsingFailed, value)
	}
	for tag, variant := range s.Variants {
		if variant.Name != name {
			continue
		}
		w.WriteU8(uint8(tag))
		return encodeFields(variant.Fields, fields, w)
	}
	return fmt.Errorf("%w: unknown enum variant %q", ErrParsingFailed, name)
}

func encodeFields(schema []SchemaField, values map[string]any, w *Writer) error {
	for i := range schema {
		value, found := values[schema[i].Name]
		if !found {
			return fmt.Errorf("%w: missing field %q", ErrParsingFailed, schema[i].Name)
		}
		if err := schema[i].Type.encode(value, w); err != nil {
			return err
		}
	}
	return nil
}

func asUint(value any, max uint64) (uint64, error) {
	number, ok := value.(json.Number)
	if !ok {
		if str, isString := value.(string); isString {
			// Large integers may be given as decimal strings.
			number = json.Number(str)
		} else {
			return 0, fmt.Errorf("%w: expected number, got %T", ErrParsingFailed, value)
		}
	}
	n, err := strconv.ParseUint(number.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParsingFailed, err)
	}
	if n > max {
		return 0, fmt.Errorf("%w: %d out of range", ErrParsingFailed, n)
	}
	return n, nil
}
