// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package params implements the byte-level encoding of contract parameters,
// return values, and contract-level error payloads. All multi-byte integers
// are little-endian; strings and byte sequences carry a u32 length prefix.
package params

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

// ErrParsingFailed is reported when bytes do not decode as the requested
// type, including when decodable bytes are followed by trailing garbage.
var ErrParsingFailed = errors.New("parsing failed")

// Serializable is a value that can write itself into the wire encoding.
type Serializable interface {
	Serial(w *Writer)
}

// Deserializable is a value that can read itself from the wire encoding.
// Implementations report problems through the reader's sticky error.
type Deserializable interface {
	Deserial(r *Reader)
}

// Writer accumulates the wire encoding of a value. Write operations never
// fail.
type Writer struct {
	buf []byte
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) WriteU8(value uint8) {
	w.buf = append(w.buf, value)
}

func (w *Writer) WriteU16(value uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, value)
}

func (w *Writer) WriteU32(value uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, value)
}

func (w *Writer) WriteU64(value uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, value)
}

func (w *Writer) WriteI32(value int32) {
	w.WriteU32(uint32(value))
}

func (w *Writer) WriteBool(value bool) {
	if value {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}

// WriteString writes a u32 length prefix followed by the raw bytes.
func (w *Writer) WriteString(value string) {
	w.WriteU32(uint32(len(value)))
	w.buf = append(w.buf, value...)
}

// WriteBytes writes raw bytes without a length prefix.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

func (w *Writer) WriteAmount(value fidelio.Amount) {
	w.WriteU64(uint64(value))
}

func (w *Writer) WriteAccountAddress(value fidelio.AccountAddress) {
	w.buf = append(w.buf, value[:]...)
}

func (w *Writer) WriteContractAddress(value fidelio.ContractAddress) {
	w.WriteU64(value.Index)
	w.WriteU64(value.Subindex)
}

// Serialize encodes a value into its wire form.
func Serialize(value Serializable) []byte {
	w := &Writer{}
	value.Serial(w)
	return w.Bytes()
}

// Reader consumes the wire encoding of a value. The first failing read sets
// a sticky error; subsequent reads return zero values without advancing.
type Reader struct {
	data []byte
	pos  int
	err  error
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) Err() error {
	return r.err
}

// Fail sets the sticky error if none is set yet. Deserializable
// implementations use it to reject values that read fine but are invalid.
func (r *Reader) Fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s", ErrParsingFailed, fmt.Sprintf(format, args...))
	}
}

func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.Remaining() < n {
		r.err = fmt.Errorf("%w: need %d more bytes, have %d", ErrParsingFailed, n, r.Remaining())
		return nil
	}
	data := r.data[r.pos : r.pos+n]
	r.pos += n
	return data
}

func (r *Reader) U8() uint8 {
	data := r.take(1)
	if data == nil {
		return 0
	}
	return data[0]
}

func (r *Reader) U16() uint16 {
	data := r.take(2)
	if data == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(data)
}

func (r *Reader) U32() uint32 {
	data := r.take(4)
	if data == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(data)
}

func (r *Reader) U64() uint64 {
	data := r.take(8)
	if data == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(data)
}

func (r *Reader) I32() int32 {
	return int32(r.U32())
}

func (r *Reader) Bool() bool {
	switch r.U8() {
	case 0:
		return false
	case 1:
		return true
	default:
		if r.err == nil {
			r.err = fmt.Errorf("%w: invalid boolean", ErrParsingFailed)
		}
		return false
	}
}

func (r *Reader) String() string {
	length := r.U32()
	data := r.take(int(length))
	return string(data)
}

func (r *Reader) Amount() fidelio.Amount {
	return fidelio.Amount(r.U64())
}

func (r *Reader) AccountAddress() fidelio.AccountAddress {
	var address fidelio.AccountAddress
	copy(address[:], r.take(len(address)))
	return address
}

func (r *Reader) ContractAddress() fidelio.ContractAddress {
	return fidelio.ContractAddress{
		Index:    r.U64(),
		Subindex: r.U64(),
	}
}

// Deserial decodes a complete value of type T from the given bytes. It fails
// with ErrParsingFailed if the bytes are too short, malformed, or followed
// by trailing bytes.
func Deserial[T any, PT interface {
	Deserializable
	*T
}](data []byte) (T, error) {
	var value T
	r := NewReader(data)
	PT(&value).Deserial(r)
	if r.Err() != nil {
		return value, r.Err()
	}
	if r.Remaining() != 0 {
		return value, fmt.Errorf("%w: %d trailing bytes", ErrParsingFailed, r.Remaining())
	}
	return value, nil
}
