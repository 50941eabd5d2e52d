// Copyright 2025 Vortex DB, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const initialBufferSize = 2048

// nullValueLength is the framed length that marks a null value on the wire.
const nullValueLength = -1

// Decode failures caused by malformed or truncated wire input. Wrapped with
// context at the failure site; match with errors.Is.
var (
	ErrTruncated     = errors.New("insufficient data to decode value")
	ErrBadLength     = errors.New("invalid negative length")
	ErrBadScalarLen  = errors.New("unexpected payload length for scalar")
	ErrNotTimeUUID   = errors.New("uuid is not a time uuid")
	ErrBadInet       = errors.New("invalid inet address bytes")
	ErrBadUUID       = errors.New("invalid uuid bytes")
	ErrTrailingBytes = errors.New("trailing bytes after value")
)

var codecLogger = zap.NewNop()

// SetLogger installs the logger used for codec warnings. The default
// discards them.
func SetLogger(l *zap.Logger) {
	codecLogger = l
}

// Writer is the serialization sink: an append buffer that additionally
// supports patching a previously reserved length field, which is how a
// collection encoding gets its outer length after its elements have been
// written. It is exclusively owned by the calling goroutine for the
// duration of an encode.
type Writer struct {
	buff   []byte
	offset uint32
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{buff: make([]byte, initialBufferSize)}
}

// Data returns the bytes written so far. The slice aliases the Writer's
// buffer and is valid until the next write or Reset.
func (w *Writer) Data() []byte {
	return w.buff[0:w.offset]
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return int(w.offset)
}

// Reset rewinds the Writer for reuse.
func (w *Writer) Reset() {
	w.offset = 0
}

func (w *Writer) ensureCapacity(n uint32) {
	length := uint32(len(w.buff))
	if w.offset+n <= length {
		return
	}

	old := w.buff

	for w.offset+n > length {
		length = length * 2
	}
	w.buff = make([]byte, length)

	copy(w.buff, old)
}

func (w *Writer) writeUint8(v uint8) {
	w.ensureCapacity(1)
	w.buff[w.offset] = byte(v)
	w.offset++
}

func (w *Writer) writeUint16(v uint16) {
	w.ensureCapacity(2)
	binary.BigEndian.PutUint16(w.buff[w.offset:], v)
	w.offset += 2
}

func (w *Writer) writeUint32(v uint32) {
	w.ensureCapacity(4)
	binary.BigEndian.PutUint32(w.buff[w.offset:], v)
	w.offset += 4
}

func (w *Writer) writeUint64(v uint64) {
	w.ensureCapacity(8)
	binary.BigEndian.PutUint64(w.buff[w.offset:], v)
	w.offset += 8
}

func (w *Writer) writeInt32(v int32) {
	w.writeUint32(uint32(v))
}

func (w *Writer) writeRaw(buff []byte) {
	size := uint32(len(buff))
	w.ensureCapacity(size)
	copy(w.buff[w.offset:], buff)
	w.offset += size
}

// reserveLength reserves a 4-byte length field at the current position and
// returns its offset for a later patchLength. Writes continue past the
// reservation as normal.
func (w *Writer) reserveLength() uint32 {
	off := w.offset
	w.writeUint32(0)
	return off
}

// patchLength overwrites the length field reserved at off with the number of
// bytes written since the reservation. No other writer may append between
// the reservation and the patch.
func (w *Writer) patchLength(off uint32) {
	binary.BigEndian.PutUint32(w.buff[off:], w.offset-off-4)
}

// Reader is the deserialization source: a cursor over a byte slice owned by
// the caller. Every read is bounds-checked and fails with ErrTruncated
// rather than reading past the source.
type Reader struct {
	buff   []byte
	offset uint32
}

// NewReader returns a Reader positioned at the start of buff.
func NewReader(buff []byte) *Reader {
	return &Reader{buff: buff}
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int {
	return int(r.offset)
}

func (r *Reader) remaining() uint32 {
	return uint32(len(r.buff)) - r.offset
}

// readBytes returns the next n bytes. The slice aliases the source; callers
// that retain the payload copy it.
func (r *Reader) readBytes(n uint32) ([]byte, error) {
	if r.remaining() < n {
		return nil, errors.Wrapf(ErrTruncated, "need %d bytes, %d remain", n, r.remaining())
	}
	v := r.buff[r.offset : r.offset+n]
	r.offset += n
	return v, nil
}

func (r *Reader) readUint8() (uint8, error) {
	b, err := r.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) readUint16() (uint16, error) {
	b, err := r.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) readUint32() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) readUint64() (uint64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *Reader) readInt32() (int32, error) {
	v, err := r.readUint32()
	return int32(v), err
}
