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
	"math"
	"net"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vortexdb/vortex/store/d"
	"github.com/vortexdb/vortex/store/decimal"
	"github.com/vortexdb/vortex/store/util/datetime"
)

// Encode writes v, interpreted against type descriptor t, to w in the client
// wire format: a 4-byte big-endian signed length (-1 for null, no payload)
// followed by that many payload bytes. Collections recurse through their
// element descriptors, reserving the outer length field up front and
// patching it once the elements are written. A kind the wire does not
// support, or a v whose kind contradicts t, is a defect in the caller and
// panics.
func Encode(v Value, t *Type, w *Writer) error {
	if IsNull(v) {
		w.writeInt32(nullValueLength)
		return nil
	}

	switch t.Kind() {
	case Int8Kind:
		w.writeInt32(1)
		w.writeUint8(uint8(v.(Int8)))
	case Int16Kind:
		w.writeInt32(2)
		w.writeUint16(uint16(v.(Int16)))
	case Int32Kind:
		w.writeInt32(4)
		w.writeUint32(uint32(v.(Int32)))
	case Int64Kind:
		w.writeInt32(8)
		w.writeUint64(uint64(v.(Int64)))
	case FloatKind:
		w.writeInt32(4)
		w.writeUint32(math.Float32bits(float32(v.(Float))))
	case DoubleKind:
		w.writeInt32(8)
		w.writeUint64(math.Float64bits(float64(v.(Double))))
	case DecimalKind:
		dec, err := decimal.FromComparable(v.(Decimal))
		// The payload was produced by this layer; malformed means a caller
		// defect, not bad input.
		d.PanicIfError(err)
		ser, err := dec.ToSerializedBigDecimal()
		if err != nil {
			codecLogger.Warn("unable to encode decimal into a serialized BigDecimal representation",
				zap.String("decimal", dec.String()), zap.Error(err))
		}
		writeBytesWithLength(w, ser)
	case StringKind:
		writeBytesWithLength(w, []byte(v.(String)))
	case BoolKind:
		w.writeInt32(1)
		if v.(Bool) {
			w.writeUint8(1)
		} else {
			w.writeUint8(0)
		}
	case TimestampKind:
		millis, err := datetime.AdjustPrecision(int64(v.(Timestamp)), datetime.Micros, datetime.Millis)
		// Lowering precision divides, it cannot overflow.
		d.PanicIfError(err)
		w.writeInt32(8)
		w.writeUint64(uint64(millis))
	case BinaryKind:
		writeBytesWithLength(w, v.(Binary))
	case InetKind:
		writeBytesWithLength(w, inetBytes(net.IP(v.(Inet))))
	case UUIDKind:
		u := v.(UUID)
		writeBytesWithLength(w, u[:])
	case TimeUUIDKind:
		u := v.(TimeUUID)
		d.PanicIfFalse(uuid.UUID(u).Version() == 1)
		writeBytesWithLength(w, u[:])
	case MapKind:
		m := v.(*Map)
		keyType, valueType := t.Key(), t.Value()
		off := w.reserveLength()
		w.writeInt32(int32(m.Len()))
		for i := 0; i < m.Len(); i++ {
			if err := Encode(m.KeyAt(i), keyType, w); err != nil {
				return err
			}
			if err := Encode(m.ValueAt(i), valueType, w); err != nil {
				return err
			}
		}
		w.patchLength(off)
	case SetKind:
		s := v.(*Set)
		elemType := t.Elem()
		off := w.reserveLength()
		w.writeInt32(int32(s.Len()))
		for i := 0; i < s.Len(); i++ {
			if err := Encode(s.At(i), elemType, w); err != nil {
				return err
			}
		}
		w.patchLength(off)
	case ListKind:
		l := v.(*List)
		elemType := t.Elem()
		off := w.reserveLength()
		w.writeInt32(int32(l.Len()))
		for i := 0; i < l.Len(); i++ {
			if err := Encode(l.At(i), elemType, w); err != nil {
				return err
			}
		}
		w.patchLength(off)
	default:
		d.Panic("unsupported kind %s in encode", t.Kind())
	}

	return nil
}

// EncodeValue encodes v against t into a fresh buffer.
func EncodeValue(v Value, t *Type) ([]byte, error) {
	w := NewWriter()
	if err := Encode(v, t, w); err != nil {
		return nil, err
	}
	return w.Data(), nil
}

func writeBytesWithLength(w *Writer, b []byte) {
	w.writeInt32(int32(len(b)))
	w.writeRaw(b)
}

// inetBytes returns the address's canonical wire form: 4 bytes for IPv4,
// 16 for IPv6. An Inet payload is always one or the other.
func inetBytes(ip net.IP) []byte {
	if v4 := ip.To4(); v4 != nil {
		return v4
	}
	v16 := ip.To16()
	d.PanicIfTrue(v16 == nil)
	return v16
}
