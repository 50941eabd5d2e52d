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
	"math"
	"net"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/vortexdb/vortex/store/d"
	"github.com/vortexdb/vortex/store/decimal"
	"github.com/vortexdb/vortex/store/util/datetime"
)

// Decode reads one value of type t from r. A framed length of -1 yields Null
// for any descriptor. Malformed or truncated input is returned as an error
// and never read past the source bound; an unsupported kind in t is a defect
// in the caller and panics, since descriptors are not wire input.
func Decode(t *Type, r *Reader) (Value, error) {
	length, err := r.readInt32()
	if err != nil {
		return nil, err
	}
	if length == nullValueLength {
		return Null{}, nil
	}
	if length < 0 {
		return nil, errors.Wrapf(ErrBadLength, "length %d", length)
	}
	if uint32(length) > r.remaining() {
		return nil, errors.Wrapf(ErrTruncated, "value length %d exceeds %d remaining bytes", length, r.remaining())
	}

	switch t.Kind() {
	case Int8Kind:
		b, err := readScalar(r, length, 1)
		if err != nil {
			return nil, err
		}
		return Int8(b[0]), nil
	case Int16Kind:
		b, err := readScalar(r, length, 2)
		if err != nil {
			return nil, err
		}
		return Int16(binary.BigEndian.Uint16(b)), nil
	case Int32Kind:
		b, err := readScalar(r, length, 4)
		if err != nil {
			return nil, err
		}
		return Int32(binary.BigEndian.Uint32(b)), nil
	case Int64Kind:
		b, err := readScalar(r, length, 8)
		if err != nil {
			return nil, err
		}
		return Int64(binary.BigEndian.Uint64(b)), nil
	case FloatKind:
		b, err := readScalar(r, length, 4)
		if err != nil {
			return nil, err
		}
		return Float(math.Float32frombits(binary.BigEndian.Uint32(b))), nil
	case DoubleKind:
		b, err := readScalar(r, length, 8)
		if err != nil {
			return nil, err
		}
		return Double(math.Float64frombits(binary.BigEndian.Uint64(b))), nil
	case DecimalKind:
		b, err := r.readBytes(uint32(length))
		if err != nil {
			return nil, err
		}
		dec, err := decimal.FromSerializedBigDecimal(b)
		if err != nil {
			return nil, err
		}
		return Decimal(dec.EncodeToComparable()), nil
	case StringKind:
		b, err := r.readBytes(uint32(length))
		if err != nil {
			return nil, err
		}
		return String(b), nil
	case BoolKind:
		b, err := readScalar(r, length, 1)
		if err != nil {
			return nil, err
		}
		return Bool(b[0] != 0), nil
	case TimestampKind:
		b, err := readScalar(r, length, 8)
		if err != nil {
			return nil, err
		}
		millis := int64(binary.BigEndian.Uint64(b))
		micros, err := datetime.AdjustPrecision(millis, datetime.Millis, datetime.Micros)
		if err != nil {
			return nil, err
		}
		return Timestamp(micros), nil
	case BinaryKind:
		b, err := r.readBytes(uint32(length))
		if err != nil {
			return nil, err
		}
		return Binary(append([]byte(nil), b...)), nil
	case InetKind:
		b, err := r.readBytes(uint32(length))
		if err != nil {
			return nil, err
		}
		if len(b) != 4 && len(b) != 16 {
			return nil, errors.Wrapf(ErrBadInet, "%d bytes", len(b))
		}
		return Inet(append(net.IP(nil), b...)), nil
	case UUIDKind:
		u, err := readUUID(r, length)
		if err != nil {
			return nil, err
		}
		return UUID(u), nil
	case TimeUUIDKind:
		u, err := readUUID(r, length)
		if err != nil {
			return nil, err
		}
		if u.Version() != 1 {
			return nil, errors.Wrapf(ErrNotTimeUUID, "version %d", u.Version())
		}
		return TimeUUID(u), nil
	case MapKind:
		keyType, valueType := t.Key(), t.Value()
		count, err := readCollectionCount(r)
		if err != nil {
			return nil, err
		}
		m := NewMap()
		for i := int32(0); i < count; i++ {
			k, err := Decode(keyType, r)
			if err != nil {
				return nil, err
			}
			v, err := Decode(valueType, r)
			if err != nil {
				return nil, err
			}
			m.Append(k, v)
		}
		return m, nil
	case SetKind:
		elemType := t.Elem()
		count, err := readCollectionCount(r)
		if err != nil {
			return nil, err
		}
		s := NewSet()
		for i := int32(0); i < count; i++ {
			e, err := Decode(elemType, r)
			if err != nil {
				return nil, err
			}
			s.Append(e)
		}
		return s, nil
	case ListKind:
		elemType := t.Elem()
		count, err := readCollectionCount(r)
		if err != nil {
			return nil, err
		}
		l := NewList()
		for i := int32(0); i < count; i++ {
			e, err := Decode(elemType, r)
			if err != nil {
				return nil, err
			}
			l.Append(e)
		}
		return l, nil
	default:
		d.Panic("unsupported kind %s in decode", t.Kind())
	}

	return nil, nil
}

// DecodeValue decodes exactly one value from buff and verifies it consumed
// the whole buffer.
func DecodeValue(t *Type, buff []byte) (Value, error) {
	r := NewReader(buff)
	v, err := Decode(t, r)
	if err != nil {
		return nil, err
	}
	if r.remaining() != 0 {
		return nil, errors.Wrapf(ErrTrailingBytes, "%d bytes", r.remaining())
	}
	return v, nil
}

// readScalar checks the framed length against the kind's fixed width before
// reading the payload.
func readScalar(r *Reader, length int32, want uint32) ([]byte, error) {
	if uint32(length) != want {
		return nil, errors.Wrapf(ErrBadScalarLen, "got %d, want %d", length, want)
	}
	return r.readBytes(want)
}

func readUUID(r *Reader, length int32) (uuid.UUID, error) {
	b, err := r.readBytes(uint32(length))
	if err != nil {
		return uuid.UUID{}, err
	}
	u, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.UUID{}, errors.Wrapf(ErrBadUUID, "%d bytes", len(b))
	}
	return u, nil
}

// readCollectionCount reads the inner element count of a map, set or list.
// The outer length has already been read and bounds-checked; the inner count
// is the authoritative size, the elements themselves are length-framed.
func readCollectionCount(r *Reader) (int32, error) {
	count, err := r.readInt32()
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, errors.Wrapf(ErrBadLength, "element count %d", count)
	}
	return count, nil
}
