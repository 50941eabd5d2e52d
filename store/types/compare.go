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
	"bytes"
	"cmp"
	"net"

	"github.com/vortexdb/vortex/store/d"
)

// Compare returns -1, 0 or 1 ordering a before, with or after b. Both
// operands must be non-null and of the same kind, and the kind must be
// ordered; anything else is a defect in the caller's type checking and
// panics. The query layer is expected to have removed mismatched and null
// operands before ordering ever happens.
func Compare(a, b Value) int {
	d.PanicIfTrue(IsNull(a) || IsNull(b))
	d.PanicIfFalse(a.Kind() == b.Kind())

	switch a.Kind() {
	case Int8Kind:
		return cmp.Compare(a.(Int8), b.(Int8))
	case Int16Kind:
		return cmp.Compare(a.(Int16), b.(Int16))
	case Int32Kind:
		return cmp.Compare(a.(Int32), b.(Int32))
	case Int64Kind:
		return cmp.Compare(a.(Int64), b.(Int64))
	case FloatKind:
		return cmp.Compare(a.(Float), b.(Float))
	case DoubleKind:
		return cmp.Compare(a.(Double), b.(Double))
	case DecimalKind:
		// The comparable encoding makes byte order numeric order.
		return bytes.Compare(a.(Decimal), b.(Decimal))
	case StringKind:
		return cmp.Compare(a.(String), b.(String))
	case TimestampKind:
		return cmp.Compare(a.(Timestamp), b.(Timestamp))
	case BinaryKind:
		return bytes.Compare(a.(Binary), b.(Binary))
	case InetKind:
		return compareInet(a.(Inet), b.(Inet))
	case UUIDKind:
		u1, u2 := a.(UUID), b.(UUID)
		return bytes.Compare(u1[:], u2[:])
	case TimeUUIDKind:
		u1, u2 := a.(TimeUUID), b.(TimeUUID)
		return bytes.Compare(u1[:], u2[:])
	case BoolKind:
		d.Panic("bool type is not comparable")
	case MapKind, SetKind, ListKind:
		d.Panic("collection types are not comparable")
	case VarintKind:
		d.Panic("varint not implemented")
	}

	d.Panic("unsupported kind %s in compare", a.Kind())
	return 0
}

// compareInet orders IPv4 before IPv6, then by canonical bytes.
func compareInet(x, y Inet) int {
	xb, yb := net.IP(x), net.IP(y)
	if v4 := xb.To4(); v4 != nil {
		xb = v4
	}
	if v4 := yb.To4(); v4 != nil {
		yb = v4
	}
	if len(xb) != len(yb) {
		return cmp.Compare(len(xb), len(yb))
	}
	return bytes.Compare(xb, yb)
}

// The relational operators compose a null check with Compare: any null
// operand makes every operator false, including Equal and NotEqual.

func Less(a, b Value) bool {
	return bothNotNull(a, b) && Compare(a, b) < 0
}

func Greater(a, b Value) bool {
	return bothNotNull(a, b) && Compare(a, b) > 0
}

func LessEq(a, b Value) bool {
	return bothNotNull(a, b) && Compare(a, b) <= 0
}

func GreaterEq(a, b Value) bool {
	return bothNotNull(a, b) && Compare(a, b) >= 0
}

func Equal(a, b Value) bool {
	return bothNotNull(a, b) && Compare(a, b) == 0
}

func NotEqual(a, b Value) bool {
	return bothNotNull(a, b) && Compare(a, b) != 0
}

func bothNotNull(a, b Value) bool {
	return !IsNull(a) && !IsNull(b)
}
