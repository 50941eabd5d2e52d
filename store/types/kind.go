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

// Kind identifies which variant of the value union is active and, inside a
// type descriptor, how a payload is laid out on the wire.
type Kind uint8

// All kinds known to the value layer. Uint8..Uint64 exist in the engine's
// internal protocol but are invalid on the client wire; Varint is declared
// but not implemented at this layer.
const (
	Int8Kind Kind = iota
	Int16Kind
	Int32Kind
	Int64Kind
	FloatKind
	DoubleKind
	DecimalKind
	StringKind
	BoolKind
	TimestampKind
	BinaryKind
	InetKind
	UUIDKind
	TimeUUIDKind
	MapKind
	SetKind
	ListKind

	VarintKind

	// NullKind marks the unset state. It never appears in a type descriptor.
	NullKind

	Uint8Kind
	Uint16Kind
	Uint32Kind
	Uint64Kind

	UnknownKind Kind = 255
)

var KindToString = map[Kind]string{
	Int8Kind:      "int8",
	Int16Kind:     "int16",
	Int32Kind:     "int32",
	Int64Kind:     "int64",
	FloatKind:     "float",
	DoubleKind:    "double",
	DecimalKind:   "decimal",
	StringKind:    "string",
	BoolKind:      "bool",
	TimestampKind: "timestamp",
	BinaryKind:    "binary",
	InetKind:      "inet",
	UUIDKind:      "uuid",
	TimeUUIDKind:  "timeuuid",
	MapKind:       "map",
	SetKind:       "set",
	ListKind:      "list",
	VarintKind:    "varint",
	NullKind:      "null",
	Uint8Kind:     "uint8",
	Uint16Kind:    "uint16",
	Uint32Kind:    "uint32",
	Uint64Kind:    "uint64",
	UnknownKind:   "unknown",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if s, ok := KindToString[k]; ok {
		return s
	}
	return "unknown"
}

// IsPrimitiveKind reports whether k is a scalar kind, which excludes the
// collections, Varint, Null and the invalid unsigned widths.
func IsPrimitiveKind(k Kind) bool {
	switch k {
	case Int8Kind, Int16Kind, Int32Kind, Int64Kind, FloatKind, DoubleKind,
		DecimalKind, StringKind, BoolKind, TimestampKind, BinaryKind,
		InetKind, UUIDKind, TimeUUIDKind:
		return true
	default:
		return false
	}
}

// IsCollectionKind reports whether k is a parametrized container kind.
func IsCollectionKind(k Kind) bool {
	switch k {
	case MapKind, SetKind, ListKind:
		return true
	default:
		return false
	}
}

// IsOrderedKind reports whether values of k have a defined total order.
// Bool and the collections deliberately do not.
func IsOrderedKind(k Kind) bool {
	switch k {
	case Int8Kind, Int16Kind, Int32Kind, Int64Kind, FloatKind, DoubleKind,
		DecimalKind, StringKind, TimestampKind, BinaryKind,
		InetKind, UUIDKind, TimeUUIDKind:
		return true
	default:
		return false
	}
}

// IsValidWireKind reports whether the codec accepts k in a type descriptor.
func IsValidWireKind(k Kind) bool {
	return IsPrimitiveKind(k) || IsCollectionKind(k)
}
