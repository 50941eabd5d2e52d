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
	"github.com/vortexdb/vortex/store/d"
)

// Type describes the shape of a value for the codec: a bare kind for
// scalars, a kind plus element types for collections. Desc carries the
// details; checking Kind() tells code how to interpret the rest. Types are
// immutable and are consulted, never mutated, by the codec.
type Type struct {
	Desc TypeDesc
}

// TypeDesc describes the specifics of a Type.
type TypeDesc interface {
	Kind() Kind
}

// PrimitiveDesc implements TypeDesc for scalar kinds, which need no more
// information than the kind itself.
type PrimitiveDesc Kind

func (p PrimitiveDesc) Kind() Kind {
	return Kind(p)
}

// CompoundDesc describes a parametrized container: one element type for set
// and list, key then value for map.
type CompoundDesc struct {
	kind      Kind
	ElemTypes []*Type
}

func (c CompoundDesc) Kind() Kind {
	return c.kind
}

func (t *Type) Kind() Kind {
	return t.Desc.Kind()
}

// MakePrimitiveType returns the descriptor for a scalar kind.
func MakePrimitiveType(k Kind) *Type {
	d.PanicIfTrue(IsCollectionKind(k))
	return &Type{PrimitiveDesc(k)}
}

// MakeListType returns a list descriptor with the given element type.
func MakeListType(elem *Type) *Type {
	return &Type{CompoundDesc{ListKind, []*Type{elem}}}
}

// MakeSetType returns a set descriptor with the given element type.
func MakeSetType(elem *Type) *Type {
	return &Type{CompoundDesc{SetKind, []*Type{elem}}}
}

// MakeMapType returns a map descriptor with the given key and value types.
func MakeMapType(key, value *Type) *Type {
	return &Type{CompoundDesc{MapKind, []*Type{key, value}}}
}

// Elem returns the element type of a set or list descriptor.
func (t *Type) Elem() *Type {
	desc, ok := t.Desc.(CompoundDesc)
	d.PanicIfFalse(ok && (desc.kind == SetKind || desc.kind == ListKind))
	return desc.ElemTypes[0]
}

// Key returns the key type of a map descriptor.
func (t *Type) Key() *Type {
	desc, ok := t.Desc.(CompoundDesc)
	d.PanicIfFalse(ok && desc.kind == MapKind)
	return desc.ElemTypes[0]
}

// Value returns the value type of a map descriptor.
func (t *Type) Value() *Type {
	desc, ok := t.Desc.(CompoundDesc)
	d.PanicIfFalse(ok && desc.kind == MapKind)
	return desc.ElemTypes[1]
}

// Describe renders the textual form accepted by ParseType.
func (t *Type) Describe() string {
	switch t.Kind() {
	case ListKind:
		return "list<" + t.Elem().Describe() + ">"
	case SetKind:
		return "set<" + t.Elem().Describe() + ">"
	case MapKind:
		return "map<" + t.Key().Describe() + "," + t.Value().Describe() + ">"
	default:
		return t.Kind().String()
	}
}

// PrimitiveTypeMap interns a descriptor for every scalar kind.
var PrimitiveTypeMap = map[Kind]*Type{}

func init() {
	for _, k := range []Kind{
		Int8Kind, Int16Kind, Int32Kind, Int64Kind, FloatKind, DoubleKind,
		DecimalKind, StringKind, BoolKind, TimestampKind, BinaryKind,
		InetKind, UUIDKind, TimeUUIDKind,
	} {
		PrimitiveTypeMap[k] = MakePrimitiveType(k)
	}
}
