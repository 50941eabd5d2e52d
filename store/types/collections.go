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

// Collections hold their elements in insertion order and do not carry
// element-type information; the type descriptor supplies that at encode,
// decode and compare time. Append mutates in place, which is what lets the
// decoder build a collection incrementally.

// Map holds parallel key and value sequences. len(keys) == len(values) is a
// standing invariant.
type Map struct {
	keys   []Value
	values []Value
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{}
}

// NewMapFromPairs wraps existing parallel sequences, which must be of equal
// length.
func NewMapFromPairs(keys, values []Value) *Map {
	d.PanicIfFalse(len(keys) == len(values))
	return &Map{keys: keys, values: values}
}

func (m *Map) Kind() Kind {
	return MapKind
}

func (m *Map) Len() int {
	d.PanicIfFalse(len(m.keys) == len(m.values))
	return len(m.keys)
}

// Append adds one entry.
func (m *Map) Append(k, v Value) {
	m.keys = append(m.keys, k)
	m.values = append(m.values, v)
}

// KeyAt returns the i'th key in insertion order.
func (m *Map) KeyAt(i int) Value {
	return m.keys[i]
}

// ValueAt returns the i'th value in insertion order.
func (m *Map) ValueAt(i int) Value {
	return m.values[i]
}

func (m *Map) Equals(other Value) bool {
	m2, ok := other.(*Map)
	if !ok || m.Len() != m2.Len() {
		return false
	}
	for i := range m.keys {
		if !valueEquals(m.keys[i], m2.keys[i]) || !valueEquals(m.values[i], m2.values[i]) {
			return false
		}
	}
	return true
}

// Set holds one element sequence.
type Set struct {
	elems []Value
}

// NewSet returns a set of the given elements.
func NewSet(elems ...Value) *Set {
	return &Set{elems: elems}
}

func (s *Set) Kind() Kind {
	return SetKind
}

func (s *Set) Len() int {
	return len(s.elems)
}

// Append adds one element.
func (s *Set) Append(v Value) {
	s.elems = append(s.elems, v)
}

// At returns the i'th element in insertion order.
func (s *Set) At(i int) Value {
	return s.elems[i]
}

func (s *Set) Equals(other Value) bool {
	s2, ok := other.(*Set)
	return ok && elemsEqual(s.elems, s2.elems)
}

// List holds one element sequence.
type List struct {
	elems []Value
}

// NewList returns a list of the given elements.
func NewList(elems ...Value) *List {
	return &List{elems: elems}
}

func (l *List) Kind() Kind {
	return ListKind
}

func (l *List) Len() int {
	return len(l.elems)
}

// Append adds one element.
func (l *List) Append(v Value) {
	l.elems = append(l.elems, v)
}

// At returns the i'th element in insertion order.
func (l *List) At(i int) Value {
	return l.elems[i]
}

func (l *List) Equals(other Value) bool {
	l2, ok := other.(*List)
	return ok && elemsEqual(l.elems, l2.elems)
}

func elemsEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !valueEquals(a[i], b[i]) {
			return false
		}
	}
	return true
}

// valueEquals tolerates nil interfaces standing in for Null.
func valueEquals(a, b Value) bool {
	if IsNull(a) {
		return IsNull(b)
	}
	return a.Equals(b)
}
