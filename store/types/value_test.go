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
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsNull(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsNull(nil))
	assert.True(IsNull(Null{}))
	assert.False(IsNull(Int32(0)))
	assert.False(IsNull(String("")))
	assert.False(IsNull(NewList()))
}

func TestStructuralEquals(t *testing.T) {
	assert := assert.New(t)

	assert.True(Int32(5).Equals(Int32(5)))
	assert.False(Int32(5).Equals(Int64(5)))
	assert.False(Int32(5).Equals(Null{}))
	assert.True(Null{}.Equals(Null{}))
	assert.True(Binary{1, 2}.Equals(Binary{1, 2}))
	assert.False(Binary{1, 2}.Equals(Binary{1, 2, 3}))

	// IPv4 addresses are equal whatever the internal representation width.
	assert.True(NewInet(net.ParseIP("10.0.0.1")).Equals(Inet(net.IP{10, 0, 0, 1})))

	l1 := NewList(Int32(1), Null{}, Int32(3))
	l2 := NewList(Int32(1), Null{}, Int32(3))
	assert.True(l1.Equals(l2))
	l2.Append(Int32(4))
	assert.False(l1.Equals(l2))

	m1 := NewMap()
	m1.Append(String("k"), Int32(1))
	m2 := NewMap()
	m2.Append(String("k"), Int32(2))
	assert.False(m1.Equals(m2))
}

func TestMapInvariant(t *testing.T) {
	assert.Panics(t, func() {
		NewMapFromPairs([]Value{Int32(1), Int32(2)}, []Value{String("one")})
	})

	m := NewMapFromPairs([]Value{Int32(1)}, []Value{String("one")})
	assert.Equal(t, 1, m.Len())
	m.Append(Int32(2), String("two"))
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.KeyAt(1).Equals(Int32(2)))
	assert.True(t, m.ValueAt(1).Equals(String("two")))
}

func TestValueConstructorsAssert(t *testing.T) {
	assert.Panics(t, func() {
		NewTimeUUID(uuid.MustParse(randUUIDStr))
	})
	assert.Panics(t, func() {
		NewInet(net.IP{1, 2, 3})
	})
	assert.NotPanics(t, func() {
		NewTimeUUID(uuid.MustParse(timeUUIDStr))
		NewInet(net.ParseIP("::1"))
	})
}

func TestKindPredicates(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsPrimitiveKind(Int8Kind))
	assert.True(IsPrimitiveKind(TimeUUIDKind))
	assert.False(IsPrimitiveKind(MapKind))
	assert.False(IsPrimitiveKind(VarintKind))
	assert.False(IsPrimitiveKind(NullKind))

	assert.True(IsCollectionKind(SetKind))
	assert.False(IsCollectionKind(StringKind))

	assert.True(IsOrderedKind(DecimalKind))
	assert.True(IsOrderedKind(InetKind))
	assert.False(IsOrderedKind(BoolKind))
	assert.False(IsOrderedKind(ListKind))

	assert.True(IsValidWireKind(ListKind))
	assert.False(IsValidWireKind(Uint64Kind))
	assert.False(IsValidWireKind(NullKind))

	assert.Equal("int32", Int32Kind.String())
	assert.Equal("unknown", Kind(200).String())
}
