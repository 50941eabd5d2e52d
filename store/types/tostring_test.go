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

func TestToStringScalars(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("null", ToString(Null{}))
	assert.Equal("null", ToString(nil))
	assert.Equal("int8:-5", ToString(Int8(-5)))
	assert.Equal("int16:300", ToString(Int16(300)))
	assert.Equal("int32:42", ToString(Int32(42)))
	assert.Equal("int64:-9000000000", ToString(Int64(-9000000000)))
	assert.Equal("float:1.5", ToString(Float(1.5)))
	assert.Equal("double:-2.25", ToString(Double(-2.25)))
	assert.Equal("bool:true", ToString(Bool(true)))
	assert.Equal("bool:false", ToString(Bool(false)))
	assert.Equal(`string:"a\nb"`, ToString(String("a\nb")))
	assert.Equal("binary:0x0a0b", ToString(Binary{0x0A, 0x0B}))
	assert.Equal("decimal:123.45", ToString(mustDecimal(t, "123.45")))
	assert.Equal("timestamp:1970-01-01T00:00:00.000000Z", ToString(Timestamp(0)))
	assert.Equal("inetaddress:10.0.0.1", ToString(NewInet(net.ParseIP("10.0.0.1"))))
	assert.Equal("uuid:"+randUUIDStr, ToString(UUID(uuid.MustParse(randUUIDStr))))
	assert.Equal("timeuuid:"+timeUUIDStr, ToString(NewTimeUUID(uuid.MustParse(timeUUIDStr))))
}

func TestToStringCollections(t *testing.T) {
	assert := assert.New(t)

	m := NewMap()
	m.Append(Int32(1), String("one"))
	m.Append(Int32(2), Null{})
	assert.Equal(`map:{int32:1 -> string:"one", int32:2 -> null}`, ToString(m))

	s := NewSet(String("a"), String("b"))
	assert.Equal(`set:{string:"a", string:"b"}`, ToString(s))

	l := NewList(Int64(1), Int64(2), Int64(3))
	assert.Equal("list:[int64:1, int64:2, int64:3]", ToString(l))

	assert.Equal("map:{}", ToString(NewMap()))
	assert.Equal("set:{}", ToString(NewSet()))
	assert.Equal("list:[]", ToString(NewList()))

	nested := NewList(NewSet(Int32(1)), NewSet())
	assert.Equal("list:[set:{int32:1}, set:{}]", ToString(nested))
}
