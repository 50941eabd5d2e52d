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
	"encoding/hex"
	"net"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/vortexdb/vortex/store/d"
	"github.com/vortexdb/vortex/store/decimal"
	"github.com/vortexdb/vortex/store/util/datetime"
)

// ToString renders v for debugging. Null renders as "null", every other
// kind as "<kind>:<contents>"; collections recurse in stored order.
func ToString(v Value) string {
	if IsNull(v) {
		return "null"
	}
	return v.HumanReadableString()
}

func (Null) HumanReadableString() string {
	return "null"
}

func (v Int8) HumanReadableString() string {
	return "int8:" + strconv.FormatInt(int64(v), 10)
}

func (v Int16) HumanReadableString() string {
	return "int16:" + strconv.FormatInt(int64(v), 10)
}

func (v Int32) HumanReadableString() string {
	return "int32:" + strconv.FormatInt(int64(v), 10)
}

func (v Int64) HumanReadableString() string {
	return "int64:" + strconv.FormatInt(int64(v), 10)
}

func (v Float) HumanReadableString() string {
	return "float:" + strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func (v Double) HumanReadableString() string {
	return "double:" + strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v Decimal) HumanReadableString() string {
	dec, err := decimal.FromComparable(v)
	d.PanicIfError(err)
	return "decimal:" + dec.String()
}

func (v String) HumanReadableString() string {
	return "string:" + strconv.Quote(string(v))
}

func (v Bool) HumanReadableString() string {
	if v {
		return "bool:true"
	}
	return "bool:false"
}

func (v Timestamp) HumanReadableString() string {
	return "timestamp:" + datetime.FormatTimestampMicros(int64(v))
}

func (v Binary) HumanReadableString() string {
	return "binary:0x" + hex.EncodeToString(v)
}

func (v Inet) HumanReadableString() string {
	return "inetaddress:" + net.IP(v).String()
}

func (v UUID) HumanReadableString() string {
	return "uuid:" + uuid.UUID(v).String()
}

func (v TimeUUID) HumanReadableString() string {
	return "timeuuid:" + uuid.UUID(v).String()
}

func (m *Map) HumanReadableString() string {
	var sb strings.Builder
	sb.WriteString("map:{")
	for i := 0; i < m.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ToString(m.KeyAt(i)))
		sb.WriteString(" -> ")
		sb.WriteString(ToString(m.ValueAt(i)))
	}
	sb.WriteString("}")
	return sb.String()
}

func (s *Set) HumanReadableString() string {
	var sb strings.Builder
	sb.WriteString("set:{")
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ToString(s.At(i)))
	}
	sb.WriteString("}")
	return sb.String()
}

func (l *List) HumanReadableString() string {
	var sb strings.Builder
	sb.WriteString("list:[")
	for i := 0; i < l.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ToString(l.At(i)))
	}
	sb.WriteString("]")
	return sb.String()
}
