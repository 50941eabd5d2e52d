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

// Package types holds the polymorphic database value representation, its
// client wire codec and its total-order comparator. One concrete Go type
// exists per kind, so "exactly one payload, or none" holds by construction
// rather than by convention.
package types

import (
	"bytes"
	"net"

	"github.com/google/uuid"

	"github.com/vortexdb/vortex/store/d"
	"github.com/vortexdb/vortex/store/decimal"
)

// Value is one database value. A Value is exclusively owned by its holder;
// there is no sharing or back-reference, so distinct instances may be used
// from different goroutines without coordination.
type Value interface {
	Kind() Kind

	// Equals reports structural equality: same kind, same payload, with
	// nulls equal to each other. The relational == operator, which treats
	// any null operand as not-equal, is the Equal function in compare.go.
	Equals(other Value) bool

	// HumanReadableString renders the value for debugging as
	// "<kind>:<contents>".
	HumanReadableString() string
}

// Null is the unset value.
type Null struct{}

func (Null) Kind() Kind {
	return NullKind
}

func (Null) Equals(other Value) bool {
	return IsNull(other)
}

// IsNull reports whether v is unset. A nil interface counts as unset.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

type Int8 int8

func (v Int8) Kind() Kind {
	return Int8Kind
}

func (v Int8) Equals(other Value) bool {
	v2, ok := other.(Int8)
	return ok && v == v2
}

type Int16 int16

func (v Int16) Kind() Kind {
	return Int16Kind
}

func (v Int16) Equals(other Value) bool {
	v2, ok := other.(Int16)
	return ok && v == v2
}

type Int32 int32

func (v Int32) Kind() Kind {
	return Int32Kind
}

func (v Int32) Equals(other Value) bool {
	v2, ok := other.(Int32)
	return ok && v == v2
}

type Int64 int64

func (v Int64) Kind() Kind {
	return Int64Kind
}

func (v Int64) Equals(other Value) bool {
	v2, ok := other.(Int64)
	return ok && v == v2
}

// Float is the 32-bit floating point kind.
type Float float32

func (v Float) Kind() Kind {
	return FloatKind
}

func (v Float) Equals(other Value) bool {
	v2, ok := other.(Float)
	return ok && v == v2
}

// Double is the 64-bit floating point kind.
type Double float64

func (v Double) Kind() Kind {
	return DoubleKind
}

func (v Double) Equals(other Value) bool {
	v2, ok := other.(Double)
	return ok && v == v2
}

// Decimal holds an arbitrary-precision decimal in its canonical comparable
// byte encoding, not the wire encoding: byte-lexicographic order on the
// payload equals numeric order. The codec converts to and from the
// serialized BigDecimal wire form at the boundary.
type Decimal []byte

func (v Decimal) Kind() Kind {
	return DecimalKind
}

func (v Decimal) Equals(other Value) bool {
	v2, ok := other.(Decimal)
	return ok && bytes.Equal(v, v2)
}

// NewDecimalFromString parses a decimal literal into its comparable form.
func NewDecimalFromString(s string) (Decimal, error) {
	dec, err := decimal.Parse(s)
	if err != nil {
		return nil, err
	}
	return Decimal(dec.EncodeToComparable()), nil
}

type String string

func (v String) Kind() Kind {
	return StringKind
}

func (v String) Equals(other Value) bool {
	v2, ok := other.(String)
	return ok && v == v2
}

type Bool bool

func (v Bool) Kind() Kind {
	return BoolKind
}

func (v Bool) Equals(other Value) bool {
	v2, ok := other.(Bool)
	return ok && v == v2
}

// Timestamp is microseconds since the Unix epoch, the engine's internal
// precision. The wire format carries milliseconds; the codec adjusts.
type Timestamp int64

func (v Timestamp) Kind() Kind {
	return TimestampKind
}

func (v Timestamp) Equals(other Value) bool {
	v2, ok := other.(Timestamp)
	return ok && v == v2
}

type Binary []byte

func (v Binary) Kind() Kind {
	return BinaryKind
}

func (v Binary) Equals(other Value) bool {
	v2, ok := other.(Binary)
	return ok && bytes.Equal(v, v2)
}

// Inet is an IPv4 or IPv6 address.
type Inet net.IP

func (v Inet) Kind() Kind {
	return InetKind
}

func (v Inet) Equals(other Value) bool {
	v2, ok := other.(Inet)
	return ok && net.IP(v).Equal(net.IP(v2))
}

// NewInet wraps ip, which must be a valid IPv4 or IPv6 address.
func NewInet(ip net.IP) Inet {
	d.PanicIfTrue(ip.To16() == nil)
	return Inet(ip)
}

type UUID uuid.UUID

func (v UUID) Kind() Kind {
	return UUIDKind
}

func (v UUID) Equals(other Value) bool {
	v2, ok := other.(UUID)
	return ok && v == v2
}

// TimeUUID is a version-1, time-based UUID. The codec validates the version
// on both encode and decode.
type TimeUUID uuid.UUID

func (v TimeUUID) Kind() Kind {
	return TimeUUIDKind
}

func (v TimeUUID) Equals(other Value) bool {
	v2, ok := other.(TimeUUID)
	return ok && v == v2
}

// NewTimeUUID wraps u, which must be a time-based UUID.
func NewTimeUUID(u uuid.UUID) TimeUUID {
	d.PanicIfFalse(u.Version() == 1)
	return TimeUUID(u)
}
