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

// Package decimal provides the arbitrary-precision decimal type used by the
// value layer, together with the two byte encodings the engine needs: a
// canonical comparable form whose byte-lexicographic order equals numeric
// order, and the serialized BigDecimal form used on the client wire.
package decimal

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrCorrupt reports bytes that are not a valid decimal encoding.
	ErrCorrupt = errors.New("corrupt decimal encoding")
	// ErrOutOfRange reports a decimal whose scale does not fit the wire form.
	ErrOutOfRange = errors.New("decimal out of representable range")
)

// Dec is an arbitrary-precision decimal number.
type Dec struct {
	d decimal.Decimal
}

// New wraps an existing decimal.
func New(d decimal.Decimal) Dec {
	return Dec{d}
}

// Parse parses a decimal from its textual form.
func Parse(s string) (Dec, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Dec{}, errors.Wrapf(err, "parsing decimal %q", s)
	}
	return Dec{d}, nil
}

// MustParse is Parse for trusted literals.
func MustParse(s string) Dec {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (x Dec) String() string {
	return x.d.String()
}

// Decimal returns the underlying shopspring decimal.
func (x Dec) Decimal() decimal.Decimal {
	return x.d
}

// Cmp returns -1, 0 or 1 comparing x and y numerically.
func (x Dec) Cmp(y Dec) int {
	return x.d.Cmp(y.d)
}

func fromBigInt(unscaled *big.Int, exp int32) Dec {
	return Dec{decimal.NewFromBigInt(unscaled, exp)}
}

// ToSerializedBigDecimal renders the java.math.BigDecimal wire form: a 4-byte
// big-endian scale followed by the unscaled value as a big-endian
// two's-complement integer. A scale outside int32 range is clamped; the
// clamped bytes are still returned and the error reports the overflow, so the
// caller decides whether the condition is fatal.
func (x Dec) ToSerializedBigDecimal() ([]byte, error) {
	var err error
	scale := -int64(x.d.Exponent())
	if scale > math.MaxInt32 {
		err = errors.Wrapf(ErrOutOfRange, "scale %d exceeds int32", scale)
		scale = math.MaxInt32
	}

	buf := make([]byte, 4, 16)
	binary.BigEndian.PutUint32(buf, uint32(int32(scale)))
	return append(buf, bigIntToTwosComplement(x.d.Coefficient())...), err
}

// FromSerializedBigDecimal parses the wire form produced by
// ToSerializedBigDecimal.
func FromSerializedBigDecimal(buf []byte) (Dec, error) {
	if len(buf) < 5 {
		return Dec{}, errors.Wrapf(ErrCorrupt, "serialized BigDecimal needs at least 5 bytes, got %d", len(buf))
	}

	scale := int32(binary.BigEndian.Uint32(buf[:4]))
	if scale == math.MinInt32 {
		// The exponent -scale would not fit back into int32.
		return Dec{}, errors.Wrapf(ErrOutOfRange, "scale %d", scale)
	}

	unscaled := twosComplementToBigInt(buf[4:])
	return Dec{decimal.NewFromBigInt(unscaled, -scale)}, nil
}

// bigIntToTwosComplement mirrors java.math.BigInteger#toByteArray: the
// minimal big-endian two's-complement representation, at least one byte.
func bigIntToTwosComplement(v *big.Int) []byte {
	if v.Sign() >= 0 {
		b := v.Bytes()
		if len(b) == 0 {
			return []byte{0}
		}
		if b[0]&0x80 != 0 {
			return append([]byte{0}, b...)
		}
		return b
	}

	n := (v.BitLen() + 8) / 8
	if n == 0 {
		n = 1
	}
	t := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), uint(8*n)), v)
	b := t.Bytes()

	out := make([]byte, n)
	for i := range out {
		out[i] = 0xFF
	}
	copy(out[n-len(b):], b)
	for len(out) > 1 && out[0] == 0xFF && out[1]&0x80 != 0 {
		out = out[1:]
	}
	return out
}

func twosComplementToBigInt(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(8*len(b))))
	}
	return v
}
