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

package decimal

import (
	"encoding/binary"
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// The comparable encoding normalizes a non-zero decimal to ±0.D × 10^E with
// a non-zero leading digit and no trailing zeros, then emits
//
//	[sign marker][4-byte biased big-endian E][digit bytes][terminator]
//
// Digit bytes are digit+1 so the terminator sorts below any continuation,
// which makes a proper prefix (0.5) sort before its extension (0.55). For
// negative numbers everything after the marker is bitwise complemented,
// reversing the order of magnitudes. Sign markers are chosen so that
// negative < zero < positive byte-wise.
const (
	negMarker  = 0x20
	zeroMarker = 0x80
	posMarker  = 0xE0

	digitTerm = 0x00
	expBias   = int64(1) << 31
)

// EncodeToComparable returns the canonical comparable encoding of x:
// byte-lexicographic order over these encodings equals numeric order,
// across differing signs and scales.
func (x Dec) EncodeToComparable() []byte {
	sign := x.d.Sign()
	if sign == 0 {
		return []byte{zeroMarker}
	}

	absStr := new(big.Int).Abs(x.d.Coefficient()).String()
	digits := strings.TrimRight(absStr, "0")
	exp := int64(len(absStr)) + int64(x.d.Exponent())
	if exp < math.MinInt32 || exp > math.MaxInt32 {
		// Needs a coefficient of ~2^31 digits to reach.
		panic(errors.Wrapf(ErrOutOfRange, "comparable exponent %d", exp))
	}

	buf := make([]byte, 0, len(digits)+6)
	buf = append(buf, posMarker)
	var eb [4]byte
	binary.BigEndian.PutUint32(eb[:], uint32(exp+expBias))
	buf = append(buf, eb[:]...)
	for i := 0; i < len(digits); i++ {
		buf = append(buf, digits[i]-'0'+1)
	}
	buf = append(buf, digitTerm)

	if sign < 0 {
		buf[0] = negMarker
		for i := 1; i < len(buf); i++ {
			buf[i] = ^buf[i]
		}
	}
	return buf
}

// FromComparable parses the encoding produced by EncodeToComparable.
func FromComparable(buf []byte) (Dec, error) {
	if len(buf) == 0 {
		return Dec{}, errors.Wrap(ErrCorrupt, "empty comparable encoding")
	}

	switch buf[0] {
	case zeroMarker:
		if len(buf) != 1 {
			return Dec{}, errors.Wrapf(ErrCorrupt, "%d trailing bytes after zero", len(buf)-1)
		}
		return Dec{}, nil

	case posMarker, negMarker:
		neg := buf[0] == negMarker
		body := make([]byte, len(buf)-1)
		copy(body, buf[1:])
		if neg {
			for i := range body {
				body[i] = ^body[i]
			}
		}
		// 4 exponent bytes, at least one digit, terminator.
		if len(body) < 6 {
			return Dec{}, errors.Wrapf(ErrCorrupt, "comparable body of %d bytes", len(body))
		}
		if body[len(body)-1] != digitTerm {
			return Dec{}, errors.Wrap(ErrCorrupt, "missing digit terminator")
		}

		exp := int64(binary.BigEndian.Uint32(body[:4])) - expBias
		digits := body[4 : len(body)-1]
		var sb strings.Builder
		for _, b := range digits {
			if b < 1 || b > 10 {
				return Dec{}, errors.Wrapf(ErrCorrupt, "digit byte 0x%02x", b)
			}
			sb.WriteByte('0' + b - 1)
		}

		unscaled, ok := new(big.Int).SetString(sb.String(), 10)
		if !ok {
			return Dec{}, errors.Wrap(ErrCorrupt, "unparseable digit run")
		}
		if neg {
			unscaled.Neg(unscaled)
		}

		// value = 0.digits × 10^exp = unscaled × 10^(exp-len).
		e := exp - int64(len(digits))
		if e < math.MinInt32 || e > math.MaxInt32 {
			return Dec{}, errors.Wrapf(ErrOutOfRange, "exponent %d", e)
		}
		return fromBigInt(unscaled, int32(e)), nil
	}

	return Dec{}, errors.Wrapf(ErrCorrupt, "bad sign marker 0x%02x", buf[0])
}
