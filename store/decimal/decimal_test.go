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
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializedBigDecimalExact(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		in   string
		buff []byte
	}{
		// scale 2, unscaled 12345
		{"123.45", []byte{0x00, 0x00, 0x00, 0x02, 0x30, 0x39}},
		// scale 0, unscaled -1
		{"-1", []byte{0x00, 0x00, 0x00, 0x00, 0xFF}},
		{"0", []byte{0x00, 0x00, 0x00, 0x00, 0x00}},
		// scale -3, unscaled 1
		{"1e3", []byte{0xFF, 0xFF, 0xFF, 0xFD, 0x01}},
		// unscaled 128 needs a sign-extension byte
		{"1.28", []byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x80}},
		{"-1.28", []byte{0x00, 0x00, 0x00, 0x02, 0xFF, 0x80}},
	}

	for _, c := range cases {
		buff, err := MustParse(c.in).ToSerializedBigDecimal()
		require.NoError(t, err, c.in)
		assert.Equal(c.buff, buff, c.in)

		back, err := FromSerializedBigDecimal(buff)
		require.NoError(t, err, c.in)
		assert.Zero(back.Cmp(MustParse(c.in)), c.in)
	}
}

func TestSerializedBigDecimalRoundTrips(t *testing.T) {
	for _, in := range []string{
		"0", "1", "-1", "123.45", "-123.45", "0.00001", "-0.00001",
		"99999999999999999999999999.999999999", "1e20", "-1e20", "3.14159265358979",
	} {
		d := MustParse(in)
		buff, err := d.ToSerializedBigDecimal()
		require.NoError(t, err, in)
		back, err := FromSerializedBigDecimal(buff)
		require.NoError(t, err, in)
		assert.Zero(t, back.Cmp(d), in)
	}
}

func TestSerializedBigDecimalErrors(t *testing.T) {
	assert := assert.New(t)

	for _, buff := range [][]byte{nil, {}, {0x00}, {0x00, 0x00, 0x00, 0x00}} {
		_, err := FromSerializedBigDecimal(buff)
		assert.ErrorIs(err, ErrCorrupt)
	}

	// scale math.MinInt32 has no representable exponent
	_, err := FromSerializedBigDecimal([]byte{0x80, 0x00, 0x00, 0x00, 0x01})
	assert.ErrorIs(err, ErrOutOfRange)
}

// An oversized scale is clamped but still encoded; the error lets the caller
// choose whether to treat the loss as fatal.
func TestSerializedBigDecimalScaleClamp(t *testing.T) {
	assert := assert.New(t)

	d := New(decimal.NewFromBigInt(big.NewInt(3), math.MinInt32))
	buff, err := d.ToSerializedBigDecimal()
	assert.ErrorIs(err, ErrOutOfRange)
	assert.Equal([]byte{0x7F, 0xFF, 0xFF, 0xFF, 0x03}, buff)
}

func TestTwosComplement(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		v    int64
		buff []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x00, 0x80}},
		{255, []byte{0x00, 0xFF}},
		{256, []byte{0x01, 0x00}},
		{-1, []byte{0xFF}},
		{-128, []byte{0x80}},
		{-129, []byte{0xFF, 0x7F}},
		{-256, []byte{0xFF, 0x00}},
		{-257, []byte{0xFE, 0xFF}},
	}

	for _, c := range cases {
		assert.Equal(c.buff, bigIntToTwosComplement(big.NewInt(c.v)), "%d", c.v)
		assert.Zero(twosComplementToBigInt(c.buff).Cmp(big.NewInt(c.v)), "%d", c.v)
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	d, err := Parse("12.5")
	require.NoError(t, err)
	assert.Equal("12.5", d.String())

	_, err = Parse("not a number")
	assert.Error(err)

	assert.Panics(func() { MustParse("bogus") })
	assert.Equal(1, MustParse("2").Cmp(MustParse("1.999")))
	assert.Equal(-1, MustParse("-2").Cmp(MustParse("-1.999")))
	assert.Zero(MustParse("1.10").Cmp(MustParse("1.1")))
}
