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

// Package datetime holds the timestamp precision utilities shared by the
// value layer. Timestamps are integer counts since the Unix epoch; precision
// names how many fractional-second digits that count carries.
package datetime

import (
	"time"

	"github.com/pkg/errors"
)

// Precision is the number of fractional-second digits of an integer
// timestamp: 3 for milliseconds, 6 for microseconds.
type Precision int

const (
	// Millis is the precision of timestamps on the client wire.
	Millis Precision = 3
	// Micros is the engine's internal timestamp precision.
	Micros Precision = 6
)

// ErrPrecisionOverflow reports a timestamp that does not fit int64 at the
// requested precision.
var ErrPrecisionOverflow = errors.New("timestamp overflows int64 at requested precision")

// AdjustPrecision converts v between precisions. Lowering the precision
// truncates toward zero. Raising it fails rather than silently overflowing.
func AdjustPrecision(v int64, from, to Precision) (int64, error) {
	switch {
	case from == to:
		return v, nil
	case from > to:
		return v / pow10(from-to), nil
	default:
		f := pow10(to - from)
		out := v * f
		if out/f != v {
			return 0, errors.Wrapf(ErrPrecisionOverflow, "%d from precision %d to %d", v, from, to)
		}
		return out, nil
	}
}

func pow10(n Precision) int64 {
	out := int64(1)
	for ; n > 0; n-- {
		out *= 10
	}
	return out
}

// FormatTimestampMicros renders a microsecond timestamp in UTC for debug
// output.
func FormatTimestampMicros(us int64) string {
	return time.UnixMicro(us).UTC().Format("2006-01-02T15:04:05.000000Z")
}
