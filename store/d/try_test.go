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

package d

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestPanicHelpers(t *testing.T) {
	assert := assert.New(t)

	assert.NotPanics(func() {
		PanicIfFalse(true)
		PanicIfTrue(false)
		PanicIfError(nil)
	})

	assert.Panics(func() { PanicIfFalse(false) })
	assert.Panics(func() { PanicIfTrue(true) })
	assert.Panics(func() { PanicIfError(errors.New("boom")) })
	assert.PanicsWithValue("bad kind int32", func() { Panic("bad kind %s", "int32") })
}
