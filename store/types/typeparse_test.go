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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		in       string
		describe string
	}{
		{"int32", "int32"},
		{"int", "int32"},
		{"text", "string"},
		{"varchar", "string"},
		{"blob", "binary"},
		{"boolean", "bool"},
		{"tinyint", "int8"},
		{"timeuuid", "timeuuid"},
		{"list<int32>", "list<int32>"},
		{"set<inet>", "set<inet>"},
		{"map<uuid,text>", "map<uuid,string>"},
		{"map<int32, list<double>>", "map<int32,list<double>>"},
		{" list< set< int64 > > ", "list<set<int64>>"},
	}

	for _, c := range cases {
		typ, err := ParseType(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.describe, typ.Describe(), c.in)
	}
}

func TestParseTypeErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"frozen<int32>",
		"list<",
		"list<int32",
		"list<>",
		"map<int32>",
		"map<int32,>",
		"int32 trailing",
		"varint",
		"uint32",
		"list<null>",
	} {
		_, err := ParseType(in)
		assert.Error(t, err, in)
	}
}

func TestParseTypeDescribeRoundTrip(t *testing.T) {
	for _, in := range []string{
		"int8", "decimal", "timestamp",
		"list<timeuuid>", "set<binary>", "map<string,map<int32,set<double>>>",
	} {
		typ, err := ParseType(in)
		require.NoError(t, err)
		assert.Equal(t, in, typ.Describe())

		again, err := ParseType(typ.Describe())
		require.NoError(t, err)
		assert.Equal(t, typ.Describe(), again.Describe())
	}
}
