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
	"github.com/pkg/errors"
)

// kindsByName maps the textual scalar type names, including the CQL
// aliases, onto kinds.
var kindsByName = map[string]Kind{
	"int8":      Int8Kind,
	"tinyint":   Int8Kind,
	"int16":     Int16Kind,
	"smallint":  Int16Kind,
	"int32":     Int32Kind,
	"int":       Int32Kind,
	"int64":     Int64Kind,
	"bigint":    Int64Kind,
	"float":     FloatKind,
	"double":    DoubleKind,
	"decimal":   DecimalKind,
	"string":    StringKind,
	"text":      StringKind,
	"varchar":   StringKind,
	"bool":      BoolKind,
	"boolean":   BoolKind,
	"timestamp": TimestampKind,
	"binary":    BinaryKind,
	"blob":      BinaryKind,
	"inet":      InetKind,
	"uuid":      UUIDKind,
	"timeuuid":  TimeUUIDKind,
}

// ParseType parses a textual type spec such as "int32", "list<text>" or
// "map<uuid,set<inet>>" into a descriptor. Whitespace between tokens is
// allowed. Malformed input is an error, never a panic.
func ParseType(s string) (*Type, error) {
	p := &typeParser{src: s}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, errors.Errorf("unexpected %q at offset %d in type spec %q", p.src[p.pos:], p.pos, s)
	}
	return t, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) parseType() (*Type, error) {
	name := p.ident()
	if name == "" {
		return nil, errors.Errorf("expected type name at offset %d in %q", p.pos, p.src)
	}

	switch name {
	case "list", "set":
		elem, err := p.parseOneParam()
		if err != nil {
			return nil, err
		}
		if name == "list" {
			return MakeListType(elem), nil
		}
		return MakeSetType(elem), nil
	case "map":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		value, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return MakeMapType(key, value), nil
	default:
		k, ok := kindsByName[name]
		if !ok {
			return nil, errors.Errorf("unknown type name %q in %q", name, p.src)
		}
		return PrimitiveTypeMap[k], nil
	}
}

func (p *typeParser) parseOneParam() (*Type, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	return elem, nil
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *typeParser) ident() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *typeParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return errors.Errorf("expected %q at offset %d in %q", string(c), p.pos, p.src)
	}
	p.pos++
	return nil
}
