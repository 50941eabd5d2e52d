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

// valwire inspects values in the client wire format.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/attic-labs/kingpin"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/vortexdb/vortex/store/types"
)

func main() {
	app := kingpin.New("valwire", "Inspect values in the client wire format.")
	app.HelpFlag.Short('h')
	noColor := app.Flag("no-color", "disable colored output").Bool()
	verbose := app.Flag("verbose", "log codec warnings to stderr").Short('v').Bool()

	decodeCmd := app.Command("decode", "Decode a hex-encoded wire value and print it.")
	decodeType := decodeCmd.Flag("type", "type of the encoded value, e.g. list<int32>").Required().String()
	decodeHex := decodeCmd.Arg("hex", "hex bytes of the framed value").Required().String()

	describeCmd := app.Command("describe", "Parse a type spec and print its canonical form.")
	describeType := describeCmd.Arg("type", "type spec, e.g. map<uuid,text>").Required().String()

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *noColor {
		color.NoColor = true
	}
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			app.Fatalf("%v", err)
		}
		defer func() { _ = logger.Sync() }()
		types.SetLogger(logger)
	}

	switch cmd {
	case decodeCmd.FullCommand():
		runDecode(app, *decodeType, *decodeHex)
	case describeCmd.FullCommand():
		runDescribe(app, *describeType)
	}
}

func runDecode(app *kingpin.Application, typeSpec, hexStr string) {
	t, err := types.ParseType(typeSpec)
	if err != nil {
		app.Fatalf("bad type spec: %v", err)
	}

	cleaned := strings.NewReplacer(" ", "", "\t", "", "\n", "").Replace(hexStr)
	buff, err := hex.DecodeString(cleaned)
	if err != nil {
		app.Fatalf("bad hex input: %v", err)
	}

	v, err := types.DecodeValue(t, buff)
	if err != nil {
		app.Fatalf("decode failed: %v", err)
	}

	typeColor := color.New(color.FgCyan)
	fmt.Printf("%s  %s  (%s on the wire)\n",
		typeColor.Sprint(t.Describe()), types.ToString(v), humanize.Bytes(uint64(len(buff))))
}

func runDescribe(app *kingpin.Application, typeSpec string) {
	t, err := types.ParseType(typeSpec)
	if err != nil {
		app.Fatalf("bad type spec: %v", err)
	}
	fmt.Println(t.Describe())
}
