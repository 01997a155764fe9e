// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/binaek/cling"
	"github.com/fatih/structs"
	"github.com/sentriefraud/ruleengine/engine"
)

func addRulesCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("rules", rulesCmd).
			WithArgument(cling.NewStringCmdInput("file").
				WithDescription("Bytecode container or DSL source file to inspect").
				AsArgument(),
			).
			WithFlag(cling.
				NewStringCmdInput("output").
				WithDefault("table").
				WithValidator(cling.NewEnumValidator("table", "json")).
				WithDescription("Output format to use. One of: table, json").
				AsFlag(),
			),
	)
}

type rulesCmdArgs struct {
	File   string `cling-name:"file"`
	Output string `cling-name:"output"`
}

func rulesCmd(ctx context.Context, args []string) error {
	input := rulesCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	data, err := readFile(input.File)
	if err != nil {
		return err
	}

	eng, err := loadEngine(ctx, data, engine.DefaultConfig())
	if err != nil {
		return err
	}
	defer eng.Close()

	rules := eng.RulesMetadata()

	if input.Output == "json" {
		maps := make([]map[string]any, 0, len(rules))
		for _, r := range rules {
			maps = append(maps, structs.Map(r))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(maps)
	}

	for _, r := range rules {
		state := "enabled"
		if !r.Enabled {
			state = "disabled"
		}
		fmt.Printf("  %-30s priority=%-6d %s\n", r.Name, r.Priority, state)
	}
	return nil
}
