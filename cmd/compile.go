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
	"os"

	"github.com/binaek/cling"
	"github.com/pkg/errors"
	"github.com/sentriefraud/ruleengine/engine"
)

func addCompileCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("compile", compileCmd).
			WithArgument(cling.NewStringCmdInput("file").
				WithDescription("DSL source file to compile").
				AsArgument(),
			).
			WithFlag(cling.
				NewStringCmdInput("out").
				WithDefault("").
				WithDescription("Bytecode output path; defaults to <file> with a .rbc extension").
				AsFlag(),
			).
			WithFlag(cling.
				NewStringCmdInput("config").
				WithDefault("").
				WithDescription("Engine config TOML to load VM limits from").
				AsFlag(),
			),
	)
}

type compileCmdArgs struct {
	File   string `cling-name:"file"`
	Out    string `cling-name:"out"`
	Config string `cling-name:"config"`
}

func compileCmd(ctx context.Context, args []string) error {
	input := compileCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	source, err := readFile(input.File)
	if err != nil {
		return err
	}

	cfg, err := engine.LoadConfig(input.Config)
	if err != nil {
		return err
	}

	eng, err := engine.FromDSL(ctx, string(source), cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	out := input.Out
	if out == "" {
		out = input.File + ".rbc"
	}

	data, err := eng.ToBytecode()
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %q", out)
	}

	return nil
}
