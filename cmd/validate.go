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
	"fmt"

	"github.com/binaek/cling"
	"github.com/sentriefraud/ruleengine/engine"
)

func addValidateCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("validate", validateCmd).
			WithArgument(cling.NewStringCmdInput("file").
				WithDescription("DSL source file to validate").
				AsArgument(),
			),
	)
}

type validateCmdArgs struct {
	File string `cling-name:"file"`
}

func validateCmd(ctx context.Context, args []string) error {
	input := validateCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	source, err := readFile(input.File)
	if err != nil {
		return err
	}

	if err := engine.ValidateDSL(ctx, string(source)); err != nil {
		return err
	}

	fmt.Println("OK")
	return nil
}
