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

func addExecCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("exec", execCmd).
			WithArgument(cling.NewStringCmdInput("file").
				WithDescription("Bytecode container or DSL source file to execute").
				AsArgument(),
			).
			WithFlag(cling.
				NewStringCmdInput("txn").
				WithDefault("{}").
				WithDescription("Transaction record, as a JSON object").
				AsFlag(),
			).
			WithFlag(cling.
				NewStringCmdInput("profile").
				WithDefault("{}").
				WithDescription("User profile record, as a JSON object").
				AsFlag(),
			).
			WithFlag(cling.
				NewStringCmdInput("output").
				WithDefault("table").
				WithValidator(cling.NewEnumValidator("table", "json")).
				WithDescription("Output format to use. One of: table, json").
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

type execCmdArgs struct {
	File    string `cling-name:"file"`
	Txn     string `cling-name:"txn"`
	Profile string `cling-name:"profile"`
	Output  string `cling-name:"output"`
	Config  string `cling-name:"config"`
}

func execCmd(ctx context.Context, args []string) error {
	input := execCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	data, err := readFile(input.File)
	if err != nil {
		return err
	}

	cfg, err := engine.LoadConfig(input.Config)
	if err != nil {
		return err
	}

	eng, err := loadEngine(ctx, data, cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	txn, err := recordFromJSON(input.Txn)
	if err != nil {
		return err
	}
	profile, err := recordFromJSON(input.Profile)
	if err != nil {
		return err
	}

	result, err := eng.Execute(ctx, txn, profile)
	if err != nil {
		return err
	}

	out := toExecOutput(result)
	if input.Output == "json" {
		formatExecJSON(out)
	} else {
		formatExecTable(out)
	}

	return nil
}

type actionOutput struct {
	Kind     string
	Severity string `json:",omitempty"`
	Reason   string `json:",omitempty"`
	Comment  string `json:",omitempty"`
	Channel  string `json:",omitempty"`
	Template string `json:",omitempty"`
	Score    float64
	Decision string `json:",omitempty"`
	Name     string `json:",omitempty"`
}

type ruleExecOutput struct {
	Name     string
	Duration string
	Err      string `json:",omitempty"`
}

type execOutput struct {
	ExecutionID    string
	Transaction    map[string]any
	Profile        map[string]any
	Actions        []actionOutput
	ExecutedRules  []ruleExecOutput
	SkippedRules   []string
	TotalDuration  string
	ShortCircuited bool
}

func toExecOutput(result *engine.ExecutionResult) execOutput {
	actions := make([]actionOutput, 0, len(result.Actions))
	for _, a := range result.Actions {
		actions = append(actions, actionOutput{
			Kind:     a.Kind.String(),
			Severity: a.Severity,
			Reason:   a.Reason,
			Comment:  a.Comment,
			Channel:  a.Channel,
			Template: a.Template,
			Score:    a.Score,
			Decision: a.Decision,
			Name:     a.Name,
		})
	}

	executed := make([]ruleExecOutput, 0, len(result.ExecutedRules))
	for _, r := range result.ExecutedRules {
		errStr := ""
		if r.Err != nil {
			errStr = r.Err.Error()
		}
		executed = append(executed, ruleExecOutput{Name: r.Name, Duration: r.Duration.String(), Err: errStr})
	}

	return execOutput{
		ExecutionID:    result.ExecutionID.String(),
		Transaction:    recordToMap(result.Transaction),
		Profile:        recordToMap(result.Profile),
		Actions:        actions,
		ExecutedRules:  executed,
		SkippedRules:   result.SkippedRules,
		TotalDuration:  result.TotalDuration.String(),
		ShortCircuited: result.ShortCircuited,
	}
}

func formatExecJSON(out execOutput) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(structs.Map(out))
}

func formatExecTable(out execOutput) {
	fmt.Printf("Execution:       %s\n", out.ExecutionID)
	fmt.Printf("Duration:        %s\n", out.TotalDuration)
	fmt.Printf("Short-circuited: %t\n", out.ShortCircuited)
	fmt.Println()

	fmt.Println("Executed rules:")
	for _, r := range out.ExecutedRules {
		if r.Err != "" {
			fmt.Printf("  ⨯ %s (%s): %s\n", r.Name, r.Duration, r.Err)
			continue
		}
		fmt.Printf("  ✓ %s (%s)\n", r.Name, r.Duration)
	}
	if len(out.SkippedRules) > 0 {
		fmt.Println()
		fmt.Println("Skipped rules:")
		for _, name := range out.SkippedRules {
			fmt.Printf("  • %s\n", name)
		}
	}

	if len(out.Actions) > 0 {
		fmt.Println()
		fmt.Println("Actions:")
		for _, a := range out.Actions {
			fmt.Printf("  - %s\n", a.Kind)
		}
	}
}
