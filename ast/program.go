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

package ast

import "github.com/sentriefraud/ruleengine/tokens"

// Program is the parse result of one DSL source file: every function and
// rule declaration in source order.
type Program struct {
	Reference string // filename or other source identifier, for diagnostics
	Functions []*FunctionDecl
	Rules     []*RuleDecl
}

// FunctionDecl is `function NAME(params) { body }`.
type FunctionDecl struct {
	Range  tokens.Range
	Name   string
	Params []string
	Body   *BlockStmt
}

func (f *FunctionDecl) String() string    { return "function " + f.Name }
func (f *FunctionDecl) Pos() tokens.Range { return f.Range }

// RuleDecl is `rule "NAME" { metadata* statement* }`.
type RuleDecl struct {
	Range       tokens.Range
	Name        string
	Priority    int32
	HasPriority bool
	Enabled     bool
	HasEnabled  bool
	Body        *BlockStmt
}

func (r *RuleDecl) String() string    { return "rule " + r.Name }
func (r *RuleDecl) Pos() tokens.Range { return r.Range }

// EffectivePriority returns the declared priority, or 0 when the rule didn't
// declare one (spec §4.3: undeclared priority behaves as priority 0).
func (r *RuleDecl) EffectivePriority() int32 {
	if r.HasPriority {
		return r.Priority
	}
	return 0
}

// IsEnabled returns the declared enabled flag, defaulting to true (spec §4.4:
// a rule is only skipped when `enabled: false` is explicit).
func (r *RuleDecl) IsEnabled() bool {
	if r.HasEnabled {
		return r.Enabled
	}
	return true
}
