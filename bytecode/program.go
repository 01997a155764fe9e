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

package bytecode

import "github.com/sentriefraud/ruleengine/value"

// FunctionDef is one compiled user-function's entry in the function table.
type FunctionDef struct {
	Name       string
	ParamNames []string
	EntryIP    int
	LocalCount int
}

// RuleDef is one compiled rule's entry in the rule table. The table as a
// whole is stored sorted by descending priority, ties broken by declaration
// order (spec §4.3); that sort is baked in once and is permanent after
// compile — EntryIP/EndIP remain valid regardless of table order because
// sorting reorders only this table, never the instruction vector.
type RuleDef struct {
	Name     string
	Priority int32
	Enabled  bool
	EntryIP  int
	EndIP    int
}

// Program is a complete, self-contained compiled artifact: a constant pool,
// function table, rule table (already priority-sorted), and the flat
// instruction vector all three tables index into.
type Program struct {
	Constants []value.Value
	Functions []FunctionDef
	Rules     []RuleDef
	Code      Instructions
}
