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

package compiler

import (
	"sort"

	"github.com/sentriefraud/ruleengine/ast"
	"github.com/sentriefraud/ruleengine/bytecode"
)

// compileRule lowers one rule declaration to a BeginRule/EndRule-bracketed
// instruction span and appends its RuleDef (spec §4.3).
func (c *Compiler) compileRule(decl *ast.RuleDecl) {
	nameIdx := c.pool.InternString(decl.Name)
	entryIP := len(c.code)
	c.emit(bytecode.BeginRule, nameIdx)

	scope := newScope(nil)
	scope.bind("txn", binding{selector: selectorTxn})
	scope.bind("profile", binding{selector: selectorProfile})

	for _, stmt := range decl.Body.Stmts {
		c.compileStatement(stmt, scope, true)
	}

	c.emit(bytecode.EndRule)
	endIP := len(c.code)

	c.rules = append(c.rules, bytecode.RuleDef{
		Name:     decl.Name,
		Priority: decl.EffectivePriority(),
		Enabled:  decl.IsEnabled(),
		EntryIP:  entryIP,
		EndIP:    endIP,
	})
}

// sortRules reorders rules by descending priority, ties broken by their
// existing (declaration) order — sort.SliceStable preserves that.
func sortRules(rules []bytecode.RuleDef) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
}
