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
	"strconv"
	"strings"

	"github.com/sentriefraud/ruleengine/ast"
	"github.com/sentriefraud/ruleengine/bytecode"
	"github.com/sentriefraud/ruleengine/tokens"
)

// requestVariant returns the function-table index for name specialized to
// shape, compiling a fresh variant the first time this (name, shape) pair
// is seen. shape[i] is the record selector the i'th call argument resolved
// to at compile time, or selectorNone for an ordinary value argument — see
// DESIGN.md's function-specialization decision for why it exists (spec
// example S5: a function parameter aliasing `txn`/`profile`).
func (c *Compiler) requestVariant(name string, shape []recordSelector, pos tokens.Range) int {
	decl, ok := c.funcDecls[name]
	if !ok {
		c.fail(pos, "call to undeclared function %q", name)
		return 0
	}
	if len(shape) != len(decl.Params) {
		c.fail(pos, "function %q expects %d argument(s), got %d", name, len(decl.Params), len(shape))
		return 0
	}

	key := variantKey(name, shape)
	if idx, ok := c.variantIndex[key]; ok {
		return idx
	}

	idx := len(c.funcs)
	c.funcs = append(c.funcs, bytecode.FunctionDef{
		Name:       name,
		ParamNames: decl.Params,
		EntryIP:    -1, // patched once compileVariant runs
		LocalCount: 0,
	})
	c.variantIndex[key] = idx
	c.pending = append(c.pending, pendingVariant{decl: decl, shape: shape, functionIdx: idx})
	return idx
}

func variantKey(name string, shape []recordSelector) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, sel := range shape {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(int(sel)))
	}
	return sb.String()
}

// drainVariants compiles every queued function specialization, including
// ones discovered while compiling an earlier one (nested or mutually
// recursive calls), until none remain.
func (c *Compiler) drainVariants() {
	for len(c.pending) > 0 {
		pv := c.pending[0]
		c.pending = c.pending[1:]
		c.compileVariant(pv)
	}
}

func (c *Compiler) compileVariant(pv pendingVariant) {
	sc := &scope{names: map[string]binding{}, nextSlot: len(pv.decl.Params)}
	for i, paramName := range pv.decl.Params {
		if pv.shape[i] != selectorNone {
			sc.names[paramName] = binding{selector: pv.shape[i]}
		} else {
			sc.names[paramName] = binding{selector: selectorNone, slot: i}
		}
	}

	c.funcs[pv.functionIdx].EntryIP = len(c.code)

	for _, stmt := range pv.decl.Body.Stmts {
		c.compileStatement(stmt, sc, false)
	}
	// Implicit fallthrough: a function whose body doesn't end in an
	// explicit `return` yields Null to its caller.
	c.emit(bytecode.ReturnVoid)

	c.funcs[pv.functionIdx].LocalCount = sc.nextSlot
}

// argShape computes the record-selector shape of a call's argument list:
// an argument resolves to a selector when it's an identifier already bound
// (directly or transitively) to one of the two ambient records.
func argShape(args []ast.Expression, sc *scope) []recordSelector {
	shape := make([]recordSelector, len(args))
	for i, arg := range args {
		ident, ok := arg.(*ast.IdentExpr)
		if !ok {
			continue
		}
		if b, ok := sc.lookup(ident.Name); ok {
			shape[i] = b.selector
		}
	}
	return shape
}
