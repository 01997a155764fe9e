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

// Package compiler lowers an *ast.Program into a *bytecode.Program: constant
// pool, function table, rule table, and a flat instruction vector (spec
// §4.3).
package compiler

import (
	stderrors "errors"

	"github.com/sentriefraud/ruleengine/ast"
	"github.com/sentriefraud/ruleengine/bytecode"
	"github.com/sentriefraud/ruleengine/tokens"
	"github.com/sentriefraud/ruleengine/xerr"
)

// recordSelector names which of the two ambient records (txn/profile) an
// identifier is bound to, either directly (the `txn`/`profile` keyword
// itself in a rule body) or via a call-site specialization (a function
// parameter that some caller passed `txn` or `profile` into — see
// variant.go). A plain local carries selectorNone.
type recordSelector int

const (
	selectorNone recordSelector = iota
	selectorTxn
	selectorProfile
)

func (s recordSelector) record() bytecode.Record {
	if s == selectorTxn {
		return bytecode.RecordTxn
	}
	return bytecode.RecordProfile
}

// binding is one entry of a function/rule body's symbol table.
type binding struct {
	selector recordSelector
	slot     int // meaningful only when selector == selectorNone
}

// pendingVariant is a queued, not-yet-compiled specialization of a function
// body; functionIdx indexes the placeholder bytecode.FunctionDef already
// appended to c.functions.
type pendingVariant struct {
	decl        *ast.FunctionDecl
	shape       []recordSelector
	functionIdx int
}

// Compiler lowers one *ast.Program at a time. It is not reusable across
// programs.
type Compiler struct {
	pool  *bytecode.Pool
	code  bytecode.Instructions
	funcs []bytecode.FunctionDef
	rules []bytecode.RuleDef

	funcDecls     map[string]*ast.FunctionDecl
	variantIndex  map[string]int // "name|shape" -> function table index
	pending       []pendingVariant

	err error
}

// Compile lowers prg to a self-contained bytecode.Program. It returns a
// joined *xerr.CompileError-bearing error describing every problem found;
// partial output is never returned on error.
func Compile(prg *ast.Program) (*bytecode.Program, error) {
	c := &Compiler{
		pool:         bytecode.NewPool(),
		funcDecls:    map[string]*ast.FunctionDecl{},
		variantIndex: map[string]int{},
	}
	for _, fn := range prg.Functions {
		if prior, ok := c.funcDecls[fn.Name]; ok {
			c.fail(fn.Pos(), "duplicate function name %q (first declared at %s)", fn.Name, prior.Pos())
			continue
		}
		c.funcDecls[fn.Name] = fn
	}

	seenRules := map[string]*ast.RuleDecl{}
	for _, rule := range prg.Rules {
		if prior, ok := seenRules[rule.Name]; ok {
			c.fail(rule.Pos(), "duplicate rule name %q (first declared at %s)", rule.Name, prior.Pos())
			continue
		}
		seenRules[rule.Name] = rule
		c.compileRule(rule)
	}
	c.drainVariants()

	if c.err != nil {
		return nil, c.err
	}

	sortRules(c.rules)

	return &bytecode.Program{
		Constants: c.pool.Values(),
		Functions: c.funcs,
		Rules:     c.rules,
		Code:      c.code,
	}, nil
}

func (c *Compiler) fail(pos tokens.Range, format string, args ...any) {
	c.err = stderrors.Join(c.err, xerr.ErrCompile(pos, format, args...))
}

func (c *Compiler) emit(op bytecode.Opcode, operands ...int) int {
	pos := len(c.code)
	c.code = append(c.code, bytecode.MakeInstruction(op, operands...)...)
	return pos
}

// patchJump overwrites the 4-byte absolute-target operand of the jump
// instruction at ip with the current end of the code vector.
func (c *Compiler) patchJump(ip int) {
	target := len(c.code)
	opWidth := bytecode.Len(bytecode.Jump) // Jump/JumpIfFalse/JumpIfTrue share one operand shape
	operandOffset := ip + opWidth - 4
	c.code[operandOffset] = byte(target)
	c.code[operandOffset+1] = byte(target >> 8)
	c.code[operandOffset+2] = byte(target >> 16)
	c.code[operandOffset+3] = byte(target >> 24)
}
