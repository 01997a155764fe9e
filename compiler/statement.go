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
	"github.com/sentriefraud/ruleengine/ast"
	"github.com/sentriefraud/ruleengine/bytecode"
)

// compileStatement lowers one statement. ruleScope is true while compiling
// a rule body (where `return` lowers to Halt) and false inside a function
// body (where it lowers to Return/ReturnVoid).
func (c *Compiler) compileStatement(stmt ast.Statement, sc *scope, ruleScope bool) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		c.compileExpression(s.Value, sc)
		slot := sc.declareLocal(s.Name)
		c.emit(bytecode.StoreLocal, slot)

	case *ast.IfStmt:
		c.compileExpression(s.Cond, sc)
		jumpIfFalse := c.emit(bytecode.JumpIfFalse, 0)
		c.compileBlock(s.Then, sc, ruleScope)

		if s.Else != nil {
			jumpOverElse := c.emit(bytecode.Jump, 0)
			c.patchJump(jumpIfFalse)
			c.compileStatement(s.Else, sc, ruleScope)
			c.patchJump(jumpOverElse)
		} else {
			c.patchJump(jumpIfFalse)
		}

	case *ast.BlockStmt:
		c.compileBlock(s, sc, ruleScope)

	case *ast.ReturnStmt:
		c.compileReturn(s, sc, ruleScope)

	case *ast.AssignStmt:
		c.compileAssign(s, sc)

	case *ast.ExprStmt:
		if c.compileExpression(s.Value, sc) {
			c.emit(bytecode.Pop)
		}

	default:
		c.fail(stmt.Pos(), "unsupported statement %T", stmt)
	}
}

func (c *Compiler) compileBlock(block *ast.BlockStmt, sc *scope, ruleScope bool) {
	for _, stmt := range block.Stmts {
		c.compileStatement(stmt, sc, ruleScope)
	}
}

func (c *Compiler) compileReturn(s *ast.ReturnStmt, sc *scope, ruleScope bool) {
	if ruleScope {
		if s.Value != nil {
			if c.compileExpression(s.Value, sc) {
				c.emit(bytecode.Pop)
			}
		}
		c.emit(bytecode.Halt)
		return
	}
	if s.Value == nil {
		c.emit(bytecode.ReturnVoid)
		return
	}
	c.compileExpression(s.Value, sc)
	c.emit(bytecode.Return)
}

// compileAssign lowers `target.field = expr;`. The target's base must
// resolve to a record-bound identifier (`txn`, `profile`, or a function
// parameter call-site-specialized to one of them) — any other lvalue shape
// is a compile error (spec §4.4).
func (c *Compiler) compileAssign(s *ast.AssignStmt, sc *scope) {
	field, ok := s.Target.(*ast.FieldExpr)
	if !ok {
		c.fail(s.Pos(), "assignment target must be a record field, got %s", s.Target)
		return
	}
	base, ok := field.Target.(*ast.IdentExpr)
	if !ok {
		c.fail(s.Pos(), "nested field assignment is not supported")
		return
	}
	b, ok := sc.lookup(base.Name)
	if !ok {
		c.fail(s.Pos(), "undefined identifier %q", base.Name)
		return
	}
	if b.selector == selectorNone {
		c.fail(s.Pos(), "assignment to non-record lvalue %q", base.Name)
		return
	}

	c.compileExpression(s.Value, sc)
	nameIdx := c.pool.InternString(field.Name)
	c.emit(bytecode.StoreField, int(b.selector.record()), nameIdx)
}
