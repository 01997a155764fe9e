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
	"github.com/sentriefraud/ruleengine/value"
)

// compileExpression lowers e, leaving its result on the value stack, and
// reports whether it actually pushed one (false only for a builtin action
// call used as a top-level expression statement — Emit* opcodes append to
// the action queue rather than the value stack).
func (c *Compiler) compileExpression(e ast.Expression, sc *scope) bool {
	switch expr := e.(type) {
	case *ast.LiteralExpr:
		c.emit(bytecode.LoadConst, c.pool.Intern(expr.Value))
		return true

	case *ast.IdentExpr:
		b, ok := sc.lookup(expr.Name)
		if !ok {
			c.fail(expr.Pos(), "undefined identifier %q", expr.Name)
			return true
		}
		if b.selector != selectorNone {
			c.fail(expr.Pos(), "%q names a record and can only be used for field access", expr.Name)
			c.emit(bytecode.LoadConst, c.pool.Intern(value.Null))
			return true
		}
		c.emit(bytecode.LoadLocal, b.slot)
		return true

	case *ast.FieldExpr:
		c.compileFieldRead(expr, sc)
		return true

	case *ast.UnaryExpr:
		c.compileExpression(expr.Operand, sc)
		switch expr.Op {
		case "-":
			c.emit(bytecode.Neg)
		case "!":
			c.emit(bytecode.Not)
		default:
			c.fail(expr.Pos(), "unsupported unary operator %q", expr.Op)
		}
		return true

	case *ast.BinaryExpr:
		c.compileBinary(expr, sc)
		return true

	case *ast.CallExpr:
		return c.compileCall(expr, sc)

	default:
		c.fail(e.Pos(), "unsupported expression %T", e)
		return true
	}
}

func (c *Compiler) compileFieldRead(expr *ast.FieldExpr, sc *scope) {
	base, ok := expr.Target.(*ast.IdentExpr)
	if !ok {
		c.fail(expr.Pos(), "nested field access is not supported")
		return
	}
	b, ok := sc.lookup(base.Name)
	if !ok {
		c.fail(expr.Pos(), "undefined identifier %q", base.Name)
		return
	}
	if b.selector == selectorNone {
		c.fail(expr.Pos(), "field access requires a record identifier, got %q", base.Name)
		return
	}
	nameIdx := c.pool.InternString(expr.Name)
	c.emit(bytecode.LoadField, int(b.selector.record()), nameIdx)
}

var binaryOps = map[string]bytecode.Opcode{
	"+": bytecode.Add, "-": bytecode.Sub, "*": bytecode.Mul, "/": bytecode.Div, "%": bytecode.Mod,
	"==": bytecode.Eq, "!=": bytecode.Ne, "<": bytecode.Lt, "<=": bytecode.Le, ">": bytecode.Gt, ">=": bytecode.Ge,
}

func (c *Compiler) compileBinary(expr *ast.BinaryExpr, sc *scope) {
	switch expr.Op {
	case "&&":
		c.compileAnd(expr, sc)
		return
	case "||":
		c.compileOr(expr, sc)
		return
	}
	op, ok := binaryOps[expr.Op]
	if !ok {
		c.fail(expr.Pos(), "unsupported binary operator %q", expr.Op)
		return
	}
	c.compileExpression(expr.Left, sc)
	c.compileExpression(expr.Right, sc)
	c.emit(op)
}

// compileAnd lowers `a && b` via JumpIfFalse short-circuiting: if a is
// falsy, the result is Bool(false) without evaluating b; otherwise the
// result is b's truthiness, coerced to Bool via a double Not (spec §4.3).
func (c *Compiler) compileAnd(expr *ast.BinaryExpr, sc *scope) {
	c.compileExpression(expr.Left, sc)
	skip := c.emit(bytecode.JumpIfFalse, 0)
	c.compileExpression(expr.Right, sc)
	c.emit(bytecode.Not)
	c.emit(bytecode.Not)
	end := c.emit(bytecode.Jump, 0)
	c.patchJump(skip)
	c.emit(bytecode.LoadConst, c.pool.Intern(value.Bool(false)))
	c.patchJump(end)
}

// compileOr lowers `a || b` symmetrically to compileAnd.
func (c *Compiler) compileOr(expr *ast.BinaryExpr, sc *scope) {
	c.compileExpression(expr.Left, sc)
	skip := c.emit(bytecode.JumpIfTrue, 0)
	c.compileExpression(expr.Right, sc)
	c.emit(bytecode.Not)
	c.emit(bytecode.Not)
	end := c.emit(bytecode.Jump, 0)
	c.patchJump(skip)
	c.emit(bytecode.LoadConst, c.pool.Intern(value.Bool(true)))
	c.patchJump(end)
}

// compileCall lowers a reserved action call to its Emit* opcode or a user
// function call to Call, returning whether it leaves a value on the stack.
func (c *Compiler) compileCall(expr *ast.CallExpr, sc *scope) bool {
	if b, ok := builtins[expr.Name]; ok {
		if len(expr.Args) != b.arity {
			c.fail(expr.Pos(), "%s expects %d argument(s), got %d", expr.Name, b.arity, len(expr.Args))
		}
		for _, arg := range expr.Args {
			c.compileExpression(arg, sc)
		}
		c.emit(b.op)
		return false
	}

	shape := argShape(expr.Args, sc)
	fnIdx := c.requestVariant(expr.Name, shape, expr.Pos())
	for i, arg := range expr.Args {
		if i < len(shape) && shape[i] != selectorNone {
			// Never read back by the callee (it resolves the parameter via
			// its record-selector binding instead) — push a placeholder so
			// Call's stack accounting still lines up with argc.
			c.emit(bytecode.LoadConst, c.pool.Intern(value.Null))
			continue
		}
		c.compileExpression(arg, sc)
	}
	c.emit(bytecode.Call, fnIdx, len(expr.Args))
	return true
}
