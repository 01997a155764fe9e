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

import (
	"github.com/sentriefraud/ruleengine/tokens"
	"github.com/sentriefraud/ruleengine/value"
)

// LiteralExpr is an Int/Float/Str/Bool/Null literal.
type LiteralExpr struct {
	Range tokens.Range
	Value value.Value
}

func (e *LiteralExpr) String() string    { return e.Value.String() }
func (e *LiteralExpr) Pos() tokens.Range { return e.Range }
func (e *LiteralExpr) exprNode()         {}

// IdentExpr is a bare identifier reference: a local variable, or one of the
// reserved bindings `txn`/`profile`.
type IdentExpr struct {
	Range tokens.Range
	Name  string
}

func (e *IdentExpr) String() string    { return e.Name }
func (e *IdentExpr) Pos() tokens.Range { return e.Range }
func (e *IdentExpr) exprNode()         {}

// FieldExpr is `target.Name`, e.g. `txn.amount`.
type FieldExpr struct {
	Range  tokens.Range
	Target Expression
	Name   string
}

func (e *FieldExpr) String() string    { return e.Target.String() + "." + e.Name }
func (e *FieldExpr) Pos() tokens.Range { return e.Range }
func (e *FieldExpr) exprNode()         {}

// UnaryExpr is `!expr` or `-expr`.
type UnaryExpr struct {
	Range   tokens.Range
	Op      string
	Operand Expression
}

func (e *UnaryExpr) String() string    { return e.Op + e.Operand.String() }
func (e *UnaryExpr) Pos() tokens.Range { return e.Range }
func (e *UnaryExpr) exprNode()         {}

// BinaryExpr covers all binary operators: arithmetic, comparison, and the
// short-circuiting logical operators (&&, ||).
type BinaryExpr struct {
	Range tokens.Range
	Op    string
	Left  Expression
	Right Expression
}

func (e *BinaryExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op + " " + e.Right.String() + ")"
}
func (e *BinaryExpr) Pos() tokens.Range { return e.Range }
func (e *BinaryExpr) exprNode()         {}

// CallExpr is `name(args...)` — either a built-in action call
// (createCase/createComment/sendAuthAdvise/setFraudScore/setDecision) or a
// call to a user-declared function.
type CallExpr struct {
	Range tokens.Range
	Name  string
	Args  []Expression
}

func (e *CallExpr) String() string    { return e.Name + "(...)" }
func (e *CallExpr) Pos() tokens.Range { return e.Range }
func (e *CallExpr) exprNode()         {}
