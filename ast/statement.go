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

// BlockStmt is a `{ ... }` sequence of statements.
type BlockStmt struct {
	Range tokens.Range
	Stmts []Statement
}

func (b *BlockStmt) String() string    { return "block" }
func (b *BlockStmt) Pos() tokens.Range { return b.Range }
func (b *BlockStmt) stmtNode()         {}

// LetStmt is `let IDENT = expr;` — introduces a new function-local binding.
type LetStmt struct {
	Range tokens.Range
	Name  string
	Value Expression
}

func (s *LetStmt) String() string    { return "let " + s.Name }
func (s *LetStmt) Pos() tokens.Range { return s.Range }
func (s *LetStmt) stmtNode()         {}

// IfStmt is `if (cond) block (else (block|ifStmt))?`.
type IfStmt struct {
	Range tokens.Range
	Cond  Expression
	Then  *BlockStmt
	// Else is either *BlockStmt, *IfStmt, or nil.
	Else Statement
}

func (s *IfStmt) String() string    { return "if" }
func (s *IfStmt) Pos() tokens.Range { return s.Range }
func (s *IfStmt) stmtNode()         {}

// ReturnStmt is `return expr?;`. Inside a function this yields a value (or
// null, for a bare `return;`); at rule scope it short-circuits the whole
// execution (spec §4.3/§4.4).
type ReturnStmt struct {
	Range tokens.Range
	Value Expression // nil for a bare `return;`
}

func (s *ReturnStmt) String() string    { return "return" }
func (s *ReturnStmt) Pos() tokens.Range { return s.Range }
func (s *ReturnStmt) stmtNode()         {}

// AssignStmt is `txn.field = expr;` or `profile.field = expr;`. The lvalue
// is parsed as a general expression (an identifier/field chain); the
// compiler rejects anything but a FieldExpr rooted at txn/profile (spec
// §4.4 — "assignment to non-record lvalue" is a compile error, not a parse
// error).
type AssignStmt struct {
	Range  tokens.Range
	Target Expression
	Value  Expression
}

func (s *AssignStmt) String() string    { return "assign" }
func (s *AssignStmt) Pos() tokens.Range { return s.Range }
func (s *AssignStmt) stmtNode()         {}

// ExprStmt is an expression evaluated for its side effects (typically a
// built-in action call), its result discarded.
type ExprStmt struct {
	Range tokens.Range
	Value Expression
}

func (s *ExprStmt) String() string    { return "expr" }
func (s *ExprStmt) Pos() tokens.Range { return s.Range }
func (s *ExprStmt) stmtNode()         {}
