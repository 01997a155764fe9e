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

package parser

import (
	"testing"

	"github.com/sentriefraud/ruleengine/ast"
	"github.com/sentriefraud/ruleengine/value"
	"github.com/stretchr/testify/suite"
)

// ParserTestSuite exercises DSL source parsing into an *ast.Program (spec
// §4.2), including the parse-time duplicate-name rejection.
type ParserTestSuite struct {
	suite.Suite
}

func (s *ParserTestSuite) TestParsesRuleWithMetadataAndBody() {
	prg, err := NewFromString(`
rule "high_amount" {
	priority: 100,
	enabled: true,
	if (txn.amount > 1000) {
		setFraudScore(0.8);
	} else {
		setDecision("ALLOW");
	}
}
`, "t.dsl").ParseProgram()
	s.Require().NoError(err)
	s.Require().Len(prg.Rules, 1)

	rule := prg.Rules[0]
	s.Equal("high_amount", rule.Name)
	s.Equal(int32(100), rule.EffectivePriority())
	s.True(rule.IsEnabled())
	s.Require().Len(rule.Body.Stmts, 1)

	ifStmt, ok := rule.Body.Stmts[0].(*ast.IfStmt)
	s.Require().True(ok)
	s.NotNil(ifStmt.Then)
	s.NotNil(ifStmt.Else)
}

func (s *ParserTestSuite) TestRuleWithoutMetadataDefaults() {
	prg, err := NewFromString(`rule "r" { setFraudScore(0.1); }`, "t.dsl").ParseProgram()
	s.Require().NoError(err)
	rule := prg.Rules[0]
	s.Equal(int32(0), rule.EffectivePriority())
	s.True(rule.IsEnabled())
}

func (s *ParserTestSuite) TestParsesFunctionDecl() {
	prg, err := NewFromString(`
function bump(p, t) {
	p.n = p.n + t.amount;
}
`, "t.dsl").ParseProgram()
	s.Require().NoError(err)
	s.Require().Len(prg.Functions, 1)
	fn := prg.Functions[0]
	s.Equal("bump", fn.Name)
	s.Equal([]string{"p", "t"}, fn.Params)
	s.Require().Len(fn.Body.Stmts, 1)

	assign, ok := fn.Body.Stmts[0].(*ast.AssignStmt)
	s.Require().True(ok)
	target, ok := assign.Target.(*ast.FieldExpr)
	s.Require().True(ok)
	s.Equal("n", target.Name)
}

func (s *ParserTestSuite) TestBinaryOperatorPrecedence() {
	prg, err := NewFromString(`rule "r" { if (1 + 2 * 3 == 7) { setFraudScore(1.0); } }`, "t.dsl").ParseProgram()
	s.Require().NoError(err)
	ifStmt := prg.Rules[0].Body.Stmts[0].(*ast.IfStmt)
	eq, ok := ifStmt.Cond.(*ast.BinaryExpr)
	s.Require().True(ok)
	s.Equal("==", eq.Op)

	add, ok := eq.Left.(*ast.BinaryExpr)
	s.Require().True(ok)
	s.Equal("+", add.Op)

	mul, ok := add.Right.(*ast.BinaryExpr)
	s.Require().True(ok)
	s.Equal("*", mul.Op)
}

func (s *ParserTestSuite) TestLiteralKinds() {
	prg, err := NewFromString(`rule "r" { let x = 1; let y = 1.5; let z = "s"; let t = true; let n = null; }`, "t.dsl").ParseProgram()
	s.Require().NoError(err)
	stmts := prg.Rules[0].Body.Stmts
	s.Require().Len(stmts, 5)

	lits := []value.Kind{value.KindInt, value.KindFloat, value.KindStr, value.KindBool, value.KindNull}
	for i, want := range lits {
		let := stmts[i].(*ast.LetStmt)
		lit, ok := let.Value.(*ast.LiteralExpr)
		s.Require().True(ok)
		s.Equal(want, lit.Value.Kind())
	}
}

func (s *ParserTestSuite) TestFunctionCallExpression() {
	prg, err := NewFromString(`rule "r" { setFraudScore(0.5); }`, "t.dsl").ParseProgram()
	s.Require().NoError(err)
	exprStmt := prg.Rules[0].Body.Stmts[0].(*ast.ExprStmt)
	call, ok := exprStmt.Value.(*ast.CallExpr)
	s.Require().True(ok)
	s.Equal("setFraudScore", call.Name)
	s.Require().Len(call.Args, 1)
}

func (s *ParserTestSuite) TestDuplicateRuleNameIsParseError() {
	_, err := NewFromString(`
rule "r" { setFraudScore(0.1); }
rule "r" { setFraudScore(0.2); }
`, "t.dsl").ParseProgram()
	s.Error(err)
}

func (s *ParserTestSuite) TestDuplicateFunctionNameIsParseError() {
	_, err := NewFromString(`
function f() { return 1; }
function f() { return 2; }
`, "t.dsl").ParseProgram()
	s.Error(err)
}

func (s *ParserTestSuite) TestUnexpectedTopLevelTokenIsParseError() {
	_, err := NewFromString(`let x = 1;`, "t.dsl").ParseProgram()
	s.Error(err)
}

func (s *ParserTestSuite) TestUnterminatedBlockIsParseError() {
	_, err := NewFromString(`rule "r" { setFraudScore(0.1);`, "t.dsl").ParseProgram()
	s.Error(err)
}

func TestParserTestSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}
