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
	"testing"

	"github.com/sentriefraud/ruleengine/ast"
	"github.com/sentriefraud/ruleengine/bytecode"
	"github.com/sentriefraud/ruleengine/parser"
	"github.com/stretchr/testify/suite"
)

// CompilerTestSuite exercises Compile's lowering and its compile-time
// checks (spec §4.3/§9).
type CompilerTestSuite struct {
	suite.Suite
}

func (s *CompilerTestSuite) parse(src string) *ast.Program {
	p := parser.NewFromString(src, "test.dsl")
	prg, err := p.ParseProgram()
	s.Require().NoError(err)
	return prg
}

func (s *CompilerTestSuite) TestCompilesSimpleRuleToValidBytecode() {
	prg := s.parse(`rule "r" { priority: 100, if (txn.amount > 1000) { setFraudScore(0.8); } }`)
	out, err := Compile(prg)
	s.Require().NoError(err)
	s.Require().NoError(bytecode.Validate(out))
	s.Require().Len(out.Rules, 1)
	s.Equal("r", out.Rules[0].Name)
	s.Equal(int32(100), out.Rules[0].Priority)
	s.True(out.Rules[0].Enabled)
}

func (s *CompilerTestSuite) TestPriorityOrderingIsBakedIntoRuleTable() {
	prg := s.parse(`
rule "low" { priority: 1, setFraudScore(0.1); }
rule "high" { priority: 100, setFraudScore(0.2); }
`)
	out, err := Compile(prg)
	s.Require().NoError(err)
	s.Require().Len(out.Rules, 2)
	s.Equal("high", out.Rules[0].Name)
	s.Equal("low", out.Rules[1].Name)
}

func (s *CompilerTestSuite) TestDisabledRuleDefaultsEnabledTrue() {
	prg := s.parse(`rule "r" { setFraudScore(0.1); }`)
	out, err := Compile(prg)
	s.Require().NoError(err)
	s.True(out.Rules[0].Enabled)

	prg = s.parse(`rule "r" { enabled: false, setFraudScore(0.1); }`)
	out, err = Compile(prg)
	s.Require().NoError(err)
	s.False(out.Rules[0].Enabled)
}

func (s *CompilerTestSuite) TestDuplicateRuleNameIsCompileError() {
	prg := &ast.Program{
		Rules: []*ast.RuleDecl{
			{Name: "r", Body: &ast.BlockStmt{}},
			{Name: "r", Body: &ast.BlockStmt{}},
		},
	}
	_, err := Compile(prg)
	s.Error(err)
}

func (s *CompilerTestSuite) TestDuplicateFunctionNameIsCompileError() {
	prg := &ast.Program{
		Functions: []*ast.FunctionDecl{
			{Name: "f", Params: nil, Body: &ast.BlockStmt{}},
			{Name: "f", Params: nil, Body: &ast.BlockStmt{}},
		},
	}
	_, err := Compile(prg)
	s.Error(err)
}

func (s *CompilerTestSuite) TestFunctionCallCompiles() {
	prg := s.parse(`
function bump(p, t) {
	p.n = p.n + t.amount;
}
rule "r" {
	bump(profile, txn);
}
`)
	out, err := Compile(prg)
	s.Require().NoError(err)
	s.Require().NoError(bytecode.Validate(out))
	s.Require().Len(out.Functions, 1)
	s.Equal("bump", out.Functions[0].Name)
	s.Equal([]string{"p", "t"}, out.Functions[0].ParamNames)
}

func TestCompilerTestSuite(t *testing.T) {
	suite.Run(t, new(CompilerTestSuite))
}
