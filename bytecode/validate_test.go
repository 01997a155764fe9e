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

import (
	"testing"

	"github.com/sentriefraud/ruleengine/value"
	"github.com/stretchr/testify/suite"
)

// ValidateTestSuite exercises Validate's rejection of malformed programs a
// decoder must refuse to load (spec §6).
type ValidateTestSuite struct {
	suite.Suite
}

func (s *ValidateTestSuite) minimalValidProgram() *Program {
	pool := NewPool()
	idx := pool.Intern(value.Int(1))
	code := Instructions{}
	code = append(code, MakeInstruction(LoadConst, idx)...)
	code = append(code, MakeInstruction(Halt)...)
	return &Program{Constants: pool.Values(), Code: code}
}

func (s *ValidateTestSuite) TestAcceptsWellFormedProgram() {
	s.NoError(Validate(s.minimalValidProgram()))
}

func (s *ValidateTestSuite) TestRejectsUnknownOpcode() {
	prg := s.minimalValidProgram()
	prg.Code = Instructions{0xFE}
	s.Error(Validate(prg))
}

func (s *ValidateTestSuite) TestRejectsOutOfRangeConstantIndex() {
	prg := &Program{Code: MakeInstruction(LoadConst, 5)}
	s.Error(Validate(prg))
}

func (s *ValidateTestSuite) TestRejectsOutOfRangeJumpTarget() {
	prg := &Program{Code: MakeInstruction(Jump, 999)}
	s.Error(Validate(prg))
}

func (s *ValidateTestSuite) TestRejectsJumpTargetEqualToCodeLen() {
	// A target exactly at codeLen points past the last valid instruction
	// byte and must be rejected, not just targets genuinely out of range.
	code := MakeInstruction(Jump, 0)
	code[1] = byte(len(code))
	prg := &Program{Code: code}
	s.Error(Validate(prg))
}

func (s *ValidateTestSuite) TestAcceptsJumpTargetAtLastValidByte() {
	code := MakeInstruction(Jump, 0)
	code = append(code, MakeInstruction(Halt)...)
	target := len(code) - Len(Halt)
	code[1] = byte(target)
	code[2] = byte(target >> 8)
	code[3] = byte(target >> 16)
	code[4] = byte(target >> 24)
	prg := &Program{Code: code}
	s.NoError(Validate(prg))
}

func (s *ValidateTestSuite) TestRejectsUnknownRecordSelector() {
	pool := NewPool()
	idx := pool.InternString("field")
	prg := &Program{
		Constants: pool.Values(),
		Code:      MakeInstruction(LoadField, 7, idx),
	}
	s.Error(Validate(prg))
}

func (s *ValidateTestSuite) TestRejectsCallArityMismatch() {
	pool := NewPool()
	fn := FunctionDef{Name: "f", ParamNames: []string{"a", "b"}, EntryIP: 0, LocalCount: 2}
	code := MakeInstruction(Call, 0, 1) // encoded argc=1, function wants 2
	prg := &Program{Constants: pool.Values(), Functions: []FunctionDef{fn}, Code: code}
	s.Error(Validate(prg))
}

func (s *ValidateTestSuite) TestRejectsCallToUnknownFunction() {
	prg := &Program{Code: MakeInstruction(Call, 0, 0)}
	s.Error(Validate(prg))
}

func (s *ValidateTestSuite) TestRejectsTruncatedInstruction() {
	prg := &Program{Code: Instructions{byte(LoadConst), 0x01}} // LoadConst wants a 2-byte operand
	s.Error(Validate(prg))
}

func TestValidateTestSuite(t *testing.T) {
	suite.Run(t, new(ValidateTestSuite))
}
