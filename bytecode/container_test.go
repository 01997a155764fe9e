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

// ContainerTestSuite exercises the binary container's round-trip and its
// rejection of malformed input (spec §6).
type ContainerTestSuite struct {
	suite.Suite
}

func (s *ContainerTestSuite) sampleProgram() *Program {
	pool := NewPool()
	fieldIdx := pool.InternString("amount")
	litIdx := pool.Intern(value.Float(1000))

	code := Instructions{}
	code = append(code, MakeInstruction(BeginRule, 0)...)
	code = append(code, MakeInstruction(LoadField, int(RecordTxn), fieldIdx)...)
	code = append(code, MakeInstruction(LoadConst, litIdx)...)
	code = append(code, MakeInstruction(Gt)...)
	jumpIP := len(code)
	code = append(code, MakeInstruction(JumpIfFalse, 0)...)
	code = append(code, MakeInstruction(EmitSetFraudScore)...)
	target := len(code)
	code[jumpIP+1] = byte(target)
	code[jumpIP+2] = byte(target >> 8)
	code[jumpIP+3] = byte(target >> 16)
	code[jumpIP+4] = byte(target >> 24)
	code = append(code, MakeInstruction(EndRule)...)
	code = append(code, MakeInstruction(Halt)...)

	return &Program{
		Constants: pool.Values(),
		Functions: nil,
		Rules: []RuleDef{
			{Name: "r", Priority: 100, Enabled: true, EntryIP: 0, EndIP: len(code)},
		},
		Code: code,
	}
}

func (s *ContainerTestSuite) TestRoundTrip() {
	prg := s.sampleProgram()
	data, err := Marshal(prg)
	s.Require().NoError(err)

	got, err := Unmarshal(data)
	s.Require().NoError(err)
	s.Equal(prg.Constants, got.Constants)
	s.Equal(prg.Rules, got.Rules)
	s.Equal([]byte(prg.Code), []byte(got.Code))
}

func (s *ContainerTestSuite) TestRejectsBadMagic() {
	data, err := Marshal(s.sampleProgram())
	s.Require().NoError(err)
	data[0] = 'X'
	_, err = Unmarshal(data)
	s.Error(err)
}

func (s *ContainerTestSuite) TestRejectsUnsupportedVersion() {
	data, err := Marshal(s.sampleProgram())
	s.Require().NoError(err)
	// version is the two bytes right after the 4-byte magic.
	data[4], data[5] = 0xFF, 0xFF
	_, err = Unmarshal(data)
	s.Error(err)
}

func (s *ContainerTestSuite) TestRejectsTruncatedInput() {
	data, err := Marshal(s.sampleProgram())
	s.Require().NoError(err)
	_, err = Unmarshal(data[:len(data)-20])
	s.Error(err)
}

func TestContainerTestSuite(t *testing.T) {
	suite.Run(t, new(ContainerTestSuite))
}
