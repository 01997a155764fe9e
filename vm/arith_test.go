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

package vm

import (
	"math"
	"testing"

	"github.com/sentriefraud/ruleengine/bytecode"
	"github.com/sentriefraud/ruleengine/value"
	"github.com/stretchr/testify/suite"
)

// ArithTestSuite exercises binaryArith/compare's numeric and string
// semantics directly (spec §4.4), independent of the dispatch loop.
type ArithTestSuite struct {
	suite.Suite
}

func (s *ArithTestSuite) TestIntStaysIntWithWraparound() {
	v, err := binaryArith(bytecode.Add, value.Int(math.MaxInt64), value.Int(1), "r")
	s.Require().NoError(err)
	s.Equal(value.KindInt, v.Kind())
	s.Equal(int64(math.MinInt64), v.AsInt())
}

func (s *ArithTestSuite) TestFloatPromotion() {
	cases := []struct {
		name string
		a, b value.Value
	}{
		{"float-int", value.Float(1.5), value.Int(2)},
		{"int-float", value.Int(2), value.Float(1.5)},
	}
	for _, tc := range cases {
		v, err := binaryArith(bytecode.Add, tc.a, tc.b, "r")
		s.Require().NoError(err, tc.name)
		s.Equal(value.KindFloat, v.Kind(), tc.name)
		s.InDelta(3.5, v.AsFloat(), 1e-9, tc.name)
	}
}

func (s *ArithTestSuite) TestIntDivModByZeroIsArithmeticError() {
	_, err := binaryArith(bytecode.Div, value.Int(1), value.Int(0), "r")
	s.Error(err)

	_, err = binaryArith(bytecode.Mod, value.Int(1), value.Int(0), "r")
	s.Error(err)
}

func (s *ArithTestSuite) TestFloatDivByZeroYieldsInfNoError() {
	v, err := binaryArith(bytecode.Div, value.Float(1.0), value.Float(0.0), "r")
	s.Require().NoError(err)
	s.True(math.IsInf(v.AsFloat(), 1))

	v, err = binaryArith(bytecode.Div, value.Float(-1.0), value.Float(0.0), "r")
	s.Require().NoError(err)
	s.True(math.IsInf(v.AsFloat(), -1))

	v, err = binaryArith(bytecode.Div, value.Float(0.0), value.Float(0.0), "r")
	s.Require().NoError(err)
	s.True(math.IsNaN(v.AsFloat()))
}

func (s *ArithTestSuite) TestStringConcatOnlyForAdd() {
	v, err := binaryArith(bytecode.Add, value.Str("foo"), value.Str("bar"), "r")
	s.Require().NoError(err)
	s.Equal("foobar", v.AsStr())

	_, err = binaryArith(bytecode.Sub, value.Str("foo"), value.Str("bar"), "r")
	s.Error(err)

	_, err = binaryArith(bytecode.Add, value.Str("foo"), value.Int(1), "r")
	s.Error(err)
}

func (s *ArithTestSuite) TestNonNumericOperandIsTypeError() {
	_, err := binaryArith(bytecode.Add, value.Bool(true), value.Int(1), "r")
	s.Error(err)
}

func (s *ArithTestSuite) TestCompareEqNeAcrossKinds() {
	s.True(mustCompareBool(s, bytecode.Eq, value.Int(2), value.Float(2.0)))
	s.True(mustCompareBool(s, bytecode.Ne, value.Str("a"), value.Str("b")))
	s.True(mustCompareBool(s, bytecode.Eq, value.Null, value.Null))
	s.False(mustCompareBool(s, bytecode.Eq, value.Null, value.Int(0)))
}

func (s *ArithTestSuite) TestCompareOrderingNumericOnly() {
	s.True(mustCompareBool(s, bytecode.Lt, value.Int(1), value.Float(1.5)))
	s.True(mustCompareBool(s, bytecode.Ge, value.Float(2.0), value.Int(2)))

	_, err := compare(bytecode.Lt, value.Str("a"), value.Str("b"), "r")
	s.Error(err)
}

func mustCompareBool(s *ArithTestSuite, op bytecode.Opcode, a, b value.Value) bool {
	v, err := compare(op, a, b, "r")
	s.Require().NoError(err)
	return v.AsBool()
}

func TestArithTestSuite(t *testing.T) {
	suite.Run(t, new(ArithTestSuite))
}
