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

package value

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// ValueTestSuite exercises Value's truthiness and equality semantics
// (spec §3).
type ValueTestSuite struct {
	suite.Suite
}

func (s *ValueTestSuite) TestTruthiness() {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"int-zero", Int(0), false},
		{"int-nonzero", Int(-1), true},
		{"float-zero", Float(0.0), false},
		{"float-nonzero", Float(0.1), true},
		{"empty-str", Str(""), false},
		{"nonempty-str", Str("x"), true},
		{"bool-true", Bool(true), true},
		{"bool-false", Bool(false), false},
		{"null", Null, false},
	}
	for _, tc := range cases {
		s.Equal(tc.want, tc.v.Truthy(), tc.name)
	}
}

func (s *ValueTestSuite) TestEqualCoercesIntFloat() {
	s.True(Int(2).Equal(Float(2.0)))
	s.True(Float(2.0).Equal(Int(2)))
	s.False(Int(2).Equal(Float(2.5)))
}

func (s *ValueTestSuite) TestEqualNullOnlyEqualsNull() {
	s.True(Null.Equal(Null))
	s.False(Null.Equal(Int(0)))
	s.False(Int(0).Equal(Null))
}

func (s *ValueTestSuite) TestEqualAcrossDifferentNonNumericKinds() {
	s.False(Str("1").Equal(Int(1)))
	s.False(Bool(true).Equal(Str("true")))
}

func (s *ValueTestSuite) TestEqualSameKind() {
	s.True(Str("a").Equal(Str("a")))
	s.False(Str("a").Equal(Str("b")))
	s.True(Bool(true).Equal(Bool(true)))
}

func (s *ValueTestSuite) TestIsNumeric() {
	s.True(Int(1).IsNumeric())
	s.True(Float(1).IsNumeric())
	s.False(Str("1").IsNumeric())
	s.False(Bool(true).IsNumeric())
	s.False(Null.IsNumeric())
}

func TestValueTestSuite(t *testing.T) {
	suite.Run(t, new(ValueTestSuite))
}
