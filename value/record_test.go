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

// RecordTestSuite exercises Record's field access and cloning semantics
// (spec §3).
type RecordTestSuite struct {
	suite.Suite
}

func (s *RecordTestSuite) TestAbsentFieldReadsAsNull() {
	r := NewRecord()
	s.True(r.Get("missing").IsNull())
}

func (s *RecordTestSuite) TestSetThenGet() {
	r := NewRecord()
	r.Set("amount", Float(5000))
	s.Equal(5000.0, r.Get("amount").AsFloat())
}

func (s *RecordTestSuite) TestWithFieldIsChainable() {
	r := NewRecord().WithField("a", Int(1)).WithField("b", Int(2))
	s.Equal(int64(1), r.Get("a").AsInt())
	s.Equal(int64(2), r.Get("b").AsInt())
}

func (s *RecordTestSuite) TestCloneIsIndependentCopy() {
	r := NewRecord().WithField("n", Int(1))
	clone := r.Clone()
	clone.Set("n", Int(2))
	s.Equal(int64(1), r.Get("n").AsInt())
	s.Equal(int64(2), clone.Get("n").AsInt())
}

func (s *RecordTestSuite) TestFieldsSnapshot() {
	r := NewRecord().WithField("a", Int(1))
	fields := r.Fields()
	s.Len(fields, 1)
	s.Equal(int64(1), fields["a"].AsInt())
}

func TestRecordTestSuite(t *testing.T) {
	suite.Run(t, new(RecordTestSuite))
}
