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

package engine

import (
	"context"
	"log/slog"
	"testing"

	"github.com/sentriefraud/ruleengine/value"
	"github.com/sentriefraud/ruleengine/vm"
	"github.com/stretchr/testify/suite"
)

// EngineTestSuite exercises the end-to-end DSL → engine → ExecutionResult
// pipeline against the scenarios and quantified properties the rule-engine
// design lays out.
type EngineTestSuite struct {
	suite.Suite
}

func (s *EngineTestSuite) SetupSuite() {
	slog.Info("EngineTestSuite SetupSuite start")
}

func (s *EngineTestSuite) mustEngine(source string) *Engine {
	eng, err := FromDSL(context.Background(), source, DefaultConfig())
	s.Require().NoError(err)
	s.T().Cleanup(eng.Close)
	return eng
}

// S1/S2 — high-amount rule fires only above the threshold.
func (s *EngineTestSuite) TestHighAmountThreshold() {
	source := `rule "r" { priority: 100, if (txn.amount > 1000) { setFraudScore(0.8); } }`
	eng := s.mustEngine(source)

	high := value.NewRecord().WithField("amount", value.Float(5000.0))
	res, err := eng.Execute(context.Background(), high, value.NewRecord())
	s.Require().NoError(err)
	s.Require().Len(res.Actions, 1)
	s.Equal(value.ActionSetFraudScore, res.Actions[0].Kind)
	s.InDelta(0.8, res.Actions[0].Score, 1e-9)
	s.Equal([]string{"r"}, namesOf(res.ExecutedRules))
	s.False(res.ShortCircuited)

	low := value.NewRecord().WithField("amount", value.Float(500.0))
	res, err = eng.Execute(context.Background(), low, value.NewRecord())
	s.Require().NoError(err)
	s.Empty(res.Actions)
}

// S3 — profile mutation via a record field.
func (s *EngineTestSuite) TestProfileMutation() {
	source := `rule "r" { priority: 10, if (true) { profile.count = profile.count + 1; } }`
	eng := s.mustEngine(source)

	profile := value.NewRecord().WithField("count", value.Int(2))
	res, err := eng.Execute(context.Background(), value.NewRecord(), profile)
	s.Require().NoError(err)
	s.Equal(int64(3), res.Profile.Get("count").AsInt())
}

// S4 — a rule-scope return halts the whole execution; lower-priority rules
// never appear in executed_rules.
func (s *EngineTestSuite) TestShortCircuit() {
	source := `
rule "high" {
	priority: 100,
	if (true) {
		setFraudScore(1.0);
		return;
	}
}
rule "low" {
	priority: 50,
	setFraudScore(0.1);
}
`
	eng := s.mustEngine(source)
	res, err := eng.Execute(context.Background(), value.NewRecord(), value.NewRecord())
	s.Require().NoError(err)
	s.True(res.ShortCircuited)
	s.Equal([]string{"high"}, namesOf(res.ExecutedRules))
	s.Require().Len(res.Actions, 1)
}

// S5 — function call aliasing profile/txn as parameters.
func (s *EngineTestSuite) TestFunctionCallAndLocal() {
	source := `
function bump(p, t) {
	p.n = p.n + t.amount;
}
rule "r" {
	bump(profile, txn);
}
`
	eng := s.mustEngine(source)
	profile := value.NewRecord().WithField("n", value.Int(0))
	txn := value.NewRecord().WithField("amount", value.Int(7))
	res, err := eng.Execute(context.Background(), txn, profile)
	s.Require().NoError(err)
	s.Equal(int64(7), res.Profile.Get("n").AsInt())
}

// S6 — an invalid decision raises ValidationError for that rule only; the
// engine keeps running and the action never reaches the queue.
func (s *EngineTestSuite) TestInvalidDecisionContinues() {
	source := `
rule "bad" {
	priority: 100,
	setDecision("MAYBE");
}
rule "good" {
	priority: 50,
	setFraudScore(0.5);
}
`
	eng := s.mustEngine(source)
	res, err := eng.Execute(context.Background(), value.NewRecord(), value.NewRecord())
	s.Require().NoError(err)
	s.False(res.ShortCircuited)
	s.Require().Len(res.ExecutedRules, 2)
	s.Equal("bad", res.ExecutedRules[0].Name)
	s.Error(res.ExecutedRules[0].Err)
	s.NoError(res.ExecutedRules[1].Err)
	s.Require().Len(res.Actions, 1)
	s.Equal(value.ActionSetFraudScore, res.Actions[0].Kind)
}

// Priority order: higher-priority rules run first regardless of declaration
// order; ties keep declaration order.
func (s *EngineTestSuite) TestPriorityOrder() {
	source := `
rule "b" { priority: 5, setFraudScore(0.1); }
rule "a" { priority: 10, setFraudScore(0.2); }
rule "c" { priority: 5, setFraudScore(0.3); }
`
	eng := s.mustEngine(source)
	res, err := eng.Execute(context.Background(), value.NewRecord(), value.NewRecord())
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, namesOf(res.ExecutedRules))
}

// Truthiness: 0, 0.0, and "" are falsy; any non-empty string is truthy.
func (s *EngineTestSuite) TestTruthiness() {
	cases := []struct {
		name string
		cond string
	}{
		{"int-zero", "0"},
		{"float-zero", "0.0"},
		{"empty-str", `""`},
	}
	for _, tc := range cases {
		source := `rule "r" { if (` + tc.cond + `) { setFraudScore(1.0); } else { setDecision("ALLOW"); } }`
		eng := s.mustEngine(source)
		res, err := eng.Execute(context.Background(), value.NewRecord(), value.NewRecord())
		s.Require().NoError(err, tc.name)
		s.Require().Len(res.Actions, 1, tc.name)
		s.Equal(value.ActionSetDecision, res.Actions[0].Kind, tc.name)
	}

	eng := s.mustEngine(`rule "r" { if ("x") { setFraudScore(1.0); } else { setDecision("ALLOW"); } }`)
	res, err := eng.Execute(context.Background(), value.NewRecord(), value.NewRecord())
	s.Require().NoError(err)
	s.Require().Len(res.Actions, 1)
	s.Equal(value.ActionSetFraudScore, res.Actions[0].Kind)
}

// Action ordering: actions surface in textual emission order, across rules.
func (s *EngineTestSuite) TestActionOrdering() {
	source := `
rule "first" { priority: 100, createComment("one"); createComment("two"); }
rule "second" { priority: 50, createComment("three"); }
`
	eng := s.mustEngine(source)
	res, err := eng.Execute(context.Background(), value.NewRecord(), value.NewRecord())
	s.Require().NoError(err)
	s.Require().Len(res.Actions, 3)
	s.Equal("one", res.Actions[0].Comment)
	s.Equal("two", res.Actions[1].Comment)
	s.Equal("three", res.Actions[2].Comment)
}

// Idempotent read: executing the same program twice on cloned inputs
// yields equal outcomes; reading a field never mutates the record.
func (s *EngineTestSuite) TestIdempotentRead() {
	source := `rule "r" { if (txn.amount > 1000) { setFraudScore(0.8); } }`
	eng := s.mustEngine(source)

	txn := value.NewRecord().WithField("amount", value.Float(5000.0))
	first, err := eng.Execute(context.Background(), txn.Clone(), value.NewRecord())
	s.Require().NoError(err)
	second, err := eng.Execute(context.Background(), txn.Clone(), value.NewRecord())
	s.Require().NoError(err)

	s.Equal(len(first.Actions), len(second.Actions))
	s.Equal(first.Actions[0].Score, second.Actions[0].Score)
	s.Equal(value.Float(5000.0), txn.Get("amount"), "reading amount must not coerce/mutate the source record")
}

// Round-trip: to_bytecode/from_bytecode preserves execution behavior.
func (s *EngineTestSuite) TestBytecodeRoundTrip() {
	source := `rule "r" { priority: 100, if (txn.amount > 1000) { setFraudScore(0.8); } }`
	eng := s.mustEngine(source)

	data, err := eng.ToBytecode()
	s.Require().NoError(err)

	reloaded, err := FromBytecode(data, DefaultConfig())
	s.Require().NoError(err)
	defer reloaded.Close()

	txn := value.NewRecord().WithField("amount", value.Float(5000.0))
	want, err := eng.Execute(context.Background(), txn.Clone(), value.NewRecord())
	s.Require().NoError(err)
	got, err := reloaded.Execute(context.Background(), txn.Clone(), value.NewRecord())
	s.Require().NoError(err)

	s.Equal(want.ShortCircuited, got.ShortCircuited)
	s.Equal(namesOf(want.ExecutedRules), namesOf(got.ExecutedRules))
	s.Equal(len(want.Actions), len(got.Actions))
	s.Equal(want.Actions[0].Score, got.Actions[0].Score)
}

func (s *EngineTestSuite) TestRulesMetadataReflectsPriorityOrder() {
	source := `
rule "b" { priority: 5, setFraudScore(0.1); }
rule "a" { priority: 10, setFraudScore(0.2); }
`
	eng := s.mustEngine(source)
	meta := eng.RulesMetadata()
	s.Require().Len(meta, 2)
	s.Equal("a", meta[0].Name)
	s.Equal("b", meta[1].Name)
}

func (s *EngineTestSuite) TestValidateDSLRejectsDuplicateRuleNames() {
	source := `
rule "r" { setFraudScore(0.1); }
rule "r" { setFraudScore(0.2); }
`
	err := ValidateDSL(context.Background(), source)
	s.Error(err)
}

func namesOf(execs []vm.RuleExecution) []string {
	out := make([]string, 0, len(execs))
	for _, e := range execs {
		out = append(out, e.Name)
	}
	return out
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
