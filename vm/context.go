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
	"time"

	"github.com/sentriefraud/ruleengine/value"
)

// RuleExecution records one rule's outcome in executed_rules (spec §3/§7). A
// non-nil Err means the rule raised a runtime error and execution moved on
// to the next rule in the table; its partial mutations and any actions it
// emitted before the error remain.
type RuleExecution struct {
	Name     string
	Duration time.Duration
	Err      error
}

// ExecutionResult is the outcome of one VM.Execute call (spec §3).
type ExecutionResult struct {
	Transaction *value.Record
	Profile     *value.Record
	Actions     []value.Action

	ExecutedRules  []RuleExecution
	SkippedRules   []string
	TotalDuration  time.Duration
	ShortCircuited bool
}

// executionContext is the VM's per-call mutable state (spec §3 "an
// ExecutionContext is created per execute call, consumed, and yields an
// ExecutionResult").
type executionContext struct {
	txn     *value.Record
	profile *value.Record
	actions []value.Action
}

func (ctx *executionContext) record(sel recordID) *value.Record {
	if sel == recordTxn {
		return ctx.txn
	}
	return ctx.profile
}
