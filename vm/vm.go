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

// Package vm implements the fetch-decode-dispatch stack machine that
// executes a compiled bytecode.Program against one transaction/profile pair
// (spec §4.4).
package vm

import (
	"time"

	"github.com/sentriefraud/ruleengine/bytecode"
	"github.com/sentriefraud/ruleengine/value"
)

// recordID mirrors bytecode.Record at the VM boundary so the dispatch loop
// doesn't reach into the bytecode package's byte representation directly.
type recordID = bytecode.Record

const (
	recordTxn     = bytecode.RecordTxn
	recordProfile = bytecode.RecordProfile
)

// Limits bounds a VM's resource use; StackOverflow (spec §7) is raised when
// either ceiling is exceeded. Zero-valued fields fall back to DefaultLimits.
type Limits struct {
	InitialStack int
	MaxStack     int
	MaxFrames    int
}

// DefaultLimits matches the sizes spec §4.4 suggests ("e.g. 256 slots" /
// "e.g. 32 frames"); MaxStack is a separate, larger ceiling so legitimate
// deep expressions don't immediately overflow the pre-sized capacity.
func DefaultLimits() Limits {
	return Limits{InitialStack: 256, MaxStack: 4096, MaxFrames: 32}
}

// WithDefaults fills any zero-valued field from DefaultLimits().
func (l Limits) WithDefaults() Limits {
	d := DefaultLimits()
	if l.InitialStack <= 0 {
		l.InitialStack = d.InitialStack
	}
	if l.MaxStack <= 0 {
		l.MaxStack = d.MaxStack
	}
	if l.MaxFrames <= 0 {
		l.MaxFrames = d.MaxFrames
	}
	return l
}

// VM is a reusable runtime. It is not safe for concurrent use; the engine
// façade pools instances (one in active use at a time) rather than sharing
// one across goroutines.
type VM struct {
	limits Limits
	stack  *valueStack
	frames []*callFrame
	ip     int

	prg    *bytecode.Program
	ctx    *executionContext
	halted bool // set by the Halt opcode; read once by Execute after runRule returns
}

// New constructs a VM with the given limits (DefaultLimits() if zero-valued).
func New(limits Limits) *VM {
	limits = limits.WithDefaults()
	return &VM{
		limits: limits,
		stack:  newValueStack(limits.InitialStack, limits.MaxStack),
		frames: make([]*callFrame, 0, limits.MaxFrames),
	}
}

// Reset clears all per-call state, making the VM safe to hand back to a
// pool. It never needs to reallocate the backing arrays on the common path.
func (m *VM) Reset() {
	m.stack.reset()
	m.frames = m.frames[:0]
	m.ip = 0
	m.prg = nil
	m.ctx = nil
}

// Execute runs every enabled rule in prg's table, in stored (priority-sorted)
// order, against txn/profile, implementing the protocol in spec §4.4. The
// supplied records are mutated in place and also returned inside the result.
func (m *VM) Execute(prg *bytecode.Program, txn, profile *value.Record) (*ExecutionResult, error) {
	m.Reset()
	m.prg = prg
	m.ctx = &executionContext{txn: txn, profile: profile}

	start := time.Now()
	result := &ExecutionResult{Transaction: txn, Profile: profile}

	for _, rule := range prg.Rules {
		if !rule.Enabled {
			result.SkippedRules = append(result.SkippedRules, rule.Name)
			continue
		}

		ruleStart := time.Now()
		err := m.runRule(rule)
		duration := time.Since(ruleStart)

		result.ExecutedRules = append(result.ExecutedRules, RuleExecution{
			Name:     rule.Name,
			Duration: duration,
			Err:      err,
		})

		if m.halted {
			result.ShortCircuited = true
			m.halted = false
			break
		}
	}

	result.Actions = m.ctx.actions
	result.TotalDuration = time.Since(start)
	return result, nil
}
