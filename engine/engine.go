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

// Package engine is the façade spec.md §4.5 describes: compiling DSL
// source or bytecode into an immutable, concurrently-executable Engine.
package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/puddle/v2"
	"github.com/sentriefraud/ruleengine/bytecode"
	"github.com/sentriefraud/ruleengine/value"
	"github.com/sentriefraud/ruleengine/vm"
	"github.com/sentriefraud/ruleengine/xerr"
)

// Engine is immutable once constructed: its bytecode.Program is read-only
// and its VM pool hands out freshly-reset runtimes, so Execute is safe to
// call concurrently from many callers sharing one Engine (spec §5).
type Engine struct {
	prg  *bytecode.Program
	cfg  Config
	pool *puddle.Pool[*vm.VM]
}

// FromDSL compiles source end to end (lexer → parser → compiler), the same
// pipeline a CompileError from any stage aborts (spec §4.5/§7).
func FromDSL(ctx context.Context, source string, cfg Config) (*Engine, error) {
	prg, err := compileDSL(ctx, source)
	if err != nil {
		return nil, err
	}
	return newEngine(prg, cfg)
}

// ValidateDSL runs the same pipeline as FromDSL without retaining the
// compiled program (spec §4.5).
func ValidateDSL(ctx context.Context, source string) error {
	_, err := compileDSL(ctx, source)
	return err
}

// FromBytecode decodes and validates a serialized program (spec §4.5/§6).
func FromBytecode(data []byte, cfg Config) (*Engine, error) {
	prg, err := bytecode.Unmarshal(data)
	if err != nil {
		return nil, xerr.ErrDecode("%s", err)
	}
	return newEngine(prg, cfg)
}

func newEngine(prg *bytecode.Program, cfg Config) (*Engine, error) {
	cfg = cfg.withDefaults()
	pool, err := newVMPool(cfg.VMLimits, cfg.VMPoolSize)
	if err != nil {
		return nil, err
	}
	return &Engine{prg: prg, cfg: cfg, pool: pool}, nil
}

// ToBytecode serializes the engine's program deterministically (spec §4.5).
func (e *Engine) ToBytecode() ([]byte, error) {
	return bytecode.Marshal(e.prg)
}

// RulesMetadata reflects the compiled, priority-sorted rule order (spec §4.5).
func (e *Engine) RulesMetadata() []RuleInfo {
	return rulesMetadata(e.prg)
}

// Execute runs every enabled rule against txn/profile, via a pooled VM, and
// returns the outcome tagged with a fresh correlation id (spec §4.5/§4.4).
func (e *Engine) Execute(ctx context.Context, txn, profile *value.Record) (*ExecutionResult, error) {
	out, err := withPooledVM(ctx, e.pool, func(m *vm.VM) (*ExecutionResult, error) {
		res, err := m.Execute(e.prg, txn, profile)
		if res == nil {
			return nil, err
		}
		return &ExecutionResult{ExecutionResult: *res, ExecutionID: uuid.New()}, err
	})
	return out, err
}

// Close releases the engine's pooled VM runtimes. Safe to call once; the
// engine must not be used afterward.
func (e *Engine) Close() {
	e.pool.Close()
}

// NewTransaction and NewUserProfile are the two reserved-binding record
// constructors the embedding API exposes (spec §3/§6): `Transaction.new()`
// and `UserProfile.new()`, both ordinary Records distinguished only by
// which identifier a program binds them to.
func NewTransaction() *value.Record { return value.NewRecord() }
func NewUserProfile() *value.Record { return value.NewRecord() }
