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
	"github.com/mitchellh/hashstructure/v2"
	"github.com/sentriefraud/ruleengine/value"
)

// Pool builds a deduplicated constant pool during compilation. Identical
// literals (by Value.Kind and Value.HashKey) share one slot, shrinking serialized size —
// constant folding itself is not required by the spec, just this dedup.
type Pool struct {
	values []value.Value
	index  map[uint64]int
}

// NewPool returns an empty constant pool builder.
func NewPool() *Pool {
	return &Pool{index: map[uint64]int{}}
}

// Intern returns the pool index for v, adding it if not already present.
func (p *Pool) Intern(v value.Value) int {
	key, err := hashstructure.Hash(struct {
		Kind value.Kind
		Key  any
	}{v.Kind(), v.HashKey()}, hashstructure.FormatV2, nil)
	if err != nil {
		// Hashing a scalar HashKey never fails in practice; fall back to an
		// always-fresh slot rather than risk silent collision on a zero key.
		p.values = append(p.values, v)
		return len(p.values) - 1
	}
	if idx, ok := p.index[key]; ok {
		return idx
	}
	p.values = append(p.values, v)
	idx := len(p.values) - 1
	p.index[key] = idx
	return idx
}

// InternString is a convenience wrapper for interning string constants —
// field names, function-call names — which the compiler does frequently.
func (p *Pool) InternString(s string) int {
	return p.Intern(value.Str(s))
}

// Values returns the finished constant pool in interning order.
func (p *Pool) Values() []value.Value { return p.values }
