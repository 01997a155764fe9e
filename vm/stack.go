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
	"github.com/sentriefraud/ruleengine/value"
	"github.com/sentriefraud/ruleengine/xerr"
)

// valueStack is the VM's operand stack, pre-sized and growable up to max
// slots, at which point further pushes raise StackOverflow (spec §4.4/§7).
type valueStack struct {
	slots []value.Value
	max   int
}

func newValueStack(initial, max int) *valueStack {
	return &valueStack{slots: make([]value.Value, 0, initial), max: max}
}

func (s *valueStack) reset() { s.slots = s.slots[:0] }

func (s *valueStack) push(ruleName string, v value.Value) error {
	if len(s.slots) >= s.max {
		return xerr.ErrStackOverflow(ruleName, "value stack depth exceeds %d", s.max)
	}
	s.slots = append(s.slots, v)
	return nil
}

func (s *valueStack) pop() value.Value {
	n := len(s.slots) - 1
	v := s.slots[n]
	s.slots = s.slots[:n]
	return v
}

func (s *valueStack) peek() value.Value {
	return s.slots[len(s.slots)-1]
}

func (s *valueStack) len() int { return len(s.slots) }
