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

import "github.com/sentriefraud/ruleengine/value"

// callFrame is one call-stack entry (glossary: "Call frame"). A rule's root
// frame starts with zero locals and grows on demand — bytecode.RuleDef
// carries no local_count, unlike bytecode.FunctionDef, because spec §4.4
// pushes a root frame with "zero locals" for a rule and lets `let`
// statements extend it as they're reached. Function frames are instead
// pre-sized to FunctionDef.LocalCount, since the compiler already knows the
// exact slot count a function body needs.
type callFrame struct {
	locals   []value.Value
	returnIP int
	name     string // rule or function name, for error annotation
}

func newRootFrame(ruleName string) *callFrame {
	return &callFrame{locals: nil, returnIP: -1, name: ruleName}
}

func newFunctionFrame(name string, localCount, returnIP int) *callFrame {
	return &callFrame{locals: make([]value.Value, localCount), returnIP: returnIP, name: name}
}

// load returns the value.Null default for a never-yet-stored slot.
func (f *callFrame) load(slot int) value.Value {
	if slot < 0 || slot >= len(f.locals) {
		return value.Null
	}
	return f.locals[slot]
}

// store auto-extends locals when slot is beyond the current size, which
// only ever happens for a rule's root frame (see the type doc above).
func (f *callFrame) store(slot int, v value.Value) {
	if slot >= len(f.locals) {
		grown := make([]value.Value, slot+1)
		copy(grown, f.locals)
		f.locals = grown
	}
	f.locals[slot] = v
}
