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
	"github.com/sentriefraud/ruleengine/xerr"
)

// call pushes a new frame for fnID, copying the argc argument values (already
// on the stack, left-to-right) into its first argc locals, and returns the
// instruction pointer to resume at (spec §4.4 "Function calls").
func (m *VM) call(ruleName string, fnID, argc, returnIP int) (int, error) {
	if len(m.frames) >= m.limits.MaxFrames {
		return 0, xerr.ErrStackOverflow(ruleName, "call-frame depth exceeds %d", m.limits.MaxFrames)
	}

	fnDef := m.prg.Functions[fnID]
	frame := newFunctionFrame(fnDef.Name, fnDef.LocalCount, returnIP)
	for i := argc - 1; i >= 0; i-- {
		frame.locals[i] = m.stack.pop()
	}

	m.frames = append(m.frames, frame)
	return fnDef.EntryIP, nil
}
