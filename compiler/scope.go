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

package compiler

// scope is a single function/rule body's flat symbol table. There is no
// block nesting: an `if` body shares its enclosing function's scope, so a
// `let` inside a branch still occupies a fresh slot visible (syntactically)
// to sibling statements — matching the DSL's lack of block scoping (there
// are no closures or nested scopes to model per spec §1 Non-goals).
type scope struct {
	names    map[string]binding
	nextSlot int
}

func newScope(paramSlots []string) *scope {
	s := &scope{names: map[string]binding{}}
	for i, name := range paramSlots {
		s.names[name] = binding{selector: selectorNone, slot: i}
	}
	s.nextSlot = len(paramSlots)
	return s
}

func (s *scope) bind(name string, b binding) { s.names[name] = b }

func (s *scope) lookup(name string) (binding, bool) {
	b, ok := s.names[name]
	return b, ok
}

// declareLocal allocates a fresh local slot for name (shadowing any
// previous binding of the same name) and returns it.
func (s *scope) declareLocal(name string) int {
	slot := s.nextSlot
	s.nextSlot++
	s.names[name] = binding{selector: selectorNone, slot: slot}
	return slot
}
