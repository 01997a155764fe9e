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
	"github.com/binaek/gocoll"
	"github.com/sentriefraud/ruleengine/bytecode"
)

// RuleInfo is one entry of Engine.RulesMetadata (spec §4.5).
type RuleInfo struct {
	Name     string
	Priority int32
	Enabled  bool
}

// rulesMetadata reflects prg.Rules' compiled, priority-sorted order verbatim
// (spec §4.5 "rules_metadata... reflects the compiled, priority-sorted
// order"), built with the same Map-over-slice idiom the teacher reaches for
// when projecting one record shape into another.
func rulesMetadata(prg *bytecode.Program) []RuleInfo {
	return gocoll.Map(prg.Rules, func(r bytecode.RuleDef) RuleInfo {
		return RuleInfo{Name: r.Name, Priority: r.Priority, Enabled: r.Enabled}
	})
}
