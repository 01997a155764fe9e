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

import "github.com/sentriefraud/ruleengine/bytecode"

// builtinDef names one reserved action-call name's opcode and fixed arity
// (spec §4.2/§4.3 — arity is enforced at compile time).
type builtinDef struct {
	op    bytecode.Opcode
	arity int
}

var builtins = map[string]builtinDef{
	"createCase":      {bytecode.EmitCreateCase, 2},
	"createComment":   {bytecode.EmitCreateComment, 1},
	"sendAuthAdvise":  {bytecode.EmitSendAuthAdvise, 2},
	"setFraudScore":   {bytecode.EmitSetFraudScore, 1},
	"setDecision":     {bytecode.EmitSetDecision, 1},
}
