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
	"github.com/google/uuid"
	"github.com/sentriefraud/ruleengine/vm"
)

// ExecutionResult adds a per-call correlation id to vm.ExecutionResult
// (SPEC_FULL.md §3 "[ADDED] Execution identifiers"); the field is metadata
// only and excluded from the round-trip structural-equality property
// (spec.md §8.1).
type ExecutionResult struct {
	vm.ExecutionResult
	ExecutionID uuid.UUID
}
