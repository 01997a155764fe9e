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
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/binaek/perch"
	"github.com/sentriefraud/ruleengine/bytecode"
	"github.com/sentriefraud/ruleengine/compiler"
	"github.com/sentriefraud/ruleengine/parser"
)

// compileCache memoizes from_dsl by a hash of the source text, the same
// cache library (and call-memoization intent) the teacher uses for
// evaluator call results (SPEC_FULL.md §4.5 "[ADDED] Compile caching").
// It is process-wide and fixed-size, not per-Engine: the whole point is
// that two FromDSL calls for identical source — even building unrelated
// Engines — share one compiled *bytecode.Program.
var compileCache = perch.New[*bytecode.Program](256)

const compileCacheTTL = 24 * time.Hour

func sourceKey(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// compileDSL parses and lowers source, using the shared compile cache.
func compileDSL(ctx context.Context, source string) (*bytecode.Program, error) {
	return compileCache.Get(ctx, sourceKey(source), compileCacheTTL, func(context.Context, string) (*bytecode.Program, error) {
		return compileFresh(source)
	})
}

func compileFresh(source string) (*bytecode.Program, error) {
	prog, err := parser.NewFromString(source, "").ParseProgram()
	if err != nil {
		return nil, err
	}
	return compiler.Compile(prog)
}
