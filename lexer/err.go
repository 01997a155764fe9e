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

package lexer

import (
	"fmt"

	"github.com/sentriefraud/ruleengine/tokens"
)

// Error is a lexical error: an unterminated string, malformed number, or
// unrecognized character, tied to the position it was found at.
type Error struct {
	Pos     tokens.Range
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical error at %s: %s", e.Pos, e.Message)
}

func newError(r tokens.Range, format string, args ...any) *Error {
	return &Error{Pos: r, Message: fmt.Sprintf(format, args...)}
}
