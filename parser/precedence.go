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

package parser

import "github.com/sentriefraud/ruleengine/tokens"

// Precedence levels for the Pratt expression parser (spec §4.2, low to high).
type Precedence uint8

const (
	LOWEST Precedence = iota
	OR                // ||
	AND               // &&
	EQUALITY          // == !=
	COMPARISON        // < <= > >=
	SUM               // + -
	PRODUCT           // * / %
	UNARY             // ! - (prefix)
	CALL              // f(...)
	FIELD             // a.b
)

var precedences = map[tokens.Kind]Precedence{
	tokens.OrOr:    OR,
	tokens.AndAnd:  AND,
	tokens.Eq:      EQUALITY,
	tokens.Neq:     EQUALITY,
	tokens.Lt:      COMPARISON,
	tokens.Lte:     COMPARISON,
	tokens.Gt:      COMPARISON,
	tokens.Gte:     COMPARISON,
	tokens.Plus:    SUM,
	tokens.Minus:   SUM,
	tokens.Star:    PRODUCT,
	tokens.Slash:   PRODUCT,
	tokens.Percent: PRODUCT,
	tokens.LParen:  CALL,
	tokens.Dot:     FIELD,
}

func precedenceOf(k tokens.Kind) Precedence {
	if p, ok := precedences[k]; ok {
		return p
	}
	return LOWEST
}
