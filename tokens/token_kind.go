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

package tokens

import (
	"maps"
	"slices"
)

type Kind string

const (
	EOF     Kind = "EOF"
	Error   Kind = "Error"
	Ident   Kind = "Ident"
	Int     Kind = "Int"
	Float   Kind = "Float"
	String  Kind = "String"
	Comment Kind = "Comment"

	// Keywords
	KeywordRule     Kind = "rule"
	KeywordFunction Kind = "function"
	KeywordIf       Kind = "if"
	KeywordElse     Kind = "else"
	KeywordReturn   Kind = "return"
	KeywordLet      Kind = "let"
	KeywordTrue     Kind = "true"
	KeywordFalse    Kind = "false"
	KeywordNull     Kind = "null"
	KeywordPriority Kind = "priority"
	KeywordEnabled  Kind = "enabled"

	// Operators
	Plus     Kind = "Plus"
	Minus    Kind = "Minus"
	Star     Kind = "Star"
	Slash    Kind = "Slash"
	Percent  Kind = "Percent"
	Eq       Kind = "Eq"
	Neq      Kind = "Neq"
	Lt       Kind = "Lt"
	Lte      Kind = "Lte"
	Gt       Kind = "Gt"
	Gte      Kind = "Gte"
	AndAnd   Kind = "AndAnd"
	OrOr     Kind = "OrOr"
	Bang     Kind = "Bang"
	Assign   Kind = "Assign"
	Dot      Kind = "Dot"

	// Punctuation
	LBrace    Kind = "LBrace"
	RBrace    Kind = "RBrace"
	LParen    Kind = "LParen"
	RParen    Kind = "RParen"
	Comma     Kind = "Comma"
	Semicolon Kind = "Semicolon"
	Colon     Kind = "Colon"
)

var keywords = map[string]Kind{
	"rule":     KeywordRule,
	"function": KeywordFunction,
	"if":       KeywordIf,
	"else":     KeywordElse,
	"return":   KeywordReturn,
	"let":      KeywordLet,
	"true":     KeywordTrue,
	"false":    KeywordFalse,
	"null":     KeywordNull,
	"priority": KeywordPriority,
	"enabled":  KeywordEnabled,
}

// LookupKeyword reports whether ident names a reserved keyword, returning its Kind.
func LookupKeyword(ident string) (Kind, bool) {
	kind, ok := keywords[ident]
	return kind, ok
}

// Keywords returns every reserved keyword kind, for diagnostics and documentation.
func Keywords() []Kind {
	return slices.Collect(maps.Values(keywords))
}

func (k Kind) String() string { return string(k) }
