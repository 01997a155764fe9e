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

// Package ast defines the syntax tree produced by the parser: function and
// rule declarations, statements, and expressions.
package ast

import "github.com/sentriefraud/ruleengine/tokens"

// Node is the common interface for every syntax tree element.
type Node interface {
	String() string
	Pos() tokens.Range
}

// Statement is a top-level or block-level statement node.
type Statement interface {
	Node
	stmtNode()
}

// Expression is a value-producing node.
type Expression interface {
	Node
	exprNode()
}
