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

// Package parser implements a recursive-descent (Pratt, for expressions)
// parser turning DSL source into an *ast.Program (spec §4.2).
package parser

import (
	stderrors "errors"
	"strings"

	"github.com/sentriefraud/ruleengine/ast"
	"github.com/sentriefraud/ruleengine/lexer"
	"github.com/sentriefraud/ruleengine/tokens"
	"github.com/sentriefraud/ruleengine/xerr"
)

type prefixParser func(p *Parser) ast.Expression
type infixParser func(p *Parser, left ast.Expression) ast.Expression

type Parser struct {
	lexer     *lexer.Lexer
	reference string

	current tokens.Instance
	next    tokens.Instance
	atEOF   bool

	err error

	prefixHandlers map[tokens.Kind]prefixParser
	infixHandlers  map[tokens.Kind]infixParser
}

func New(l *lexer.Lexer, reference string) *Parser {
	p := &Parser{lexer: l, reference: reference}
	p.registerParseFns()
	p.advance()
	p.advance()
	return p
}

func NewFromString(src, reference string) *Parser {
	return New(lexer.NewFromString(src, reference), reference)
}

func (p *Parser) head() tokens.Instance { return p.current }
func (p *Parser) peek() tokens.Instance { return p.next }

func (p *Parser) advance() tokens.Instance {
	prev := p.current
	if p.current.Kind == tokens.Error {
		p.err = stderrors.Join(p.err, xerr.ErrLexical(p.current.Range, "%s", p.current.Value))
	}
	p.current = p.next
	if p.current.Kind == tokens.EOF {
		p.atEOF = true
		return prev
	}
	p.next = p.lexer.NextToken()
	// line comments never participate in the grammar; skip transparently.
	for p.next.Kind == tokens.Comment {
		p.next = p.lexer.NextToken()
	}
	return prev
}

func (p *Parser) hasTokens() bool { return !p.atEOF }

func (p *Parser) is(kind tokens.Kind) bool { return p.current.Kind == kind }

func (p *Parser) expect(kind tokens.Kind) bool {
	if p.current.Kind != kind {
		p.errorf(p.current.Range, "expected %s, got %s", kind, p.current)
		return false
	}
	p.advance()
	return true
}

func (p *Parser) errorf(pos tokens.Range, format string, args ...any) {
	p.err = stderrors.Join(p.err, xerr.ErrParse(pos, format, args...))
}

func (p *Parser) registerPrefix(k tokens.Kind, fn prefixParser) { p.prefixHandlers[k] = fn }
func (p *Parser) registerInfix(k tokens.Kind, fn infixParser)   { p.infixHandlers[k] = fn }

func (p *Parser) registerParseFns() {
	p.prefixHandlers = map[tokens.Kind]prefixParser{}
	p.infixHandlers = map[tokens.Kind]infixParser{}

	p.registerPrefix(tokens.Ident, parseIdent)
	p.registerPrefix(tokens.Int, parseIntLiteral)
	p.registerPrefix(tokens.Float, parseFloatLiteral)
	p.registerPrefix(tokens.String, parseStringLiteral)
	p.registerPrefix(tokens.KeywordTrue, parseBoolLiteral)
	p.registerPrefix(tokens.KeywordFalse, parseBoolLiteral)
	p.registerPrefix(tokens.KeywordNull, parseNullLiteral)
	p.registerPrefix(tokens.Bang, parseUnary)
	p.registerPrefix(tokens.Minus, parseUnary)
	p.registerPrefix(tokens.LParen, parseGrouped)

	p.registerInfix(tokens.Plus, parseBinary)
	p.registerInfix(tokens.Minus, parseBinary)
	p.registerInfix(tokens.Star, parseBinary)
	p.registerInfix(tokens.Slash, parseBinary)
	p.registerInfix(tokens.Percent, parseBinary)
	p.registerInfix(tokens.Eq, parseBinary)
	p.registerInfix(tokens.Neq, parseBinary)
	p.registerInfix(tokens.Lt, parseBinary)
	p.registerInfix(tokens.Lte, parseBinary)
	p.registerInfix(tokens.Gt, parseBinary)
	p.registerInfix(tokens.Gte, parseBinary)
	p.registerInfix(tokens.AndAnd, parseBinary)
	p.registerInfix(tokens.OrOr, parseBinary)
	p.registerInfix(tokens.LParen, parseCall)
	p.registerInfix(tokens.Dot, parseField)
}

// ParseProgram parses the whole token stream into an *ast.Program, or
// returns a joined error of *xerr.LexicalError / *xerr.ParseError values
// describing every mismatch encountered along the way.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prg := &ast.Program{Reference: p.reference}

	for p.hasTokens() {
		switch {
		case p.is(tokens.KeywordFunction):
			if fn := p.parseFunctionDecl(); fn != nil {
				prg.Functions = append(prg.Functions, fn)
			}
		case p.is(tokens.KeywordRule):
			if r := p.parseRuleDecl(); r != nil {
				prg.Rules = append(prg.Rules, r)
			}
		default:
			p.errorf(p.current.Range, "expected 'function' or 'rule', got %s", p.current)
			p.advance()
		}
	}

	if p.err != nil {
		return nil, p.err
	}
	if dup := firstDuplicateName(prg); dup != "" {
		return nil, xerr.ErrParse(tokens.Range{File: p.reference}, "duplicate rule or function name: %s", dup)
	}
	return prg, nil
}

func firstDuplicateName(prg *ast.Program) string {
	seenFns := map[string]bool{}
	for _, fn := range prg.Functions {
		if seenFns[fn.Name] {
			return fn.Name
		}
		seenFns[fn.Name] = true
	}
	seenRules := map[string]bool{}
	for _, r := range prg.Rules {
		if seenRules[r.Name] {
			return r.Name
		}
		seenRules[r.Name] = true
	}
	return ""
}

// Diagnostics returns every accumulated parse error as a single multi-line
// message, useful for validate_dsl (spec §4.5) which reports as much as it
// usefully can in one pass.
func (p *Parser) Diagnostics() string {
	if p.err == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p.err.Error())
	return sb.String()
}
