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

import (
	"strconv"

	"github.com/sentriefraud/ruleengine/ast"
	"github.com/sentriefraud/ruleengine/tokens"
	"github.com/sentriefraud/ruleengine/value"
)

func (p *Parser) parseExpression(precedence Precedence) ast.Expression {
	prefix, ok := p.prefixHandlers[p.current.Kind]
	if !ok {
		p.errorf(p.current.Range, "no prefix parse function for %s", p.current)
		p.advance()
		return nil
	}
	left := prefix(p)

	for !p.is(tokens.Semicolon) && precedence < precedenceOf(p.current.Kind) {
		infix, ok := p.infixHandlers[p.current.Kind]
		if !ok {
			return left
		}
		left = infix(p, left)
	}
	return left
}

func parseIdent(p *Parser) ast.Expression {
	tok := p.current
	p.advance()
	return &ast.IdentExpr{Range: rangeOf(tok), Name: tok.Value}
}

func parseIntLiteral(p *Parser) ast.Expression {
	tok := p.current
	p.advance()
	n, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		p.errorf(tok.Range, "invalid integer literal %q", tok.Value)
		return &ast.LiteralExpr{Range: rangeOf(tok), Value: value.Int(0)}
	}
	return &ast.LiteralExpr{Range: rangeOf(tok), Value: value.Int(n)}
}

func parseFloatLiteral(p *Parser) ast.Expression {
	tok := p.current
	p.advance()
	f, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		p.errorf(tok.Range, "invalid float literal %q", tok.Value)
		return &ast.LiteralExpr{Range: rangeOf(tok), Value: value.Float(0)}
	}
	return &ast.LiteralExpr{Range: rangeOf(tok), Value: value.Float(f)}
}

func parseStringLiteral(p *Parser) ast.Expression {
	tok := p.current
	p.advance()
	return &ast.LiteralExpr{Range: rangeOf(tok), Value: value.Str(tok.Value)}
}

func parseBoolLiteral(p *Parser) ast.Expression {
	tok := p.current
	p.advance()
	return &ast.LiteralExpr{Range: rangeOf(tok), Value: value.Bool(tok.Kind == tokens.KeywordTrue)}
}

func parseNullLiteral(p *Parser) ast.Expression {
	tok := p.current
	p.advance()
	return &ast.LiteralExpr{Range: rangeOf(tok), Value: value.Null}
}

func parseUnary(p *Parser) ast.Expression {
	tok := p.current
	p.advance()
	operand := p.parseExpression(UNARY)
	return &ast.UnaryExpr{Range: rangeOf(tok), Op: tok.Value, Operand: operand}
}

func parseGrouped(p *Parser) ast.Expression {
	p.advance() // consume '('
	expr := p.parseExpression(LOWEST)
	p.expect(tokens.RParen)
	return expr
}

func parseBinary(p *Parser, left ast.Expression) ast.Expression {
	tok := p.current
	prec := precedenceOf(tok.Kind)
	p.advance()
	right := p.parseExpression(prec)
	return &ast.BinaryExpr{Range: rangeOf(tok), Op: tok.Value, Left: left, Right: right}
}

func parseField(p *Parser, left ast.Expression) ast.Expression {
	dot := p.current
	p.advance() // consume '.'
	if !p.is(tokens.Ident) {
		p.errorf(p.current.Range, "expected field name after '.', got %s", p.current)
		return left
	}
	name := p.current
	p.advance()
	return &ast.FieldExpr{Range: rangeOf(dot), Target: left, Name: name.Value}
}

func parseCall(p *Parser, left ast.Expression) ast.Expression {
	ident, ok := left.(*ast.IdentExpr)
	if !ok {
		p.errorf(p.current.Range, "call target must be a function name")
	}
	lparen := p.current
	p.advance() // consume '('

	var args []ast.Expression
	for !p.is(tokens.RParen) {
		args = append(args, p.parseExpression(LOWEST))
		if p.is(tokens.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(tokens.RParen)

	name := ""
	if ident != nil {
		name = ident.Name
	}
	return &ast.CallExpr{Range: rangeOf(lparen), Name: name, Args: args}
}

func rangeOf(t tokens.Instance) tokens.Range { return t.Range }
