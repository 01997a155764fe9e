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
)

// parseFunctionDecl parses `function IDENT '(' paramList? ')' block`.
func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	tok := p.current
	p.advance() // consume 'function'

	if !p.is(tokens.Ident) {
		p.errorf(p.current.Range, "expected function name, got %s", p.current)
		return nil
	}
	name := p.current.Value
	p.advance()

	if !p.expect(tokens.LParen) {
		return nil
	}
	var params []string
	for !p.is(tokens.RParen) {
		if !p.is(tokens.Ident) {
			p.errorf(p.current.Range, "expected parameter name, got %s", p.current)
			break
		}
		params = append(params, p.current.Value)
		p.advance()
		if p.is(tokens.Comma) {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(tokens.RParen) {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.FunctionDecl{Range: rangeOf(tok), Name: name, Params: params, Body: body}
}

// parseRuleDecl parses `rule STRING '{' ruleBody '}'`, where ruleBody is a
// leading run of `priority:`/`enabled:` metadata entries followed by
// statements (spec §4.2).
func (p *Parser) parseRuleDecl() *ast.RuleDecl {
	tok := p.current
	p.advance() // consume 'rule'

	if !p.is(tokens.String) {
		p.errorf(p.current.Range, "expected rule name string, got %s", p.current)
		return nil
	}
	name := p.current.Value
	p.advance()

	if !p.expect(tokens.LBrace) {
		return nil
	}

	decl := &ast.RuleDecl{Range: rangeOf(tok), Name: name}
	p.parseRuleMetadata(decl)

	block := &ast.BlockStmt{Range: rangeOf(p.current)}
	for !p.is(tokens.RBrace) && p.hasTokens() {
		if stmt := p.parseStatement(); stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}
	p.expect(tokens.RBrace)
	decl.Body = block
	return decl
}

// parseRuleMetadata consumes the leading `priority:`/`enabled:` entries of a
// rule body. An identifier followed by ':' in metadata position is an
// unknown-metadata parse error (spec §4.2); any other token ends the
// metadata run.
func (p *Parser) parseRuleMetadata(decl *ast.RuleDecl) {
	for {
		switch {
		case p.is(tokens.KeywordPriority):
			p.advance()
			if !p.expect(tokens.Colon) {
				return
			}
			if !p.is(tokens.Int) {
				p.errorf(p.current.Range, "priority value must be an integer, got %s", p.current)
				return
			}
			n, err := strconv.ParseInt(p.current.Value, 10, 32)
			if err != nil {
				p.errorf(p.current.Range, "invalid priority literal %q", p.current.Value)
			}
			decl.Priority = int32(n)
			decl.HasPriority = true
			p.advance()
		case p.is(tokens.KeywordEnabled):
			p.advance()
			if !p.expect(tokens.Colon) {
				return
			}
			if !p.is(tokens.KeywordTrue) && !p.is(tokens.KeywordFalse) {
				p.errorf(p.current.Range, "enabled value must be true or false, got %s", p.current)
				return
			}
			decl.Enabled = p.is(tokens.KeywordTrue)
			decl.HasEnabled = true
			p.advance()
		case p.is(tokens.Ident) && p.peek().Kind == tokens.Colon:
			p.errorf(p.current.Range, "unknown rule metadata key %q", p.current.Value)
			return
		default:
			return
		}
		if p.is(tokens.Comma) {
			p.advance()
		}
	}
}

// parseBlock parses `'{' statement* '}'`.
func (p *Parser) parseBlock() *ast.BlockStmt {
	if !p.is(tokens.LBrace) {
		p.errorf(p.current.Range, "expected '{', got %s", p.current)
		return nil
	}
	block := &ast.BlockStmt{Range: rangeOf(p.current)}
	p.advance()

	for !p.is(tokens.RBrace) && p.hasTokens() {
		if stmt := p.parseStatement(); stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}
	p.expect(tokens.RBrace)
	return block
}

// parseStatement dispatches on the leading token per the grammar:
// `statement := letStmt | ifStmt | returnStmt | assignStmt | exprStmt`.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.is(tokens.KeywordLet):
		return p.parseLetStmt()
	case p.is(tokens.KeywordIf):
		return p.parseIfStmt()
	case p.is(tokens.KeywordReturn):
		return p.parseReturnStmt()
	default:
		return p.parseAssignOrExprStmt()
	}
}

func (p *Parser) parseLetStmt() ast.Statement {
	tok := p.current
	p.advance() // consume 'let'

	if !p.is(tokens.Ident) {
		p.errorf(p.current.Range, "expected identifier after 'let', got %s", p.current)
		return nil
	}
	name := p.current.Value
	p.advance()

	if !p.expect(tokens.Assign) {
		return nil
	}
	value := p.parseExpression(LOWEST)
	p.expect(tokens.Semicolon)
	return &ast.LetStmt{Range: rangeOf(tok), Name: name, Value: value}
}

func (p *Parser) parseIfStmt() ast.Statement {
	tok := p.current
	p.advance() // consume 'if'

	if !p.expect(tokens.LParen) {
		return nil
	}
	cond := p.parseExpression(LOWEST)
	if !p.expect(tokens.RParen) {
		return nil
	}
	then := p.parseBlock()
	stmt := &ast.IfStmt{Range: rangeOf(tok), Cond: cond, Then: then}

	if p.is(tokens.KeywordElse) {
		p.advance()
		if p.is(tokens.KeywordIf) {
			stmt.Else = p.parseIfStmt()
		} else {
			stmt.Else = p.parseBlock()
		}
	}
	return stmt
}

func (p *Parser) parseReturnStmt() ast.Statement {
	tok := p.current
	p.advance() // consume 'return'

	if p.is(tokens.Semicolon) {
		p.advance()
		return &ast.ReturnStmt{Range: rangeOf(tok)}
	}
	value := p.parseExpression(LOWEST)
	p.expect(tokens.Semicolon)
	return &ast.ReturnStmt{Range: rangeOf(tok), Value: value}
}

// parseAssignOrExprStmt implements the grammar's shared prefix between
// `assignStmt := lvalue '=' expr ';'` and `exprStmt := expr ';'`: parse an
// expression, then check whether an '=' follows.
func (p *Parser) parseAssignOrExprStmt() ast.Statement {
	tok := p.current
	expr := p.parseExpression(LOWEST)

	if p.is(tokens.Assign) {
		p.advance()
		value := p.parseExpression(LOWEST)
		p.expect(tokens.Semicolon)
		return &ast.AssignStmt{Range: rangeOf(tok), Target: expr, Value: value}
	}
	p.expect(tokens.Semicolon)
	return &ast.ExprStmt{Range: rangeOf(tok), Value: expr}
}
