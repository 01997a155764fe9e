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
	"testing"

	"github.com/sentriefraud/ruleengine/tokens"
	"github.com/stretchr/testify/suite"
)

// LexerTestSuite exercises tokenization of the DSL's grammar primitives
// (spec §4.1).
type LexerTestSuite struct {
	suite.Suite
}

func (s *LexerTestSuite) allTokens(src string) []tokens.Instance {
	l := NewFromString(src, "t.dsl")
	var out []tokens.Instance
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Kind == tokens.EOF {
			return out
		}
	}
}

func (s *LexerTestSuite) TestKeywordsAndIdentifiers() {
	toks := s.allTokens("rule function if else return let true false null priority enabled foo_bar")
	kinds := make([]tokens.Kind, 0, len(toks))
	for _, t := range toks {
		kinds = append(kinds, t.Kind)
	}
	s.Equal([]tokens.Kind{
		tokens.KeywordRule, tokens.KeywordFunction, tokens.KeywordIf, tokens.KeywordElse,
		tokens.KeywordReturn, tokens.KeywordLet, tokens.KeywordTrue, tokens.KeywordFalse,
		tokens.KeywordNull, tokens.KeywordPriority, tokens.KeywordEnabled, tokens.Ident, tokens.EOF,
	}, kinds)
}

func (s *LexerTestSuite) TestIntAndFloatLiterals() {
	toks := s.allTokens("42 3.14 0")
	s.Require().Len(toks, 4)
	s.Equal(tokens.Int, toks[0].Kind)
	s.Equal("42", toks[0].Value)
	s.Equal(tokens.Float, toks[1].Kind)
	s.Equal("3.14", toks[1].Value)
	s.Equal(tokens.Int, toks[2].Kind)
}

func (s *LexerTestSuite) TestMalformedTrailingDotIsError() {
	toks := s.allTokens("1.")
	s.Equal(tokens.Error, toks[0].Kind)
}

func (s *LexerTestSuite) TestStringLiteralWithEscapes() {
	toks := s.allTokens(`"hello\nworld\""`)
	s.Require().Len(toks, 2)
	s.Equal(tokens.String, toks[0].Kind)
	s.Equal("hello\nworld\"", toks[0].Value)
}

func (s *LexerTestSuite) TestUnterminatedStringIsError() {
	toks := s.allTokens(`"unterminated`)
	s.Equal(tokens.Error, toks[0].Kind)
}

func (s *LexerTestSuite) TestTwoCharacterOperators() {
	toks := s.allTokens("== != <= >= && ||")
	kinds := make([]tokens.Kind, 0, 6)
	for _, t := range toks[:6] {
		kinds = append(kinds, t.Kind)
	}
	s.Equal([]tokens.Kind{tokens.Eq, tokens.Neq, tokens.Lte, tokens.Gte, tokens.AndAnd, tokens.OrOr}, kinds)
}

func (s *LexerTestSuite) TestSingleCharacterOperatorsAndPunctuation() {
	toks := s.allTokens("+ - * / % < > ! = . { } ( ) , ; :")
	want := []tokens.Kind{
		tokens.Plus, tokens.Minus, tokens.Star, tokens.Slash, tokens.Percent,
		tokens.Lt, tokens.Gt, tokens.Bang, tokens.Assign, tokens.Dot,
		tokens.LBrace, tokens.RBrace, tokens.LParen, tokens.RParen,
		tokens.Comma, tokens.Semicolon, tokens.Colon,
	}
	s.Require().Len(toks, len(want)+1)
	for i, k := range want {
		s.Equal(k, toks[i].Kind, "token %d", i)
	}
}

func (s *LexerTestSuite) TestLineCommentIsSkippedByParserButEmittedByLexer() {
	toks := s.allTokens("// a comment\n42")
	s.Require().Len(toks, 3)
	s.Equal(tokens.Comment, toks[0].Kind)
	s.Equal("a comment", toks[0].Value)
	s.Equal(tokens.Int, toks[1].Kind)
}

func (s *LexerTestSuite) TestFieldAccessDotBetweenIdentifiers() {
	toks := s.allTokens("txn.amount")
	s.Require().Len(toks, 4)
	s.Equal(tokens.Ident, toks[0].Kind)
	s.Equal(tokens.Dot, toks[1].Kind)
	s.Equal(tokens.Ident, toks[2].Kind)
}

func TestLexerTestSuite(t *testing.T) {
	suite.Run(t, new(LexerTestSuite))
}
