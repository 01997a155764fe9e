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

// Package xerr defines the engine's error taxonomy (spec §7): one Go type
// per category, each wrapped at the point it's raised with
// github.com/pkg/errors so callers can both inspect (errors.As) and print a
// stack trace in development builds.
package xerr

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sentriefraud/ruleengine/tokens"
)

type LexicalError struct {
	Pos     tokens.Range
	Message string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at %s: %s", e.Pos, e.Message)
}

func ErrLexical(pos tokens.Range, format string, args ...any) error {
	return errors.WithStack(&LexicalError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

type ParseError struct {
	Pos     tokens.Range
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Message)
}

func ErrParse(pos tokens.Range, format string, args ...any) error {
	return errors.WithStack(&ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

type CompileError struct {
	Pos     tokens.Range
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error at %s: %s", e.Pos, e.Message)
}

func ErrCompile(pos tokens.Range, format string, args ...any) error {
	return errors.WithStack(&CompileError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string { return "decode error: " + e.Message }

func ErrDecode(format string, args ...any) error {
	return errors.WithStack(&DecodeError{Message: fmt.Sprintf(format, args...)})
}

type TypeError struct {
	RuleName string
	Message  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error in rule %q: %s", e.RuleName, e.Message)
}

func ErrType(ruleName string, format string, args ...any) error {
	return errors.WithStack(&TypeError{RuleName: ruleName, Message: fmt.Sprintf(format, args...)})
}

type ArithmeticError struct {
	RuleName string
	Message  string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error in rule %q: %s", e.RuleName, e.Message)
}

func ErrArithmetic(ruleName string, format string, args ...any) error {
	return errors.WithStack(&ArithmeticError{RuleName: ruleName, Message: fmt.Sprintf(format, args...)})
}

type ValidationError struct {
	RuleName string
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in rule %q: %s", e.RuleName, e.Message)
}

func ErrValidation(ruleName string, format string, args ...any) error {
	return errors.WithStack(&ValidationError{RuleName: ruleName, Message: fmt.Sprintf(format, args...)})
}

type StackOverflowError struct {
	RuleName string
	Message  string
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("stack overflow in rule %q: %s", e.RuleName, e.Message)
}

func ErrStackOverflow(ruleName string, format string, args ...any) error {
	return errors.WithStack(&StackOverflowError{RuleName: ruleName, Message: fmt.Sprintf(format, args...)})
}
