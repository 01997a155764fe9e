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

package vm

import (
	"math"

	"github.com/sentriefraud/ruleengine/bytecode"
	"github.com/sentriefraud/ruleengine/value"
	"github.com/sentriefraud/ruleengine/xerr"
)

// binaryArith implements Add/Sub/Mul/Div/Mod's numeric and string semantics
// (spec §4.4): int⊕int stays Int with two's-complement wraparound (Go's
// native overflow behavior already matches), any Float operand promotes the
// result to Float, integer division/modulo by zero is an ArithmeticError,
// float division by zero yields the IEEE-754 inf/NaN Go already produces,
// and `+` on two strings concatenates while every other string use is a
// TypeError.
func binaryArith(op bytecode.Opcode, a, b value.Value, ruleName string) (value.Value, error) {
	if a.Kind() == value.KindStr || b.Kind() == value.KindStr {
		if op == bytecode.Add && a.Kind() == value.KindStr && b.Kind() == value.KindStr {
			return value.Str(a.AsStr() + b.AsStr()), nil
		}
		return value.Null, xerr.ErrType(ruleName, "operator %s is not defined for strings", op)
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return value.Null, xerr.ErrType(ruleName, "operator %s requires numeric operands, got %s and %s", op, a.Kind(), b.Kind())
	}

	if a.Kind() == value.KindInt && b.Kind() == value.KindInt {
		x, y := a.AsInt(), b.AsInt()
		switch op {
		case bytecode.Add:
			return value.Int(x + y), nil
		case bytecode.Sub:
			return value.Int(x - y), nil
		case bytecode.Mul:
			return value.Int(x * y), nil
		case bytecode.Div:
			if y == 0 {
				return value.Null, xerr.ErrArithmetic(ruleName, "integer division by zero")
			}
			return value.Int(x / y), nil
		case bytecode.Mod:
			if y == 0 {
				return value.Null, xerr.ErrArithmetic(ruleName, "integer modulo by zero")
			}
			return value.Int(x % y), nil
		}
	}

	x, y := a.Float64(), b.Float64()
	switch op {
	case bytecode.Add:
		return value.Float(x + y), nil
	case bytecode.Sub:
		return value.Float(x - y), nil
	case bytecode.Mul:
		return value.Float(x * y), nil
	case bytecode.Div:
		return value.Float(x / y), nil // Go yields ±Inf/NaN natively; no error
	case bytecode.Mod:
		return value.Float(math.Mod(x, y)), nil
	}
	return value.Null, xerr.ErrType(ruleName, "unsupported arithmetic opcode %s", op)
}

// compare implements Eq/Ne (any value kinds, via value.Value.Equal) and the
// ordering operators (numeric operands only; anything else is a TypeError).
func compare(op bytecode.Opcode, a, b value.Value, ruleName string) (value.Value, error) {
	switch op {
	case bytecode.Eq:
		return value.Bool(a.Equal(b)), nil
	case bytecode.Ne:
		return value.Bool(!a.Equal(b)), nil
	}

	if !a.IsNumeric() || !b.IsNumeric() {
		return value.Null, xerr.ErrType(ruleName, "operator %s requires numeric operands, got %s and %s", op, a.Kind(), b.Kind())
	}
	x, y := a.Float64(), b.Float64()
	switch op {
	case bytecode.Lt:
		return value.Bool(x < y), nil
	case bytecode.Le:
		return value.Bool(x <= y), nil
	case bytecode.Gt:
		return value.Bool(x > y), nil
	case bytecode.Ge:
		return value.Bool(x >= y), nil
	default:
		return value.Null, xerr.ErrType(ruleName, "unsupported comparison opcode %s", op)
	}
}
