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

// Package value defines the DSL's dynamically-typed runtime value model:
// a small tagged variant (Null, Bool, Int, Float, Str) shared by the AST's
// literal nodes, the VM's value stack, and record fields (spec §3).
package value

import "fmt"

// Kind tags which case of Value is populated.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindStr:
		return "Str"
	default:
		return "Unknown"
	}
}

// Value is the DSL's runtime value: exactly one of Null/Bool/Int/Float/Str is
// meaningful, selected by Kind. Values are immutable and small enough to pass
// by value, deliberately avoiding an interface/boxed representation on the
// hot path (spec §9).
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

var Null = Value{kind: KindNull}

func Bool(b bool) Value     { return Value{kind: KindBool, b: b} }
func Int(i int64) Value     { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func Str(s string) Value    { return Value{kind: KindStr, s: s} }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload; only meaningful when Kind() == KindBool.
func (v Value) AsBool() bool { return v.b }

// AsInt returns the integer payload; only meaningful when Kind() == KindInt.
func (v Value) AsInt() int64 { return v.i }

// AsFloat returns the float payload; only meaningful when Kind() == KindFloat.
func (v Value) AsFloat() float64 { return v.f }

// AsStr returns the string payload; only meaningful when Kind() == KindStr.
func (v Value) AsStr() string { return v.s }

// IsNumeric reports whether the value is an Int or a Float.
func (v Value) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

// Float64 coerces an Int or Float value to float64. Calling it on a
// non-numeric value returns 0.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	default:
		return 0
	}
}

// Truthy implements the DSL's truthiness coercion (spec §3): Bool(true), any
// non-zero number, and any non-empty string are truthy; everything else,
// including Null, is falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindStr:
		return v.s != ""
	default:
		return false
	}
}

// Equal implements value equality: same case and same content. Null equals
// only Null. Numeric comparisons between Int and Float coerce the integer to
// float (spec §3).
func (v Value) Equal(other Value) bool {
	if v.kind == KindNull || other.kind == KindNull {
		return v.kind == other.kind
	}
	if v.IsNumeric() && other.IsNumeric() {
		if v.kind == KindInt && other.kind == KindInt {
			return v.i == other.i
		}
		return v.Float64() == other.Float64()
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindStr:
		return v.s == other.s
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindStr:
		return v.s
	default:
		return "?"
	}
}

// HashKey returns a value suitable as a map key that collapses Int/Float
// values with equal numeric content is NOT attempted here (equality across
// Int/Float requires coercion, which a plain map key can't express); this is
// used only to key identical-kind, identical-content constants (see
// bytecode's constant-pool dedup), not for numeric-coercing lookups.
func (v Value) HashKey() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindStr:
		return v.s
	default:
		return nil
	}
}
