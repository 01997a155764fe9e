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

// Package bytecode defines the stack-machine instruction set, the compiled
// program container, and its binary (de)serialization (spec §4.3/§6).
package bytecode

import "fmt"

// Opcode is a single instruction discriminant.
type Opcode byte

const (
	LoadConst Opcode = iota
	LoadLocal
	StoreLocal
	LoadField
	StoreField

	Add
	Sub
	Mul
	Div
	Mod
	Neg

	Eq
	Ne
	Lt
	Le
	Gt
	Ge

	Not
	And
	Or

	Jump
	JumpIfFalse
	JumpIfTrue

	Call
	Return
	ReturnVoid

	EmitCreateCase
	EmitCreateComment
	EmitSendAuthAdvise
	EmitSetFraudScore
	EmitSetDecision
	EmitCustom

	BeginRule
	EndRule
	Halt

	Pop
	Dup
)

// OpDefinition documents an opcode's mnemonic and the byte-width of each of
// its embedded operands, in the order they're encoded.
type OpDefinition struct {
	Name          string
	OperandWidths []int
}

// Record selects which reserved binding a LoadField/StoreField targets.
type Record byte

const (
	RecordTxn Record = iota
	RecordProfile
)

var definitions = map[Opcode]*OpDefinition{
	LoadConst:   {"LoadConst", []int{2}},
	LoadLocal:   {"LoadLocal", []int{2}},
	StoreLocal:  {"StoreLocal", []int{2}},
	LoadField:   {"LoadField", []int{1, 2}}, // record, const-pool field-name index
	StoreField:  {"StoreField", []int{1, 2}},

	Add: {"Add", nil}, Sub: {"Sub", nil}, Mul: {"Mul", nil}, Div: {"Div", nil}, Mod: {"Mod", nil}, Neg: {"Neg", nil},
	Eq: {"Eq", nil}, Ne: {"Ne", nil}, Lt: {"Lt", nil}, Le: {"Le", nil}, Gt: {"Gt", nil}, Ge: {"Ge", nil},
	Not: {"Not", nil}, And: {"And", nil}, Or: {"Or", nil},

	Jump:        {"Jump", []int{4}},
	JumpIfFalse: {"JumpIfFalse", []int{4}},
	JumpIfTrue:  {"JumpIfTrue", []int{4}},

	Call:       {"Call", []int{2, 1}}, // fn_id, argc
	Return:     {"Return", nil},
	ReturnVoid: {"ReturnVoid", nil},

	EmitCreateCase:      {"EmitCreateCase", nil},
	EmitCreateComment:   {"EmitCreateComment", nil},
	EmitSendAuthAdvise:  {"EmitSendAuthAdvise", nil},
	EmitSetFraudScore:   {"EmitSetFraudScore", nil},
	EmitSetDecision:     {"EmitSetDecision", nil},
	EmitCustom:          {"EmitCustom", []int{2, 1}}, // const-pool name index, argc

	BeginRule: {"BeginRule", []int{2}},
	EndRule:   {"EndRule", nil},
	Halt:      {"Halt", nil},

	Pop: {"Pop", nil},
	Dup: {"Dup", nil},
}

// Get returns the definition for op, or an error if op is unrecognized.
func Get(op Opcode) (*OpDefinition, error) {
	def, ok := definitions[op]
	if !ok {
		return nil, fmt.Errorf("bytecode: opcode %d undefined", op)
	}
	return def, nil
}

func (op Opcode) String() string {
	if def, ok := definitions[op]; ok {
		return def.Name
	}
	return fmt.Sprintf("Opcode(%d)", byte(op))
}
