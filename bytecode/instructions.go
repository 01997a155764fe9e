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

package bytecode

import "encoding/binary"

// Instructions is a flat, concatenated sequence of encoded instructions: one
// opcode byte followed by that opcode's operand bytes, repeated. Jump
// targets are absolute byte offsets into this slice.
type Instructions []byte

// MakeInstruction encodes op and its operands (little-endian, per the
// widths in its OpDefinition) and returns the resulting bytes. An unknown
// opcode or an operand count mismatch yields an empty slice.
func MakeInstruction(op Opcode, operands ...int) []byte {
	def, err := Get(op)
	if err != nil || len(operands) != len(def.OperandWidths) {
		return []byte{}
	}

	length := 1
	for _, w := range def.OperandWidths {
		length += w
	}
	instr := make([]byte, length)
	instr[0] = byte(op)

	offset := 1
	for i, operand := range operands {
		offset = putOperand(instr, offset, def.OperandWidths[i], operand)
	}
	return instr
}

func putOperand(buf []byte, offset, width, value int) int {
	switch width {
	case 1:
		buf[offset] = byte(value)
	case 2:
		binary.LittleEndian.PutUint16(buf[offset:], uint16(value))
	case 4:
		binary.LittleEndian.PutUint32(buf[offset:], uint32(value))
	}
	return offset + width
}

func readOperand(buf []byte, offset, width int) int {
	switch width {
	case 1:
		return int(buf[offset])
	case 2:
		return int(binary.LittleEndian.Uint16(buf[offset:]))
	case 4:
		return int(binary.LittleEndian.Uint32(buf[offset:]))
	}
	return 0
}

// ReadOperands decodes the operands of the instruction at ins[offset],
// assuming ins[offset] already holds op's opcode byte. It returns the
// decoded operand values and the total width (opcode byte + operands) of
// the instruction, for advancing a reader's cursor.
func ReadOperands(def *OpDefinition, ins Instructions, offset int) ([]int, int) {
	operands := make([]int, len(def.OperandWidths))
	cursor := offset + 1
	for i, width := range def.OperandWidths {
		operands[i] = readOperand(ins, cursor, width)
		cursor += width
	}
	return operands, cursor - offset
}

// Len returns the total encoded byte width of an instruction for op.
func Len(op Opcode) int {
	def, err := Get(op)
	if err != nil {
		return 1
	}
	n := 1
	for _, w := range def.OperandWidths {
		n += w
	}
	return n
}
