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

import "github.com/pkg/errors"

// Validate walks prg's instruction vector and rejects anything a decoder
// must refuse to load (spec §6): unknown opcodes, truncated instructions,
// constant/function indices out of range, unknown record selectors, jump
// targets outside the code, and Call arities that disagree with the callee
// they reference. Local-slot operands and EmitCustom's argument count are
// not checked.
func Validate(prg *Program) error {
	codeLen := len(prg.Code)

	for ip := 0; ip < codeLen; {
		op := Opcode(prg.Code[ip])
		def, err := Get(op)
		if err != nil {
			return errors.Wrapf(err, "bytecode: at ip=%d", ip)
		}
		width := Len(op)
		if ip+width > codeLen {
			return errors.Errorf("bytecode: truncated instruction at ip=%d", ip)
		}
		operands, _ := ReadOperands(def, prg.Code, ip)

		switch op {
		case LoadConst:
			if err := checkIndex("constant", operands[0], len(prg.Constants)); err != nil {
				return wrapAt(ip, err)
			}
		case LoadField, StoreField:
			if operands[0] != int(RecordTxn) && operands[0] != int(RecordProfile) {
				return wrapAt(ip, errors.Errorf("unknown record selector %d", operands[0]))
			}
			if err := checkIndex("constant", operands[1], len(prg.Constants)); err != nil {
				return wrapAt(ip, err)
			}
		case Jump, JumpIfFalse, JumpIfTrue:
			if err := checkIndex("jump target", operands[0], codeLen); err != nil {
				return wrapAt(ip, err)
			}
		case Call:
			fnID, argc := operands[0], operands[1]
			if err := checkIndex("function", fnID, len(prg.Functions)); err != nil {
				return wrapAt(ip, err)
			}
			if want := len(prg.Functions[fnID].ParamNames); want != argc {
				return wrapAt(ip, errors.Errorf("call to %q: arity mismatch (encoded argc=%d, expected %d)",
					prg.Functions[fnID].Name, argc, want))
			}
		case EmitCustom:
			if err := checkIndex("constant", operands[0], len(prg.Constants)); err != nil {
				return wrapAt(ip, err)
			}
		case BeginRule:
			// Operand is a constant-pool string index of the rule's name, not
			// a rule-table index: the table's final index assignment happens
			// only after the post-compile priority sort, which runs after all
			// instruction emission, so a table-index operand would be stale.
			if err := checkIndex("constant", operands[0], len(prg.Constants)); err != nil {
				return wrapAt(ip, err)
			}
		}

		ip += width
	}
	return nil
}

func checkIndex(what string, idx, count int) error {
	if idx < 0 || idx >= count {
		return errors.Errorf("%s index %d out of range (have %d)", what, idx, count)
	}
	return nil
}

func wrapAt(ip int, err error) error {
	return errors.Wrapf(err, "bytecode: at ip=%d", ip)
}
