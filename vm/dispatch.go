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
	"github.com/sentriefraud/ruleengine/bytecode"
	"github.com/sentriefraud/ruleengine/value"
	"github.com/sentriefraud/ruleengine/xerr"
)

// runRule pushes rule's root frame (zero locals, grown on demand — see
// callFrame's doc comment) and dispatches until EndRule, Halt, or an error.
func (m *VM) runRule(rule bytecode.RuleDef) error {
	if len(m.frames) >= m.limits.MaxFrames {
		return xerr.ErrStackOverflow(rule.Name, "call-frame depth exceeds %d", m.limits.MaxFrames)
	}
	stackBase := m.stack.len()
	frameBase := len(m.frames)
	m.frames = append(m.frames, newRootFrame(rule.Name))
	m.ip = rule.EntryIP

	err := m.run(rule.Name)

	m.frames = m.frames[:frameBase]           // also drops function frames left by an error inside a call
	m.stack.slots = m.stack.slots[:stackBase] // discard anything left by a failed rule body
	return err
}

// run is the fetch-decode-dispatch loop. It returns on EndRule/Halt, when a
// Return pops the rule's root frame, or on the first runtime error; runRule
// then restores the frame and value stacks to their depth before the rule.
func (m *VM) run(ruleName string) error {
	rootDepth := len(m.frames)

	for {
		op := bytecode.Opcode(m.prg.Code[m.ip])
		def, err := bytecode.Get(op)
		if err != nil {
			return xerr.ErrType(ruleName, "%s", err)
		}
		operands, width := bytecode.ReadOperands(def, m.prg.Code, m.ip)
		nextIP := m.ip + width
		frame := m.frames[len(m.frames)-1]

		switch op {
		case bytecode.LoadConst:
			if err := m.stack.push(ruleName, m.prg.Constants[operands[0]]); err != nil {
				return err
			}

		case bytecode.LoadLocal:
			if err := m.stack.push(ruleName, frame.load(operands[0])); err != nil {
				return err
			}

		case bytecode.StoreLocal:
			frame.store(operands[0], m.stack.pop())

		case bytecode.LoadField:
			rec := m.ctx.record(recordID(operands[0]))
			fname := m.prg.Constants[operands[1]].AsStr()
			if err := m.stack.push(ruleName, rec.Get(fname)); err != nil {
				return err
			}

		case bytecode.StoreField:
			rec := m.ctx.record(recordID(operands[0]))
			fname := m.prg.Constants[operands[1]].AsStr()
			rec.Set(fname, m.stack.pop())

		case bytecode.Add, bytecode.Sub, bytecode.Mul, bytecode.Div, bytecode.Mod:
			b, a := m.stack.pop(), m.stack.pop()
			result, err := binaryArith(op, a, b, ruleName)
			if err != nil {
				return err
			}
			if err := m.stack.push(ruleName, result); err != nil {
				return err
			}

		case bytecode.Neg:
			a := m.stack.pop()
			if !a.IsNumeric() {
				return xerr.ErrType(ruleName, "unary - requires a numeric operand, got %s", a.Kind())
			}
			if a.Kind() == value.KindInt {
				if err := m.stack.push(ruleName, value.Int(-a.AsInt())); err != nil {
					return err
				}
			} else if err := m.stack.push(ruleName, value.Float(-a.AsFloat())); err != nil {
				return err
			}

		case bytecode.Eq, bytecode.Ne, bytecode.Lt, bytecode.Le, bytecode.Gt, bytecode.Ge:
			b, a := m.stack.pop(), m.stack.pop()
			result, err := compare(op, a, b, ruleName)
			if err != nil {
				return err
			}
			if err := m.stack.push(ruleName, result); err != nil {
				return err
			}

		case bytecode.Not:
			a := m.stack.pop()
			if err := m.stack.push(ruleName, value.Bool(!a.Truthy())); err != nil {
				return err
			}

		case bytecode.And:
			b, a := m.stack.pop(), m.stack.pop()
			if err := m.stack.push(ruleName, value.Bool(a.Truthy() && b.Truthy())); err != nil {
				return err
			}

		case bytecode.Or:
			b, a := m.stack.pop(), m.stack.pop()
			if err := m.stack.push(ruleName, value.Bool(a.Truthy() || b.Truthy())); err != nil {
				return err
			}

		case bytecode.Jump:
			nextIP = operands[0]

		case bytecode.JumpIfFalse:
			if !m.stack.pop().Truthy() {
				nextIP = operands[0]
			}

		case bytecode.JumpIfTrue:
			if m.stack.pop().Truthy() {
				nextIP = operands[0]
			}

		case bytecode.Call:
			target, err := m.call(ruleName, operands[0], operands[1], nextIP)
			if err != nil {
				return err
			}
			nextIP = target

		case bytecode.Return:
			retVal := m.stack.pop()
			nextIP = frame.returnIP
			m.frames = m.frames[:len(m.frames)-1]
			if err := m.stack.push(ruleName, retVal); err != nil {
				return err
			}

		case bytecode.ReturnVoid:
			nextIP = frame.returnIP
			m.frames = m.frames[:len(m.frames)-1]
			if err := m.stack.push(ruleName, value.Null); err != nil {
				return err
			}

		case bytecode.EmitCreateCase:
			reason, severity := m.stack.pop(), m.stack.pop()
			m.ctx.actions = append(m.ctx.actions, value.NewCreateCase(severity.AsStr(), reason.AsStr()))

		case bytecode.EmitCreateComment:
			comment := m.stack.pop()
			m.ctx.actions = append(m.ctx.actions, value.NewCreateComment(comment.AsStr()))

		case bytecode.EmitSendAuthAdvise:
			template, channel := m.stack.pop(), m.stack.pop()
			m.ctx.actions = append(m.ctx.actions, value.NewSendAuthAdvise(channel.AsStr(), template.AsStr()))

		case bytecode.EmitSetFraudScore:
			score := m.stack.pop()
			if !score.IsNumeric() {
				return xerr.ErrValidation(ruleName, "setFraudScore requires a numeric argument, got %s", score.Kind())
			}
			m.ctx.actions = append(m.ctx.actions, value.NewSetFraudScore(score.Float64()))

		case bytecode.EmitSetDecision:
			decision := m.stack.pop()
			if decision.Kind() != value.KindStr || !value.IsValidDecision(decision.AsStr()) {
				return xerr.ErrValidation(ruleName, "setDecision: %q is not one of ALLOW/BLOCK/REVIEW", decision.String())
			}
			m.ctx.actions = append(m.ctx.actions, value.NewSetDecision(decision.AsStr()))

		case bytecode.EmitCustom:
			argc := operands[1]
			args := make([]value.Value, argc)
			for i := argc - 1; i >= 0; i-- {
				args[i] = m.stack.pop()
			}
			name := m.prg.Constants[operands[0]].AsStr()
			m.ctx.actions = append(m.ctx.actions, value.NewCustom(name, args))

		case bytecode.BeginRule:
			// No-op at runtime: the rule-table iteration in Execute already
			// knows which rule it's running.

		case bytecode.EndRule:
			return nil

		case bytecode.Halt:
			m.halted = true
			return nil

		case bytecode.Pop:
			m.stack.pop()

		case bytecode.Dup:
			if err := m.stack.push(ruleName, m.stack.peek()); err != nil {
				return err
			}

		default:
			return xerr.ErrType(ruleName, "unimplemented opcode %s", op)
		}

		m.ip = nextIP
		if len(m.frames) < rootDepth {
			return nil
		}
	}
}
