/*
 * LC3VM - Fetch/decode/execute interpreter and trap service.
 *
 * Copyright 2024, LC3VM Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package interp implements the LC-3 load/tick/run cycle: it loads a
// program image into a state.State, then repeatedly fetches a word,
// decodes it, executes it, and services the handful of console traps.
package interp

import (
	"errors"
	"fmt"

	"lc3vm/console"
	"lc3vm/emu/decode"
	"lc3vm/emu/state"
)

// LEASetsCC selects between the two LC-3 revisions' behavior for LEA's
// condition-code update: true (the default) matches the pre-2019,
// majority implementation; false reproduces the 2019 revision, which
// dropped CC-on-LEA.
var LEASetsCC = true

const pcInit uint16 = 0x3000

// Trap vectors this VM implements. Any other vector is fatal.
const (
	TrapGetc = 0x20
	TrapOut  = 0x21
	TrapPuts = 0x22
	TrapHalt = 0x25
)

// ErrEmptyProgram is returned by Load when given a zero-length image.
var ErrEmptyProgram = errors.New("empty program: an object image must contain at least the origin word")

// UnsupportedTrapError reports a TRAP vector this VM does not
// implement.
type UnsupportedTrapError struct {
	Vector uint16
}

func (e *UnsupportedTrapError) Error() string {
	return fmt.Sprintf("unsupported trap vector: %#02x", e.Vector)
}

// RTIError reports an attempt to execute RTI, which this VM does not
// implement: there is no privileged/interrupt machinery to return from.
type RTIError struct{}

func (*RTIError) Error() string {
	return "rti is not supported: privileged/interrupt handling is out of scope"
}

// Load places image[1:] contiguously into memory starting at
// image[0] (the origin), then resets the register file: PC <- 0x3000,
// COND <- Z, all general-purpose registers <- 0.
func Load(m state.State, image []uint16) error {
	if len(image) == 0 {
		return ErrEmptyProgram
	}
	origin := image[0]
	for i, word := range image[1:] {
		addr := origin + uint16(i) // 16-bit wrap is a property of uint16 addition.
		if err := m.WriteMem(addr, word); err != nil {
			return fmt.Errorf("loading word %d at %#04x: %w", i, addr, err)
		}
	}
	for r := state.R0; r <= state.R7; r++ {
		m.WriteReg(r, 0)
	}
	m.WriteReg(state.PC, pcInit)
	m.WriteReg(state.COND, state.CondZ)
	return nil
}

// Tick executes exactly one instruction and reports whether the
// interpreter should keep ticking: false means a HALT trap fired.
func Tick(m state.State, con *console.Device) (bool, error) {
	pc := m.ReadReg(state.PC)
	word, err := m.ReadMem(pc)
	if err != nil {
		return false, err
	}

	op, err := decode.Decode(word)
	if err != nil {
		return false, err
	}

	m.WriteReg(state.PC, pc+1) // wraps modulo 2^16 via uint16 overflow.

	return execute(m, con, op)
}

// Run ticks until HALT or an error. Errors are propagated, never
// swallowed: the caller decides what to do with a decode or I/O
// failure mid-run.
func Run(m state.State, con *console.Device) error {
	for {
		cont, err := Tick(m, con)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

func setCond(m state.State, value uint16) {
	switch {
	case value == 0:
		m.WriteReg(state.COND, state.CondZ)
	case value&0x8000 != 0:
		m.WriteReg(state.COND, state.CondN)
	default:
		m.WriteReg(state.COND, state.CondP)
	}
}

func execute(m state.State, con *console.Device, op decode.Operation) (bool, error) {
	switch op.Kind {
	case decode.OpAdd:
		result := m.ReadReg(int(op.SR1)) + operand(m, op.Arg)
		m.WriteReg(int(op.DR), result)
		setCond(m, result)

	case decode.OpAnd:
		result := m.ReadReg(int(op.SR1)) & operand(m, op.Arg)
		m.WriteReg(int(op.DR), result)
		setCond(m, result)

	case decode.OpBr:
		cond := m.ReadReg(state.COND)
		taken := (op.N && cond&state.CondN != 0) ||
			(op.Z && cond&state.CondZ != 0) ||
			(op.P && cond&state.CondP != 0)
		if taken {
			m.WriteReg(state.PC, m.ReadReg(state.PC)+op.PCOffset)
		}

	case decode.OpJmp:
		m.WriteReg(state.PC, m.ReadReg(int(op.BaseR)))

	case decode.OpJsr:
		m.WriteReg(state.R7, m.ReadReg(state.PC))
		m.WriteReg(state.PC, m.ReadReg(state.PC)+op.PCOffset)

	case decode.OpJsrr:
		m.WriteReg(state.R7, m.ReadReg(state.PC))
		m.WriteReg(state.PC, m.ReadReg(int(op.BaseR)))

	case decode.OpLd:
		value, err := m.ReadMem(m.ReadReg(state.PC) + op.PCOffset)
		if err != nil {
			return false, err
		}
		m.WriteReg(int(op.DR), value)
		setCond(m, value)

	case decode.OpLdi:
		addr, err := m.ReadMem(m.ReadReg(state.PC) + op.PCOffset)
		if err != nil {
			return false, err
		}
		value, err := m.ReadMem(addr)
		if err != nil {
			return false, err
		}
		m.WriteReg(int(op.DR), value)
		setCond(m, value)

	case decode.OpLdr:
		value, err := m.ReadMem(m.ReadReg(int(op.BaseR)) + op.Offset)
		if err != nil {
			return false, err
		}
		m.WriteReg(int(op.DR), value)
		setCond(m, value)

	case decode.OpLea:
		value := m.ReadReg(state.PC) + op.PCOffset
		m.WriteReg(int(op.DR), value)
		if LEASetsCC {
			setCond(m, value)
		}

	case decode.OpNot:
		value := ^m.ReadReg(int(op.SR))
		m.WriteReg(int(op.DR), value)
		setCond(m, value)

	case decode.OpRti:
		return false, &RTIError{}

	case decode.OpSt:
		if err := m.WriteMem(m.ReadReg(state.PC)+op.PCOffset, m.ReadReg(int(op.SR))); err != nil {
			return false, err
		}

	case decode.OpSti:
		addr, err := m.ReadMem(m.ReadReg(state.PC) + op.PCOffset)
		if err != nil {
			return false, err
		}
		if err := m.WriteMem(addr, m.ReadReg(int(op.SR))); err != nil {
			return false, err
		}

	case decode.OpStr:
		addr := m.ReadReg(int(op.BaseR)) + op.Offset
		if err := m.WriteMem(addr, m.ReadReg(int(op.SR))); err != nil {
			return false, err
		}

	case decode.OpTrap:
		m.WriteReg(state.R7, m.ReadReg(state.PC))
		return trap(m, con, op.TrapVector)

	default:
		panic(fmt.Sprintf("unreachable: unknown decoded operation kind %d", op.Kind))
	}
	return true, nil
}

func operand(m state.State, arg decode.Argument) uint16 {
	if arg.Kind == decode.ArgImmediate {
		return arg.Value
	}
	return m.ReadReg(int(arg.Register))
}

func trap(m state.State, con *console.Device, vector uint16) (bool, error) {
	switch vector {
	case TrapGetc:
		b, err := con.ReadByte()
		if err != nil {
			return false, err
		}
		m.WriteReg(state.R0, uint16(b))
		return true, nil

	case TrapOut:
		if err := con.WriteByte(byte(m.ReadReg(state.R0))); err != nil {
			return false, err
		}
		return true, nil

	case TrapPuts:
		bytes, err := m.CString(m.ReadReg(state.R0))
		if err != nil {
			return false, err
		}
		for _, b := range bytes {
			if err := con.WriteByte(b); err != nil {
				return false, err
			}
		}
		return true, nil

	case TrapHalt:
		return false, nil

	default:
		return false, &UnsupportedTrapError{Vector: vector}
	}
}
