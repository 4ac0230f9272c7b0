/*
 * LC3VM - Machine state: memory, registers, memory-mapped I/O.
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

// Package state owns the 64Ki-word memory and the 10-word register file
// that together make up an LC-3 machine's mutable state, and mediates
// every read/write, including the memory-mapped console device
// registers.
package state

import "fmt"

const (
	MemSize = 1 << 16 // 64Ki words.

	// General-purpose registers are 0-7; PC and COND sit outside the
	// range a decoded instruction can name directly.
	R0   = 0
	R7   = 7
	PC   = 8
	COND = 9

	NumRegisters = 10
)

// Condition code bit patterns. Exactly one is ever set between ticks.
const (
	CondP uint16 = 1 << 0
	CondZ uint16 = 1 << 1
	CondN uint16 = 1 << 2
)

// Memory-mapped device register addresses. Only the console keyboard
// registers are implemented; the display and machine control registers
// are unsupported, and reading or writing them is always fatal.
const (
	KBSR = 0xFE00
	KBDR = 0xFE02
	DSR  = 0xFE04
	DDR  = 0xFE06
	MCR  = 0xFFFE
)

// Console is the I/O collaborator a Machine dispatches the keyboard
// status/data registers to. It is satisfied by console.Device.
type Console interface {
	HasByte() (bool, error)
	ReadByte() (byte, error)
}

// State is the capability set the interpreter needs from storage:
// register and memory access plus one convenience reader for
// NUL-terminated strings (used by the PUTS trap). Keeping it an
// interface, rather than a concrete struct, lets tests substitute a
// fake in place of a full 64Ki-word Machine.
type State interface {
	ReadReg(id int) uint16
	WriteReg(id int, value uint16)
	ReadMem(addr uint16) (uint16, error)
	WriteMem(addr uint16, value uint16) error
	CString(addr uint16) ([]byte, error)
}

// MMIOError reports an attempt to touch a memory-mapped register
// outside the policy this VM implements: any write to a device
// register, or a read of a register this VM doesn't support.
type MMIOError struct {
	Addr uint16
	Op   string // "read" or "write"
}

func (e *MMIOError) Error() string {
	return fmt.Sprintf("%s access to memory-mapped register %#04x is not supported", e.Op, e.Addr)
}

// Machine is the concrete, array-backed State.
type Machine struct {
	mem [MemSize]uint16
	reg [NumRegisters]uint16
	con Console
}

// New returns a Machine with zeroed memory and registers. Console may be
// nil if the program never reads KBSR/KBDR. With a nil console a KBSR
// read is a fatal error, while a KBDR read yields 0 like any other
// failed keyboard read.
func New(con Console) *Machine {
	return &Machine{con: con}
}

func (m *Machine) ReadReg(id int) uint16 {
	return m.reg[id]
}

func (m *Machine) WriteReg(id int, value uint16) {
	m.reg[id] = value
}

func (m *Machine) ReadMem(addr uint16) (uint16, error) {
	switch addr {
	case KBSR:
		has, err := m.hasByte()
		if err != nil {
			return 0, err
		}
		if has {
			return 0x8000, nil
		}
		return 0x0000, nil
	case KBDR:
		// On I/O failure KBDR yields 0 rather than a fatal error.
		b, err := m.readByte()
		if err != nil {
			return 0, nil
		}
		return uint16(b), nil
	case DSR, DDR, MCR:
		return 0, &MMIOError{Addr: addr, Op: "read"}
	default:
		return m.mem[addr], nil
	}
}

func (m *Machine) WriteMem(addr uint16, value uint16) error {
	switch addr {
	case KBSR, KBDR, DSR, DDR, MCR:
		return &MMIOError{Addr: addr, Op: "write"}
	default:
		m.mem[addr] = value
		return nil
	}
}

// CString collects words starting at addr, stopping before the first
// zero word, returning the low byte of each.
func (m *Machine) CString(addr uint16) ([]byte, error) {
	var out []byte
	for {
		word, err := m.ReadMem(addr)
		if err != nil {
			return nil, err
		}
		if word == 0 {
			return out, nil
		}
		out = append(out, byte(word))
		addr++
	}
}

func (m *Machine) hasByte() (bool, error) {
	if m.con == nil {
		return false, &MMIOError{Addr: KBSR, Op: "read"}
	}
	return m.con.HasByte()
}

func (m *Machine) readByte() (byte, error) {
	if m.con == nil {
		return 0, &MMIOError{Addr: KBDR, Op: "read"}
	}
	return m.con.ReadByte()
}
