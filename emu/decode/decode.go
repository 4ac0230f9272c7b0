/*
 * LC3VM - Instruction decoder.
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

// Package decode turns a 16-bit LC-3 instruction word into a typed
// Operation. Decode is a pure, stateless function: the same code always
// produces the same Operation or the same error, and calling it never
// mutates any state.
//
// ISA reference: https://www.jmeiners.com/lc3-vm/supplies/lc3-isa.pdf
package decode

import "fmt"

// Register names a general-purpose register, 0 through 7. PC and COND
// live outside this range and are never produced by the decoder itself;
// they are written only by the interpreter.
type Register int

// ArgKind tags the two shapes an ADD/AND second operand can take.
type ArgKind int

const (
	ArgRegister ArgKind = iota
	ArgImmediate
)

// Argument is the second operand of ADD/AND: either a register or a
// 5-bit sign-extended immediate already widened to 16 bits.
type Argument struct {
	Kind     ArgKind
	Register Register
	Value    uint16
}

// Kind enumerates the fifteen legal opcodes plus the decodable-but-
// unsupported RTI.
type Kind int

const (
	OpAdd Kind = iota
	OpAnd
	OpBr
	OpJmp
	OpJsr
	OpJsrr
	OpLd
	OpLdi
	OpLdr
	OpLea
	OpNot
	OpRti
	OpSt
	OpSti
	OpStr
	OpTrap
)

// Operation is a decoded instruction. Only the fields relevant to Kind
// are meaningful; the rest are left at their zero value.
type Operation struct {
	Kind Kind

	DR  Register
	SR  Register
	SR1 Register
	Arg Argument

	BaseR Register

	N, Z, P bool

	PCOffset   uint16
	Offset     uint16
	TrapVector uint16
}

// FixedMismatch reports that a field required to carry a constant
// bit pattern did not. Lo/Hi is the half-open bit range, counted from
// bit 0 at the low end, that was expected to equal Expected.
type FixedMismatch struct {
	Code     uint16
	Lo, Hi   int
	Expected uint16
	Actual   uint16
}

func (e *FixedMismatch) Error() string {
	width := e.Hi - e.Lo
	var buf []byte
	buf = appendBits(buf, uint32(e.Code>>e.Hi), 16-e.Hi)
	buf = append(buf, '[')
	buf = appendBits(buf, uint32((e.Code>>e.Lo)&((1<<width)-1)), width)
	buf = append(buf, ']')
	if e.Lo > 0 {
		buf = appendBits(buf, uint32(e.Code&((1<<e.Lo)-1)), e.Lo)
	}
	return fmt.Sprintf("fixed segment mismatch: expected=%0*b, actual=%0*b, op=%s",
		width, e.Expected, width, e.Actual, buf)
}

// IllegalOpcode reports the one reserved 4-bit opcode prefix (1101).
type IllegalOpcode struct {
	Code uint16
}

func (e *IllegalOpcode) Error() string {
	return fmt.Sprintf("illegal op code: code=%04b, op=%016b", e.Code>>12, e.Code)
}

func appendBits(buf []byte, v uint32, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		if (v>>uint(i))&1 != 0 {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}
	return buf
}

// cursor reads fields out of a 16-bit instruction word from the most
// significant bit down, decrementing position by the width consumed
// after every read.
type cursor struct {
	code     uint16
	position int
}

func (c *cursor) unsigned(width int) uint16 {
	c.position -= width
	return (c.code >> uint(c.position)) & uint16((1<<width)-1)
}

func (c *cursor) signed(width int) uint16 {
	value := c.unsigned(width)
	if value>>uint(width-1) == 1 {
		return value | (0xFFFF << uint(width))
	}
	return value
}

func (c *cursor) fixed(width int, expected uint16) error {
	lo := c.position - width
	actual := c.unsigned(width)
	if actual != expected {
		return &FixedMismatch{Code: c.code, Lo: lo, Hi: lo + width, Expected: expected, Actual: actual}
	}
	return nil
}

func (c *cursor) register() Register {
	return Register(c.unsigned(3))
}

func (c *cursor) argument() (Argument, error) {
	if c.unsigned(1) == 1 {
		return Argument{Kind: ArgImmediate, Value: c.signed(5)}, nil
	}
	if err := c.fixed(2, 0b00); err != nil {
		return Argument{}, err
	}
	return Argument{Kind: ArgRegister, Register: c.register()}, nil
}

// Decode parses one 16-bit instruction word. It never panics on a
// well-formed 16-bit input: every failure is reported as a
// *FixedMismatch or *IllegalOpcode error.
func Decode(code uint16) (Operation, error) {
	c := &cursor{code: code, position: 16}
	switch c.unsigned(4) {
	case 0b0001:
		dr := c.register()
		sr1 := c.register()
		arg, err := c.argument()
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpAdd, DR: dr, SR1: sr1, Arg: arg}, nil

	case 0b0101:
		dr := c.register()
		sr1 := c.register()
		arg, err := c.argument()
		if err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpAnd, DR: dr, SR1: sr1, Arg: arg}, nil

	case 0b0000:
		n := c.unsigned(1) == 1
		z := c.unsigned(1) == 1
		p := c.unsigned(1) == 1
		off := c.signed(9)
		return Operation{Kind: OpBr, N: n, Z: z, P: p, PCOffset: off}, nil

	case 0b1100:
		if err := c.fixed(3, 0); err != nil {
			return Operation{}, err
		}
		baseR := c.register()
		if err := c.fixed(6, 0); err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpJmp, BaseR: baseR}, nil

	case 0b0100:
		if c.unsigned(1) == 1 {
			off := c.signed(11)
			return Operation{Kind: OpJsr, PCOffset: off}, nil
		}
		if err := c.fixed(2, 0); err != nil {
			return Operation{}, err
		}
		baseR := c.register()
		if err := c.fixed(6, 0); err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpJsrr, BaseR: baseR}, nil

	case 0b0010:
		dr := c.register()
		off := c.signed(9)
		return Operation{Kind: OpLd, DR: dr, PCOffset: off}, nil

	case 0b1010:
		dr := c.register()
		off := c.signed(9)
		return Operation{Kind: OpLdi, DR: dr, PCOffset: off}, nil

	case 0b0110:
		dr := c.register()
		baseR := c.register()
		off := c.signed(6)
		return Operation{Kind: OpLdr, DR: dr, BaseR: baseR, Offset: off}, nil

	case 0b1110:
		dr := c.register()
		off := c.signed(9)
		return Operation{Kind: OpLea, DR: dr, PCOffset: off}, nil

	case 0b1001:
		dr := c.register()
		sr := c.register()
		if err := c.fixed(6, 0b111111); err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpNot, DR: dr, SR: sr}, nil

	case 0b1000:
		if err := c.fixed(12, 0); err != nil {
			return Operation{}, err
		}
		return Operation{Kind: OpRti}, nil

	case 0b0011:
		sr := c.register()
		off := c.signed(9)
		return Operation{Kind: OpSt, SR: sr, PCOffset: off}, nil

	case 0b1011:
		sr := c.register()
		off := c.signed(9)
		return Operation{Kind: OpSti, SR: sr, PCOffset: off}, nil

	case 0b0111:
		sr := c.register()
		baseR := c.register()
		off := c.signed(6)
		return Operation{Kind: OpStr, SR: sr, BaseR: baseR, Offset: off}, nil

	case 0b1111:
		if err := c.fixed(4, 0); err != nil {
			return Operation{}, err
		}
		trapVector := c.unsigned(8)
		return Operation{Kind: OpTrap, TrapVector: trapVector}, nil

	case 0b1101:
		return Operation{}, &IllegalOpcode{Code: code}

	default:
		panic("unreachable: all 16 opcode prefixes are covered")
	}
}
