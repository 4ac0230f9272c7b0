/*
 * LC3VM - Mnemonic rendering for trace logging.
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

// Package trace renders a decoded Operation as a short mnemonic string,
// purely for --trace debug logging. It has no effect on execution.
package trace

import (
	"fmt"

	"lc3vm/emu/decode"
	"lc3vm/util/hex"
)

func reg(r decode.Register) string {
	switch {
	case int(r) == 8:
		return "PC"
	case int(r) == 9:
		return "COND"
	default:
		return fmt.Sprintf("R%d", r)
	}
}

func arg(a decode.Argument) string {
	if a.Kind == decode.ArgImmediate {
		return hex.FormatSigned(a.Value)
	}
	return reg(a.Register)
}

func flags(n, z, p bool) string {
	out := ""
	if n {
		out += "n"
	}
	if z {
		out += "z"
	}
	if p {
		out += "p"
	}
	if out == "" {
		return "-"
	}
	return out
}

// Format renders op in a disassembly-like mnemonic form, e.g.
// "ADD R1, R0, #5" or "BRnzp #-3".
func Format(op decode.Operation) string {
	switch op.Kind {
	case decode.OpAdd:
		return fmt.Sprintf("ADD %s, %s, %s", reg(op.DR), reg(op.SR1), arg(op.Arg))
	case decode.OpAnd:
		return fmt.Sprintf("AND %s, %s, %s", reg(op.DR), reg(op.SR1), arg(op.Arg))
	case decode.OpBr:
		return fmt.Sprintf("BR%s %s", flags(op.N, op.Z, op.P), hex.FormatSigned(op.PCOffset))
	case decode.OpJmp:
		if op.BaseR == 7 {
			return "RET"
		}
		return fmt.Sprintf("JMP %s", reg(op.BaseR))
	case decode.OpJsr:
		return fmt.Sprintf("JSR %s", hex.FormatSigned(op.PCOffset))
	case decode.OpJsrr:
		return fmt.Sprintf("JSRR %s", reg(op.BaseR))
	case decode.OpLd:
		return fmt.Sprintf("LD %s, %s", reg(op.DR), hex.FormatSigned(op.PCOffset))
	case decode.OpLdi:
		return fmt.Sprintf("LDI %s, %s", reg(op.DR), hex.FormatSigned(op.PCOffset))
	case decode.OpLdr:
		return fmt.Sprintf("LDR %s, %s, %s", reg(op.DR), reg(op.BaseR), hex.FormatSigned(op.Offset))
	case decode.OpLea:
		return fmt.Sprintf("LEA %s, %s", reg(op.DR), hex.FormatSigned(op.PCOffset))
	case decode.OpNot:
		return fmt.Sprintf("NOT %s, %s", reg(op.DR), reg(op.SR))
	case decode.OpRti:
		return "RTI"
	case decode.OpSt:
		return fmt.Sprintf("ST %s, %s", reg(op.SR), hex.FormatSigned(op.PCOffset))
	case decode.OpSti:
		return fmt.Sprintf("STI %s, %s", reg(op.SR), hex.FormatSigned(op.PCOffset))
	case decode.OpStr:
		return fmt.Sprintf("STR %s, %s, %s", reg(op.SR), reg(op.BaseR), hex.FormatSigned(op.Offset))
	case decode.OpTrap:
		return fmt.Sprintf("TRAP %s", hex.FormatWord(op.TrapVector))
	default:
		return fmt.Sprintf("<unknown op kind %d>", op.Kind)
	}
}
