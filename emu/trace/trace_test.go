package trace

/*
 * LC3VM - Mnemonic rendering tests.
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

import (
	"testing"

	"lc3vm/emu/decode"
)

func TestFormatAdd(t *testing.T) {
	op := decode.Operation{
		Kind: decode.OpAdd,
		DR:   1, SR1: 0,
		Arg: decode.Argument{Kind: decode.ArgImmediate, Value: 5},
	}
	if got, want := Format(op), "ADD R1, R0, #5"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatAddRegister(t *testing.T) {
	op := decode.Operation{
		Kind: decode.OpAdd,
		DR:   3, SR1: 2,
		Arg: decode.Argument{Kind: decode.ArgRegister, Register: 1},
	}
	if got, want := Format(op), "ADD R3, R2, R1"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatBr(t *testing.T) {
	op := decode.Operation{Kind: decode.OpBr, Z: true, PCOffset: 0xFFFD}
	if got, want := Format(op), "BRz #-3"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatBrNoFlags(t *testing.T) {
	op := decode.Operation{Kind: decode.OpBr, PCOffset: 1}
	if got, want := Format(op), "BR- #1"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatJmpRet(t *testing.T) {
	op := decode.Operation{Kind: decode.OpJmp, BaseR: 7}
	if got, want := Format(op), "RET"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatJmpOther(t *testing.T) {
	op := decode.Operation{Kind: decode.OpJmp, BaseR: 3}
	if got, want := Format(op), "JMP R3"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatTrap(t *testing.T) {
	op := decode.Operation{Kind: decode.OpTrap, TrapVector: 0x25}
	if got, want := Format(op), "TRAP $0025"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatNot(t *testing.T) {
	op := decode.Operation{Kind: decode.OpNot, DR: 1, SR: 0}
	if got, want := Format(op), "NOT R1, R0"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatRti(t *testing.T) {
	op := decode.Operation{Kind: decode.OpRti}
	if got, want := Format(op), "RTI"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatPCRegisterNames(t *testing.T) {
	op := decode.Operation{Kind: decode.OpLdr, DR: 0, BaseR: 8, Offset: 0}
	if got, want := Format(op), "LDR R0, PC, #0"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
