/*
 * LC3VM - Console I/O collaborator.
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

// Package console is the external I/O collaborator the interpreter
// delegates byte-oriented stdin/stdout access to. It is the only piece
// of this VM that touches the OS terminal directly.
package console

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Device puts stdin into non-canonical, no-echo mode for the life of
// the VM run and provides the three console primitives the interpreter
// needs: a non-blocking poll, a blocking byte read, and a byte write.
type Device struct {
	in, out *os.File
	state   *term.State
}

// New wraps the given stdin/stdout file descriptors. Passing nil for
// either uses os.Stdin/os.Stdout.
func New(in, out *os.File) *Device {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Device{in: in, out: out}
}

// Setup disables canonical mode and echo on stdin so single keystrokes
// become available to GETC/KBDR immediately, without a trailing
// newline. It is a no-op, returning nil, if stdin is not a terminal.
func (d *Device) Setup() error {
	if !term.IsTerminal(int(d.in.Fd())) {
		return nil
	}
	state, err := term.MakeRaw(int(d.in.Fd()))
	if err != nil {
		return err
	}
	d.state = state
	return nil
}

// Restore puts stdin back into the mode Setup found it in. Safe to call
// even if Setup was a no-op.
func (d *Device) Restore() error {
	if d.state == nil {
		return nil
	}
	return term.Restore(int(d.in.Fd()), d.state)
}

// HasByte reports whether a byte is currently available on stdin.
// It never blocks: the keyboard status register must be pollable
// without stalling the instruction loop.
func (d *Device) HasByte() (bool, error) {
	n, err := unix.IoctlGetInt(int(d.in.Fd()), unix.FIONREAD)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ReadByte blocks until one byte is available on stdin and returns it.
func (d *Device) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := d.in.Read(buf[:])
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return buf[0], nil
		}
	}
}

// WriteByte writes one byte to stdout.
func (d *Device) WriteByte(b byte) error {
	buf := [1]byte{b}
	_, err := d.out.Write(buf[:])
	return err
}
