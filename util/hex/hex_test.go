package hex

/*
 * LC3VM - Word/diagnostic formatting tests.
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

import "testing"

func TestFormatWord(t *testing.T) {
	cases := []struct {
		word uint16
		want string
	}{
		{0x0000, "$0000"},
		{0x3000, "$3000"},
		{0xFFFF, "$FFFF"},
		{0x00AB, "$00AB"},
	}
	for _, c := range cases {
		if got := FormatWord(c.word); got != c.want {
			t.Errorf("FormatWord(%#04x) = %q, want %q", c.word, got, c.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	cases := []struct {
		word uint16
		want string
	}{
		{0, "#0"},
		{5, "#5"},
		{0xFFFF, "#-1"},
		{0x8000, "#-32768"},
		{0x7FFF, "#32767"},
	}
	for _, c := range cases {
		if got := FormatSigned(c.word); got != c.want {
			t.Errorf("FormatSigned(%#04x) = %q, want %q", c.word, got, c.want)
		}
	}
}
