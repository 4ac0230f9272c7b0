/*
 * LC3VM - Word/diagnostic formatting.
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

// Package hex renders 16-bit LC-3 words as the hex and signed-decimal
// literals used in diagnostics and trace logging.
package hex

import "strings"

var hexMap = "0123456789ABCDEF"

// FormatWord renders word as a 4-digit hex literal, e.g. "$3000".
func FormatWord(word uint16) string {
	var b strings.Builder
	b.WriteByte('$')
	shift := 12
	for range 4 {
		b.WriteByte(hexMap[(word>>uint(shift))&0xf])
		shift -= 4
	}
	return b.String()
}

// FormatSigned renders word as a signed decimal literal, interpreting
// it as two's complement, e.g. "#-1" for 0xFFFF.
func FormatSigned(word uint16) string {
	var b strings.Builder
	b.WriteByte('#')
	if word&0x8000 != 0 {
		b.WriteByte('-')
		b.WriteString(itoa(uint32(^word + 1)))
	} else {
		b.WriteString(itoa(uint32(word)))
	}
	return b.String()
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var digits [10]byte
	i := len(digits)
	for v > 0 {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	return string(digits[i:])
}
