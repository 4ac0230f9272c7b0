/*
 * LC3VM - Object file loading.
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

// Package object decodes an LC-3 object file: an arbitrary non-empty
// sequence of big-endian 16-bit words, with no header, checksum, or
// section table. Word 0 is the load origin.
package object

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// OddLengthError reports an object file whose byte length is not a
// multiple of two, so it cannot be split into whole 16-bit words.
type OddLengthError struct {
	Length int
}

func (e *OddLengthError) Error() string {
	return fmt.Sprintf("object file has odd length %d bytes: not a whole number of 16-bit words", e.Length)
}

// Decode splits raw into big-endian 16-bit words. It does not reject a
// zero-length input itself; interp.Load rejects an empty image.
func Decode(raw []byte) ([]uint16, error) {
	if len(raw)%2 != 0 {
		return nil, &OddLengthError{Length: len(raw)}
	}
	words := make([]uint16, len(raw)/2)
	for i := range words {
		words[i] = binary.BigEndian.Uint16(raw[2*i : 2*i+2])
	}
	return words, nil
}

// Load reads the named object file and decodes it into a program image
// suitable for interp.Load.
func Load(path string) ([]uint16, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// ReadFrom decodes a program image from an arbitrary reader, for
// callers that already hold an open file or other byte stream.
func ReadFrom(r io.Reader) ([]uint16, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}
