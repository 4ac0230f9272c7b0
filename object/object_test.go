package object

/*
 * LC3VM - Object file loading tests.
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
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDecode(t *testing.T) {
	raw := []byte{0x30, 0x00, 0x12, 0x25, 0xF0, 0x25}
	words, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []uint16{0x3000, 0x1225, 0xF025}
	if len(words) != len(want) {
		t.Fatalf("got %d words, want %d", len(words), len(want))
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("word %d = %#04x, want %#04x", i, words[i], w)
		}
	}
}

func TestDecodeOddLength(t *testing.T) {
	_, err := Decode([]byte{0x30, 0x00, 0x12})
	if err == nil {
		t.Fatal("expected an error for odd-length input")
	}
	var oddErr *OddLengthError
	if !asOddLength(err, &oddErr) {
		t.Fatalf("got %v (%T), want *OddLengthError", err, err)
	}
}

func asOddLength(err error, target **OddLengthError) bool {
	oe, ok := err.(*OddLengthError)
	if !ok {
		return false
	}
	*target = oe
	return true
}

func TestDecodeEmpty(t *testing.T) {
	words, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if len(words) != 0 {
		t.Errorf("got %d words, want 0", len(words))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.obj")
	raw := []byte{0x30, 0x00, 0xF0, 0x25}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	words, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []uint16{0x3000, 0xF025}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("word %d = %#04x, want %#04x", i, words[i], w)
		}
	}
}

func TestReadFrom(t *testing.T) {
	raw := []byte{0x30, 0x00}
	words, err := ReadFrom(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if len(words) != 1 || words[0] != 0x3000 {
		t.Errorf("got %v, want [0x3000]", words)
	}
}
