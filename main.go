/*
 * LC3VM - Main process.
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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"lc3vm/console"
	"lc3vm/emu/decode"
	"lc3vm/emu/interp"
	"lc3vm/emu/state"
	"lc3vm/emu/trace"
	"lc3vm/object"
	"lc3vm/util/logger"
)

var Logger *slog.Logger

func main() {
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optTrace := getopt.BoolLong("trace", 't', "Trace every instruction to the log")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.SetParameters("object-file")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) != 1 {
		getopt.Usage()
		os.Exit(1)
	}

	var logFile io.Writer
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logFile = f
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	handler := logger.NewHandler(logFile, &slog.HandlerOptions{Level: programLevel, AddSource: false}, *optTrace)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	if err := run(args[0], *optTrace); err != nil {
		Logger.Error(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, traceEnabled bool) error {
	image, err := object.Load(path)
	if err != nil {
		return fmt.Errorf("reading object file: %w", err)
	}

	con := console.New(nil, nil)
	if err := con.Setup(); err != nil {
		return fmt.Errorf("configuring console: %w", err)
	}
	defer con.Restore()

	m := state.New(con)
	if err := interp.Load(m, image); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	Logger.Info("program loaded", "words", len(image))

	for {
		if traceEnabled {
			pc := m.ReadReg(state.PC)
			word, err := m.ReadMem(pc)
			if err == nil {
				if op, decErr := decode.Decode(word); decErr == nil {
					Logger.Debug("tick", "pc", pc, "op", trace.Format(op))
				}
			}
		}
		cont, err := interp.Tick(m, con)
		if err != nil {
			return fmt.Errorf("execution halted: %w", err)
		}
		if !cont {
			break
		}
	}

	Logger.Info("halted")
	return nil
}
