/*
 * LC3VM - Wrapper for slog.
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

// Package logger wires a single slog handler for the VM's whole run:
// one log file, plus a stderr mirror for anything an operator watching
// the console should see as it happens.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// TraceHandler writes text-formatted records to a log file and mirrors
// them to stderr: lifecycle records (Info and above) always, and the
// per-tick Debug trace lines only when traceToStderr is set. There is
// no runtime toggle — a VM run has exactly one producer of Debug
// records (the --trace instruction loop) and its visibility is decided
// once, at startup, by the CLI flag.
type TraceHandler struct {
	logFile       io.Writer
	text          slog.Handler
	mu            *sync.Mutex
	traceToStderr bool
}

func (h *TraceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.text.Enabled(ctx, level)
}

func (h *TraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceHandler{logFile: h.logFile, text: h.text.WithAttrs(attrs), mu: h.mu, traceToStderr: h.traceToStderr}
}

func (h *TraceHandler) WithGroup(name string) slog.Handler {
	return &TraceHandler{logFile: h.logFile, text: h.text.WithGroup(name), mu: h.mu, traceToStderr: h.traceToStderr}
}

func (h *TraceHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	formattedTime := r.Time.Format("2006/01/02 15:04:05")

	fields := []string{formattedTime, level, r.Message}
	if r.NumAttrs() != 0 {
		r.Attrs(func(a slog.Attr) bool {
			fields = append(fields, a.Value.String())
			return true
		})
	}
	line := []byte(strings.Join(fields, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.logFile != nil {
		_, err = h.logFile.Write(line)
	}
	if h.traceToStderr || r.Level > slog.LevelDebug {
		_, err = os.Stderr.Write(line)
	}
	return err
}

// NewHandler builds a TraceHandler writing to logFile (nil disables the
// log file) and mirroring lifecycle records to stderr. traceToStderr
// additionally mirrors per-tick Debug records, set from the --trace
// CLI flag.
func NewHandler(logFile io.Writer, opts *slog.HandlerOptions, traceToStderr bool) *TraceHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &TraceHandler{
		logFile: logFile,
		text: slog.NewTextHandler(logFile, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: opts.AddSource,
		}),
		mu:            &sync.Mutex{},
		traceToStderr: traceToStderr,
	}
}
