// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// lineHandler renders records as "<program> <LEVEL>:  <tokens joined by
// single spaces>\n", the stderr wire format the host agent expects from
// this plugin family.
type lineHandler struct {
	mu      *sync.Mutex
	w       io.Writer
	program string
	attrs   []slog.Attr
}

func newLineHandler(w io.Writer, program string) *lineHandler {
	return &lineHandler{mu: &sync.Mutex{}, w: w, program: program}
}

func (h *lineHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	return Level.Enabled(lvl)
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	lvl := r.Level.String()
	if s, ok := customLevels[r.Level]; ok {
		lvl = s
	}

	var b strings.Builder
	b.WriteString(h.program)
	b.WriteByte(' ')
	b.WriteString(lvl)
	b.WriteString(":  ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %v", a.Value.Any())
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %v", a.Value.Any())
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := &lineHandler{mu: h.mu, w: h.w, program: h.program}
	n.attrs = append(n.attrs, h.attrs...)
	n.attrs = append(n.attrs, attrs...)
	return n
}

func (h *lineHandler) WithGroup(_ string) slog.Handler {
	return h
}
