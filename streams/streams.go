// Package streams provides output sinks for the optional diagnostics a prefs
// store emits, such as directory cleanup notes. It offers ready-to-use
// implementations that write to stdout/stderr, discard output, capture it in
// memory, or forward it to a structured logger.
package streams

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// IOStreams is the pair of sinks a store writes to: Out carries informational
// notes, ErrOut carries warnings. Interfaces in Go are satisfied implicitly,
// so any type with these two methods can be passed to prefs.WithStreams, not
// only the implementations in this package.
type IOStreams interface {
	Out() io.Writer
	ErrOut() io.Writer
}

// Sinks is the basic IOStreams implementation, forwarding writes to the two
// supplied io.Writer targets. Use Default, Writers, Discard or Slog to
// construct one.
type Sinks struct {
	out    io.Writer
	errOut io.Writer
}

func (s Sinks) Out() io.Writer    { return s.out }
func (s Sinks) ErrOut() io.Writer { return s.errOut }

// ---------- Basic writers ----------

// Default returns Sinks backed by os.Stdout and os.Stderr.
func Default() Sinks {
	return Sinks{out: os.Stdout, errOut: os.Stderr}
}

// Writers returns Sinks that write notes to out and warnings to errOut.
func Writers(out, errOut io.Writer) Sinks {
	return Sinks{out: out, errOut: errOut}
}

// Discard returns Sinks that drop all output.
func Discard() Sinks {
	return Writers(io.Discard, io.Discard)
}

// ---------- Capture (accumulate then inspect) ----------

// Capture accumulates output in memory. The buffers are mutex-protected, so
// a Capture may be shared by stores running on several goroutines. Use it in
// tests to assert on emitted notes.
type Capture struct {
	out    lockedBuffer
	errOut lockedBuffer
}

// NewCapture returns an empty Capture.
func NewCapture() *Capture { return &Capture{} }

func (c *Capture) Out() io.Writer    { return &c.out }
func (c *Capture) ErrOut() io.Writer { return &c.errOut }

// Strings returns the accumulated note and warning output.
func (c *Capture) Strings() (out, errOut string) {
	return c.out.String(), c.errOut.String()
}

// Reset clears both captured streams.
func (c *Capture) Reset() {
	c.out.Reset()
	c.errOut.Reset()
}

// lockedBuffer is a minimal mutex-protected buffer.
type lockedBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *lockedBuffer) String() string { l.mu.Lock(); defer l.mu.Unlock(); return l.b.String() }
func (l *lockedBuffer) Reset()         { l.mu.Lock(); defer l.mu.Unlock(); l.b.Reset() }

// ---------- slog adapter ----------

// slogWriter adapts a slog.Logger to io.Writer and trims trailing newlines.
type slogWriter struct {
	l     *slog.Logger
	level slog.Level
}

func (w slogWriter) Write(p []byte) (int, error) {
	// trim trailing newline so each Write is one log record
	n := len(p)
	if n > 0 && p[n-1] == '\n' {
		p = p[:n-1]
	}
	w.l.Log(context.Background(), w.level, string(p))
	return n, nil
}

// Slog returns Sinks that forward store messages to a slog.Logger: notes at
// the note level, warnings at the warn level.
func Slog(l *slog.Logger, note, warn slog.Level) Sinks {
	return Sinks{
		out:    slogWriter{l: l, level: note},
		errOut: slogWriter{l: l, level: warn},
	}
}
