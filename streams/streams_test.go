package streams

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()

	// Check identity without writing, to avoid polluting test output.
	if s.Out() != os.Stdout {
		t.Fatalf("Default().Out() should be os.Stdout")
	}
	if s.ErrOut() != os.Stderr {
		t.Fatalf("Default().ErrOut() should be os.Stderr")
	}
}

func TestWriters(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	s := Writers(&outBuf, &errBuf)

	n, err := s.Out().Write([]byte("note\n"))
	if err != nil || n != len("note\n") {
		t.Fatalf("Out() write failed: n=%d err=%v", n, err)
	}
	n, err = s.ErrOut().Write([]byte("warning\n"))
	if err != nil || n != len("warning\n") {
		t.Fatalf("ErrOut() write failed: n=%d err=%v", n, err)
	}

	if got := outBuf.String(); got != "note\n" {
		t.Fatalf("Out buffer = %q, want %q", got, "note\n")
	}
	if got := errBuf.String(); got != "warning\n" {
		t.Fatalf("Err buffer = %q, want %q", got, "warning\n")
	}
}

func TestDiscard(t *testing.T) {
	s := Discard()

	// Writes are accepted with full length, but nothing is kept.
	for _, w := range []io.Writer{s.Out(), s.ErrOut()} {
		n, err := w.Write([]byte("dropped\n"))
		if err != nil || n != len("dropped\n") {
			t.Fatalf("discard write failed: n=%d err=%v", n, err)
		}
	}
}

func TestCapture(t *testing.T) {
	c := NewCapture()

	if _, err := c.Out().Write([]byte("note 1\n")); err != nil {
		t.Fatalf("write to Out: %v", err)
	}
	if _, err := c.ErrOut().Write([]byte("warn 1\n")); err != nil {
		t.Fatalf("write to ErrOut: %v", err)
	}

	out, errS := c.Strings()
	if out != "note 1\n" || errS != "warn 1\n" {
		t.Fatalf("Strings() = %q / %q, want %q / %q", out, errS, "note 1\n", "warn 1\n")
	}

	// Reset clears both.
	c.Reset()
	out, errS = c.Strings()
	if out != "" || errS != "" {
		t.Fatalf("after Reset, got %q / %q, want empty / empty", out, errS)
	}
}

func TestCaptureConcurrent(t *testing.T) {
	c := NewCapture()

	var wg sync.WaitGroup
	wg.Add(200)

	// Concurrent writers on Out and ErrOut.
	for i := 0; i < 100; i++ {
		go func() {
			defer wg.Done()
			_, _ = c.Out().Write([]byte("O"))
		}()
		go func() {
			defer wg.Done()
			_, _ = c.ErrOut().Write([]byte("E"))
		}()
	}
	wg.Wait()

	out, errS := c.Strings()
	if len(out) != 100 || strings.Count(out, "O") != 100 {
		t.Fatalf("Out length/count mismatch, got len=%d, content=%q", len(out), out)
	}
	if len(errS) != 100 || strings.Count(errS, "E") != 100 {
		t.Fatalf("ErrOut length/count mismatch, got len=%d, content=%q", len(errS), errS)
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer

	th := slog.NewTextHandler(&buf, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		// Drop time to make output deterministic
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	}})
	logger := slog.New(th)

	s := Slog(logger, slog.LevelInfo, slog.LevelWarn)

	// Writes to Out() log at the note level; ErrOut() at the warn level. The
	// trailing newline must not leak into the message.
	if _, err := s.Out().Write([]byte("removed empty dir\n")); err != nil {
		t.Fatalf("write to Out(): %v", err)
	}
	if _, err := s.ErrOut().Write([]byte("cleanup skipped\n")); err != nil {
		t.Fatalf("write to ErrOut(): %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "level=INFO") || !strings.Contains(got, "msg=\"removed empty dir\"") {
		t.Fatalf("missing note log in slog output: %q", got)
	}
	if !strings.Contains(got, "level=WARN") || !strings.Contains(got, "msg=\"cleanup skipped\"") {
		t.Fatalf("missing warn log in slog output: %q", got)
	}
}
