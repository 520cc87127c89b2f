//go:build unix

package terminal

import (
	"bytes"
	"errors"
	"os"
	"syscall"
	"testing"
)

func newPipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}

func TestCheckTTYRejectsPipes(t *testing.T) {
	r, w := newPipe(t)

	err := CheckTTY(r, w)
	var nt *NotTerminalError
	if !errors.As(err, &nt) {
		t.Fatalf("Expected NotTerminalError, got %v", err)
	}
	if nt.Stream != "stdin" {
		t.Errorf("Expected stdin to be checked first, got %q", nt.Stream)
	}
	if got := err.Error(); got != "stdin is not a tty. exiting..." {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestBeginFailsWithoutTTY(t *testing.T) {
	r, w := newPipe(t)
	s := NewSession(r, w)

	err := s.Begin()
	var nt *NotTerminalError
	if !errors.As(err, &nt) {
		t.Fatalf("Expected NotTerminalError, got %v", err)
	}

	// End after a failed Begin has nothing to restore
	if err := s.End(); err != nil {
		t.Errorf("Expected End after failed Begin to succeed, got %v", err)
	}
	if err := s.End(); err != nil {
		t.Errorf("Expected repeated End to be a no-op, got %v", err)
	}
}

func TestReadKeyNonBlocking(t *testing.T) {
	r, w := newPipe(t)
	s := NewSession(r, w)

	if _, ok := s.ReadKey(); ok {
		t.Fatal("Expected no key on empty input")
	}

	w.Write([]byte("rq"))
	for _, want := range []byte("rq") {
		got, ok := s.ReadKey()
		if !ok {
			t.Fatalf("Expected key %q, got none", want)
		}
		if got != want {
			t.Errorf("Expected key %q, got %q", want, got)
		}
	}

	if _, ok := s.ReadKey(); ok {
		t.Error("Expected input drained after two reads")
	}
}

func TestResizedConsumesPendingSignal(t *testing.T) {
	r, w := newPipe(t)
	s := NewSession(r, w)
	var buf bytes.Buffer
	s.paint = NewPainter(&buf)
	s.cols, s.rows = 80, 24

	if s.Resized() {
		t.Fatal("Expected no resize without a signal")
	}

	s.resizeCh <- syscall.SIGWINCH
	if !s.Resized() {
		t.Fatal("Expected pending resize to be reported")
	}
	if s.Resized() {
		t.Error("Expected resize to be consumed once")
	}

	// A pipe has no window size; last known dimensions survive
	if cols, rows := s.Size(); cols != 80 || rows != 24 {
		t.Errorf("Expected 80x24 kept, got %dx%d", cols, rows)
	}

	s.Flush()
	if got := buf.String(); got != "\x1b[H\x1b[2J" {
		t.Errorf("Expected resize to clear the screen, got %q", got)
	}
}

func TestSessionCanvas(t *testing.T) {
	r, w := newPipe(t)
	s := NewSession(r, w)
	var buf bytes.Buffer
	s.paint = NewPainter(&buf)

	s.FillCell(3, 5, White)
	s.WriteLine(0, 23, "status")
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	want := "\x1b[5;3H\x1b[38;2;255;255;255m\x1b[48;2;255;255;255m \x1b[0m" +
		"\x1b[23;0Hstatus\x1b[0K"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestEmergencyResetSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	if got, want := buf.String(), "\x1b[0m\x1b[?25h\x1bc"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
