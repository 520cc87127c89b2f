//go:build unix

package terminal

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session is a raw-mode ANSI terminal session over a pair of tty streams
// Create with NewSession, call Begin once, and defer End immediately after
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	oldState *term.State

	rows int
	cols int

	resizeCh chan os.Signal
	paint    *Painter
	graphics bool

	endOnce sync.Once
	endErr  error
}

// NewSession prepares a session; nothing is touched until Begin
func NewSession(in, out *os.File) *Session {
	return &Session{
		in:       in,
		out:      out,
		inFd:     int(in.Fd()),
		outFd:    int(out.Fd()),
		resizeCh: make(chan os.Signal, 1),
		paint:    NewPainter(out),
	}
}

// Begin verifies both streams are ttys, captures attributes, enters raw mode
// and records the window size
// Input stays blocking at the file level; ReadKey polls before reading so output
// sharing the same open file description never sees EAGAIN
func (s *Session) Begin() error {
	if err := CheckTTY(s.in, s.out); err != nil {
		return err
	}

	old, err := term.GetState(s.inFd)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGetAttributes, err)
	}

	if _, err := term.MakeRaw(s.inFd); err != nil {
		return fmt.Errorf("%w: %w", ErrSetAttributes, err)
	}
	s.oldState = old

	if err := s.RefreshDimensions(); err != nil {
		s.restore()
		return err
	}

	signal.Notify(s.resizeCh, syscall.SIGWINCH)

	log.Printf("terminal: raw session started %dx%d", s.cols, s.rows)
	return nil
}

// RefreshDimensions re-queries the window size; last known size is kept on failure
func (s *Session) RefreshDimensions() error {
	ws, err := unix.IoctlGetWinsize(s.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindowSize, err)
	}
	s.rows = int(ws.Row)
	s.cols = int(ws.Col)
	return nil
}

// Resized consumes a pending SIGWINCH, refreshing dimensions and clearing the screen
// The signal side only queues; all work happens here on the frame loop
func (s *Session) Resized() bool {
	select {
	case <-s.resizeCh:
	default:
		return false
	}

	if err := s.RefreshDimensions(); err != nil {
		log.Printf("terminal: resize refresh failed: %v", err)
	}
	s.paint.Clear()
	return true
}

// Size returns the last known terminal dimensions
func (s *Session) Size() (cols, rows int) {
	return s.cols, s.rows
}

// ReadKey returns the next waiting input byte without blocking
func (s *Session) ReadKey() (byte, bool) {
	fds := []unix.PollFd{{Fd: int32(s.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		// Nothing typed this frame; EINTR is treated the same
		return 0, false
	}

	var buf [1]byte
	rn, err := unix.Read(s.inFd, buf[:])
	if err != nil || rn != 1 {
		return 0, false
	}
	return buf[0], true
}

func (s *Session) StartGraphics() {
	s.graphics = true
	s.paint.StartGraphics()
	s.paint.Flush()
}

func (s *Session) EndGraphics() {
	s.graphics = false
	s.paint.EndGraphics()
	s.paint.Flush()
}

// Clear erases the screen
func (s *Session) Clear() {
	s.paint.Clear()
}

// FillCell paints a blank cell in c at 1-based column x, row y
func (s *Session) FillCell(x, y int, c RGB) {
	s.paint.Move(y, x)
	s.paint.Color(c)
	s.paint.Pixel(' ')
	s.paint.Reset()
}

// WriteLine writes text at column x, row y and erases the rest of the line
func (s *Session) WriteLine(x, y int, text string) {
	s.paint.Move(y, x)
	s.paint.Text(text)
	s.paint.ClearLine()
}

// Flush sends the buffered frame to the terminal
func (s *Session) Flush() error {
	return s.paint.Flush()
}

// End leaves graphics mode and restores the captured terminal state
// Safe to call multiple times; only the first call acts
func (s *Session) End() error {
	s.endOnce.Do(func() {
		if s.graphics {
			s.EndGraphics()
		}
		signal.Stop(s.resizeCh)
		s.endErr = s.restore()
		log.Printf("terminal: session ended")
	})
	return s.endErr
}

// restore puts back the terminal attributes captured by Begin
func (s *Session) restore() error {
	if s.oldState == nil {
		return nil
	}
	if err := term.Restore(s.inFd, s.oldState); err != nil {
		return fmt.Errorf("%w: %w", ErrSetAttributes, err)
	}
	return nil
}
