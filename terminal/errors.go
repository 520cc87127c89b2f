package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Startup failures; none are retried
var (
	ErrGetAttributes = errors.New("couldn't get terminal attributes")
	ErrSetAttributes = errors.New("couldn't set terminal attributes")
	ErrWindowSize    = errors.New("unable to get window size")
)

// NotTerminalError names the standard stream that is not attached to a tty
type NotTerminalError struct {
	Stream string
}

func (e *NotTerminalError) Error() string {
	return fmt.Sprintf("%s is not a tty. exiting...", e.Stream)
}

// CheckTTY verifies both streams are interactive terminals, input first
func CheckTTY(in, out *os.File) error {
	if !term.IsTerminal(int(in.Fd())) {
		return &NotTerminalError{Stream: "stdin"}
	}
	if !term.IsTerminal(int(out.Fd())) {
		return &NotTerminalError{Stream: "stdout"}
	}
	return nil
}
