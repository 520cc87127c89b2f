package mode

import (
	"github.com/lixenwraith/ping/physics"
)

// Key is a single input byte, or NoKey when nothing was typed this frame
type Key int16

const NoKey Key = -1

// Command keys, case-sensitive
const (
	KeyQuit   Key = 'q'
	KeyNormal Key = 'n'
	KeyResize Key = 'r'
	KeySpeed  Key = 's'
	KeyUp     Key = 'w'
	KeyDown   Key = 's'
)

// KeyOf converts a read result into a Key
func KeyOf(b byte, ok bool) Key {
	if !ok {
		return NoKey
	}
	return Key(b)
}

// Mode selects which key table interprets input
// The set of implementations is closed: Normal, Resize, Speed and Quit
type Mode interface {
	String() string
	handle(k Key, e *physics.Entity, vp physics.Viewport) Mode
}

type (
	Normal struct{}
	Resize struct{}
	Speed  struct{}
	Quit   struct{}
)

func (Normal) String() string { return "normal" }
func (Resize) String() string { return "resize" }
func (Speed) String() string  { return "speed" }
func (Quit) String() string   { return "quit" }

// IsQuit reports whether m is the terminal Quit mode
func IsQuit(m Mode) bool {
	_, ok := m.(Quit)
	return ok
}

// Interpret applies one key to the entity under mode m and returns the next mode
// 'q' and 'n' override every mode, except that Quit is never left
func Interpret(m Mode, k Key, e *physics.Entity, vp physics.Viewport) Mode {
	if IsQuit(m) {
		return m
	}

	switch k {
	case KeyQuit:
		return Quit{}
	case KeyNormal:
		return Normal{}
	}

	return m.handle(k, e, vp)
}
