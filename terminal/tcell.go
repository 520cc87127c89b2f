package terminal

import (
	"log"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// TcellSession drives the same surface as Session through a tcell screen
// Input is polled on a goroutine and handed to the frame loop through buffered channels
type TcellSession struct {
	screen  tcell.Screen
	keys    chan byte
	resized chan struct{}

	endOnce sync.Once
}

// NewTcellSession wraps an uninitialized screen
func NewTcellSession(screen tcell.Screen) *TcellSession {
	return &TcellSession{
		screen:  screen,
		keys:    make(chan byte, 64),
		resized: make(chan struct{}, 1),
	}
}

// Begin initializes the screen and starts input polling
func (t *TcellSession) Begin() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.Clear()

	go t.pollLoop()

	w, h := t.screen.Size()
	log.Printf("terminal: tcell session started %dx%d", w, h)
	return nil
}

// pollLoop routes tcell events until the screen is finalized
func (t *TcellSession) pollLoop() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() != tcell.KeyRune || ev.Rune() >= utf8.RuneSelf {
				continue
			}
			// Drop keys if the loop falls behind, same as an unread tty buffer
			select {
			case t.keys <- byte(ev.Rune()):
			default:
			}
		case *tcell.EventResize:
			select {
			case t.resized <- struct{}{}:
			default:
			}
		}
	}
}

// Resized consumes a pending resize notification
func (t *TcellSession) Resized() bool {
	select {
	case <-t.resized:
		t.screen.Sync()
		return true
	default:
		return false
	}
}

func (t *TcellSession) Size() (cols, rows int) {
	return t.screen.Size()
}

// ReadKey returns the next queued key without blocking
func (t *TcellSession) ReadKey() (byte, bool) {
	select {
	case k := <-t.keys:
		return k, true
	default:
		return 0, false
	}
}

func (t *TcellSession) Clear() {
	t.screen.Clear()
}

// FillCell paints a blank cell in c at 1-based column x, row y
func (t *TcellSession) FillCell(x, y int, c RGB) {
	col := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	style := tcell.StyleDefault.Foreground(col).Background(col)
	t.screen.SetContent(x-1, y-1, ' ', nil, style)
}

// WriteLine writes text at 1-based column x, row y and blanks the rest of the row
// Column 0 is treated as 1, matching ANSI cursor addressing
func (t *TcellSession) WriteLine(x, y int, text string) {
	col := max(x, 1) - 1
	row := y - 1
	for _, r := range text {
		t.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		col++
	}
	w, _ := t.screen.Size()
	for ; col < w; col++ {
		t.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}
}

func (t *TcellSession) Flush() error {
	t.screen.Show()
	return nil
}

// End finalizes the screen, restoring the terminal; only the first call acts
func (t *TcellSession) End() error {
	t.endOnce.Do(func() {
		t.screen.Fini()
		log.Printf("terminal: tcell session ended")
	})
	return nil
}
