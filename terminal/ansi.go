package terminal

import (
	"bufio"
	"io"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[H\x1b[2J")
	csiEOL   = []byte("\x1b[0K")
	csiSGR0  = []byte("\x1b[0m")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;Bm
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;Bm
)

// Painter emits escape sequences into a buffered writer
// Nothing reaches the terminal until Flush
type Painter struct {
	w *bufio.Writer
}

// NewPainter wraps w with a frame-sized buffer
func NewPainter(w io.Writer) *Painter {
	return &Painter{w: bufio.NewWriterSize(w, 64*1024)}
}

// Clear homes the cursor and erases the screen
func (p *Painter) Clear() {
	p.w.Write(csiClear)
}

// ClearLine erases from the cursor to end of line
func (p *Painter) ClearLine() {
	p.w.Write(csiEOL)
}

// Move positions the cursor, 1-based row;col
func (p *Painter) Move(row, col int) {
	p.w.Write(csi)
	writeInt(p.w, row)
	p.w.WriteByte(';')
	writeInt(p.w, col)
	p.w.WriteByte('H')
}

func (p *Painter) CursorVisible(visible bool) {
	if visible {
		p.w.Write(csiCursorShow)
	} else {
		p.w.Write(csiCursorHide)
	}
}

// Color sets foreground and background to the same truecolor value
func (p *Painter) Color(c RGB) {
	writeRGB(p.w, csiFgRGB, c)
	writeRGB(p.w, csiBgRGB, c)
}

// Reset clears all graphic attributes
func (p *Painter) Reset() {
	p.w.Write(csiSGR0)
}

// Text writes s at the current cursor position
func (p *Painter) Text(s string) {
	p.w.WriteString(s)
}

// Pixel writes a single cell character
func (p *Painter) Pixel(ch byte) {
	p.w.WriteByte(ch)
}

// StartGraphics clears the screen and hides the cursor
func (p *Painter) StartGraphics() {
	p.Clear()
	p.CursorVisible(false)
}

// EndGraphics undoes StartGraphics: attributes reset, cursor shown, screen cleared
func (p *Painter) EndGraphics() {
	p.Reset()
	p.CursorVisible(true)
	p.Clear()
}

func (p *Painter) Flush() error {
	return p.w.Flush()
}

func writeRGB(w *bufio.Writer, prefix []byte, c RGB) {
	w.Write(prefix)
	writeInt(w, int(c.R))
	w.WriteByte(';')
	writeInt(w, int(c.G))
	w.WriteByte(';')
	writeInt(w, int(c.B))
	w.WriteByte('m')
}

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}
