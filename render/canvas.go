package render

import "github.com/lixenwraith/ping/terminal"

// Canvas is the drawing surface shared by the ANSI and tcell backends
// Coordinates are 1-based terminal columns and rows
type Canvas interface {
	Clear()
	FillCell(x, y int, c terminal.RGB)
	WriteLine(x, y int, text string)
	Flush() error
}

// EntityColor is both foreground and background of every entity cell
var EntityColor = terminal.White
