package render

import (
	"fmt"

	"github.com/lixenwraith/ping/physics"
)

// Entity paints every visible cell of e as a solid block
func Entity(c Canvas, e physics.Entity, vp physics.Viewport) int {
	n := 0
	physics.Cells(e, vp, func(x, y int) {
		c.FillCell(x, y, EntityColor)
		n++
	})
	return n
}

// StatusLine formats entity position, far corner, velocity, viewport size and mode name
func StatusLine(e physics.Entity, vp physics.Viewport, mode string) string {
	end := e.End()
	return fmt.Sprintf("entity((%f, %f), (%f, %f)) delta(%f, %f) display: %d x %d (%s)",
		e.Pos.X, e.Pos.Y,
		end.X, end.Y,
		e.Delta.X, e.Delta.Y,
		vp.Width, vp.Height,
		mode)
}

// Status writes the status line on the row just below the viewport
func Status(c Canvas, e physics.Entity, vp physics.Viewport, mode string) {
	c.WriteLine(0, vp.Height, StatusLine(e, vp, mode))
}
