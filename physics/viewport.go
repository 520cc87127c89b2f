package physics

import "github.com/lixenwraith/ping/vmath"

// Viewport is the drawable area: one column and one row smaller than the terminal
// The last row carries the status line; the last column is never written to avoid auto-wrap
type Viewport struct {
	Width  int
	Height int
}

// ViewportFor derives the viewport from terminal dimensions
func ViewportFor(cols, rows int) Viewport {
	return Viewport{Width: cols - 1, Height: rows - 1}
}

// OutOfBoundsX reports whether column x must not be drawn
func (v Viewport) OutOfBoundsX(x float64) bool {
	return 1 > x || x >= float64(v.Width)
}

func (v Viewport) OutOfBoundsY(y float64) bool {
	return 1 > y || y >= float64(v.Height)
}

// OutOfBounds is the draw-skip test: exclusive at 1, inclusive at the far bound
func (v Viewport) OutOfBounds(p vmath.Vec2) bool {
	return v.OutOfBoundsX(p.X) || v.OutOfBoundsY(p.Y)
}

// CollisionX is the bounce test, one unit stricter than OutOfBoundsX at the low edge
func (v Viewport) CollisionX(x float64) bool {
	return 1 >= x || x >= float64(v.Width)
}

func (v Viewport) CollisionY(y float64) bool {
	return 1 >= y || y >= float64(v.Height)
}

func (v Viewport) Collision(p vmath.Vec2) bool {
	return v.CollisionX(p.X) || v.CollisionY(p.Y)
}

// ConstrainX clamps x below 1 to 1 and x at or past the bound to bound-1
func (v Viewport) ConstrainX(x float64) float64 {
	switch {
	case x < 1:
		return 1
	case x >= float64(v.Width):
		return float64(v.Width - 1)
	default:
		return x
	}
}

func (v Viewport) ConstrainY(y float64) float64 {
	switch {
	case y < 1:
		return 1
	case y >= float64(v.Height):
		return float64(v.Height - 1)
	default:
		return y
	}
}

func (v Viewport) Constrain(p vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{X: v.ConstrainX(p.X), Y: v.ConstrainY(p.Y)}
}

// MaxEntitySize is half the viewport in whole cells
func (v Viewport) MaxEntitySize() vmath.Vec2 {
	return vmath.NewVec2(v.Width/2, v.Height/2)
}

// MaxDelta is the full viewport extent
func (v Viewport) MaxDelta() vmath.Vec2 {
	return vmath.NewVec2(v.Width, v.Height)
}
