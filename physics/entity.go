package physics

import "github.com/lixenwraith/ping/vmath"

// Size and velocity limits that do not depend on the viewport
const (
	MinEntityWidth  = 1
	MinEntityHeight = 1
	MinDeltaX       = 0
	MinDeltaY       = 0
)

// Entity is the bouncing rectangle
// Pos is the top-left cell, Size is width/height in cells, Delta is cells per frame
type Entity struct {
	Pos   vmath.Vec2
	Size  vmath.Vec2
	Delta vmath.Vec2
}

// DefaultEntity returns the starting entity: column 1, row 60, 2x1 cells, drifting diagonally
func DefaultEntity() Entity {
	return Entity{
		Pos:   vmath.NewVec2(1, 60),
		Size:  vmath.NewVec2(2, 1),
		Delta: vmath.Vec2{X: 0.005, Y: 0.005},
	}
}

// End returns the exclusive bottom-right corner
func (e Entity) End() vmath.Vec2 {
	return e.Pos.Add(e.Size)
}

// Axis identifies which velocity component a bounce reflected
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "none"
	}
}

// Edge identifies which corner of the bounding box hit the boundary
type Edge uint8

const (
	EdgeNone     Edge = iota
	EdgeLeading       // top-left corner
	EdgeTrailing      // exclusive bottom-right corner
)

// Bounce describes the reflection performed by one Advance
type Bounce struct {
	Axis Axis
	Edge Edge
}

// Hit reports whether the frame reflected a velocity component
func (b Bounce) Hit() bool {
	return b.Axis != AxisNone
}

// Advance moves the entity one frame and reflects it off the viewport edges
//
// The leading corner is tested first, then the trailing corner; within each test
// x is checked before y and only one axis reflects per frame, even when both collide
func Advance(e *Entity, vp Viewport) Bounce {
	end := e.End()

	newPos := e.Pos.Add(e.Delta)
	newEnd := end.Add(e.Delta)

	switch {
	case vp.Collision(newPos):
		axis := reflectAxis(e, vp, newPos)
		e.Pos = vp.Constrain(newPos)
		return Bounce{Axis: axis, Edge: EdgeLeading}

	case vp.Collision(newEnd):
		axis := reflectAxis(e, vp, newEnd)
		e.Pos = vp.Constrain(newEnd).Sub(e.Size)
		return Bounce{Axis: axis, Edge: EdgeTrailing}

	default:
		e.Pos = newPos
		return Bounce{}
	}
}

// reflectAxis negates the x component if p collides on x, otherwise the y component
func reflectAxis(e *Entity, vp Viewport, p vmath.Vec2) Axis {
	if vp.CollisionX(p.X) {
		e.Delta.X = -e.Delta.X
		return AxisX
	}
	e.Delta.Y = -e.Delta.Y
	return AxisY
}

// Cells calls fn for every drawable cell covered by the entity, row by row
// Cells the viewport would not display are skipped
func Cells(e Entity, vp Viewport, fn func(x, y int)) {
	for y := int(e.Pos.Y); float64(y) < e.Pos.Y+e.Size.Y; y++ {
		for x := int(e.Pos.X); float64(x) < e.Pos.X+e.Size.X; x++ {
			if vp.OutOfBounds(vmath.NewVec2(x, y)) {
				continue
			}
			fn(x, y)
		}
	}
}
