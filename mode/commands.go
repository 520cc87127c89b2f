package mode

import (
	"github.com/lixenwraith/ping/physics"
)

func (m Normal) handle(k Key, _ *physics.Entity, _ physics.Viewport) Mode {
	switch k {
	case KeyResize:
		return Resize{}
	case KeySpeed:
		return Speed{}
	}
	return m
}

func (m Resize) handle(k Key, e *physics.Entity, vp physics.Viewport) Mode {
	switch k {
	case KeyUp:
		Grow(e, vp)
	case KeyDown:
		Shrink(e)
	}
	return m
}

func (m Speed) handle(k Key, e *physics.Entity, vp physics.Viewport) Mode {
	switch k {
	case KeyUp:
		Accelerate(e, vp)
	case KeyDown:
		Decelerate(e)
	}
	return m
}

func (m Quit) handle(Key, *physics.Entity, physics.Viewport) Mode {
	return m
}

// Grow adds one cell in both dimensions while the current size is under half the viewport
func Grow(e *physics.Entity, vp physics.Viewport) bool {
	limit := vp.MaxEntitySize()
	if e.Size.X < limit.X && e.Size.Y < limit.Y {
		e.Size.X++
		e.Size.Y++
		return true
	}
	return false
}

// Shrink removes one cell in both dimensions while the current size is above the minimum
func Shrink(e *physics.Entity) bool {
	if e.Size.X > physics.MinEntityWidth && e.Size.Y > physics.MinEntityHeight {
		e.Size.X--
		e.Size.Y--
		return true
	}
	return false
}

// Accelerate doubles both velocity components while they are under the viewport extent
// A zero component counts as 1 before doubling, so a stopped axis restarts at 2
func Accelerate(e *physics.Entity, vp physics.Viewport) bool {
	limit := vp.MaxDelta()
	if e.Delta.X < limit.X && e.Delta.Y < limit.Y {
		e.Delta.X = double(e.Delta.X)
		e.Delta.Y = double(e.Delta.Y)
		return true
	}
	return false
}

// Decelerate halves both velocity components while both are positive
func Decelerate(e *physics.Entity) bool {
	if e.Delta.X > physics.MinDeltaX && e.Delta.Y > physics.MinDeltaY {
		e.Delta.X /= 2
		e.Delta.Y /= 2
		return true
	}
	return false
}

func double(v float64) float64 {
	if v == 0 {
		return 2
	}
	return v * 2
}
