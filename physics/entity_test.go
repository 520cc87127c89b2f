package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/ping/vmath"
)

const eps = 1e-9

func near(a, b vmath.Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestAdvanceFreeFlight(t *testing.T) {
	// Tall enough for the default row 60
	vp := ViewportFor(81, 101)
	e := DefaultEntity()

	b := Advance(&e, vp)
	if b.Hit() {
		t.Fatalf("Expected no bounce, got %+v", b)
	}
	if want := (vmath.Vec2{X: 1.005, Y: 60.005}); !near(e.Pos, want) {
		t.Errorf("Expected position %v, got %v", want, e.Pos)
	}
	if e.Delta != (vmath.Vec2{X: 0.005, Y: 0.005}) {
		t.Errorf("Expected delta unchanged, got %v", e.Delta)
	}
}

func TestAdvanceDefaultInSmallTerminal(t *testing.T) {
	// Row 60 lies below an 80x24 terminal: the first frame bounces off the bottom
	vp := ViewportFor(80, 24)
	e := DefaultEntity()

	b := Advance(&e, vp)
	if b != (Bounce{Axis: AxisY, Edge: EdgeLeading}) {
		t.Fatalf("Expected leading y bounce, got %+v", b)
	}
	if !near(e.Pos, vmath.Vec2{X: 1.005, Y: 22}) {
		t.Errorf("Expected position clamped to (1.005, 22), got %v", e.Pos)
	}
	if e.Delta.Y != -0.005 || e.Delta.X != 0.005 {
		t.Errorf("Expected only y reflected, got %v", e.Delta)
	}
}

func TestAdvanceTrailingEdgeAtWidth(t *testing.T) {
	vp := ViewportFor(80, 24) // width 79
	e := Entity{
		Pos:   vmath.Vec2{X: 77, Y: 10},
		Size:  vmath.NewVec2(2, 1),
		Delta: vmath.Vec2{X: 0.5, Y: 0.25},
	}
	if e.End().X != float64(vp.Width) {
		t.Fatalf("Setup: expected far corner at width, got %v", e.End().X)
	}

	b := Advance(&e, vp)
	if b != (Bounce{Axis: AxisX, Edge: EdgeTrailing}) {
		t.Fatalf("Expected trailing x bounce, got %+v", b)
	}
	if e.Delta.X != -0.5 {
		t.Errorf("Expected x delta reflected to -0.5, got %v", e.Delta.X)
	}
	if got := e.End().X; got != float64(vp.Width-1) {
		t.Errorf("Expected far corner clamped to %d, got %v", vp.Width-1, got)
	}
	if e.Pos.Y != 10.25 {
		t.Errorf("Expected y to keep moving to 10.25, got %v", e.Pos.Y)
	}
}

func TestAdvanceXBeforeY(t *testing.T) {
	vp := ViewportFor(80, 24)

	t.Run("Leading corner", func(t *testing.T) {
		e := Entity{
			Pos:   vmath.Vec2{X: 1.5, Y: 1.5},
			Size:  vmath.NewVec2(2, 2),
			Delta: vmath.Vec2{X: -1, Y: -1},
		}
		b := Advance(&e, vp)
		if b.Axis != AxisX {
			t.Errorf("Expected x to win the tie, got %v", b.Axis)
		}
		if e.Delta != (vmath.Vec2{X: 1, Y: -1}) {
			t.Errorf("Expected only x reflected, got %v", e.Delta)
		}
		if e.Pos != (vmath.Vec2{X: 1, Y: 1}) {
			t.Errorf("Expected both axes clamped to 1, got %v", e.Pos)
		}
	})

	t.Run("Trailing corner", func(t *testing.T) {
		e := Entity{
			Pos:   vmath.Vec2{X: 76.5, Y: 20.5},
			Size:  vmath.NewVec2(2, 2),
			Delta: vmath.Vec2{X: 0.5, Y: 0.5},
		}
		b := Advance(&e, vp)
		if b != (Bounce{Axis: AxisX, Edge: EdgeTrailing}) {
			t.Errorf("Expected trailing x to win the tie, got %+v", b)
		}
		if e.Delta != (vmath.Vec2{X: -0.5, Y: 0.5}) {
			t.Errorf("Expected only x reflected, got %v", e.Delta)
		}
		if e.Pos != (vmath.Vec2{X: 76, Y: 20}) {
			t.Errorf("Expected clamped far corner minus size (76, 20), got %v", e.Pos)
		}
	})
}

func TestReflectionTwiceRestoresSign(t *testing.T) {
	// Entity nearly as wide as the viewport collides on x in consecutive frames
	vp := Viewport{Width: 11, Height: 40}
	e := Entity{
		Pos:   vmath.Vec2{X: 2, Y: 10},
		Size:  vmath.NewVec2(10, 1),
		Delta: vmath.Vec2{X: 0.5, Y: 0.1},
	}

	first := Advance(&e, vp)
	second := Advance(&e, vp)

	if first.Axis != AxisX || second.Axis != AxisX {
		t.Fatalf("Expected two x bounces, got %v then %v", first.Axis, second.Axis)
	}
	if e.Delta.X != 0.5 {
		t.Errorf("Expected x delta back to 0.5, got %v", e.Delta.X)
	}
}

func TestAdvanceStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	vp := ViewportFor(80, 24)
	maxSize := vp.MaxEntitySize()

	for trial := 0; trial < 200; trial++ {
		size := vmath.NewVec2(1+rng.Intn(int(maxSize.X)), 1+rng.Intn(int(maxSize.Y)))
		e := Entity{
			Pos: vmath.Vec2{
				X: 1 + rng.Float64()*(float64(vp.Width)-size.X-1),
				Y: 1 + rng.Float64()*(float64(vp.Height)-size.Y-1),
			},
			Size:  size,
			Delta: vmath.Vec2{X: rng.Float64()*1.8 - 0.9, Y: rng.Float64()*1.8 - 0.9},
		}

		for frame := 0; frame < 500; frame++ {
			Advance(&e, vp)
			if e.Pos.X < 1 || e.Pos.X >= float64(vp.Width) || e.Pos.Y < 1 || e.Pos.Y >= float64(vp.Height) {
				t.Fatalf("Trial %d frame %d: position %v left the viewport", trial, frame, e.Pos)
			}
			end := e.End()
			if end.X > float64(vp.Width)+1 || end.Y > float64(vp.Height)+1 {
				t.Fatalf("Trial %d frame %d: far corner %v escaped the viewport", trial, frame, end)
			}
		}
	}
}

func TestCells(t *testing.T) {
	vp := ViewportFor(80, 24)

	t.Run("Fractional position covers partial cells", func(t *testing.T) {
		e := Entity{Pos: vmath.Vec2{X: 1.5, Y: 2.2}, Size: vmath.NewVec2(2, 1)}
		var got [][2]int
		Cells(e, vp, func(x, y int) { got = append(got, [2]int{x, y}) })

		want := [][2]int{{1, 2}, {2, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
		if len(got) != len(want) {
			t.Fatalf("Expected %d cells, got %d: %v", len(want), len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Cell %d: expected %v, got %v", i, want[i], got[i])
			}
		}
	})

	t.Run("Off-screen cells skipped", func(t *testing.T) {
		e := Entity{Pos: vmath.Vec2{X: 78, Y: 22}, Size: vmath.NewVec2(3, 3)}
		count := 0
		Cells(e, vp, func(x, y int) {
			count++
			if vp.OutOfBounds(vmath.NewVec2(x, y)) {
				t.Errorf("Out of bounds cell (%d, %d) visited", x, y)
			}
		})
		if count != 1 {
			t.Errorf("Expected only (78, 22) visible, got %d cells", count)
		}
	})
}
