package vmath

import "math"

// Vec2 is a float64 2D vector used for cell positions, sizes and velocities
// Components are fractional; renderers truncate toward zero when addressing cells
type Vec2 struct {
	X, Y float64
}

// NewVec2 builds a vector from whole cell coordinates
func NewVec2(x, y int) Vec2 {
	return Vec2{float64(x), float64(y)}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func (a Vec2) Negate() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Len returns the Euclidean length
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Rotate turns the vector counter-clockwise by degrees
// Result is rounded to whole cells so grid directions stay exact (90° of (1,0) is (0,1), not (6e-17,1))
func (a Vec2) Rotate(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		math.Round(cos*a.X - sin*a.Y),
		math.Round(sin*a.X + cos*a.Y),
	}
}
