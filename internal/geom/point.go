package geom

import (
	"fmt"
	"math"
)

// Point2d is an integer raster coordinate. Transforms return new values.
type Point2d struct {
	X int32
	Y int32
}

// Pt returns the point (x, y).
func Pt(x, y int32) Point2d {
	return Point2d{X: x, Y: y}
}

func (p Point2d) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rotate rotates p by angle radians about the coordinate origin and rounds
// the result to the nearest integers.
func (p Point2d) Rotate(angle float64) Point2d {
	sin, cos := math.Sincos(angle)
	x, y := float64(p.X), float64(p.Y)
	return Point2d{
		X: round32(x*cos - y*sin),
		Y: round32(x*sin + y*cos),
	}
}

func (p Point2d) TranslateX(d int32) Point2d {
	return Point2d{X: p.X + d, Y: p.Y}
}

func (p Point2d) TranslateY(d int32) Point2d {
	return Point2d{X: p.X, Y: p.Y + d}
}

func (p Point2d) Translate(dx, dy int32) Point2d {
	return Point2d{X: p.X + dx, Y: p.Y + dy}
}

func (p Point2d) ScaleX(s float64) Point2d {
	return Point2d{X: round32(float64(p.X) * s), Y: p.Y}
}

func (p Point2d) ScaleY(s float64) Point2d {
	return Point2d{X: p.X, Y: round32(float64(p.Y) * s)}
}

// Scale scales both coordinates by s.
func (p Point2d) Scale(s float64) Point2d {
	return Point2d{
		X: round32(float64(p.X) * s),
		Y: round32(float64(p.Y) * s),
	}
}

// ToVertex is shorthand for vp.Vertex(p).
func (p Point2d) ToVertex(vp Viewport) Vertex {
	return vp.Vertex(p)
}

func round32(v float64) int32 {
	return int32(math.Round(v))
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
