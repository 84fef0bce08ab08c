package geom

import "fmt"

// Vertex is a point in normalized device space. The visible range is
// [-1, 1] on both axes; values outside it are kept as they are.
type Vertex struct {
	X float32
	Y float32
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Viewport is the size of the output surface that raster coordinates are
// normalized against. The raster origin sits at the centre of the viewport.
type Viewport struct {
	Width  float32
	Height float32
}

// Valid reports whether both dimensions are positive.
func (vp Viewport) Valid() bool {
	return vp.Width > 0 && vp.Height > 0
}

// Vertex maps p to (2x/width, 2y/height). This is a pure scale: points that
// use a top-left origin have to be translated by half the viewport first.
func (vp Viewport) Vertex(p Point2d) Vertex {
	return Vertex{
		X: 2 * float32(p.X) / vp.Width,
		Y: 2 * float32(p.Y) / vp.Height,
	}
}

// Point is the inverse of Vertex, rounded to the nearest raster position.
func (vp Viewport) Point(v Vertex) Point2d {
	return Point2d{
		X: round32(float64(v.X * vp.Width / 2)),
		Y: round32(float64(v.Y * vp.Height / 2)),
	}
}

// Normalize maps every point to a vertex, preserving order.
func (vp Viewport) Normalize(points []Point2d) []Vertex {
	if len(points) == 0 {
		return nil
	}
	out := make([]Vertex, len(points))
	for i, p := range points {
		out[i] = vp.Vertex(p)
	}
	return out
}
