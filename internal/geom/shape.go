package geom

// Shape2d is a closed polygon outline. Edge i joins Points[i] and
// Points[(i+1)%n]. Fewer than three points draw nothing.
type Shape2d struct {
	Points []Point2d
}

func NewShape(points ...Point2d) Shape2d {
	return Shape2d{Points: append([]Point2d(nil), points...)}
}

// Edges returns the edges of s including the closing one, or nil when s has
// fewer than three points.
func (s Shape2d) Edges() []Line2d {
	n := len(s.Points)
	if n < 3 {
		return nil
	}
	edges := make([]Line2d, n)
	for i, p := range s.Points {
		edges[i] = Line2d{Begin: p, End: s.Points[(i+1)%n]}
	}
	return edges
}

// Rasterize concatenates the rasters of all edges in edge order. The first
// failing edge aborts the whole shape.
func (s Shape2d) Rasterize(m Method) ([]Point2d, error) {
	var out []Point2d
	for _, e := range s.Edges() {
		pts, err := e.Rasterize(m)
		if err != nil {
			return nil, err
		}
		out = append(out, pts...)
	}
	return out, nil
}

func (s Shape2d) Rotate(angle float64) Shape2d {
	return s.mapPoints(func(p Point2d) Point2d { return p.Rotate(angle) })
}

func (s Shape2d) Translate(dx, dy int32) Shape2d {
	return s.mapPoints(func(p Point2d) Point2d { return p.Translate(dx, dy) })
}

func (s Shape2d) Scale(f float64) Shape2d {
	return s.mapPoints(func(p Point2d) Point2d { return p.Scale(f) })
}

func (s Shape2d) mapPoints(fn func(Point2d) Point2d) Shape2d {
	out := Shape2d{Points: make([]Point2d, len(s.Points))}
	for i, p := range s.Points {
		out.Points[i] = fn(p)
	}
	return out
}
