package geom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDegenerateLine is returned by the incremental rasterizer for vertical
// lines, whose slope it cannot represent.
var ErrDegenerateLine = errors.New("degenerate line for incremental rasterization")

// Method selects a line rasterization algorithm.
type Method int

const (
	// Midpoint is Bresenham's midpoint algorithm. It handles every slope.
	Midpoint Method = iota
	// Incremental steps x and adds an integer (truncated) slope to y. Lines
	// with |dy| < |dx| come out flat and vertical lines are rejected.
	Incremental
)

func (m Method) String() string {
	switch m {
	case Midpoint:
		return "midpoint"
	case Incremental:
		return "incremental"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses the names produced by Method.String.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "midpoint", "mid", "bresenham":
		return Midpoint, nil
	case "incremental", "inc", "naive":
		return Incremental, nil
	}
	return 0, errors.New("unknown raster method: " + s)
}

// Line2d is a segment between two raster points.
type Line2d struct {
	Begin Point2d
	End   Point2d
}

func NewLine(begin, end Point2d) Line2d {
	return Line2d{Begin: begin, End: end}
}

// RotatedLine returns the line from begin to end with both endpoints rotated
// by angle radians about the origin.
func RotatedLine(begin, end Point2d, angle float64) Line2d {
	return NewLine(begin, end).Rotate(angle)
}

func (l Line2d) Rotate(angle float64) Line2d {
	return Line2d{Begin: l.Begin.Rotate(angle), End: l.End.Rotate(angle)}
}

func (l Line2d) Translate(dx, dy int32) Line2d {
	return Line2d{Begin: l.Begin.Translate(dx, dy), End: l.End.Translate(dx, dy)}
}

func (l Line2d) Scale(s float64) Line2d {
	return Line2d{Begin: l.Begin.Scale(s), End: l.End.Scale(s)}
}

// Rasterize returns the raster points of l in walk order. A line whose
// endpoints coincide yields that single point for either method.
func (l Line2d) Rasterize(m Method) ([]Point2d, error) {
	if l.Begin == l.End {
		return []Point2d{l.Begin}, nil
	}
	switch m {
	case Midpoint:
		return l.midpoint(), nil
	case Incremental:
		return l.incremental()
	default:
		return nil, fmt.Errorf("rasterize line: unknown method %v", m)
	}
}

func (l Line2d) incremental() ([]Point2d, error) {
	b, e := l.Begin, l.End
	if b.X == e.X {
		return nil, fmt.Errorf("%w: %v -> %v", ErrDegenerateLine, b, e)
	}
	if b.X > e.X {
		b, e = e, b
	}
	dx := e.X - b.X
	slope := (e.Y - b.Y) / dx

	out := make([]Point2d, 0, int(dx)+1)
	y := b.Y
	for i := int32(0); i <= dx; i++ {
		out = append(out, Point2d{X: b.X + i, Y: y})
		y += slope
	}
	return out, nil
}

// midpoint walks the axis with the larger extent (a) and moves the other
// axis (b) by at most one step per point.
func (l Line2d) midpoint() []Point2d {
	a0, b0 := int(l.Begin.X), int(l.Begin.Y)
	a1, b1 := int(l.End.X), int(l.End.Y)
	steep := abs32(l.End.Y-l.Begin.Y) > abs32(l.End.X-l.Begin.X)
	if steep {
		a0, b0 = b0, a0
		a1, b1 = b1, a1
	}
	if a0 > a1 {
		a0, a1 = a1, a0
		b0, b1 = b1, b0
	}

	da, db := a1-a0, b1-b0
	inc := 1
	if b1 < b0 {
		inc = -1
	}
	d := 2*db - inc*da
	incE := 2 * db
	incNE := 2 * (db - inc*da)

	out := make([]Point2d, 0, da+1)
	b := b0
	for a := a0; a <= a1; a++ {
		if steep {
			out = append(out, Point2d{X: int32(b), Y: int32(a)})
		} else {
			out = append(out, Point2d{X: int32(a), Y: int32(b)})
		}
		if inc*d <= 0 {
			d += incE
		} else {
			b += inc
			d += incNE
		}
	}
	return out
}
