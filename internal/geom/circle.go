package geom

import "math"

// MaxRadius is the largest radius Rasterize draws. Larger circles yield no
// points.
const MaxRadius = math.MaxInt32

// Circle2d is a circle outline around Origin.
type Circle2d struct {
	Origin Point2d
	Radius uint32
}

func NewCircle(origin Point2d, radius uint32) Circle2d {
	return Circle2d{Origin: origin, Radius: radius}
}

// Rasterize runs the midpoint circle algorithm over the octant from 90° down
// to 45° and mirrors every step into the other seven octants. Points on the
// octant boundaries are emitted more than once; a zero radius yields the
// origin eight times.
func (c Circle2d) Rasterize() []Point2d {
	if c.Radius > MaxRadius {
		return nil
	}
	ox, oy := c.Origin.X, c.Origin.Y
	r := int64(c.Radius)

	var x, y int64 = 0, r
	d := 1 - r
	out := make([]Point2d, 0, min(8*(int(float64(r)*0.7072)+1), 1<<16))
	for y >= x {
		xi, yi := int32(x), int32(y)
		out = append(out,
			Point2d{ox + xi, oy + yi},
			Point2d{ox + yi, oy + xi},
			Point2d{ox - xi, oy + yi},
			Point2d{ox - yi, oy + xi},
			Point2d{ox + xi, oy - yi},
			Point2d{ox + yi, oy - xi},
			Point2d{ox - xi, oy - yi},
			Point2d{ox - yi, oy - xi},
		)
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
	return out
}

func (c Circle2d) Translate(dx, dy int32) Circle2d {
	return Circle2d{Origin: c.Origin.Translate(dx, dy), Radius: c.Radius}
}

// Scale scales the origin and the radius by s. The radius is clamped to
// [0, MaxRadius].
func (c Circle2d) Scale(s float64) Circle2d {
	return Circle2d{Origin: c.Origin.Scale(s), Radius: scaleRadius(c.Radius, s)}
}

func scaleRadius(r uint32, s float64) uint32 {
	v := math.Round(float64(r) * s)
	if !(v > 0) {
		return 0
	}
	return uint32(min(v, MaxRadius))
}
