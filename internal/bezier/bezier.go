// Package bezier evaluates Bézier curves of arbitrary degree from their
// Bernstein form.
package bezier

import (
	"math"

	"toryn/internal/geom"
)

// MinPoints is the smallest number of control points Interpolate accepts. Two
// points would make a straight line, which callers draw as a Line2d instead.
const MinPoints = 3

// Curve is a Bézier curve of degree len(Points)-1, sampled Steps times.
type Curve struct {
	Points []geom.Vertex
	Steps  int

	// Cache supplies binomial coefficients. Nil means Default().
	Cache *BinomialCache
}

func NewCurve(steps int, points ...geom.Vertex) Curve {
	return Curve{Points: append([]geom.Vertex(nil), points...), Steps: steps}
}

func (c Curve) WithSteps(steps int) Curve {
	c.Steps = steps
	return c
}

// Push appends a control point, raising the curve's degree by one.
func (c *Curve) Push(v geom.Vertex) {
	c.Points = append(c.Points, v)
}

func (c Curve) cache() *BinomialCache {
	if c.Cache != nil {
		return c.Cache
	}
	return Default()
}

// Eval returns the point of the curve at parameter t:
//
//	B(t) = Σ C(n,k) (1-t)^(n-k) t^k P_k,  n = len(Points)-1
//
// A curve without control points evaluates to the zero Vertex.
func (c Curve) Eval(t float64) geom.Vertex {
	n := len(c.Points) - 1
	tab := c.cache()
	var x, y float64
	for k, p := range c.Points {
		w := float64(tab.Get(n, k)) * math.Pow(1-t, float64(n-k)) * math.Pow(t, float64(k))
		x += float64(p.X) * w
		y += float64(p.Y) * w
	}
	return geom.Vertex{X: float32(x), Y: float32(y)}
}

// Interpolate samples the curve at t = i/Steps for i = 0..Steps, so the
// result holds exactly Steps+1 vertices and starts and ends on the first and
// last control points. It reports false for curves with fewer than
// MinPoints control points or no steps.
func (c Curve) Interpolate() ([]geom.Vertex, bool) {
	if c.Steps <= 0 || len(c.Points) < MinPoints {
		return nil, false
	}
	out := make([]geom.Vertex, 0, c.Steps+1)
	for i := 0; i <= c.Steps; i++ {
		out = append(out, c.Eval(float64(i)/float64(c.Steps)))
	}
	return out, true
}
