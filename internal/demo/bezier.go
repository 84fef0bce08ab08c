package demo

import (
	"toryn/internal/bezier"
	"toryn/internal/geom"
	"toryn/internal/render"
)

// Bezier collects control points picked by the user and draws the curve
// through them once there are enough, with the control points on top.
type Bezier struct {
	Steps  int
	points []geom.Point2d // world coordinates
}

func NewBezier(steps int) *Bezier {
	return &Bezier{Steps: steps}
}

func (b *Bezier) Name() string { return "bezier" }

// Add stores pt, given relative to the centre of target, in world units.
func (b *Bezier) Add(pt geom.Point2d, target geom.Viewport) {
	f := Fit(world500, target)
	if f == 0 {
		return
	}
	b.points = append(b.points, pt.Scale(1/f))
}

func (b *Bezier) Clear() { b.points = b.points[:0] }

// Points returns a copy of the control points in world coordinates.
func (b *Bezier) Points() []geom.Point2d {
	return append([]geom.Point2d(nil), b.points...)
}

// Ready reports whether enough points were picked to draw a curve.
func (b *Bezier) Ready() bool { return len(b.points) >= bezier.MinPoints }

func (b *Bezier) Draw(p *render.Painter) error {
	if len(b.points) == 0 {
		return nil
	}
	f := Fit(world500, p.Viewport)
	pts := make([]geom.Point2d, len(b.points))
	for i, pt := range b.points {
		pts[i] = pt.Scale(f)
	}
	if b.Ready() {
		p.Bezier(pts, b.Steps)
	}
	return p.Points(pts...)
}
