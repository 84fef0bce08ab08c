// Package render connects the rasterizers to output surfaces. It normalizes
// raster points against a viewport and hands each draw call to a Renderer as
// one batch.
package render

import (
	"errors"

	"toryn/internal/bezier"
	"toryn/internal/geom"
)

// ErrInvalidViewport is returned when a draw call is made against a
// viewport without a positive width and height.
var ErrInvalidViewport = errors.New("render: viewport must have positive width and height")

// Renderer is the output side of a draw call. DrawPoints receives every
// vertex of one call at once and keeps nothing past the next frame.
type Renderer interface {
	DrawPoints(vs []geom.Vertex, vp geom.Viewport)
}

// LineStripDrawer is implemented by renderers that can join consecutive
// vertices. Curves use it when available.
type LineStripDrawer interface {
	DrawLineStrip(vs []geom.Vertex, vp geom.Viewport)
}

// RasterizeLine rasterizes the segment begin-end with m and normalizes it.
func RasterizeLine(begin, end geom.Point2d, m geom.Method, vp geom.Viewport) ([]geom.Vertex, error) {
	if !vp.Valid() {
		return nil, ErrInvalidViewport
	}
	pts, err := geom.NewLine(begin, end).Rasterize(m)
	if err != nil {
		return nil, err
	}
	return vp.Normalize(pts), nil
}

// RasterizeCircle rasterizes a circle outline and normalizes it.
func RasterizeCircle(origin geom.Point2d, radius uint32, vp geom.Viewport) ([]geom.Vertex, error) {
	if !vp.Valid() {
		return nil, ErrInvalidViewport
	}
	return vp.Normalize(geom.NewCircle(origin, radius).Rasterize()), nil
}

// RasterizeShape rasterizes the closed outline through points. Fewer than
// three points give an empty result and no error.
func RasterizeShape(points []geom.Point2d, m geom.Method, vp geom.Viewport) ([]geom.Vertex, error) {
	if !vp.Valid() {
		return nil, ErrInvalidViewport
	}
	pts, err := geom.NewShape(points...).Rasterize(m)
	if err != nil {
		return nil, err
	}
	return vp.Normalize(pts), nil
}

// EvaluateBezier samples the curve through the normalized control points.
// The curve is affine invariant, so normalizing before evaluation gives the
// same vertices as normalizing the samples.
func EvaluateBezier(points []geom.Point2d, steps int, vp geom.Viewport) ([]geom.Vertex, bool) {
	return evaluateBezier(points, steps, vp, nil)
}

func evaluateBezier(points []geom.Point2d, steps int, vp geom.Viewport, cache *bezier.BinomialCache) ([]geom.Vertex, bool) {
	if !vp.Valid() {
		return nil, false
	}
	c := bezier.Curve{Points: vp.Normalize(points), Steps: steps, Cache: cache}
	return c.Interpolate()
}

// Painter draws primitives onto Target. Every call rasterizes, normalizes
// against Viewport and issues at most one Renderer call.
type Painter struct {
	Target   Renderer
	Viewport geom.Viewport
	Method   geom.Method

	// Cache is handed to curves; nil selects bezier.Default().
	Cache *bezier.BinomialCache
}

func (p *Painter) Line(l geom.Line2d) error {
	vs, err := RasterizeLine(l.Begin, l.End, p.Method, p.Viewport)
	if err != nil {
		Logger().Warn("line rejected", "begin", l.Begin, "end", l.End, "method", p.Method, "err", err)
		return err
	}
	p.emit("line", vs)
	return nil
}

func (p *Painter) Circle(c geom.Circle2d) error {
	vs, err := RasterizeCircle(c.Origin, c.Radius, p.Viewport)
	if err != nil {
		Logger().Warn("circle rejected", "origin", c.Origin, "radius", c.Radius, "err", err)
		return err
	}
	p.emit("circle", vs)
	return nil
}

func (p *Painter) Shape(s geom.Shape2d) error {
	vs, err := RasterizeShape(s.Points, p.Method, p.Viewport)
	if err != nil {
		Logger().Warn("shape rejected", "points", len(s.Points), "method", p.Method, "err", err)
		return err
	}
	p.emit("shape", vs)
	return nil
}

// Points draws the given points as they are.
func (p *Painter) Points(pts ...geom.Point2d) error {
	if !p.Viewport.Valid() {
		return ErrInvalidViewport
	}
	p.emit("points", p.Viewport.Normalize(pts))
	return nil
}

// Bezier draws the curve through points, joined into a strip when Target
// supports it. It reports false, drawing nothing, when the curve cannot be
// interpolated.
func (p *Painter) Bezier(points []geom.Point2d, steps int) bool {
	vs, ok := evaluateBezier(points, steps, p.Viewport, p.Cache)
	if !ok {
		Logger().Debug("curve skipped", "points", len(points), "steps", steps)
		return false
	}
	if ls, ok := p.Target.(LineStripDrawer); ok {
		logBatch("bezier", "strip", len(vs))
		ls.DrawLineStrip(vs, p.Viewport)
		return true
	}
	p.emit("bezier", vs)
	return true
}

func (p *Painter) emit(kind string, vs []geom.Vertex) {
	if len(vs) == 0 {
		return
	}
	logBatch(kind, "points", len(vs))
	p.Target.DrawPoints(vs, p.Viewport)
}

func logBatch(kind, mode string, n int) {
	Logger().Debug("draw", "kind", kind, "mode", mode, "vertices", n)
}
