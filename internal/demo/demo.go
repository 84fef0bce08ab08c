// Package demo holds the sample drawings shown by the front ends.
//
// Every demo is laid out in a fixed world (300x300 or 500x500 raster
// units, centre origin) and scaled uniformly to the painter's viewport, so
// the same picture fits a braille canvas, a window or a PNG.
package demo

import (
	"errors"
	"math"
	"time"

	"toryn/internal/geom"
	"toryn/internal/render"
	"toryn/internal/scene"
)

// Demo draws one picture into a painter.
type Demo interface {
	Name() string
	Draw(p *render.Painter) error
}

// Animated demos advance with the host's frame clock.
type Animated interface {
	Demo
	Update(dt time.Duration)
}

// Editable demos accept points picked on the target, e.g. mouse clicks.
// pt is a raster point relative to the centre of target.
type Editable interface {
	Demo
	Add(pt geom.Point2d, target geom.Viewport)
	Clear()
}

var (
	world300 = geom.Viewport{Width: 300, Height: 300}
	world500 = geom.Viewport{Width: 500, Height: 500}
)

// All returns fresh instances of the built-in demos in key order.
func All() []Demo {
	return []Demo{
		Lines(),
		Circle(),
		Shape(),
		NewSpin(4 * time.Second),
		NewBezier(100),
	}
}

// Fit returns the uniform factor mapping world onto target.
func Fit(world, target geom.Viewport) float64 {
	if !world.Valid() || !target.Valid() {
		return 0
	}
	return math.Min(float64(target.Width/world.Width), float64(target.Height/world.Height))
}

// static is a demo made of a fixed primitive set in world coordinates.
type static struct {
	name  string
	world geom.Viewport
	scene scene.Scene
}

func (s *static) Name() string { return s.name }

func (s *static) Draw(p *render.Painter) error {
	return s.scene.Scale(Fit(s.world, p.Viewport)).Draw(p)
}

// Lines is the midpoint star: diagonals from the origin, a square frame
// and one diagonal rotated by 45 degrees.
func Lines() Demo {
	o := geom.Pt(0, 0)
	return &static{name: "lines", world: world300, scene: scene.Scene{Lines: []geom.Line2d{
		geom.NewLine(o, geom.Pt(100, 100)),
		geom.NewLine(o, geom.Pt(-100, 100)),
		geom.NewLine(o, geom.Pt(-100, -100)),
		geom.NewLine(o, geom.Pt(100, -100)),
		geom.NewLine(geom.Pt(-100, 100), geom.Pt(100, 100)),
		geom.NewLine(geom.Pt(-100, -100), geom.Pt(100, -100)),
		geom.NewLine(geom.Pt(-100, -100), geom.Pt(-100, 100)),
		geom.NewLine(geom.Pt(100, 100), geom.Pt(100, -100)),
		geom.RotatedLine(o, geom.Pt(100, 100), math.Pi/4),
	}}}
}

// Circle draws both axes, a second pair of axes through (30, 30) and a
// circle of radius 50 around that point.
func Circle() Demo {
	const xo, yo = 30, 30
	return &static{name: "circle", world: world500, scene: scene.Scene{
		Lines: []geom.Line2d{
			geom.NewLine(geom.Pt(-250, yo), geom.Pt(250, yo)),
			geom.NewLine(geom.Pt(xo, -250), geom.Pt(xo, 250)),
			geom.NewLine(geom.Pt(-250, 0), geom.Pt(250, 0)),
			geom.NewLine(geom.Pt(0, -250), geom.Pt(0, 250)),
		},
		Circles: []geom.Circle2d{geom.NewCircle(geom.Pt(xo, yo), 50)},
	}}
}

func Shape() Demo {
	return &static{name: "shape", world: world300, scene: scene.Scene{Shapes: []geom.Shape2d{
		geom.NewShape(geom.Pt(0, 0), geom.Pt(50, 50), geom.Pt(60, -50)),
	}}}
}

// FromScene shows a loaded scene, centred and fitted to the viewport.
func FromScene(name string, sc scene.Scene) Demo {
	return &loaded{name: name, scene: sc}
}

type loaded struct {
	name  string
	scene scene.Scene
}

func (l *loaded) Name() string { return l.name }

func (l *loaded) Draw(p *render.Painter) error {
	if l.scene.Empty() {
		return errors.New("empty scene")
	}
	return l.scene.Fit(p.Viewport, 0.9).Draw(p)
}
