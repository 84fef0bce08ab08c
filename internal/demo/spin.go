package demo

import (
	"errors"
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"toryn/internal/geom"
	"toryn/internal/render"
)

// Spin turns a line and a triangle a full revolution per period, in
// opposite directions. The angle is driven by a linear tween restarted at
// the end of every turn.
type Spin struct {
	period time.Duration
	tween  *gween.Tween
	angle  float64
}

func NewSpin(period time.Duration) *Spin {
	s := &Spin{period: max(period, time.Millisecond)}
	s.restart()
	return s
}

func (s *Spin) restart() {
	s.tween = gween.New(0, 2*math.Pi, float32(s.period.Seconds()), ease.Linear)
	s.angle = 0
}

func (s *Spin) Name() string { return "spin" }

// Angle returns the current rotation in radians.
func (s *Spin) Angle() float64 { return s.angle }

func (s *Spin) Update(dt time.Duration) {
	v, done := s.tween.Update(float32(dt.Seconds()))
	if done {
		s.restart()
		return
	}
	s.angle = float64(v)
}

func (s *Spin) Draw(p *render.Painter) error {
	f := Fit(world300, p.Viewport)
	arm := geom.RotatedLine(geom.Pt(0, 0), geom.Pt(100, 100), s.angle).Scale(f)
	tri := geom.NewShape(geom.Pt(0, 0), geom.Pt(50, 50), geom.Pt(60, -50)).Rotate(-s.angle).Scale(f)
	return errors.Join(p.Line(arm), p.Shape(tri))
}
