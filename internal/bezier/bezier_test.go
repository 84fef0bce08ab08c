package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"toryn/internal/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-5)

func TestInterpolateEndpoints(t *testing.T) {
	sets := [][]geom.Vertex{
		{{X: -0.5, Y: -0.5}, {X: 0, Y: 0.8}, {X: 0.5, Y: -0.5}},
		{{X: 0.1, Y: 0.2}, {X: 0.9, Y: -0.3}, {X: -0.4, Y: 0.4}, {X: 0.3, Y: 0.3}},
		{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: 0, Y: 0}, {X: 0.25, Y: -0.75}},
	}
	for _, pts := range sets {
		for _, steps := range []int{1, 2, 7, 100} {
			out, ok := NewCurve(steps, pts...).Interpolate()
			if !ok {
				t.Fatalf("%d points, %d steps: rejected", len(pts), steps)
			}
			if len(out) != steps+1 {
				t.Errorf("%d steps: got %d samples", steps, len(out))
			}
			diff(t, pts[0], out[0])
			diff(t, pts[len(pts)-1], out[len(out)-1])
		}
	}
}

func TestInterpolateRejects(t *testing.T) {
	tests := []Curve{
		NewCurve(10),
		NewCurve(10, geom.Vertex{}),
		NewCurve(10, geom.Vertex{}, geom.Vertex{X: 1}),
		NewCurve(0, geom.Vertex{}, geom.Vertex{X: 1}, geom.Vertex{Y: 1}),
		NewCurve(-3, geom.Vertex{}, geom.Vertex{X: 1}, geom.Vertex{Y: 1}),
	}
	for _, c := range tests {
		out, ok := c.Interpolate()
		if ok || out != nil {
			t.Errorf("%d points, %d steps: got %v, %v", len(c.Points), c.Steps, out, ok)
		}
	}
}

func TestEvalQuadratic(t *testing.T) {
	c := NewCurve(4, geom.Vertex{X: 0, Y: 0}, geom.Vertex{X: 1, Y: 1}, geom.Vertex{X: 2, Y: 0})
	diff(t, geom.Vertex{X: 1, Y: 0.5}, c.Eval(0.5), approx)

	out, _ := c.Interpolate()
	want := []geom.Vertex{
		{X: 0, Y: 0},
		{X: 0.5, Y: 0.375},
		{X: 1, Y: 0.5},
		{X: 1.5, Y: 0.375},
		{X: 2, Y: 0},
	}
	diff(t, want, out, approx)
}

func TestEvalCollinear(t *testing.T) {
	c := NewCurve(10, geom.Vertex{X: 0, Y: 0}, geom.Vertex{X: 0.5, Y: 0.5}, geom.Vertex{X: 1, Y: 1})
	for i := 0; i <= 10; i++ {
		tt := float32(i) / 10
		diff(t, geom.Vertex{X: tt, Y: tt}, c.Eval(float64(i)/10), approx)
	}
}

func TestCurveBuilder(t *testing.T) {
	pts := []geom.Vertex{{X: 1}, {Y: 1}}
	c := NewCurve(5, pts...)
	pts[0].X = 9
	if c.Points[0].X != 1 {
		t.Error("NewCurve kept a reference to the caller's slice")
	}
	if _, ok := c.Interpolate(); ok {
		t.Error("two points interpolated")
	}
	c.Push(geom.Vertex{X: -1})
	out, ok := c.WithSteps(3).Interpolate()
	if !ok || len(out) != 4 {
		t.Errorf("got %d samples, %v", len(out), ok)
	}
	if c.Steps != 5 {
		t.Error("WithSteps modified the receiver")
	}
}

func TestCurveInjectedCache(t *testing.T) {
	cache := NewBinomialCache()
	c := Curve{Steps: 3, Cache: cache}
	for i := 0; i < 12; i++ {
		c.Push(geom.Vertex{X: float32(i)})
	}
	if _, ok := c.Interpolate(); !ok {
		t.Fatal("rejected")
	}
	if cache.Rows() != 12 {
		t.Errorf("injected cache has %d rows, want 12", cache.Rows())
	}
}

func TestEvalWithoutPoints(t *testing.T) {
	diff(t, geom.Vertex{}, Curve{}.Eval(0.5))
}
