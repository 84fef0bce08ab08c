package demo

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"toryn/internal/geom"
	"toryn/internal/render"
	"toryn/internal/scene"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func painter(rec *render.Recorder, w, h float32, m geom.Method) *render.Painter {
	return &render.Painter{Target: rec, Viewport: geom.Viewport{Width: w, Height: h}, Method: m}
}

func TestAll(t *testing.T) {
	var names []string
	for _, d := range All() {
		names = append(names, d.Name())
	}
	diff(t, []string{"lines", "circle", "shape", "spin", "bezier"}, names)

	if _, ok := All()[3].(Animated); !ok {
		t.Error("spin is not animated")
	}
	if _, ok := All()[4].(Editable); !ok {
		t.Error("bezier is not editable")
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		world, target geom.Viewport
		want          float64
	}{
		{world300, world300, 1},
		{world300, geom.Viewport{Width: 600, Height: 150}, 0.5},
		{world500, geom.Viewport{Width: 1000, Height: 2000}, 2},
		{world500, geom.Viewport{}, 0},
	}
	for _, tt := range tests {
		if got := Fit(tt.world, tt.target); got != tt.want {
			t.Errorf("Fit(%v, %v) = %v, want %v", tt.world, tt.target, got, tt.want)
		}
	}
}

func TestLines(t *testing.T) {
	var rec render.Recorder
	if err := Lines().Draw(painter(&rec, 300, 300, geom.Midpoint)); err != nil {
		t.Fatal(err)
	}
	if len(rec.Batches) != 9 {
		t.Fatalf("got %d batches, want 9", len(rec.Batches))
	}
	// the first diagonal runs from the centre to (100, 100)
	first := rec.Batches[0].Vertices
	diff(t, geom.Vertex{X: 2 * 100 / 300.0, Y: 2 * 100 / 300.0}, first[len(first)-1], cmpopts.EquateApprox(0, 1e-6))

	// vertical lines, including the rotated diagonal, defeat the
	// incremental rasterizer; the rest still draws
	rec.Reset()
	err := Lines().Draw(painter(&rec, 300, 300, geom.Incremental))
	if !errors.Is(err, geom.ErrDegenerateLine) {
		t.Fatalf("got %v, want ErrDegenerateLine", err)
	}
	if len(rec.Batches) != 6 {
		t.Errorf("got %d batches, want 6", len(rec.Batches))
	}
}

func TestCircleScaled(t *testing.T) {
	var rec render.Recorder
	if err := Circle().Draw(painter(&rec, 250, 250, geom.Midpoint)); err != nil {
		t.Fatal(err)
	}
	if len(rec.Batches) != 5 {
		t.Fatalf("got %d batches, want 5", len(rec.Batches))
	}
	vp := geom.Viewport{Width: 250, Height: 250}
	want := geom.NewCircle(geom.Pt(15, 15), 25).Rasterize()
	diff(t, vp.Normalize(want), rec.Batches[4].Vertices)
}

func TestShape(t *testing.T) {
	var rec render.Recorder
	if err := Shape().Draw(painter(&rec, 300, 300, geom.Midpoint)); err != nil {
		t.Fatal(err)
	}
	if rec.Vertices() != 51+101+61 {
		t.Errorf("got %d vertices", rec.Vertices())
	}
}

func TestSpin(t *testing.T) {
	s := NewSpin(2 * time.Second)
	if s.Angle() != 0 {
		t.Fatalf("initial angle %v", s.Angle())
	}
	s.Update(500 * time.Millisecond)
	diff(t, math.Pi/2, s.Angle(), cmpopts.EquateApprox(0, 1e-5))

	var rec render.Recorder
	if err := s.Draw(painter(&rec, 300, 300, geom.Midpoint)); err != nil {
		t.Fatal(err)
	}
	if len(rec.Batches) != 2 {
		t.Errorf("got %d batches, want 2", len(rec.Batches))
	}

	s.Update(3 * time.Second)
	if s.Angle() != 0 {
		t.Errorf("angle %v after a full turn, want 0", s.Angle())
	}
	s.Update(time.Second)
	diff(t, math.Pi, s.Angle(), cmpopts.EquateApprox(0, 1e-5))
}

func TestBezier(t *testing.T) {
	b := NewBezier(20)
	target := geom.Viewport{Width: 250, Height: 250}
	b.Add(geom.Pt(10, -20), target)
	b.Add(geom.Pt(-50, 0), target)
	diff(t, []geom.Point2d{geom.Pt(20, -40), geom.Pt(-100, 0)}, b.Points())

	var rec render.Recorder
	p := painter(&rec, 250, 250, geom.Midpoint)
	if err := b.Draw(p); err != nil {
		t.Fatal(err)
	}
	if b.Ready() || len(rec.Batches) != 1 || rec.Batches[0].Mode != render.ModePoints {
		t.Fatalf("two points: ready=%v batches=%+v", b.Ready(), rec.Batches)
	}

	rec.Reset()
	b.Add(geom.Pt(50, 50), target)
	if err := b.Draw(p); err != nil {
		t.Fatal(err)
	}
	if len(rec.Batches) != 2 || rec.Batches[0].Mode != render.ModeLineStrip || len(rec.Batches[0].Vertices) != 21 {
		t.Fatalf("three points: got %+v", rec.Batches)
	}

	rec.Reset()
	b.Clear()
	if err := b.Draw(p); err != nil || len(rec.Batches) != 0 {
		t.Errorf("cleared curve drew %d batches, err %v", len(rec.Batches), err)
	}
}

func TestFromScene(t *testing.T) {
	var rec render.Recorder
	p := painter(&rec, 100, 100, geom.Midpoint)
	if err := FromScene("empty", scene.Scene{}).Draw(p); err == nil {
		t.Error("empty scene drew without error")
	}
	d := FromScene("tri.wkt", scene.Scene{Shapes: []geom.Shape2d{
		geom.NewShape(geom.Pt(1000, 1000), geom.Pt(2000, 1000), geom.Pt(1500, 2000)),
	}})
	if d.Name() != "tri.wkt" {
		t.Errorf("name %q", d.Name())
	}
	if err := d.Draw(p); err != nil {
		t.Fatal(err)
	}
	for _, v := range rec.Batches[0].Vertices {
		if v.X < -1 || v.X > 1 || v.Y < -1 || v.Y > 1 {
			t.Fatalf("vertex %v outside the viewport", v)
		}
	}
}
