package geom

import (
	"math"
	"testing"
)

func TestCircleRadius(t *testing.T) {
	pts := NewCircle(Pt(0, 0), 5).Rasterize()
	if len(pts) == 0 {
		t.Fatal("no points")
	}
	for _, p := range pts {
		r := math.Round(math.Hypot(float64(p.X), float64(p.Y)))
		if math.Abs(r-5) > 1 {
			t.Errorf("%v is %g away from the origin", p, r)
		}
	}
}

func TestCircleSymmetry(t *testing.T) {
	set := pointSet(NewCircle(Pt(0, 0), 5).Rasterize())
	for p := range set {
		for _, q := range []Point2d{
			{p.Y, p.X},
			{-p.X, p.Y},
			{p.X, -p.Y},
			{-p.X, -p.Y},
		} {
			if !set[q] {
				t.Errorf("%v present but %v missing", p, q)
			}
		}
	}
}

func TestCircleCardinalPoints(t *testing.T) {
	c := NewCircle(Pt(30, 30), 50)
	set := pointSet(c.Rasterize())
	for _, p := range []Point2d{Pt(30, 80), Pt(30, -20), Pt(80, 30), Pt(-20, 30)} {
		if !set[p] {
			t.Errorf("missing %v", p)
		}
	}
	for p := range set {
		dx, dy := float64(p.X-30), float64(p.Y-30)
		if r := math.Hypot(dx, dy); math.Abs(r-50) > 1 {
			t.Errorf("%v at distance %g", p, r)
		}
	}
}

func TestCircleZeroRadius(t *testing.T) {
	pts := NewCircle(Pt(3, -4), 0).Rasterize()
	if len(pts) != 8 {
		t.Fatalf("got %d points, want 8", len(pts))
	}
	for _, p := range pts {
		if p != Pt(3, -4) {
			t.Errorf("got %v, want the origin", p)
		}
	}
}

func TestCircleScale(t *testing.T) {
	c := NewCircle(Pt(10, -10), 5).Scale(2.5)
	diff(t, NewCircle(Pt(25, -25), 13), c)
	diff(t, NewCircle(Pt(11, -8), 5), NewCircle(Pt(10, -10), 5).Translate(1, 2))
}

func TestCircleRadiusOutOfRange(t *testing.T) {
	if pts := NewCircle(Pt(0, 0), MaxRadius+1).Rasterize(); pts != nil {
		t.Errorf("got %d points for a radius past MaxRadius", len(pts))
	}
	if pts := NewCircle(Pt(0, 0), 3_000_000_000).Rasterize(); pts != nil {
		t.Errorf("got %d points for radius 3e9", len(pts))
	}

	tests := []struct {
		radius uint32
		s      float64
		want   uint32
	}{
		{3_000_000_000, 1, MaxRadius},
		{MaxRadius, 4, MaxRadius},
		{10, -1, 0},
		{10, math.NaN(), 0},
		{3_000_000_000, 1e-6, 3000},
	}
	for _, tt := range tests {
		if got := NewCircle(Pt(0, 0), tt.radius).Scale(tt.s).Radius; got != tt.want {
			t.Errorf("radius %d scaled by %g: got %d, want %d", tt.radius, tt.s, got, tt.want)
		}
	}
}
