package render

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"toryn/internal/bezier"
	"toryn/internal/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var vp300 = geom.Viewport{Width: 300, Height: 300}

// pointsOnly is a renderer without line strip support.
type pointsOnly struct {
	Batches []Batch
}

func (p *pointsOnly) DrawPoints(vs []geom.Vertex, vp geom.Viewport) {
	p.Batches = append(p.Batches, Batch{Mode: ModePoints, Vertices: vs, Viewport: vp})
}

func TestPainterLineSingleBatch(t *testing.T) {
	var rec Recorder
	p := Painter{Target: &rec, Viewport: vp300}
	if err := p.Line(geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 0))); err != nil {
		t.Fatal(err)
	}
	if len(rec.Batches) != 1 {
		t.Fatalf("got %d batches, want 1", len(rec.Batches))
	}
	b := rec.Batches[0]
	if b.Mode != ModePoints || len(b.Vertices) != 11 || b.Viewport != vp300 {
		t.Fatalf("unexpected batch %+v", b)
	}
	diff(t, geom.Vertex{X: 2 * 10 / 300.0}, b.Vertices[10], cmpopts.EquateApprox(0, 1e-6))
}

func TestPainterDegenerateIncremental(t *testing.T) {
	var rec Recorder
	p := Painter{Target: &rec, Viewport: vp300, Method: geom.Incremental}
	err := p.Line(geom.NewLine(geom.Pt(0, -100), geom.Pt(0, 100)))
	if !errors.Is(err, geom.ErrDegenerateLine) {
		t.Fatalf("got %v, want ErrDegenerateLine", err)
	}
	if len(rec.Batches) != 0 {
		t.Error("a failed call reached the renderer")
	}
}

func TestPainterInvalidViewport(t *testing.T) {
	var rec Recorder
	p := Painter{Target: &rec}
	if err := p.Circle(geom.NewCircle(geom.Pt(0, 0), 3)); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("circle: got %v", err)
	}
	if err := p.Points(geom.Pt(1, 1)); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("points: got %v", err)
	}
	if p.Bezier([]geom.Point2d{{}, {X: 1}, {Y: 1}}, 10) {
		t.Error("curve drawn without a viewport")
	}
	if len(rec.Batches) != 0 {
		t.Error("renderer called")
	}
}

func TestPainterShape(t *testing.T) {
	var rec Recorder
	p := Painter{Target: &rec, Viewport: vp300}
	if err := p.Shape(geom.NewShape(geom.Pt(0, 0), geom.Pt(5, 5))); err != nil {
		t.Fatal(err)
	}
	if len(rec.Batches) != 0 {
		t.Fatalf("two-point shape drew %d batches", len(rec.Batches))
	}

	tri := geom.NewShape(geom.Pt(0, 0), geom.Pt(50, 50), geom.Pt(60, -50))
	if err := p.Shape(tri); err != nil {
		t.Fatal(err)
	}
	if len(rec.Batches) != 1 || len(rec.Batches[0].Vertices) != 51+101+61 {
		t.Fatalf("triangle: got %d batches, %d vertices", len(rec.Batches), rec.Vertices())
	}
}

func TestPainterBezierStrip(t *testing.T) {
	var rec Recorder
	p := Painter{Target: &rec, Viewport: vp300, Cache: bezier.NewBinomialCache()}
	ctrl := []geom.Point2d{geom.Pt(-100, -100), geom.Pt(0, 120), geom.Pt(100, -100)}
	if !p.Bezier(ctrl, 50) {
		t.Fatal("curve rejected")
	}
	if len(rec.Batches) != 1 {
		t.Fatalf("got %d batches", len(rec.Batches))
	}
	b := rec.Batches[0]
	if b.Mode != ModeLineStrip || len(b.Vertices) != 51 {
		t.Fatalf("got %v batch with %d vertices", b.Mode, len(b.Vertices))
	}
	diff(t, vp300.Vertex(ctrl[0]), b.Vertices[0])
	diff(t, vp300.Vertex(ctrl[2]), b.Vertices[50])
}

func TestPainterBezierPointsFallback(t *testing.T) {
	var target pointsOnly
	p := Painter{Target: &target, Viewport: vp300}
	ctrl := []geom.Point2d{geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(20, 0), geom.Pt(30, 10)}
	if !p.Bezier(ctrl, 8) {
		t.Fatal("curve rejected")
	}
	if len(target.Batches) != 1 || target.Batches[0].Mode != ModePoints {
		t.Fatalf("got %+v", target.Batches)
	}
}

func TestPainterBezierRejects(t *testing.T) {
	var rec Recorder
	p := Painter{Target: &rec, Viewport: vp300}
	if p.Bezier([]geom.Point2d{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 0)}, 0) {
		t.Error("zero steps accepted")
	}
	if p.Bezier([]geom.Point2d{geom.Pt(0, 0), geom.Pt(1, 1)}, 10) {
		t.Error("two control points accepted")
	}
	if len(rec.Batches) != 0 {
		t.Error("rejected curves reached the renderer")
	}
}

func TestEvaluateBezier(t *testing.T) {
	ctrl := []geom.Point2d{geom.Pt(-150, 0), geom.Pt(0, 150), geom.Pt(150, 0)}
	vs, ok := EvaluateBezier(ctrl, 2, vp300)
	if !ok {
		t.Fatal("rejected")
	}
	want := []geom.Vertex{{X: -1, Y: 0}, {X: 0, Y: 0.5}, {X: 1, Y: 0}}
	diff(t, want, vs, cmpopts.EquateApprox(0, 1e-6))

	if vs, ok := EvaluateBezier(ctrl[:2], 2, vp300); ok || vs != nil {
		t.Errorf("two points: got %v, %v", vs, ok)
	}
}

func TestRasterizeCircle(t *testing.T) {
	vs, err := RasterizeCircle(geom.Pt(0, 0), 150, vp300)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range vs {
		if v.X < -1 || v.X > 1 || v.Y < -1 || v.Y > 1 {
			t.Fatalf("vertex %v outside the viewport", v)
		}
	}
	if _, err := RasterizeCircle(geom.Pt(0, 0), 1, geom.Viewport{}); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("got %v", err)
	}
}

func TestRasterizeShapeTooFew(t *testing.T) {
	vs, err := RasterizeShape([]geom.Point2d{geom.Pt(0, 0), geom.Pt(3, 3)}, geom.Midpoint, vp300)
	if err != nil || len(vs) != 0 {
		t.Errorf("got %v, %v", vs, err)
	}
}

func TestTeeFallback(t *testing.T) {
	var strips Recorder
	var points pointsOnly
	tee := Tee{&strips, &points}
	vs := []geom.Vertex{{X: 0, Y: 0}, {X: 0.5, Y: 0.5}}
	tee.DrawLineStrip(vs, vp300)
	tee.DrawPoints(vs, vp300)
	if len(strips.Batches) != 2 || strips.Batches[0].Mode != ModeLineStrip {
		t.Errorf("strip renderer got %+v", strips.Batches)
	}
	if len(points.Batches) != 2 || points.Batches[0].Mode != ModePoints {
		t.Errorf("points renderer got %+v", points.Batches)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	var rec Recorder
	p := Painter{Target: &rec, Viewport: vp300, Method: geom.Incremental}
	_ = p.Line(geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 10)))
	_ = p.Line(geom.NewLine(geom.Pt(0, 0), geom.Pt(0, 10)))

	out := buf.String()
	if !strings.Contains(out, "kind=line") || !strings.Contains(out, "vertices=11") {
		t.Errorf("missing draw record in %q", out)
	}
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("missing warning in %q", out)
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
