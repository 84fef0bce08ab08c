package render

import "toryn/internal/geom"

// Mode tells how a batch was handed over.
type Mode int

const (
	ModePoints Mode = iota
	ModeLineStrip
)

func (m Mode) String() string {
	if m == ModeLineStrip {
		return "strip"
	}
	return "points"
}

// Batch is one Renderer call.
type Batch struct {
	Mode     Mode
	Vertices []geom.Vertex
	Viewport geom.Viewport
}

// Recorder keeps every batch it receives. It backs the statistics view and
// tests.
type Recorder struct {
	Batches []Batch
}

func (r *Recorder) DrawPoints(vs []geom.Vertex, vp geom.Viewport) {
	r.Batches = append(r.Batches, Batch{Mode: ModePoints, Vertices: vs, Viewport: vp})
}

func (r *Recorder) DrawLineStrip(vs []geom.Vertex, vp geom.Viewport) {
	r.Batches = append(r.Batches, Batch{Mode: ModeLineStrip, Vertices: vs, Viewport: vp})
}

// Vertices returns the number of vertices over all batches.
func (r *Recorder) Vertices() int {
	n := 0
	for _, b := range r.Batches {
		n += len(b.Vertices)
	}
	return n
}

func (r *Recorder) Reset() {
	r.Batches = r.Batches[:0]
}

// Tee forwards every batch to each of its renderers. Line strips go to
// renderers that cannot join vertices as plain points.
type Tee []Renderer

func (t Tee) DrawPoints(vs []geom.Vertex, vp geom.Viewport) {
	for _, r := range t {
		r.DrawPoints(vs, vp)
	}
}

func (t Tee) DrawLineStrip(vs []geom.Vertex, vp geom.Viewport) {
	for _, r := range t {
		if ls, ok := r.(LineStripDrawer); ok {
			ls.DrawLineStrip(vs, vp)
		} else {
			r.DrawPoints(vs, vp)
		}
	}
}
