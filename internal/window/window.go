// Package window holds the state of the windowed viewer independent of the
// host loop: demo selection, input handling and the frame bitmap.
package window

import (
	"errors"
	"time"

	"toryn/internal/bezier"
	"toryn/internal/demo"
	"toryn/internal/geom"
	"toryn/internal/render"
)

type Options struct {
	Width  int
	Height int
	Method geom.Method
	Steps  int
}

// Window draws the active demo into an RGBA frame the host uploads.
type Window struct {
	demos  []demo.Demo
	active demo.Demo
	method geom.Method
	cache  *bezier.BinomialCache
	frame  *render.Image
	err    error
}

func New(opts Options) *Window {
	w := &Window{
		demos:  demo.All(),
		method: opts.Method,
		cache:  bezier.NewBinomialCache(),
		frame:  render.NewImage(max(opts.Width, 1), max(opts.Height, 1)),
	}
	w.active = w.demos[0]
	if opts.Steps > 0 {
		for _, d := range w.demos {
			if b, ok := d.(*demo.Bezier); ok {
				b.Steps = opts.Steps
			}
		}
	}
	return w
}

// Size returns the frame size in pixels.
func (w *Window) Size() (int, int) {
	b := w.frame.RGBA.Bounds()
	return b.Dx(), b.Dy()
}

func (w *Window) Active() demo.Demo { return w.active }

func (w *Window) Method() geom.Method { return w.method }

// Select activates demo i, counted from zero. Out of range indexes are
// ignored.
func (w *Window) Select(i int) {
	if i >= 0 && i < len(w.demos) {
		w.active = w.demos[i]
	}
}

// Show replaces the active demo, e.g. with a loaded scene.
func (w *Window) Show(d demo.Demo) { w.active = d }

func (w *Window) ToggleMethod() {
	if w.method == geom.Midpoint {
		w.method = geom.Incremental
	} else {
		w.method = geom.Midpoint
	}
}

// Clear drops the control points of an editable demo.
func (w *Window) Clear() {
	if e, ok := w.active.(demo.Editable); ok {
		e.Clear()
	}
}

// Click hands the pixel (x, y), counted from the top left, to an editable
// demo. It reports whether the demo took it.
func (w *Window) Click(x, y int) bool {
	e, ok := w.active.(demo.Editable)
	if !ok {
		return false
	}
	vp := w.frame.Viewport()
	pt := geom.Pt(int32(x), -int32(y)).Translate(-int32(vp.Width/2), int32(vp.Height/2))
	e.Add(pt, vp)
	return true
}

// Advance moves animated demos forward by dt.
func (w *Window) Advance(dt time.Duration) {
	if a, ok := w.active.(demo.Animated); ok {
		a.Update(dt)
	}
}

// Render redraws the frame and returns it together with the errors of
// primitives that could not be drawn.
func (w *Window) Render() (*render.Image, error) {
	w.frame.Clear()
	p := render.Painter{Target: w.frame, Viewport: w.frame.Viewport(), Method: w.method, Cache: w.cache}
	err := w.active.Draw(&p)
	if err != nil && (w.err == nil || err.Error() != w.err.Error()) {
		render.Logger().Warn("frame incomplete", "demo", w.active.Name(), "method", w.method, "err", err)
	}
	w.err = err
	return w.frame, err
}

// Err returns the error of the last Render.
func (w *Window) Err() error { return w.err }

// IsDegenerate reports whether the last frame lost vertical lines to the
// incremental rasterizer.
func (w *Window) IsDegenerate() bool { return errors.Is(w.err, geom.ErrDegenerateLine) }
