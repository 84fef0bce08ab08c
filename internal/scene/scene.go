// Package scene loads collections of primitives from files and draws them.
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"toryn/internal/geom"
	"toryn/internal/render"
)

// DefaultSteps is the sample count of curves whose file gives none.
const DefaultSteps = 100

// BBox is wide enough to hold the extent of any circle.
type BBox struct {
	MinX int64
	MinY int64
	MaxX int64
	MaxY int64
}

func (b BBox) Width() int64  { return b.MaxX - b.MinX }
func (b BBox) Height() int64 { return b.MaxY - b.MinY }

// Curve is a Bézier curve in raster coordinates.
type Curve struct {
	Points []geom.Point2d
	Steps  int
}

// Scene is a minimal primitive container for rendering
type Scene struct {
	Points  []geom.Point2d
	Lines   []geom.Line2d
	Shapes  []geom.Shape2d
	Circles []geom.Circle2d
	Curves  []Curve
}

// Extensions lists the file extensions Load understands.
var Extensions = []string{".wkt", ".geojson", ".json", ".csv", ".kml"}

// Supported reports whether Load can read path.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a scene file, choosing the format by extension.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wkt":
		return ParseWKT(string(data))
	case ".geojson", ".json":
		return ParseGeoJSON(data)
	case ".csv":
		return ParseCSV(strings.NewReader(string(data)))
	case ".kml":
		return ParseKML(data)
	}
	return Scene{}, errors.New("unsupported file: " + filepath.Ext(path))
}

func (s Scene) Empty() bool {
	return len(s.Points)+len(s.Lines)+len(s.Shapes)+len(s.Circles)+len(s.Curves) == 0
}

// Summary returns primitive counts for status lines.
func (s Scene) Summary() string {
	return fmt.Sprintf("pts=%d ls=%d shp=%d circ=%d crv=%d",
		len(s.Points), len(s.Lines), len(s.Shapes), len(s.Circles), len(s.Curves))
}

// Bounds returns the box around every point, circle extent and control
// point. ok is false for an empty scene.
func (s Scene) Bounds() (bbox BBox, ok bool) {
	add := func(x, y int64) {
		if !ok {
			bbox = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
			ok = true
			return
		}
		bbox.MinX = min(bbox.MinX, x)
		bbox.MinY = min(bbox.MinY, y)
		bbox.MaxX = max(bbox.MaxX, x)
		bbox.MaxY = max(bbox.MaxY, y)
	}
	addPt := func(p geom.Point2d) { add(int64(p.X), int64(p.Y)) }
	for _, p := range s.Points {
		addPt(p)
	}
	for _, l := range s.Lines {
		addPt(l.Begin)
		addPt(l.End)
	}
	for _, sh := range s.Shapes {
		for _, p := range sh.Points {
			addPt(p)
		}
	}
	for _, c := range s.Circles {
		x, y, r := int64(c.Origin.X), int64(c.Origin.Y), int64(c.Radius)
		add(x-r, y-r)
		add(x+r, y+r)
	}
	for _, c := range s.Curves {
		for _, p := range c.Points {
			addPt(p)
		}
	}
	return bbox, ok
}

// Translate moves every primitive by (dx, dy).
func (s Scene) Translate(dx, dy int32) Scene {
	return s.transform(
		func(p geom.Point2d) geom.Point2d { return p.Translate(dx, dy) },
		func(c geom.Circle2d) geom.Circle2d { return c.Translate(dx, dy) },
	)
}

// Scale scales every primitive about the origin.
func (s Scene) Scale(f float64) Scene {
	return s.transform(
		func(p geom.Point2d) geom.Point2d { return p.Scale(f) },
		func(c geom.Circle2d) geom.Circle2d { return c.Scale(f) },
	)
}

// Fit centres the scene on the origin and scales it so its bounds fill
// margin (0..1] of the viewport.
func (s Scene) Fit(vp geom.Viewport, margin float64) Scene {
	bbox, ok := s.Bounds()
	if !ok || !vp.Valid() {
		return s
	}
	cx := float64(bbox.MinX) + float64(bbox.Width())/2
	cy := float64(bbox.MinY) + float64(bbox.Height())/2

	f := 1.0
	if bw := float64(bbox.Width()); bw > 0 {
		f = float64(vp.Width) * margin / bw
	}
	if bh := float64(bbox.Height()); bh > 0 {
		f = min(f, float64(vp.Height)*margin/bh)
	}
	pt := func(p geom.Point2d) geom.Point2d {
		return roundPt((float64(p.X)-cx)*f, (float64(p.Y)-cy)*f)
	}
	return s.transform(pt, func(c geom.Circle2d) geom.Circle2d {
		return geom.Circle2d{Origin: pt(c.Origin), Radius: geom.Circle2d{Radius: c.Radius}.Scale(f).Radius}
	})
}

func (s Scene) transform(pt func(geom.Point2d) geom.Point2d, circ func(geom.Circle2d) geom.Circle2d) Scene {
	out := Scene{
		Points:  make([]geom.Point2d, len(s.Points)),
		Lines:   make([]geom.Line2d, len(s.Lines)),
		Shapes:  make([]geom.Shape2d, len(s.Shapes)),
		Circles: make([]geom.Circle2d, len(s.Circles)),
		Curves:  make([]Curve, len(s.Curves)),
	}
	for i, p := range s.Points {
		out.Points[i] = pt(p)
	}
	for i, l := range s.Lines {
		out.Lines[i] = geom.NewLine(pt(l.Begin), pt(l.End))
	}
	for i, sh := range s.Shapes {
		pts := make([]geom.Point2d, len(sh.Points))
		for j, p := range sh.Points {
			pts[j] = pt(p)
		}
		out.Shapes[i] = geom.Shape2d{Points: pts}
	}
	for i, c := range s.Circles {
		out.Circles[i] = circ(c)
	}
	for i, c := range s.Curves {
		pts := make([]geom.Point2d, len(c.Points))
		for j, p := range c.Points {
			pts[j] = pt(p)
		}
		out.Curves[i] = Curve{Points: pts, Steps: c.Steps}
	}
	return out
}

// Draw paints every primitive. A rejected primitive does not stop the
// others; all errors are returned joined.
func (s Scene) Draw(p *render.Painter) error {
	var errs []error
	for _, sh := range s.Shapes {
		if err := p.Shape(sh); err != nil {
			errs = append(errs, err)
		}
	}
	for _, l := range s.Lines {
		if err := p.Line(l); err != nil {
			errs = append(errs, err)
		}
	}
	for _, c := range s.Circles {
		if err := p.Circle(c); err != nil {
			errs = append(errs, err)
		}
	}
	for _, c := range s.Curves {
		p.Bezier(c.Points, c.Steps)
	}
	if len(s.Points) > 0 {
		if err := p.Points(s.Points...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func roundPt(x, y float64) geom.Point2d {
	return geom.Point2d{X: int32(math.Round(x)), Y: int32(math.Round(y))}
}
