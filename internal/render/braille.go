package render

import (
	"math"
	"strings"

	"toryn/internal/geom"
)

// Canvas is a terminal raster of braille cells, each holding a 2x4 grid of
// micro pixels. Its viewport is measured in micro pixels, so a raster point
// lands on exactly one dot.
type Canvas struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &Canvas{w: w, h: h, m: m}
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Viewport returns the micro pixel dimensions.
func (c *Canvas) Viewport() geom.Viewport {
	return geom.Viewport{Width: float32(c.w * 2), Height: float32(c.h * 4)}
}

func (c *Canvas) Clear() {
	for _, row := range c.m {
		clear(row)
	}
}

// Set lights the micro pixel (mx, my), counted from the top left.
// Positions outside the canvas are ignored.
func (c *Canvas) Set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	c.m[cy][cx] |= brailleBits[rx][ry]
}

// IsSet reports whether the micro pixel (mx, my) is lit.
func (c *Canvas) IsSet(mx, my int) bool {
	if mx < 0 || my < 0 || mx/2 >= c.w || my/4 >= c.h {
		return false
	}
	return c.m[my/4][mx/2]&brailleBits[mx%2][my%4] != 0
}

// dot order of the Unicode braille block, by column then row
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (c *Canvas) DrawPoints(vs []geom.Vertex, vp geom.Viewport) {
	w, h := c.w*2, c.h*4
	for _, v := range vs {
		c.Set(devicePixel(v, w, h))
	}
}

// DrawLineStrip joins consecutive vertices with midpoint lines.
func (c *Canvas) DrawLineStrip(vs []geom.Vertex, vp geom.Viewport) {
	w, h := c.w*2, c.h*4
	strip(vs, w, h, c.Set)
}

// Lines renders the canvas, one string per cell row.
func (c *Canvas) Lines() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			mask := c.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// devicePixel maps a normalized vertex onto a w x h pixel grid with a
// top-left origin. A vertex produced from raster point p against a w x h
// viewport lands on (p.X + w/2, h/2 - p.Y).
func devicePixel(v geom.Vertex, w, h int) (int, int) {
	px := math.Round(float64(v.X+1) * float64(w) / 2)
	py := math.Round(float64(1-v.Y) * float64(h) / 2)
	return int(px), int(py)
}

func strip(vs []geom.Vertex, w, h int, set func(x, y int)) {
	if len(vs) == 1 {
		set(devicePixel(vs[0], w, h))
		return
	}
	for i := 1; i < len(vs); i++ {
		x0, y0 := devicePixel(vs[i-1], w, h)
		x1, y1 := devicePixel(vs[i], w, h)
		l := geom.NewLine(geom.Pt(int32(x0), int32(y0)), geom.Pt(int32(x1), int32(y1)))
		pts, _ := l.Rasterize(geom.Midpoint)
		for _, p := range pts {
			set(int(p.X), int(p.Y))
		}
	}
}
